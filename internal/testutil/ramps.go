package testutil

import "math/rand"

// Sequential returns rows*cols*reads values 1, 2, 3, ... laid out row-major
// over (row, col, read).
func Sequential(rows, cols, reads int) []float64 {
	out := make([]float64, rows*cols*reads)
	for i := range out {
		out[i] = float64(i + 1)
	}
	return out
}

// LinearRamp returns a noiseless up-the-ramp stack laid out row-major over
// (row, col, read). Pixel p accumulates bias + rate*(p+1)*(k+1) at read k,
// so every pixel has a distinct, known slope.
func LinearRamp(rows, cols, reads int, bias, rate float64) []float64 {
	out := make([]float64, 0, rows*cols*reads)
	for p := 0; p < rows*cols; p++ {
		for k := 0; k < reads; k++ {
			out = append(out, bias+rate*float64(p+1)*float64(k+1))
		}
	}
	return out
}

// NoisyRamp adds uniform read noise in [-noise, noise] with a fixed seed to
// a LinearRamp.
func NoisyRamp(seed int64, rows, cols, reads int, bias, rate, noise float64) []float64 {
	out := LinearRamp(rows, cols, reads, bias, rate)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] += (rng.Float64()*2 - 1) * noise
	}
	return out
}

// RampSum returns the per-pixel sum across reads of a LinearRamp, row-major
// over (row, col).
func RampSum(rows, cols, reads int, bias, rate float64) []float64 {
	out := make([]float64, rows*cols)
	tri := float64(reads*(reads+1)) / 2
	for p := range out {
		out[p] = bias*float64(reads) + rate*float64(p+1)*tri
	}
	return out
}
