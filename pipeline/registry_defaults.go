package pipeline

import (
	"github.com/cwbudde/algo-apogee/exposure"
	"github.com/cwbudde/algo-apogee/spectrum"
)

// Cube stage names.
const (
	StageRefPix           = "refpix"
	StageLinearity        = "lincorr"
	StageDark             = "darkcorr"
	StageCosmicRay        = "cosmicray"
	StageCosmicRayRepair  = "cosmicray-repair"
	StageSaturation       = "saturation"
	StageSaturationRepair = "saturation-repair"
)

// Spectrum stage names.
const (
	StageSkySub     = "skysub"
	StageTelluric   = "telluric"
	StageWaveCorr   = "wavecorr"
	StageRelFluxCal = "relfluxcal"
	StageAbsFluxCal = "absfluxcal"
)

// DefaultCubeRegistry returns the detector-level correction stages, in
// the order they are normally run.
func DefaultCubeRegistry() *Registry[*exposure.Cube] {
	r := NewRegistry[*exposure.Cube]()
	r.MustRegister(StageRefPix, (*exposure.Cube).RefPixCorrect)
	r.MustRegister(StageLinearity, (*exposure.Cube).LinearityCorrect)
	r.MustRegister(StageDark, (*exposure.Cube).DarkCorrect)
	r.MustRegister(StageCosmicRay, func(c *exposure.Cube) (*exposure.Cube, error) {
		return c.FlagCosmicRays(false)
	})
	r.MustRegister(StageCosmicRayRepair, func(c *exposure.Cube) (*exposure.Cube, error) {
		return c.FlagCosmicRays(true)
	})
	r.MustRegister(StageSaturation, func(c *exposure.Cube) (*exposure.Cube, error) {
		return c.FlagSaturation(false)
	})
	r.MustRegister(StageSaturationRepair, func(c *exposure.Cube) (*exposure.Cube, error) {
		return c.FlagSaturation(true)
	})
	return r
}

// DefaultSpectrumRegistry returns the post-extraction calibration stages.
func DefaultSpectrumRegistry() *Registry[*spectrum.Spectrum2D] {
	r := NewRegistry[*spectrum.Spectrum2D]()
	r.MustRegister(StageSkySub, (*spectrum.Spectrum2D).SkySubtract)
	r.MustRegister(StageTelluric, (*spectrum.Spectrum2D).TelluricCorrect)
	r.MustRegister(StageWaveCorr, (*spectrum.Spectrum2D).WavelengthCorrect)
	r.MustRegister(StageRelFluxCal, (*spectrum.Spectrum2D).RelativeFluxCalibrate)
	r.MustRegister(StageAbsFluxCal, (*spectrum.Spectrum2D).AbsoluteFluxCalibrate)
	return r
}
