// Package nddata provides the labeled N-dimensional array container shared by
// every reduction stage: a row-major float64 data array with its shape, an
// optional per-element uncertainty, an optional validity mask, and opaque
// metadata and unit labels that are carried through unchanged.
//
// Domain types (cubes, images, spectra) hold an Array or its Labels rather
// than inheriting from a common base, so each stage keeps only the fields it
// needs.
package nddata
