// Package exposure models a single detector exposure at the two stages
// before spectral extraction: the raw multi-read Cube (rows × columns ×
// reads) and the collapsed 2-D Image with its pixel flag plane.
//
// Cube.Collapse reduces the read axis with a selectable Strategy. The
// correction stages that act on a cube or image before extraction are
// declared here as named methods; those without a defined algorithm return
// nddata.ErrNotImplemented rather than passing data through unprocessed.
package exposure
