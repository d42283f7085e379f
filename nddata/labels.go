package nddata

import "maps"

// Labels holds the descriptive parts of a dataset that reduction stages pass
// through untouched: free-form metadata (exposure time, telescope, ...) and
// the physical unit of the data.
type Labels struct {
	Meta map[string]any
	Unit string
}

// Clone returns a copy of l with its own metadata map. Values inside the map
// are shared.
func (l Labels) Clone() Labels {
	out := Labels{Unit: l.Unit}
	if l.Meta != nil {
		out.Meta = maps.Clone(l.Meta)
	}
	return out
}
