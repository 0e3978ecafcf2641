package wavelet

import "github.com/cwbudde/algo-wavelet/dsp/core"

// Extent is the active width and height at one decomposition level.
type Extent struct {
	Width  int
	Height int
}

// Active reports whether another level can be applied.
func (e Extent) Active() bool {
	return e.Width > 1 || e.Height > 1
}

// Next returns the extent of the following, coarser level.
func (e Extent) Next() Extent {
	return Extent{Width: core.HalveExtent(e.Width), Height: core.HalveExtent(e.Height)}
}

// Pyramid returns the extents at which successive forward levels operate,
// starting at (width, height) and stopping once both extents reach 1 or after
// maxLevels levels. A negative maxLevels means no limit.
func Pyramid(width, height, maxLevels int) []Extent {
	var levels []Extent
	for e := (Extent{Width: width, Height: height}); e.Active(); e = e.Next() {
		if maxLevels >= 0 && len(levels) >= maxLevels {
			break
		}
		levels = append(levels, e)
	}
	return levels
}

// spans returns the active lengths of a full 1D decomposition of n samples.
func spans(n int) []int {
	var out []int
	for ; n > 1; n /= 2 {
		out = append(out, n)
	}
	return out
}
