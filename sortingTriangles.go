package colladarender

import (
	"cmp"
	"slices"
)

// DrawOrder returns a copy of the triangles given, sorted by ascending height proxy. This is the painter's order used
// when drawing a height map: lower triangles are drawn first, so higher ones drawn later cover them.
// The sort is stable; triangles with equal heights stay in the order they were loaded in.
func DrawOrder(triangles []Triangle) []Triangle {

	sorted := slices.Clone(triangles)

	slices.SortStableFunc(sorted, func(a, b Triangle) int {
		return cmp.Compare(a.Height(), b.Height())
	})

	return sorted

}

// IsDrawOrder returns true if the triangles given are in a valid draw order (that is, their height proxies never
// decrease).
func IsDrawOrder(triangles []Triangle) bool {
	return slices.IsSortedFunc(triangles, func(a, b Triangle) int {
		return cmp.Compare(a.Height(), b.Height())
	})
}
