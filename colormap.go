package colladarender

import (
	"math"
	"sync"
)

// DefaultColorMapSegments is the number of colors generated between each pair of anchors in the default color map.
const DefaultColorMapSegments = 1000

// ColorMap is an ordered list of colors approximating a continuous gradient. It's indexed by a normalized scalar
// through At(). A ColorMap shared through RenderOptions should be treated as read-only.
type ColorMap []Color

// At returns the color for the normalized value v. The index is floor(v * len(colorMap)), clamped to the
// first and last colors, so values below 0 give the first color and values of 1 or above give the last one.
// Non-finite values give the first color. At returns a transparent Color for an empty ColorMap.
func (colorMap ColorMap) At(v float64) Color {

	if len(colorMap) == 0 {
		return Color{}
	}

	v = finiteOr(v, 0)

	index := math.Floor(v * float64(len(colorMap)))
	index = clamp(index, 0, float64(len(colorMap)-1))

	return colorMap[int(index)]

}

// An Anchor is one control pair of a Bézier color map: the color the gradient passes through (as an RGB Vector),
// and the direction the gradient leaves it in.
type Anchor struct {
	Point     Vector
	Direction Vector
}

// NewAnchor creates a new Anchor from RGB point and direction components.
func NewAnchor(r, g, b, dr, dg, db float64) Anchor {
	return Anchor{
		Point:     NewVector(r, g, b),
		Direction: NewVector(dr, dg, db),
	}
}

// Bezier evaluates the Bézier curve defined by the control points at t, by recursively blending the curve formed by
// all but the last point with the curve formed by all but the first point. A single point evaluates to itself.
// Bezier panics if points is empty.
func Bezier(points []Vector, t float64) Vector {

	if len(points) == 1 {
		return points[0]
	}

	return Bezier(points[:len(points)-1], t).Blend(Bezier(points[1:], t), t)

}

// BezierColorMap builds a ColorMap passing through each Anchor in order. Between anchors i and i+1, segments[i] colors
// are sampled at t = j / segments[i] for j in [0, segments[i]) along a cubic curve whose control points are
// p1, p1+d1, p2-p2 and p2. The third control point is always the zero vector (not p2-d2), and existing renderings
// depend on it. The final anchor's color is appended last, so the result has sum(segments)+1 colors.
// If fewer segment counts than anchor gaps are given, the last segment count is reused; with no segment counts at
// all, DefaultColorMapSegments is used.
func BezierColorMap(anchors []Anchor, segments ...int) ColorMap {

	if len(anchors) == 0 {
		return ColorMap{}
	}

	total := 1
	for i := 0; i < len(anchors)-1; i++ {
		total += segmentCount(segments, i)
	}

	colorMap := make(ColorMap, 0, total)

	for i := 0; i < len(anchors)-1; i++ {

		p1, d1 := anchors[i].Point, anchors[i].Direction
		p2 := anchors[i+1].Point

		controlPoints := []Vector{p1, p1.Add(d1), p2.Sub(p2), p2}

		n := segmentCount(segments, i)

		for j := 0; j < n; j++ {
			colorMap = append(colorMap, NewColorFromVector(Bezier(controlPoints, float64(j)/float64(n))))
		}

	}

	colorMap = append(colorMap, NewColorFromVector(anchors[len(anchors)-1].Point))

	return colorMap

}

func segmentCount(segments []int, i int) int {
	if len(segments) == 0 {
		return DefaultColorMapSegments
	}
	if i >= len(segments) {
		i = len(segments) - 1
	}
	return max(segments[i], 0)
}

// DefaultAnchors returns the anchors of the default height gradient: dark blue, light purple, warm orange, and
// finally a near-black red.
func DefaultAnchors() []Anchor {
	return []Anchor{
		NewAnchor(0, 0, 0.3, 0, 0, 0.7),
		NewAnchor(0.8, 0.6, 1, 0.4, 0.6, 0),
		NewAnchor(1, 0.6, 0.4, 0, -0.4, -0.3),
		NewAnchor(0.2, 0, 0, -0.3, 0, 0),
	}
}

// DefaultColorMap builds the default height gradient with n colors between each pair of anchors, for 3n+1 colors total.
func DefaultColorMap(n int) ColorMap {
	return BezierColorMap(DefaultAnchors(), n, n, n)
}

// SharedColorMap returns the default color map built with DefaultColorMapSegments. It's computed once and shared;
// don't modify it.
var SharedColorMap = sync.OnceValue(func() ColorMap {
	return DefaultColorMap(DefaultColorMapSegments)
})
