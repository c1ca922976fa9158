package colladarender

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func BenchmarkDefaultColorMap(b *testing.B) {

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		DefaultColorMap(DefaultColorMapSegments)
	}

}

func assertColorsClose(t *testing.T, expected, actual Color) {
	t.Helper()
	assert.InDelta(t, expected.R, actual.R, 1e-9, "red")
	assert.InDelta(t, expected.G, actual.G, 1e-9, "green")
	assert.InDelta(t, expected.B, actual.B, 1e-9, "blue")
	assert.InDelta(t, expected.A, actual.A, 1e-9, "alpha")
}

func TestDefaultColorMap(t *testing.T) {

	for _, n := range []int{1, 2, 10, 1000} {

		colorMap := DefaultColorMap(n)
		require.Len(t, colorMap, 3*n+1)

		anchors := DefaultAnchors()

		// Every segment starts on its anchor, and the map ends on the final one.
		for i, anchor := range anchors {
			assertColorsClose(t, NewColorFromVector(anchor.Point), colorMap[i*n])
		}

		for _, c := range colorMap {
			assert.Equal(t, 1.0, c.A)
		}

	}

}

func TestBezierColorMapThirdControlPoint(t *testing.T) {

	// Halfway through the first segment, the cubic curve is 1/8 p1 + 3/8 (p1+d1) + 3/8 c3 + 1/8 p2. With c3 at the
	// origin, that's (0.1, 0.075, 0.5375).
	colorMap := DefaultColorMap(2)

	assertColorsClose(t, NewColor(0.1, 0.075, 0.5375, 1), colorMap[1])

}

func TestBezierColorMapSegments(t *testing.T) {

	anchors := DefaultAnchors()

	assert.Len(t, BezierColorMap(anchors), 3*DefaultColorMapSegments+1)
	assert.Len(t, BezierColorMap(anchors, 5), 16, "the last segment count is reused")
	assert.Len(t, BezierColorMap(anchors, 1, 2, 3), 7)
	assert.Len(t, BezierColorMap(anchors[:1], 5), 1)
	assert.Empty(t, BezierColorMap(nil))

}

func TestBezier(t *testing.T) {

	points := []Vector{NewVector(0, 0, 0), NewVector(1, 1, 1)}

	assert.Equal(t, points[0], Bezier(points[:1], 0.7))
	assert.True(t, Bezier(points, 0.25).Equals(NewVector(0.25, 0.25, 0.25)))

}

func TestColorMapAt(t *testing.T) {

	colorMap := ColorMap{
		NewColor(0, 0, 0, 1),
		NewColor(0.25, 0, 0, 1),
		NewColor(0.5, 0, 0, 1),
		NewColor(0.75, 0, 0, 1),
	}

	tests := []struct {
		v        float64
		expected int
	}{
		{-1, 0},
		{0, 0},
		{0.2, 0},
		{0.25, 1},
		{0.6, 2},
		{0.99, 3},
		{1, 3},
		{1.15, 3},
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}

	for _, test := range tests {
		assert.Equal(t, colorMap[test.expected], colorMap.At(test.v), "At(%v)", test.v)
	}

	assert.Equal(t, Color{}, ColorMap{}.At(0.5))

}

func TestSharedColorMap(t *testing.T) {

	a := SharedColorMap()
	b := SharedColorMap()

	require.Len(t, a, 3*DefaultColorMapSegments+1)
	assert.Same(t, &a[0], &b[0], "the shared color map is only built once")
	assert.Equal(t, DefaultColorMap(DefaultColorMapSegments), a)

}
