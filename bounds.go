package colladarender

import (
	"image"
	"math"
)

// Bounds represents the extents of a scene as seen from above: the range of its vertices along the X and Z axes, and
// the range of its triangles' height proxies.
type Bounds struct {
	MinX, MaxX           float64
	MinZ, MaxZ           float64
	MinHeight, MaxHeight float64
}

// NewBounds calculates the Bounds of the triangles given. The height range is taken from the first and last triangles,
// so the triangles should already be in draw order (see DrawOrder()). NewBounds returns ErrEmptyScene if there are no
// triangles.
func NewBounds(sorted []Triangle) (Bounds, error) {

	if len(sorted) == 0 {
		return Bounds{}, ErrEmptyScene
	}

	bounds := Bounds{
		MinX:      math.Inf(1),
		MaxX:      math.Inf(-1),
		MinZ:      math.Inf(1),
		MaxZ:      math.Inf(-1),
		MinHeight: sorted[0].Height(),
		MaxHeight: sorted[len(sorted)-1].Height(),
	}

	for _, tri := range sorted {

		for _, v := range tri {

			bounds.MinX = min(bounds.MinX, v.X)
			bounds.MaxX = max(bounds.MaxX, v.X)

			bounds.MinZ = min(bounds.MinZ, v.Z)
			bounds.MaxZ = max(bounds.MaxZ, v.Z)

		}

	}

	return bounds, nil

}

// Width returns the extent of the Bounds along the X axis.
func (bounds Bounds) Width() float64 {
	return bounds.MaxX - bounds.MinX
}

// Depth returns the extent of the Bounds along the Z axis.
func (bounds Bounds) Depth() float64 {
	return bounds.MaxZ - bounds.MinZ
}

// HeightRange returns the difference between the highest and lowest height proxies.
func (bounds Bounds) HeightRange() float64 {
	return bounds.MaxHeight - bounds.MinHeight
}

// NormalizedHeight maps a height proxy into the 0-1 range covered by the Bounds. If the result isn't finite (which
// happens when every triangle has the same height), 0 is returned.
func (bounds Bounds) NormalizedHeight(height float64) float64 {
	return finiteOr((height-bounds.MinHeight)/bounds.HeightRange(), 0)
}

// CanvasSize returns the size of the image the Bounds cover at the given scale: the width and depth multiplied by
// scale and rounded up.
func (bounds Bounds) CanvasSize(scale float64) image.Point {
	return image.Pt(
		int(math.Ceil(bounds.Width()*scale)),
		int(math.Ceil(bounds.Depth()*scale)),
	)
}

// Transform returns the transform mapping model space into the image space covered by the Bounds at the given scale.
func (bounds Bounds) Transform(scale float64) Matrix2x4 {
	return NewTopDownTransform(bounds.MinX, bounds.MinZ, scale)
}
