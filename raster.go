package colladarender

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/vector"
)

// LineWidth is the width, in pixels, of triangle outlines.
const LineWidth = 1.0

// A Canvas is an RGBA image that polygons are composited onto, one over another, in the order they're drawn.
// There's no depth buffer; whatever is drawn last is on top.
type Canvas struct {
	Image      *image.RGBA
	rasterizer *vector.Rasterizer
}

// NewCanvas creates a new, fully transparent Canvas of the given size.
func NewCanvas(size image.Point) *Canvas {
	canvas := &Canvas{
		Image:      image.NewRGBA(image.Rectangle{Max: size}),
		rasterizer: vector.NewRasterizer(size.X, size.Y),
	}
	canvas.rasterizer.DrawOp = draw.Over
	return canvas
}

// Size returns the size of the Canvas, in pixels.
func (canvas *Canvas) Size() image.Point {
	return canvas.Image.Bounds().Size()
}

func (canvas *Canvas) reset() {
	size := canvas.Size()
	canvas.rasterizer.Reset(size.X, size.Y)
	canvas.rasterizer.DrawOp = draw.Over
}

func (canvas *Canvas) draw(c color.Color) {
	canvas.rasterizer.Draw(canvas.Image, canvas.Image.Bounds(), image.NewUniform(c), image.Point{})
}

// FillPolygon fills the closed polygon outlined by the points given with the provided color.
func (canvas *Canvas) FillPolygon(points []Point, c color.Color) {

	if len(points) < 3 {
		return
	}

	canvas.reset()

	canvas.rasterizer.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		canvas.rasterizer.LineTo(float32(p.X), float32(p.Y))
	}
	canvas.rasterizer.ClosePath()

	canvas.draw(c)

}

// StrokePolygon draws the closed outline of the polygon given (including the edge from the last point back to the
// first) using lines LineWidth pixels wide. Overlapping parts of the outline are only painted once.
func (canvas *Canvas) StrokePolygon(points []Point, c color.Color) {

	if len(points) == 0 {
		return
	}

	canvas.reset()

	for i := range points {
		canvas.addLine(points[i], points[(i+1)%len(points)])
	}

	canvas.draw(c)

}

// addLine adds a line segment from a to b to the rasterizer's path as a rectangle LineWidth wide, extended by half the
// line width past each end so that joints are covered. Every rectangle is wound the same way, so overlaps accumulate
// instead of cancelling out.
func (canvas *Canvas) addLine(a, b Point) {

	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)

	// A zero-length line still covers a LineWidth square.
	if length < 1e-9 {
		dx, dy, length = 1, 0, 1
	}

	dx, dy = dx/length, dy/length

	hw := LineWidth / 2
	nx, ny := -dy*hw, dx*hw

	ax, ay := a.X-dx*hw, a.Y-dy*hw
	bx, by := b.X+dx*hw, b.Y+dy*hw

	r := canvas.rasterizer
	r.MoveTo(float32(ax+nx), float32(ay+ny))
	r.LineTo(float32(bx+nx), float32(by+ny))
	r.LineTo(float32(bx-nx), float32(by-ny))
	r.LineTo(float32(ax-nx), float32(ay-ny))
	r.ClosePath()

}

// Rotated180 returns a copy of the Canvas's image turned upside down (flipped both horizontally and vertically).
func (canvas *Canvas) Rotated180() *image.RGBA {
	return transform.FlipV(transform.FlipH(canvas.Image))
}
