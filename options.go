package colladarender

import (
	"github.com/tanema/gween/ease"
)

// DefaultScale is the number of pixels per model unit used by default.
const DefaultScale = 8

// DefaultOutlineOffset is how far up the color map, by default, a triangle's outline color is picked from compared to
// its fill color.
const DefaultOutlineOffset = 0.15

// RenderOptions represents options one can use to tweak how a height map is rendered.
type RenderOptions struct {
	Scale         int      // Pixels per model unit along both image axes.
	ColorMap      ColorMap // The colors heights are mapped onto; the lowest triangles get the first color.
	OutlineOffset float64  // Added to a triangle's normalized height to pick its outline color.

	// Easing reshapes normalized heights (in the 0-1 range) before they're looked up in the ColorMap. A nil Easing
	// leaves heights as they are. gween works in float32, so any Easing (even ease.Linear) rounds heights first.
	Easing ease.TweenFunc

	// Supersample renders the map at Scale * Supersample pixels per unit, then shrinks it back down to the size
	// Scale gives, smoothing edges. Values below 2 disable supersampling.
	Supersample int
}

// DefaultRenderOptions creates an instance of RenderOptions with the default settings: a scale of 8, the shared
// default color map, an outline offset of 0.15, no easing, and no supersampling.
func DefaultRenderOptions() *RenderOptions {
	return &RenderOptions{
		Scale:         DefaultScale,
		ColorMap:      SharedColorMap(),
		OutlineOffset: DefaultOutlineOffset,
		Supersample:   1,
	}
}

// Validate returns a UserError if the RenderOptions can't be used to render.
func (opts *RenderOptions) Validate() error {

	if opts.Scale <= 0 {
		return NewUserError("scale must be positive, not %d", opts.Scale)
	}

	if len(opts.ColorMap) == 0 {
		return NewUserError("color map is empty")
	}

	if opts.Supersample < 0 {
		return NewUserError("supersample must not be negative, not %d", opts.Supersample)
	}

	return nil

}

// ease applies the options' Easing to a normalized height.
func (opts *RenderOptions) ease(t float64) float64 {
	if opts.Easing == nil {
		return t
	}
	return float64(opts.Easing(float32(t), 0, 1, 1))
}

// samplesPerUnit returns the scale the canvas is actually drawn at, taking supersampling into account.
func (opts *RenderOptions) samplesPerUnit() int {
	if opts.Supersample > 1 {
		return opts.Scale * opts.Supersample
	}
	return opts.Scale
}
