package colladarender

import (
	"image/color"
	"math"
)

// A Color represents a color, containing R, G, B, and A components, each expected to range from 0 to 1.
type Color struct {
	R, G, B, A float64
}

// NewColor returns a new Color, with the provided R, G, B, and A components expected to range from 0 to 1.
func NewColor(r, g, b, a float64) Color {
	return Color{r, g, b, a}
}

// NewColorFromVector returns an opaque Color using the provided Vector's X, Y, and Z components as R, G, and B.
func NewColorFromVector(vec Vector) Color {
	return Color{vec.X, vec.Y, vec.Z, 1}
}

// NewColorFromStd converts a standard library color.Color into a Color.
func NewColorFromStd(c color.Color) Color {
	nc := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		float64(nc.R) / math.MaxUint16,
		float64(nc.G) / math.MaxUint16,
		float64(nc.B) / math.MaxUint16,
		float64(nc.A) / math.MaxUint16,
	}
}

// Vector returns the R, G, and B components of the Color as a Vector.
func (c Color) Vector() Vector {
	return Vector{c.R, c.G, c.B}
}

// Blend returns a*(1-t) + b*t componentwise, including the alpha channel.
func (c Color) Blend(other Color, t float64) Color {
	return Color{
		c.R*(1-t) + other.R*t,
		c.G*(1-t) + other.G*t,
		c.B*(1-t) + other.B*t,
		c.A*(1-t) + other.A*t,
	}
}

// To8Bit converts the Color to 8-bit channels by multiplying each component by 256 and truncating.
// A component of exactly 1.0 becomes 256 here; NRGBA clips that when the color is actually drawn.
func (c Color) To8Bit() [4]int {
	return [4]int{
		int(c.R * 256),
		int(c.G * 256),
		int(c.B * 256),
		int(c.A * 256),
	}
}

// NRGBA returns the Color as a non-premultiplied 8-bit color.NRGBA, using the To8Bit() conversion and clipping each
// channel to the 0-255 range.
func (c Color) NRGBA() color.NRGBA {
	c8 := c.To8Bit()
	return color.NRGBA{
		clip8(c8[0]),
		clip8(c8[1]),
		clip8(c8[2]),
		clip8(c8[3]),
	}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func clip8(v int) uint8 {
	return uint8(clamp(v, 0, math.MaxUint8))
}
