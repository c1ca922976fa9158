// Package colors contains named colors (i.e. "DarkBlue()", "WarmOrange()", etc), and named color maps to render height
// maps with.
package colors

import "github.com/solarlune/colladarender"

// Transparent is fully transparent black.
func Transparent() colladarender.Color {
	return colladarender.NewColor(0, 0, 0, 0)
}

// White is opaque white.
func White() colladarender.Color {
	return colladarender.NewColor(1, 1, 1, 1)
}

// Black is opaque black.
func Black() colladarender.Color {
	return colladarender.NewColor(0, 0, 0, 1)
}

// DarkBlue (0, 0, 0.3) colors the lowest parts of a map drawn with the default color map.
func DarkBlue() colladarender.Color {
	return colladarender.NewColor(0, 0, 0.3, 1)
}

// LightPurple (0.8, 0.6, 1) is the second anchor of the default color map.
func LightPurple() colladarender.Color {
	return colladarender.NewColor(0.8, 0.6, 1, 1)
}

// WarmOrange (1, 0.6, 0.4) is the third anchor of the default color map.
func WarmOrange() colladarender.Color {
	return colladarender.NewColor(1, 0.6, 0.4, 1)
}

// NearBlack is a very dark red (0.2, 0, 0) that colors the highest parts of a map drawn with the default color map.
func NearBlack() colladarender.Color {
	return colladarender.NewColor(0.2, 0, 0, 1)
}
