package colladarender

// A Triangle is the unit the height map is drawn with: three vertices in model space, in the winding order they were
// loaded in. Triangles are values, so they can't change once loaded.
type Triangle [3]Vector

// NewTriangle creates a new Triangle from the three vertices given.
func NewTriangle(a, b, c Vector) Triangle {
	return Triangle{a, b, c}
}

// Height returns the triangle's height proxy: the sum (not the mean) of the Y components of its three vertices.
// It's used both to order triangles for drawing and to pick their colors.
func (tri Triangle) Height() float64 {
	return tri[0].Y + tri[1].Y + tri[2].Y
}

// Center returns the average of the triangle's vertices.
func (tri Triangle) Center() Vector {
	return tri[0].Add(tri[1]).Add(tri[2]).Scale(1.0 / 3.0)
}

// IsFinite returns true if every component of every vertex is a finite number.
func (tri Triangle) IsFinite() bool {
	return tri[0].IsFinite() && tri[1].IsFinite() && tri[2].IsFinite()
}

// triangulateFan appends the triangles of a convex polygon (given as positions in winding order) to tris, fanning out
// from the first vertex. Polygons with fewer than 3 vertices add nothing.
func triangulateFan(tris []Triangle, polygon []Vector) []Triangle {
	for i := 2; i < len(polygon); i++ {
		tris = append(tris, NewTriangle(polygon[0], polygon[i-1], polygon[i]))
	}
	return tris
}

// triangulateStrip appends the triangles of a triangle strip to tris, flipping every other triangle to keep the
// winding consistent.
func triangulateStrip(tris []Triangle, strip []Vector) []Triangle {
	for i := 2; i < len(strip); i++ {
		if i%2 == 0 {
			tris = append(tris, NewTriangle(strip[i-2], strip[i-1], strip[i]))
		} else {
			tris = append(tris, NewTriangle(strip[i-1], strip[i-2], strip[i]))
		}
	}
	return tris
}
