package colladarender

import (
	"fmt"
	"strconv"
)

// Matrix2x4 represents an affine transform from homogeneous 3D coordinates (x, y, z, 1) down to 2D (px, py). A Matrix2x4 is
// row-major; row 0 produces px, and row 1 produces py. The last column is the translation.
type Matrix2x4 [2][4]float64

// NewMatrix2x4 returns a Matrix2x4 projecting onto the two axes given, with no translation or scaling. For example,
// NewMatrix2x4(VecX, VecZ) keeps a point's X and Z components and discards Y.
func NewMatrix2x4(xAxis, yAxis Vector) Matrix2x4 {
	return Matrix2x4{
		{xAxis.X, xAxis.Y, xAxis.Z, 0},
		{yAxis.X, yAxis.Y, yAxis.Z, 0},
	}
}

// NewTopDownTransform returns the transform used to map a scene into image space: the model's X axis becomes px and its
// Z axis becomes py, translated so that (minX, minZ) lands on the origin, then scaled by the provided scale.
// In other words, px = scale * (x - minX), and py = scale * (z - minZ).
func NewTopDownTransform(minX, minZ, scale float64) Matrix2x4 {
	return NewMatrix2x4(VecX, VecZ).Translated(-minX, -minZ).Scaled(scale)
}

// Translated returns a copy of the Matrix2x4 with the given offsets added after projection.
func (matrix Matrix2x4) Translated(dx, dy float64) Matrix2x4 {
	matrix[0][3] += dx
	matrix[1][3] += dy
	return matrix
}

// Scaled returns a copy of the Matrix2x4 with its output (including translation) scaled uniformly.
func (matrix Matrix2x4) Scaled(scale float64) Matrix2x4 {
	for i := range matrix {
		for j := range matrix[i] {
			matrix[i][j] *= scale
		}
	}
	return matrix
}

// MultVec multiplies the homogeneous form of the vector provided, (X, Y, Z, 1), by the Matrix2x4.
func (matrix Matrix2x4) MultVec(vect Vector) (float64, float64) {
	return matrix[0][0]*vect.X + matrix[0][1]*vect.Y + matrix[0][2]*vect.Z + matrix[0][3],
		matrix[1][0]*vect.X + matrix[1][1]*vect.Y + matrix[1][2]*vect.Z + matrix[1][3]
}

// Project transforms each vertex of the Triangle provided, returning the three resulting 2D points.
func (matrix Matrix2x4) Project(tri Triangle) [3]Point {
	points := [3]Point{}
	for i, v := range tri {
		points[i].X, points[i].Y = matrix.MultVec(v)
	}
	return points
}

// Equals returns true if the two matrices are close enough in all values.
func (matrix Matrix2x4) Equals(other Matrix2x4) bool {

	eps := 1e-6

	for i := range matrix {
		for j := range matrix[i] {
			if d := matrix[i][j] - other[i][j]; d > eps || d < -eps {
				return false
			}
		}
	}

	return true

}

func (matrix Matrix2x4) String() string {
	s := "{"
	for i, y := range matrix {
		for _, x := range y {
			s += strconv.FormatFloat(x, 'f', -1, 64) + ", "
		}
		if i < len(matrix)-1 {
			s += "\n"
		}
	}
	return s + "}"
}

// Point is a position in image space, in pixels.
type Point struct {
	X, Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}
