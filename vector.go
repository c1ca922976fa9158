package colladarender

import (
	"fmt"
	"math"
)

// VecX represents a unit vector along the model's X axis (one of the two image axes of a top-down map).
var VecX = NewVector(1, 0, 0)

// VecY represents a unit vector along the model's Y axis, which is height (up).
var VecY = NewVector(0, 1, 0)

// VecZ represents a unit vector along the model's Z axis (the other image axis of a top-down map).
var VecZ = NewVector(0, 0, 1)

// Vector represents a 3D Vector. It's used for vertex positions, and also for RGB control points when building color maps
// (X, Y, and Z standing in for R, G, and B respectively).
// Any Vector functions that modify the calling Vector return copies of the modified Vector, meaning you can do method-chaining easily.
type Vector struct {
	X float64 // The X (1st) component of the Vector
	Y float64 // The Y (2nd) component of the Vector; this is height
	Z float64 // The Z (3rd) component of the Vector
}

// NewVector creates a new Vector with the specified x, y, and z components.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// NewVectorZero creates a new "zero-ed out" Vector, with the values of 0, 0, and 0.
func NewVectorZero() Vector {
	return Vector{}
}

// Add returns a copy of the calling vector, added together with the other Vector provided.
func (vec Vector) Add(other Vector) Vector {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector, with the other Vector subtracted from it.
func (vec Vector) Sub(other Vector) Vector {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Scale scales a Vector by the given scalar.
func (vec Vector) Scale(scalar float64) Vector {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Blend linearly interpolates between the calling Vector and the other Vector provided, returning vec*(1-t) + other*t
// componentwise. A t of 0 gives the calling Vector back, and a t of 1 gives the other Vector.
func (vec Vector) Blend(other Vector, t float64) Vector {
	return vec.Scale(1 - t).Add(other.Scale(t))
}

// Magnitude returns the length of the Vector.
func (vec Vector) Magnitude() float64 {
	return math.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// Floats returns a [3]float64 array consisting of the Vector's contents.
func (vec Vector) Floats() [3]float64 {
	return [3]float64{vec.X, vec.Y, vec.Z}
}

// Equals returns true if the two Vectors are close enough in all values.
func (vec Vector) Equals(other Vector) bool {

	eps := 1e-4

	if math.Abs(float64(vec.X-other.X)) > eps || math.Abs(float64(vec.Y-other.Y)) > eps || math.Abs(float64(vec.Z-other.Z)) > eps {
		return false
	}

	return true

}

// IsZero returns true if the values in the Vector are extremely close to 0.
func (vec Vector) IsZero() bool {
	return vec.Equals(Vector{})
}

// IsFinite returns true if none of the Vector's components are NaN or infinite.
func (vec Vector) IsFinite() bool {
	for _, f := range vec.Floats() {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

func (vec Vector) String() string {
	return fmt.Sprintf("{%.2f, %.2f, %.2f}", vec.X, vec.Y, vec.Z)
}
