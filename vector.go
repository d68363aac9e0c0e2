package wiresphere

import (
	"math"
	"strconv"
)

// WorldRight represents a unit vector in the global direction of +X on the right-handed coordinate system used by wiresphere (right).
var WorldRight = NewVector(1, 0, 0)

// WorldUp represents a unit vector in the global direction of +Y (upwards).
var WorldUp = NewVector(0, 1, 0)

// WorldBackward represents a unit vector in the global direction of +Z (backwards, towards the viewer).
var WorldBackward = NewVector(0, 0, 1)

// Vector represents a 3D Vector, which can be used for usual 3D applications (position, direction, velocity, etc).
// The fourth component, W, is only used when a Vector has been transformed into clip space.
// Vector functions return modified copies, so method-chaining is easy: `a.Add(b).Sub(c).Unit()`.
type Vector struct {
	X float64 // The X (1st) component of the Vector
	Y float64 // The Y (2nd) component of the Vector
	Z float64 // The Z (3rd) component of the Vector
	W float64 // The W (4th) component of the Vector; not used for most Vector functions
}

// NewVector creates a new Vector with the specified x, y, and z components. The W component is left at 0.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// NewVectorZero creates a new "zero-ed out" Vector.
func NewVectorZero() Vector {
	return Vector{}
}

// Add returns a copy of the calling Vector, added together with the other Vector provided (ignoring the W component).
func (vec Vector) Add(other Vector) Vector {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector, with the other Vector subtracted from it (ignoring the W component).
func (vec Vector) Sub(other Vector) Vector {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Scale scales a Vector by the given scalar (ignoring the W component).
func (vec Vector) Scale(scalar float64) Vector {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Lerp linearly interpolates from the calling Vector to the other Vector by the percentage given, including the W component.
func (vec Vector) Lerp(other Vector, percentage float64) Vector {
	vec.X += (other.X - vec.X) * percentage
	vec.Y += (other.Y - vec.Y) * percentage
	vec.Z += (other.Z - vec.Z) * percentage
	vec.W += (other.W - vec.W) * percentage
	return vec
}

// Cross returns a new Vector, indicating the cross product of the calling Vector and the provided other Vector.
// This function ignores the W component of both Vectors.
func (vec Vector) Cross(other Vector) Vector {
	return Vector{
		X: vec.Y*other.Z - vec.Z*other.Y,
		Y: vec.Z*other.X - vec.X*other.Z,
		Z: vec.X*other.Y - vec.Y*other.X,
	}
}

// Dot returns the dot product of a Vector and another Vector (ignoring the W component).
func (vec Vector) Dot(other Vector) float64 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Invert returns a copy of the Vector with all components negated.
func (vec Vector) Invert() Vector {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	vec.W = -vec.W
	return vec
}

// Magnitude returns the length of the Vector (ignoring the Vector's W component).
func (vec Vector) Magnitude() float64 {
	return math.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// MagnitudeSquared returns the squared length of the Vector (ignoring the W component); this is faster than Magnitude() as it avoids using math.Sqrt().
func (vec Vector) MagnitudeSquared() float64 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

// Distance returns the distance between the calling Vector and the other Vector.
func (vec Vector) Distance(other Vector) float64 {
	return vec.Sub(other).Magnitude()
}

// Unit returns a copy of the Vector, normalized (set to be of unit length).
// It does not alter the W component of the Vector. A zero Vector is returned unchanged.
func (vec Vector) Unit() Vector {
	l := vec.Magnitude()
	if l < 1e-8 {
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Equals returns true if the two Vectors are close enough in all values (excluding W).
func (vec Vector) Equals(other Vector) bool {
	eps := 1e-4
	return math.Abs(vec.X-other.X) <= eps &&
		math.Abs(vec.Y-other.Y) <= eps &&
		math.Abs(vec.Z-other.Z) <= eps
}

// IsZero returns true if the values in the Vector are extremely close to 0 (excluding W).
func (vec Vector) IsZero() bool {
	return vec.Equals(Vector{})
}

// Floats returns a [3]float64 array consisting of the Vector's X, Y, and Z components.
func (vec Vector) Floats() [3]float64 {
	return [3]float64{vec.X, vec.Y, vec.Z}
}

func (vec Vector) String() string {
	return "{" + strconv.FormatFloat(vec.X, 'f', -1, 64) + ", " +
		strconv.FormatFloat(vec.Y, 'f', -1, 64) + ", " +
		strconv.FormatFloat(vec.Z, 'f', -1, 64) + "}"
}
