package wiresphere

import (
	"math"
	"strconv"
)

// Matrix4 represents a 4x4 matrix for translation, scale, and rotation. A Matrix4 in wiresphere is row-major (i.e. the X axis is matrix[0]),
// and Vectors are treated as row vectors, so transforms combine left to right: `scale.Mult(rotation).Mult(translation)`.
type Matrix4 [4][4]float64

// NewMatrix4 returns a new identity Matrix4.
func NewMatrix4() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// NewMatrix4Translate returns a new identity Matrix4, but with the x, y, and z translation components set as provided.
func NewMatrix4Translate(x, y, z float64) Matrix4 {
	mat := NewMatrix4()
	mat[3][0] = x
	mat[3][1] = y
	mat[3][2] = z
	return mat
}

// NewMatrix4Scale returns a new identity Matrix4, but with the scale components set as provided. 1, 1, 1 is the default.
func NewMatrix4Scale(x, y, z float64) Matrix4 {
	mat := NewMatrix4()
	mat[0][0] = x
	mat[1][1] = y
	mat[2][2] = z
	return mat
}

// NewMatrix4Rotate returns a new Matrix4 designed to rotate by the angle given (in radians) along the axis given [x, y, z].
// This rotation works as though you pierced the object utilizing the matrix through by the axis, and then rotated it
// counter-clockwise by the angle in radians.
func NewMatrix4Rotate(x, y, z, angle float64) Matrix4 {

	// Default to spinning on +Y axis if there is no valid axis
	if x == 0 && y == 0 && z == 0 {
		y = 1
	}

	mat := NewMatrix4()
	axis := NewVector(x, y, z).Unit()
	s := math.Sin(angle)
	c := math.Cos(angle)
	m := 1 - c

	mat[0][0] = m*axis.X*axis.X + c
	mat[0][1] = m*axis.X*axis.Y + axis.Z*s
	mat[0][2] = m*axis.Z*axis.X - axis.Y*s

	mat[1][0] = m*axis.X*axis.Y - axis.Z*s
	mat[1][1] = m*axis.Y*axis.Y + c
	mat[1][2] = m*axis.Y*axis.Z + axis.X*s

	mat[2][0] = m*axis.Z*axis.X + axis.Y*s
	mat[2][1] = m*axis.Y*axis.Z - axis.X*s
	mat[2][2] = m*axis.Z*axis.Z + c

	return mat

}

// NewProjectionPerspective generates a perspective frustum Matrix4. fovy is the vertical field of view in degrees, aspect is the
// width of the view divided by its height, and near and far are the clipping planes. Points in front of the camera (down -Z in view space)
// end up with a positive W after projection.
func NewProjectionPerspective(fovy, aspect, near, far float64) Matrix4 {

	f := 1 / math.Tan(ToRadians(fovy)/2)

	return Matrix4{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, -(far + near) / (far - near), -1},
		{0, 0, -(2 * far * near) / (far - near), 0},
	}

}

// NewLookAtMatrix generates a rotation Matrix4 that points an object's -Z axis from the from position towards the to position, using
// up (usually +Y) to keep the object level. This is the orientation a Camera expects, as cameras look down their local -Z axis.
func NewLookAtMatrix(from, to, up Vector) Matrix4 {

	// If from and to are the same, then an identity Matrix4 should be a sensible default
	if from.Equals(to) {
		return NewMatrix4()
	}

	back := from.Sub(to).Unit()
	up = up.Unit()

	// If back is parallel to up, the matrix would collapse, so we sub up out with another axis
	if back.Equals(up) || back.Equals(up.Invert()) {
		if !up.Equals(WorldBackward) && !up.Equals(WorldBackward.Invert()) {
			up = WorldBackward
		} else {
			up = WorldRight
		}
	}

	right := up.Cross(back).Unit()
	up = back.Cross(right)

	return Matrix4{
		{right.X, right.Y, right.Z, 0},
		{up.X, up.Y, up.Z, 0},
		{back.X, back.Y, back.Z, 0},
		{0, 0, 0, 1},
	}

}

// Right returns the right-facing rotational component of the Matrix4. For an identity matrix, this would be [1, 0, 0], or +X.
func (matrix Matrix4) Right() Vector {
	return NewVector(matrix[0][0], matrix[0][1], matrix[0][2]).Unit()
}

// Up returns the upward rotational component of the Matrix4. For an identity matrix, this would be [0, 1, 0], or +Y.
func (matrix Matrix4) Up() Vector {
	return NewVector(matrix[1][0], matrix[1][1], matrix[1][2]).Unit()
}

// Forward returns the forward rotational component of the Matrix4. For an identity matrix, this would be [0, 0, 1], or +Z (towards the viewer).
func (matrix Matrix4) Forward() Vector {
	return NewVector(matrix[2][0], matrix[2][1], matrix[2][2]).Unit()
}

// Row returns the indiced row from the Matrix4 as a Vector, including the W component.
func (matrix Matrix4) Row(rowIndex int) Vector {
	return Vector{
		X: matrix[rowIndex][0],
		Y: matrix[rowIndex][1],
		Z: matrix[rowIndex][2],
		W: matrix[rowIndex][3],
	}
}

// SetRow sets the Matrix4 with the row in rowIndex set to the 4D vector passed.
func (matrix *Matrix4) SetRow(rowIndex int, vec Vector) {
	matrix[rowIndex][0] = vec.X
	matrix[rowIndex][1] = vec.Y
	matrix[rowIndex][2] = vec.Z
	matrix[rowIndex][3] = vec.W
}

// Transposed transposes a Matrix4. For rotation matrices, this is equivalent to inverting it.
func (matrix Matrix4) Transposed() Matrix4 {
	out := NewMatrix4()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = matrix[j][i]
		}
	}
	return out
}

// Inverted returns an inverted version of the Matrix4. A singular Matrix4 returns the identity matrix.
func (matrix Matrix4) Inverted() Matrix4 {

	// Cofactor expansion over 2x2 sub-determinants of the lower two rows and the upper two rows.
	s0 := matrix[0][0]*matrix[1][1] - matrix[1][0]*matrix[0][1]
	s1 := matrix[0][0]*matrix[1][2] - matrix[1][0]*matrix[0][2]
	s2 := matrix[0][0]*matrix[1][3] - matrix[1][0]*matrix[0][3]
	s3 := matrix[0][1]*matrix[1][2] - matrix[1][1]*matrix[0][2]
	s4 := matrix[0][1]*matrix[1][3] - matrix[1][1]*matrix[0][3]
	s5 := matrix[0][2]*matrix[1][3] - matrix[1][2]*matrix[0][3]

	c5 := matrix[2][2]*matrix[3][3] - matrix[3][2]*matrix[2][3]
	c4 := matrix[2][1]*matrix[3][3] - matrix[3][1]*matrix[2][3]
	c3 := matrix[2][1]*matrix[3][2] - matrix[3][1]*matrix[2][2]
	c2 := matrix[2][0]*matrix[3][3] - matrix[3][0]*matrix[2][3]
	c1 := matrix[2][0]*matrix[3][2] - matrix[3][0]*matrix[2][2]
	c0 := matrix[2][0]*matrix[3][1] - matrix[3][0]*matrix[2][1]

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0

	if math.Abs(det) < 1e-12 {
		return NewMatrix4()
	}

	inv := 1 / det

	m := Matrix4{}

	m[0][0] = (matrix[1][1]*c5 - matrix[1][2]*c4 + matrix[1][3]*c3) * inv
	m[0][1] = (-matrix[0][1]*c5 + matrix[0][2]*c4 - matrix[0][3]*c3) * inv
	m[0][2] = (matrix[3][1]*s5 - matrix[3][2]*s4 + matrix[3][3]*s3) * inv
	m[0][3] = (-matrix[2][1]*s5 + matrix[2][2]*s4 - matrix[2][3]*s3) * inv

	m[1][0] = (-matrix[1][0]*c5 + matrix[1][2]*c2 - matrix[1][3]*c1) * inv
	m[1][1] = (matrix[0][0]*c5 - matrix[0][2]*c2 + matrix[0][3]*c1) * inv
	m[1][2] = (-matrix[3][0]*s5 + matrix[3][2]*s2 - matrix[3][3]*s1) * inv
	m[1][3] = (matrix[2][0]*s5 - matrix[2][2]*s2 + matrix[2][3]*s1) * inv

	m[2][0] = (matrix[1][0]*c4 - matrix[1][1]*c2 + matrix[1][3]*c0) * inv
	m[2][1] = (-matrix[0][0]*c4 + matrix[0][1]*c2 - matrix[0][3]*c0) * inv
	m[2][2] = (matrix[3][0]*s4 - matrix[3][1]*s2 + matrix[3][3]*s0) * inv
	m[2][3] = (-matrix[2][0]*s4 + matrix[2][1]*s2 - matrix[2][3]*s0) * inv

	m[3][0] = (-matrix[1][0]*c3 + matrix[1][1]*c1 - matrix[1][2]*c0) * inv
	m[3][1] = (matrix[0][0]*c3 - matrix[0][1]*c1 + matrix[0][2]*c0) * inv
	m[3][2] = (-matrix[3][0]*s3 + matrix[3][1]*s1 - matrix[3][2]*s0) * inv
	m[3][3] = (matrix[2][0]*s3 - matrix[2][1]*s1 + matrix[2][2]*s0) * inv

	return m

}

// Mult multiplies a Matrix4 by another provided Matrix4 - this effectively combines them, applying the calling Matrix4 first.
func (matrix Matrix4) Mult(other Matrix4) Matrix4 {

	out := Matrix4{}

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = matrix[r][0]*other[0][c] + matrix[r][1]*other[1][c] + matrix[r][2]*other[2][c] + matrix[r][3]*other[3][c]
		}
	}

	return out

}

// MultVec multiplies the vector provided by the Matrix4, giving a vector that has been rotated, scaled, or translated as desired.
// The W component of the result is left at 0.
func (matrix Matrix4) MultVec(vect Vector) Vector {
	return Vector{
		X: matrix[0][0]*vect.X + matrix[1][0]*vect.Y + matrix[2][0]*vect.Z + matrix[3][0],
		Y: matrix[0][1]*vect.X + matrix[1][1]*vect.Y + matrix[2][1]*vect.Z + matrix[3][1],
		Z: matrix[0][2]*vect.X + matrix[1][2]*vect.Y + matrix[2][2]*vect.Z + matrix[3][2],
	}
}

// MultVecW multiplies the vector provided by the Matrix4, including the fourth (W) component, which is taken to be 1 for the input.
// This is used to move a point into clip space.
func (matrix Matrix4) MultVecW(vect Vector) Vector {
	return Vector{
		X: matrix[0][0]*vect.X + matrix[1][0]*vect.Y + matrix[2][0]*vect.Z + matrix[3][0],
		Y: matrix[0][1]*vect.X + matrix[1][1]*vect.Y + matrix[2][1]*vect.Z + matrix[3][1],
		Z: matrix[0][2]*vect.X + matrix[1][2]*vect.Y + matrix[2][2]*vect.Z + matrix[3][2],
		W: matrix[0][3]*vect.X + matrix[1][3]*vect.Y + matrix[2][3]*vect.Z + matrix[3][3],
	}
}

// ToQuaternion returns a Quaternion representative of the Matrix4's rotation (assuming it is just a purely rotational Matrix4).
func (matrix Matrix4) ToQuaternion() Quaternion {

	trace := matrix[0][0] + matrix[1][1] + matrix[2][2]

	switch {

	case trace > 0:
		s := 0.5 / math.Sqrt(trace+1)
		return NewQuaternion(
			(matrix[1][2]-matrix[2][1])*s,
			(matrix[2][0]-matrix[0][2])*s,
			(matrix[0][1]-matrix[1][0])*s,
			0.25/s,
		)

	case matrix[0][0] > matrix[1][1] && matrix[0][0] > matrix[2][2]:
		s := 2 * math.Sqrt(1+matrix[0][0]-matrix[1][1]-matrix[2][2])
		return NewQuaternion(
			0.25*s,
			(matrix[1][0]+matrix[0][1])/s,
			(matrix[2][0]+matrix[0][2])/s,
			(matrix[1][2]-matrix[2][1])/s,
		)

	case matrix[1][1] > matrix[2][2]:
		s := 2 * math.Sqrt(1+matrix[1][1]-matrix[0][0]-matrix[2][2])
		return NewQuaternion(
			(matrix[1][0]+matrix[0][1])/s,
			0.25*s,
			(matrix[2][1]+matrix[1][2])/s,
			(matrix[2][0]-matrix[0][2])/s,
		)

	default:
		s := 2 * math.Sqrt(1+matrix[2][2]-matrix[0][0]-matrix[1][1])
		return NewQuaternion(
			(matrix[2][0]+matrix[0][2])/s,
			(matrix[2][1]+matrix[1][2])/s,
			0.25*s,
			(matrix[0][1]-matrix[1][0])/s,
		)

	}

}

// Equals returns true if the matrix equals the same values in the provided Other Matrix4.
func (matrix Matrix4) Equals(other Matrix4) bool {
	eps := 1e-4
	for i := 0; i < len(matrix); i++ {
		for j := 0; j < len(matrix[i]); j++ {
			if math.Abs(matrix[i][j]-other[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

var identityMatrix = NewMatrix4()

// IsIdentity returns true if the matrix is an unmodified identity matrix.
func (matrix Matrix4) IsIdentity() bool {
	return matrix.Equals(identityMatrix)
}

func (matrix Matrix4) String() string {
	s := "{"
	for i, y := range matrix {
		for _, x := range y {
			s += strconv.FormatFloat(x, 'f', -1, 64) + ", "
		}
		if i < len(matrix)-1 {
			s += "\n"
		}
	}
	s += "}"
	return s
}
