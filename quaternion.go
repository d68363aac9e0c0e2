package wiresphere

import "math"

// Quaternion represents a rotation as an X, Y, Z, and W component, in the order glTF stores them.
type Quaternion struct {
	X, Y, Z, W float64
}

// NewQuaternion returns a new Quaternion with the provided components.
func NewQuaternion(x, y, z, w float64) Quaternion {
	return Quaternion{x, y, z, w}
}

// Magnitude returns the length of the Quaternion.
func (quat Quaternion) Magnitude() float64 {
	return math.Sqrt(quat.X*quat.X + quat.Y*quat.Y + quat.Z*quat.Z + quat.W*quat.W)
}

// Unit returns a normalized copy of the Quaternion.
func (quat Quaternion) Unit() Quaternion {
	m := quat.Magnitude()
	if m == 0 {
		return NewQuaternion(0, 0, 0, 1)
	}
	return NewQuaternion(quat.X/m, quat.Y/m, quat.Z/m, quat.W/m)
}

// ToMatrix4 returns the rotation Matrix4 the (normalized) Quaternion represents.
func (quat Quaternion) ToMatrix4() Matrix4 {

	q := quat.Unit()

	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z

	return Matrix4{
		{1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy), 0},
		{2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx), 0},
		{2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy), 0},
		{0, 0, 0, 1},
	}

}

// Floats returns the Quaternion as an [X, Y, Z, W] array.
func (quat Quaternion) Floats() [4]float64 {
	return [4]float64{quat.X, quat.Y, quat.Z, quat.W}
}
