package mathutil

import "math"

// Quat represents a rotation quaternion (x, y, z, w).
type Quat [4]float64

// QuatIdentity returns the no-rotation quaternion.
func QuatIdentity() Quat {
	return Quat{0, 0, 0, 1}
}

// AxisAngle builds a unit quaternion rotating by angle radians around axis.
func AxisAngle(angle float64, axis Vec3) Quat {
	a := axis.Normalize()
	s := math.Sin(angle / 2)
	return Quat{a[0] * s, a[1] * s, a[2] * s, math.Cos(angle / 2)}
}

// EulerToQuat converts Euler XYZ (radians) to a quaternion.
func EulerToQuat(rx, ry, rz float64) Quat {
	cx, sx := math.Cos(rx*0.5), math.Sin(rx*0.5)
	cy, sy := math.Cos(ry*0.5), math.Sin(ry*0.5)
	cz, sz := math.Cos(rz*0.5), math.Sin(rz*0.5)

	return Quat{
		sx*cy*cz - cx*sy*sz, // x
		cx*sy*cz + sx*cy*sz, // y
		cx*cy*sz - sx*sy*cz, // z
		cx*cy*cz + sx*sy*sz, // w
	}
}

// ToAxisAngle decomposes a unit quaternion into the rotation it represents.
// The identity (and anything within float noise of it) reports a zero angle
// about +z.
func (q Quat) ToAxisAngle() (angle float64, axis Vec3) {
	v := Vec3{q[0], q[1], q[2]}
	l := v.Len()
	if l < 1e-12 {
		return 0, Vec3{0, 0, 1}
	}
	return 2 * math.Atan2(l, q[3]), v.Scale(1 / l)
}

// Mul returns the Hamilton product a × b.
func (a Quat) Mul(b Quat) Quat {
	ax, ay, az, aw := a[0], a[1], a[2], a[3]
	bx, by, bz, bw := b[0], b[1], b[2], b[3]
	return Quat{
		aw*bx + ax*bw + ay*bz - az*by,
		aw*by - ax*bz + ay*bw + az*bx,
		aw*bz + ax*by - ay*bx + az*bw,
		aw*bw - ax*bx - ay*by - az*bz,
	}
}

// Conj returns the conjugate (-x, -y, -z, w).
func (q Quat) Conj() Quat {
	return Quat{-q[0], -q[1], -q[2], q[3]}
}

// Norm returns the quaternion magnitude.
func (q Quat) Norm() float64 {
	return math.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
}

// Inverse returns q⁻¹ = conj(q) / |q|².
// The inverse of the zero quaternion is the identity.
func (q Quat) Inverse() Quat {
	n2 := q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3]
	if n2 < 1e-24 {
		return QuatIdentity()
	}
	inv := 1.0 / n2
	return Quat{-q[0] * inv, -q[1] * inv, -q[2] * inv, q[3] * inv}
}

// Rotate applies the rotation to v as q⁻¹·v·q.
func (q Quat) Rotate(v Vec3) Vec3 {
	p := Quat{v[0], v[1], v[2], 0}
	r := q.Inverse().Mul(p).Mul(q)
	return Vec3{r[0], r[1], r[2]}
}

// ToMat3 expands a unit quaternion to the 3×3 matrix M with
// M·v == q.Rotate(v), for rotating whole vertex sets cheaply.
func (q Quat) ToMat3() Mat3 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat3{
		1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy),
		2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx),
		2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy),
	}
}
