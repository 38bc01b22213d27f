package mathutil

import (
	"math"
	"testing"
)

func quatNear(a, b Quat, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestAxisAngle(t *testing.T) {
	// A full turn lands on the antipodal identity.
	q := AxisAngle(2*math.Pi, Vec3{1, 2, 3})
	if !quatNear(q, Quat{0, 0, 0, -1}, 1e-12) {
		t.Errorf("AxisAngle(2pi) = %v, want {0 0 0 -1}", q)
	}

	q = AxisAngle(math.Pi, Vec3{0, 0, 2})
	if !quatNear(q, Quat{0, 0, 1, 0}, 1e-12) {
		t.Errorf("AxisAngle(pi, z) = %v, want {0 0 1 0}", q)
	}

	if n := AxisAngle(1.234, Vec3{3, -1, 2}).Norm(); math.Abs(n-1) > 1e-12 {
		t.Errorf("AxisAngle norm = %v, want 1", n)
	}
}

func TestQuatInverse(t *testing.T) {
	q := Quat{1, 1, 1, 1}
	got := q.Inverse()
	want := Quat{-0.25, -0.25, -0.25, 0.25}
	if !quatNear(got, want, 1e-12) {
		t.Errorf("Inverse() = %v, want %v", got, want)
	}

	// q * q^-1 = identity.
	id := q.Mul(q.Inverse())
	if !quatNear(id, QuatIdentity(), 1e-12) {
		t.Errorf("q*q^-1 = %v, want identity", id)
	}

	if got := (Quat{}).Inverse(); got != QuatIdentity() {
		t.Errorf("Inverse() of zero quat = %v, want identity", got)
	}
}

func TestQuatMul(t *testing.T) {
	q1 := Quat{1, 3, 4, 2}
	q2 := Quat{3, 1, 4, 2}
	got := q1.Mul(q2)
	want := Quat{16, 16, 8, -18}
	if got != want {
		t.Errorf("Mul() = %v, want %v", got, want)
	}

	id := QuatIdentity()
	if got := q1.Mul(id); got != q1 {
		t.Errorf("q*identity = %v, want %v", got, q1)
	}
	if got := id.Mul(q1); got != q1 {
		t.Errorf("identity*q = %v, want %v", got, q1)
	}
}

func TestQuatRotate(t *testing.T) {
	// Quarter turn about +z takes +x to -y.
	q := AxisAngle(math.Pi/2, Vec3{0, 0, 1})
	got := q.Rotate(Vec3{1, 0, 0})
	if !got.Eq(Vec3{0, -1, 0}, 1e-12) {
		t.Errorf("Rotate(+x) = %v, want {0 -1 0}", got)
	}

	// Rotation preserves length.
	v := Vec3{1, 2, 3}
	if got := q.Rotate(v); math.Abs(got.Len()-v.Len()) > 1e-12 {
		t.Errorf("Rotate changed length: %v -> %v", v.Len(), got.Len())
	}

	// Inverse rotation undoes the rotation.
	back := q.Inverse().Rotate(q.Rotate(v))
	if !back.Eq(v, 1e-12) {
		t.Errorf("inverse roundtrip = %v, want %v", back, v)
	}
}

func TestQuatToMat3(t *testing.T) {
	quats := []Quat{
		QuatIdentity(),
		AxisAngle(math.Pi/2, Vec3{0, 0, 1}),
		AxisAngle(1.1, Vec3{1, 2, 3}),
		EulerToQuat(0.3, -0.7, 2.1),
	}
	vecs := []Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, -2, 3}}
	for _, q := range quats {
		m := q.ToMat3()
		for _, v := range vecs {
			want := q.Rotate(v)
			got := m.MulVec3(v)
			if !got.Eq(want, 1e-12) {
				t.Errorf("ToMat3 mismatch for q=%v v=%v: mat %v, quat %v", q, v, got, want)
			}
		}
	}
}

func TestToAxisAngle(t *testing.T) {
	cases := []struct {
		name  string
		q     Quat
		angle float64
		axis  Vec3
	}{
		{"identity", QuatIdentity(), 0, Vec3{0, 0, 1}},
		{"quarter turn about z", AxisAngle(math.Pi/2, Vec3{0, 0, 1}), math.Pi / 2, Vec3{0, 0, 1}},
		{"half turn about x", AxisAngle(math.Pi, Vec3{1, 0, 0}), math.Pi, Vec3{1, 0, 0}},
		{"skew axis", AxisAngle(1.1, Vec3{3, 0, 4}), 1.1, Vec3{0.6, 0, 0.8}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			angle, axis := c.q.ToAxisAngle()
			if math.Abs(angle-c.angle) > 1e-12 {
				t.Errorf("angle = %v, want %v", angle, c.angle)
			}
			if !axis.Eq(c.axis, 1e-12) {
				t.Errorf("axis = %v, want %v", axis, c.axis)
			}
		})
	}
}

func TestEulerToQuat(t *testing.T) {
	// A single-axis Euler rotation matches the axis-angle form.
	cases := []struct {
		rx, ry, rz float64
		axis       Vec3
		angle      float64
	}{
		{0.8, 0, 0, Vec3{1, 0, 0}, 0.8},
		{0, 0.8, 0, Vec3{0, 1, 0}, 0.8},
		{0, 0, 0.8, Vec3{0, 0, 1}, 0.8},
	}
	for _, c := range cases {
		got := EulerToQuat(c.rx, c.ry, c.rz)
		want := AxisAngle(c.angle, c.axis)
		if !quatNear(got, want, 1e-12) {
			t.Errorf("EulerToQuat(%v,%v,%v) = %v, want %v", c.rx, c.ry, c.rz, got, want)
		}
	}

	if got := EulerToQuat(0, 0, 0); !quatNear(got, QuatIdentity(), 1e-12) {
		t.Errorf("EulerToQuat(0,0,0) = %v, want identity", got)
	}
}
