package mathutil

import (
	"math"
	"testing"
)

func mat3Near(a, b Mat3, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestMat3MulVec3(t *testing.T) {
	v := Vec3{1, 2, 3}
	if got := Mat3Identity().MulVec3(v); got != v {
		t.Errorf("identity.MulVec3(%v) = %v", v, got)
	}

	m := Mat3{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	got := m.MulVec3(Vec3{1, 0, -1})
	want := Vec3{-2, -2, -2}
	if got != want {
		t.Errorf("MulVec3() = %v, want %v", got, want)
	}
}

func TestMat3Mul(t *testing.T) {
	m := Mat3{
		2, 0, 1,
		0, 1, 0,
		-1, 3, 2,
	}
	id := Mat3Identity()
	if got := Mat3Mul(m, id); got != m {
		t.Errorf("m*I = %v, want %v", got, m)
	}
	if got := Mat3Mul(id, m); got != m {
		t.Errorf("I*m = %v, want %v", got, m)
	}

	// (a*b)v == a(bv)
	a := RotZ(0.7)
	b := RotX(-1.2)
	v := Vec3{1, 2, 3}
	got := Mat3Mul(a, b).MulVec3(v)
	want := a.MulVec3(b.MulVec3(v))
	if !got.Eq(want, 1e-12) {
		t.Errorf("(a*b)v = %v, want %v", got, want)
	}
}

func TestMat3Transpose(t *testing.T) {
	m := Mat3{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	want := Mat3{
		1, 4, 7,
		2, 5, 8,
		3, 6, 9,
	}
	if got := m.Transpose(); got != want {
		t.Errorf("Transpose() = %v, want %v", got, want)
	}
	if got := m.Transpose().Transpose(); got != m {
		t.Errorf("double transpose = %v, want %v", got, m)
	}

	// Rotation matrices are orthogonal: transpose equals inverse.
	r := RotY(0.9)
	if got := Mat3Mul(r, r.Transpose()); !mat3Near(got, Mat3Identity(), 1e-12) {
		t.Errorf("r*r^T = %v, want identity", got)
	}
}

func TestRotZ(t *testing.T) {
	got := RotZ(math.Pi / 2).MulVec3(Vec3{1, 0, 0})
	if !got.Eq(Vec3{0, 1, 0}, 1e-12) {
		t.Errorf("RotZ(pi/2)*x = %v, want {0 1 0}", got)
	}
}

func TestDeg2Rad(t *testing.T) {
	if got := Deg2Rad(180); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("Deg2Rad(180) = %v, want pi", got)
	}
	if got := Deg2Rad(0); got != 0 {
		t.Errorf("Deg2Rad(0) = %v, want 0", got)
	}
}
