package mathutil

import (
	"math"
	"testing"
)

func TestAffineMulPoint(t *testing.T) {
	v := Vec3{1, 2, 3}
	if got := AffineIdentity().MulPoint(v); got != v {
		t.Errorf("identity.MulPoint(%v) = %v", v, got)
	}

	// Pure translation.
	m := FromMat3Translation(Mat3Identity(), Vec3{10, -2, 0.5})
	if got := m.MulPoint(v); got != (Vec3{11, 0, 3.5}) {
		t.Errorf("translate.MulPoint(%v) = %v, want {11 0 3.5}", v, got)
	}
}

func TestFromMat3Translation(t *testing.T) {
	r := RotZ(math.Pi / 2)
	tr := Vec3{1, 0, 0}
	m := FromMat3Translation(r, tr)

	// The affine form applies the rotation, then adds the translation.
	got := m.MulPoint(Vec3{1, 0, 0})
	want := r.MulVec3(Vec3{1, 0, 0}).Add(tr)
	if !got.Eq(want, 1e-12) {
		t.Errorf("MulPoint = %v, want %v", got, want)
	}
}

func TestAffineMul(t *testing.T) {
	a := FromMat3Translation(RotZ(0.4), Vec3{1, 2, 3})
	b := FromMat3Translation(RotX(-1.1), Vec3{-5, 0, 2})
	id := AffineIdentity()

	if got := a.Mul(id); got != a {
		t.Errorf("m*I = %v, want %v", got, a)
	}
	if got := id.Mul(a); got != a {
		t.Errorf("I*m = %v, want %v", got, a)
	}

	// Composition agrees with applying the transforms one at a time.
	p := Vec3{1, -2, 3}
	got := a.Mul(b).MulPoint(p)
	want := a.MulPoint(b.MulPoint(p))
	if !got.Eq(want, 1e-12) {
		t.Errorf("(a*b)p = %v, want %v", got, want)
	}
}

func TestAffineIsIdentity(t *testing.T) {
	if !AffineIdentity().IsIdentity() {
		t.Error("IsIdentity() = false for the identity")
	}

	near := AffineIdentity()
	near[1] = 1e-9
	if !near.IsIdentity() {
		t.Error("IsIdentity() = false within tolerance")
	}

	if FromMat3Translation(Mat3Identity(), Vec3{0, 0, 1e-3}).IsIdentity() {
		t.Error("IsIdentity() = true for a translated transform")
	}
}
