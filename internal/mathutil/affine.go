package mathutil

// Affine is a rigid transform held as the top three rows of a 4×4 matrix,
// row-major. The unstored fourth row is always (0 0 0 1). Body placements
// fold a rotation and a translation into one of these, so moving a vertex
// costs a single MulPoint.
type Affine [12]float64

// AffineIdentity returns the do-nothing transform.
func AffineIdentity() Affine {
	return Affine{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
	}
}

// FromMat3Translation builds the transform mapping v to m·v + t.
func FromMat3Translation(m Mat3, t Vec3) Affine {
	return Affine{
		m[0], m[1], m[2], t[0],
		m[3], m[4], m[5], t[1],
		m[6], m[7], m[8], t[2],
	}
}

// MulPoint applies the transform to a point.
func (a Affine) MulPoint(v Vec3) Vec3 {
	return Vec3{
		a[0]*v[0] + a[1]*v[1] + a[2]*v[2] + a[3],
		a[4]*v[0] + a[5]*v[1] + a[6]*v[2] + a[7],
		a[8]*v[0] + a[9]*v[1] + a[10]*v[2] + a[11],
	}
}

// Mul returns the transform that applies b first, then a.
func (a Affine) Mul(b Affine) Affine {
	var m Affine
	for r := 0; r < 12; r += 4 {
		for c := 0; c < 3; c++ {
			m[r+c] = a[r]*b[c] + a[r+1]*b[4+c] + a[r+2]*b[8+c]
		}
		m[r+3] = a[r]*b[3] + a[r+1]*b[7] + a[r+2]*b[11] + a[r+3]
	}
	return m
}

// IsIdentity reports whether applying the transform changes nothing, within
// float tolerance.
func (a Affine) IsIdentity() bool {
	id := AffineIdentity()
	for i := range a {
		d := a[i] - id[i]
		if d > 1e-8 || d < -1e-8 {
			return false
		}
	}
	return true
}
