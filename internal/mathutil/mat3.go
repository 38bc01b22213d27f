package mathutil

// Mat3 is a 3×3 matrix, rows stored first.
type Mat3 [9]float64

func Mat3Identity() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Mat3Mul multiplies two matrices.
func Mat3Mul(a, b Mat3) Mat3 {
	var m Mat3
	for r := 0; r < 9; r += 3 {
		for c := 0; c < 3; c++ {
			m[r+c] = a[r]*b[c] + a[r+1]*b[3+c] + a[r+2]*b[6+c]
		}
	}
	return m
}

// MulVec3 applies the matrix to a vector.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2],
		m[3]*v[0] + m[4]*v[1] + m[5]*v[2],
		m[6]*v[0] + m[7]*v[1] + m[8]*v[2],
	}
}

// Transpose flips the matrix about its diagonal. Every Mat3 built in this
// package is a rotation, so this doubles as the inverse.
func (m Mat3) Transpose() Mat3 {
	var t Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			t[c*3+r] = m[r*3+c]
		}
	}
	return t
}
