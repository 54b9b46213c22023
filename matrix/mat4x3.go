package matrix

import (
	"github.com/echoflaresat/geomkit/scalar"
	"github.com/echoflaresat/geomkit/vectors"
)

// Mat4x3 is a row-major matrix of four rows and three columns. It stores an
// affine transform compactly: a 3x3 linear part and a translation row.
type Mat4x3 [4][3]float64

func Zero4x3() Mat4x3 {
	return Mat4x3{}
}

// Identity4x3 is the affine identity (no rotation, no translation).
func Identity4x3() Mat4x3 {
	return Mat4x3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0, 0, 0}}
}

func (m Mat4x3) Add(o Mat4x3) Mat4x3 {
	for i := range m {
		for j := range m[i] {
			m[i][j] += o[i][j]
		}
	}
	return m
}

func (m Mat4x3) Sub(o Mat4x3) Mat4x3 {
	for i := range m {
		for j := range m[i] {
			m[i][j] -= o[i][j]
		}
	}
	return m
}

func (m Mat4x3) MulScalar(s float64) Mat4x3 {
	for i := range m {
		for j := range m[i] {
			m[i][j] *= s
		}
	}
	return m
}

func (m Mat4x3) Div(s float64) (Mat4x3, error) {
	if s == 0 {
		return Mat4x3{}, scalar.ErrZeroDivisor
	}
	return m.MulScalar(1 / s), nil
}

// Mul3x3 returns m * o.
func (m Mat4x3) Mul3x3(o Mat3x3) Mat4x3 {
	var r Mat4x3
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return r
}

// Mul3x4 returns m * o, a 4x4 matrix.
func (m Mat4x3) Mul3x4(o Mat3x4) Mat4x4 {
	var r Mat4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return r
}

func (m Mat4x3) Transpose() Mat3x4 {
	var r Mat3x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			r[j][i] = m[i][j]
		}
	}
	return r
}

// TransformPoint applies m to the homogeneous point (v, 1).
func (m Mat4x3) TransformPoint(v vectors.Vec3) vectors.Vec3 {
	return vectors.Vec3{
		X: v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + m[3][0],
		Y: v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + m[3][1],
		Z: v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + m[3][2],
	}
}

// Expand returns m as a 4x4 matrix with last column (0,0,0,1).
func (m Mat4x3) Expand() Mat4x4 {
	var r Mat4x4
	for i := 0; i < 4; i++ {
		r[i][0], r[i][1], r[i][2] = m[i][0], m[i][1], m[i][2]
	}
	r[3][3] = 1
	return r
}

func (m Mat4x3) Equal(o Mat4x3) bool {
	for i := range m {
		if !equalRows(m[i][:], o[i][:]) {
			return false
		}
	}
	return true
}

func (m Mat4x3) IsZero() bool {
	return m.Equal(Mat4x3{})
}

func (m Mat4x3) String() string {
	return format("M4x3", m[0][:], m[1][:], m[2][:], m[3][:])
}
