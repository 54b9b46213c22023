package matrix

import "github.com/echoflaresat/geomkit/scalar"

// Mat3x4 is a row-major matrix of three rows and four columns.
type Mat3x4 [3][4]float64

func Zero3x4() Mat3x4 {
	return Mat3x4{}
}

func (m Mat3x4) Add(o Mat3x4) Mat3x4 {
	for i := range m {
		for j := range m[i] {
			m[i][j] += o[i][j]
		}
	}
	return m
}

func (m Mat3x4) Sub(o Mat3x4) Mat3x4 {
	for i := range m {
		for j := range m[i] {
			m[i][j] -= o[i][j]
		}
	}
	return m
}

func (m Mat3x4) MulScalar(s float64) Mat3x4 {
	for i := range m {
		for j := range m[i] {
			m[i][j] *= s
		}
	}
	return m
}

func (m Mat3x4) Div(s float64) (Mat3x4, error) {
	if s == 0 {
		return Mat3x4{}, scalar.ErrZeroDivisor
	}
	return m.MulScalar(1 / s), nil
}

// Mul4x3 returns m * o, a 3x3 matrix.
func (m Mat3x4) Mul4x3(o Mat4x3) Mat3x3 {
	var r Mat3x3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				r[i][j] += m[i][k] * o[k][j]
			}
		}
	}
	return r
}

// Mul4x4 returns m * o, a 3x4 matrix.
func (m Mat3x4) Mul4x4(o Mat4x4) Mat3x4 {
	var r Mat3x4
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				r[i][j] += m[i][k] * o[k][j]
			}
		}
	}
	return r
}

func (m Mat3x4) Transpose() Mat4x3 {
	var r Mat4x3
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			r[j][i] = m[i][j]
		}
	}
	return r
}

func (m Mat3x4) Equal(o Mat3x4) bool {
	for i := range m {
		if !equalRows(m[i][:], o[i][:]) {
			return false
		}
	}
	return true
}

func (m Mat3x4) IsZero() bool {
	return m.Equal(Mat3x4{})
}

func (m Mat3x4) String() string {
	return format("M3x4", m[0][:], m[1][:], m[2][:])
}
