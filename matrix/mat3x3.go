package matrix

import (
	"github.com/echoflaresat/geomkit/scalar"
	"github.com/echoflaresat/geomkit/vectors"
)

// Mat3x3 is a row-major 3x3 matrix, used for rotations and scales.
type Mat3x3 [3][3]float64

func Zero3x3() Mat3x3 {
	return Mat3x3{}
}

func Identity3x3() Mat3x3 {
	return Mat3x3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

func (m Mat3x3) Add(o Mat3x3) Mat3x3 {
	for i := range m {
		for j := range m[i] {
			m[i][j] += o[i][j]
		}
	}
	return m
}

func (m Mat3x3) Sub(o Mat3x3) Mat3x3 {
	for i := range m {
		for j := range m[i] {
			m[i][j] -= o[i][j]
		}
	}
	return m
}

func (m Mat3x3) MulScalar(s float64) Mat3x3 {
	for i := range m {
		for j := range m[i] {
			m[i][j] *= s
		}
	}
	return m
}

func (m Mat3x3) Div(s float64) (Mat3x3, error) {
	if s == 0 {
		return Mat3x3{}, scalar.ErrZeroDivisor
	}
	return m.MulScalar(1 / s), nil
}

// Mul returns m * o.
func (m Mat3x3) Mul(o Mat3x3) Mat3x3 {
	var r Mat3x3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return r
}

// Mul3x4 returns m * o.
func (m Mat3x3) Mul3x4(o Mat3x4) Mat3x4 {
	var r Mat3x4
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return r
}

func (m Mat3x3) Transpose() Mat3x3 {
	var r Mat3x3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[j][i] = m[i][j]
		}
	}
	return r
}

func (m Mat3x3) Determinant() float64 {
	return det3(m[0][0], m[0][1], m[0][2], m[1][0], m[1][1], m[1][2], m[2][0], m[2][1], m[2][2])
}

// Inverse returns the adjugate divided by the determinant.
func (m Mat3x3) Inverse() (Mat3x3, error) {
	d := m.Determinant()
	if scalar.IsZero(d) {
		return Mat3x3{}, ErrSingular
	}
	inv := 1 / d
	return Mat3x3{
		{
			(m[1][1]*m[2][2] - m[1][2]*m[2][1]) * inv,
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]) * inv,
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) * inv,
		},
		{
			(m[1][2]*m[2][0] - m[1][0]*m[2][2]) * inv,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) * inv,
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]) * inv,
		},
		{
			(m[1][0]*m[2][1] - m[1][1]*m[2][0]) * inv,
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]) * inv,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) * inv,
		},
	}, nil
}

// TransformVec3 returns the row vector product v * m.
func (m Mat3x3) TransformVec3(v vectors.Vec3) vectors.Vec3 {
	return vectors.Vec3{
		X: v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0],
		Y: v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1],
		Z: v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2],
	}
}

func (m Mat3x3) Equal(o Mat3x3) bool {
	for i := range m {
		if !equalRows(m[i][:], o[i][:]) {
			return false
		}
	}
	return true
}

func (m Mat3x3) IsZero() bool {
	return m.Equal(Mat3x3{})
}

func (m Mat3x3) IsIdentity() bool {
	return m.Equal(Identity3x3())
}

func (m Mat3x3) String() string {
	return format("M3x3", m[0][:], m[1][:], m[2][:])
}
