package matrix

import (
	"github.com/echoflaresat/geomkit/scalar"
	"github.com/echoflaresat/geomkit/vectors"
)

// Mat4x4 is a row-major 4x4 matrix. Row 3 holds the translation.
type Mat4x4 [4][4]float64

func Zero4x4() Mat4x4 {
	return Mat4x4{}
}

func Identity4x4() Mat4x4 {
	return Mat4x4{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
}

func (m Mat4x4) Add(o Mat4x4) Mat4x4 {
	for i := range m {
		for j := range m[i] {
			m[i][j] += o[i][j]
		}
	}
	return m
}

func (m Mat4x4) Sub(o Mat4x4) Mat4x4 {
	for i := range m {
		for j := range m[i] {
			m[i][j] -= o[i][j]
		}
	}
	return m
}

func (m Mat4x4) MulScalar(s float64) Mat4x4 {
	for i := range m {
		for j := range m[i] {
			m[i][j] *= s
		}
	}
	return m
}

func (m Mat4x4) Div(s float64) (Mat4x4, error) {
	if s == 0 {
		return Mat4x4{}, scalar.ErrZeroDivisor
	}
	return m.MulScalar(1 / s), nil
}

// Mul returns m * o.
func (m Mat4x4) Mul(o Mat4x4) Mat4x4 {
	var r Mat4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j] + m[i][3]*o[3][j]
		}
	}
	return r
}

// Mul4x3 returns m * o.
func (m Mat4x4) Mul4x3(o Mat4x3) Mat4x3 {
	var r Mat4x3
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j] + m[i][3]*o[3][j]
		}
	}
	return r
}

func (m Mat4x4) Transpose() Mat4x4 {
	var r Mat4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[j][i] = m[i][j]
		}
	}
	return r
}

// minor returns the determinant of m without row r and column c.
func (m Mat4x4) minor(r, c int) float64 {
	var v [9]float64
	n := 0
	for i := 0; i < 4; i++ {
		if i == r {
			continue
		}
		for j := 0; j < 4; j++ {
			if j == c {
				continue
			}
			v[n] = m[i][j]
			n++
		}
	}
	return det3(v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7], v[8])
}

func (m Mat4x4) cofactor(r, c int) float64 {
	if (r+c)%2 == 1 {
		return -m.minor(r, c)
	}
	return m.minor(r, c)
}

// Determinant expands along the first row.
func (m Mat4x4) Determinant() float64 {
	var d float64
	for j := 0; j < 4; j++ {
		d += m[0][j] * m.cofactor(0, j)
	}
	return d
}

// Inverse returns the adjugate divided by the determinant.
func (m Mat4x4) Inverse() (Mat4x4, error) {
	d := m.Determinant()
	if scalar.IsZero(d) {
		return Mat4x4{}, ErrSingular
	}
	var r Mat4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[j][i] = m.cofactor(i, j) / d
		}
	}
	return r, nil
}

// TransformVec4 returns the row vector product v * m.
func (m Mat4x4) TransformVec4(v vectors.Vec4) vectors.Vec4 {
	return vectors.Vec4{
		X: v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + v.W*m[3][0],
		Y: v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + v.W*m[3][1],
		Z: v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + v.W*m[3][2],
		W: v.X*m[0][3] + v.Y*m[1][3] + v.Z*m[2][3] + v.W*m[3][3],
	}
}

// TransformPoint applies m to the point (v, 1) and drops the resulting w.
func (m Mat4x4) TransformPoint(v vectors.Vec3) vectors.Vec3 {
	return m.TransformVec4(vectors.Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 1}).XYZ()
}

// Linear returns the upper-left 3x3 block.
func (m Mat4x4) Linear() Mat3x3 {
	return Mat3x3{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
		{m[2][0], m[2][1], m[2][2]},
	}
}

func (m Mat4x4) Equal(o Mat4x4) bool {
	for i := range m {
		if !equalRows(m[i][:], o[i][:]) {
			return false
		}
	}
	return true
}

func (m Mat4x4) IsZero() bool {
	return m.Equal(Mat4x4{})
}

func (m Mat4x4) IsIdentity() bool {
	return m.Equal(Identity4x4())
}

func (m Mat4x4) String() string {
	return format("M4x4", m[0][:], m[1][:], m[2][:], m[3][:])
}
