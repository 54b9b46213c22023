package matrix

import "github.com/echoflaresat/geomkit/scalar"

type Mat2x2 [2][2]float64

func Zero2x2() Mat2x2 {
	return Mat2x2{}
}

func Identity2x2() Mat2x2 {
	return Mat2x2{{1, 0}, {0, 1}}
}

func (m Mat2x2) Add(o Mat2x2) Mat2x2 {
	for i := range m {
		for j := range m[i] {
			m[i][j] += o[i][j]
		}
	}
	return m
}

func (m Mat2x2) Sub(o Mat2x2) Mat2x2 {
	for i := range m {
		for j := range m[i] {
			m[i][j] -= o[i][j]
		}
	}
	return m
}

func (m Mat2x2) MulScalar(s float64) Mat2x2 {
	for i := range m {
		for j := range m[i] {
			m[i][j] *= s
		}
	}
	return m
}

func (m Mat2x2) Div(s float64) (Mat2x2, error) {
	if s == 0 {
		return Mat2x2{}, scalar.ErrZeroDivisor
	}
	return m.MulScalar(1 / s), nil
}

func (m Mat2x2) Mul(o Mat2x2) Mat2x2 {
	var r Mat2x2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j]
		}
	}
	return r
}

func (m Mat2x2) Transpose() Mat2x2 {
	return Mat2x2{{m[0][0], m[1][0]}, {m[0][1], m[1][1]}}
}

func (m Mat2x2) Determinant() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

func (m Mat2x2) Inverse() (Mat2x2, error) {
	d := m.Determinant()
	if scalar.IsZero(d) {
		return Mat2x2{}, ErrSingular
	}
	return Mat2x2{{m[1][1] / d, -m[0][1] / d}, {-m[1][0] / d, m[0][0] / d}}, nil
}

func (m Mat2x2) Equal(o Mat2x2) bool {
	return equalRows(m[0][:], o[0][:]) && equalRows(m[1][:], o[1][:])
}

func (m Mat2x2) IsZero() bool {
	return m.Equal(Mat2x2{})
}

func (m Mat2x2) IsIdentity() bool {
	return m.Equal(Identity2x2())
}

func (m Mat2x2) String() string {
	return format("M2x2", m[0][:], m[1][:])
}
