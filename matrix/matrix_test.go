package matrix

import (
	"testing"

	"github.com/echoflaresat/geomkit/scalar"
	"github.com/echoflaresat/geomkit/vectors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	m3 = Mat3x3{{2, 0, 1}, {1, 3, 2}, {1, 1, 2}}
	m4 = Mat4x4{{1, 0, 2, -1}, {3, 0, 0, 5}, {2, 1, 4, -3}, {1, 0, 5, 0}}
)

func TestTransposeRoundTrip(t *testing.T) {
	m2 := Mat2x2{{1, 2}, {3, 4}}
	m34 := Mat3x4{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}}

	assert.True(t, m2.Transpose().Transpose().Equal(m2))
	assert.True(t, m3.Transpose().Transpose().Equal(m3))
	assert.True(t, m4.Transpose().Transpose().Equal(m4))
	assert.True(t, m34.Transpose().Transpose().Equal(m34))
	assert.True(t, m34.Transpose().Equal(Mat4x3{{1, 5, 9}, {2, 6, 10}, {3, 7, 11}, {4, 8, 12}}))
}

func TestArithmetic(t *testing.T) {
	a := Mat2x2{{1, 2}, {3, 4}}
	b := Mat2x2{{5, 6}, {7, 8}}

	assert.Equal(t, Mat2x2{{6, 8}, {10, 12}}, a.Add(b))
	assert.Equal(t, Mat2x2{{-4, -4}, {-4, -4}}, a.Sub(b))
	assert.Equal(t, Mat2x2{{2, 4}, {6, 8}}, a.MulScalar(2))
	assert.Equal(t, Mat2x2{{19, 22}, {43, 50}}, a.Mul(b))

	d, err := a.Div(2)
	require.NoError(t, err)
	assert.Equal(t, Mat2x2{{0.5, 1}, {1.5, 2}}, d)

	_, err = m3.Div(0)
	assert.ErrorIs(t, err, scalar.ErrZeroDivisor)
	_, err = m4.Div(0)
	assert.ErrorIs(t, err, scalar.ErrZeroDivisor)
	_, err = Mat3x4{}.Div(0)
	assert.ErrorIs(t, err, scalar.ErrZeroDivisor)
	_, err = Mat4x3{}.Div(0)
	assert.ErrorIs(t, err, scalar.ErrZeroDivisor)
}

func TestIdentity(t *testing.T) {
	assert.True(t, m3.Mul(Identity3x3()).Equal(m3))
	assert.True(t, Identity4x4().Mul(m4).Equal(m4))
	assert.True(t, Identity2x2().IsIdentity())
	assert.True(t, Identity3x3().IsIdentity())
	assert.True(t, Identity4x4().IsIdentity())
	assert.True(t, Zero4x3().IsZero())
	assert.True(t, Zero3x4().IsZero())
	assert.False(t, m3.IsZero())
}

func TestDeterminant(t *testing.T) {
	assert.Equal(t, -2.0, Mat2x2{{1, 2}, {3, 4}}.Determinant())
	assert.Equal(t, 6.0, m3.Determinant())
	assert.Equal(t, 30.0, m4.Determinant())
	assert.Equal(t, 1.0, Identity4x4().Determinant())
}

func TestInverse(t *testing.T) {
	inv2, err := Mat2x2{{4, 7}, {2, 6}}.Inverse()
	require.NoError(t, err)
	assert.True(t, inv2.Mul(Mat2x2{{4, 7}, {2, 6}}).IsIdentity())

	inv3, err := m3.Inverse()
	require.NoError(t, err)
	assert.True(t, m3.Mul(inv3).IsIdentity(), inv3.String())

	inv4, err := m4.Inverse()
	require.NoError(t, err)
	assert.True(t, m4.Mul(inv4).IsIdentity(), inv4.String())
	assert.True(t, inv4.Mul(m4).IsIdentity(), inv4.String())

	_, err = Mat3x3{{1, 2, 3}, {2, 4, 6}, {0, 1, 1}}.Inverse()
	assert.ErrorIs(t, err, ErrSingular)
	_, err = Zero4x4().Inverse()
	assert.ErrorIs(t, err, ErrSingular)
	_, err = Mat2x2{{1, 2}, {2, 4}}.Inverse()
	assert.ErrorIs(t, err, ErrSingular)
}

func TestRectangularProducts(t *testing.T) {
	a := Mat3x4{{1, 0, 0, 1}, {0, 1, 0, 2}, {0, 0, 1, 3}}
	b := a.Transpose()

	assert.Equal(t, Mat3x3{{2, 2, 3}, {2, 5, 6}, {3, 6, 10}}, a.Mul4x3(b))
	assert.True(t, a.Mul4x4(Identity4x4()).Equal(a))
	assert.True(t, Identity3x3().Mul3x4(a).Equal(a))
	assert.True(t, b.Mul3x3(Identity3x3()).Equal(b))
	assert.True(t, Identity4x4().Mul4x3(b).Equal(b))

	outer := b.Mul3x4(a)
	assert.Equal(t, 14.0, outer[3][3])
	assert.Equal(t, 1.0, outer[0][0])
	assert.Equal(t, outer, outer.Transpose())
}

func TestTransformVectors(t *testing.T) {
	rotZ := Mat3x3{{0, 1, 0}, {-1, 0, 0}, {0, 0, 1}}
	assert.Equal(t, vectors.Vec3{X: 0, Y: 1, Z: 0}, rotZ.TransformVec3(vectors.UnitX))

	translate := Identity4x4()
	translate[3] = [4]float64{1, 2, 3, 1}
	assert.Equal(t, vectors.Vec3{X: 2, Y: 3, Z: 4}, translate.TransformPoint(vectors.Vec3{X: 1, Y: 1, Z: 1}))
	assert.Equal(t, vectors.Vec4{X: 1, Y: 1, Z: 1, W: 0}, translate.TransformVec4(vectors.Vec4{X: 1, Y: 1, Z: 1}))
	assert.Equal(t, Identity3x3(), translate.Linear())

	affine := Identity4x3()
	affine[3] = [3]float64{1, 2, 3}
	assert.Equal(t, vectors.Vec3{X: 1, Y: 2, Z: 3}, affine.TransformPoint(vectors.Zero()))
	assert.Equal(t, translate, affine.Expand())
}

func TestString(t *testing.T) {
	assert.Equal(t, "M2x2(1,2,3,4)", Mat2x2{{1, 2}, {3, 4}}.String())
	assert.Equal(t, "M3x3(1,0,0,0,1,0,0,0,1)", Identity3x3().String())
	assert.Equal(t, "M3x4(1,2,3,4,5,6,7,8,9,10,11,12.5)", Mat3x4{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12.5}}.String())
	assert.Equal(t, "M4x3(0,0,0,0,0,0,0,0,0,0,0,-1)", Mat4x3{3: {0, 0, -1}}.String())
	assert.Equal(t, "M4x4(1,0,0,0,0,1,0,0,0,0,1,0,0,0,0,1)", Identity4x4().String())
}
