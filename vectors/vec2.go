package vectors

import (
	"math"

	"github.com/echoflaresat/geomkit/scalar"
)

// Vec2 is a 2D vector or point.
type Vec2 struct {
	X, Y float64
}

func Zero2() Vec2 {
	return Vec2{}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

func (v Vec2) Div(s float64) (Vec2, error) {
	if s == 0 {
		return Vec2{}, scalar.ErrZeroDivisor
	}
	return v.Scale(1 / s), nil
}

func (v Vec2) Negate() Vec2 {
	return Vec2{-v.X, -v.Y}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec2) SquaredLength() float64 {
	return v.Dot(v)
}

// Normalize returns v / ||v||, or the zero vector when v has no length.
func (v Vec2) Normalize() Vec2 {
	n := v.Length()
	if n == 0 {
		return Vec2{}
	}
	return v.Scale(1 / n)
}

// Perp returns v rotated a quarter turn counter-clockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{-v.Y, v.X}
}

func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Length()
}

func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return v.Add(o.Sub(v).Scale(t))
}

func (v Vec2) Equal(o Vec2) bool {
	return scalar.AreEqual(v.X, o.X) && scalar.AreEqual(v.Y, o.Y)
}

func (v Vec2) IsZero() bool {
	return v.Equal(Vec2{})
}

// XYZ lifts v onto the z = 0 plane.
func (v Vec2) XYZ() Vec3 {
	return Vec3{v.X, v.Y, 0}
}

// WithXYZ drops the z component of p.
func (v Vec2) WithXYZ(p Vec3) Vec2 {
	return Vec2{p.X, p.Y}
}

func (v Vec2) String() string {
	return "V2(" + scalar.Format(v.X) + "," + scalar.Format(v.Y) + ")"
}
