package vectors

import (
	"math"

	"github.com/echoflaresat/geomkit/scalar"
)

// Vec4 is a homogeneous point or direction. Add, Sub and Scale act on all
// four components; Dot, Length and Distance only read xyz.
type Vec4 struct {
	X, Y, Z, W float64
}

func Zero4() Vec4 {
	return Vec4{}
}

// Point4 returns the homogeneous point (x, y, z, 1).
func Point4(x, y, z float64) Vec4 {
	return Vec4{x, y, z, 1}
}

func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

func (v Vec4) Mul(o Vec4) Vec4 {
	return Vec4{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}

func (v Vec4) Div(s float64) (Vec4, error) {
	if s == 0 {
		return Vec4{}, scalar.ErrZeroDivisor
	}
	return v.Scale(1 / s), nil
}

func (v Vec4) Negate() Vec4 {
	return Vec4{-v.X, -v.Y, -v.Z, -v.W}
}

// Dot returns the dot product of the xyz parts.
func (v Vec4) Dot(o Vec4) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Length returns the length of the xyz part.
func (v Vec4) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec4) SquaredLength() float64 {
	return v.Dot(v)
}

// Normalize scales xyz to unit length and keeps W.
func (v Vec4) Normalize() Vec4 {
	n := v.Length()
	if n == 0 {
		return Vec4{W: v.W}
	}
	return Vec4{v.X / n, v.Y / n, v.Z / n, v.W}
}

// Cross returns the cross product of the xyz parts with W = 0.
func (v Vec4) Cross(o Vec4) Vec4 {
	c := v.XYZ().Cross(o.XYZ())
	return Vec4{c.X, c.Y, c.Z, 0}
}

func (v Vec4) Distance(o Vec4) float64 {
	return v.Sub(o).Length()
}

func (v Vec4) Lerp(o Vec4, t float64) Vec4 {
	return v.Add(o.Sub(v).Scale(t))
}

// Homogenize divides every component by W.
func (v Vec4) Homogenize() (Vec4, error) {
	if v.W == 0 {
		return Vec4{}, scalar.ErrZeroDivisor
	}
	return Vec4{v.X / v.W, v.Y / v.W, v.Z / v.W, 1}, nil
}

func (v Vec4) Equal(o Vec4) bool {
	return scalar.AreEqual(v.X, o.X) && scalar.AreEqual(v.Y, o.Y) &&
		scalar.AreEqual(v.Z, o.Z) && scalar.AreEqual(v.W, o.W)
}

func (v Vec4) IsZero() bool {
	return v.Equal(Vec4{})
}

func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// WithXYZ replaces xyz and keeps W.
func (v Vec4) WithXYZ(p Vec3) Vec4 {
	return Vec4{p.X, p.Y, p.Z, v.W}
}

func (v Vec4) String() string {
	return "V4(" + scalar.Format(v.X) + "," + scalar.Format(v.Y) + "," +
		scalar.Format(v.Z) + "," + scalar.Format(v.W) + ")"
}
