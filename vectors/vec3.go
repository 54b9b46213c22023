package vectors

import (
	"math"

	"github.com/echoflaresat/geomkit/scalar"
)

// Vec3 is a 3D vector or point with float64 components.
type Vec3 struct {
	X, Y, Z float64
}

func Zero() Vec3 {
	return Vec3{}
}

// Unit axis vectors.
var (
	UnitX = Vec3{X: 1}
	UnitY = Vec3{Y: 1}
	UnitZ = Vec3{Z: 1}
)

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Mul returns the component-wise product of v and o.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Div returns v / s.
func (v Vec3) Div(s float64) (Vec3, error) {
	if s == 0 {
		return Vec3{}, scalar.ErrZeroDivisor
	}
	return v.Scale(1 / s), nil
}

func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product v · o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Length returns the Euclidean length ||v||.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec3) SquaredLength() float64 {
	return v.Dot(v)
}

// Normalize returns the unit vector v / ||v||.
// If ||v|| == 0, it returns the zero vector (0,0,0).
func (v Vec3) Normalize() Vec3 {
	n := v.Length()
	if n == 0 {
		return Vec3{}
	}
	inv := 1.0 / n
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Orthogonal returns a unit vector that's perpendicular to v.
func (v Vec3) Orthogonal() Vec3 {
	if math.Abs(v.X) < 0.9 {
		return v.Cross(UnitX).Normalize()
	}
	return v.Cross(UnitY).Normalize()
}

// Distance returns ||v - o||.
func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Length()
}

// Lerp interpolates linearly from v (t = 0) to o (t = 1).
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return v.Add(o.Sub(v).Scale(t))
}

// Equal compares component-wise within epsilon.
func (v Vec3) Equal(o Vec3) bool {
	return scalar.AreEqual(v.X, o.X) && scalar.AreEqual(v.Y, o.Y) && scalar.AreEqual(v.Z, o.Z)
}

func (v Vec3) IsZero() bool {
	return v.Equal(Vec3{})
}

func (v Vec3) XYZ() Vec3 {
	return v
}

func (v Vec3) WithXYZ(p Vec3) Vec3 {
	return p
}

func (v Vec3) String() string {
	return "V3(" + scalar.Format(v.X) + "," + scalar.Format(v.Y) + "," + scalar.Format(v.Z) + ")"
}

func Distance(v1, v2 Vec3) float64 {
	return v1.Sub(v2).Length()
}
