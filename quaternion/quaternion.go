// Package quaternion implements rotation quaternions over vectors.Vec3.
package quaternion

import (
	"math"

	"github.com/echoflaresat/geomkit/matrix"
	"github.com/echoflaresat/geomkit/scalar"
	"github.com/echoflaresat/geomkit/vectors"
	"github.com/soniakeys/unit"
)

// Quat is x*i + y*j + z*k + w.
type Quat struct {
	X, Y, Z, W float64
}

func Identity() Quat {
	return Quat{W: 1}
}

// FromAxisAngle builds the rotation of angle around axis. The axis is
// normalized first; a zero axis yields the identity.
func FromAxisAngle(axis vectors.Vec3, angle unit.Angle) Quat {
	axis = axis.Normalize()
	if axis.IsZero() {
		return Identity()
	}
	half := unit.Angle(angle.Rad() / 2)
	s := half.Sin()
	return Quat{axis.X * s, axis.Y * s, axis.Z * s, half.Cos()}
}

// FromEuler rotates about X first, then Y, then Z.
func FromEuler(x, y, z unit.Angle) Quat {
	qx := FromAxisAngle(vectors.UnitX, x)
	qy := FromAxisAngle(vectors.UnitY, y)
	qz := FromAxisAngle(vectors.UnitZ, z)
	return qz.Mul(qy).Mul(qx)
}

// FromMatrix extracts the rotation from a row-vector rotation matrix.
func FromMatrix(m matrix.Mat3x3) Quat {
	// m is the transpose of the column-vector form, so off-diagonal
	// differences are taken as m[j][i] - m[i][j].
	trace := m[0][0] + m[1][1] + m[2][2]
	var q Quat
	switch {
	case trace > 0:
		s := math.Sqrt(trace+1) * 2
		q = Quat{
			X: (m[1][2] - m[2][1]) / s,
			Y: (m[2][0] - m[0][2]) / s,
			Z: (m[0][1] - m[1][0]) / s,
			W: s / 4,
		}
	case m[0][0] > m[1][1] && m[0][0] > m[2][2]:
		s := math.Sqrt(1+m[0][0]-m[1][1]-m[2][2]) * 2
		q = Quat{
			X: s / 4,
			Y: (m[0][1] + m[1][0]) / s,
			Z: (m[2][0] + m[0][2]) / s,
			W: (m[1][2] - m[2][1]) / s,
		}
	case m[1][1] > m[2][2]:
		s := math.Sqrt(1+m[1][1]-m[0][0]-m[2][2]) * 2
		q = Quat{
			X: (m[0][1] + m[1][0]) / s,
			Y: s / 4,
			Z: (m[1][2] + m[2][1]) / s,
			W: (m[2][0] - m[0][2]) / s,
		}
	default:
		s := math.Sqrt(1+m[2][2]-m[0][0]-m[1][1]) * 2
		q = Quat{
			X: (m[2][0] + m[0][2]) / s,
			Y: (m[1][2] + m[2][1]) / s,
			Z: s / 4,
			W: (m[0][1] - m[1][0]) / s,
		}
	}
	return q.Normalize()
}

// Mul returns the Hamilton product q * o, which applies o first.
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

func (q Quat) Add(o Quat) Quat {
	return Quat{q.X + o.X, q.Y + o.Y, q.Z + o.Z, q.W + o.W}
}

func (q Quat) Scale(s float64) Quat {
	return Quat{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

func (q Quat) Conjugate() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

func (q Quat) Dot(o Quat) float64 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

func (q Quat) Length() float64 {
	return math.Sqrt(q.Dot(q))
}

// Normalize returns q scaled to unit length, or q unchanged if it has none.
func (q Quat) Normalize() Quat {
	n := q.Length()
	if n == 0 {
		return q
	}
	return q.Scale(1 / n)
}

func (q Quat) Inverse() (Quat, error) {
	n := q.Dot(q)
	if n == 0 {
		return Quat{}, scalar.ErrZeroDivisor
	}
	return q.Conjugate().Scale(1 / n), nil
}

// Rotate returns q v q* for a unit quaternion q.
func (q Quat) Rotate(v vectors.Vec3) vectors.Vec3 {
	u := vectors.Vec3{X: q.X, Y: q.Y, Z: q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// Matrix returns the rotation matrix for row vectors, so that
// m.TransformVec3(v) == q.Rotate(v).
func (q Quat) Matrix() matrix.Mat3x3 {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	return matrix.Mat3x3{
		{1 - 2*(y*y+z*z), 2 * (x*y + z*w), 2 * (x*z - y*w)},
		{2 * (x*y - z*w), 1 - 2*(x*x+z*z), 2 * (y*z + x*w)},
		{2 * (x*z + y*w), 2 * (y*z - x*w), 1 - 2*(x*x+y*y)},
	}
}

// AxisAngle returns the rotation axis and angle. The identity yields the X
// axis and a zero angle.
func (q Quat) AxisAngle() (vectors.Vec3, unit.Angle) {
	q = q.Normalize()
	if q.W < 0 {
		q = q.Scale(-1)
	}
	s := math.Sqrt(1 - q.W*q.W)
	if scalar.IsZero(s) {
		return vectors.UnitX, 0
	}
	return vectors.Vec3{X: q.X / s, Y: q.Y / s, Z: q.Z / s}, unit.Angle(2 * math.Acos(scalar.Clamp(q.W, -1, 1)))
}

// Lerp interpolates component-wise and normalizes the result.
func (q Quat) Lerp(o Quat, t float64) Quat {
	return q.Scale(1 - t).Add(o.Scale(t)).Normalize()
}

// Slerp interpolates along the shortest arc between q and o.
func (q Quat) Slerp(o Quat, t float64) Quat {
	cos := q.Dot(o)
	if cos < 0 {
		o = o.Scale(-1)
		cos = -cos
	}
	if cos > 1-1e-6 {
		return q.Lerp(o, t)
	}
	theta := math.Acos(cos)
	sin := math.Sin(theta)
	a := math.Sin((1-t)*theta) / sin
	b := math.Sin(t*theta) / sin
	return q.Scale(a).Add(o.Scale(b))
}

func (q Quat) Equal(o Quat) bool {
	return scalar.AreEqual(q.X, o.X) && scalar.AreEqual(q.Y, o.Y) &&
		scalar.AreEqual(q.Z, o.Z) && scalar.AreEqual(q.W, o.W)
}

func (q Quat) String() string {
	return "Q(" + scalar.Format(q.X) + "," + scalar.Format(q.Y) + "," +
		scalar.Format(q.Z) + "," + scalar.Format(q.W) + ")"
}
