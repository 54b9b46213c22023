package geom

import (
	"fmt"
	"math"

	"github.com/echoflaresat/geomkit/scalar"
	"github.com/echoflaresat/geomkit/vectors"
	"github.com/soniakeys/unit"
)

// Plane is the set of points with A*x + B*y + C*z + D = 0. The normal
// (A,B,C) need not be unit length; distance queries normalize on the fly.
type Plane struct {
	A, B, C, D float64
}

var (
	PlaneXY = Plane{C: 1}
	PlaneXZ = Plane{B: 1}
	PlaneYZ = Plane{A: 1}
)

func NewPlane(a, b, c, d float64) Plane {
	return Plane{a, b, c, d}
}

// PlaneFromPoints returns the plane through three points with normal
// (p2-p1) x (p3-p1), not normalized.
func PlaneFromPoints(p1, p2, p3 vectors.Vec3) (Plane, error) {
	pl := planeThrough(p1, p2, p3)
	if scalar.IsZero(pl.Normal().Length()) {
		return Plane{}, fmt.Errorf("%w: %s %s %s", ErrCollinearPoints, p1, p2, p3)
	}
	return pl, nil
}

func planeThrough(p1, p2, p3 vectors.Vec3) Plane {
	n := p2.Sub(p1).Cross(p3.Sub(p1))
	return Plane{n.X, n.Y, n.Z, -n.Dot(p1)}
}

// PlaneFromNormal returns the normalized plane with the given normal that
// passes through point.
func PlaneFromNormal(normal, point vectors.Vec3) Plane {
	n := normal.Normalize()
	return Plane{n.X, n.Y, n.Z, -n.Dot(point)}
}

func (p Plane) Normal() vectors.Vec3 {
	return vectors.Vec3{X: p.A, Y: p.B, Z: p.C}
}

// Normalize scales the plane so its normal has unit length. A plane without
// a normal is returned unchanged.
func (p Plane) Normalize() Plane {
	n := p.Normal().Length()
	if n == 0 {
		return p
	}
	return p.MulScalar(1 / n)
}

// SignedDistance is positive on the side the normal points to.
func (p Plane) SignedDistance(point vectors.Vec3) float64 {
	n := p.Normal().Length()
	if n == 0 {
		return 0
	}
	return (p.Normal().Dot(point) + p.D) / n
}

func (p Plane) PointDistance(point vectors.Vec3) float64 {
	return math.Abs(p.SignedDistance(point))
}

// PointProjection returns the orthogonal projection of point onto p.
func (p Plane) PointProjection(point vectors.Vec3) vectors.Vec3 {
	n := p.Normal().Normalize()
	return point.Sub(n.Scale(p.SignedDistance(point)))
}

func (p Plane) Contains(point vectors.Vec3) bool {
	return scalar.IsZero(p.SignedDistance(point))
}

// DotProduct returns the dot product of the normalized normals.
func (p Plane) DotProduct(o Plane) float64 {
	return p.Normal().Normalize().Dot(o.Normal().Normalize())
}

// Angle returns the angle between the two normals.
func (p Plane) Angle(o Plane) unit.Angle {
	return unit.Angle(math.Acos(scalar.Clamp(p.DotProduct(o), -1, 1)))
}

// IntersectionPoint returns the single point shared by three planes. It
// reports false when any two of them are parallel.
func (p Plane) IntersectionPoint(p2, p3 Plane) (vectors.Vec3, bool) {
	n1, n2, n3 := p.Normal(), p2.Normal(), p3.Normal()
	n23 := n2.Cross(n3)
	det := n1.Dot(n23)
	if scalar.IsZero(det) {
		return vectors.Vec3{}, false
	}
	sum := n23.Scale(-p.D).
		Add(n3.Cross(n1).Scale(-p2.D)).
		Add(n1.Cross(n2).Scale(-p3.D))
	return sum.Scale(1 / det), true
}

func (p Plane) MulScalar(s float64) Plane {
	return Plane{p.A * s, p.B * s, p.C * s, p.D * s}
}

func (p Plane) Div(s float64) (Plane, error) {
	if s == 0 {
		return Plane{}, scalar.ErrZeroDivisor
	}
	return p.MulScalar(1 / s), nil
}

// Negate flips the normal, swapping the positive and negative sides.
func (p Plane) Negate() Plane {
	return p.MulScalar(-1)
}

func (p Plane) Equal(o Plane) bool {
	return scalar.AreEqual(p.A, o.A) && scalar.AreEqual(p.B, o.B) &&
		scalar.AreEqual(p.C, o.C) && scalar.AreEqual(p.D, o.D)
}

func (p Plane) String() string {
	return "PL(" + scalar.Format(p.A) + "," + scalar.Format(p.B) + "," +
		scalar.Format(p.C) + "," + scalar.Format(p.D) + ")"
}
