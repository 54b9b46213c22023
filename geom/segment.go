package geom

import (
	"fmt"
	"math"

	"github.com/echoflaresat/geomkit/matrix"
	"github.com/echoflaresat/geomkit/quaternion"
	"github.com/echoflaresat/geomkit/scalar"
	"github.com/echoflaresat/geomkit/transform"
	"github.com/echoflaresat/geomkit/vectors"
)

// LineSegment is the closed segment between A and B.
type LineSegment[V vectors.Point[V]] struct {
	A, B V
}

func NewLineSegment[V vectors.Point[V]](a, b V) LineSegment[V] {
	return LineSegment[V]{A: a, B: b}
}

// UnitLine3 runs from the origin to (1,0,0).
func UnitLine3() LineSegment[vectors.Vec3] {
	return LineSegment[vectors.Vec3]{B: vectors.UnitX}
}

func (s LineSegment[V]) Length() float64 {
	return s.B.Sub(s.A).Length()
}

func (s LineSegment[V]) Center() V {
	return s.A.Add(s.B.Sub(s.A).Scale(0.5))
}

func (s LineSegment[V]) IsDegenerate() bool {
	return scalar.IsZero(s.Length())
}

func (s LineSegment[V]) validate() error {
	if s.IsDegenerate() {
		return fmt.Errorf("%w: %s", ErrDegenerateSegment, s)
	}
	return nil
}

// Intersection reports whether the segments share at least one point.
// Touching at an endpoint counts.
func (s LineSegment[V]) Intersection(o LineSegment[V]) (bool, error) {
	if err := s.validate(); err != nil {
		return false, err
	}
	if err := o.validate(); err != nil {
		return false, err
	}
	return scalar.IsZero(s.MinDistanceSegment(o)), nil
}

// IntersectionPoint classifies the shared points of two segments and returns
// them: one point for One, the two overlap boundaries for Two (the one
// nearest s.A first) and none for None or Infinite.
func (s LineSegment[V]) IntersectionPoint(o LineSegment[V]) (Intersections, []V, error) {
	if err := s.validate(); err != nil {
		return None, nil, err
	}
	if err := o.validate(); err != nil {
		return None, nil, err
	}

	v1 := s.B.Sub(s.A)
	v2 := o.B.Sub(o.A)
	sq1 := v1.Dot(v1)
	sq2 := v2.Dot(v2)
	v1v2 := v1.Dot(v2)

	// |v1 x v2|^2 / (|v1|^2 |v2|^2) is the squared sine of the angle between
	// the segments.
	sin2 := (sq1*sq2 - v1v2*v1v2) / (sq1 * sq2)
	if scalar.IsNotZero(sin2) {
		p, q := s.ClosestPoints(o)
		if coincide(p, q) {
			return One, []V{p}, nil
		}
		return None, nil, nil
	}

	if scalar.IsNotZero(s.MinDistanceSegment(o)) {
		return None, nil, nil
	}
	if (coincide(s.A, o.A) && coincide(s.B, o.B)) || (coincide(s.A, o.B) && coincide(s.B, o.A)) {
		return Infinite, nil, nil
	}

	// Collinear: intersect the parameter ranges of o's endpoints along s.
	tA := v1.Dot(o.A.Sub(s.A)) / sq1
	tB := v1.Dot(o.B.Sub(s.A)) / sq1
	near, far := o.A, o.B
	tNear, tFar := tA, tB
	if tB < tA {
		near, far = far, near
		tNear, tFar = tFar, tNear
	}
	if scalar.IsLessOrEquals(tNear, 0) {
		near = s.A
	}
	if scalar.IsGreaterOrEquals(tFar, 1) {
		far = s.B
	}
	if coincide(near, far) {
		return One, []V{near}, nil
	}
	return Two, []V{near, far}, nil
}

// ClosestPoints returns the pair of points, one on each segment, at minimum
// distance. Coincident segments yield s.A on both sides.
func (s LineSegment[V]) ClosestPoints(o LineSegment[V]) (V, V) {
	v1 := s.B.Sub(s.A)
	v2 := o.B.Sub(o.A)
	sq1 := v1.Dot(v1)
	sq2 := v2.Dot(v2)
	tails := s.A.Sub(o.A)
	v2tails := v2.Dot(tails)

	var s1, s2 float64
	switch {
	case scalar.IsZero(sq1) && scalar.IsZero(sq2):
	case scalar.IsZero(sq1):
		s2 = scalar.Clamp(v2tails/sq2, 0, 1)
	default:
		v1tails := v1.Dot(tails)
		if scalar.IsZero(sq2) {
			s1 = scalar.Clamp(-v1tails/sq1, 0, 1)
			break
		}
		v1v2 := v1.Dot(v2)
		denom := sq1*sq2 - v1v2*v1v2
		if scalar.IsNotZero(denom) {
			s1 = scalar.Clamp((v1v2*v2tails-v1tails*sq2)/denom, 0, 1)
		}
		nom := s1*v1v2 + v2tails
		switch {
		case nom < 0:
			s1 = scalar.Clamp(-v1tails/sq1, 0, 1)
		case nom > sq2:
			s2 = 1
			s1 = scalar.Clamp((v1v2-v1tails)/sq1, 0, 1)
		default:
			s2 = nom / sq2
		}
	}
	return s.A.Add(v1.Scale(s1)), o.A.Add(v2.Scale(s2))
}

// MinDistance returns the distance from point to the nearest point of s.
func (s LineSegment[V]) MinDistance(point V) float64 {
	v1 := s.B.Sub(s.A)
	if scalar.IsZero(v1.Length()) {
		return point.Sub(s.B).Length()
	}
	d := v1.Dot(point.Sub(s.A))
	if scalar.IsLessOrEquals(d, 0) {
		return point.Sub(s.A).Length()
	}
	sq := v1.Dot(v1)
	if scalar.IsGreaterOrEquals(d, sq) {
		return point.Sub(s.B).Length()
	}
	foot := s.A.Add(v1.Scale(d / sq))
	return point.Sub(foot).Length()
}

// MinDistanceSegment returns the distance between the closest points.
func (s LineSegment[V]) MinDistanceSegment(o LineSegment[V]) float64 {
	p, q := s.ClosestPoints(o)
	return q.Sub(p).Length()
}

// MaxDistance returns the distance from point to the farthest endpoint.
func (s LineSegment[V]) MaxDistance(point V) float64 {
	return math.Max(point.Sub(s.A).Length(), point.Sub(s.B).Length())
}

// IntersectsOrb reports whether any point of s lies in or on the orb.
func (s LineSegment[V]) IntersectsOrb(o Orb[V]) (bool, error) {
	if err := s.validate(); err != nil {
		return false, err
	}
	if err := o.Validate(); err != nil {
		return false, err
	}
	return scalar.IsLessOrEquals(s.MinDistance(o.Center), o.Radius), nil
}

// IntersectionPointOrb returns where s crosses the orb surface, ordered by
// distance from s.A. A segment lying strictly inside the orb is Infinite.
func (s LineSegment[V]) IntersectionPointOrb(o Orb[V]) (Intersections, []V, error) {
	if err := s.validate(); err != nil {
		return None, nil, err
	}
	if err := o.Validate(); err != nil {
		return None, nil, err
	}

	dir := s.B.Sub(s.A)
	rel := s.A.Sub(o.Center)
	a := dir.Dot(dir)
	half := rel.Dot(dir) / a
	c := (rel.Dot(rel) - o.Radius*o.Radius) / a

	// Roots of t^2 + 2*half*t + c = 0.
	disc := half*half - c
	onSegment := func(t float64) bool {
		return scalar.IsGreaterOrEquals(t, 0) && scalar.IsLessOrEquals(t, 1)
	}
	at := func(t float64) V {
		return s.A.Add(dir.Scale(t))
	}

	switch {
	case scalar.IsNegative(disc):
		return None, nil, nil
	case scalar.IsZero(disc):
		if t := -half; onSegment(t) {
			return One, []V{at(t)}, nil
		}
		return None, nil, nil
	}

	root := math.Sqrt(disc)
	t1, t2 := -half-root, -half+root
	in1, in2 := onSegment(t1), onSegment(t2)
	switch {
	case in1 && in2:
		return Two, []V{at(t1), at(t2)}, nil
	case in1:
		return One, []V{at(t1)}, nil
	case in2:
		return One, []V{at(t2)}, nil
	}
	if scalar.IsLessThan(rel.Length(), o.Radius) {
		return Infinite, nil, nil
	}
	return None, nil, nil
}

// Lengthen scales s about its center. A factor of 0 collapses it to the
// center and a negative factor swaps its direction.
func (s LineSegment[V]) Lengthen(f float64) LineSegment[V] {
	if f == 1 {
		return s
	}
	c := s.Center()
	return LineSegment[V]{
		A: c.Add(s.A.Sub(c).Scale(f)),
		B: c.Add(s.B.Sub(c).Scale(f)),
	}
}

// LengthenFromA scales s keeping A fixed.
func (s LineSegment[V]) LengthenFromA(f float64) LineSegment[V] {
	if f == 1 {
		return s
	}
	return LineSegment[V]{A: s.A, B: s.A.Add(s.B.Sub(s.A).Scale(f))}
}

// LengthenFromB scales s keeping B fixed.
func (s LineSegment[V]) LengthenFromB(f float64) LineSegment[V] {
	if f == 1 {
		return s
	}
	return LineSegment[V]{A: s.B.Add(s.A.Sub(s.B).Scale(f)), B: s.B}
}

// SpaceRelation places both endpoints relative to the plane.
func (s LineSegment[V]) SpaceRelation(p Plane) SpaceRelation {
	return classify(p.SignedDistance(s.A.XYZ()), p.SignedDistance(s.B.XYZ()))
}

// IntersectsPlane reports whether s touches or crosses the plane.
func (s LineSegment[V]) IntersectsPlane(p Plane) bool {
	dA := p.SignedDistance(s.A.XYZ())
	dB := p.SignedDistance(s.B.XYZ())
	if scalar.IsZero(dA) || scalar.IsZero(dB) {
		return true
	}
	return (dA < 0) != (dB < 0)
}

// ProjectToPlane projects both endpoints orthogonally onto the plane.
func (s LineSegment[V]) ProjectToPlane(p Plane) LineSegment[V] {
	return LineSegment[V]{
		A: s.A.WithXYZ(p.PointProjection(s.A.XYZ())),
		B: s.B.WithXYZ(p.PointProjection(s.B.XYZ())),
	}
}

func (s LineSegment[V]) with(f func([]V)) LineSegment[V] {
	pts := []V{s.A, s.B}
	f(pts)
	return LineSegment[V]{A: pts[0], B: pts[1]}
}

func (s LineSegment[V]) Translate(t vectors.Vec3) LineSegment[V] {
	return s.with(func(p []V) { transform.Translate(p, t) })
}

func (s LineSegment[V]) Rotate(q quaternion.Quat) LineSegment[V] {
	return s.with(func(p []V) { transform.Rotate(p, q) })
}

func (s LineSegment[V]) RotateWithPivot(q quaternion.Quat, pivot V) LineSegment[V] {
	return s.with(func(p []V) { transform.RotateWithPivot(p, q, pivot.XYZ()) })
}

func (s LineSegment[V]) Scale(f vectors.Vec3) LineSegment[V] {
	return s.with(func(p []V) { transform.Scale(p, f) })
}

func (s LineSegment[V]) ScaleWithPivot(f vectors.Vec3, pivot V) LineSegment[V] {
	return s.with(func(p []V) { transform.ScaleWithPivot(p, f, pivot.XYZ()) })
}

func (s LineSegment[V]) Transform(m matrix.Mat4x4) LineSegment[V] {
	return s.with(func(p []V) { transform.Transform(p, m) })
}

func (s LineSegment[V]) TransformWithPivot(m matrix.Mat4x4, pivot V) LineSegment[V] {
	return s.with(func(p []V) { transform.TransformWithPivot(p, m, pivot.XYZ()) })
}

func (s LineSegment[V]) Equal(o LineSegment[V]) bool {
	return s.A.Equal(o.A) && s.B.Equal(o.B)
}

func (s LineSegment[V]) String() string {
	return "LS(a(" + s.A.String() + "),b(" + s.B.String() + "))"
}
