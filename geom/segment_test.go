package geom

import (
	"math"
	"testing"

	"github.com/echoflaresat/geomkit/quaternion"
	"github.com/echoflaresat/geomkit/vectors"
	"github.com/soniakeys/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type v3 = vectors.Vec3

func seg(ax, ay, az, bx, by, bz float64) LineSegment[v3] {
	return NewLineSegment(v3{X: ax, Y: ay, Z: az}, v3{X: bx, Y: by, Z: bz})
}

func onX(a, b float64) LineSegment[v3] {
	return seg(a, 0, 0, b, 0, 0)
}

func x(v float64) v3 {
	return v3{X: v}
}

func TestSegmentIntersectionPoint(t *testing.T) {
	cases := []struct {
		name   string
		s, o   LineSegment[v3]
		kind   Intersections
		points []v3
	}{
		{"crossing", seg(1, 2, 3, 2, 1, 6), seg(2, 2, 3, 1, 1, 6), One, []v3{{X: 1.5, Y: 1.5, Z: 4.5}}},
		{"shared endpoint", seg(0, 0, 0, 1, 0, 0), seg(1, 0, 0, 1, 1, 0), One, []v3{x(1)}},
		{"t junction", seg(0, 0, 0, 2, 0, 0), seg(1, 0, 0, 1, 1, 0), One, []v3{x(1)}},
		{"skew", seg(0, 0, 0, 1, 0, 0), seg(0, 1, 0, 0, 1, 1), None, nil},
		{"parallel", seg(0, 0, 0, 1, 0, 0), seg(0, 1, 0, 1, 1, 0), None, nil},
		{"collinear apart", onX(0, 1), onX(2, 3), None, nil},
		{"coincident", onX(0, 1), onX(0, 1), Infinite, nil},
		{"coincident reversed", onX(0, 1), onX(1, 0), Infinite, nil},
		{"partial overlap", onX(1, 3), onX(2, 4), Two, []v3{x(2), x(3)}},
		{"partial overlap reversed", onX(3, 1), onX(2, 4), Two, []v3{x(3), x(2)}},
		{"contains other", onX(1, 4), onX(2, 3), Two, []v3{x(2), x(3)}},
		{"contained by other", onX(2, 3), onX(1, 4), Two, []v3{x(2), x(3)}},
		{"shares one endpoint", onX(1, 4), onX(1, 2), Two, []v3{x(1), x(2)}},
		{"collinear touching", onX(0, 1), onX(1, 2), One, []v3{x(1)}},
		{"collinear touching opposite", onX(0, 1), onX(2, 1), One, []v3{x(1)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			kind, points, err := c.s.IntersectionPoint(c.o)
			require.NoError(t, err)
			assert.Equal(t, c.kind, kind)
			require.Len(t, points, len(c.points))
			for i := range points {
				assert.True(t, points[i].Equal(c.points[i]), "got %s want %s", points[i], c.points[i])
			}

			hit, err := c.s.Intersection(c.o)
			require.NoError(t, err)
			assert.Equal(t, kind != None, hit)

			back, err := c.o.Intersection(c.s)
			require.NoError(t, err)
			assert.Equal(t, hit, back)
		})
	}
}

func TestSegmentIntersection2D(t *testing.T) {
	s := NewLineSegment(vectors.Vec2{X: 0, Y: 0}, vectors.Vec2{X: 2, Y: 2})
	o := NewLineSegment(vectors.Vec2{X: 0, Y: 2}, vectors.Vec2{X: 2, Y: 0})

	kind, points, err := s.IntersectionPoint(o)
	require.NoError(t, err)
	assert.Equal(t, One, kind)
	assert.Equal(t, []vectors.Vec2{{X: 1, Y: 1}}, points)
}

func TestSegmentIntersection4D(t *testing.T) {
	s := NewLineSegment(vectors.Point4(1, 2, 3), vectors.Point4(2, 1, 6))
	o := NewLineSegment(vectors.Point4(2, 2, 3), vectors.Point4(1, 1, 6))

	kind, points, err := s.IntersectionPoint(o)
	require.NoError(t, err)
	assert.Equal(t, One, kind)
	require.Len(t, points, 1)
	assert.True(t, points[0].Equal(vectors.Point4(1.5, 1.5, 4.5)), points[0].String())
}

func TestDegenerateSegment(t *testing.T) {
	point := seg(1, 1, 1, 1, 1, 1)
	line := onX(0, 1)

	_, err := point.Intersection(line)
	assert.ErrorIs(t, err, ErrDegenerateSegment)
	_, err = line.Intersection(point)
	assert.ErrorIs(t, err, ErrDegenerateSegment)
	_, _, err = point.IntersectionPoint(line)
	assert.ErrorIs(t, err, ErrDegenerateSegment)
	_, err = point.IntersectsOrb(UnitOrb3())
	assert.ErrorIs(t, err, ErrDegenerateSegment)

	assert.True(t, point.IsDegenerate())
	assert.Equal(t, math.Sqrt(3), point.MinDistance(v3{}))
}

func TestSegmentOrb(t *testing.T) {
	cases := []struct {
		name   string
		s      LineSegment[v3]
		kind   Intersections
		points []v3
	}{
		{"through", onX(-2, 2), Two, []v3{x(-1), x(1)}},
		{"through reversed", onX(2, -2), Two, []v3{x(1), x(-1)}},
		{"from center", onX(0, 2), One, []v3{x(1)}},
		{"tangent", seg(-1, 1, 0, 1, 1, 0), One, []v3{{Y: 1}}},
		{"inside", onX(-0.5, 0.5), Infinite, nil},
		{"outside", seg(2, 2, 0, 3, 3, 0), None, nil},
		{"ends on surface", onX(1, 3), One, []v3{x(1)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			kind, points, err := c.s.IntersectionPointOrb(UnitOrb3())
			require.NoError(t, err)
			assert.Equal(t, c.kind, kind)
			require.Len(t, points, len(c.points))
			for i := range points {
				assert.True(t, points[i].Equal(c.points[i]), "got %s want %s", points[i], c.points[i])
			}

			hit, err := c.s.IntersectsOrb(UnitOrb3())
			require.NoError(t, err)
			assert.Equal(t, kind != None, hit)
			assert.Equal(t, hit, c.s.MinDistance(v3{}) <= 1+1e-12)
		})
	}
}

func TestSegmentOrbRadius(t *testing.T) {
	_, err := onX(0, 1).IntersectsOrb(NewOrb(v3{}, 0))
	assert.ErrorIs(t, err, ErrNonPositiveRadius)
	_, _, err = onX(0, 1).IntersectionPointOrb(NewOrb(v3{}, -1))
	assert.ErrorIs(t, err, ErrNonPositiveRadius)
}

func TestMinDistance(t *testing.T) {
	s := onX(0, 2)
	assert.Equal(t, 1.0, s.MinDistance(v3{X: 1, Y: 1}))
	assert.Equal(t, 1.0, s.MinDistance(x(-1)))
	assert.Equal(t, 2.0, s.MinDistance(x(4)))
	assert.Equal(t, 0.0, s.MinDistance(x(1.5)))
	assert.Equal(t, math.Sqrt(5), onX(0, 1).MaxDistance(v3{X: -1, Y: 1}))

	assert.Equal(t, 1.0, seg(0, 0, 0, 1, 0, 0).MinDistanceSegment(seg(0, 1, 0, 1, 1, 0)))
	assert.Equal(t, 1.0, seg(0, 0, 0, 1, 0, 0).MinDistanceSegment(seg(0, 1, -1, 0, 1, 1)))
	assert.Equal(t, 0.0, seg(1, 2, 3, 2, 1, 6).MinDistanceSegment(seg(2, 2, 3, 1, 1, 6)))
}

func TestClosestPoints(t *testing.T) {
	s := onX(0, 1)
	p, q := s.ClosestPoints(onX(0, 1))
	assert.Equal(t, s.A, p)
	assert.Equal(t, s.A, q)

	p, q = s.ClosestPoints(onX(1, 0))
	assert.Equal(t, s.A, p)
	assert.Equal(t, s.A, q)

	p, q = seg(0, 0, 0, 2, 0, 0).ClosestPoints(seg(1, 1, 0, 1, 3, 0))
	assert.Equal(t, x(1), p)
	assert.Equal(t, v3{X: 1, Y: 1}, q)

	p, q = onX(0, 1).ClosestPoints(seg(3, 1, 0, 3, 1, 0))
	assert.Equal(t, x(1), p)
	assert.Equal(t, v3{X: 3, Y: 1}, q)
}

func TestLengthen(t *testing.T) {
	s := onX(0, 2)
	assert.Equal(t, s, s.Lengthen(1))
	assert.Equal(t, onX(-1, 3), s.Lengthen(2))
	assert.Equal(t, onX(1, 1), s.Lengthen(0))
	assert.Equal(t, onX(2, 0), s.Lengthen(-1))

	assert.Equal(t, onX(0, 1), s.LengthenFromA(0.5))
	assert.Equal(t, onX(0, 0), s.LengthenFromA(0))
	assert.Equal(t, onX(0, -2), s.LengthenFromA(-1))
	assert.Equal(t, onX(-2, 2), s.LengthenFromB(2))
	assert.Equal(t, onX(2, 2), s.LengthenFromB(0))
}

func TestSegmentPlane(t *testing.T) {
	ground := PlaneXZ
	assert.Equal(t, BothSides, seg(0, -1, 0, 0, 1, 0).SpaceRelation(ground))
	assert.Equal(t, PositiveSide, seg(0, 1, 0, 0, 2, 0).SpaceRelation(ground))
	assert.Equal(t, NegativeSide, seg(0, -1, 0, 0, -2, 0).SpaceRelation(ground))
	assert.Equal(t, Contained, onX(0, 5).SpaceRelation(ground))

	assert.True(t, seg(0, -1, 0, 0, 1, 0).IntersectsPlane(ground))
	assert.True(t, seg(0, 0, 0, 0, 1, 0).IntersectsPlane(ground))
	assert.False(t, seg(0, 1, 0, 0, 2, 0).IntersectsPlane(ground))

	assert.Equal(t, seg(1, 0, 2, 3, 0, 4), seg(1, 5, 2, 3, -5, 4).ProjectToPlane(ground))
}

func TestSegmentTransforms(t *testing.T) {
	s := onX(1, 2)
	quarter := quaternion.FromAxisAngle(vectors.UnitZ, unit.AngleFromDeg(90))

	assert.Equal(t, seg(1, 1, 1, 2, 1, 1), s.Translate(v3{Y: 1, Z: 1}))
	assert.True(t, s.Rotate(quarter).Equal(seg(0, 1, 0, 0, 2, 0)))
	assert.True(t, s.RotateWithPivot(quarter, x(1)).Equal(seg(1, 0, 0, 1, 1, 0)))
	assert.Equal(t, onX(2, 4), s.Scale(v3{X: 2, Y: 2, Z: 2}))
	assert.Equal(t, onX(1, 3), s.ScaleWithPivot(v3{X: 2, Y: 1, Z: 1}, x(1)))
	assert.Equal(t, s.Center(), x(1.5))
	assert.Equal(t, 1.0, s.Length())
}

func TestSegmentString(t *testing.T) {
	assert.Equal(t, "LS(a(V3(0,0,0)),b(V3(1,0,0)))", UnitLine3().String())
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "infinite", Infinite.String())
}
