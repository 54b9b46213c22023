// Package geom implements line segments, orbs, planes and hexahedra over the
// vector types of package vectors, with tolerant intersection, distance and
// containment queries.
package geom

import (
	"errors"

	"github.com/echoflaresat/geomkit/scalar"
	"github.com/echoflaresat/geomkit/vectors"
)

var (
	ErrDegenerateSegment = errors.New("segment has zero length")
	ErrNonPositiveRadius = errors.New("orb radius must be positive")
	ErrCollinearPoints   = errors.New("points are collinear")
)

// Intersections classifies how many points two shapes share.
type Intersections int

const (
	None Intersections = iota
	One
	Two
	Infinite
)

func (i Intersections) String() string {
	switch i {
	case None:
		return "none"
	case One:
		return "one"
	case Two:
		return "two"
	case Infinite:
		return "infinite"
	}
	return "unknown"
}

// SpaceRelation places a shape relative to a plane.
type SpaceRelation int

const (
	Contained SpaceRelation = iota
	PositiveSide
	NegativeSide
	BothSides
)

func (r SpaceRelation) String() string {
	switch r {
	case Contained:
		return "contained"
	case PositiveSide:
		return "positive-side"
	case NegativeSide:
		return "negative-side"
	case BothSides:
		return "both-sides"
	}
	return "unknown"
}

// classify turns signed plane distances into a SpaceRelation. Points lying
// on the plane count for both sides.
func classify(distances ...float64) SpaceRelation {
	zero, positive, negative := true, true, true
	for _, d := range distances {
		zero = zero && scalar.IsZero(d)
		positive = positive && scalar.IsPositive(d)
		negative = negative && scalar.IsLessOrEquals(d, 0)
	}
	switch {
	case zero:
		return Contained
	case positive:
		return PositiveSide
	case negative:
		return NegativeSide
	}
	return BothSides
}

// coincide compares the spatial parts of two points.
func coincide[V vectors.Point[V]](a, b V) bool {
	return scalar.IsZero(a.Sub(b).Length())
}
