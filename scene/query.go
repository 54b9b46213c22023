package scene

import (
	"github.com/echoflaresat/geomkit/vectors"
)

// Op names a query kind.
type Op string

const (
	OpSegmentSegment       Op = "segment-segment"
	OpSegmentOrb           Op = "segment-orb"
	OpSegmentDistance      Op = "segment-distance"
	OpPointDistance        Op = "point-distance"
	OpClosestPoints        Op = "closest-points"
	OpContains             Op = "contains"
	OpSpaceRelation        Op = "space-relation"
	OpHexahedronHexahedron Op = "hexahedron-hexahedron"
)

var Ops = []Op{
	OpSegmentSegment,
	OpSegmentOrb,
	OpSegmentDistance,
	OpPointDistance,
	OpClosestPoints,
	OpContains,
	OpSpaceRelation,
	OpHexahedronHexahedron,
}

// Query refers to shapes by name. Which fields are used depends on Op:
// pairs of segments or hexahedra use A and B, the rest use the field of the
// matching kind.
type Query struct {
	Op         Op
	A, B       string
	Segment    string
	Orb        string
	Hexahedron string
	Plane      string
	Point      *vectors.Vec3
}

// Operands lists the shape names the query reads, in argument order.
func (q Query) Operands() []string {
	var out []string
	for _, n := range []string{q.A, q.B, q.Segment, q.Orb, q.Hexahedron, q.Plane} {
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}
