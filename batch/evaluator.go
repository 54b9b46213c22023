// Package batch runs the queries of a scene concurrently and collects the
// answers into an encodable report.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/echoflaresat/geomkit/geom"
	"github.com/echoflaresat/geomkit/scene"
	"github.com/echoflaresat/geomkit/vectors"
	lru "github.com/hashicorp/golang-lru"
	"github.com/repeale/fp-go"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const DefaultCacheSize = 256

// FaceNames labels the planes of geom.Hexahedron.Planes in order.
var FaceNames = [6]string{"ABCD", "EFGH", "AEFD", "ABHE", "BCGH", "CDFG"}

type Evaluator struct {
	Workers   int
	CacheSize int

	planes *lru.Cache // scene.Hexahedron -> [6]geom.Plane
}

// NewEvaluator returns an evaluator running at most workers queries at a
// time. Non-positive values select runtime.NumCPU workers and
// DefaultCacheSize cached hexahedra.
func NewEvaluator(workers, cacheSize int) (*Evaluator, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("plane cache: %w", err)
	}
	return &Evaluator{Workers: workers, CacheSize: cacheSize, planes: cache}, nil
}

// Evaluate answers every query of s. Results keep the order of s.Queries.
// Only cancellation of ctx makes it fail; geometry errors land in
// Result.Error.
func (e *Evaluator) Evaluate(ctx context.Context, s *scene.Scene) (*Report, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	stats := &Stats{}
	results := make([]Result, len(s.Queries))

	workers := e.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, q := range s.Queries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			results[i] = e.run(s, q, stats)
			results[i].Index = i
			stats.record(q.Op, results[i].Failed())
			log.Debug().
				Int("query", i).
				Str("op", string(q.Op)).
				Dur("elapsed", time.Since(start)).
				Str("error", results[i].Error).
				Msg("evaluated")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := stats.Snapshot()
	log.Debug().
		Int("queries", summary.Queries).
		Int("errors", summary.Errors).
		Int("cache_hits", summary.CacheHits).
		Msg("batch done")
	return &Report{Results: results, Summary: summary}, nil
}

// Failures returns the results that carry an error.
func (r *Report) Failures() []Result {
	return fp.Filter(Result.Failed)(r.Results)
}

func (e *Evaluator) facePlanes(h scene.Hexahedron, stats *Stats) [6]geom.Plane {
	if e.planes == nil {
		stats.cache(false)
		return h.Planes()
	}
	if v, ok := e.planes.Get(h); ok {
		stats.cache(true)
		return v.([6]geom.Plane)
	}
	stats.cache(false)
	planes := h.Planes()
	e.planes.Add(h, planes)
	return planes
}

func (e *Evaluator) run(s *scene.Scene, q scene.Query, stats *Stats) Result {
	res := Result{Op: q.Op, Operands: q.Operands()}
	var err error
	switch q.Op {
	case scene.OpSegmentSegment:
		err = segmentSegment(&res, s.Segments[q.A], s.Segments[q.B])
	case scene.OpSegmentOrb:
		err = segmentOrb(&res, s.Segments[q.Segment], s.Orbs[q.Orb])
	case scene.OpSegmentDistance:
		res.Distance = ptr(s.Segments[q.A].MinDistanceSegment(s.Segments[q.B]))
	case scene.OpPointDistance:
		seg := s.Segments[q.Segment]
		res.Distance = ptr(seg.MinDistance(*q.Point))
		res.MaxDistance = ptr(seg.MaxDistance(*q.Point))
	case scene.OpClosestPoints:
		p, o := s.Segments[q.A].ClosestPoints(s.Segments[q.B])
		res.Points = []Point{PointOf(p), PointOf(o)}
		res.Distance = ptr(p.Distance(o))
	case scene.OpContains:
		h := s.Hexahedra[q.Hexahedron]
		inside := h.Contains(*q.Point)
		res.Hit = &inside
		if !inside {
			res.Faces = separatingFaces(e.facePlanes(h, stats), h.Center(), *q.Point)
		}
	case scene.OpSpaceRelation:
		res.Relation = s.Hexahedra[q.Hexahedron].SpaceRelation(s.Planes[q.Plane]).String()
	case scene.OpHexahedronHexahedron:
		res.Hit = ptr(s.Hexahedra[q.A].Intersection(s.Hexahedra[q.B]))
	default:
		err = fmt.Errorf("unknown op %q", q.Op)
	}
	if err != nil {
		res.Error = err.Error()
	}
	return res
}

func segmentSegment(res *Result, a, b scene.Segment) error {
	hit, err := a.Intersection(b)
	if err != nil {
		return err
	}
	kind, pts, err := a.IntersectionPoint(b)
	if err != nil {
		return err
	}
	res.Hit = &hit
	res.Intersections = kind.String()
	res.Points = points(pts)
	return nil
}

func segmentOrb(res *Result, s scene.Segment, o scene.Orb) error {
	hit, err := s.IntersectsOrb(o)
	if err != nil {
		return err
	}
	kind, pts, err := s.IntersectionPointOrb(o)
	if err != nil {
		return err
	}
	res.Hit = &hit
	res.Intersections = kind.String()
	res.Points = points(pts)
	return nil
}

// separatingFaces names the faces whose plane has the point strictly on
// the other side from the center.
func separatingFaces(planes [6]geom.Plane, center, point vectors.Vec3) []string {
	var out []string
	for i, pl := range planes {
		if pl.Normal().IsZero() {
			continue
		}
		pl = pl.Normalize()
		dc, dp := pl.SignedDistance(center), pl.SignedDistance(point)
		if (dc > 0 && dp < 0 || dc < 0 && dp > 0) && !pl.Contains(point) {
			out = append(out, FaceNames[i])
		}
	}
	return out
}

func points(vs []vectors.Vec3) []Point {
	if len(vs) == 0 {
		return nil
	}
	return fp.Map(PointOf)(vs)
}

func ptr[T any](v T) *T {
	return &v
}
