package scene

import (
	"math"

	"github.com/echoflaresat/geomkit/vectors"
)

// Bounds returns the axis-aligned box around every finite shape and query
// point. ok is false when there is nothing to bound. Planes are unbounded
// and ignored.
func (s *Scene) Bounds() (lo, hi vectors.Vec3, ok bool) {
	lo = vectors.Vec3{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi = vectors.Vec3{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	add := func(p vectors.Vec3) {
		lo = vectors.Vec3{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y), Z: math.Min(lo.Z, p.Z)}
		hi = vectors.Vec3{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y), Z: math.Max(hi.Z, p.Z)}
		ok = true
	}

	for _, seg := range s.Segments {
		add(seg.A)
		add(seg.B)
	}
	for _, o := range s.Orbs {
		r := math.Abs(o.Radius)
		add(o.Center.Sub(vectors.Vec3{X: r, Y: r, Z: r}))
		add(o.Center.Add(vectors.Vec3{X: r, Y: r, Z: r}))
	}
	for _, h := range s.Hexahedra {
		for _, v := range h.Vertices() {
			add(v)
		}
	}
	for _, q := range s.Queries {
		if q.Point != nil {
			add(*q.Point)
		}
	}
	if !ok {
		return vectors.Vec3{}, vectors.Vec3{}, false
	}
	return lo, hi, true
}
