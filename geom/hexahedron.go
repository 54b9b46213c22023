package geom

import (
	"github.com/echoflaresat/geomkit/matrix"
	"github.com/echoflaresat/geomkit/quaternion"
	"github.com/echoflaresat/geomkit/scalar"
	"github.com/echoflaresat/geomkit/transform"
	"github.com/echoflaresat/geomkit/vectors"
)

// Hexahedron is a six-faced volume. ABCD is the top face and EFGH the bottom
// face, joined by the edges AE, BH, CG and DF. Convexity and winding are up to
// the caller.
type Hexahedron[V vectors.Point[V]] struct {
	A, B, C, D, E, F, G, H V
}

func NewHexahedron[V vectors.Point[V]](a, b, c, d, e, f, g, h V) Hexahedron[V] {
	return Hexahedron[V]{a, b, c, d, e, f, g, h}
}

// HexahedronFromCorners builds the axis-aligned box with opposite corners a
// and g. The top face takes the W of a, the bottom face the W of g.
func HexahedronFromCorners[V vectors.Point[V]](a, g V) Hexahedron[V] {
	pa, pg := a.XYZ(), g.XYZ()
	return Hexahedron[V]{
		A: a,
		B: a.WithXYZ(vectors.Vec3{X: pa.X, Y: pa.Y, Z: pg.Z}),
		C: a.WithXYZ(vectors.Vec3{X: pg.X, Y: pa.Y, Z: pg.Z}),
		D: a.WithXYZ(vectors.Vec3{X: pg.X, Y: pa.Y, Z: pa.Z}),
		E: g.WithXYZ(vectors.Vec3{X: pa.X, Y: pg.Y, Z: pa.Z}),
		F: g.WithXYZ(vectors.Vec3{X: pg.X, Y: pg.Y, Z: pa.Z}),
		G: g,
		H: g.WithXYZ(vectors.Vec3{X: pa.X, Y: pg.Y, Z: pg.Z}),
	}
}

// HexahedronFromCenter builds the axis-aligned box of edge lengths lx, ly
// and lz around center.
func HexahedronFromCenter[V vectors.Point[V]](center V, lx, ly, lz float64) Hexahedron[V] {
	c := center.XYZ()
	hx, hy, hz := lx/2, ly/2, lz/2
	at := func(x, y, z float64) V {
		return center.WithXYZ(vectors.Vec3{X: c.X + x, Y: c.Y + y, Z: c.Z + z})
	}
	return Hexahedron[V]{
		A: at(-hx, hy, hz),
		B: at(-hx, hy, -hz),
		C: at(hx, hy, -hz),
		D: at(hx, hy, hz),
		E: at(-hx, -hy, hz),
		F: at(hx, -hy, hz),
		G: at(hx, -hy, -hz),
		H: at(-hx, -hy, -hz),
	}
}

// UnitCube3 is the cube of side 1 centered at the origin.
func UnitCube3() Hexahedron[vectors.Vec3] {
	return HexahedronFromCenter(vectors.Zero(), 1, 1, 1)
}

func (h Hexahedron[V]) Vertices() [8]V {
	return [8]V{h.A, h.B, h.C, h.D, h.E, h.F, h.G, h.H}
}

func fromVertices[V vectors.Point[V]](v [8]V) Hexahedron[V] {
	return Hexahedron[V]{v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7]}
}

// Edges returns AB, BC, CD, DA, EF, FG, GH, HE, AE, BH, CG and DF.
func (h Hexahedron[V]) Edges() [12]LineSegment[V] {
	return [12]LineSegment[V]{
		{h.A, h.B}, {h.B, h.C}, {h.C, h.D}, {h.D, h.A},
		{h.E, h.F}, {h.F, h.G}, {h.G, h.H}, {h.H, h.E},
		{h.A, h.E}, {h.B, h.H}, {h.C, h.G}, {h.D, h.F},
	}
}

// Center returns the mean of the eight vertices.
func (h Hexahedron[V]) Center() V {
	v := h.Vertices()
	sum := v[0]
	for _, p := range v[1:] {
		sum = sum.Add(p)
	}
	return sum.Scale(1.0 / 8)
}

// Planes returns the face planes in the order ABCD, EFGH, AEFD, ABHE, BCGH,
// CDFG. Degenerate faces yield planes with a zero normal.
func (h Hexahedron[V]) Planes() [6]Plane {
	a, b, c, d := h.A.XYZ(), h.B.XYZ(), h.C.XYZ(), h.D.XYZ()
	e, f, g, hh := h.E.XYZ(), h.F.XYZ(), h.G.XYZ(), h.H.XYZ()
	return [6]Plane{
		planeThrough(a, b, c),
		planeThrough(e, f, g),
		planeThrough(a, e, f),
		planeThrough(a, b, hh),
		planeThrough(b, c, g),
		planeThrough(c, d, f),
	}
}

// sameSide reports whether point and ref are not on opposite sides of the
// plane through p1, p2 and p3.
func sameSide(point, ref, p1, p2, p3 vectors.Vec3) bool {
	pl := planeThrough(p1, p2, p3).Normalize()
	return !scalar.IsNegative(pl.SignedDistance(point) * pl.SignedDistance(ref))
}

// Contains reports whether point is inside h or on its boundary.
func (h Hexahedron[V]) Contains(point V) bool {
	p := point.XYZ()
	a, b, c, d := h.A.XYZ(), h.B.XYZ(), h.C.XYZ(), h.D.XYZ()
	e, f, g, hh := h.E.XYZ(), h.F.XYZ(), h.G.XYZ(), h.H.XYZ()
	return sameSide(p, e, a, b, c) &&
		sameSide(p, a, e, f, g) &&
		sameSide(p, c, a, b, hh) &&
		sameSide(p, a, b, c, g) &&
		sameSide(p, c, a, d, f) &&
		sameSide(p, a, c, d, f)
}

// SpaceRelation classifies the eight vertices against the plane.
func (h Hexahedron[V]) SpaceRelation(p Plane) SpaceRelation {
	v := h.Vertices()
	d := make([]float64, len(v))
	for i, x := range v {
		d[i] = p.SignedDistance(x.XYZ())
	}
	return classify(d...)
}

// IntersectsSegment reports whether any point of s lies in h.
func (h Hexahedron[V]) IntersectsSegment(s LineSegment[V]) bool {
	if h.Contains(s.A) || h.Contains(s.B) {
		return true
	}
	a, b := s.A.XYZ(), s.B.XYZ()
	for _, pl := range h.Planes() {
		dA, dB := pl.SignedDistance(a), pl.SignedDistance(b)
		if (dA < 0) == (dB < 0) {
			continue
		}
		t := dA / (dA - dB)
		if h.Contains(s.A.Add(s.B.Sub(s.A).Scale(t))) {
			return true
		}
	}
	return false
}

// Intersection reports whether the two volumes share any point.
func (h Hexahedron[V]) Intersection(o Hexahedron[V]) bool {
	for _, v := range o.Vertices() {
		if h.Contains(v) {
			return true
		}
	}
	for _, v := range h.Vertices() {
		if o.Contains(v) {
			return true
		}
	}
	for _, e := range o.Edges() {
		if h.IntersectsSegment(e) {
			return true
		}
	}
	for _, e := range h.Edges() {
		if o.IntersectsSegment(e) {
			return true
		}
	}
	return false
}

// ProjectToPlane projects every vertex orthogonally onto the plane.
func (h Hexahedron[V]) ProjectToPlane(p Plane) Hexahedron[V] {
	v := h.Vertices()
	for i, x := range v {
		v[i] = x.WithXYZ(p.PointProjection(x.XYZ()))
	}
	return fromVertices(v)
}

func (h Hexahedron[V]) with(f func([]V)) Hexahedron[V] {
	v := h.Vertices()
	f(v[:])
	return fromVertices(v)
}

func (h Hexahedron[V]) Translate(t vectors.Vec3) Hexahedron[V] {
	return h.with(func(p []V) { transform.Translate(p, t) })
}

func (h Hexahedron[V]) Rotate(q quaternion.Quat) Hexahedron[V] {
	return h.with(func(p []V) { transform.Rotate(p, q) })
}

func (h Hexahedron[V]) RotateWithPivot(q quaternion.Quat, pivot V) Hexahedron[V] {
	return h.with(func(p []V) { transform.RotateWithPivot(p, q, pivot.XYZ()) })
}

func (h Hexahedron[V]) RotateMatrix(m matrix.Mat3x3) Hexahedron[V] {
	return h.with(func(p []V) { transform.RotateMatrix(p, m) })
}

func (h Hexahedron[V]) RotateMatrixWithPivot(m matrix.Mat3x3, pivot V) Hexahedron[V] {
	return h.with(func(p []V) { transform.RotateMatrixWithPivot(p, m, pivot.XYZ()) })
}

func (h Hexahedron[V]) Scale(s vectors.Vec3) Hexahedron[V] {
	return h.with(func(p []V) { transform.Scale(p, s) })
}

func (h Hexahedron[V]) ScaleWithPivot(s vectors.Vec3, pivot V) Hexahedron[V] {
	return h.with(func(p []V) { transform.ScaleWithPivot(p, s, pivot.XYZ()) })
}

func (h Hexahedron[V]) Transform(m matrix.Mat4x4) Hexahedron[V] {
	return h.with(func(p []V) { transform.Transform(p, m) })
}

func (h Hexahedron[V]) TransformWithPivot(m matrix.Mat4x4, pivot V) Hexahedron[V] {
	return h.with(func(p []V) { transform.TransformWithPivot(p, m, pivot.XYZ()) })
}

func (h Hexahedron[V]) Equal(o Hexahedron[V]) bool {
	a, b := h.Vertices(), o.Vertices()
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func (h Hexahedron[V]) String() string {
	v := h.Vertices()
	names := "abcdefgh"
	out := "HX("
	for i, p := range v {
		if i > 0 {
			out += ","
		}
		out += names[i:i+1] + "(" + p.String() + ")"
	}
	return out + ")"
}
