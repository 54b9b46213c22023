// Package render draws scenes and query results as wireframes, for eyeballing
// what a batch evaluation saw.
package render

import (
	"image"
	"image/draw"
	"math"

	"github.com/echoflaresat/geomkit/batch"
	"github.com/echoflaresat/geomkit/colors"
	"github.com/echoflaresat/geomkit/scene"
	"github.com/echoflaresat/geomkit/vectors"
	"golang.org/x/image/vector"
)

// circleSteps is the number of chords per orb great circle.
const circleSteps = 64

type Style struct {
	Background colors.Color4
	Segment    colors.Color4
	Orb        colors.Color4
	Hexahedron colors.Color4
	Hit        colors.Color4
	LineWidth  float64
	MarkerSize float64
}

func DefaultStyle() Style {
	return Style{
		Background: colors.New(0.06, 0.07, 0.10, 1),
		Segment:    colors.White(),
		Orb:        colors.New(0.25, 0.60, 1.00, 1),
		Hexahedron: colors.Green().Mix(colors.White(), 0.3),
		Hit:        colors.Red(),
		LineWidth:  2,
		MarkerSize: 4,
	}
}

type Renderer struct {
	Camera Camera
	Width  int
	Height int
	Style  Style
}

// Render draws hexahedra, orbs and segments of s, then a marker on every
// point reported by rep. rep may be nil.
func (r Renderer) Render(s *scene.Scene, rep *batch.Report) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.Style.Background), image.Point{}, draw.Src)

	hexahedra := r.layer()
	for _, name := range scene.Names(s.Hexahedra) {
		for _, e := range s.Hexahedra[name].Edges() {
			hexahedra.line(e.A, e.B)
		}
	}
	hexahedra.draw(img, r.Style.Hexahedron)

	orbs := r.layer()
	for _, name := range scene.Names(s.Orbs) {
		o := s.Orbs[name]
		if o.Radius <= 0 {
			continue
		}
		for _, axes := range [][2]vectors.Vec3{
			{vectors.UnitX, vectors.UnitY},
			{vectors.UnitX, vectors.UnitZ},
			{vectors.UnitY, vectors.UnitZ},
		} {
			orbs.circle(o.Center, o.Radius, axes[0], axes[1])
		}
	}
	orbs.draw(img, r.Style.Orb)

	segments := r.layer()
	for _, name := range scene.Names(s.Segments) {
		seg := s.Segments[name]
		segments.line(seg.A, seg.B)
	}
	segments.draw(img, r.Style.Segment)

	if rep != nil {
		hits := r.layer()
		for _, res := range rep.Results {
			if res.Failed() {
				continue
			}
			for _, p := range res.Points {
				hits.marker(p.Vec3())
			}
		}
		hits.draw(img, r.Style.Hit)
	}
	return img
}

// layer collects same-coloured outlines into one rasterizer. Every polygon
// is wound the same way so overlaps never cancel.
type layer struct {
	r     Renderer
	z     *vector.Rasterizer
	empty bool
}

func (r Renderer) layer() *layer {
	return &layer{r: r, z: vector.NewRasterizer(r.Width, r.Height), empty: true}
}

func (l *layer) draw(dst draw.Image, c colors.Color4) {
	if l.empty {
		return
	}
	l.z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

// toScreen clips the 3D segment against the near plane and projects it to
// rasterizer coordinates, where pixel (i, j) covers [i, i+1) x [j, j+1).
func (l *layer) toScreen(a, b vectors.Vec3) (p, q [2]float64, ok bool) {
	c := l.r.Camera
	da, db := c.Depth(a), c.Depth(b)
	if da < Near && db < Near {
		return p, q, false
	}
	if da < Near {
		a = a.Lerp(b, (Near-da)/(db-da))
	} else if db < Near {
		b = b.Lerp(a, (Near-db)/(da-db))
	}
	ax, ay, okA := c.Pixel(a, l.r.Width, l.r.Height)
	bx, by, okB := c.Pixel(b, l.r.Width, l.r.Height)
	if !okA || !okB {
		return p, q, false
	}
	return [2]float64{ax + 0.5, ay + 0.5}, [2]float64{bx + 0.5, by + 0.5}, true
}

func (l *layer) line(a, b vectors.Vec3) {
	p, q, ok := l.toScreen(a, b)
	if !ok {
		return
	}
	pad := l.r.Style.LineWidth + 1
	p, q, ok = clipLine(p, q, -pad, -pad, float64(l.r.Width)+pad, float64(l.r.Height)+pad)
	if !ok {
		return
	}
	l.stroke(p, q)
}

// stroke fills the rectangle of width LineWidth around pq.
func (l *layer) stroke(p, q [2]float64) {
	dx, dy := q[0]-p[0], q[1]-p[1]
	length := math.Hypot(dx, dy)
	hw := l.r.Style.LineWidth / 2
	if length == 0 {
		l.square(p, hw)
		return
	}
	// extend by the half width so joints between chords stay closed
	ux, uy := dx/length*hw, dy/length*hw
	nx, ny := -uy, ux
	l.polygon(
		[2]float64{p[0] - ux + nx, p[1] - uy + ny},
		[2]float64{q[0] + ux + nx, q[1] + uy + ny},
		[2]float64{q[0] + ux - nx, q[1] + uy - ny},
		[2]float64{p[0] - ux - nx, p[1] - uy - ny},
	)
}

func (l *layer) square(p [2]float64, h float64) {
	l.polygon(
		[2]float64{p[0] - h, p[1] - h},
		[2]float64{p[0] - h, p[1] + h},
		[2]float64{p[0] + h, p[1] + h},
		[2]float64{p[0] + h, p[1] - h},
	)
}

func (l *layer) polygon(pts ...[2]float64) {
	l.z.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, p := range pts[1:] {
		l.z.LineTo(float32(p[0]), float32(p[1]))
	}
	l.z.ClosePath()
	l.empty = false
}

// circle strokes the circle of the given radius around center in the plane
// spanned by the unit vectors u and v.
func (l *layer) circle(center vectors.Vec3, radius float64, u, v vectors.Vec3) {
	at := func(i int) vectors.Vec3 {
		t := 2 * math.Pi * float64(i) / circleSteps
		return center.Add(u.Scale(radius * math.Cos(t))).Add(v.Scale(radius * math.Sin(t)))
	}
	for i := 0; i < circleSteps; i++ {
		l.line(at(i), at(i+1))
	}
}

// marker draws a diamond of radius MarkerSize at p.
func (l *layer) marker(p vectors.Vec3) {
	c := l.r.Camera
	if c.Depth(p) < Near {
		return
	}
	x, y, _ := c.Pixel(p, l.r.Width, l.r.Height)
	x, y = x+0.5, y+0.5
	m := l.r.Style.MarkerSize
	if x < -m || y < -m || x > float64(l.r.Width)+m || y > float64(l.r.Height)+m {
		return
	}
	l.polygon(
		[2]float64{x, y - m},
		[2]float64{x + m, y},
		[2]float64{x, y + m},
		[2]float64{x - m, y},
	)
}

// clipLine is Liang-Barsky clipping of pq against the box [x0,x1] x [y0,y1].
func clipLine(p, q [2]float64, x0, y0, x1, y1 float64) ([2]float64, [2]float64, bool) {
	dx, dy := q[0]-p[0], q[1]-p[1]
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, p[0] - x0},
		{dx, x1 - p[0]},
		{-dy, p[1] - y0},
		{dy, y1 - p[1]},
	}
	for _, e := range edges {
		pe, qe := e[0], e[1]
		if pe == 0 {
			if qe < 0 {
				return p, q, false
			}
			continue
		}
		t := qe / pe
		if pe < 0 {
			if t > t1 {
				return p, q, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return p, q, false
			}
			t1 = math.Min(t1, t)
		}
	}
	return [2]float64{p[0] + t0*dx, p[1] + t0*dy}, [2]float64{p[0] + t1*dx, p[1] + t1*dy}, true
}
