package scene

import (
	"errors"
	"fmt"

	"github.com/echoflaresat/geomkit/geom"
	"github.com/echoflaresat/geomkit/scalar"
	"github.com/echoflaresat/geomkit/vectors"
	"github.com/repeale/fp-go"
)

type coords []float64

type document struct {
	Segments  map[string]segmentDoc    `yaml:"segments"`
	Orbs      map[string]orbDoc        `yaml:"orbs"`
	Planes    map[string]planeDoc      `yaml:"planes"`
	Hexahedra map[string]hexahedronDoc `yaml:"hexahedra"`
	Queries   []queryDoc               `yaml:"queries"`
}

type segmentDoc struct {
	A coords `yaml:"a"`
	B coords `yaml:"b"`
}

type orbDoc struct {
	Center coords  `yaml:"center"`
	Radius float64 `yaml:"radius"`
}

type planeDoc struct {
	Coefficients []float64 `yaml:"coefficients"`
	Points       []coords  `yaml:"points"`
}

type hexahedronDoc struct {
	Center   coords   `yaml:"center"`
	Size     coords   `yaml:"size"`
	Min      coords   `yaml:"min"`
	Max      coords   `yaml:"max"`
	Vertices []coords `yaml:"vertices"`
}

type queryDoc struct {
	Op         string `yaml:"op"`
	A          string `yaml:"a"`
	B          string `yaml:"b"`
	Segment    string `yaml:"segment"`
	Orb        string `yaml:"orb"`
	Hexahedron string `yaml:"hexahedron"`
	Plane      string `yaml:"plane"`
	Point      coords `yaml:"point"`
}

func finite(x float64) bool {
	return !scalar.IsNaN(x) && !scalar.IsInfinite(x)
}

func allFinite(c []float64) bool {
	return !fp.Some(func(x float64) bool { return !finite(x) })(c)
}

func (c coords) vec3() (vectors.Vec3, error) {
	if len(c) != 3 {
		return vectors.Vec3{}, fmt.Errorf("want 3 coordinates, got %d", len(c))
	}
	if !allFinite(c) {
		return vectors.Vec3{}, fmt.Errorf("non-finite coordinate in %v", []float64(c))
	}
	return vectors.Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
}

func points(cs []coords, want int) ([]vectors.Vec3, error) {
	if len(cs) != want {
		return nil, fmt.Errorf("want %d points, got %d", want, len(cs))
	}
	if fp.Some(func(c coords) bool { return len(c) != 3 || !allFinite(c) })(cs) {
		return nil, errors.New("malformed point")
	}
	return fp.Map(func(c coords) vectors.Vec3 {
		return vectors.Vec3{X: c[0], Y: c[1], Z: c[2]}
	})(cs), nil
}

func (d segmentDoc) build() (Segment, error) {
	a, err := d.A.vec3()
	if err != nil {
		return Segment{}, fmt.Errorf("a: %w", err)
	}
	b, err := d.B.vec3()
	if err != nil {
		return Segment{}, fmt.Errorf("b: %w", err)
	}
	return geom.NewLineSegment(a, b), nil
}

// Orbs with a non-positive radius are accepted here and fail when queried.
func (d orbDoc) build() (Orb, error) {
	c, err := d.Center.vec3()
	if err != nil {
		return Orb{}, fmt.Errorf("center: %w", err)
	}
	if !finite(d.Radius) {
		return Orb{}, errors.New("non-finite radius")
	}
	return geom.NewOrb(c, d.Radius), nil
}

func (d planeDoc) build() (geom.Plane, error) {
	switch {
	case d.Coefficients != nil && d.Points != nil:
		return geom.Plane{}, errors.New("coefficients and points are exclusive")
	case d.Coefficients != nil:
		c := d.Coefficients
		if len(c) != 4 || !allFinite(c) {
			return geom.Plane{}, fmt.Errorf("want 4 finite coefficients, got %v", c)
		}
		p := geom.NewPlane(c[0], c[1], c[2], c[3])
		if p.Normal().IsZero() {
			return geom.Plane{}, errors.New("zero normal")
		}
		return p, nil
	case d.Points != nil:
		pts, err := points(d.Points, 3)
		if err != nil {
			return geom.Plane{}, err
		}
		return geom.PlaneFromPoints(pts[0], pts[1], pts[2])
	}
	return geom.Plane{}, errors.New("needs coefficients or points")
}

func (d hexahedronDoc) build() (Hexahedron, error) {
	switch {
	case d.Vertices != nil:
		v, err := points(d.Vertices, 8)
		if err != nil {
			return Hexahedron{}, err
		}
		return geom.NewHexahedron(v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7]), nil
	case d.Center != nil || d.Size != nil:
		c, err := d.Center.vec3()
		if err != nil {
			return Hexahedron{}, fmt.Errorf("center: %w", err)
		}
		size, err := d.Size.vec3()
		if err != nil {
			return Hexahedron{}, fmt.Errorf("size: %w", err)
		}
		return geom.HexahedronFromCenter(c, size.X, size.Y, size.Z), nil
	case d.Min != nil || d.Max != nil:
		lo, err := d.Min.vec3()
		if err != nil {
			return Hexahedron{}, fmt.Errorf("min: %w", err)
		}
		hi, err := d.Max.vec3()
		if err != nil {
			return Hexahedron{}, fmt.Errorf("max: %w", err)
		}
		return geom.HexahedronFromCorners(lo, hi), nil
	}
	return Hexahedron{}, errors.New("needs vertices, center and size, or min and max")
}

func (d queryDoc) build() (Query, error) {
	q := Query{
		Op:         Op(d.Op),
		A:          d.A,
		B:          d.B,
		Segment:    d.Segment,
		Orb:        d.Orb,
		Hexahedron: d.Hexahedron,
		Plane:      d.Plane,
	}
	if d.Point != nil {
		p, err := d.Point.vec3()
		if err != nil {
			return Query{}, fmt.Errorf("point: %w", err)
		}
		q.Point = &p
	}
	return q, nil
}

func buildAll[D interface{ build() (T, error) }, T any](kind string, in map[string]D, out map[string]T) error {
	for _, name := range Names(in) {
		v, err := in[name].build()
		if err != nil {
			return fmt.Errorf("%w: %s %q: %w", ErrInvalidScene, kind, name, err)
		}
		out[name] = v
	}
	return nil
}

func (d document) build() (*Scene, error) {
	s := New()
	if err := buildAll("segment", d.Segments, s.Segments); err != nil {
		return nil, err
	}
	if err := buildAll("orb", d.Orbs, s.Orbs); err != nil {
		return nil, err
	}
	if err := buildAll("plane", d.Planes, s.Planes); err != nil {
		return nil, err
	}
	if err := buildAll("hexahedron", d.Hexahedra, s.Hexahedra); err != nil {
		return nil, err
	}
	for i, qd := range d.Queries {
		q, err := qd.build()
		if err != nil {
			return nil, fmt.Errorf("%w: query %d: %w", ErrInvalidScene, i, err)
		}
		s.Queries = append(s.Queries, q)
	}
	return s, nil
}
