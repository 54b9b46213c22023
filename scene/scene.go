// Package scene reads YAML documents that name geometry and list the queries
// to run against it.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/echoflaresat/geomkit/geom"
	"github.com/echoflaresat/geomkit/vectors"
	"gopkg.in/yaml.v3"
)

var ErrInvalidScene = errors.New("invalid scene")

type (
	Segment    = geom.LineSegment[vectors.Vec3]
	Orb        = geom.Orb[vectors.Vec3]
	Hexahedron = geom.Hexahedron[vectors.Vec3]
)

// Scene holds named shapes and the queries that refer to them by name.
type Scene struct {
	Segments  map[string]Segment
	Orbs      map[string]Orb
	Planes    map[string]geom.Plane
	Hexahedra map[string]Hexahedron
	Queries   []Query
}

func New() *Scene {
	return &Scene{
		Segments:  map[string]Segment{},
		Orbs:      map[string]Orb{},
		Planes:    map[string]geom.Plane{},
		Hexahedra: map[string]Hexahedron{},
	}
}

// Load reads and validates the scene stored at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML scene. Unknown keys are rejected.
func Parse(data []byte) (*Scene, error) {
	return Decode(bytes.NewReader(data))
}

func Decode(r io.Reader) (*Scene, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}

	s, err := doc.build()
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that every query has a known op and names shapes that
// exist with the right kind.
func (s *Scene) Validate() error {
	for i, q := range s.Queries {
		if err := s.validateQuery(q); err != nil {
			return fmt.Errorf("%w: query %d (%s): %w", ErrInvalidScene, i, q.Op, err)
		}
	}
	return nil
}

func (s *Scene) validateQuery(q Query) error {
	segment := func(name string) error { return lookup(s.Segments, "segment", name) }
	hexahedron := func(name string) error { return lookup(s.Hexahedra, "hexahedron", name) }

	switch q.Op {
	case OpSegmentSegment, OpSegmentDistance, OpClosestPoints:
		return errors.Join(segment(q.A), segment(q.B))
	case OpSegmentOrb:
		return errors.Join(segment(q.Segment), lookup(s.Orbs, "orb", q.Orb))
	case OpPointDistance:
		return errors.Join(segment(q.Segment), needPoint(q))
	case OpContains:
		return errors.Join(hexahedron(q.Hexahedron), needPoint(q))
	case OpSpaceRelation:
		return errors.Join(hexahedron(q.Hexahedron), lookup(s.Planes, "plane", q.Plane))
	case OpHexahedronHexahedron:
		return errors.Join(hexahedron(q.A), hexahedron(q.B))
	}
	return fmt.Errorf("unknown op %q", q.Op)
}

func lookup[T any](m map[string]T, kind, name string) error {
	if name == "" {
		return fmt.Errorf("missing %s name", kind)
	}
	if _, ok := m[name]; !ok {
		return fmt.Errorf("unknown %s %q", kind, name)
	}
	return nil
}

func needPoint(q Query) error {
	if q.Point == nil {
		return errors.New("missing point")
	}
	return nil
}

// Names returns the sorted keys of a shape map.
func Names[T any](m map[string]T) []string {
	return slices.Sorted(maps.Keys(m))
}
