package geom

import (
	"fmt"
	"math"

	"github.com/echoflaresat/geomkit/scalar"
	"github.com/echoflaresat/geomkit/vectors"
)

// Orb is a circle, sphere or hypersphere depending on V.
type Orb[V vectors.Point[V]] struct {
	Center V
	Radius float64
}

func NewOrb[V vectors.Point[V]](center V, radius float64) Orb[V] {
	return Orb[V]{Center: center, Radius: radius}
}

// UnitOrb3 is the sphere of radius 1 at the origin.
func UnitOrb3() Orb[vectors.Vec3] {
	return Orb[vectors.Vec3]{Radius: 1}
}

// Validate reports ErrNonPositiveRadius for orbs without volume.
func (o Orb[V]) Validate() error {
	if !scalar.IsGreaterThan(o.Radius, 0) {
		return fmt.Errorf("%w: %s", ErrNonPositiveRadius, o)
	}
	return nil
}

// Contains reports whether point lies inside or on the surface.
func (o Orb[V]) Contains(point V) bool {
	return scalar.IsLessOrEquals(point.Sub(o.Center).Length(), o.Radius)
}

// Intersection reports whether the two orbs share any point.
func (o Orb[V]) Intersection(other Orb[V]) bool {
	return scalar.IsLessOrEquals(o.Center.Sub(other.Center).Length(), o.Radius+other.Radius)
}

func (o Orb[V]) Translate(t vectors.Vec3) Orb[V] {
	return Orb[V]{Center: o.Center.WithXYZ(o.Center.XYZ().Add(t)), Radius: o.Radius}
}

// Scale grows the radius by |f| around the center.
func (o Orb[V]) Scale(f float64) Orb[V] {
	return Orb[V]{Center: o.Center, Radius: o.Radius * math.Abs(f)}
}

func (o Orb[V]) Equal(other Orb[V]) bool {
	return o.Center.Equal(other.Center) && scalar.AreEqual(o.Radius, other.Radius)
}

func (o Orb[V]) String() string {
	return "OB(c(" + o.Center.String() + "),r(" + scalar.Format(o.Radius) + "))"
}
