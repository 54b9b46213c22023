package render

import (
	"math"

	"github.com/echoflaresat/geomkit/quaternion"
	"github.com/echoflaresat/geomkit/vectors"
	"github.com/soniakeys/unit"
)

// Near is the closest depth, along Forward, that a camera can see.
const Near = 1e-3

// Camera models a pinhole camera orbiting a target point, with +Z up.
type Camera struct {
	FOV        unit.Angle
	TanHalfFOV float64
	Target     vectors.Vec3
	Position   vectors.Vec3
	Forward    vectors.Vec3
	Right      vectors.Vec3
	Up         vectors.Vec3
}

// NewCamera places the camera distance away from target, looking at it.
// With zero yaw and pitch the camera sits on the -Y side looking along +Y.
// Pitch raises the camera above the target, then yaw turns it about +Z.
func NewCamera(target vectors.Vec3, distance float64, yaw, pitch, fov unit.Angle) Camera {
	q := quaternion.FromAxisAngle(vectors.UnitZ, yaw).
		Mul(quaternion.FromAxisAngle(vectors.UnitX, -pitch))

	fwd := q.Rotate(vectors.UnitY).Normalize()
	right := q.Rotate(vectors.UnitX).Normalize()
	up := q.Rotate(vectors.UnitZ).Normalize()

	return Camera{
		FOV:        fov,
		TanHalfFOV: math.Tan(fov.Rad() / 2.0),
		Target:     target,
		Position:   target.Sub(fwd.Scale(distance)),
		Forward:    fwd,
		Right:      right,
		Up:         up,
	}
}

// Depth is the distance of p in front of the camera along Forward.
func (c Camera) Depth(p vectors.Vec3) float64 {
	return p.Sub(c.Position).Dot(c.Forward)
}

// Project maps p to normalized device coordinates, +x right and +y up,
// with the field of view spanning [-1, +1]. ok is false for points closer
// than Near.
func (c Camera) Project(p vectors.Vec3) (x, y float64, ok bool) {
	d := p.Sub(c.Position)
	z := d.Dot(c.Forward)
	if z < Near {
		return 0, 0, false
	}
	return d.Dot(c.Right) / (z * c.TanHalfFOV), d.Dot(c.Up) / (z * c.TanHalfFOV), true
}

// Pixel projects p onto an image of the given size. Pixel centers sit on
// integer coordinates, matching ComputeRay.
func (c Camera) Pixel(p vectors.Vec3, width, height int) (x, y float64, ok bool) {
	nx, ny, ok := c.Project(p)
	if !ok {
		return 0, 0, false
	}
	hw := float64(width-1) / 2.0
	hh := float64(height-1) / 2.0
	return nx*hw + hw, -ny*hh + hh, true
}

// ComputeRay returns the normalized viewing direction for pixel (i,j)
// given the image dimensions (width,height). i,j can be fractional.
func (c Camera) ComputeRay(i, j float64, width, height int) vectors.Vec3 {
	w := float64(width)
	h := float64(height)

	// NDC in [-1, +1] (centered), flip Y to make +up in screen space.
	xNDC := (i - (w-1)/2.0) / ((w - 1) / 2.0)
	yNDC := -((j - (h-1)/2.0) / ((h - 1) / 2.0))

	dir := c.Right.Scale(xNDC * c.TanHalfFOV).
		Add(c.Up.Scale(yNDC * c.TanHalfFOV)).
		Add(c.Forward)

	return dir.Normalize()
}

// FitCamera frames the box [lo, hi] so that its bounding sphere fills the
// field of view.
func FitCamera(lo, hi vectors.Vec3, yaw, pitch, fov unit.Angle) Camera {
	center := lo.Lerp(hi, 0.5)
	radius := hi.Sub(lo).Length() / 2
	if radius == 0 {
		radius = 1
	}
	distance := 1.1 * radius / math.Sin(fov.Rad()/2)
	return NewCamera(center, distance, yaw, pitch, fov)
}
