package transform

import (
	"github.com/echoflaresat/geomkit/matrix"
	"github.com/echoflaresat/geomkit/quaternion"
	"github.com/echoflaresat/geomkit/vectors"
)

// The helpers below rewrite points in place. Only the 3D part of each point
// moves; the W of a Vec4 is carried through untouched.

func apply[V vectors.Point[V]](points []V, f func(vectors.Vec3) vectors.Vec3) {
	for i, p := range points {
		points[i] = p.WithXYZ(f(p.XYZ()))
	}
}

func Translate[V vectors.Point[V]](points []V, t vectors.Vec3) {
	apply(points, func(p vectors.Vec3) vectors.Vec3 { return p.Add(t) })
}

func Rotate[V vectors.Point[V]](points []V, q quaternion.Quat) {
	q = q.Normalize()
	apply(points, q.Rotate)
}

func RotateMatrix[V vectors.Point[V]](points []V, m matrix.Mat3x3) {
	apply(points, m.TransformVec3)
}

// Scale multiplies every coordinate by the matching component of s.
func Scale[V vectors.Point[V]](points []V, s vectors.Vec3) {
	apply(points, func(p vectors.Vec3) vectors.Vec3 { return p.Mul(s) })
}

// Transform applies m to each point taken with w = 1.
func Transform[V vectors.Point[V]](points []V, m matrix.Mat4x4) {
	apply(points, m.TransformPoint)
}

func RotateWithPivot[V vectors.Point[V]](points []V, q quaternion.Quat, pivot vectors.Vec3) {
	q = q.Normalize()
	apply(points, func(p vectors.Vec3) vectors.Vec3 {
		return q.Rotate(p.Sub(pivot)).Add(pivot)
	})
}

func RotateMatrixWithPivot[V vectors.Point[V]](points []V, m matrix.Mat3x3, pivot vectors.Vec3) {
	apply(points, func(p vectors.Vec3) vectors.Vec3 {
		return m.TransformVec3(p.Sub(pivot)).Add(pivot)
	})
}

func ScaleWithPivot[V vectors.Point[V]](points []V, s vectors.Vec3, pivot vectors.Vec3) {
	apply(points, func(p vectors.Vec3) vectors.Vec3 {
		return p.Sub(pivot).Mul(s).Add(pivot)
	})
}

func TransformWithPivot[V vectors.Point[V]](points []V, m matrix.Mat4x4, pivot vectors.Vec3) {
	apply(points, func(p vectors.Vec3) vectors.Vec3 {
		return m.TransformPoint(p.Sub(pivot)).Add(pivot)
	})
}
