// Package transform builds affine matrices and applies rigid and scale
// transforms to sets of points of any dimension.
package transform

import (
	"github.com/echoflaresat/geomkit/matrix"
	"github.com/echoflaresat/geomkit/quaternion"
	"github.com/echoflaresat/geomkit/vectors"
	"github.com/soniakeys/unit"
)

// Translation returns the 4x4 matrix that moves points by t.
func Translation(t vectors.Vec3) matrix.Mat4x4 {
	m := matrix.Identity4x4()
	m[3][0], m[3][1], m[3][2] = t.X, t.Y, t.Z
	return m
}

// Scaling returns the 3x3 matrix that scales each axis by s.
func Scaling(s vectors.Vec3) matrix.Mat3x3 {
	return matrix.Mat3x3{{s.X, 0, 0}, {0, s.Y, 0}, {0, 0, s.Z}}
}

func Rotation(q quaternion.Quat) matrix.Mat3x3 {
	return q.Normalize().Matrix()
}

func RotationAxis(axis vectors.Vec3, angle unit.Angle) matrix.Mat3x3 {
	return quaternion.FromAxisAngle(axis, angle).Matrix()
}

// Compose returns the transformation that scales, then rotates, then
// translates a row vector.
func Compose(translation vectors.Vec3, rotation quaternion.Quat, scale vectors.Vec3) matrix.Mat4x4 {
	linear := Scaling(scale).Mul(Rotation(rotation))
	m := matrix.Identity4x4()
	for i := 0; i < 3; i++ {
		m[i][0], m[i][1], m[i][2] = linear[i][0], linear[i][1], linear[i][2]
	}
	m[3][0], m[3][1], m[3][2] = translation.X, translation.Y, translation.Z
	return m
}
