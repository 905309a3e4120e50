package model

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// Vector3 is a value-typed 3D vector. Y is up.
type Vector3 struct {
	X, Y, Z float64
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vector3) Dot(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vector3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns the unit vector in the direction of v, or the zero vector
// when v has no length.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l == 0 {
		return Vector3{}
	}
	return v.Scale(1 / l)
}

// XZ drops the height component, giving the top-down position used by all
// 2D intersection tests.
func (v Vector3) XZ() geom.Vector2 {
	return geom.Vector2{X: v.X, Y: v.Z}
}

// distance2 is the Euclidean distance between two top-down points.
func distance2(a, b geom.Vector2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// rotation is a 3x3 matrix applied to row vectors (v * M).
type rotation [3][3]float64

// rotationY builds the rotation about the vertical axis by theta radians.
func rotationY(theta float64) rotation {
	c, s := math.Cos(theta), math.Sin(theta)
	return rotation{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

func (r rotation) apply(v Vector3) Vector3 {
	return Vector3{
		X: v.X*r[0][0] + v.Y*r[1][0] + v.Z*r[2][0],
		Y: v.X*r[0][1] + v.Y*r[1][1] + v.Z*r[2][1],
		Z: v.X*r[0][2] + v.Y*r[1][2] + v.Z*r[2][2],
	}
}
