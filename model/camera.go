package model

import (
	"errors"
	"fmt"
)

// ErrParallelRay is returned when a projection ray runs parallel to the view
// plane. It means the camera basis or the input point is broken.
var ErrParallelRay = errors.New("projection ray is parallel to the view plane")

var (
	initialViewVector = Vector3{X: 0, Y: 0, Z: 1}
	downVector        = Vector3{X: 0, Y: -1, Z: 0}
)

type Plane struct {
	Normal Vector3
	Point  Vector3
}

// CameraBasis is the per-frame camera orientation derived from a view angle.
type CameraBasis struct {
	Angle float64
	View  Vector3
	Right Vector3
	// ViewPlane sits one unit in front of the camera, facing back along View.
	ViewPlane Plane

	inverse rotation
}

// ComputeCameraBasis builds the camera basis for a view angle in radians.
// Right is View x down, which gives the left-handed convention movement and
// projection both rely on.
func ComputeCameraBasis(viewAngle float64) CameraBasis {
	view := rotationY(viewAngle).apply(initialViewVector)
	return CameraBasis{
		Angle:     viewAngle,
		View:      view,
		Right:     view.Cross(downVector),
		ViewPlane: Plane{Normal: view, Point: view},
		inverse:   rotationY(-viewAngle),
	}
}

// ScreenPoint is a projected point. X and Y are normalised to [0,1] with the
// origin at the top left; Depth is the normalised distance from the camera.
type ScreenPoint struct {
	X, Y  float64
	Depth float64
}

// Projector maps world points onto the view plane of a camera.
type Projector struct {
	Basis       CameraBasis
	Eye         Vector3
	MinDistance float64
	MaxDistance float64
}

// Project maps a world-space point to screen space. The bool is false when the
// point is behind the camera.
func (p Projector) Project(world Vector3) (ScreenPoint, bool, error) {
	return p.ProjectRelative(world.Sub(p.Eye))
}

// ProjectRelative maps a point already expressed relative to the eye.
// Depth values outside [0,1] are returned as-is for the renderer to clip.
func (p Projector) ProjectRelative(point Vector3) (ScreenPoint, bool, error) {
	distance := point.Length()
	if distance == 0 {
		return ScreenPoint{}, false, fmt.Errorf("point at camera position: %w", ErrParallelRay)
	}

	hit, ok, err := intersectViewPlane(point.Scale(1/distance), p.Basis.ViewPlane)
	if err != nil || !ok {
		return ScreenPoint{}, ok, err
	}

	local := p.Basis.inverse.apply(hit)
	depth := (distance - p.MinDistance) / (p.MaxDistance - p.MinDistance)

	return ScreenPoint{
		X:     local.X + 0.5,
		Y:     -local.Y + 0.5,
		Depth: depth,
	}, true, nil
}

// intersectViewPlane intersects the ray from the origin along dir with plane.
func intersectViewPlane(dir Vector3, plane Plane) (Vector3, bool, error) {
	if plane.Point.Dot(dir) <= 0 {
		// behind the camera
		return Vector3{}, false, nil
	}

	denom := dir.Dot(plane.Normal)
	if denom == 0 {
		return Vector3{}, false, fmt.Errorf("ray %v against plane %v: %w", dir, plane.Normal, ErrParallelRay)
	}

	d := plane.Point.Dot(plane.Normal) / denom
	return dir.Scale(d), true, nil
}
