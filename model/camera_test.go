package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func testProjector(angle float64, eye Vector3) Projector {
	return Projector{
		Basis:       ComputeCameraBasis(angle),
		Eye:         eye,
		MinDistance: 0.0001,
		MaxDistance: 1024,
	}
}

func TestComputeCameraBasis(t *testing.T) {
	b := ComputeCameraBasis(0)
	assert.Equal(t, Vector3{X: 0, Y: 0, Z: 1}, b.View)
	assert.Equal(t, Vector3{X: 1, Y: 0, Z: 0}, b.Right)
	assert.Equal(t, b.View, b.ViewPlane.Normal)
	assert.Equal(t, b.View, b.ViewPlane.Point)

	b = ComputeCameraBasis(math.Pi / 2)
	assert.InDelta(t, -1, b.View.X, 1e-12)
	assert.InDelta(t, 0, b.View.Z, 1e-12)
	assert.InDelta(t, 0, b.Right.X, 1e-12)
	assert.InDelta(t, 1, b.Right.Z, 1e-12)
}

func TestProjectStraightAhead(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		angle := rapid.Float64Range(-2*math.Pi, 2*math.Pi).Draw(t, "angle")
		dist := rapid.Float64Range(0.5, 500).Draw(t, "dist")
		eye := Vector3{
			X: rapid.Float64Range(-50, 50).Draw(t, "x"),
			Y: rapid.Float64Range(0, 2).Draw(t, "y"),
			Z: rapid.Float64Range(-50, 50).Draw(t, "z"),
		}

		p := testProjector(angle, eye)
		sp, ok, err := p.Project(eye.Add(p.Basis.View.Scale(dist)))
		if err != nil || !ok {
			t.Fatalf("projection failed: ok=%v err=%v", ok, err)
		}
		if math.Abs(sp.X-0.5) > 1e-6 || math.Abs(sp.Y-0.5) > 1e-6 {
			t.Fatalf("point straight ahead projected to %v", sp)
		}
	})
}

func TestProjectOrientation(t *testing.T) {
	for _, angle := range []float64{0, 0.7, math.Pi / 2, math.Pi, -2.1} {
		p := testProjector(angle, Vector3{Y: 1})
		ahead := p.Eye.Add(p.Basis.View.Scale(5))

		right, ok, err := p.Project(ahead.Add(p.Basis.Right))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Greater(t, right.X, 0.5, "angle %v", angle)
		assert.InDelta(t, 0.5, right.Y, 1e-9)

		above, ok, err := p.Project(ahead.Add(Vector3{Y: 1}))
		require.NoError(t, err)
		require.True(t, ok)
		assert.Less(t, above.Y, 0.5, "angle %v", angle)
		assert.InDelta(t, 0.5, above.X, 1e-9)
	}
}

func TestProjectLeftHanded(t *testing.T) {
	// +X is to the right when looking down +Z
	p := testProjector(0, Vector3{})
	sp, ok, err := p.Project(Vector3{X: 1, Z: 5})
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 0.7, sp.X, 1e-9)
	assert.InDelta(t, 0.5, sp.Y, 1e-9)
}

func TestProjectBehind(t *testing.T) {
	p := testProjector(0.3, Vector3{X: 2, Z: 2})
	_, ok, err := p.Project(p.Eye.Sub(p.Basis.View.Scale(3)))
	require.NoError(t, err)
	assert.False(t, ok)

	// exactly beside the camera is not in front of it either
	p = testProjector(0, Vector3{X: 2, Z: 2})
	_, ok, err = p.Project(p.Eye.Add(p.Basis.Right))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProjectAtCamera(t *testing.T) {
	p := testProjector(0, Vector3{X: 1, Y: 1, Z: 1})
	_, _, err := p.Project(p.Eye)
	assert.ErrorIs(t, err, ErrParallelRay)
}

func TestProjectDepth(t *testing.T) {
	p := testProjector(0, Vector3{})
	p.MinDistance = 0
	p.MaxDistance = 100

	sp, ok, err := p.Project(Vector3{Z: 25})
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 0.25, sp.Depth, 1e-12)

	far, ok, err := p.Project(Vector3{Z: 150})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Greater(t, far.Depth, 1.0)
}

func TestIntersectViewPlaneParallel(t *testing.T) {
	plane := Plane{Normal: Vector3{Z: 1}, Point: Vector3{X: 1, Z: 1}}
	_, _, err := intersectViewPlane(Vector3{X: 1}, plane)
	assert.ErrorIs(t, err, ErrParallelRay)
}
