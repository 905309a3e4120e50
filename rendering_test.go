package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"notdoom/model"
)

func TestToScreen(t *testing.T) {
	x, y := toScreen(model.ScreenPoint{X: 0.5, Y: 0.5}, 640, 480)
	assert.Equal(t, float32(320), x)
	assert.Equal(t, float32(240), y)

	// vertical offsets are scaled by the width, not the height
	x, y = toScreen(model.ScreenPoint{X: 0, Y: 0.25}, 640, 480)
	assert.Equal(t, float32(0), x)
	assert.Equal(t, float32(80), y)
}

func TestCrosshairsHitIndicator(t *testing.T) {
	c := NewCrosshairs(10)
	assert.False(t, c.IsHitIndicatorActive())

	c.ActivateHitIndicator(2)
	assert.True(t, c.IsHitIndicatorActive())
	c.Update()
	assert.True(t, c.IsHitIndicatorActive())
	c.Update()
	assert.False(t, c.IsHitIndicatorActive())
	c.Update()
	assert.False(t, c.IsHitIndicatorActive())
}
