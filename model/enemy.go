package model

import (
	"github.com/google/uuid"
)

type Enemy struct {
	ID           uuid.UUID
	Position     Vector3
	Width        float64
	Height       float64
	Dead         bool
	Transparency float64
}

// Faded reports whether a dead enemy has finished its fade-out.
func (e *Enemy) Faded() bool {
	return e.Dead && e.Transparency >= 1
}

// Edges returns the bottom-left and top-right corners of the enemy billboard,
// which always faces the camera along right.
func (e *Enemy) Edges(right Vector3) (Vector3, Vector3) {
	half := right.Scale(e.Width / 2)
	v1 := e.Position.Sub(half)
	v2 := e.Position.Add(half)
	v2.Y = e.Position.Y + e.Height
	return v1, v2
}

// WidthSegment is the top-down extent of the billboard, used as the target
// for hit-scan.
func (e *Enemy) WidthSegment(right Vector3) Segment {
	half := right.Scale(e.Width / 2)
	return NewSegment(e.Position.Sub(half).XZ(), e.Position.Add(half).XZ())
}
