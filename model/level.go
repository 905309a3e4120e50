package model

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// CornerPair holds two diagonally opposite corners of a wall, as supplied by
// the level data source.
type CornerPair [2]Vector3

// Wall is a quad in anticlockwise order: v1, v3, v2, v4.
type Wall [4]Vector3

// WallFromCorners derives the two missing corners by recombining components.
func WallFromCorners(v1, v2 Vector3) Wall {
	v3 := Vector3{X: v2.X, Y: v1.Y, Z: v2.Z}
	v4 := Vector3{X: v1.X, Y: v2.Y, Z: v1.Z}
	return Wall{v1, v3, v2, v4}
}

// Segment is the top-down footprint of the wall, running between its two
// original corners.
func (w Wall) Segment() Segment {
	return NewSegment(w[0].XZ(), w[2].XZ())
}

// MaxSplitPieces caps how many render quads one wall can be cut into. Walls
// longer than this get pieces longer than one unit.
const MaxSplitPieces = 1024

// Split cuts the wall along its horizontal extent into pieces no longer than
// one unit, which keeps the plane projector from distorting wide walls.
// Heights come straight from the original corners and are not interpolated.
// Zero-length walls and walls with a non-finite length produce nothing.
func (w Wall) Split() []Wall {
	w1, w2 := w[0], w[2]
	length := math.Hypot(w1.X-w2.X, w1.Z-w2.Z)
	if math.IsNaN(length) || math.IsInf(length, 0) {
		return nil
	}

	pieces := math.Ceil(length)
	if pieces == 0 {
		return nil
	}
	count := MaxSplitPieces
	if pieces < MaxSplitPieces {
		count = int(pieces)
	}

	dx := (w2.X - w1.X) / float64(count)
	dz := (w2.Z - w1.Z) / float64(count)

	out := make([]Wall, 0, count)
	x, z := w1.X, w1.Z
	for i := 0; i < count; i++ {
		p0 := Vector3{X: x, Y: w1.Y, Z: z}
		x, z = x+dx, z+dz
		p1 := Vector3{X: x, Y: w2.Y, Z: z}
		out = append(out, WallFromCorners(p0, p1))
	}
	return out
}

// Level is an immutable snapshot of the loaded walls. Editing operations
// return a new Level so a reload or edit swaps the whole value at once.
type Level struct {
	corners  []CornerPair
	walls    []Wall
	quads    []Wall
	segments []Segment
}

// NewLevel builds the render quads and collision segments for the pairs.
// One segment is made per original wall, not per render subdivision.
func NewLevel(pairs []CornerPair) *Level {
	l := &Level{
		corners:  make([]CornerPair, len(pairs)),
		walls:    make([]Wall, 0, len(pairs)),
		segments: make([]Segment, 0, len(pairs)),
	}
	copy(l.corners, pairs)

	for _, pair := range pairs {
		wall := WallFromCorners(pair[0], pair[1])
		l.walls = append(l.walls, wall)
		l.segments = append(l.segments, wall.Segment())
		l.quads = append(l.quads, wall.Split()...)
	}

	return l
}

// EmptyLevel has no walls.
func EmptyLevel() *Level {
	return NewLevel(nil)
}

// Corners returns a copy of the raw corner pairs.
func (l *Level) Corners() []CornerPair {
	out := make([]CornerPair, len(l.corners))
	copy(out, l.corners)
	return out
}

// Walls returns the unsubdivided wall quads.
func (l *Level) Walls() []Wall {
	return l.walls
}

// Quads returns the subdivided render quads.
func (l *Level) Quads() []Wall {
	return l.quads
}

// Segments returns one collision/visibility segment per original wall.
func (l *Level) Segments() []Segment {
	return l.segments
}

func (l *Level) Len() int {
	return len(l.corners)
}

// AddWall returns a level with pair appended.
func (l *Level) AddWall(pair CornerPair) *Level {
	pairs := append(l.Corners(), pair)
	return NewLevel(pairs)
}

// DeleteWallAt returns a level without any wall that has a corner at the
// given top-down point, along with the number of walls removed.
func (l *Level) DeleteWallAt(p geom.Vector2) (*Level, int) {
	// first pass marks, second pass rebuilds
	remove := make(map[int]struct{})
	for i, pair := range l.corners {
		if pair[0].X == p.X && pair[0].Z == p.Y || pair[1].X == p.X && pair[1].Z == p.Y {
			remove[i] = struct{}{}
		}
	}
	if len(remove) == 0 {
		return l, 0
	}

	kept := make([]CornerPair, 0, len(l.corners)-len(remove))
	for i, pair := range l.corners {
		if _, ok := remove[i]; !ok {
			kept = append(kept, pair)
		}
	}
	return NewLevel(kept), len(remove)
}
