package model

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// Segment is a finite 2D line piece with its bounding box and line equation
// precomputed. A segment is immutable: every derived field is a function of
// its two endpoints, so build a new one with NewSegment instead of editing.
type Segment struct {
	p1, p2 geom.Vector2

	minX, maxX float64
	minY, maxY float64

	// vertical segments have no slope and store their constant x in c
	vertical bool
	m, c     float64
}

func NewSegment(p1, p2 geom.Vector2) Segment {
	s := Segment{
		p1:   p1,
		p2:   p2,
		minX: math.Min(p1.X, p2.X),
		maxX: math.Max(p1.X, p2.X),
		minY: math.Min(p1.Y, p2.Y),
		maxY: math.Max(p1.Y, p2.Y),
	}

	if p1.X == p2.X {
		s.vertical = true
		s.c = p1.X
	} else {
		s.m = (p1.Y - p2.Y) / (p1.X - p2.X)
		s.c = p1.Y - s.m*p1.X
	}

	return s
}

// Endpoints returns the two points the segment was built from.
func (s Segment) Endpoints() (geom.Vector2, geom.Vector2) {
	return s.p1, s.p2
}

// Vertical reports whether the segment has constant x.
func (s Segment) Vertical() bool {
	return s.vertical
}

// Line returns the slope and intercept, or (0, x) for a vertical segment.
func (s Segment) Line() (m, c float64) {
	return s.m, s.c
}

// Intersects reports whether the finite extents of s and o touch.
//
// Two vertical segments intersect when they share the same x constant and
// their y extents overlap. Collinear non-vertical segments intersect when
// their bounding boxes overlap. All bounds are inclusive.
func (s Segment) Intersects(o Segment) bool {
	switch {
	case s.vertical && o.vertical:
		return s.c == o.c && s.minY <= o.maxY && s.maxY >= o.minY
	case !s.vertical && !o.vertical && s.m == o.m:
		if s.c != o.c {
			return false
		}
		return s.boxOverlaps(o)
	}

	_, ok := s.crossing(o)
	return ok
}

// IntersectPoint returns the single point where s and o cross. Parallel and
// collinear pairs report no point, even when they overlap.
func (s Segment) IntersectPoint(o Segment) (geom.Vector2, bool) {
	if s.vertical && o.vertical {
		return geom.Vector2{}, false
	}
	if !s.vertical && !o.vertical && s.m == o.m {
		return geom.Vector2{}, false
	}
	return s.crossing(o)
}

// crossing solves the two line equations and checks the solution against
// both bounding boxes. The pair must not be parallel.
func (s Segment) crossing(o Segment) (geom.Vector2, bool) {
	var ix, iy float64

	switch {
	case s.vertical:
		ix, iy = s.c, o.m*s.c+o.c
	case o.vertical:
		ix, iy = o.c, s.m*o.c+s.c
	default:
		ix = (o.c - s.c) / (s.m - o.m)
		// evaluate on the flatter line so a horizontal edge yields its exact y
		switch sy, oy := s.m*ix+s.c, o.m*ix+o.c; {
		case math.Abs(o.m) < math.Abs(s.m):
			iy = oy
		case math.Abs(s.m) < math.Abs(o.m):
			iy = sy
		default:
			iy = (sy + oy) / 2
		}
	}

	if !s.contains(ix, iy) || !o.contains(ix, iy) {
		return geom.Vector2{}, false
	}
	return geom.Vector2{X: ix, Y: iy}, true
}

func (s Segment) contains(x, y float64) bool {
	return x >= s.minX && x <= s.maxX && y >= s.minY && y <= s.maxY
}

func (s Segment) boxOverlaps(o Segment) bool {
	return s.minX <= o.maxX && s.maxX >= o.minX && s.minY <= o.maxY && s.maxY >= o.minY
}

// AnyIntersects reports whether s touches any of the given segments.
func AnyIntersects(s Segment, others []Segment) bool {
	for _, o := range others {
		if s.Intersects(o) {
			return true
		}
	}
	return false
}
