package model

import (
	"testing"

	"github.com/harbdog/raycaster-go/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func seg(x1, y1, x2, y2 float64) Segment {
	return NewSegment(geom.Vector2{X: x1, Y: y1}, geom.Vector2{X: x2, Y: y2})
}

func TestNewSegment(t *testing.T) {
	s := seg(2, 3, 0, -1)
	m, c := s.Line()
	assert.False(t, s.Vertical())
	assert.Equal(t, 2.0, m)
	assert.Equal(t, -1.0, c)

	v := seg(4, 0, 4, 9)
	m, c = v.Line()
	assert.True(t, v.Vertical())
	assert.Equal(t, 0.0, m)
	assert.Equal(t, 4.0, c)

	p1, p2 := v.Endpoints()
	assert.Equal(t, geom.Vector2{X: 4, Y: 0}, p1)
	assert.Equal(t, geom.Vector2{X: 4, Y: 9}, p2)
}

func TestIntersectPoint(t *testing.T) {
	tests := []struct {
		name string
		a, b Segment
		want geom.Vector2
		ok   bool
	}{
		{"diagonals", seg(0, 0, 2, 2), seg(0, 2, 2, 0), geom.Vector2{X: 1, Y: 1}, true},
		{"vertical and horizontal", seg(3, 0, 3, 5), seg(0, 2, 6, 2), geom.Vector2{X: 3, Y: 2}, true},
		{"horizontal and vertical", seg(0, 2, 6, 2), seg(3, 0, 3, 5), geom.Vector2{X: 3, Y: 2}, true},
		{"touching endpoints", seg(0, 0, 1, 1), seg(1, 1, 2, 0), geom.Vector2{X: 1, Y: 1}, true},
		{"lines cross outside extents", seg(0, 0, 1, 1), seg(3, 0, 4, -1), geom.Vector2{}, false},
		{"vertical misses", seg(3, 0, 3, 1), seg(0, 2, 6, 2), geom.Vector2{}, false},
		{"parallel", seg(0, 0, 2, 2), seg(0, 1, 2, 3), geom.Vector2{}, false},
		{"collinear overlap", seg(0, 0, 2, 2), seg(1, 1, 3, 3), geom.Vector2{}, false},
		{"both vertical overlap", seg(1, 0, 1, 2), seg(1, 1, 1, 3), geom.Vector2{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.IntersectPoint(tt.b)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.InDelta(t, tt.want.X, got.X, 1e-9)
				assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
			}
		})
	}
}

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Segment
		want bool
	}{
		{"crossing", seg(0, 0, 2, 2), seg(0, 2, 2, 0), true},
		{"disjoint", seg(0, 0, 1, 0), seg(0, 1, 1, 1), false},
		{"parallel distinct", seg(0, 0, 2, 2), seg(0, 1, 2, 3), false},
		{"collinear overlap", seg(0, 0, 2, 2), seg(1, 1, 3, 3), true},
		{"collinear apart", seg(0, 0, 1, 1), seg(2, 2, 3, 3), false},
		{"both vertical overlap", seg(1, 0, 1, 2), seg(1, 1, 1, 3), true},
		{"both vertical stacked", seg(1, 0, 1, 1), seg(1, 2, 1, 3), false},
		{"both vertical apart", seg(1, 0, 1, 2), seg(2, 0, 2, 2), false},
		{"vertical through horizontal", seg(3, 0, 3, 5), seg(0, 2, 6, 2), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Intersects(tt.b))
			assert.Equal(t, tt.want, tt.b.Intersects(tt.a))
		})
	}
}

func TestAnyIntersects(t *testing.T) {
	walls := []Segment{seg(0, 5, 10, 5), seg(20, 0, 20, 10)}
	assert.True(t, AnyIntersects(seg(1, 0, 1, 10), walls))
	assert.False(t, AnyIntersects(seg(1, 0, 1, 4), walls))
	assert.False(t, AnyIntersects(seg(1, 0, 1, 4), nil))
}

func TestIntersectPointImpliesIntersects(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		coord := rapid.Float64Range(-100, 100)
		a := seg(coord.Draw(t, "ax1"), coord.Draw(t, "ay1"), coord.Draw(t, "ax2"), coord.Draw(t, "ay2"))
		b := seg(coord.Draw(t, "bx1"), coord.Draw(t, "by1"), coord.Draw(t, "bx2"), coord.Draw(t, "by2"))

		p, ok := a.IntersectPoint(b)
		if !ok {
			return
		}
		if !a.Intersects(b) {
			t.Fatalf("point %v found but segments reported disjoint", p)
		}
		if !a.contains(p.X, p.Y) || !b.contains(p.X, p.Y) {
			t.Fatalf("point %v outside segment bounds", p)
		}
	})
}

func TestIntersectsSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		coord := rapid.IntRange(-5, 5)
		f := func(label string) float64 { return float64(coord.Draw(t, label)) }
		a := seg(f("ax1"), f("ay1"), f("ax2"), f("ay2"))
		b := seg(f("bx1"), f("by1"), f("bx2"), f("by2"))

		if a.Intersects(b) != b.Intersects(a) {
			t.Fatalf("asymmetric result for %v and %v", a, b)
		}
	})
}
