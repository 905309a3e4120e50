package model

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

type QuadKind int

const (
	QuadWall QuadKind = iota
	QuadEnemy
)

// Quad is a projected, screen-space quadrilateral ready to be filled. Points
// run v1, v3, v2, v4 around the outline.
type Quad struct {
	Kind    QuadKind
	Points  [4]ScreenPoint
	Depth   float64
	Alpha   float64
	EnemyID uuid.UUID
}

// Scene projects every wall piece and enemy billboard for the current camera
// and returns them ordered far to near. Wall pieces sort by the mean depth of
// their corners and billboards by their first corner. Quads with any vertex
// behind the camera are dropped.
func (w *World) Scene() ([]Quad, error) {
	proj := w.Projector()
	quads := make([]Quad, 0, len(w.level.Quads())+len(w.enemies))

	for i, wall := range w.level.Quads() {
		q, ok, err := projectQuad(proj, wall)
		if err != nil {
			return nil, fmt.Errorf("project wall %d: %w", i, err)
		}
		if !ok {
			continue
		}
		q.Kind = QuadWall
		q.Alpha = 1
		q.Depth = q.meanDepth()
		quads = append(quads, q)
	}

	for i := range w.enemies {
		e := &w.enemies[i]
		v1, v2 := e.Edges(proj.Basis.Right)
		q, ok, err := projectQuad(proj, WallFromCorners(v1, v2))
		if err != nil {
			return nil, fmt.Errorf("project enemy %s: %w", e.ID, err)
		}
		if !ok {
			continue
		}
		q.Kind = QuadEnemy
		q.Alpha = 1 - e.Transparency
		q.EnemyID = e.ID
		quads = append(quads, q)
	}

	sort.SliceStable(quads, func(i, j int) bool {
		return quads[i].Depth > quads[j].Depth
	})
	return quads, nil
}

// projectQuad projects the four corners of w. The quad depth starts as the
// depth of its first corner.
func projectQuad(proj Projector, w Wall) (Quad, bool, error) {
	var q Quad
	for i, v := range w {
		p, ok, err := proj.Project(v)
		if err != nil || !ok {
			return Quad{}, false, err
		}
		q.Points[i] = p
	}
	q.Depth = q.Points[0].Depth
	return q, true, nil
}

func (q Quad) meanDepth() float64 {
	sum := 0.0
	for _, p := range q.Points {
		sum += p.Depth
	}
	return sum / float64(len(q.Points))
}
