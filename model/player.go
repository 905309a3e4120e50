package model

import (
	"github.com/harbdog/raycaster-go/geom"
)

type Player struct {
	Position     Vector3
	Velocity     Vector3
	ViewAngle    float64
	HeightOffset Vector3
	Health       int
}

func NewPlayer(s Settings) Player {
	return Player{
		HeightOffset: Vector3{Y: s.StandingHeight},
		Health:       s.PlayerHealth,
	}
}

// Eye is the camera position: the player position raised by the stance height.
func (p *Player) Eye() Vector3 {
	return p.Position.Add(p.HeightOffset)
}

func (p *Player) Stand(s Settings) {
	p.HeightOffset.Y = s.StandingHeight
}

func (p *Player) Crouch(s Settings) {
	p.HeightOffset.Y = s.CrouchingHeight
}

func (p *Player) IsCrouching(s Settings) bool {
	return p.HeightOffset.Y == s.CrouchingHeight
}

// Pan turns the view about the vertical axis.
func (p *Player) Pan(delta float64) {
	p.ViewAngle += delta
}

// TakeDamage removes health, never going below zero. It reports whether the
// player is out of health.
func (p *Player) TakeDamage(amount, maxHealth int) bool {
	p.Health = int(geom.Clamp(float64(p.Health-amount), 0, float64(maxHealth)))
	return p.Health == 0
}

func (p *Player) IsDead() bool {
	return p.Health <= 0
}

// hitbox returns the four edges of the square footprint centred on pos.
func hitbox(pos Vector3, size float64) [4]Segment {
	h := size / 2
	x, z := pos.X, pos.Z
	a := geom.Vector2{X: x - h, Y: z - h}
	b := geom.Vector2{X: x + h, Y: z - h}
	c := geom.Vector2{X: x + h, Y: z + h}
	d := geom.Vector2{X: x - h, Y: z + h}
	return [4]Segment{
		NewSegment(a, b),
		NewSegment(b, c),
		NewSegment(c, d),
		NewSegment(d, a),
	}
}

// collides reports whether the hitbox at pos touches any wall.
func collides(pos Vector3, size float64, walls []Segment) bool {
	edges := hitbox(pos, size)
	for _, wall := range walls {
		for _, edge := range edges {
			if edge.Intersects(wall) {
				return true
			}
		}
	}
	return false
}
