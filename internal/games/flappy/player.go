package flappy

import (
	"math"

	"github.com/vovakirdan/glyphflap/internal/config"
	"github.com/vovakirdan/glyphflap/internal/core"
)

// Player colors
const (
	PlayerFg = core.ColorYellow
	PlayerBg = core.ColorBlack
)

// Player is the falling glyph. X is its world-space column, which only grows
// while a round runs; Y grows downward and is never negative.
type Player struct {
	X        int
	Y        int
	Velocity float64

	physics config.PhysicsConfig
	glyph   rune
}

// NewPlayer creates a player at rest at (x, y).
func NewPlayer(x, y int, physics config.PhysicsConfig, glyph rune) Player {
	return Player{
		X:       x,
		Y:       y,
		physics: physics,
		glyph:   glyph,
	}
}

// ApplyGravityAndAdvance runs one physics step: accelerate toward terminal
// velocity, fall by the whole part of the velocity, advance one column.
func (p *Player) ApplyGravityAndAdvance() {
	if p.Velocity < p.physics.TerminalVelocity {
		p.Velocity = math.Min(snapVelocity(p.Velocity+p.physics.Gravity), p.physics.TerminalVelocity)
	}

	p.Y += int(p.Velocity)
	p.X++

	if p.Y < 0 {
		p.Y = 0
	}
}

// snapVelocity removes float drift from repeated gravity steps, so ten steps
// of 0.2 are exactly 2.0 and truncation lands on the intended row.
func snapVelocity(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}

// Flap replaces the current velocity with the upward flap velocity.
func (p *Player) Flap() {
	p.Velocity = p.physics.FlapVelocity
}

// Render draws the player at the left edge; the world scrolls under it.
func (p Player) Render(dst core.Surface) {
	dst.SetCell(0, p.Y, PlayerFg, PlayerBg, p.glyph)
}
