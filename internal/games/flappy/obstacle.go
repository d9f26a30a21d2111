package flappy

import (
	"math/rand"

	"github.com/vovakirdan/glyphflap/internal/config"
	"github.com/vovakirdan/glyphflap/internal/core"
)

// Wall colors
const (
	WallFg = core.ColorRed
	WallBg = core.ColorBlack
)

// Rand is the randomness an obstacle draws its gap position from.
// *rand.Rand satisfies it; tests substitute fixed sequences.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded source for obstacle generation.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// Obstacle is a full-height wall at world column X with a passable gap
// of Size rows centered on GapY.
type Obstacle struct {
	X    int
	GapY int
	Size int

	glyph rune
}

// NewObstacle creates an obstacle at world column x. The gap center is drawn
// uniformly from [GapMinY, GapMaxY); the gap size shrinks with score.
func NewObstacle(x, score int, cfg config.ObstacleConfig, rng Rand) Obstacle {
	return Obstacle{
		X:     x,
		GapY:  cfg.GapMinY + rng.Intn(cfg.GapMaxY-cfg.GapMinY),
		Size:  cfg.GapSize(score),
		glyph: cfg.GlyphRune(),
	}
}

// GapBand returns the inclusive rows of the gap.
func (o Obstacle) GapBand() (top, bottom int) {
	half := o.Size / 2
	return o.GapY - half, o.GapY + half
}

// Render draws the wall relative to the player's world column.
// Columns outside the surface are clipped by the surface.
func (o Obstacle) Render(dst core.Surface, playerX int) {
	screenX := o.X - playerX
	top, bottom := o.GapBand()

	for y := 0; y < top; y++ {
		dst.SetCell(screenX, y, WallFg, WallBg, o.glyph)
	}
	for y := bottom; y < dst.Height(); y++ {
		dst.SetCell(screenX, y, WallFg, WallBg, o.glyph)
	}
}

// HitTest reports whether the player is in the wall's column and outside the gap.
// Only the exact column counts: the player advances one column per physics step,
// so it always lands on X before passing it.
func (o Obstacle) HitTest(p Player) bool {
	if p.X != o.X {
		return false
	}
	top, bottom := o.GapBand()
	return p.Y < top || p.Y > bottom
}
