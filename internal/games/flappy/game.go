// Package flappy implements a side-scrolling gap-dodging game.
// A falling glyph flaps upward through walls with shrinking gaps.
// The package is driver-agnostic: each display frame goes in as a
// core.InputFrame and comes out as a recorded core.Frame.
package flappy

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/glyphflap/internal/config"
	"github.com/vovakirdan/glyphflap/internal/core"
)

// Game owns the player, the current obstacle and the mode state machine.
type Game struct {
	cfg    config.GameConfig
	rng    Rand
	logger *log.Logger

	mode      Mode
	player    Player
	obstacle  Obstacle
	frameTime float64 // ms accumulated since the last physics step
	score     int
	quit      bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger for mode changes and round results.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithRand replaces the obstacle randomness source.
func WithRand(r Rand) Option {
	return func(g *Game) {
		if r != nil {
			g.rng = r
		}
	}
}

// New creates a game in the menu. A zero seed uses the current time.
func New(cfg config.GameConfig, seed int64, opts ...Option) *Game {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:    cfg,
		rng:    NewRand(seed),
		logger: log.New(io.Discard),
		mode:   ModeMenu,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.player = g.newPlayer()
	g.obstacle = NewObstacle(cfg.Screen.Width, 0, cfg.Obstacles, g.rng)
	return g
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Glyph Flap"
}

// Tick runs one display frame and returns what it drew.
func (g *Game) Tick(in core.InputFrame) *core.Frame {
	f := core.NewFrame(g.cfg.Screen.Width, g.cfg.Screen.Height)

	prev := g.mode
	var next Mode
	switch prev {
	case ModeMenu:
		next = g.tickMenu(in, f)
	case ModePlaying:
		next = g.tickPlaying(in, f)
	case ModeDead:
		next = g.tickDead(in, f)
	default:
		next = ModeMenu
	}

	if next != prev {
		g.logger.Debug("mode change", "from", prev, "to", next)
		if next == ModeDead {
			g.logger.Info("round over", "score", g.score, "distance", g.player.X)
		}
	}
	g.mode = next

	f.Quit = g.quit
	return f
}

// Restart begins a new round: fresh player, score 0, obstacle at the right edge.
func (g *Game) Restart() {
	g.player = g.newPlayer()
	g.frameTime = 0
	g.mode = ModePlaying
	g.score = 0
	g.obstacle = NewObstacle(g.cfg.Screen.Width, 0, g.cfg.Obstacles, g.rng)
}

// requestQuit sets the sticky quit flag read by the driver.
func (g *Game) requestQuit() {
	if !g.quit {
		g.logger.Info("quit requested", "mode", g.mode)
	}
	g.quit = true
}

func (g *Game) newPlayer() Player {
	return NewPlayer(g.cfg.Player.StartX, g.cfg.Player.StartY, g.cfg.Physics, g.cfg.Player.GlyphRune())
}

// Mode returns the active mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Score returns the number of obstacles cleared this round.
func (g *Game) Score() int {
	return g.score
}

// QuitRequested reports whether the player chose to quit.
func (g *Game) QuitRequested() bool {
	return g.quit
}

// Snapshot is a read-only copy of the game state.
type Snapshot struct {
	Mode      Mode
	PlayerX   int
	PlayerY   int
	Velocity  float64
	ObstacleX int
	GapY      int
	GapSize   int
	FrameTime float64
	Score     int
	Quit      bool
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Mode:      g.mode,
		PlayerX:   g.player.X,
		PlayerY:   g.player.Y,
		Velocity:  g.player.Velocity,
		ObstacleX: g.obstacle.X,
		GapY:      g.obstacle.GapY,
		GapSize:   g.obstacle.Size,
		FrameTime: g.frameTime,
		Score:     g.score,
		Quit:      g.quit,
	}
}
