package flappy

import (
	"fmt"

	"github.com/vovakirdan/glyphflap/internal/core"
)

// Mode is the active screen of the game. Exactly one is active at a time.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeDead
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "Menu"
	case ModePlaying:
		return "Playing"
	case ModeDead:
		return "Dead"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Menu and death screen text
const (
	TitleText     = "Welcome to Glyph Flap!"
	PlayText      = "(P) Play Game"
	PlayAgainText = "(P) Play Again"
	QuitText      = "(Q) Quit Game"
	DeadText      = "You are dead!"
	FlapHelpText  = "Press SPACE to flap"
)

// tickMenu draws the title screen and handles play/quit.
func (g *Game) tickMenu(in core.InputFrame, dst core.Surface) Mode {
	dst.Clear(core.ColorDefault)
	dst.PrintCentered(5, TitleText)
	dst.PrintCentered(8, PlayText)
	dst.PrintCentered(9, QuitText)

	return g.menuChoice(in, ModeMenu)
}

// tickDead draws the death screen with the final score and handles play/quit.
func (g *Game) tickDead(in core.InputFrame, dst core.Surface) Mode {
	dst.Clear(core.ColorDefault)
	dst.PrintCentered(5, DeadText)
	dst.PrintCentered(6, fmt.Sprintf("You earned %d points", g.score))
	dst.PrintCentered(8, PlayAgainText)
	dst.PrintCentered(9, QuitText)

	return g.menuChoice(in, ModeDead)
}

// menuChoice applies the play/quit keys shared by the menu and death screens.
// Any other action leaves the mode unchanged.
func (g *Game) menuChoice(in core.InputFrame, current Mode) Mode {
	switch in.Action {
	case core.ActionPlay:
		g.Restart()
		return ModePlaying
	case core.ActionQuit:
		g.requestQuit()
	}
	return current
}

// tickPlaying advances the round by one display frame.
func (g *Game) tickPlaying(in core.InputFrame, dst core.Surface) Mode {
	dst.Clear(core.ColorNavy)

	// Physics runs in fixed steps regardless of display rate
	g.frameTime += in.FrameTimeMs
	if g.frameTime > g.cfg.Timing.FrameDurationMs {
		g.frameTime = 0
		g.player.ApplyGravityAndAdvance()
	}

	// Flap is sampled every display frame
	if in.Has(core.ActionFlap) {
		g.player.Flap()
	}

	g.player.Render(dst)
	dst.Print(0, 0, FlapHelpText)
	dst.Print(0, 1, fmt.Sprintf("Score: %d", g.score))
	g.obstacle.Render(dst, g.player.X)

	if g.player.X > g.obstacle.X {
		g.score++
		g.obstacle = NewObstacle(g.player.X+g.cfg.Screen.Width, g.score, g.cfg.Obstacles, g.rng)
		g.logger.Debug("obstacle cleared", "score", g.score, "next_x", g.obstacle.X, "gap_size", g.obstacle.Size)
	}

	if g.player.Y > g.cfg.Screen.Height || g.obstacle.HitTest(g.player) {
		return ModeDead
	}
	return ModePlaying
}
