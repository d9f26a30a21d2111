package tcellterm

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/glyphflap/internal/core"
	"github.com/vovakirdan/glyphflap/internal/registry"
)

type countingGame struct {
	ticks     int
	quitAfter int
}

func (g *countingGame) Title() string { return "counting" }

func (g *countingGame) Tick(core.InputFrame) *core.Frame {
	g.ticks++
	f := core.NewFrame(core.ScreenWidth, core.ScreenHeight)
	if g.ticks >= g.quitAfter {
		f.RequestQuit()
	}
	return f
}

func testOptions() registry.Options {
	cfg := core.DefaultConfig()
	cfg.TickRate = 200
	return registry.Options{Runtime: cfg}
}

func TestActionForRune(t *testing.T) {
	tests := []struct {
		r        rune
		expected core.Action
	}{
		{' ', core.ActionFlap},
		{'p', core.ActionPlay},
		{'P', core.ActionPlay},
		{'q', core.ActionQuit},
		{'Q', core.ActionQuit},
		{'z', core.ActionNone},
		{'\n', core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(string(tc.r), func(t *testing.T) {
			if got := actionForRune(tc.r); got != tc.expected {
				t.Errorf("actionForRune(%q) = %v, expected %v", tc.r, got, tc.expected)
			}
		})
	}
}

func TestDrawCopiesFrame(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	defer sim.Fini()
	sim.SetSize(core.ScreenWidth, core.ScreenHeight)

	d := NewWithScreen(sim, testOptions())

	f := core.NewFrame(core.ScreenWidth, core.ScreenHeight)
	f.Clear(core.ColorNavy)
	f.SetCell(0, 7, core.ColorYellow, core.ColorBlack, '@')
	f.Print(0, 1, "Score: 2")
	d.draw(f)

	r, _, style, _ := sim.GetContent(0, 7)
	if r != '@' {
		t.Errorf("cell (0, 7) = %q, expected '@'", r)
	}
	if fg, _, _ := style.Decompose(); fg != tcell.ColorYellow {
		t.Errorf("player foreground = %v, expected yellow", fg)
	}

	for i, want := range "Score: 2" {
		if r, _, _, _ := sim.GetContent(i, 1); r != want {
			t.Errorf("cell (%d, 1) = %q, expected %q", i, r, want)
		}
	}

	_, _, bgStyle, _ := sim.GetContent(40, 30)
	if _, bg, _ := bgStyle.Decompose(); bg != tcell.ColorNavy {
		t.Errorf("background = %v, expected navy", bg)
	}
}

func TestRunStopsWhenGameQuits(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	d := NewWithScreen(sim, testOptions())
	game := &countingGame{quitAfter: 3}

	done := make(chan error, 1)
	go func() { done <- d.Run(game) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() failed: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("driver did not stop after the game requested quit")
	}

	if game.ticks != 3 {
		t.Errorf("game ticked %d times, expected 3", game.ticks)
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	fg, bg, _ := styleFor(core.Color(200), core.ColorNavy).Decompose()
	if fg != tcell.ColorDefault || bg != tcell.ColorNavy {
		t.Errorf("styleFor() = %v on %v", fg, bg)
	}
}
