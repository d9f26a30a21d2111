package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/glyphflap/internal/core"
	"github.com/vovakirdan/glyphflap/internal/registry"
)

// recordingGame records every input and quits after quitAfter ticks (0 = never).
type recordingGame struct {
	inputs    []core.InputFrame
	quitAfter int
}

func (g *recordingGame) Title() string { return "recording" }

func (g *recordingGame) Tick(in core.InputFrame) *core.Frame {
	g.inputs = append(g.inputs, in)
	f := core.NewFrame(core.ScreenWidth, core.ScreenHeight)
	f.Clear(core.ColorNavy)
	f.SetCell(0, 3, core.ColorYellow, core.ColorBlack, '@')
	f.Print(0, 0, "frames")
	if g.quitAfter > 0 && len(g.inputs) >= g.quitAfter {
		f.RequestQuit()
	}
	return f
}

func testOptions() registry.Options {
	return registry.Options{Runtime: core.DefaultConfig()}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelDeliversKeyAndFrameTime(t *testing.T) {
	game := &recordingGame{}
	var m tea.Model = NewModel(game, testOptions())

	t0 := time.Unix(1000, 0)
	m, _ = m.Update(runeKey('x'))
	m, _ = m.Update(runeKey('p'))
	m, cmd := m.Update(TickMsg(t0))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	m, _ = m.Update(TickMsg(t0.Add(20 * time.Millisecond)))

	if len(game.inputs) != 2 {
		t.Fatalf("game ticked %d times, expected 2", len(game.inputs))
	}
	if game.inputs[0].Action != core.ActionPlay || game.inputs[0].FrameTimeMs != 0 {
		t.Errorf("first input = %+v, expected Play with 0ms", game.inputs[0])
	}
	if game.inputs[1].Action != core.ActionNone {
		t.Errorf("second input = %+v, the key must be consumed by one tick", game.inputs[1])
	}
	if game.inputs[1].FrameTimeMs != 20 {
		t.Errorf("second frame time = %f, expected 20", game.inputs[1].FrameTimeMs)
	}
}

func TestModelLatestKeyWins(t *testing.T) {
	game := &recordingGame{}
	var m tea.Model = NewModel(game, testOptions())

	m, _ = m.Update(runeKey('p'))
	m, _ = m.Update(runeKey('q'))
	m.Update(TickMsg(time.Unix(0, 0)))

	if game.inputs[0].Action != core.ActionQuit {
		t.Errorf("input = %v, expected the latest key", game.inputs[0].Action)
	}
}

func TestModelQuitsWhenGameRequests(t *testing.T) {
	game := &recordingGame{quitAfter: 1}
	var m tea.Model = NewModel(game, testOptions())

	m, cmd := m.Update(TickMsg(time.Unix(0, 0)))
	if !isQuit(cmd) {
		t.Fatal("model should quit when the frame requests it")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelCtrlCQuits(t *testing.T) {
	game := &recordingGame{}
	var m tea.Model = NewModel(game, testOptions())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Error("ctrl+c should quit")
	}
	if len(game.inputs) != 0 {
		t.Error("ctrl+c must not reach the game")
	}
}

func TestModelView(t *testing.T) {
	game := &recordingGame{}
	var m tea.Model = NewModel(game, testOptions())
	m, _ = m.Update(TickMsg(time.Unix(0, 0)))

	view := m.View()
	if !strings.Contains(view, "frames") || !strings.Contains(view, "@") {
		t.Errorf("view should contain the replayed frame")
	}
	if !strings.Contains(view, "flap") {
		t.Errorf("view should contain the help line")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 2)
	s.Clear(core.ColorNavy)
	s.Print(0, 0, "Score: 12")
	s.SetCell(5, 1, core.ColorRed, core.ColorBlack, '|')

	out := RenderScreen(s)
	if !strings.Contains(out, "Score: 12") {
		t.Errorf("rendered output lost the text: %q", out)
	}
	if !strings.Contains(out, "|") {
		t.Errorf("rendered output lost the wall glyph: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
}

func TestDriverRunHeadless(t *testing.T) {
	game := &recordingGame{quitAfter: 3}
	opts := testOptions()
	opts.Runtime.TickRate = 200

	var out bytes.Buffer
	d := New(opts, tea.WithInput(nil), tea.WithOutput(&out))

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

	if len(game.inputs) != 3 {
		t.Errorf("game ticked %d times, expected 3", len(game.inputs))
	}
}
