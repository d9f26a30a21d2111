package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/glyphflap/internal/core"
	"github.com/vovakirdan/glyphflap/internal/registry"
)

// Model is the Bubble Tea model that drives a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	tickRate int

	pending  core.Action // last key pressed since the previous tick
	lastTick time.Time
	frames   int
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts registry.Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = core.ScreenWidth, core.ScreenHeight
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:     DefaultKeyMap(),
		help:     h,
		logger:   logger,
		tickRate: cfg.TickRate,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the action for the next tick. Only the latest key counts.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.logger.Info("interrupted", "frames", m.frames)
		m.quitting = true
		return m, tea.Quit
	}

	if action := m.keys.Action(msg); action != core.ActionNone {
		m.pending = action
	}
	return m, nil
}

// handleTick runs one game frame with the pending key and the elapsed time.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsedMs float64
	if !m.lastTick.IsZero() {
		elapsedMs = float64(now.Sub(m.lastTick)) / float64(time.Millisecond)
	}
	m.lastTick = now

	frame := m.game.Tick(core.NewInputFrame(m.pending, elapsedMs))
	m.pending = core.ActionNone
	m.frames++

	frame.Replay(m.screen)

	if frame.Quit {
		m.logger.Info("game requested quit", "frames", m.frames)
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.tickRate)
}

// View renders the last frame and a help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}
