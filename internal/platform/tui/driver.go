package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/glyphflap/internal/registry"
)

// DriverName is the registry name of the Bubble Tea driver.
const DriverName = "tea"

// Driver runs a game inside a Bubble Tea program on the alternate screen.
type Driver struct {
	opts        registry.Options
	programOpts []tea.ProgramOption
}

// New creates a Bubble Tea driver.
func New(opts registry.Options, programOpts ...tea.ProgramOption) *Driver {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if len(programOpts) == 0 {
		programOpts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &Driver{opts: opts, programOpts: programOpts}
}

// Run blocks until the game quits or the program is interrupted.
func (d *Driver) Run(g registry.Game) error {
	d.opts.Logger.Info("starting", "driver", DriverName, "game", g.Title(), "fps", d.opts.Runtime.TickRate)

	p := tea.NewProgram(NewModel(g, d.opts), d.programOpts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	d.opts.Logger.Info("stopped", "driver", DriverName)
	return nil
}

func init() {
	registry.Register(DriverName, "Bubble Tea renderer with lipgloss colors", func(opts registry.Options) (registry.Driver, error) {
		return New(opts), nil
	})
}
