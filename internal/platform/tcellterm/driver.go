// Package tcellterm is a display/input driver built directly on tcell.
// An event goroutine feeds key presses into a channel; a ticker runs one
// game frame per tick and copies the frame onto the tcell screen.
package tcellterm

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/glyphflap/internal/core"
	"github.com/vovakirdan/glyphflap/internal/registry"
)

// DriverName is the registry name of the tcell driver.
const DriverName = "tcell"

// Driver runs a game on a tcell screen.
type Driver struct {
	screen tcell.Screen
	buf    *core.Screen
	opts   registry.Options
	logger *log.Logger
}

// New creates a driver on the process terminal.
func New(opts registry.Options) (*Driver, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcellterm: cannot open terminal: %w", err)
	}
	return NewWithScreen(screen, opts), nil
}

// NewWithScreen creates a driver on an existing, uninitialized screen.
func NewWithScreen(screen tcell.Screen, opts registry.Options) *Driver {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = core.ScreenWidth, core.ScreenHeight
	}
	opts.Runtime = cfg

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Driver{
		screen: screen,
		buf:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:   opts,
		logger: logger,
	}
}

// Run blocks until the game quits or Ctrl+C is pressed.
func (d *Driver) Run(g registry.Game) error {
	if err := d.screen.Init(); err != nil {
		return fmt.Errorf("tcellterm: init screen: %w", err)
	}
	defer d.screen.Fini()

	d.screen.HideCursor()
	d.logger.Info("starting", "driver", DriverName, "game", g.Title(), "fps", d.opts.Runtime.TickRate)

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 64)
	go d.pollEvents(events, done)

	ticker := time.NewTicker(time.Second / time.Duration(d.opts.Runtime.TickRate))
	defer ticker.Stop()

	pending := core.ActionNone
	var lastTick time.Time
	frames := 0

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					d.logger.Info("interrupted", "frames", frames)
					return nil
				}
				if a := ActionForKey(ev); a != core.ActionNone {
					pending = a
				}
			case *tcell.EventResize:
				d.screen.Sync()
			}

		case now := <-ticker.C:
			var elapsedMs float64
			if !lastTick.IsZero() {
				elapsedMs = float64(now.Sub(lastTick)) / float64(time.Millisecond)
			}
			lastTick = now

			frame := g.Tick(core.NewInputFrame(pending, elapsedMs))
			pending = core.ActionNone
			frames++

			d.draw(frame)
			if frame.Quit {
				d.logger.Info("game requested quit", "frames", frames)
				return nil
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done closes.
func (d *Driver) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// draw replays the frame into the cell buffer and copies the visible part
// to the terminal.
func (d *Driver) draw(frame *core.Frame) {
	frame.Replay(d.buf)

	tw, th := d.screen.Size()
	w, h := core.Min(tw, d.buf.Width()), core.Min(th, d.buf.Height())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := d.buf.GetCell(x, y)
			d.screen.SetContent(x, y, c.Rune, nil, styleFor(c.Fg, c.Bg))
		}
	}
	d.screen.Show()
}

func init() {
	registry.Register(DriverName, "tcell renderer", func(opts registry.Options) (registry.Driver, error) {
		return New(opts)
	})
}
