package core

// DrawOp identifies the kind of a recorded draw command.
type DrawOp int

const (
	OpClear DrawOp = iota
	OpSetCell
	OpPrint
	OpPrintCentered
)

// DrawCmd is one recorded call on a Surface.
type DrawCmd struct {
	Op    DrawOp
	X, Y  int
	Fg    Color
	Bg    Color
	Glyph rune
	Text  string
}

// Frame is the output of one game tick: the draw calls issued, in order,
// and whether the game asked the driver to stop.
// Frame implements Surface so the game can draw into it directly.
type Frame struct {
	Cmds []DrawCmd
	Quit bool

	width  int
	height int
}

// NewFrame creates an empty frame for a playfield of the given size.
func NewFrame(width, height int) *Frame {
	return &Frame{
		Cmds:   make([]DrawCmd, 0, 64),
		width:  width,
		height: height,
	}
}

// Width returns the playfield width the frame was recorded for.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the playfield height the frame was recorded for.
func (f *Frame) Height() int {
	return f.height
}

// Clear records a clear-screen command.
func (f *Frame) Clear(bg Color) {
	f.Cmds = append(f.Cmds, DrawCmd{Op: OpClear, Bg: bg})
}

// SetCell records a single-cell draw.
func (f *Frame) SetCell(x, y int, fg, bg Color, glyph rune) {
	f.Cmds = append(f.Cmds, DrawCmd{Op: OpSetCell, X: x, Y: y, Fg: fg, Bg: bg, Glyph: glyph})
}

// Print records a text draw at (x, y).
func (f *Frame) Print(x, y int, text string) {
	f.Cmds = append(f.Cmds, DrawCmd{Op: OpPrint, X: x, Y: y, Text: text})
}

// PrintCentered records a horizontally centered text draw.
func (f *Frame) PrintCentered(y int, text string) {
	f.Cmds = append(f.Cmds, DrawCmd{Op: OpPrintCentered, Y: y, Text: text})
}

// RequestQuit marks the frame as asking the driver to stop.
func (f *Frame) RequestQuit() {
	f.Quit = true
}

// Replay issues every recorded command on dst, in order.
func (f *Frame) Replay(dst Surface) {
	for _, c := range f.Cmds {
		switch c.Op {
		case OpClear:
			dst.Clear(c.Bg)
		case OpSetCell:
			dst.SetCell(c.X, c.Y, c.Fg, c.Bg, c.Glyph)
		case OpPrint:
			dst.Print(c.X, c.Y, c.Text)
		case OpPrintCentered:
			dst.PrintCentered(c.Y, c.Text)
		}
	}
}

// Texts returns the text of every print command, in order.
// Useful for inspecting HUD and menu output without a screen.
func (f *Frame) Texts() []string {
	var out []string
	for _, c := range f.Cmds {
		if c.Op == OpPrint || c.Op == OpPrintCentered {
			out = append(out, c.Text)
		}
	}
	return out
}
