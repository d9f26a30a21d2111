package core

// Action is a semantic game action, abstracted from physical key presses.
// Drivers map their key events to actions; the game never sees raw keys.
type Action int

const (
	ActionNone Action = iota
	ActionFlap        // Space - flap upward while playing
	ActionPlay        // P - start a round from the menu or after death
	ActionQuit        // Q - leave the game from the menu or after death
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionPlay:
		return "Play"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the immutable input snapshot for one display frame.
// At most one action is delivered per frame; keys are not queued.
type InputFrame struct {
	Action      Action  // Key pressed since the previous frame, or ActionNone
	FrameTimeMs float64 // Milliseconds elapsed since the previous frame
}

// NewInputFrame creates an input frame with the given action and elapsed time.
func NewInputFrame(a Action, frameTimeMs float64) InputFrame {
	return InputFrame{Action: a, FrameTimeMs: frameTimeMs}
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && f.Action == a
}
