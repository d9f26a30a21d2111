package config

import (
	"errors"
	"fmt"
)

// ValidationError describes one invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Field, e.Message)
}

// Validate checks the configuration for values the game cannot run with.
// All failures are reported together.
func (c GameConfig) Validate() error {
	var errs []error
	fail := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if c.Screen.Width <= 0 {
		fail("screen.width", "must be positive, got %d", c.Screen.Width)
	}
	if c.Screen.Height <= 0 {
		fail("screen.height", "must be positive, got %d", c.Screen.Height)
	}
	if c.Timing.FrameDurationMs <= 0 {
		fail("timing.frame_duration_ms", "must be positive, got %g", c.Timing.FrameDurationMs)
	}
	if c.Player.StartX < 0 {
		fail("player.start_x", "must not be negative, got %d", c.Player.StartX)
	} else if c.Screen.Width > 0 && c.Player.StartX >= c.Screen.Width {
		fail("player.start_x", "must be less than screen.width (%d), got %d", c.Screen.Width, c.Player.StartX)
	}
	if c.Player.StartY < 0 {
		fail("player.start_y", "must not be negative, got %d", c.Player.StartY)
	} else if c.Screen.Height > 0 && c.Player.StartY >= c.Screen.Height {
		fail("player.start_y", "must be less than screen.height (%d), got %d", c.Screen.Height, c.Player.StartY)
	}
	if c.Physics.Gravity <= 0 {
		fail("physics.gravity", "must be positive, got %g", c.Physics.Gravity)
	}
	if c.Physics.TerminalVelocity <= 0 {
		fail("physics.terminal_velocity", "must be positive, got %g", c.Physics.TerminalVelocity)
	}
	if c.Physics.FlapVelocity >= 0 {
		fail("physics.flap_velocity", "must be negative (upward), got %g", c.Physics.FlapVelocity)
	}
	if c.Obstacles.MinGapSize < 1 {
		fail("obstacles.min_gap_size", "must be at least 1, got %d", c.Obstacles.MinGapSize)
	}
	if c.Obstacles.BaseSize < c.Obstacles.MinGapSize {
		fail("obstacles.base_size", "must be at least min_gap_size (%d), got %d",
			c.Obstacles.MinGapSize, c.Obstacles.BaseSize)
	}
	if c.Obstacles.ShrinkPerPoint < 0 {
		fail("obstacles.shrink_per_point", "must not be negative, got %d", c.Obstacles.ShrinkPerPoint)
	}
	if c.Obstacles.GapMinY < 0 {
		fail("obstacles.gap_min_y", "must not be negative, got %d", c.Obstacles.GapMinY)
	}
	if c.Obstacles.GapMaxY <= c.Obstacles.GapMinY {
		fail("obstacles.gap_max_y", "must be greater than gap_min_y (%d), got %d",
			c.Obstacles.GapMinY, c.Obstacles.GapMaxY)
	}

	return errors.Join(errs...)
}
