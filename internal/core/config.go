package core

// Playfield geometry in character cells.
const (
	ScreenWidth  = 80
	ScreenHeight = 50
)

// RuntimeConfig contains configuration passed to drivers at startup.
type RuntimeConfig struct {
	ScreenW  int   // Playfield width in characters
	ScreenH  int   // Playfield height in characters
	TickRate int   // Display frames per second (default 60)
	Seed     int64 // RNG seed for obstacle generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  ScreenWidth,
		ScreenH:  ScreenHeight,
		TickRate: 60,
		Seed:     0, // 0 means use current time in the command layer
	}
}
