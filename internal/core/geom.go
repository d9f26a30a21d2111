// Package core provides the shared types between the game and its drivers:
// the cell screen, the per-tick input snapshot and the recorded draw list.
// It has no external dependencies so game logic stays pure and testable.
package core

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
