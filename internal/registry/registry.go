// Package registry provides a global registry of display/input drivers.
// Drivers register themselves in init() functions, allowing the command
// layer to pick one by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/glyphflap/internal/core"
)

// Game is what a driver runs: one call per display frame.
type Game interface {
	// Title returns a human-readable name for display.
	Title() string

	// Tick runs one display frame with the given input snapshot and returns
	// the draw commands issued plus the quit request.
	Tick(in core.InputFrame) *core.Frame
}

// Driver owns the terminal: it polls keys, measures frame time, calls
// Game.Tick once per frame and displays the result until the game quits.
type Driver interface {
	Run(g Game) error
}

// Options are passed to a driver factory.
type Options struct {
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// DriverInfo contains metadata about a registered driver.
type DriverInfo struct {
	Name        string
	Description string
}

// Factory creates a driver. It returns an error when the terminal cannot be opened.
type Factory func(opts Options) (Driver, error)

type entry struct {
	factory     Factory
	description string
}

var (
	drivers = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a driver factory to the registry.
// Typically called from a driver package's init() function.
// Panics if a driver with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := drivers[name]; exists {
		panic(fmt.Sprintf("registry: driver %q already registered", name))
	}
	drivers[name] = entry{factory: f, description: description}
}

// List returns information about all registered drivers, sorted by name.
func List() []DriverInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]DriverInfo, 0, len(drivers))
	for name, e := range drivers {
		result = append(result, DriverInfo{
			Name:        name,
			Description: e.description,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a driver by name.
// Returns an error if the name is not registered or the factory fails.
func Create(name string, opts Options) (Driver, error) {
	mu.RLock()
	e, ok := drivers[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown driver %q", name)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	d, err := e.factory(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: driver %q: %w", name, err)
	}
	return d, nil
}

// Exists checks if a driver with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := drivers[name]
	return ok
}
