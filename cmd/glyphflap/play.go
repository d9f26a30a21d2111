package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/glyphflap/internal/config"
	"github.com/vovakirdan/glyphflap/internal/core"
	"github.com/vovakirdan/glyphflap/internal/games/flappy"
	"github.com/vovakirdan/glyphflap/internal/registry"
)

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !registry.Exists(flagDriver) {
		fmt.Fprintf(os.Stderr, "Error: unknown driver %q\n", flagDriver)
		fmt.Fprintln(os.Stderr, "Run 'glyphflap drivers' to see available drivers.")
		os.Exit(1)
	}

	// The playfield has a fixed size; warn if the terminal cannot show all of it
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < cfg.Screen.Width || h < cfg.Screen.Height+1 {
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the playfield needs %dx%d\n",
				w, h, cfg.Screen.Width, cfg.Screen.Height+1)
		}
	}

	runtime := core.RuntimeConfig{
		ScreenW:  cfg.Screen.Width,
		ScreenH:  cfg.Screen.Height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}

	driver, err := registry.Create(flagDriver, registry.Options{Runtime: runtime, Logger: logger})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating driver: %v\n", err)
		os.Exit(1)
	}

	game := flappy.New(cfg, runtime.Seed, flappy.WithLogger(logger))
	logger.Debug("config loaded", "base_size", cfg.Obstacles.BaseSize, "frame_ms", cfg.Timing.FrameDurationMs)

	if err := driver.Run(game); err != nil {
		logger.Error("driver failed", "error", err)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads the config file and applies the difficulty preset.
func loadConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return cfg, err
	}
	return cfg, nil
}
