// glyphflap is a side-scrolling terminal arcade game: flap a falling glyph
// through gaps in an endless row of walls.
//
// Usage:
//
//	glyphflap                - Play
//	glyphflap config         - Print the effective configuration as YAML
//	glyphflap drivers        - List display drivers
//
// Global flags:
//
//	--fps <rate>          - Display refresh rate (default: 60)
//	--seed <value>        - RNG seed for reproducible obstacles
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - easy, normal or hard
//	--driver <name>       - Display driver (default: tea)
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glyphflap/internal/config"

	// Import drivers to register them
	_ "github.com/vovakirdan/glyphflap/internal/platform/tcellterm"
	_ "github.com/vovakirdan/glyphflap/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagDriver     string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "glyphflap",
	Short: "Glyph Flap - flap through the walls in your terminal",
	Long: `Glyph Flap is a side-scrolling arcade game for the terminal.
Your glyph falls under gravity; flap to climb and slip through the gap in
each wall. Every wall cleared scores a point and the next gap is smaller.

Controls:
  P        - Play (menu and death screen)
  Space    - Flap
  Q        - Quit (menu and death screen)
  Ctrl+C   - Exit immediately

Examples:
  glyphflap
  glyphflap --difficulty easy
  glyphflap --driver tcell --fps 30
  glyphflap --seed 42 --log-file flap.log --log-level debug
  glyphflap config > configs/glyphflap.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Display refresh rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: "+config.PresetNames())
	rootCmd.PersistentFlags().StringVar(&flagDriver, "driver", "tea", "Display driver (see 'glyphflap drivers')")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(driversCmd)
}
