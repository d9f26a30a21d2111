package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glyphflap/internal/registry"
)

var driversCmd = &cobra.Command{
	Use:   "drivers",
	Short: "List all available display drivers",
	Long:  `Shows the display/input drivers that can run the game.`,
	Args:  cobra.NoArgs,
	Run:   runDrivers,
}

func runDrivers(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	drivers := registry.List()

	if len(drivers) == 0 {
		fmt.Fprintln(out, "No drivers available.")
		return
	}

	fmt.Fprintln(out, "Available drivers:")
	fmt.Fprintln(out)

	maxNameLen := 4 // "Name" header
	for _, d := range drivers {
		if len(d.Name) > maxNameLen {
			maxNameLen = len(d.Name)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, "----", "-----------")
	for _, d := range drivers {
		fmt.Fprintf(out, "  %-*s  %s\n", maxNameLen, d.Name, d.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'glyphflap --driver <name>' to use one.")
}
