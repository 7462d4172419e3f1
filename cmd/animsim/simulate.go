package main

import (
	"fmt"
	"io"
	"os"

	"github.com/automoto/overworld/assets/characters"
	"github.com/automoto/overworld/sim"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var flagScript string

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Print the frame timeline of a motion script",
	Long: `Run a motion script against one catalog character and print the
atlas index chosen on every tick.

A script looks like:

  character: knight
  tps: 10
  steps:
    - ticks: 5
      moving: true
      direction: [0, -1]`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagScript, "script", "", "Motion script YAML")
	_ = simulateCmd.MarkFlagRequired("script")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(flagScript)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	script, err := sim.ParseScript(data)
	if err != nil {
		return err
	}
	list, err := characters.Load(flagCatalog)
	if err != nil {
		return err
	}
	if err := list.Validate(); err != nil {
		log.Warn("catalog has problems", "err", err)
	}

	frames, err := sim.Run(script, list)
	if err != nil {
		return err
	}
	log.Debug("simulation finished", "character", script.Character, "ticks", len(frames))
	printTimeline(cmd.OutOrStdout(), frames)
	return nil
}

func printTimeline(w io.Writer, frames []sim.Frame) {
	fmt.Fprintf(w, "%-6s  %-6s  %-6s  %-6s  %s\n", "tick", "kind", "facing", "index", "clip")
	for _, f := range frames {
		clip := "-"
		if f.Resolved {
			clip = f.Clip.String()
		}
		fmt.Fprintf(w, "%-6d  %-6s  %-6s  %-6d  %s\n", f.Tick, f.Kind, f.Facing, f.Index, clip)
	}
}
