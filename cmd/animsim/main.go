// animsim runs the character animation engine without a window.
//
// Usage:
//
//	animsim simulate --script walk.yaml [--catalog characters.yaml]
//	animsim validate [--catalog characters.yaml]
//
// Without --catalog the catalog embedded in the game is used.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagCatalog string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "animsim",
	Short: "Headless tools for the character animation engine",
	Long: `animsim plays scripted motion through the animation engine and
checks character catalogs for content problems.

Examples:
  animsim validate --catalog assets/characters/characters.yaml
  animsim simulate --script walk.yaml`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "animsim",
		})
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
		log.SetDefault(logger)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Character catalog YAML (default: embedded catalog)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(validateCmd)
}
