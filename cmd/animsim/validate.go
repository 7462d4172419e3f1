package main

import (
	"errors"
	"fmt"

	"github.com/automoto/overworld/assets/characters"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a character catalog for content problems",
	Long: `Decode the catalog and list every problem that would make an
animation impossible to address: empty clips, non-positive frame times or
clips wider than the atlas. Exits non-zero when any problem is found.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

// errInvalidCatalog is returned after the problems have been printed.
var errInvalidCatalog = errors.New("catalog is invalid")

func runValidate(cmd *cobra.Command, args []string) error {
	list, err := characters.Load(flagCatalog)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := list.Validate(); err != nil {
		for _, problem := range unwrapJoined(err) {
			fmt.Fprintf(out, "  - %v\n", problem)
		}
		return errInvalidCatalog
	}

	for _, c := range list.Characters {
		fmt.Fprintf(out, "%-12s  %2d columns  %2d rows  kinds %v\n", c.Name, c.AtlasColumns, c.AtlasRows(), c.Kinds())
	}
	fmt.Fprintf(out, "%d characters ok\n", len(list.Characters))
	return nil
}

func unwrapJoined(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
