package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

const buildArgCount = 1

// NewBuildCommand creates the build subcommand: replay operations from a
// file and print the resulting coalesced ranges.
func NewBuildCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <operations-file>",
		Short: "Replay add/remove operations from a YAML or JSON file",
		Args:  cobra.ExactArgs(buildArgCount),
		RunE: func(_ *cobra.Command, args []string) error {
			_, err := LoadConfig(*configPath)
			if err != nil {
				return err
			}

			return runBuild(args[0])
		},
	}

	return cmd
}

func runBuild(path string) error {
	ops, loadErr := LoadOperations(path)
	if loadErr != nil {
		return loadErr
	}

	set, applyErr := Apply(ops)
	if applyErr != nil {
		return applyErr
	}

	fmt.Println(RenderRanges(set.AsRanges()))

	return nil
}
