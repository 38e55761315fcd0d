package main

import (
	"fmt"

	"github.com/rpgo/compound-calculator/internal/config"
	"github.com/spf13/cobra"
)

const defaultExampleFile = "compound_scenarios.yaml"

func newExampleCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Write an example scenario file",
		Long: "Write an example scenario file with one scenario per calculation type.\n" +
			"The format follows the --output extension: .yaml, .json or .toml.",
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path := opts.output
			if path == "" {
				path = defaultExampleFile
			}
			example := config.NewInputParser().CreateExampleConfiguration()
			if err := config.SaveConfiguration(example, path); err != nil {
				return err
			}
			fmt.Fprintf(opts.stdout, "Example configuration written to %s\n", path)
			return nil
		},
	}
}
