package main

import (
	"github.com/rpgo/compound-calculator/internal/config"
	"github.com/rpgo/compound-calculator/internal/domain"
	"github.com/spf13/cobra"
)

func newScenariosCmd(opts *rootOptions) *cobra.Command {
	var configFn string

	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Project every scenario of a configuration file and compare them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(configFn)
			if err != nil {
				return err
			}
			comparison, err := opts.engine().RunScenarios(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return opts.write(&domain.Report{Title: "Scenario Comparison", Comparison: comparison})
		},
	}

	cmd.Flags().StringVarP(&configFn, "config", "c", "", "Scenario file (YAML, JSON or TOML)")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
