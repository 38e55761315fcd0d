package main

import (
	"github.com/spf13/cobra"
)

func newProjectCmd(opts *rootOptions) *cobra.Command {
	var (
		pf      parameterFlags
		title   string
		whatIfs bool
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project a single parameter set month by month",
		Example: `  compound project --initial-capital 10000 --contribution 500 --rate 12 --period 10
  compound project --calculation targetWealth --target-wealth 500000 --format html -o plan.html
  compound project --config scenarios.yaml --scenario "Aggressive Saver" --rate 9`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, params, err := pf.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			if title != "" {
				name = title
			}

			engine := opts.engine()
			report := engine.BuildReport(name, params)
			if whatIfs {
				report.WhatIfs = engine.WhatIfs(params)
			}
			return opts.write(&report)
		},
	}

	pf.register(cmd.Flags())
	cmd.Flags().StringVar(&title, "title", "", "Report title")
	cmd.Flags().BoolVar(&whatIfs, "what-if", false, "Include the what-if variants")
	return cmd
}
