package main

import (
	"github.com/spf13/cobra"
)

func newWhatIfCmd(opts *rootOptions) *cobra.Command {
	var pf parameterFlags

	cmd := &cobra.Command{
		Use:   "what-if",
		Short: "Compare the plan against higher contributions and returns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, params, err := pf.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			engine := opts.engine()
			report := engine.BuildReport(name, params)
			report.WhatIfs = engine.WhatIfs(params)
			return opts.write(&report)
		},
	}

	pf.register(cmd.Flags())
	return cmd
}
