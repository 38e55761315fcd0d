package main

import (
	"fmt"
	"strings"

	"github.com/rpgo/compound-calculator/internal/calculation"
	"github.com/rpgo/compound-calculator/internal/domain"
	"github.com/spf13/cobra"
)

func newSensitivityCmd(opts *rootOptions) *cobra.Command {
	var (
		pf    parameterFlags
		sweep domain.SensitivityParameter
	)

	cmd := &cobra.Command{
		Use:   "sensitivity",
		Short: "Sweep one parameter across a range and compare the outcomes",
		Example: `  compound sensitivity --param interest_rate --min 4 --max 12 --steps 5
  compound sensitivity --param monthly_contribution --min 250 --max 2000 --steps 8 --format csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, params, err := pf.resolve(cmd.Flags())
			if err != nil {
				return err
			}

			engine := opts.engine()
			analysis, err := engine.Sweep(params, sweep)
			if err != nil {
				return err
			}
			report := engine.BuildReport(fmt.Sprintf("%s: %s sensitivity", name, sweep.Name), params)
			report.Sweep = analysis
			return opts.write(&report)
		},
	}

	pf.register(cmd.Flags())
	cmd.Flags().StringVar(&sweep.Name, "param", "interest_rate",
		fmt.Sprintf("Parameter to vary (%s)", strings.Join(calculation.SweepParameterNames(), ", ")))
	cmd.Flags().Float64Var(&sweep.Min, "min", 4, "First value of the sweep")
	cmd.Flags().Float64Var(&sweep.Max, "max", 12, "Last value of the sweep")
	cmd.Flags().IntVar(&sweep.Steps, "steps", 5, "Number of values, including both ends")
	return cmd
}
