package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rpgo/compound-calculator/internal/config"
	"github.com/rpgo/compound-calculator/internal/domain"
	"github.com/rpgo/compound-calculator/pkg/decimal"
	"github.com/spf13/cobra"
)

// formValues holds the raw answers of the interactive form.
type formValues struct {
	initialCapital        string
	contribution          string
	contributionFrequency string
	rate                  string
	interestType          string
	calculationType       string
	horizon               string
	currentAge            string
	targetAge             string
	targetWealth          string
	passiveIncome         string
	withdrawalRate        string
	inflation             string
	whatIfs               bool
}

func newFormValues(p domain.InputParameters) *formValues {
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return &formValues{
		initialCapital:        num(p.InitialCapital),
		contribution:          num(p.MonthlyContribution),
		contributionFrequency: string(p.ContributionFrequency),
		rate:                  num(p.InterestRate),
		interestType:          string(p.InterestType),
		calculationType:       string(p.CalculationType),
		horizon:               num(p.InvestmentPeriod),
		currentAge:            num(p.CurrentAge),
		targetAge:             num(p.TargetAge),
		targetWealth:          num(p.TargetWealth),
		passiveIncome:         num(p.TargetPassiveIncome),
		withdrawalRate:        num(p.WithdrawalRate),
		inflation:             num(p.InflationRate),
	}
}

func validateNumber(s string) error {
	if _, err := parseNumber(s); err != nil {
		return errors.New("enter a number, e.g. 1500 or 1500.50")
	}
	return nil
}

// parseNumber accepts "1500", "1,500.50" and "1500,50".
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", "")
	} else {
		s = strings.ReplaceAll(s, ",", ".")
	}
	m, err := decimal.NewMoneyFromString(s)
	if err != nil {
		return 0, err
	}
	return m.InexactFloat64(), nil
}

// parameters converts the answers; horizon is read in years for fixedPeriod.
func (v *formValues) parameters() (domain.InputParameters, error) {
	p := domain.DefaultInputParameters()
	p.ContributionFrequency = domain.ContributionFrequency(v.contributionFrequency)
	p.InterestType = domain.InterestType(v.interestType)
	p.CalculationType = domain.CalculationType(v.calculationType)
	p.PeriodType = domain.PeriodYears

	fields := []struct {
		name   string
		raw    string
		target *float64
	}{
		{"initial capital", v.initialCapital, &p.InitialCapital},
		{"contribution", v.contribution, &p.MonthlyContribution},
		{"interest rate", v.rate, &p.InterestRate},
		{"investment period", v.horizon, &p.InvestmentPeriod},
		{"current age", v.currentAge, &p.CurrentAge},
		{"target age", v.targetAge, &p.TargetAge},
		{"target wealth", v.targetWealth, &p.TargetWealth},
		{"passive income", v.passiveIncome, &p.TargetPassiveIncome},
		{"withdrawal rate", v.withdrawalRate, &p.WithdrawalRate},
		{"inflation", v.inflation, &p.InflationRate},
	}
	for _, f := range fields {
		n, err := parseNumber(f.raw)
		if err != nil {
			return p, fmt.Errorf("%s: %q is not a number", f.name, f.raw)
		}
		*f.target = n
	}
	return p, config.ValidateParameters(p)
}

func (v *formValues) form() *huh.Form {
	numberInput := func(title string, value *string) *huh.Input {
		return huh.NewInput().Title(title).Value(value).Validate(validateNumber)
	}

	return huh.NewForm(
		huh.NewGroup(
			numberInput("Initial capital", &v.initialCapital),
			numberInput("Contribution", &v.contribution),
			huh.NewSelect[string]().
				Title("Contribution frequency").
				Options(huh.NewOptions(string(domain.ContributionMonthly), string(domain.ContributionAnnual))...).
				Value(&v.contributionFrequency),
			numberInput("Interest rate (%)", &v.rate),
			huh.NewSelect[string]().
				Title("The rate applies per").
				Options(
					huh.NewOption("year", string(domain.InterestAnnual)),
					huh.NewOption("month", string(domain.InterestMonthly)),
				).
				Value(&v.interestType),
		).Title("Contributions and return"),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Project until").
				Options(
					huh.NewOption("a fixed number of years", string(domain.CalculationFixedPeriod)),
					huh.NewOption("a target age", string(domain.CalculationAgeRange)),
					huh.NewOption("the target wealth is reached", string(domain.CalculationTargetWealth)),
				).
				Value(&v.calculationType),
			numberInput("Years (fixed period)", &v.horizon),
			numberInput("Current age", &v.currentAge),
			numberInput("Target age", &v.targetAge),
			numberInput("Target wealth", &v.targetWealth),
		).Title("Horizon"),
		huh.NewGroup(
			numberInput("Passive income goal per month", &v.passiveIncome),
			numberInput("Withdrawal rate (%)", &v.withdrawalRate),
			numberInput("Inflation (%)", &v.inflation),
			huh.NewConfirm().Title("Include what-if variants?").Value(&v.whatIfs),
		).Title("Goals"),
	)
}

func newInteractiveCmd(opts *rootOptions) *cobra.Command {
	var accessible bool

	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Answer a short form and get a projection",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			values := newFormValues(domain.DefaultInputParameters())
			if err := values.form().WithAccessible(accessible).Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				return fmt.Errorf("interactive form: %w", err)
			}

			params, err := values.parameters()
			if err != nil {
				return err
			}
			engine := opts.engine()
			report := engine.BuildReport("Interactive Projection", params)
			if values.whatIfs {
				report.WhatIfs = engine.WhatIfs(params)
			}
			return opts.write(&report)
		},
	}

	cmd.Flags().BoolVar(&accessible, "accessible", false, "Plain prompts for screen readers")
	return cmd
}
