package main

import (
	"fmt"

	"github.com/rpgo/compound-calculator/internal/config"
	"github.com/rpgo/compound-calculator/internal/domain"
	"github.com/spf13/pflag"
)

// parameterFlags binds one flag per InputParameters field. Only flags the
// user sets are applied, so they can override a scenario loaded from --config.
type parameterFlags struct {
	values   domain.InputParameters
	enums    map[string]*string
	configFn string
	scenario string
}

func (pf *parameterFlags) register(fs *pflag.FlagSet) {
	d := domain.DefaultInputParameters()
	pf.values = d
	pf.enums = map[string]*string{
		"contribution-frequency": new(string),
		"interest-type":          new(string),
		"calculation":            new(string),
		"period-type":            new(string),
		"income-frequency":       new(string),
	}

	fs.Float64Var(&pf.values.InitialCapital, "initial-capital", d.InitialCapital, "Initial capital")
	fs.Float64Var(&pf.values.MonthlyContribution, "contribution", d.MonthlyContribution, "Contribution amount per period")
	fs.StringVar(pf.enums["contribution-frequency"], "contribution-frequency", string(d.ContributionFrequency), "Contribution frequency (monthly|annual)")
	fs.Float64Var(&pf.values.InterestRate, "rate", d.InterestRate, "Interest rate in percent")
	fs.StringVar(pf.enums["interest-type"], "interest-type", string(d.InterestType), "Period the rate applies to (annual|monthly)")
	fs.StringVar(pf.enums["calculation"], "calculation", string(d.CalculationType), "Horizon mode (fixedPeriod|ageRange|targetWealth)")
	fs.Float64Var(&pf.values.InvestmentPeriod, "period", d.InvestmentPeriod, "Investment period for fixedPeriod")
	fs.StringVar(pf.enums["period-type"], "period-type", string(d.PeriodType), "Unit of --period (years|months)")
	fs.Float64Var(&pf.values.CurrentAge, "current-age", d.CurrentAge, "Current age for ageRange")
	fs.Float64Var(&pf.values.TargetAge, "target-age", d.TargetAge, "Target age for ageRange")
	fs.Float64Var(&pf.values.TargetWealth, "target-wealth", d.TargetWealth, "Target wealth")
	fs.Float64Var(&pf.values.TargetPassiveIncome, "passive-income", d.TargetPassiveIncome, "Target passive income")
	fs.StringVar(pf.enums["income-frequency"], "income-frequency", string(d.PassiveIncomeFrequency), "Passive income frequency (monthly|annual)")
	fs.Float64Var(&pf.values.WithdrawalRate, "withdrawal-rate", d.WithdrawalRate, "Safe withdrawal rate in percent")
	fs.Float64Var(&pf.values.InflationRate, "inflation", d.InflationRate, "Annual inflation in percent")

	fs.StringVarP(&pf.configFn, "config", "c", "", "Load parameters from a scenario file (YAML, JSON or TOML)")
	fs.StringVar(&pf.scenario, "scenario", "", "Scenario name within --config (default: the first)")
}

func (pf *parameterFlags) apply(fs *pflag.FlagSet, p *domain.InputParameters) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "initial-capital":
			p.InitialCapital = pf.values.InitialCapital
		case "contribution":
			p.MonthlyContribution = pf.values.MonthlyContribution
		case "contribution-frequency":
			p.ContributionFrequency = domain.ContributionFrequency(*pf.enums[f.Name])
		case "rate":
			p.InterestRate = pf.values.InterestRate
		case "interest-type":
			p.InterestType = domain.InterestType(*pf.enums[f.Name])
		case "calculation":
			p.CalculationType = domain.CalculationType(*pf.enums[f.Name])
		case "period":
			p.InvestmentPeriod = pf.values.InvestmentPeriod
		case "period-type":
			p.PeriodType = domain.PeriodType(*pf.enums[f.Name])
		case "current-age":
			p.CurrentAge = pf.values.CurrentAge
		case "target-age":
			p.TargetAge = pf.values.TargetAge
		case "target-wealth":
			p.TargetWealth = pf.values.TargetWealth
		case "passive-income":
			p.TargetPassiveIncome = pf.values.TargetPassiveIncome
		case "income-frequency":
			p.PassiveIncomeFrequency = domain.IncomeFrequency(*pf.enums[f.Name])
		case "withdrawal-rate":
			p.WithdrawalRate = pf.values.WithdrawalRate
		case "inflation":
			p.InflationRate = pf.values.InflationRate
		}
	})
}

// resolve returns the scenario name and validated parameters: the selected
// scenario of --config (or the defaults) with explicitly set flags on top.
func (pf *parameterFlags) resolve(fs *pflag.FlagSet) (string, domain.InputParameters, error) {
	name := "Projection"
	params := domain.DefaultInputParameters()

	if pf.configFn != "" {
		cfg, err := config.NewInputParser().LoadFromFile(pf.configFn)
		if err != nil {
			return "", params, err
		}
		scenario, err := selectScenario(cfg, pf.scenario)
		if err != nil {
			return "", params, err
		}
		params = scenario.Parameters
		if scenario.Name != "" {
			name = scenario.Name
		}
	}

	pf.apply(fs, &params)
	if err := config.ValidateParameters(params); err != nil {
		return "", params, err
	}
	return name, params, nil
}

func selectScenario(cfg *domain.Configuration, name string) (domain.Scenario, error) {
	if name == "" {
		return cfg.Scenarios[0], nil
	}
	for _, s := range cfg.Scenarios {
		if s.Name == name {
			return s, nil
		}
	}
	return domain.Scenario{}, fmt.Errorf("scenario %q not found", name)
}
