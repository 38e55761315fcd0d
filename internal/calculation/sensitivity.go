package calculation

import (
	"fmt"
	"sort"

	"github.com/rpgo/compound-calculator/internal/domain"
)

// MaxSweepSteps bounds how many projections a single Sweep may run.
const MaxSweepSteps = 1000

// sweepSetters maps a sweepable parameter name to the field it varies.
var sweepSetters = map[string]func(*domain.InputParameters, float64){
	"initial_capital":      func(p *domain.InputParameters, v float64) { p.InitialCapital = v },
	"monthly_contribution": func(p *domain.InputParameters, v float64) { p.MonthlyContribution = v },
	"interest_rate":        func(p *domain.InputParameters, v float64) { p.InterestRate = v },
	"inflation_rate":       func(p *domain.InputParameters, v float64) { p.InflationRate = v },
	"investment_period":    func(p *domain.InputParameters, v float64) { p.InvestmentPeriod = v },
	"withdrawal_rate":      func(p *domain.InputParameters, v float64) { p.WithdrawalRate = v },
	"target_wealth":        func(p *domain.InputParameters, v float64) { p.TargetWealth = v },
}

// SweepParameterNames lists the parameters Sweep accepts, sorted.
func SweepParameterNames() []string {
	names := make([]string, 0, len(sweepSetters))
	for n := range sweepSetters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Sweep re-projects base across evenly spaced values of one parameter.
func (pe *ProjectionEngine) Sweep(base domain.InputParameters, param domain.SensitivityParameter) (*domain.SensitivityAnalysis, error) {
	set, ok := sweepSetters[param.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParameter, param.Name)
	}
	if param.Steps < 2 {
		return nil, fmt.Errorf("%w: steps must be at least 2, got %d", ErrInvalidSweep, param.Steps)
	}
	if param.Steps > MaxSweepSteps {
		return nil, fmt.Errorf("%w: steps must be at most %d, got %d", ErrInvalidSweep, MaxSweepSteps, param.Steps)
	}
	if param.Max < param.Min {
		return nil, fmt.Errorf("%w: max %.4f is below min %.4f", ErrInvalidSweep, param.Max, param.Min)
	}

	analysis := &domain.SensitivityAnalysis{
		Parameter: param,
		Points:    make([]domain.SensitivityPoint, 0, param.Steps),
	}
	stepSize := (param.Max - param.Min) / float64(param.Steps-1)
	for i := 0; i < param.Steps; i++ {
		value := param.Min + stepSize*float64(i)
		if i == param.Steps-1 {
			value = param.Max
		}
		variant := base
		set(&variant, value)
		result := pe.Project(variant)
		analysis.Points = append(analysis.Points, domain.SensitivityPoint{
			Value:               value,
			FinalValue:          result.FinalValue,
			FinalRealValue:      result.FinalRealValue,
			TotalGains:          result.TotalGains,
			TimeToTargetWealth:  result.TimeToTargetWealth,
			TimeToPassiveIncome: result.TimeToPassiveIncome,
		})
	}

	lo, hi := analysis.Points[0].FinalValue, analysis.Points[0].FinalValue
	for _, p := range analysis.Points[1:] {
		lo = min(lo, p.FinalValue)
		hi = max(hi, p.FinalValue)
	}
	analysis.FinalValueSpread = hi - lo

	first, last := analysis.Points[0], analysis.Points[len(analysis.Points)-1]
	if first.FinalValue != 0 && param.Min != 0 {
		valueChange := (last.FinalValue - first.FinalValue) / first.FinalValue
		paramChange := (param.Max - param.Min) / param.Min
		if paramChange != 0 {
			analysis.Elasticity = finiteOrZero(valueChange / paramChange)
		}
	}
	return analysis, nil
}

// WhatIfs evaluates the standard improvement levers against base: larger
// contributions, a better return and redirecting part of expenses into the plan.
func (pe *ProjectionEngine) WhatIfs(base domain.InputParameters) *domain.WhatIfReport {
	baseResult := pe.Project(base)
	baseline := newWhatIf("baseline", "Current plan", base, baseResult, baseResult)

	variants := []struct {
		name, description string
		adjust            func(*domain.InputParameters)
	}{
		{"increase_contributions", "Contributions 50% higher", func(p *domain.InputParameters) { p.MonthlyContribution *= 1.5 }},
		{"higher_return", "Return 2 percentage points higher", func(p *domain.InputParameters) { p.InterestRate += 2 }},
		{"redirect_expenses", "30% of the contribution again, redirected from expenses", func(p *domain.InputParameters) { p.MonthlyContribution *= 1.3 }},
	}

	report := &domain.WhatIfReport{Baseline: baseline, HorizonMonths: max(baseResult.SimulatedMonths, 0)}
	for _, v := range variants {
		params := base
		v.adjust(&params)
		report.Variants = append(report.Variants, newWhatIf(v.name, v.description, params, pe.Project(params), baseResult))
	}

	monthlyRate := MonthlyRate(base.InterestRate, base.InterestType)
	report.RequiredMonthlyContribution = RequiredMonthlyContribution(base.TargetWealth, base.InitialCapital, monthlyRate, report.HorizonMonths)
	return report
}

func newWhatIf(name, description string, params domain.InputParameters, result, baseline domain.ProjectionResult) domain.WhatIf {
	w := domain.WhatIf{
		Name:                name,
		Description:         description,
		Parameters:          params,
		FinalValue:          result.FinalValue,
		FinalValueDelta:     result.FinalValue - baseline.FinalValue,
		TimeToTargetWealth:  result.TimeToTargetWealth,
		TimeToPassiveIncome: result.TimeToPassiveIncome,
	}
	if result.TimeToTargetWealth > 0 && baseline.TimeToTargetWealth > 0 {
		w.TimeSaved = baseline.TimeToTargetWealth - result.TimeToTargetWealth
	}
	return w
}
