package output

import (
	"fmt"

	"github.com/rpgo/compound-calculator/internal/domain"
	"github.com/rpgo/compound-calculator/pkg/timeutil"
)

// row is a label/value pair shared by the console, HTML and PDF renderers.
type row struct {
	Label string
	Value string
}

func parameterRows(loc Locale, p domain.InputParameters) []row {
	contribution := loc.Money(p.MonthlyContribution) + " per month"
	if p.ContributionFrequency == domain.ContributionAnnual {
		contribution = loc.Money(p.MonthlyContribution) + " per year"
	}
	rate := loc.Percent(p.InterestRate) + " per year"
	if p.InterestType == domain.InterestMonthly {
		rate = loc.Percent(p.InterestRate) + " per month"
	}
	income := loc.Money(p.TargetPassiveIncome) + " per month"
	if p.PassiveIncomeFrequency == domain.IncomeAnnual {
		income = loc.Money(p.TargetPassiveIncome) + " per year"
	}
	return []row{
		{"Initial capital", loc.Money(p.InitialCapital)},
		{"Contribution", contribution},
		{"Interest rate", rate},
		{"Horizon", horizonText(loc, p)},
		{"Inflation", loc.Percent(p.InflationRate) + " per year"},
		{"Passive income goal", income},
		{"Withdrawal rate", loc.Percent(p.WithdrawalRate)},
	}
}

func horizonText(loc Locale, p domain.InputParameters) string {
	switch p.CalculationType {
	case domain.CalculationFixedPeriod:
		if p.PeriodType == domain.PeriodYears {
			return loc.Duration(p.InvestmentPeriod)
		}
		return loc.Duration(p.InvestmentPeriod / 12)
	case domain.CalculationAgeRange:
		return fmt.Sprintf("age %s to %s", loc.Number(p.CurrentAge, 0), loc.Number(p.TargetAge, 0))
	default:
		return "until " + loc.Money(p.TargetWealth)
	}
}

func resultRows(loc Locale, r domain.ProjectionResult) []row {
	return []row{
		{"Final value", loc.Money(r.FinalValue)},
		{"Final value in today's money", loc.Money(r.FinalRealValue)},
		{"Total invested", loc.Money(r.TotalInvested)},
		{"Total gains", loc.Money(r.TotalGains)},
		{"Projection length", loc.Duration(timeutil.MonthsToYears(r.SimulatedMonths))},
		{"Monthly rate", loc.Percent(r.MonthlyRate)},
		{"Effective annual rate", loc.Percent(r.AnnualRate)},
	}
}

func goalRows(loc Locale, p domain.InputParameters, r domain.ProjectionResult) []row {
	return []row{
		{"Target wealth", loc.Money(p.TargetWealth)},
		{"Time to target wealth", loc.Duration(r.TimeToTargetWealth)},
		{"Wealth for passive income", loc.Money(r.RequiredWealthForPassiveIncome)},
		{"Adjusted for inflation", loc.Money(r.RequiredWealthAdjusted)},
		{"Time to passive income", loc.Duration(r.TimeToPassiveIncome)},
	}
}

func indicatorRows(loc Locale, ind domain.PerformanceIndicators) []row {
	multiplier := "n/a"
	if ind.MultiplierDefined {
		multiplier = loc.Number(ind.ReturnMultiplier, 2) + "x"
	}
	return []row{
		{"Return multiplier", multiplier},
		{"Real annual return", loc.Percent(ind.RealAnnualReturn)},
		{"Contribution efficiency", loc.Percent(ind.ContributionEfficiency)},
		{"Gains share of final value", loc.Percent(ind.GainsShare)},
	}
}

func yearlyRows(loc Locale, snaps []domain.YearlySnapshot) [][]string {
	rows := make([][]string, 0, len(snaps))
	for _, s := range snaps {
		rows = append(rows, []string{
			fmt.Sprintf("%d", s.Year),
			loc.Money(s.NominalValue),
			loc.Money(s.RealValue),
			loc.Money(s.TotalContributions),
			loc.Money(s.Gains),
		})
	}
	return rows
}

var yearlyHeaders = []string{"Year", "Nominal", "Real", "Invested", "Gains"}

func whatIfRows(loc Locale, w *domain.WhatIfReport) [][]string {
	rows := make([][]string, 0, len(w.Variants)+1)
	for _, v := range append([]domain.WhatIf{w.Baseline}, w.Variants...) {
		saved := "n/a"
		if v.TimeSaved > 0 {
			saved = timeutil.Compact(v.TimeSaved)
		}
		rows = append(rows, []string{
			v.Description,
			loc.Money(v.FinalValue),
			loc.Money(v.FinalValueDelta),
			loc.Duration(v.TimeToTargetWealth),
			saved,
		})
	}
	return rows
}

var whatIfHeaders = []string{"Variant", "Final value", "Change", "Time to target", "Time saved"}

func comparisonRows(loc Locale, c *domain.ScenarioComparison) [][]string {
	rows := make([][]string, 0, len(c.Scenarios))
	for _, s := range c.Scenarios {
		rows = append(rows, []string{
			s.Name,
			loc.Money(s.Result.FinalValue),
			loc.Money(s.Result.FinalRealValue),
			loc.Money(s.Result.TotalInvested),
			loc.Duration(s.Result.TimeToTargetWealth),
			loc.Duration(s.Result.TimeToPassiveIncome),
		})
	}
	return rows
}

var comparisonHeaders = []string{"Scenario", "Final value", "Real value", "Invested", "Time to target", "Time to passive income"}

func comparisonHighlights(c *domain.ScenarioComparison) []row {
	rows := []row{
		{"Highest final value", c.BestFinalValue},
		{"Highest real value", c.BestRealValue},
	}
	if c.FastestTargetGoal != "" {
		rows = append(rows, row{"Fastest to target wealth", c.FastestTargetGoal})
	}
	if c.FastestPassiveGoal != "" {
		rows = append(rows, row{"Fastest to passive income", c.FastestPassiveGoal})
	}
	if rec := AnalyzeScenarios(c); rec.ScenarioName != rec.BaselineName {
		rows = append(rows, row{"Real gain over " + rec.BaselineName, rec.PercentageChange.StringFixed(2) + "%"})
	}
	return rows
}

func sweepRows(loc Locale, s *domain.SensitivityAnalysis) [][]string {
	rows := make([][]string, 0, len(s.Points))
	for _, p := range s.Points {
		rows = append(rows, []string{
			loc.Number(p.Value, 2),
			loc.Money(p.FinalValue),
			loc.Money(p.FinalRealValue),
			loc.Duration(p.TimeToTargetWealth),
			loc.Duration(p.TimeToPassiveIncome),
		})
	}
	return rows
}

var sweepHeaders = []string{"Value", "Final value", "Real value", "Time to target", "Time to passive income"}

func rowsToCells(rows []row) [][]string {
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{r.Label, r.Value}
	}
	return cells
}

// hasProjection reports whether the report carries a single projection to render.
// Scenario comparisons carry their projections per scenario instead.
func hasProjection(r *domain.Report) bool {
	return r.Comparison == nil
}
