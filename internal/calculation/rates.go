package calculation

import (
	"math"

	"github.com/rpgo/compound-calculator/internal/domain"
)

const monthsPerYear = 12

// annualToMonthly converts an annual percentage into its geometric monthly equivalent.
// Rates at or below -100% have no real root and clamp to a total monthly loss.
func annualToMonthly(annualPct float64) float64 {
	base := 1 + annualPct/100
	if base <= 0 {
		return -1
	}
	return math.Pow(base, 1.0/monthsPerYear) - 1
}

// MonthlyRate returns the monthly compounding rate (as a fraction) for a quoted rate in percent.
func MonthlyRate(ratePct float64, interestType domain.InterestType) float64 {
	switch interestType {
	case domain.InterestAnnual:
		return annualToMonthly(ratePct)
	default:
		// monthly, and any unrecognised type, is taken as already monthly
		return math.Max(ratePct/100, -1)
	}
}

// MonthlyInflationRate returns the monthly equivalent of an annual inflation rate in percent.
func MonthlyInflationRate(annualPct float64) float64 {
	return annualToMonthly(annualPct)
}

// MonthlyContribution spreads the contribution amount over months.
func MonthlyContribution(amount float64, freq domain.ContributionFrequency) float64 {
	switch freq {
	case domain.ContributionAnnual:
		return amount / monthsPerYear
	default:
		// monthly, and any unrecognised frequency, is used as-is
		return amount
	}
}

// EffectiveAnnualRate compounds a monthly fractional rate over a year.
func EffectiveAnnualRate(monthlyRate float64) float64 {
	return math.Pow(1+monthlyRate, monthsPerYear) - 1
}

// inflationFactor is the cumulative price level after the given number of months.
func inflationFactor(monthlyInflation float64, months int) float64 {
	if months <= 0 {
		return 1
	}
	return math.Pow(1+monthlyInflation, float64(months))
}

// deflate expresses a nominal amount in today's purchasing power.
func deflate(nominal, monthlyInflation float64, months int) float64 {
	factor := inflationFactor(monthlyInflation, months)
	if factor <= 0 {
		return 0
	}
	return nominal / factor
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
