package output

import (
	"fmt"

	"github.com/rpgo/compound-calculator/internal/calculation"
	"github.com/rpgo/compound-calculator/internal/domain"
	"github.com/rpgo/compound-calculator/pkg/decimal"
)

// GenerateAssumptions lists the modelling assumptions behind a projection in
// the terms of its own parameters.
func GenerateAssumptions(loc Locale, p domain.InputParameters) []string {
	monthly := calculation.MonthlyRate(p.InterestRate, p.InterestType)
	contribution := calculation.MonthlyContribution(p.MonthlyContribution, p.ContributionFrequency)

	assumptions := []string{
		fmt.Sprintf("Interest compounds monthly at %s (%s effective per year)",
			loc.Percent(monthly*100), loc.Percent(calculation.EffectiveAnnualRate(monthly)*100)),
		fmt.Sprintf("%s is added at the end of every month", loc.Money(contribution)),
		fmt.Sprintf("Inflation of %s per year converts nominal values to today's money", loc.Percent(p.InflationRate)),
		fmt.Sprintf("The passive income goal assumes withdrawing %s of wealth per year", loc.Percent(p.WithdrawalRate)),
		"Rates stay fixed for the whole horizon",
	}
	if p.ContributionFrequency == domain.ContributionAnnual {
		annual := decimal.NewMoney(p.MonthlyContribution)
		assumptions[1] = fmt.Sprintf("The annual contribution of %s is spread evenly as %s per month",
			loc.Money(annual.Cents()), loc.Money(annual.Monthly().Cents()))
	}
	return assumptions
}
