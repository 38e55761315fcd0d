package calculation

import (
	"math"

	"github.com/rpgo/compound-calculator/internal/domain"
)

// MonthsToReach inverts FV = P(1+r)^n + C((1+r)^n - 1)/r for n.
//
// The result is fractional. It is 0 whenever the goal has no closed-form
// answer: no principal, a non-positive rate, a target already met, or a
// non-positive log argument.
func MonthsToReach(target, principal, monthlyContrib, monthlyRate float64) float64 {
	if principal <= 0 || monthlyRate <= 0 || !(target > principal) {
		return 0
	}
	growth := math.Log1p(monthlyRate)

	var n float64
	if monthlyContrib > 0 {
		ratio := (target*monthlyRate + monthlyContrib) / (principal*monthlyRate + monthlyContrib)
		if !(ratio > 0) {
			return 0
		}
		n = math.Log(ratio) / growth
	} else {
		n = math.Log(target/principal) / growth
	}

	n = finiteOrZero(n)
	if n < 0 {
		return 0
	}
	return n
}

// YearsToReach is MonthsToReach expressed in years.
func YearsToReach(target, principal, monthlyContrib, monthlyRate float64) float64 {
	return MonthsToReach(target, principal, monthlyContrib, monthlyRate) / monthsPerYear
}

// AnnualPassiveIncome normalises the passive income target to a yearly amount.
func AnnualPassiveIncome(amount float64, freq domain.IncomeFrequency) float64 {
	switch freq {
	case domain.IncomeMonthly:
		return amount * monthsPerYear
	default:
		// annual, and any unrecognised frequency, is taken as already annual
		return amount
	}
}

// RequiredWealthForPassiveIncome is the portfolio that sustains the income at the
// given withdrawal rate (percent). It is 0 when either the income or the rate is not positive.
func RequiredWealthForPassiveIncome(amount float64, freq domain.IncomeFrequency, withdrawalRatePct float64) float64 {
	annual := AnnualPassiveIncome(amount, freq)
	if annual <= 0 || withdrawalRatePct <= 0 {
		return 0
	}
	return annual / (withdrawalRatePct / 100)
}

// RequiredMonthlyContribution solves the future-value formula for C: the monthly
// contribution that grows principal to target in the given number of months.
// It returns 0 when the principal alone already gets there or months is not positive.
func RequiredMonthlyContribution(target, principal, monthlyRate float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	n := float64(months)
	if monthlyRate == 0 {
		if target <= principal {
			return 0
		}
		return (target - principal) / n
	}

	growth := math.Pow(1+monthlyRate, n)
	grown := principal * growth
	if grown >= target {
		return 0
	}
	annuity := (growth - 1) / monthlyRate
	if !(annuity > 0) {
		return 0
	}
	return finiteOrZero((target - grown) / annuity)
}
