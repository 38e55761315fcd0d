package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/rpgo/compound-calculator/internal/domain"
)

// ErrInvalidParameters is wrapped by every validation failure.
var ErrInvalidParameters = errors.New("invalid parameters")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameters, fmt.Sprintf(format, args...))
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config == nil || len(config.Scenarios) == 0 {
		return invalid("no scenarios provided")
	}

	seen := make(map[string]int, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if scenario.Name != "" {
			if prev, dup := seen[scenario.Name]; dup {
				return invalid("scenario %d duplicates the name %q of scenario %d", i, scenario.Name, prev)
			}
			seen[scenario.Name] = i
		}
		if err := ValidateParameters(scenario.Parameters); err != nil {
			return fmt.Errorf("scenario %d (%s) validation failed: %w", i, scenario.Name, err)
		}
	}
	return nil
}

// ValidateParameters checks a parameter set before it reaches the engine.
// The engine accepts anything; this is for user-facing entry points.
func ValidateParameters(p domain.InputParameters) error {
	numbers := []struct {
		name  string
		value float64
	}{
		{"initial capital", p.InitialCapital},
		{"monthly contribution", p.MonthlyContribution},
		{"interest rate", p.InterestRate},
		{"investment period", p.InvestmentPeriod},
		{"current age", p.CurrentAge},
		{"target age", p.TargetAge},
		{"target wealth", p.TargetWealth},
		{"target passive income", p.TargetPassiveIncome},
		{"withdrawal rate", p.WithdrawalRate},
		{"inflation rate", p.InflationRate},
	}
	for _, n := range numbers {
		if math.IsNaN(n.value) || math.IsInf(n.value, 0) {
			return invalid("%s must be a finite number", n.name)
		}
	}

	if p.InitialCapital < 0 {
		return invalid("initial capital cannot be negative")
	}
	if p.MonthlyContribution < 0 {
		return invalid("contribution cannot be negative")
	}
	if p.TargetPassiveIncome < 0 {
		return invalid("target passive income cannot be negative")
	}
	if p.WithdrawalRate < 0 || p.WithdrawalRate > 100 {
		return invalid("withdrawal rate must be between 0 and 100%%")
	}
	if p.InterestRate <= -100 {
		return invalid("interest rate must be above -100%%")
	}
	if p.InflationRate <= -100 {
		return invalid("inflation rate must be above -100%%")
	}

	if !p.ContributionFrequency.Valid() {
		return invalid("contribution frequency must be 'monthly' or 'annual', got %q", p.ContributionFrequency)
	}
	if !p.InterestType.Valid() {
		return invalid("interest type must be 'annual' or 'monthly', got %q", p.InterestType)
	}
	if !p.PassiveIncomeFrequency.Valid() {
		return invalid("passive income frequency must be 'monthly' or 'annual', got %q", p.PassiveIncomeFrequency)
	}

	switch p.CalculationType {
	case domain.CalculationFixedPeriod:
		if !p.PeriodType.Valid() {
			return invalid("period type must be 'years' or 'months', got %q", p.PeriodType)
		}
		if p.InvestmentPeriod < 0 {
			return invalid("investment period cannot be negative")
		}
	case domain.CalculationAgeRange:
		if p.CurrentAge < 0 {
			return invalid("current age cannot be negative")
		}
		if p.TargetAge < p.CurrentAge {
			return invalid("target age %.0f is before current age %.0f", p.TargetAge, p.CurrentAge)
		}
	case domain.CalculationTargetWealth:
		if p.TargetWealth <= 0 {
			return invalid("target wealth must be positive")
		}
	default:
		return invalid("calculation type must be 'fixedPeriod', 'ageRange' or 'targetWealth', got %q", p.CalculationType)
	}
	return nil
}
