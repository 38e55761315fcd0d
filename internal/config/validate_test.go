package config

import (
	"math"
	"testing"

	"github.com/rpgo/compound-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidateParameters(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.InputParameters)
		wantErr string
	}{
		{"defaults are valid", func(*domain.InputParameters) {}, ""},
		{"negative capital", func(p *domain.InputParameters) { p.InitialCapital = -1 }, "initial capital cannot be negative"},
		{"negative contribution", func(p *domain.InputParameters) { p.MonthlyContribution = -1 }, "contribution cannot be negative"},
		{"NaN rate", func(p *domain.InputParameters) { p.InterestRate = math.NaN() }, "interest rate must be a finite number"},
		{"infinite capital", func(p *domain.InputParameters) { p.InitialCapital = math.Inf(1) }, "initial capital must be a finite number"},
		{"total loss rate", func(p *domain.InputParameters) { p.InterestRate = -100 }, "interest rate must be above -100%"},
		{"negative rate is allowed", func(p *domain.InputParameters) { p.InterestRate = -5 }, ""},
		{"total deflation", func(p *domain.InputParameters) { p.InflationRate = -100 }, "inflation rate must be above -100%"},
		{"withdrawal over 100", func(p *domain.InputParameters) { p.WithdrawalRate = 120 }, "withdrawal rate must be between 0 and 100%"},
		{"zero withdrawal is allowed", func(p *domain.InputParameters) { p.WithdrawalRate = 0 }, ""},
		{"negative passive income", func(p *domain.InputParameters) { p.TargetPassiveIncome = -1 }, "target passive income cannot be negative"},
		{"unknown frequency", func(p *domain.InputParameters) { p.ContributionFrequency = "weekly" }, "contribution frequency"},
		{"unknown interest type", func(p *domain.InputParameters) { p.InterestType = "daily" }, "interest type"},
		{"unknown income frequency", func(p *domain.InputParameters) { p.PassiveIncomeFrequency = "" }, "passive income frequency"},
		{"unknown period type", func(p *domain.InputParameters) { p.PeriodType = "weeks" }, "period type"},
		{"negative period", func(p *domain.InputParameters) { p.InvestmentPeriod = -1 }, "investment period cannot be negative"},
		{"unknown calculation type", func(p *domain.InputParameters) { p.CalculationType = "" }, "calculation type"},
		{"reversed ages", func(p *domain.InputParameters) {
			p.CalculationType = domain.CalculationAgeRange
			p.CurrentAge, p.TargetAge = 50, 40
		}, "target age 40 is before current age 50"},
		{"negative age", func(p *domain.InputParameters) {
			p.CalculationType = domain.CalculationAgeRange
			p.CurrentAge = -1
		}, "current age cannot be negative"},
		{"period type ignored for age range", func(p *domain.InputParameters) {
			p.CalculationType = domain.CalculationAgeRange
			p.PeriodType = ""
		}, ""},
		{"zero target wealth", func(p *domain.InputParameters) {
			p.CalculationType = domain.CalculationTargetWealth
			p.TargetWealth = 0
		}, "target wealth must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.DefaultInputParameters()
			tt.mutate(&p)
			err := ValidateParameters(p)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidParameters)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfiguration(t *testing.T) {
	parser := NewInputParser()

	t.Run("nil and empty", func(t *testing.T) {
		assert.ErrorIs(t, parser.ValidateConfiguration(nil), ErrInvalidParameters)
		err := parser.ValidateConfiguration(&domain.Configuration{})
		assert.ErrorIs(t, err, ErrInvalidParameters)
		assert.Contains(t, err.Error(), "no scenarios provided")
	})

	t.Run("duplicate names", func(t *testing.T) {
		p := domain.DefaultInputParameters()
		err := parser.ValidateConfiguration(&domain.Configuration{Scenarios: []domain.Scenario{
			{Name: "A", Parameters: p}, {Name: "A", Parameters: p},
		}})
		assert.ErrorIs(t, err, ErrInvalidParameters)
		assert.Contains(t, err.Error(), `duplicates the name "A"`)
	})

	t.Run("unnamed scenarios may repeat", func(t *testing.T) {
		p := domain.DefaultInputParameters()
		assert.NoError(t, parser.ValidateConfiguration(&domain.Configuration{Scenarios: []domain.Scenario{
			{Parameters: p}, {Parameters: p},
		}}))
	})

	t.Run("scenario index in message", func(t *testing.T) {
		bad := domain.DefaultInputParameters()
		bad.InitialCapital = -1
		err := parser.ValidateConfiguration(&domain.Configuration{Scenarios: []domain.Scenario{
			{Name: "ok", Parameters: domain.DefaultInputParameters()},
			{Name: "bad", Parameters: bad},
		}})
		assert.ErrorIs(t, err, ErrInvalidParameters)
		assert.Contains(t, err.Error(), "scenario 1 (bad)")
	})
}
