package domain

// ContributionFrequency describes how often the periodic contribution is made.
type ContributionFrequency string

const (
	ContributionMonthly ContributionFrequency = "monthly"
	ContributionAnnual  ContributionFrequency = "annual"
)

// InterestType describes the period the quoted interest rate applies to.
type InterestType string

const (
	InterestAnnual  InterestType = "annual"
	InterestMonthly InterestType = "monthly"
)

// CalculationType selects how the number of simulated months is derived.
type CalculationType string

const (
	CalculationFixedPeriod  CalculationType = "fixedPeriod"
	CalculationAgeRange     CalculationType = "ageRange"
	CalculationTargetWealth CalculationType = "targetWealth"
)

// PeriodType is the unit of InvestmentPeriod for fixed-period projections.
type PeriodType string

const (
	PeriodYears  PeriodType = "years"
	PeriodMonths PeriodType = "months"
)

// IncomeFrequency is the unit of the passive income target.
type IncomeFrequency string

const (
	IncomeMonthly IncomeFrequency = "monthly"
	IncomeAnnual  IncomeFrequency = "annual"
)

// InputParameters is the full parameter set of a projection.
// Rates are expressed in percent (12 means 12%).
type InputParameters struct {
	InitialCapital        float64               `json:"initialCapital" yaml:"initial_capital" toml:"initial_capital"`
	MonthlyContribution   float64               `json:"monthlyContribution" yaml:"monthly_contribution" toml:"monthly_contribution"`
	ContributionFrequency ContributionFrequency `json:"contributionFrequency" yaml:"contribution_frequency" toml:"contribution_frequency"`

	InterestRate float64      `json:"interestRate" yaml:"interest_rate" toml:"interest_rate"`
	InterestType InterestType `json:"interestType" yaml:"interest_type" toml:"interest_type"`

	CalculationType  CalculationType `json:"calculationType" yaml:"calculation_type" toml:"calculation_type"`
	InvestmentPeriod float64         `json:"investmentPeriod" yaml:"investment_period" toml:"investment_period"`
	PeriodType       PeriodType      `json:"periodType" yaml:"period_type" toml:"period_type"`
	CurrentAge       float64         `json:"currentAge" yaml:"current_age" toml:"current_age"`
	TargetAge        float64         `json:"targetAge" yaml:"target_age" toml:"target_age"`
	TargetWealth     float64         `json:"targetWealth" yaml:"target_wealth" toml:"target_wealth"`

	TargetPassiveIncome    float64         `json:"targetPassiveIncome" yaml:"target_passive_income" toml:"target_passive_income"`
	PassiveIncomeFrequency IncomeFrequency `json:"passiveIncomeFrequency" yaml:"passive_income_frequency" toml:"passive_income_frequency"`
	WithdrawalRate         float64         `json:"withdrawalRate" yaml:"withdrawal_rate" toml:"withdrawal_rate"`

	InflationRate float64 `json:"inflationRate" yaml:"inflation_rate" toml:"inflation_rate"`
}

// DefaultInputParameters returns the parameter set the calculator starts with.
func DefaultInputParameters() InputParameters {
	return InputParameters{
		InitialCapital:         10000,
		MonthlyContribution:    500,
		ContributionFrequency:  ContributionMonthly,
		InterestRate:           12,
		InterestType:           InterestAnnual,
		CalculationType:        CalculationFixedPeriod,
		InvestmentPeriod:       10,
		PeriodType:             PeriodYears,
		CurrentAge:             25,
		TargetAge:              65,
		TargetWealth:           1000000,
		TargetPassiveIncome:    5000,
		PassiveIncomeFrequency: IncomeMonthly,
		WithdrawalRate:         4,
		InflationRate:          4,
	}
}

// Valid reports whether f is a known contribution frequency.
func (f ContributionFrequency) Valid() bool {
	return f == ContributionMonthly || f == ContributionAnnual
}

// Valid reports whether t is a known interest type.
func (t InterestType) Valid() bool {
	return t == InterestAnnual || t == InterestMonthly
}

// Valid reports whether c is a known calculation type.
func (c CalculationType) Valid() bool {
	switch c {
	case CalculationFixedPeriod, CalculationAgeRange, CalculationTargetWealth:
		return true
	}
	return false
}

// Valid reports whether p is a known period unit.
func (p PeriodType) Valid() bool {
	return p == PeriodYears || p == PeriodMonths
}

// Valid reports whether f is a known income frequency.
func (f IncomeFrequency) Valid() bool {
	return f == IncomeMonthly || f == IncomeAnnual
}
