package domain

// Scenario is a named parameter set inside a configuration file.
type Scenario struct {
	Name       string          `json:"name" yaml:"name" toml:"name"`
	Parameters InputParameters `json:"parameters" yaml:"parameters" toml:"parameters"`
}

// Configuration is the top-level structure of a scenario file.
type Configuration struct {
	Scenarios []Scenario `json:"scenarios" yaml:"scenarios" toml:"scenarios"`
}

// ScenarioSummary pairs a scenario with its projection.
type ScenarioSummary struct {
	Name       string                `json:"name" yaml:"name"`
	Parameters InputParameters       `json:"parameters" yaml:"parameters"`
	Result     ProjectionResult      `json:"result" yaml:"result"`
	Indicators PerformanceIndicators `json:"indicators" yaml:"indicators"`
}

// ScenarioComparison ranks a set of projected scenarios.
type ScenarioComparison struct {
	Scenarios          []ScenarioSummary `json:"scenarios" yaml:"scenarios"`
	BestFinalValue     string            `json:"bestFinalValue" yaml:"best_final_value"`
	BestRealValue      string            `json:"bestRealValue" yaml:"best_real_value"`
	FastestTargetGoal  string            `json:"fastestTargetGoal,omitempty" yaml:"fastest_target_goal,omitempty"`
	FastestPassiveGoal string            `json:"fastestPassiveGoal,omitempty" yaml:"fastest_passive_goal,omitempty"`
}

// SensitivityParameter describes a single-parameter sweep.
type SensitivityParameter struct {
	Name  string  `json:"name" yaml:"name"`
	Min   float64 `json:"min" yaml:"min"`
	Max   float64 `json:"max" yaml:"max"`
	Steps int     `json:"steps" yaml:"steps"`
}

// SensitivityPoint is the outcome of one step of a sweep.
type SensitivityPoint struct {
	Value               float64 `json:"value" yaml:"value"`
	FinalValue          float64 `json:"finalValue" yaml:"final_value"`
	FinalRealValue      float64 `json:"finalRealValue" yaml:"final_real_value"`
	TotalGains          float64 `json:"totalGains" yaml:"total_gains"`
	TimeToTargetWealth  float64 `json:"timeToTargetWealth" yaml:"time_to_target_wealth"`
	TimeToPassiveIncome float64 `json:"timeToPassiveIncome" yaml:"time_to_passive_income"`
}

// SensitivityAnalysis is the full result of a sweep.
type SensitivityAnalysis struct {
	Parameter SensitivityParameter `json:"parameter" yaml:"parameter"`
	Points    []SensitivityPoint   `json:"points" yaml:"points"`
	// FinalValueSpread is max minus min final value across the sweep.
	FinalValueSpread float64 `json:"finalValueSpread" yaml:"final_value_spread"`
	// Elasticity is the relative change in final value per relative change in the parameter,
	// measured between the first and last step. Zero when undefined.
	Elasticity float64 `json:"elasticity" yaml:"elasticity"`
}

// WhatIf is a single adjusted variant of the base parameters.
type WhatIf struct {
	Name                string          `json:"name" yaml:"name"`
	Description         string          `json:"description" yaml:"description"`
	Parameters          InputParameters `json:"parameters" yaml:"parameters"`
	FinalValue          float64         `json:"finalValue" yaml:"final_value"`
	FinalValueDelta     float64         `json:"finalValueDelta" yaml:"final_value_delta"`
	TimeToTargetWealth  float64         `json:"timeToTargetWealth" yaml:"time_to_target_wealth"`
	TimeSaved           float64         `json:"timeSaved" yaml:"time_saved"`
	TimeToPassiveIncome float64         `json:"timeToPassiveIncome" yaml:"time_to_passive_income"`
}

// WhatIfReport lists variants ordered as they were evaluated.
type WhatIfReport struct {
	Baseline WhatIf   `json:"baseline" yaml:"baseline"`
	Variants []WhatIf `json:"variants" yaml:"variants"`
	// RequiredMonthlyContribution reaches the target wealth within the baseline horizon.
	RequiredMonthlyContribution float64 `json:"requiredMonthlyContribution" yaml:"required_monthly_contribution"`
	HorizonMonths               int     `json:"horizonMonths" yaml:"horizon_months"`
}
