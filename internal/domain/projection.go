package domain

// ProjectionPoint is the state of the investment at the end of one simulated month.
type ProjectionPoint struct {
	Month              int     `json:"month" yaml:"month"`
	Year               float64 `json:"year" yaml:"year"`
	NominalValue       float64 `json:"nominalValue" yaml:"nominal_value"`
	RealValue          float64 `json:"realValue" yaml:"real_value"`
	TotalContributions float64 `json:"totalContributions" yaml:"total_contributions"`
	Gains              float64 `json:"gains" yaml:"gains"`
}

// ProjectionResult holds the monthly trajectory and the metrics derived from it.
// Periods, TimeToTargetWealth and TimeToPassiveIncome are in years;
// MonthlyRate and AnnualRate are in percent.
type ProjectionResult struct {
	FinalValue     float64           `json:"finalValue" yaml:"final_value"`
	FinalRealValue float64           `json:"finalRealValue" yaml:"final_real_value"`
	TotalInvested  float64           `json:"totalInvested" yaml:"total_invested"`
	TotalGains     float64           `json:"totalGains" yaml:"total_gains"`
	Periods        float64           `json:"periods" yaml:"periods"`
	Data           []ProjectionPoint `json:"data" yaml:"data"`

	RequiredWealthForPassiveIncome float64 `json:"requiredWealthForPassiveIncome" yaml:"required_wealth_for_passive_income"`
	RequiredWealthAdjusted         float64 `json:"requiredWealthAdjusted" yaml:"required_wealth_adjusted"`
	TimeToTargetWealth             float64 `json:"timeToTargetWealth" yaml:"time_to_target_wealth"`
	TimeToPassiveIncome            float64 `json:"timeToPassiveIncome" yaml:"time_to_passive_income"`

	MonthlyRate float64 `json:"monthlyRate" yaml:"monthly_rate"`
	AnnualRate  float64 `json:"annualRate" yaml:"annual_rate"`

	// SimulatedMonths is the loop bound actually used (floor of the resolved period count).
	SimulatedMonths int `json:"simulatedMonths" yaml:"simulated_months"`
}

// Last returns the final point of the trajectory and false when Data is empty.
func (r *ProjectionResult) Last() (ProjectionPoint, bool) {
	if len(r.Data) == 0 {
		return ProjectionPoint{}, false
	}
	return r.Data[len(r.Data)-1], true
}

// YearlySnapshot is the trajectory sampled at a whole-year boundary.
type YearlySnapshot struct {
	Year               int     `json:"year" yaml:"year"`
	Month              int     `json:"month" yaml:"month"`
	NominalValue       float64 `json:"nominalValue" yaml:"nominal_value"`
	RealValue          float64 `json:"realValue" yaml:"real_value"`
	TotalContributions float64 `json:"totalContributions" yaml:"total_contributions"`
	Gains              float64 `json:"gains" yaml:"gains"`
}

// SnapshotAt labels point p as the snapshot for the given year.
func SnapshotAt(year int, p ProjectionPoint) YearlySnapshot {
	return YearlySnapshot{
		Year:               year,
		Month:              p.Month,
		NominalValue:       p.NominalValue,
		RealValue:          p.RealValue,
		TotalContributions: p.TotalContributions,
		Gains:              p.Gains,
	}
}

// PerformanceIndicators summarise how effectively the plan grows money.
type PerformanceIndicators struct {
	ReturnMultiplier       float64 `json:"returnMultiplier" yaml:"return_multiplier"`
	MultiplierDefined      bool    `json:"multiplierDefined" yaml:"multiplier_defined"`
	RealAnnualReturn       float64 `json:"realAnnualReturn" yaml:"real_annual_return"`
	ContributionEfficiency float64 `json:"contributionEfficiency" yaml:"contribution_efficiency"`
	GainsShare             float64 `json:"gainsShare" yaml:"gains_share"`
}

// Report bundles everything an output formatter renders for one projection.
type Report struct {
	Title      string                `json:"title" yaml:"title"`
	Parameters InputParameters       `json:"parameters" yaml:"parameters"`
	Result     ProjectionResult      `json:"result" yaml:"result"`
	Indicators PerformanceIndicators `json:"indicators" yaml:"indicators"`
	Yearly     []YearlySnapshot      `json:"yearly" yaml:"yearly"`
	WhatIfs    *WhatIfReport         `json:"whatIfs,omitempty" yaml:"what_ifs,omitempty"`
	Comparison *ScenarioComparison   `json:"comparison,omitempty" yaml:"comparison,omitempty"`
	Sweep      *SensitivityAnalysis  `json:"sweep,omitempty" yaml:"sweep,omitempty"`
}
