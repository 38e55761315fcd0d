package output

import (
	"sort"

	"github.com/rpgo/compound-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenario,
// measured against the first scenario of the comparison.
type Recommendation struct {
	ScenarioName     string
	BaselineName     string
	FinalValue       decimal.Decimal
	ValueChange      decimal.Decimal
	PercentageChange decimal.Decimal
}

// AnalyzeScenarios determines the scenario with the highest final value in
// today's money. Ties keep the earlier scenario.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	if results == nil || len(results.Scenarios) == 0 {
		return Recommendation{}
	}
	type ranked struct {
		name  string
		value decimal.Decimal
	}
	ranks := make([]ranked, 0, len(results.Scenarios))
	for _, sc := range results.Scenarios {
		ranks = append(ranks, ranked{sc.Name, decimal.NewFromFloat(sc.Result.FinalRealValue).Round(2)})
	}
	baseline := ranks[0]
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].value.GreaterThan(ranks[j].value) })
	best := ranks[0]

	delta := best.value.Sub(baseline.value)
	pct := decimal.Zero
	if !baseline.value.IsZero() {
		pct = delta.Div(baseline.value).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return Recommendation{
		ScenarioName:     best.name,
		BaselineName:     baseline.name,
		FinalValue:       best.value,
		ValueChange:      delta,
		PercentageChange: pct,
	}
}
