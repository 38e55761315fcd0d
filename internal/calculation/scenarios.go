package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/compound-calculator/internal/domain"
)

// RunScenarios projects every scenario of the configuration and ranks them.
func (pe *ProjectionEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	if config == nil || len(config.Scenarios) == 0 {
		return nil, ErrNoScenarios
	}
	log := loggerOrNop(pe.Logger)

	summaries := make([]domain.ScenarioSummary, 0, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("scenario %d: %w", i, err)
		}
		name := scenario.Name
		if name == "" {
			name = fmt.Sprintf("Scenario %d", i+1)
		}
		result := pe.Project(scenario.Parameters)
		log.Infof("scenario %q: final=%.2f real=%.2f months=%d", name, result.FinalValue, result.FinalRealValue, result.SimulatedMonths)

		summaries = append(summaries, domain.ScenarioSummary{
			Name:       name,
			Parameters: scenario.Parameters,
			Result:     result,
			Indicators: CalculateIndicators(scenario.Parameters, result),
		})
	}

	return compareScenarios(summaries), nil
}

func compareScenarios(summaries []domain.ScenarioSummary) *domain.ScenarioComparison {
	cmp := &domain.ScenarioComparison{Scenarios: summaries}

	var bestFinal, bestReal *domain.ScenarioSummary
	var fastestTarget, fastestPassive *domain.ScenarioSummary
	for i := range summaries {
		s := &summaries[i]
		if bestFinal == nil || s.Result.FinalValue > bestFinal.Result.FinalValue {
			bestFinal = s
		}
		if bestReal == nil || s.Result.FinalRealValue > bestReal.Result.FinalRealValue {
			bestReal = s
		}
		// 0 means unreachable or already met, neither of which ranks as "fastest"
		if t := s.Result.TimeToTargetWealth; t > 0 && (fastestTarget == nil || t < fastestTarget.Result.TimeToTargetWealth) {
			fastestTarget = s
		}
		if t := s.Result.TimeToPassiveIncome; t > 0 && (fastestPassive == nil || t < fastestPassive.Result.TimeToPassiveIncome) {
			fastestPassive = s
		}
	}

	cmp.BestFinalValue = bestFinal.Name
	cmp.BestRealValue = bestReal.Name
	if fastestTarget != nil {
		cmp.FastestTargetGoal = fastestTarget.Name
	}
	if fastestPassive != nil {
		cmp.FastestPassiveGoal = fastestPassive.Name
	}
	return cmp
}
