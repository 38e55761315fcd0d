package calculation

import "github.com/rpgo/compound-calculator/internal/domain"

// CalculateIndicators derives the performance indicators of a projection.
func CalculateIndicators(params domain.InputParameters, result domain.ProjectionResult) domain.PerformanceIndicators {
	var ind domain.PerformanceIndicators

	if params.InitialCapital > 0 {
		ind.ReturnMultiplier = result.FinalValue / params.InitialCapital
		ind.MultiplierDefined = true
	}

	// Fisher relation between the effective nominal rate and inflation.
	if inflationBase := 1 + params.InflationRate/100; inflationBase > 0 {
		ind.RealAnnualReturn = ((1+result.AnnualRate/100)/inflationBase - 1) * 100
	}

	if periodic := result.TotalInvested - params.InitialCapital; periodic > 0 {
		ind.ContributionEfficiency = result.TotalGains / periodic * 100
	}

	if result.FinalValue > 0 {
		ind.GainsShare = result.TotalGains / result.FinalValue * 100
	}

	ind.ReturnMultiplier = finiteOrZero(ind.ReturnMultiplier)
	ind.RealAnnualReturn = finiteOrZero(ind.RealAnnualReturn)
	ind.ContributionEfficiency = finiteOrZero(ind.ContributionEfficiency)
	ind.GainsShare = finiteOrZero(ind.GainsShare)
	return ind
}
