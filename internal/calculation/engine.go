package calculation

import (
	"math"

	"github.com/rpgo/compound-calculator/internal/domain"
)

// MaxSimulatedMonths bounds the monthly loop (1000 years) so a pathological
// goal inversion cannot allocate an unbounded series.
const MaxSimulatedMonths = 12000

// ProjectionEngine turns a parameter set into a monthly trajectory and its derived metrics.
// It keeps no state between calls; one engine can serve any number of goroutines.
type ProjectionEngine struct {
	Logger Logger
}

// NewProjectionEngine creates a projection engine with a no-op logger.
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	pe.Logger = loggerOrNop(l)
}

// Project runs the projection. It never fails: degenerate inputs resolve to
// zeroed goal metrics alongside a still-valid trajectory.
func (pe *ProjectionEngine) Project(params domain.InputParameters) domain.ProjectionResult {
	log := loggerOrNop(pe.Logger)

	monthlyRate := MonthlyRate(params.InterestRate, params.InterestType)
	monthlyInflation := MonthlyInflationRate(params.InflationRate)
	monthlyContrib := MonthlyContribution(params.MonthlyContribution, params.ContributionFrequency)

	periods := ResolvePeriods(params, monthlyRate, monthlyContrib)
	months := SimulationMonths(periods)
	if months == MaxSimulatedMonths && periods > MaxSimulatedMonths {
		log.Warnf("resolved %.1f months exceeds simulation limit, truncating to %d", periods, MaxSimulatedMonths)
	}
	log.Debugf("projection: type=%s monthlyRate=%.6f monthlyContrib=%.2f periods=%.4f simulated=%d",
		params.CalculationType, monthlyRate, monthlyContrib, periods, months)

	data := make([]domain.ProjectionPoint, 0, max(months+1, 0))
	currentValue := params.InitialCapital
	totalContributions := params.InitialCapital

	for month := 0; month <= months; month++ {
		if month > 0 {
			currentValue = currentValue*(1+monthlyRate) + monthlyContrib
			totalContributions += monthlyContrib
		}
		data = append(data, domain.ProjectionPoint{
			Month:              month,
			Year:               float64(month) / monthsPerYear,
			NominalValue:       currentValue,
			RealValue:          deflate(currentValue, monthlyInflation, month),
			TotalContributions: totalContributions,
			Gains:              currentValue - totalContributions,
		})
	}

	finalValue := currentValue
	totalInvested := totalContributions

	requiredWealth := RequiredWealthForPassiveIncome(params.TargetPassiveIncome, params.PassiveIncomeFrequency, params.WithdrawalRate)
	requiredAdjusted := requiredWealth * inflationFactor(monthlyInflation, months)

	return domain.ProjectionResult{
		FinalValue:     finalValue,
		FinalRealValue: deflate(finalValue, monthlyInflation, months),
		TotalInvested:  totalInvested,
		TotalGains:     finalValue - totalInvested,
		Periods:        periods / monthsPerYear,
		Data:           data,

		RequiredWealthForPassiveIncome: requiredWealth,
		RequiredWealthAdjusted:         finiteOrZero(requiredAdjusted),
		TimeToTargetWealth:             YearsToReach(params.TargetWealth, params.InitialCapital, monthlyContrib, monthlyRate),
		TimeToPassiveIncome:            YearsToReach(requiredAdjusted, params.InitialCapital, monthlyContrib, monthlyRate),

		MonthlyRate: monthlyRate * 100,
		AnnualRate:  EffectiveAnnualRate(monthlyRate) * 100,

		SimulatedMonths: months,
	}
}

// ResolvePeriods returns the (possibly fractional) number of months to project.
func ResolvePeriods(params domain.InputParameters, monthlyRate, monthlyContrib float64) float64 {
	switch params.CalculationType {
	case domain.CalculationFixedPeriod:
		switch params.PeriodType {
		case domain.PeriodYears:
			return params.InvestmentPeriod * monthsPerYear
		default:
			// months, and any unrecognised unit, is already in months
			return params.InvestmentPeriod
		}
	case domain.CalculationAgeRange:
		return (params.TargetAge - params.CurrentAge) * monthsPerYear
	default:
		// targetWealth, and any unrecognised type, solves for the goal
		return MonthsToReach(params.TargetWealth, params.InitialCapital, monthlyContrib, monthlyRate)
	}
}

// SimulationMonths converts a resolved period count into the loop bound.
// Fractional months are floored: a partial final month has not completed yet.
// A negative result means no month is simulated at all.
func SimulationMonths(periods float64) int {
	if math.IsNaN(periods) {
		return 0
	}
	if periods > MaxSimulatedMonths {
		return MaxSimulatedMonths
	}
	if periods < -1 {
		return -1
	}
	return int(math.Floor(periods))
}

// YearlySnapshots samples the trajectory at each whole year, always including the last month.
func YearlySnapshots(result domain.ProjectionResult) []domain.YearlySnapshot {
	last, ok := result.Last()
	if !ok {
		return nil
	}
	snapshots := make([]domain.YearlySnapshot, 0, len(result.Data)/monthsPerYear+2)
	for _, p := range result.Data {
		if p.Month%monthsPerYear == 0 {
			snapshots = append(snapshots, domain.SnapshotAt(p.Month/monthsPerYear, p))
		}
	}
	if last.Month%monthsPerYear != 0 {
		snapshots = append(snapshots, domain.SnapshotAt(int(math.Ceil(last.Year)), last))
	}
	return snapshots
}

// BuildReport projects params and gathers the derived views formatters render.
func (pe *ProjectionEngine) BuildReport(title string, params domain.InputParameters) domain.Report {
	result := pe.Project(params)
	return domain.Report{
		Title:      title,
		Parameters: params,
		Result:     result,
		Indicators: CalculateIndicators(params, result),
		Yearly:     YearlySnapshots(result),
	}
}
