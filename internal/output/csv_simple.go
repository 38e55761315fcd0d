package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/rpgo/compound-calculator/internal/domain"
)

// CSVSummarizer writes one row per projection: the scenarios of a comparison
// (sorted by name), the steps of a sensitivity sweep, or the single projection.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

var summaryHeader = []string{"Scenario", "FinalValue", "FinalRealValue", "TotalInvested", "TotalGains", "Years", "SimulatedMonths", "TimeToTargetWealth", "TimeToPassiveIncome", "RequiredWealth", "RequiredWealthAdjusted", "MonthlyRate", "AnnualRate"}

func (c CSVSummarizer) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	var rows [][]string
	switch {
	case report.Sweep != nil:
		if err := w.Write([]string{"Parameter", "Value", "FinalValue", "FinalRealValue", "TotalGains", "TimeToTargetWealth", "TimeToPassiveIncome"}); err != nil {
			return nil, err
		}
		for _, p := range report.Sweep.Points {
			rows = append(rows, []string{
				report.Sweep.Parameter.Name,
				formatFloat(p.Value, 4),
				money(p.FinalValue),
				money(p.FinalRealValue),
				money(p.TotalGains),
				formatFloat(p.TimeToTargetWealth, 4),
				formatFloat(p.TimeToPassiveIncome, 4),
			})
		}
	case report.Comparison != nil:
		if err := w.Write(summaryHeader); err != nil {
			return nil, err
		}
		scenarios := append([]domain.ScenarioSummary(nil), report.Comparison.Scenarios...)
		sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
		for _, sc := range scenarios {
			rows = append(rows, summaryRow(sc.Name, sc.Result))
		}
	default:
		if err := w.Write(summaryHeader); err != nil {
			return nil, err
		}
		name := report.Title
		if name == "" {
			name = "Projection"
		}
		rows = append(rows, summaryRow(name, report.Result))
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func summaryRow(name string, r domain.ProjectionResult) []string {
	return []string{
		name,
		money(r.FinalValue),
		money(r.FinalRealValue),
		money(r.TotalInvested),
		money(r.TotalGains),
		formatFloat(r.Periods, 4),
		intToString(r.SimulatedMonths),
		formatFloat(r.TimeToTargetWealth, 4),
		formatFloat(r.TimeToPassiveIncome, 4),
		money(r.RequiredWealthForPassiveIncome),
		money(r.RequiredWealthAdjusted),
		formatFloat(r.MonthlyRate, 6),
		formatFloat(r.AnnualRate, 6),
	}
}
