package output

import (
	"fmt"
	"strings"

	"github.com/rpgo/compound-calculator/internal/domain"
)

// ConsoleFormatter renders bordered tables and a growth sparkline for terminals.
type ConsoleFormatter struct {
	Locale Locale
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	loc := c.Locale
	var b strings.Builder

	title := report.Title
	if title == "" {
		title = "Compound Interest Projection"
	}
	b.WriteString(renderTitle(title))
	b.WriteString("\n\n")

	if hasProjection(report) {
		writeProjection(&b, loc, report)
	}
	if report.WhatIfs != nil {
		writeWhatIfs(&b, loc, report)
	}
	if report.Sweep != nil {
		writeSweep(&b, loc, report.Sweep)
	}
	if report.Comparison != nil {
		writeComparison(&b, loc, report.Comparison)
	}
	return []byte(b.String()), nil
}

func writeProjection(b *strings.Builder, loc Locale, report *domain.Report) {
	b.WriteString(renderTable(table{Title: "Parameters", Rows: rowsToCells(parameterRows(loc, report.Parameters))}))
	b.WriteString("\n")
	b.WriteString(renderTable(table{Title: "Results", Rows: rowsToCells(resultRows(loc, report.Result))}))
	b.WriteString("\n")
	b.WriteString(renderTable(table{Title: "Goals", Rows: rowsToCells(goalRows(loc, report.Parameters, report.Result))}))
	b.WriteString("\n")
	b.WriteString(renderTable(table{Title: "Performance", Rows: rowsToCells(indicatorRows(loc, report.Indicators))}))
	fmt.Fprintf(b, "  Invested vs gains %s\n\n", renderBar(report.Indicators.GainsShare/100, 30))

	if len(report.Yearly) == 0 {
		b.WriteString(mutedStyle.Render("  No months simulated: the horizon ends before it starts."))
		b.WriteString("\n\n")
		return
	}
	b.WriteString(renderTable(table{Title: "Year by Year", Headers: yearlyHeaders, Rows: yearlyRows(loc, report.Yearly)}))
	values := make([]float64, len(report.Yearly))
	for i, s := range report.Yearly {
		values[i] = s.NominalValue
	}
	fmt.Fprintf(b, "  Growth %s\n\n", renderSparkline(values))
}

func writeWhatIfs(b *strings.Builder, loc Locale, report *domain.Report) {
	w := report.WhatIfs
	b.WriteString(renderTable(table{Title: "What If", Headers: whatIfHeaders, Rows: whatIfRows(loc, w)}))
	if w.RequiredMonthlyContribution > 0 {
		fmt.Fprintf(b, "  Contribution needed to reach %s in %s: %s per month\n",
			loc.Money(report.Parameters.TargetWealth),
			loc.Duration(float64(w.HorizonMonths)/12),
			loc.Money(w.RequiredMonthlyContribution))
	}
	b.WriteString("\n")
}

func writeSweep(b *strings.Builder, loc Locale, s *domain.SensitivityAnalysis) {
	title := fmt.Sprintf("Sensitivity: %s from %s to %s", s.Parameter.Name, loc.Number(s.Parameter.Min, 2), loc.Number(s.Parameter.Max, 2))
	b.WriteString(renderTable(table{Title: title, Headers: sweepHeaders, Rows: sweepRows(loc, s)}))
	fmt.Fprintf(b, "  Final value spread %s, elasticity %s\n\n", loc.Money(s.FinalValueSpread), loc.Number(s.Elasticity, 3))
}

func writeComparison(b *strings.Builder, loc Locale, c *domain.ScenarioComparison) {
	b.WriteString(renderTable(table{Title: "Scenario Comparison", Headers: comparisonHeaders, Rows: comparisonRows(loc, c)}))
	b.WriteString("\n")
	b.WriteString(renderTable(table{Title: "Highlights", Rows: rowsToCells(comparisonHighlights(c))}))
}
