package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/compound-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders a plain-text report with the assumptions
// and the full month-by-month trajectory of every projection.
type ConsoleVerboseFormatter struct {
	Locale Locale
}

func (c ConsoleVerboseFormatter) Name() string { return "console-verbose" }

func (c ConsoleVerboseFormatter) Format(report *domain.Report) ([]byte, error) {
	loc := c.Locale
	var buf bytes.Buffer

	title := report.Title
	if title == "" {
		title = "Compound Interest Projection"
	}
	rule := strings.Repeat("=", 81)
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, strings.ToUpper(title))
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf)

	if report.Comparison == nil {
		writeVerboseProjection(&buf, loc, "", report.Parameters, report.Result)
		return buf.Bytes(), nil
	}

	rec := AnalyzeScenarios(report.Comparison)
	fmt.Fprintf(&buf, "RECOMMENDATION: %s\n", rec.ScenarioName)
	fmt.Fprintf(&buf, "  Final value in today's money: %s\n", loc.Money(rec.FinalValue.InexactFloat64()))
	fmt.Fprintf(&buf, "  Change vs %s: %s (%s%%)\n", rec.BaselineName,
		loc.Money(rec.ValueChange.InexactFloat64()), rec.PercentageChange.StringFixed(2))
	fmt.Fprintln(&buf)

	for i, sc := range report.Comparison.Scenarios {
		writeVerboseProjection(&buf, loc, fmt.Sprintf("SCENARIO %d: %s", i+1, sc.Name), sc.Parameters, sc.Result)
	}
	return buf.Bytes(), nil
}

func writeVerboseProjection(buf *bytes.Buffer, loc Locale, heading string, p domain.InputParameters, r domain.ProjectionResult) {
	if heading != "" {
		fmt.Fprintln(buf, heading)
		fmt.Fprintln(buf, strings.Repeat("=", 50))
	}

	fmt.Fprintln(buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(loc, p) {
		fmt.Fprintf(buf, "• %s\n", a)
	}
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "SUMMARY:")
	for _, row := range append(resultRows(loc, r), goalRows(loc, p, r)...) {
		fmt.Fprintf(buf, "  %-30s %s\n", row.Label+":", row.Value)
	}
	fmt.Fprintln(buf)

	if len(r.Data) == 0 {
		fmt.Fprintln(buf, "No months simulated.")
		fmt.Fprintln(buf)
		return
	}

	fmt.Fprintln(buf, "MONTH BY MONTH:")
	fmt.Fprintf(buf, "%6s  %18s  %18s  %18s  %18s\n", "Month", "Nominal", "Real", "Invested", "Gains")
	fmt.Fprintln(buf, strings.Repeat("-", 86))
	for _, pt := range r.Data {
		fmt.Fprintf(buf, "%6d  %18s  %18s  %18s  %18s\n", pt.Month,
			loc.Money(pt.NominalValue), loc.Money(pt.RealValue), loc.Money(pt.TotalContributions), loc.Money(pt.Gains))
	}
	fmt.Fprintln(buf)
}
