package output

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rpgo/compound-calculator/internal/calculation"
	"github.com/rpgo/compound-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func fixedClock(t *testing.T) {
	t.Helper()
	SetNowFunc(func() time.Time { return time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC) })
	t.Cleanup(func() { SetNowFunc(time.Now) })
}

func buildTestReport() *domain.Report {
	report := calculation.NewProjectionEngine().BuildReport("Plan", domain.DefaultInputParameters())
	return &report
}

func buildTestComparison(t *testing.T) *domain.Report {
	t.Helper()
	slow := domain.DefaultInputParameters()
	slow.InterestRate = 6
	fast := domain.DefaultInputParameters()
	fast.MonthlyContribution = 2000
	cmp, err := calculation.NewProjectionEngine().RunScenarios(context.Background(), &domain.Configuration{
		Scenarios: []domain.Scenario{{Name: "B-Fast", Parameters: fast}, {Name: "A-Slow", Parameters: slow}},
	})
	require.NoError(t, err)
	return &domain.Report{Title: "Comparison", Comparison: cmp}
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{Locale: DefaultLocale()}.Format(buildTestReport())
	require.NoError(t, err)
	content := string(out)

	for _, want := range []string{
		"Plan",
		"Parameters",
		"$10,000.00",
		"12.00% per year",
		"Final value",
		"$142,023.50",
		"$70,000.00",
		"10 years",
		"24 years and 11 months",
		"$1,500,000.00",
		"14.20x",
		"Year by Year",
		"Growth ▁",
	} {
		assert.Contains(t, content, want)
	}
	assert.True(t, strings.Contains(content, "█"), "sparkline reaches the top block")
}

func TestConsoleFormatter_Portuguese(t *testing.T) {
	out, err := ConsoleFormatter{Locale: LocaleFor("pt-BR")}.Format(buildTestReport())
	require.NoError(t, err)
	content := string(out)
	assert.Contains(t, content, "R$ 142.023,50")
	assert.Contains(t, content, "24 anos e 11 meses")
}

func TestConsoleFormatter_NoMonthsSimulated(t *testing.T) {
	p := domain.DefaultInputParameters()
	p.CalculationType = domain.CalculationAgeRange
	p.CurrentAge, p.TargetAge = 40, 30
	report := calculation.NewProjectionEngine().BuildReport("Backwards", p)

	out, err := ConsoleFormatter{Locale: DefaultLocale()}.Format(&report)
	require.NoError(t, err)
	assert.Contains(t, string(out), "No months simulated")
	assert.NotContains(t, string(out), "Year by Year")
}

func TestConsoleFormatter_Sections(t *testing.T) {
	engine := calculation.NewProjectionEngine()
	report := buildTestReport()
	report.WhatIfs = engine.WhatIfs(report.Parameters)
	sweep, err := engine.Sweep(report.Parameters, domain.SensitivityParameter{Name: "interest_rate", Min: 6, Max: 12, Steps: 4})
	require.NoError(t, err)
	report.Sweep = sweep

	out, err := ConsoleFormatter{Locale: DefaultLocale()}.Format(report)
	require.NoError(t, err)
	content := string(out)
	assert.Contains(t, content, "What If")
	assert.Contains(t, content, "Contributions 50% higher")
	assert.Contains(t, content, "Contribution needed to reach $1,000,000.00 in 10 years")
	assert.Contains(t, content, "Sensitivity: interest_rate from 6.00 to 12.00")
	assert.Contains(t, content, "elasticity")
}

func TestConsoleFormatter_Comparison(t *testing.T) {
	out, err := ConsoleFormatter{Locale: DefaultLocale()}.Format(buildTestComparison(t))
	require.NoError(t, err)
	content := string(out)
	assert.Contains(t, content, "Scenario Comparison")
	assert.Contains(t, content, "Highest final value")
	assert.Contains(t, content, "B-Fast")
	assert.NotContains(t, content, "Parameters")
}

func TestCSVSummarizer_SingleProjection(t *testing.T) {
	out, err := CSVSummarizer{}.Format(buildTestReport())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	row := records[1]
	assert.Equal(t, "Plan", row[0])
	assert.Equal(t, "142023.50", row[1])
	assert.Equal(t, "70000.00", row[3])
	assert.Equal(t, "72023.50", row[4])
	assert.Equal(t, "10.0000", row[5])
	assert.Equal(t, "120", row[6])
	assert.Equal(t, "1500000.00", row[9])
}

func TestCSVSummarizerDeterministicOrder(t *testing.T) {
	out, err := CSVSummarizer{}.Format(buildTestComparison(t))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "A-Slow,"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "B-Fast,"), lines[2])
}

func TestCSVSummarizer_Sweep(t *testing.T) {
	report := buildTestReport()
	sweep, err := calculation.NewProjectionEngine().Sweep(report.Parameters, domain.SensitivityParameter{Name: "monthly_contribution", Min: 100, Max: 500, Steps: 5})
	require.NoError(t, err)
	report.Sweep = sweep

	out, err := CSVSummarizer{}.Format(report)
	require.NoError(t, err)
	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6)
	assert.Equal(t, "Parameter", records[0][0])
	assert.Equal(t, []string{"monthly_contribution", "100.0000"}, records[1][:2])
	assert.Equal(t, "142023.50", records[5][2])
}

func TestCSVDetailedExporter(t *testing.T) {
	out, err := CSVDetailedExporter{}.Format(buildTestReport())
	require.NoError(t, err)
	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 122)
	assert.Equal(t, []string{"Plan", "0", "0.0000", "10000.00", "10000.00", "10000.00", "0.00"}, records[1])
	assert.Equal(t, "120", records[121][1])
	assert.Equal(t, "142023.50", records[121][3])

	out, err = CSVDetailedExporter{}.Format(buildTestComparison(t))
	require.NoError(t, err)
	records, err = csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+2*121)
	assert.Equal(t, "A-Slow", records[1][0])
	assert.Equal(t, "B-Fast", records[122][0])
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestReport())
	require.NoError(t, err)

	var decoded domain.Report
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "Plan", decoded.Title)
	assert.Len(t, decoded.Result.Data, 121)
	assert.Contains(t, string(out), `"finalValue"`)
	assert.NotContains(t, string(out), `"whatIfs"`)
}

func TestYAMLFormatter(t *testing.T) {
	out, err := YAMLFormatter{}.Format(buildTestReport())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	result, ok := decoded["result"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 142023.50, result["final_value"], 0.01)
	assert.Contains(t, string(out), "simulated_months: 120")
}

func TestHTMLFormatter(t *testing.T) {
	fixedClock(t)
	out, err := HTMLFormatter{Locale: DefaultLocale()}.Format(buildTestReport())
	require.NoError(t, err)
	content := string(out)
	assert.Contains(t, content, `<html lang="en-US">`)
	assert.Contains(t, content, "<title>Plan</title>")
	assert.Contains(t, content, "Generated 2025-03-14 09:30")
	assert.Contains(t, content, "<svg")
	assert.Equal(t, 3, strings.Count(content, "<polyline"))
	assert.Contains(t, content, "$142,023.50")
	assert.Contains(t, content, "Year by Year")
}

func TestHTMLFormatter_EscapesTitle(t *testing.T) {
	report := buildTestReport()
	report.Title = "<script>alert(1)</script>"
	out, err := HTMLFormatter{Locale: DefaultLocale()}.Format(report)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>")
}

func TestPDFFormatter(t *testing.T) {
	fixedClock(t)
	engine := calculation.NewProjectionEngine()
	report := buildTestReport()
	report.WhatIfs = engine.WhatIfs(report.Parameters)

	out, err := PDFFormatter{Locale: LocaleFor("pt-BR")}.Format(report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Greater(t, len(out), 1000)

	out, err = PDFFormatter{Locale: DefaultLocale()}.Format(buildTestComparison(t))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

// Golden snapshot tests (prefix-based) ensure key headers remain stable.
func TestGoldenSnapshots(t *testing.T) {
	cases := []struct {
		name      string
		golden    string
		formatter Formatter
	}{
		{"csv_summary", "csv_summary.golden", CSVSummarizer{}},
		{"csv_detailed", "csv_detailed.golden", CSVDetailedExporter{}},
		{"html", "html_prefix.golden", HTMLFormatter{Locale: DefaultLocale()}},
		{"yaml", "yaml_prefix.golden", YAMLFormatter{}},
		{"json", "json_prefix.golden", JSONFormatter{}},
	}

	report := buildTestReport()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := tc.formatter.Format(report)
			require.NoError(t, err)
			data, err := os.ReadFile(filepath.Join("testdata", tc.golden))
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(out), strings.TrimSpace(string(data))),
				"output does not match golden prefix %q", strings.TrimSpace(string(data)))
		})
	}
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"console", "console"},
		{" TABLE ", "console"},
		{"csv", "csv"},
		{"csv-detailed", "detailed-csv"},
		{"monthly-csv", "detailed-csv"},
		{"json-pretty", "json"},
		{"yml", "yaml"},
		{"html-report", "html"},
		{"pdf", "pdf"},
		{"verbose", "console-verbose"},
	}
	for _, tt := range tests {
		f, err := GetFormatterByName(tt.in, DefaultLocale())
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, f.Name())
	}

	f, err := GetFormatterByName("docx", DefaultLocale())
	assert.Nil(t, f)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "console, console-verbose, csv, detailed-csv, html, json, pdf, yaml")
}

func TestGetFormatterByName_CarriesLocale(t *testing.T) {
	f, err := GetFormatterByName("console", LocaleFor("pt"))
	require.NoError(t, err)
	out, err := f.Format(buildTestReport())
	require.NoError(t, err)
	assert.Contains(t, string(out), "R$ 10.000,00")
}

func TestAvailableFormatAliases(t *testing.T) {
	aliases := AvailableFormatAliases()
	assert.IsIncreasing(t, aliases)
	assert.Contains(t, aliases, "yml")
}

func TestFormatterFunc(t *testing.T) {
	f := FormatterFunc{ID: "title", F: func(r *domain.Report) ([]byte, error) { return []byte(r.Title), nil }}
	out, err := f.Format(buildTestReport())
	require.NoError(t, err)
	assert.Equal(t, "Plan", string(out))
	assert.Equal(t, "title", f.Name())
}

func TestWriteFormatted(t *testing.T) {
	report := buildTestReport()

	var stdout bytes.Buffer
	dest, err := WriteFormatted(JSONFormatter{}, report, "-", &stdout)
	require.NoError(t, err)
	assert.Equal(t, "stdout", dest)
	assert.True(t, strings.HasPrefix(stdout.String(), "{"))

	path := filepath.Join(t.TempDir(), "report.csv")
	dest, err = WriteFormatted(CSVSummarizer{}, report, path, &stdout)
	require.NoError(t, err)
	assert.Equal(t, path, dest)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Scenario,"))

	failing := FormatterFunc{ID: "broken", F: func(*domain.Report) ([]byte, error) { return nil, assert.AnError }}
	_, err = WriteFormatted(failing, report, "", &stdout)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestReportFilename(t *testing.T) {
	fixedClock(t)
	assert.Equal(t, "compound_report_20250314_093000.pdf", ReportFilename(PDFFormatter{}))
	assert.Equal(t, "compound_report_20250314_093000.csv", ReportFilename(CSVDetailedExporter{}))
	assert.Equal(t, "compound_report_20250314_093000.txt", ReportFilename(FormatterFunc{ID: "custom"}))
}
