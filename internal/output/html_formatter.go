package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rpgo/compound-calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with an inline SVG chart.
type HTMLFormatter struct {
	Locale Locale
}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Parse(htmlTemplateSource))

type htmlRow struct {
	Cells []string
}

type htmlTable struct {
	Title   string
	Headers []string
	Rows    []htmlRow
}

func newHTMLTable(title string, headers []string, cells [][]string) htmlTable {
	t := htmlTable{Title: title, Headers: headers}
	for _, c := range cells {
		t.Rows = append(t.Rows, htmlRow{Cells: c})
	}
	return t
}

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	loc := h.Locale
	title := report.Title
	if title == "" {
		title = "Compound Interest Projection"
	}

	var tables []htmlTable
	var chart *svgChart
	if hasProjection(report) {
		tables = append(tables,
			newHTMLTable("Parameters", nil, rowsToCells(parameterRows(loc, report.Parameters))),
			newHTMLTable("Results", nil, rowsToCells(resultRows(loc, report.Result))),
			newHTMLTable("Goals", nil, rowsToCells(goalRows(loc, report.Parameters, report.Result))),
			newHTMLTable("Performance", nil, rowsToCells(indicatorRows(loc, report.Indicators))),
		)
		chart = buildChart(loc, report.Yearly)
	}
	if report.WhatIfs != nil {
		tables = append(tables, newHTMLTable("What If", whatIfHeaders, whatIfRows(loc, report.WhatIfs)))
	}
	if report.Sweep != nil {
		tables = append(tables, newHTMLTable("Sensitivity: "+report.Sweep.Parameter.Name, sweepHeaders, sweepRows(loc, report.Sweep)))
	}
	if report.Comparison != nil {
		tables = append(tables,
			newHTMLTable("Scenario Comparison", comparisonHeaders, comparisonRows(loc, report.Comparison)),
			newHTMLTable("Highlights", nil, rowsToCells(comparisonHighlights(report.Comparison))),
		)
	}
	var yearly *htmlTable
	if hasProjection(report) && len(report.Yearly) > 0 {
		t := newHTMLTable("Year by Year", yearlyHeaders, yearlyRows(loc, report.Yearly))
		yearly = &t
	}

	data := struct {
		Title       string
		Lang        string
		GeneratedAt string
		Tables      []htmlTable
		Chart       *svgChart
		Yearly      *htmlTable
		Assumptions []string
	}{
		Title:       title,
		Lang:        loc.printerTag(),
		GeneratedAt: nowFunc().Format("2006-01-02 15:04"),
		Tables:      tables,
		Chart:       chart,
		Yearly:      yearly,
	}
	if hasProjection(report) {
		data.Assumptions = GenerateAssumptions(loc, report.Parameters)
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
