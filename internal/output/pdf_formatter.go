package output

import (
	"bytes"

	"github.com/go-pdf/fpdf"
	"github.com/rpgo/compound-calculator/internal/domain"
)

// PDFFormatter produces an A4 report with the summary tables and the yearly series.
type PDFFormatter struct {
	Locale Locale
}

func (p PDFFormatter) Name() string { return "pdf" }

const (
	pdfMarginLeft   = 15.0
	pdfMarginTop    = 15.0
	pdfMarginRight  = 15.0
	pdfMarginBottom = 20.0
	pdfContentWidth = 210.0 - pdfMarginLeft - pdfMarginRight
)

type pdfReport struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (p PDFFormatter) Format(report *domain.Report) ([]byte, error) {
	loc := p.Locale
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	doc.SetAutoPageBreak(true, pdfMarginBottom)
	doc.SetCreationDate(nowFunc())
	r := &pdfReport{pdf: doc, tr: doc.UnicodeTranslatorFromDescriptor("")}

	title := report.Title
	if title == "" {
		title = "Compound Interest Projection"
	}
	doc.SetTitle(title, true)
	doc.AddPage()
	doc.SetFont("Helvetica", "B", 20)
	doc.SetTextColor(0, 51, 102)
	doc.CellFormat(pdfContentWidth, 12, r.tr(title), "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(110, 110, 105)
	doc.CellFormat(pdfContentWidth, 6, "Generated "+nowFunc().Format("2 January 2006"), "", 1, "C", false, 0, "")
	doc.Ln(4)

	if hasProjection(report) {
		r.pairs("Parameters", parameterRows(loc, report.Parameters))
		r.pairs("Results", resultRows(loc, report.Result))
		r.pairs("Goals", goalRows(loc, report.Parameters, report.Result))
		r.pairs("Performance", indicatorRows(loc, report.Indicators))
		r.bullets("Assumptions", GenerateAssumptions(loc, report.Parameters))
	}
	if report.WhatIfs != nil {
		r.grid("What If", whatIfHeaders, whatIfRows(loc, report.WhatIfs))
	}
	if report.Sweep != nil {
		r.grid("Sensitivity: "+report.Sweep.Parameter.Name, sweepHeaders, sweepRows(loc, report.Sweep))
	}
	if report.Comparison != nil {
		r.grid("Scenario Comparison", comparisonHeaders, comparisonRows(loc, report.Comparison))
		r.pairs("Highlights", comparisonHighlights(report.Comparison))
	}
	if hasProjection(report) && len(report.Yearly) > 0 {
		doc.AddPage()
		r.grid("Year by Year", yearlyHeaders, yearlyRows(loc, report.Yearly))
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) heading(text string) {
	r.pdf.SetFont("Helvetica", "B", 12)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 8, r.tr(text), "", 1, "L", false, 0, "")
	r.pdf.SetTextColor(0, 0, 0)
}

// pairs draws a two-column label/value table.
func (r *pdfReport) pairs(title string, rows []row) {
	r.heading(title)
	r.pdf.SetFont("Helvetica", "", 10)
	r.pdf.SetDrawColor(200, 200, 200)
	r.pdf.SetFillColor(245, 247, 250)
	for i, row := range rows {
		fill := i%2 == 0
		r.pdf.CellFormat(pdfContentWidth*0.55, 6, r.tr(row.Label), "1", 0, "L", fill, 0, "")
		r.pdf.CellFormat(pdfContentWidth*0.45, 6, r.tr(row.Value), "1", 1, "R", fill, 0, "")
	}
	r.pdf.Ln(4)
}

func (r *pdfReport) bullets(title string, items []string) {
	r.heading(title)
	r.pdf.SetFont("Helvetica", "", 9)
	for _, item := range items {
		r.pdf.MultiCell(pdfContentWidth, 5, r.tr("- "+item), "", "L", false)
	}
	r.pdf.Ln(4)
}

// grid draws a table with a header row; the first column is left-aligned.
func (r *pdfReport) grid(title string, headers []string, rows [][]string) {
	r.heading(title)
	if len(headers) == 0 {
		return
	}
	first := pdfContentWidth * 0.28
	rest := (pdfContentWidth - first) / float64(max(len(headers)-1, 1))
	width := func(i int) float64 {
		if i == 0 {
			return first
		}
		return rest
	}

	r.pdf.SetFont("Helvetica", "B", 9)
	r.pdf.SetFillColor(230, 236, 245)
	for i, h := range headers {
		ln := 0
		if i == len(headers)-1 {
			ln = 1
		}
		r.pdf.CellFormat(width(i), 7, r.tr(h), "1", ln, "C", true, 0, "")
	}

	r.pdf.SetFont("Helvetica", "", 8)
	r.pdf.SetFillColor(245, 247, 250)
	for n, cells := range rows {
		fill := n%2 == 1
		for i := range headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			align, ln := "R", 0
			if i == 0 {
				align = "L"
			}
			if i == len(headers)-1 {
				ln = 1
			}
			r.pdf.CellFormat(width(i), 6, r.tr(cell), "1", ln, align, fill, 0, "")
		}
	}
	r.pdf.Ln(4)
}
