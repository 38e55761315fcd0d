package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/rpgo/compound-calculator/internal/domain"
)

// CSVDetailedExporter writes the full monthly series, one row per scenario and month.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Month", "Year", "NominalValue", "RealValue", "TotalContributions", "Gains"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	type series struct {
		name string
		data []domain.ProjectionPoint
	}
	var all []series
	if report.Comparison != nil {
		for _, sc := range report.Comparison.Scenarios {
			all = append(all, series{sc.Name, sc.Result.Data})
		}
		sort.Slice(all, func(i, j int) bool { return all[i].name < all[j].name })
	} else {
		name := report.Title
		if name == "" {
			name = "Projection"
		}
		all = append(all, series{name, report.Result.Data})
	}

	for _, s := range all {
		for _, p := range s.data {
			row := []string{
				s.name,
				intToString(p.Month),
				formatFloat(p.Year, 4),
				money(p.NominalValue),
				money(p.RealValue),
				money(p.TotalContributions),
				money(p.Gains),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
