package output

import (
	"fmt"
	"strings"

	"github.com/rpgo/compound-calculator/internal/domain"
)

// svgChart is a precomputed line chart of the yearly snapshots.
type svgChart struct {
	Width, Height int
	Nominal       string
	Real          string
	Invested      string
	YTicks        []chartTick
	XTicks        []chartTick
}

type chartTick struct {
	Pos   float64
	Label string
}

const (
	chartWidth   = 720
	chartHeight  = 320
	chartPadLeft = 90
	chartPadBot  = 30
	chartPadTop  = 10
)

// buildChart scales the nominal, real and invested series into SVG polyline points.
// It returns nil when there is nothing to draw.
func buildChart(loc Locale, snaps []domain.YearlySnapshot) *svgChart {
	if len(snaps) < 2 {
		return nil
	}
	top := 0.0
	for _, s := range snaps {
		top = max(top, s.NominalValue, s.RealValue, s.TotalContributions)
	}
	if top <= 0 {
		top = 1
	}
	lastMonth := float64(snaps[len(snaps)-1].Month)
	if lastMonth <= 0 {
		lastMonth = 1
	}

	plotW := float64(chartWidth - chartPadLeft - 10)
	plotH := float64(chartHeight - chartPadBot - chartPadTop)
	x := func(month int) float64 { return chartPadLeft + float64(month)/lastMonth*plotW }
	y := func(v float64) float64 { return chartPadTop + plotH - max(v, 0)/top*plotH }

	line := func(value func(domain.YearlySnapshot) float64) string {
		pts := make([]string, len(snaps))
		for i, s := range snaps {
			pts[i] = fmt.Sprintf("%.1f,%.1f", x(s.Month), y(value(s)))
		}
		return strings.Join(pts, " ")
	}

	c := &svgChart{
		Width:    chartWidth,
		Height:   chartHeight,
		Nominal:  line(func(s domain.YearlySnapshot) float64 { return s.NominalValue }),
		Real:     line(func(s domain.YearlySnapshot) float64 { return s.RealValue }),
		Invested: line(func(s domain.YearlySnapshot) float64 { return s.TotalContributions }),
	}
	for i := 0; i <= 4; i++ {
		v := top * float64(i) / 4
		c.YTicks = append(c.YTicks, chartTick{Pos: y(v), Label: loc.Money(v)})
	}
	step := max(len(snaps)/8, 1)
	for i := 0; i < len(snaps); i += step {
		c.XTicks = append(c.XTicks, chartTick{Pos: x(snaps[i].Month), Label: fmt.Sprintf("%d", snaps[i].Year)})
	}
	return c
}
