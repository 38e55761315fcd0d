package timeutil

import (
	"fmt"
	"math"
)

// Units holds the words used to spell out a duration.
type Units struct {
	Year, Years   string
	Month, Months string
	And           string
}

var (
	// English spells durations as "2 years and 3 months".
	English = Units{Year: "year", Years: "years", Month: "month", Months: "months", And: "and"}
	// Portuguese spells durations as "2 anos e 3 meses".
	Portuguese = Units{Year: "ano", Years: "anos", Month: "mês", Months: "meses", And: "e"}
)

// Breakdown splits fractional years into whole years and rounded months.
// Twelve rounded months carry into the year count. Non-finite or negative
// input yields zero.
func Breakdown(years float64) (wholeYears, months int) {
	if math.IsNaN(years) || math.IsInf(years, 0) || years <= 0 {
		return 0, 0
	}
	whole := math.Floor(years)
	m := int(math.Round((years - whole) * 12))
	if m == 12 {
		return int(whole) + 1, 0
	}
	return int(whole), m
}

// Describe renders years as "N years and M months", dropping a zero part.
// A duration that rounds to nothing renders as "0 months".
func Describe(years float64, u Units) string {
	y, m := Breakdown(years)
	switch {
	case y == 0:
		return plural(m, u.Month, u.Months)
	case m == 0:
		return plural(y, u.Year, u.Years)
	default:
		return fmt.Sprintf("%s %s %s", plural(y, u.Year, u.Years), u.And, plural(m, u.Month, u.Months))
	}
}

// Compact renders years as "2y 3m", the short form used in tables.
func Compact(years float64) string {
	y, m := Breakdown(years)
	switch {
	case y == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dy", y)
	default:
		return fmt.Sprintf("%dy %dm", y, m)
	}
}

// MonthsToYears converts a month count to fractional years.
func MonthsToYears(months int) float64 {
	return float64(months) / 12
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
