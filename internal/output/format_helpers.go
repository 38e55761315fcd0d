package output

import (
	"strconv"

	"github.com/rpgo/compound-calculator/pkg/decimal"
)

// money renders an amount for machine-readable outputs: cents, no grouping.
func money(v float64) string { return decimal.NewMoney(v).Round().String() }

// formatFloat renders v with a fixed number of decimals and no grouping.
func formatFloat(v float64, places int32) string {
	return decimal.NewMoney(v).Decimal.StringFixed(places)
}

func intToString(i int) string { return strconv.Itoa(i) }
