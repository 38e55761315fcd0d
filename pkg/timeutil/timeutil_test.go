package timeutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBreakdown(t *testing.T) {
	tests := []struct {
		name       string
		years      float64
		wantYears  int
		wantMonths int
	}{
		{"whole years", 10, 10, 0},
		{"years and months", 24.8908, 24, 11},
		{"months only", 0.5, 0, 6},
		{"rounds up into next year", 2.99, 3, 0},
		{"rounds down", 31.6832, 31, 8},
		{"zero", 0, 0, 0},
		{"negative", -3, 0, 0},
		{"NaN", math.NaN(), 0, 0},
		{"infinite", math.Inf(1), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, m := Breakdown(tt.years)
			assert.Equal(t, tt.wantYears, y)
			assert.Equal(t, tt.wantMonths, m)
		})
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		years float64
		units Units
		want  string
	}{
		{24.8908, English, "24 years and 11 months"},
		{1 + 1.0/12, English, "1 year and 1 month"},
		{10, English, "10 years"},
		{1, English, "1 year"},
		{0.25, English, "3 months"},
		{0, English, "0 months"},
		{24.8908, Portuguese, "24 anos e 11 meses"},
		{1.0 / 12, Portuguese, "1 mês"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Describe(tt.years, tt.units), "years %v", tt.years)
	}
}

func TestCompact(t *testing.T) {
	assert.Equal(t, "24y 11m", Compact(24.8908))
	assert.Equal(t, "10y", Compact(10))
	assert.Equal(t, "6m", Compact(0.5))
	assert.Equal(t, "0m", Compact(-1))
}

func TestMonthsToYears(t *testing.T) {
	assert.Equal(t, 10.0, MonthsToYears(120))
	assert.InDelta(t, 24.8333, MonthsToYears(298), 1e-4)
}
