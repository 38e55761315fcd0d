package output

import (
	"fmt"
	"strings"

	"github.com/rpgo/compound-calculator/pkg/decimal"
	"github.com/rpgo/compound-calculator/pkg/timeutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supportedTags = []language.Tag{
	language.AmericanEnglish,
	language.BrazilianPortuguese,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Locale controls how amounts, percentages and durations are written.
type Locale struct {
	Tag    language.Tag
	Symbol string
	Units  timeutil.Units
}

// DefaultLocale is US English with dollar amounts.
func DefaultLocale() Locale {
	return Locale{Tag: language.AmericanEnglish, Symbol: "$", Units: timeutil.English}
}

// LocaleFor resolves a BCP 47 name ("en-US", "pt-BR", "pt") to the closest
// supported locale. Unknown or empty names fall back to DefaultLocale.
func LocaleFor(name string) Locale {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultLocale()
	}
	requested, err := language.Parse(name)
	if err != nil {
		return DefaultLocale()
	}
	_, index, conf := tagMatcher.Match(requested)
	if conf == language.No {
		return DefaultLocale()
	}
	if supportedTags[index] == language.BrazilianPortuguese {
		return Locale{Tag: language.BrazilianPortuguese, Symbol: "R$", Units: timeutil.Portuguese}
	}
	return DefaultLocale()
}

// SupportedLocales lists the locale names LocaleFor recognises.
func SupportedLocales() []string {
	names := make([]string, len(supportedTags))
	for i, t := range supportedTags {
		names[i] = t.String()
	}
	return names
}

func (l Locale) printer() *message.Printer {
	if l.Tag == language.Und {
		return message.NewPrinter(language.AmericanEnglish)
	}
	return message.NewPrinter(l.Tag)
}

func (l Locale) symbol() string {
	if l.Symbol == "" {
		return "$"
	}
	return l.Symbol
}

// Money writes an amount rounded to cents with locale grouping, e.g. "$1,234.57" or "R$ 1.234,57".
func (l Locale) Money(v float64) string {
	amount := decimal.NewMoney(v).Cents()
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	sep := ""
	if l.Tag == language.BrazilianPortuguese {
		sep = " "
	}
	return sign + l.symbol() + sep + l.printer().Sprintf("%.2f", amount)
}

// Number writes v with the given decimals and locale grouping.
func (l Locale) Number(v float64, decimals int) string {
	return l.printer().Sprintf(fmt.Sprintf("%%.%df", decimals), decimal.NewMoney(v).InexactFloat64())
}

// Percent writes a percentage value (12.5 means 12.5%) with two decimals.
func (l Locale) Percent(v float64) string {
	return l.Number(v, 2) + "%"
}

// Duration writes fractional years as "N years and M months".
// Zero means the goal is unreachable or already met and renders as "n/a".
func (l Locale) Duration(years float64) string {
	if years <= 0 {
		return "n/a"
	}
	units := l.Units
	if units.Years == "" {
		units = timeutil.English
	}
	return timeutil.Describe(years, units)
}

func (l Locale) printerTag() string {
	if l.Tag == language.Und {
		return language.AmericanEnglish.String()
	}
	return l.Tag.String()
}
