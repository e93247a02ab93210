package services

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/models"
)

// Formatter turns a chart value into display text.
type Formatter func(float64) string

// FormatterFor returns the formatter registered for f. Unknown formats
// print the raw number.
func FormatterFor(f models.ValueFormat) Formatter {
	switch f {
	case models.FormatCount:
		return FormatCount
	case models.FormatCurrency:
		return FormatCurrency
	case models.FormatCurrencyThousands:
		return FormatCurrencyThousands
	case models.FormatDays:
		return FormatDays
	}
	return formatPlain
}

func printer() *message.Printer {
	return message.NewPrinter(language.English)
}

// FormatCount renders 14755 as "14,755".
func FormatCount(v float64) string {
	return printer().Sprintf("%d", int64(math.Round(v)))
}

// FormatCurrency renders 587116 as "$587,116".
func FormatCurrency(v float64) string {
	return FormatMoney(decimal.NewFromFloat(v))
}

// FormatCurrencyThousands renders 587116 as "$587k".
func FormatCurrencyThousands(v float64) string {
	return "$" + strconv.FormatInt(int64(math.Round(v/1000)), 10) + "k"
}

// FormatDays renders 42 as "42 days".
func FormatDays(v float64) string {
	return strconv.FormatInt(int64(math.Round(v)), 10) + " days"
}

// FormatMoney renders a whole-dollar amount, e.g. "$346,321".
func FormatMoney(d decimal.Decimal) string {
	return "$" + printer().Sprintf("%d", d.Round(0).IntPart())
}

func formatPlain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
