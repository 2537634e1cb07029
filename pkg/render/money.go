package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no currency code is configured.
const DefaultCurrency = "USD"

// go-money stores amounts as int64 minor units.
var (
	maxMinorUnits = decimal.NewFromInt(math.MaxInt64)
	minMinorUnits = decimal.NewFromInt(math.MinInt64)
)

// KnownCurrency reports whether code is an ISO 4217 code known to go-money.
func KnownCurrency(code string) bool {
	return money.GetCurrency(strings.ToUpper(code)) != nil
}

// FormatMoney formats v in the given currency, e.g. "$1,234.50".
// The amount is rounded half away from zero to the currency's minor unit.
// Unknown currencies fall back to "1234.50 XYZ".
func FormatMoney(v float64, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	code := strings.ToUpper(currency)
	cur := money.GetCurrency(code)
	if cur == nil {
		return fmt.Sprintf("%.2f %s", v, currency)
	}

	minor := decimal.NewFromFloat(v).Shift(int32(cur.Fraction)).Round(0)
	if minor.GreaterThan(maxMinorUnits) || minor.LessThan(minMinorUnits) {
		return fmt.Sprintf("%.2f %s", v, code)
	}
	return money.New(minor.IntPart(), code).Display()
}

// FormatPercent formats a margin value with two decimals, e.g. "66.67%".
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "%"
}
