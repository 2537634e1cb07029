package report

import (
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/shunichi-ikebuchi/ledger-dashboard/pkg/ledger"
)

var hundred = decimal.NewFromInt(100)

// Aggregate builds the dashboard payload from records.
//
// Sums are accumulated as exact decimals, so the result does not depend on
// record order and repeated calls yield identical values. Records whose
// category is not Income, Cost of Goods Sold or Expenses are skipped.
func Aggregate(records []ledger.Record) *Dashboard {
	overall := newAccumulator()
	byUnit := make(map[string]*accumulator)
	ignored := 0

	for _, r := range records {
		unit, ok := byUnit[r.Unit]
		if !ok {
			unit = newAccumulator()
			byUnit[r.Unit] = unit
		}
		if !ledger.IsKnownCategory(r.Category) {
			ignored++
			continue
		}
		overall.add(r)
		unit.add(r)
	}

	units := make([]string, 0, len(byUnit))
	for u := range byUnit {
		units = append(units, u)
	}
	sort.Strings(units)

	d := &Dashboard{
		Units:   units,
		Overall: overall.summary(),
		ByUnit:  make(map[string]Summary, len(units)),
	}
	for _, u := range units {
		d.ByUnit[u] = byUnit[u].summary()
	}

	slog.Debug("Aggregated ledger",
		"records", len(records),
		"units", len(units),
		"ignored_records", ignored,
	)

	return d
}

// accumulator collects the exact sums of one record subset.
type accumulator struct {
	revenue  decimal.Decimal
	cogs     decimal.Decimal
	expenses decimal.Decimal
	accounts map[string]decimal.Decimal
}

func newAccumulator() *accumulator {
	return &accumulator{accounts: make(map[string]decimal.Decimal)}
}

func (a *accumulator) add(r ledger.Record) {
	switch r.Category {
	case ledger.CategoryIncome:
		a.revenue = a.revenue.Add(r.Amount)
	case ledger.CategoryCOGS:
		a.cogs = a.cogs.Add(r.Amount)
	case ledger.CategoryExpenses:
		a.expenses = a.expenses.Add(r.Amount)
		a.accounts[r.Account] = a.accounts[r.Account].Add(r.Amount)
	}
}

func (a *accumulator) summary() Summary {
	profit := a.revenue.Sub(a.cogs).Sub(a.expenses)

	breakdown := make(map[string]float64, len(a.accounts))
	for account, amount := range a.accounts {
		breakdown[account] = amount.InexactFloat64()
	}

	return Summary{
		Revenue:          a.revenue.InexactFloat64(),
		COGS:             a.cogs.InexactFloat64(),
		Expenses:         a.expenses.InexactFloat64(),
		Profit:           profit.InexactFloat64(),
		Margin:           margin(profit, a.revenue).InexactFloat64(),
		ExpenseBreakdown: breakdown,
	}
}

// margin returns profit as a percentage of revenue rounded to 2 places
// (half away from zero), or zero when revenue is zero.
func margin(profit, revenue decimal.Decimal) decimal.Decimal {
	if revenue.IsZero() {
		return decimal.Zero
	}
	return profit.Mul(hundred).DivRound(revenue, 2)
}
