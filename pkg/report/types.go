// Package report aggregates ledger records into the dashboard data model.
package report

// Summary holds the financial totals of a record subset.
// Only Margin is rounded (to 2 decimal places); the other amounts are exact sums.
type Summary struct {
	Revenue          float64            `json:"revenue"`
	COGS             float64            `json:"cogs"`
	Expenses         float64            `json:"expenses"`
	Profit           float64            `json:"profit"`
	Margin           float64            `json:"margin"`
	ExpenseBreakdown map[string]float64 `json:"expense_breakdown"`
}

// Dashboard is the payload handed to the renderers.
// It is built once by Aggregate and never modified afterwards.
type Dashboard struct {
	Units   []string           `json:"units"`
	Overall Summary            `json:"overall"`
	ByUnit  map[string]Summary `json:"by_unit"`
}
