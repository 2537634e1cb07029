package report

import "sort"

// OverallKey selects the organisation-wide summary in DeriveView.
const OverallKey = "Overall"

// ExpenseLine is one row of the expense table.
type ExpenseLine struct {
	Account string
	Amount  float64
}

// ComparisonRow is one row of the cross-unit comparison table.
type ComparisonRow struct {
	Unit    string
	Revenue float64
	Profit  float64
	Margin  float64
}

// View is what a dashboard shows for one selection.
type View struct {
	Key            string
	Summary        Summary
	ProfitPositive bool
	Expenses       []ExpenseLine
	ShowComparison bool
	Comparison     []ComparisonRow
}

// DeriveView computes the view for the selected key: OverallKey or a unit name.
// Unknown keys fall back to OverallKey. The embedded dashboard script mirrors
// this function, so both sides order and classify rows the same way.
func DeriveView(d *Dashboard, key string) View {
	summary, ok := d.ByUnit[key]
	if key == OverallKey || !ok {
		key = OverallKey
		summary = d.Overall
	}

	v := View{
		Key:            key,
		Summary:        summary,
		ProfitPositive: summary.Profit >= 0,
		Expenses:       SortedExpenses(summary.ExpenseBreakdown),
		ShowComparison: key == OverallKey,
	}
	if v.ShowComparison {
		v.Comparison = Comparison(d)
	}
	return v
}

// SortedExpenses returns the breakdown as lines ordered by amount descending,
// ties broken by account name ascending.
func SortedExpenses(breakdown map[string]float64) []ExpenseLine {
	lines := make([]ExpenseLine, 0, len(breakdown))
	for account, amount := range breakdown {
		lines = append(lines, ExpenseLine{Account: account, Amount: amount})
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Amount != lines[j].Amount {
			return lines[i].Amount > lines[j].Amount
		}
		return lines[i].Account < lines[j].Account
	})
	return lines
}

// Comparison returns one row per unit in the order of d.Units.
func Comparison(d *Dashboard) []ComparisonRow {
	rows := make([]ComparisonRow, 0, len(d.Units))
	for _, u := range d.Units {
		s := d.ByUnit[u]
		rows = append(rows, ComparisonRow{
			Unit:    u,
			Revenue: s.Revenue,
			Profit:  s.Profit,
			Margin:  s.Margin,
		})
	}
	return rows
}
