// Package ledger provides the ledger record model and the delimited-file reader.
package ledger

import "github.com/shopspring/decimal"

// Category values that take part in the financial totals.
// Any other category is carried through but ignored by aggregation.
const (
	CategoryIncome   = "Income"
	CategoryCOGS     = "Cost of Goods Sold"
	CategoryExpenses = "Expenses"
)

// Column names expected in the source header (after whitespace trimming).
const (
	ColumnUnit     = "Company"
	ColumnCategory = "Category"
	ColumnAccount  = "Account"
	ColumnAmount   = "Amount"
)

// RequiredColumns lists the header columns every ledger file must carry.
var RequiredColumns = []string{ColumnUnit, ColumnCategory, ColumnAccount, ColumnAmount}

// Record represents one ledger line.
type Record struct {
	Unit     string          // Organizational unit (the "Company" column)
	Category string          // Income, Cost of Goods Sold, Expenses, or anything else
	Account  string          // Sub-classification, used for Expenses breakdown
	Amount   decimal.Decimal // Signed amount
	Line     int             // 1-based source line, 0 when built in memory
}

// IsKnownCategory reports whether c is one of the three aggregated categories.
func IsKnownCategory(c string) bool {
	switch c {
	case CategoryIncome, CategoryCOGS, CategoryExpenses:
		return true
	}
	return false
}
