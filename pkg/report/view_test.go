package report

import (
	"reflect"
	"testing"
)

func sampleDashboard() *Dashboard {
	return &Dashboard{
		Units: []string{"A", "B"},
		Overall: Summary{
			Revenue: 150, COGS: 10, Expenses: 70, Profit: 70, Margin: 46.67,
			ExpenseBreakdown: map[string]float64{"Rent": 40, "Travel": 15, "Fees": 15, "Refund": -5, "Wages": 5},
		},
		ByUnit: map[string]Summary{
			"A": {
				Revenue: 100, Expenses: 120, Profit: -20, Margin: -20,
				ExpenseBreakdown: map[string]float64{"Rent": 40, "Wages": 80},
			},
			"B": {
				Revenue: 50, COGS: 10, Profit: 40, Margin: 80,
				ExpenseBreakdown: map[string]float64{},
			},
		},
	}
}

func TestDeriveViewOverall(t *testing.T) {
	d := sampleDashboard()

	v := DeriveView(d, OverallKey)

	if v.Key != OverallKey {
		t.Errorf("Key = %q, want %q", v.Key, OverallKey)
	}
	if !v.ShowComparison {
		t.Error("ShowComparison = false, want true for Overall")
	}
	if !v.ProfitPositive {
		t.Error("ProfitPositive = false, want true")
	}

	wantExpenses := []ExpenseLine{
		{"Rent", 40},
		{"Fees", 15}, // tie with Travel, account name ascending
		{"Travel", 15},
		{"Wages", 5},
		{"Refund", -5},
	}
	if !reflect.DeepEqual(v.Expenses, wantExpenses) {
		t.Errorf("Expenses = %v, want %v", v.Expenses, wantExpenses)
	}

	wantComparison := []ComparisonRow{
		{Unit: "A", Revenue: 100, Profit: -20, Margin: -20},
		{Unit: "B", Revenue: 50, Profit: 40, Margin: 80},
	}
	if !reflect.DeepEqual(v.Comparison, wantComparison) {
		t.Errorf("Comparison = %v, want %v", v.Comparison, wantComparison)
	}
}

func TestDeriveViewUnit(t *testing.T) {
	d := sampleDashboard()

	v := DeriveView(d, "A")

	if v.Key != "A" {
		t.Errorf("Key = %q, want A", v.Key)
	}
	if v.ShowComparison || v.Comparison != nil {
		t.Errorf("comparison should be hidden for a unit, got %v", v.Comparison)
	}
	if v.ProfitPositive {
		t.Error("ProfitPositive = true, want false for negative profit")
	}
	if v.Summary.Revenue != 100 {
		t.Errorf("Summary.Revenue = %v, want 100", v.Summary.Revenue)
	}
	want := []ExpenseLine{{"Wages", 80}, {"Rent", 40}}
	if !reflect.DeepEqual(v.Expenses, want) {
		t.Errorf("Expenses = %v, want %v", v.Expenses, want)
	}

	if b := DeriveView(d, "B"); len(b.Expenses) != 0 || !b.ProfitPositive {
		t.Errorf("DeriveView(B) = %+v", b)
	}
}

func TestDeriveViewZeroProfitIsPositive(t *testing.T) {
	d := &Dashboard{
		Units:   []string{},
		Overall: Summary{ExpenseBreakdown: map[string]float64{}},
		ByUnit:  map[string]Summary{},
	}
	if v := DeriveView(d, OverallKey); !v.ProfitPositive {
		t.Error("ProfitPositive = false for zero profit, want true")
	}
}

func TestDeriveViewUnknownKeyFallsBackToOverall(t *testing.T) {
	d := sampleDashboard()

	v := DeriveView(d, "Nowhere")

	if v.Key != OverallKey || !v.ShowComparison {
		t.Errorf("DeriveView(unknown) = key %q, comparison %v", v.Key, v.ShowComparison)
	}
	if v.Summary.Revenue != d.Overall.Revenue {
		t.Errorf("Summary.Revenue = %v, want overall %v", v.Summary.Revenue, d.Overall.Revenue)
	}
}
