package render

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		value    float64
		currency string
		want     string
	}{
		{1234.5, "USD", "$1,234.50"},
		{0, "USD", "$0.00"},
		{0.295, "USD", "$0.30"},
		{40, "", "$40.00"},
		{40, "usd", "$40.00"},
		{1234.5, "XYZ", "1234.50 XYZ"},
		{1e17, "USD", "100000000000000000.00 USD"},
		{-1e17, "usd", "-100000000000000000.00 USD"},
		{9e16, "USD", "$90,000,000,000,000,000.00"},
	}

	for _, tt := range tests {
		if got := FormatMoney(tt.value, tt.currency); got != tt.want {
			t.Errorf("FormatMoney(%v, %q) = %q, want %q", tt.value, tt.currency, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{66.67, "66.67%"},
		{60, "60.00%"},
		{-12.5, "-12.50%"},
		{0, "0.00%"},
	}

	for _, tt := range tests {
		if got := FormatPercent(tt.value); got != tt.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestKnownCurrency(t *testing.T) {
	if !KnownCurrency("EUR") || !KnownCurrency("usd") {
		t.Error("KnownCurrency() rejected a valid ISO code")
	}
	if KnownCurrency("XYZ") {
		t.Error("KnownCurrency(XYZ) = true, want false")
	}
}
