package controllers

import (
	"os"
	"testing"
)

func TestNextInvoiceSequence(t *testing.T) {
	cases := []struct {
		last string
		want int
	}{
		{"", 1},
		{"20260831-001", 2},
		{"20260831-009", 10},
		{"20260831-123", 124},
		{"garbage", 1},
		{"20260831-", 1},
		{"20260831-abc", 1},
	}
	for _, tc := range cases {
		if got := nextInvoiceSequence(tc.last); got != tc.want {
			t.Fatalf("nextInvoiceSequence(%q) = %d, want %d", tc.last, got, tc.want)
		}
	}
}

func TestTaxRate(t *testing.T) {
	os.Unsetenv("TAX_RATE_PERCENT")
	if got := TaxRate(); got != 0.0825 {
		t.Fatalf("default TaxRate() = %v, want 0.0825", got)
	}

	os.Setenv("TAX_RATE_PERCENT", "10")
	defer os.Unsetenv("TAX_RATE_PERCENT")
	if got := TaxRate(); got != 0.10 {
		t.Fatalf("TaxRate() with override = %v, want 0.10", got)
	}

	os.Setenv("TAX_RATE_PERCENT", "not-a-number")
	if got := TaxRate(); got != 0.0825 {
		t.Fatalf("TaxRate() with bad override = %v, want default", got)
	}
}

func TestParseDate(t *testing.T) {
	if _, err := parseDate("2026-08-31"); err != nil {
		t.Fatalf("calendar date rejected: %v", err)
	}
	if _, err := parseDate("2026-08-31T12:00:00Z"); err != nil {
		t.Fatalf("RFC3339 rejected: %v", err)
	}
	if _, err := parseDate("31/08/2026"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
