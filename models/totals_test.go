package models

import (
	"math/rand"
	"testing"
)

func TestComputeTotalsFixed(t *testing.T) {
	items := []LineItemInput{
		{ProductName: "Brake Pads", Quantity: 2, UnitPrice: 50.00},
	}
	got := ComputeTotals(items, 0.0825)
	if got.Subtotal != 100.00 {
		t.Fatalf("subtotal = %v, want 100.00", got.Subtotal)
	}
	if got.TaxAmount != 8.25 {
		t.Fatalf("tax = %v, want 8.25", got.TaxAmount)
	}
	if got.Total != 108.25 {
		t.Fatalf("total = %v, want 108.25", got.Total)
	}
}

func TestComputeTotalsEmpty(t *testing.T) {
	got := ComputeTotals(nil, 0.0825)
	if got.Subtotal != 0 || got.TaxAmount != 0 || got.Total != 0 {
		t.Fatalf("empty input should produce zero totals, got %+v", got)
	}
}

func TestComputeTotalsFiltersInvalid(t *testing.T) {
	items := []LineItemInput{
		{ProductName: "", Quantity: 3, UnitPrice: 10},           // empty name
		{ProductName: "   ", Quantity: 3, UnitPrice: 10},        // blank name
		{ProductName: "Oil Filter", Quantity: 0, UnitPrice: 10}, // zero qty
		{ProductName: "Air Filter", Quantity: -1, UnitPrice: 10},
		{ProductName: "Wiper", Quantity: 1, UnitPrice: -0.01}, // negative price
		{ProductName: "Spark Plug", Quantity: 4, UnitPrice: 6.25},
	}
	got := ComputeTotals(items, 0.0825)
	if got.Subtotal != 25.00 {
		t.Fatalf("subtotal = %v, want 25.00 (only the valid line)", got.Subtotal)
	}

	// A free line is valid: unit_price = 0 passes.
	free := []LineItemInput{{ProductName: "Freebie", Quantity: 2, UnitPrice: 0}}
	if got := ComputeTotals(free, 0.0825); got.Total != 0 {
		t.Fatalf("zero-price valid line should total 0, got %+v", got)
	}
}

func TestComputeTotalsOrderInvariant(t *testing.T) {
	items := []LineItemInput{
		{ProductName: "A", Quantity: 3, UnitPrice: 19.99},
		{ProductName: "B", Quantity: 1, UnitPrice: 250.10},
		{ProductName: "C", Quantity: 7, UnitPrice: 0.07},
		{ProductName: "", Quantity: 2, UnitPrice: 5}, // invalid, anywhere
		{ProductName: "D", Quantity: 12, UnitPrice: 3.33},
	}
	want := ComputeTotals(items, 0.0825)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]LineItemInput, len(items))
		copy(shuffled, items)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		if got := ComputeTotals(shuffled, 0.0825); got != want {
			t.Fatalf("totals changed under reordering: got %+v, want %+v", got, want)
		}
	}
}

func TestComputeTotalsNoFloatDrift(t *testing.T) {
	// 0.1+0.2 style inputs must still round cleanly to cents.
	items := []LineItemInput{
		{ProductName: "A", Quantity: 3, UnitPrice: 0.10},
		{ProductName: "B", Quantity: 1, UnitPrice: 0.20},
	}
	got := ComputeTotals(items, 0)
	if got.Subtotal != 0.50 || got.Total != 0.50 {
		t.Fatalf("expected exact 0.50, got %+v", got)
	}
}

func TestLineTotal(t *testing.T) {
	cases := []struct {
		li   LineItemInput
		want float64
	}{
		{LineItemInput{ProductName: "X", Quantity: 2, UnitPrice: 45.99}, 91.98},
		{LineItemInput{ProductName: "X", Quantity: 3, UnitPrice: 0.015}, 0.05}, // rounds up
		{LineItemInput{ProductName: "", Quantity: 2, UnitPrice: 45.99}, 0},
		{LineItemInput{ProductName: "X", Quantity: 0, UnitPrice: 45.99}, 0},
	}
	for _, tc := range cases {
		if got := LineTotal(tc.li); got != tc.want {
			t.Fatalf("LineTotal(%+v) = %v, want %v", tc.li, got, tc.want)
		}
	}
}
