package models

import "testing"

func TestLineItemInputValid(t *testing.T) {
	cases := []struct {
		name string
		li   LineItemInput
		want bool
	}{
		{"ok", LineItemInput{ProductName: "Brake Pads", Quantity: 1, UnitPrice: 9.99}, true},
		{"free item ok", LineItemInput{ProductName: "Sticker", Quantity: 1, UnitPrice: 0}, true},
		{"empty name", LineItemInput{ProductName: "", Quantity: 1, UnitPrice: 1}, false},
		{"blank name", LineItemInput{ProductName: "  ", Quantity: 1, UnitPrice: 1}, false},
		{"zero quantity", LineItemInput{ProductName: "X", Quantity: 0, UnitPrice: 1}, false},
		{"negative quantity", LineItemInput{ProductName: "X", Quantity: -2, UnitPrice: 1}, false},
		{"negative price", LineItemInput{ProductName: "X", Quantity: 1, UnitPrice: -1}, false},
	}
	for _, tc := range cases {
		if got := tc.li.Valid(); got != tc.want {
			t.Fatalf("%s: Valid() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestValidLineItemsKeepsOrder(t *testing.T) {
	in := InvoiceInput{
		CustomerID: 1,
		LineItems: []LineItemInput{
			{ProductName: "A", Quantity: 1, UnitPrice: 1},
			{ProductName: "", Quantity: 1, UnitPrice: 1},
			{ProductName: "B", Quantity: 1, UnitPrice: 1},
		},
	}
	got := in.ValidLineItems()
	if len(got) != 2 || got[0].ProductName != "A" || got[1].ProductName != "B" {
		t.Fatalf("ValidLineItems() = %+v, want [A B] in order", got)
	}
}

func TestInvoiceStatusValid(t *testing.T) {
	if !StatusPaid.Valid() || !StatusUnpaid.Valid() {
		t.Fatal("paid/unpaid must be valid")
	}
	if InvoiceStatus("overdue").Valid() || InvoiceStatus("").Valid() {
		t.Fatal("unknown statuses must be invalid")
	}
}
