package models

import "github.com/shopspring/decimal"

// DefaultTaxRate is the fractional sales-tax rate applied when the server
// has no override configured (8.25%). The server remains the source of
// truth: every stored invoice echoes the rate actually applied.
const DefaultTaxRate = 0.0825

// Totals is the derived money block of an invoice.
type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	TaxAmount float64 `json:"tax_amount"`
	Total     float64 `json:"total"`
}

// LineTotal returns quantity x unit price rounded to cents.
// Invalid lines yield 0.
func LineTotal(li LineItemInput) float64 {
	if !li.Valid() {
		return 0
	}
	v := decimal.NewFromInt(int64(li.Quantity)).Mul(decimal.NewFromFloat(li.UnitPrice))
	f, _ := v.Round(2).Float64()
	return f
}

// ComputeTotals derives subtotal, tax and total from the given line items
// at the given fractional tax rate (e.g. 0.0825 for 8.25%).
//
// Lines failing LineItemInput.Valid are excluded. The sum is commutative,
// so the result is invariant to the order of valid lines. With zero valid
// lines all totals are zero; rejecting such a submission is the caller's
// job, not this function's.
func ComputeTotals(items []LineItemInput, taxRate float64) Totals {
	subtotal := decimal.Zero
	for _, li := range items {
		if !li.Valid() {
			continue
		}
		subtotal = subtotal.Add(decimal.NewFromInt(int64(li.Quantity)).Mul(decimal.NewFromFloat(li.UnitPrice)))
	}
	tax := subtotal.Mul(decimal.NewFromFloat(taxRate)).Round(2)
	total := subtotal.Add(tax).Round(2)

	sub, _ := subtotal.Round(2).Float64()
	tx, _ := tax.Float64()
	tot, _ := total.Float64()
	return Totals{Subtotal: sub, TaxAmount: tx, Total: tot}
}
