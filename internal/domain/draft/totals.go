package draft

import (
	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the flat tax rate applied to every draft.
// It is fixed for the lifetime of a draft and not user editable.
var DefaultTaxRate = decimal.New(1, -1)

// Totals holds the derived invoice-level amounts
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeTotals derives subtotal, tax and total from the given items
// and tax rate. The subtotal sums unrounded per-item products and
// rounds once at the end; summing already-rounded line amounts can
// drift by a cent from that.
//
// The computation is pure: identical input always yields identical
// output, and a fully empty item set yields all zeros.
func ComputeTotals(items []LineItem, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.RawProduct())
	}
	subtotal = subtotal.Round(2)

	tax := subtotal.Mul(taxRate).Round(2)
	total := subtotal.Add(tax).Round(2)

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    total,
	}
}
