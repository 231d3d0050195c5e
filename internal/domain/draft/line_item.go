package draft

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LineItem is one billable row on a draft invoice. Amount is derived
// from Quantity and Rate and is never set directly.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// NewLineItem returns a blank line item with quantity 1 and rate 0
func NewLineItem() LineItem {
	item := LineItem{
		Quantity: decimal.NewFromInt(1),
		Rate:     decimal.Zero,
	}
	return item.recalculated()
}

// RawProduct returns the unrounded quantity times rate product.
// Subtotals are computed from raw products and rounded once, so that
// the reported subtotal matches a hand calculation from the displayed
// quantities and rates.
func (i LineItem) RawProduct() decimal.Decimal {
	return i.Quantity.Mul(i.Rate)
}

// recalculated returns a copy with Amount rederived from Quantity and Rate.
func (i LineItem) recalculated() LineItem {
	i.Amount = i.RawProduct().Round(2)
	return i
}

// ParseMoneyInput coerces raw user input to an effective non-negative
// decimal. Non-numeric and negative input both coerce to zero; the
// caller stores the coerced value.
func ParseMoneyInput(raw string) decimal.Decimal {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || value.IsNegative() {
		return decimal.Zero
	}
	return value
}
