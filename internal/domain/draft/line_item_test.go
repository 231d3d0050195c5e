package draft

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseMoneyInput(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "integer", raw: "3", expected: "3"},
		{name: "decimal", raw: "19.99", expected: "19.99"},
		{name: "leading_and_trailing_spaces", raw: "  2.5 ", expected: "2.5"},
		{name: "zero", raw: "0", expected: "0"},
		{name: "non_numeric", raw: "abc", expected: "0"},
		{name: "empty", raw: "", expected: "0"},
		{name: "whitespace_only", raw: "   ", expected: "0"},
		{name: "negative", raw: "-3", expected: "0"},
		{name: "negative_decimal", raw: "-0.01", expected: "0"},
		{name: "partial_number", raw: "12x", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseMoneyInput(tt.raw)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}

func TestNewLineItem(t *testing.T) {
	item := NewLineItem()

	assert.Empty(t, item.Description)
	assert.Equal(t, "1", item.Quantity.String())
	assert.Equal(t, "0", item.Rate.String())
	assert.Equal(t, "0.00", item.Amount.StringFixed(2))
}

func TestLineItemRawProduct(t *testing.T) {
	item := LineItem{
		Quantity: decimal.RequireFromString("3"),
		Rate:     decimal.RequireFromString("19.99"),
	}

	assert.Equal(t, "59.97", item.RawProduct().String())
}

func TestLineItemAmountRounding(t *testing.T) {
	// 2.5 * 1.333 = 3.3325, rounds half away from zero to 3.33
	item := LineItem{
		Quantity: decimal.RequireFromString("2.5"),
		Rate:     decimal.RequireFromString("1.333"),
	}
	item = item.recalculated()
	assert.Equal(t, "3.33", item.Amount.StringFixed(2))

	// 1.005 rounds up to 1.01, not down to 1.00
	item = LineItem{
		Quantity: decimal.NewFromInt(1),
		Rate:     decimal.RequireFromString("1.005"),
	}
	item = item.recalculated()
	assert.Equal(t, "1.01", item.Amount.StringFixed(2))
}
