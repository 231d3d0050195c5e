package draft

import (
	"time"

	"github.com/crewdesk/crewdesk/internal/types"
	"github.com/shopspring/decimal"
)

// Draft is the in-memory, not-yet-submitted invoice being edited.
// A draft always carries at least one line item.
//
// Draft values are immutable: every operation returns a new Draft with
// the items slice copied on write and the totals rederived, so a state
// read never observes a half-applied edit.
type Draft struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`

	// SessionID binds the draft to the editing session that opened it.
	// Empty means unbound; never serialized back to clients.
	SessionID string `json:"-"`

	ServiceRequestID string     `json:"service_request_id,omitempty"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	PaymentTerms     string     `json:"payment_terms,omitempty"`
	Currency         string     `json:"currency,omitempty"`
	Notes            string     `json:"notes,omitempty"`

	TaxRate decimal.Decimal `json:"tax_rate"`
	Items   []LineItem      `json:"items"`
	Totals  Totals          `json:"totals"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New creates a draft for a fresh editing session with a single blank
// line item.
func New() Draft {
	now := time.Now().UTC()
	d := Draft{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DRAFT),
		Reference: types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_DRAFT),
		TaxRate:   DefaultTaxRate,
		Items:     []LineItem{NewLineItem()},
		CreatedAt: now,
		UpdatedAt: now,
	}
	return d.recalculated()
}

// AddItem appends a blank line item. Always succeeds; there is no
// upper bound on item count.
func (d Draft) AddItem() Draft {
	d.Items = append(d.copyItems(), NewLineItem())
	return d.recalculated()
}

// RemoveItem removes the item at index. Removing the last remaining
// item is a no-op: a draft never drops below one item. Out-of-range
// indices are rejected.
func (d Draft) RemoveItem(index int) (Draft, error) {
	if index < 0 || index >= len(d.Items) {
		return d, ErrItemIndexOutOfRange
	}
	if len(d.Items) == 1 {
		return d, nil
	}

	items := d.copyItems()
	d.Items = append(items[:index], items[index+1:]...)
	return d.recalculated(), nil
}

// SetDescription replaces the description of the item at index.
func (d Draft) SetDescription(index int, text string) (Draft, error) {
	if index < 0 || index >= len(d.Items) {
		return d, ErrItemIndexOutOfRange
	}

	items := d.copyItems()
	items[index].Description = text
	d.Items = items
	return d.recalculated(), nil
}

// SetQuantity parses raw input and stores the coerced quantity on the
// item at index. Non-numeric or negative input coerces to zero; the
// stored value is the normalized one, not the raw text.
func (d Draft) SetQuantity(index int, raw string) (Draft, error) {
	if index < 0 || index >= len(d.Items) {
		return d, ErrItemIndexOutOfRange
	}

	items := d.copyItems()
	items[index].Quantity = ParseMoneyInput(raw)
	items[index] = items[index].recalculated()
	d.Items = items
	return d.recalculated(), nil
}

// SetRate parses raw input and stores the coerced unit rate on the
// item at index. Coercion rules match SetQuantity.
func (d Draft) SetRate(index int, raw string) (Draft, error) {
	if index < 0 || index >= len(d.Items) {
		return d, ErrItemIndexOutOfRange
	}

	items := d.copyItems()
	items[index].Rate = ParseMoneyInput(raw)
	items[index] = items[index].recalculated()
	d.Items = items
	return d.recalculated(), nil
}

// ApplyService replaces the whole item collection with a single item
// synthesized from a resolved catalog service. This is a destructive
// overwrite of any manually entered items, and is idempotent when the
// same service request is selected again.
func (d Draft) ApplyService(serviceRequestID, serviceName string, basePrice decimal.Decimal) Draft {
	if basePrice.IsNegative() {
		basePrice = decimal.Zero
	}

	d.ServiceRequestID = serviceRequestID
	item := LineItem{
		Description: serviceName,
		Quantity:    decimal.NewFromInt(1),
		Rate:        basePrice,
	}
	d.Items = []LineItem{item.recalculated()}
	return d.recalculated()
}

// SetHeader updates the non-computational header fields. Nil fields
// are left untouched.
func (d Draft) SetHeader(dueDate *time.Time, paymentTerms, currency, notes *string) Draft {
	if dueDate != nil {
		due := dueDate.UTC()
		d.DueDate = &due
	}
	if paymentTerms != nil {
		d.PaymentTerms = *paymentTerms
	}
	if currency != nil {
		d.Currency = *currency
	}
	if notes != nil {
		d.Notes = *notes
	}
	return d.recalculated()
}

// recalculated rederives every item amount and the draft totals from
// the current items and tax rate. All mutation paths funnel through
// here so the edit path, the service selection path and the submit
// path agree on one algorithm.
func (d Draft) recalculated() Draft {
	items := d.copyItems()
	for i := range items {
		items[i] = items[i].recalculated()
	}
	d.Items = items
	d.Totals = ComputeTotals(d.Items, d.TaxRate)
	d.UpdatedAt = time.Now().UTC()
	return d
}

func (d Draft) copyItems() []LineItem {
	items := make([]LineItem, len(d.Items))
	copy(items, d.Items)
	return items
}
