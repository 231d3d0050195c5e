package invoicing

import (
	"github.com/crewdesk/crewdesk/internal/domain/draft"
)

// LineItemPayload is one outbound invoice row. Quantity and rate are
// sent as decimal strings alongside the rederived amount.
type LineItemPayload struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Rate        string `json:"rate"`
	Amount      string `json:"amount"`
}

// CreateInvoiceRequest is the wire payload for the external
// create-invoice endpoint. All money fields are decimal strings with
// exactly two fractional digits.
type CreateInvoiceRequest struct {
	ServiceRequestID string            `json:"service_request_id"`
	DueDate          string            `json:"due_date"`
	PaymentTerms     string            `json:"payment_terms"`
	Notes            string            `json:"notes"`
	Currency         string            `json:"currency"`
	Items            []LineItemPayload `json:"items"`
	Amount           string            `json:"amount"`
	TaxAmount        string            `json:"tax_amount"`
	TotalAmount      string            `json:"total_amount"`
}

// CreateInvoiceResponse is the upstream acknowledgement
type CreateInvoiceResponse struct {
	ID            string `json:"id"`
	InvoiceNumber string `json:"invoice_number,omitempty"`
}

// NewCreateInvoiceRequest assembles the outbound payload from the
// draft. Per-item amounts and the invoice totals are rederived from
// the current quantities and rates rather than read from stored state,
// so a stale amount can never reach the wire.
func NewCreateInvoiceRequest(d draft.Draft) CreateInvoiceRequest {
	items := make([]LineItemPayload, len(d.Items))
	for i, item := range d.Items {
		items[i] = LineItemPayload{
			Description: item.Description,
			Quantity:    item.Quantity.String(),
			Rate:        item.Rate.String(),
			Amount:      item.RawProduct().Round(2).StringFixed(2),
		}
	}

	totals := draft.ComputeTotals(d.Items, d.TaxRate)

	req := CreateInvoiceRequest{
		ServiceRequestID: d.ServiceRequestID,
		PaymentTerms:     d.PaymentTerms,
		Notes:            d.Notes,
		Currency:         d.Currency,
		Items:            items,
		Amount:           totals.Subtotal.StringFixed(2),
		TaxAmount:        totals.Tax.StringFixed(2),
		TotalAmount:      totals.Total.StringFixed(2),
	}
	if d.DueDate != nil {
		req.DueDate = d.DueDate.UTC().Format("2006-01-02")
	}
	return req
}
