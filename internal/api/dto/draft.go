package dto

import (
	"time"

	"github.com/crewdesk/crewdesk/internal/domain/draft"
	ierr "github.com/crewdesk/crewdesk/internal/errors"
	"github.com/crewdesk/crewdesk/internal/types"
	"github.com/crewdesk/crewdesk/internal/validator"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// CreateDraftRequest opens a new editing session. All header fields
// are optional here; presence is enforced at submit time only.
type CreateDraftRequest struct {
	// due_date is the date by which payment is expected
	DueDate *time.Time `json:"due_date,omitempty"`

	// payment_terms is the free-text terms label, e.g. "net_30"
	PaymentTerms string `json:"payment_terms,omitempty"`

	// currency is the three-letter ISO currency code (e.g., USD, EUR)
	Currency string `json:"currency,omitempty"`

	// notes is free text carried onto the invoice
	Notes string `json:"notes,omitempty"`
}

func (r *CreateDraftRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// UpdateDraftRequest updates header fields on an open draft. Nil
// fields are left untouched.
type UpdateDraftRequest struct {
	DueDate      *time.Time `json:"due_date,omitempty"`
	PaymentTerms *string    `json:"payment_terms,omitempty"`
	Currency     *string    `json:"currency,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
}

func (r *UpdateDraftRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// UpdateLineItemRequest edits one field of one line item. Quantity and
// rate arrive as the raw text the user typed; the engine coerces them.
type UpdateLineItemRequest struct {
	Description *string `json:"description,omitempty"`
	Quantity    *string `json:"quantity,omitempty"`
	Rate        *string `json:"rate,omitempty"`
}

func (r *UpdateLineItemRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.Description == nil && r.Quantity == nil && r.Rate == nil {
		return ierr.NewError("empty line item update").
			WithHint("Provide a description, quantity or rate to update").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// SelectServiceRequest binds a draft to a service request, replacing
// the whole item collection with one item seeded from the catalog.
type SelectServiceRequest struct {
	ServiceRequestID string `json:"service_request_id" validate:"required"`
}

func (r *SelectServiceRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// LineItemResponse is one rendered invoice row
type LineItemResponse struct {
	Description   string          `json:"description"`
	Quantity      decimal.Decimal `json:"quantity"`
	Rate          decimal.Decimal `json:"rate"`
	Amount        decimal.Decimal `json:"amount"`
	DisplayAmount string          `json:"display_amount"`
}

// TotalsResponse carries the derived invoice-level amounts, both as
// decimals and as 2-decimal display strings
type TotalsResponse struct {
	Subtotal        decimal.Decimal `json:"subtotal"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
	DisplaySubtotal string          `json:"display_subtotal"`
	DisplayTax      string          `json:"display_tax"`
	DisplayTotal    string          `json:"display_total"`
}

// DraftResponse is the full draft state returned after every operation
type DraftResponse struct {
	ID               string             `json:"id"`
	Reference        string             `json:"reference"`
	ServiceRequestID string             `json:"service_request_id,omitempty"`
	DueDate          *time.Time         `json:"due_date,omitempty"`
	PaymentTerms     string             `json:"payment_terms,omitempty"`
	Currency         string             `json:"currency,omitempty"`
	CurrencySymbol   string             `json:"currency_symbol,omitempty"`
	Notes            string             `json:"notes,omitempty"`
	TaxRate          decimal.Decimal    `json:"tax_rate"`
	Items            []LineItemResponse `json:"items"`
	Totals           TotalsResponse     `json:"totals"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// NewDraftResponse converts the domain draft to its API shape
func NewDraftResponse(d draft.Draft) *DraftResponse {
	items := lo.Map(d.Items, func(item draft.LineItem, _ int) LineItemResponse {
		return LineItemResponse{
			Description:   item.Description,
			Quantity:      item.Quantity,
			Rate:          item.Rate,
			Amount:        item.Amount,
			DisplayAmount: item.Amount.StringFixed(2),
		}
	})

	resp := &DraftResponse{
		ID:               d.ID,
		Reference:        d.Reference,
		ServiceRequestID: d.ServiceRequestID,
		DueDate:          d.DueDate,
		PaymentTerms:     d.PaymentTerms,
		Currency:         d.Currency,
		Notes:            d.Notes,
		TaxRate:          d.TaxRate,
		Items:            items,
		Totals: TotalsResponse{
			Subtotal:        d.Totals.Subtotal,
			Tax:             d.Totals.Tax,
			Total:           d.Totals.Total,
			DisplaySubtotal: d.Totals.Subtotal.StringFixed(2),
			DisplayTax:      d.Totals.Tax.StringFixed(2),
			DisplayTotal:    d.Totals.Total.StringFixed(2),
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if d.Currency != "" {
		resp.CurrencySymbol = types.GetCurrencySymbol(d.Currency)
	}
	return resp
}

// SubmitDraftResponse acknowledges a successful submission
type SubmitDraftResponse struct {
	InvoiceID     string `json:"invoice_id"`
	InvoiceNumber string `json:"invoice_number,omitempty"`
}
