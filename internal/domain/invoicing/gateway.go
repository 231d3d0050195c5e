package invoicing

import (
	"context"
)

// Gateway defines the one-shot submission to the external
// create-invoice endpoint. Implementations must not mutate the draft;
// a failed submission leaves the caller free to retry with the same
// state.
type Gateway interface {
	CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*CreateInvoiceResponse, error)
}
