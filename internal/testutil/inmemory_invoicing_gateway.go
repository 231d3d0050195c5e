package testutil

import (
	"context"
	"sync"

	"github.com/crewdesk/crewdesk/internal/domain/invoicing"
	ierr "github.com/crewdesk/crewdesk/internal/errors"
)

// InMemoryInvoicingGateway implements invoicing.Gateway and records
// every submission so tests can assert whether an upstream call was
// made at all.
type InMemoryInvoicingGateway struct {
	mu       sync.Mutex
	requests []invoicing.CreateInvoiceRequest
	failNext bool
	nextID   string
}

// NewInMemoryInvoicingGateway creates a new recording gateway
func NewInMemoryInvoicingGateway() *InMemoryInvoicingGateway {
	return &InMemoryInvoicingGateway{
		nextID: "inv_test_1",
	}
}

// FailNext makes the next CreateInvoice call return an upstream error
func (g *InMemoryInvoicingGateway) FailNext() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failNext = true
}

// SetNextID sets the invoice ID returned on success
func (g *InMemoryInvoicingGateway) SetNextID(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nextID = id
}

func (g *InMemoryInvoicingGateway) CreateInvoice(ctx context.Context, req invoicing.CreateInvoiceRequest) (*invoicing.CreateInvoiceResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.failNext {
		g.failNext = false
		return nil, ierr.NewError("invoice endpoint unavailable").
			WithHint("The invoice could not be submitted, please try again").
			Mark(ierr.ErrSubmissionUpstream)
	}

	g.requests = append(g.requests, req)
	return &invoicing.CreateInvoiceResponse{
		ID:            g.nextID,
		InvoiceNumber: "INV-0001",
	}, nil
}

// Requests returns a copy of all recorded submissions
func (g *InMemoryInvoicingGateway) Requests() []invoicing.CreateInvoiceRequest {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]invoicing.CreateInvoiceRequest, len(g.requests))
	copy(out, g.requests)
	return out
}

// CallCount returns how many submissions reached the gateway
func (g *InMemoryInvoicingGateway) CallCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.requests)
}

// Clear resets the recorded submissions
func (g *InMemoryInvoicingGateway) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.requests = nil
	g.failNext = false
}
