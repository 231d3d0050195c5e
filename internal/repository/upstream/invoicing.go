package upstream

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/crewdesk/crewdesk/internal/config"
	"github.com/crewdesk/crewdesk/internal/domain/invoicing"
	ierr "github.com/crewdesk/crewdesk/internal/errors"
	"github.com/crewdesk/crewdesk/internal/httpclient"
	"github.com/crewdesk/crewdesk/internal/logger"
)

// InvoicingGateway posts assembled invoices to the external
// create-invoice endpoint. One request per submission, no retries: a
// failure is reported back and the caller keeps the draft for the user
// to retry.
type InvoicingGateway struct {
	client httpclient.Client
	url    string
	apiKey string
	logger *logger.Logger
}

func NewInvoicingGateway(
	client httpclient.Client,
	cfg *config.Configuration,
	log *logger.Logger,
) *InvoicingGateway {
	return &InvoicingGateway{
		client: client,
		url:    cfg.Invoicing.CreateInvoiceURL,
		apiKey: cfg.Invoicing.APIKey,
		logger: log,
	}
}

func (g *InvoicingGateway) CreateInvoice(ctx context.Context, req invoicing.CreateInvoiceRequest) (*invoicing.CreateInvoiceResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid invoice payload").
			Mark(ierr.ErrSystem)
	}

	headers := map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}
	if g.apiKey != "" {
		headers["X-API-KEY"] = g.apiKey
	}

	resp, err := g.client.Send(ctx, &httpclient.Request{
		Method:  http.MethodPost,
		URL:     g.url,
		Headers: headers,
		Body:    body,
	})
	if err != nil {
		g.logger.Errorw("invoice submission failed",
			"error", err,
			"service_request_id", req.ServiceRequestID)
		return nil, ierr.WithError(err).
			WithHint("The invoice could not be submitted, please try again").
			Mark(ierr.ErrSubmissionUpstream)
	}

	var created invoicing.CreateInvoiceResponse
	if err := json.Unmarshal(resp.Body, &created); err != nil {
		// The invoice may have been created upstream; surface the
		// decode failure rather than pretending the submit failed
		// cleanly.
		g.logger.Errorw("failed to decode create-invoice response",
			"error", err,
			"status", resp.StatusCode)
		return nil, ierr.WithError(err).
			WithHint("Invoice endpoint returned an unexpected payload").
			Mark(ierr.ErrSubmissionUpstream)
	}

	g.logger.Infow("invoice submitted",
		"invoice_id", created.ID,
		"service_request_id", req.ServiceRequestID,
		"total_amount", req.TotalAmount)

	return &created, nil
}
