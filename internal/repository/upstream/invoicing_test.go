package upstream

import (
	"context"
	"net/http"
	"testing"

	"github.com/crewdesk/crewdesk/internal/config"
	"github.com/crewdesk/crewdesk/internal/domain/invoicing"
	ierr "github.com/crewdesk/crewdesk/internal/errors"
	"github.com/crewdesk/crewdesk/internal/logger"
	"github.com/crewdesk/crewdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T) (*InvoicingGateway, *testutil.MockHTTPClient) {
	t.Helper()

	cfg := config.GetDefaultConfig()
	cfg.Invoicing.CreateInvoiceURL = "http://invoicing.test/invoices"
	cfg.Invoicing.APIKey = "test-key"

	log, err := logger.NewLogger(cfg)
	require.NoError(t, err)

	client := testutil.NewMockHTTPClient()
	return NewInvoicingGateway(client, cfg, log), client
}

func sampleRequest() invoicing.CreateInvoiceRequest {
	return invoicing.CreateInvoiceRequest{
		ServiceRequestID: "sr_01",
		DueDate:          "2026-10-01",
		PaymentTerms:     "net_30",
		Notes:            "weekly maintenance",
		Currency:         "usd",
		Items: []invoicing.LineItemPayload{
			{Description: "Deep Clean", Quantity: "1", Rate: "250", Amount: "250.00"},
		},
		Amount:      "250.00",
		TaxAmount:   "25.00",
		TotalAmount: "275.00",
	}
}

func TestInvoicingGatewayCreateInvoice(t *testing.T) {
	ctx := context.Background()
	gateway, client := newTestGateway(t)

	client.RegisterResponse("http://invoicing.test/invoices", testutil.MockResponse{
		StatusCode: http.StatusCreated,
		Body:       []byte(`{"id":"inv_42","invoice_number":"INV-0042"}`),
	})

	created, err := gateway.CreateInvoice(ctx, sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, "inv_42", created.ID)
	assert.Equal(t, "INV-0042", created.InvoiceNumber)
}

func TestInvoicingGatewayUpstreamFailure(t *testing.T) {
	ctx := context.Background()
	gateway, client := newTestGateway(t)

	client.RegisterResponse("http://invoicing.test/invoices", testutil.MockResponse{
		StatusCode: http.StatusBadGateway,
		Body:       []byte(`{"message":"upstream unavailable"}`),
	})

	_, err := gateway.CreateInvoice(ctx, sampleRequest())
	require.Error(t, err)
	assert.True(t, ierr.IsSubmissionUpstream(err))
}

func TestInvoicingGatewayMalformedResponse(t *testing.T) {
	ctx := context.Background()
	gateway, client := newTestGateway(t)

	client.RegisterResponse("http://invoicing.test/invoices", testutil.MockResponse{
		StatusCode: http.StatusOK,
		Body:       []byte(`not json`),
	})

	_, err := gateway.CreateInvoice(ctx, sampleRequest())
	require.Error(t, err)
	assert.True(t, ierr.IsSubmissionUpstream(err))
}
