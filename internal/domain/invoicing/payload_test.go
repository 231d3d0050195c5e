package invoicing

import (
	"testing"
	"time"

	"github.com/crewdesk/crewdesk/internal/domain/draft"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateInvoiceRequest(t *testing.T) {
	d := draft.New()
	d = d.AddItem()

	d, err := d.SetDescription(0, "Consulting")
	require.NoError(t, err)
	d, err = d.SetQuantity(0, "3")
	require.NoError(t, err)
	d, err = d.SetRate(0, "19.99")
	require.NoError(t, err)

	d, err = d.SetDescription(1, "Materials")
	require.NoError(t, err)
	d, err = d.SetQuantity(1, "2")
	require.NoError(t, err)
	d, err = d.SetRate(1, "10.00")
	require.NoError(t, err)

	due := time.Date(2026, 10, 1, 15, 30, 0, 0, time.UTC)
	terms := "net_30"
	currency := "usd"
	notes := "rush job"
	d = d.SetHeader(&due, &terms, &currency, &notes)
	d.ServiceRequestID = "sr_01"

	req := NewCreateInvoiceRequest(d)

	assert.Equal(t, "sr_01", req.ServiceRequestID)
	assert.Equal(t, "2026-10-01", req.DueDate)
	assert.Equal(t, "net_30", req.PaymentTerms)
	assert.Equal(t, "usd", req.Currency)
	assert.Equal(t, "rush job", req.Notes)

	require.Len(t, req.Items, 2)
	assert.Equal(t, "Consulting", req.Items[0].Description)
	assert.Equal(t, "3", req.Items[0].Quantity)
	assert.Equal(t, "19.99", req.Items[0].Rate)
	assert.Equal(t, "59.97", req.Items[0].Amount)
	assert.Equal(t, "20.00", req.Items[1].Amount)

	assert.Equal(t, "79.97", req.Amount)
	assert.Equal(t, "8.00", req.TaxAmount)
	assert.Equal(t, "87.97", req.TotalAmount)
}

func TestNewCreateInvoiceRequestRederivesStaleAmounts(t *testing.T) {
	d := draft.New()
	d, err := d.SetDescription(0, "Deep Clean")
	require.NoError(t, err)
	d, err = d.SetQuantity(0, "2")
	require.NoError(t, err)
	d, err = d.SetRate(0, "100")
	require.NoError(t, err)

	// Corrupt the stored amounts; the assembled payload must be derived
	// from quantity and rate, never from stored state.
	d.Items[0].Amount = decimal.RequireFromString("999999")
	d.Totals.Subtotal = decimal.RequireFromString("999999")
	d.Totals.Total = decimal.RequireFromString("999999")

	req := NewCreateInvoiceRequest(d)

	assert.Equal(t, "200.00", req.Items[0].Amount)
	assert.Equal(t, "200.00", req.Amount)
	assert.Equal(t, "20.00", req.TaxAmount)
	assert.Equal(t, "220.00", req.TotalAmount)
}

func TestNewCreateInvoiceRequestWithoutDueDate(t *testing.T) {
	d := draft.New()
	req := NewCreateInvoiceRequest(d)
	assert.Empty(t, req.DueDate)
}
