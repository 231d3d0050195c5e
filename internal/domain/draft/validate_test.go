package draft

import (
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	ierr "github.com/crewdesk/crewdesk/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readyDraft(now time.Time) Draft {
	d := New()
	due := now.Add(48 * time.Hour)
	terms := "NET30"
	currency := "usd"
	notes := "monthly service"
	d = d.SetHeader(&due, &terms, &currency, &notes)
	d.ServiceRequestID = "sr_01"

	d, _ = d.SetDescription(0, "Deep Clean")
	d, _ = d.SetQuantity(0, "1")
	d, _ = d.SetRate(0, "250")
	return d
}

func TestValidateForSubmission(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("complete_draft_passes", func(t *testing.T) {
		d := readyDraft(now)
		assert.NoError(t, d.ValidateForSubmission(now))
	})

	t.Run("due_date_today_passes", func(t *testing.T) {
		d := readyDraft(now)
		today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		d = d.SetHeader(&today, nil, nil, nil)
		assert.NoError(t, d.ValidateForSubmission(now))
	})

	t.Run("currency_is_presence_validated_only", func(t *testing.T) {
		// any non-empty code passes; the invoicing system owns the
		// currency vocabulary, not this service
		for _, code := range []string{"chf", "nok", "XTS"} {
			d := readyDraft(now)
			currency := code
			d = d.SetHeader(nil, nil, &currency, nil)
			assert.NoError(t, d.ValidateForSubmission(now), code)
		}
	})

	tests := []struct {
		name  string
		setup func(d Draft) Draft
	}{
		{
			name: "missing_service_request",
			setup: func(d Draft) Draft {
				d.ServiceRequestID = ""
				return d
			},
		},
		{
			name: "missing_payment_terms",
			setup: func(d Draft) Draft {
				d.PaymentTerms = ""
				return d
			},
		},
		{
			name: "missing_currency",
			setup: func(d Draft) Draft {
				d.Currency = ""
				return d
			},
		},
		{
			name: "missing_notes",
			setup: func(d Draft) Draft {
				d.Notes = ""
				return d
			},
		},
		{
			name: "missing_due_date",
			setup: func(d Draft) Draft {
				d.DueDate = nil
				return d
			},
		},
		{
			name: "due_date_in_the_past",
			setup: func(d Draft) Draft {
				past := now.Add(-48 * time.Hour)
				return d.SetHeader(&past, nil, nil, nil)
			},
		},
		{
			name: "blank_item_description",
			setup: func(d Draft) Draft {
				d, _ = d.SetDescription(0, "   ")
				return d
			},
		},
		{
			name: "zero_quantity_item",
			setup: func(d Draft) Draft {
				d, _ = d.SetQuantity(0, "0")
				return d
			},
		},
		{
			name: "coerced_quantity_fails",
			setup: func(d Draft) Draft {
				d, _ = d.SetQuantity(0, "abc")
				return d
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.setup(readyDraft(now))
			err := d.ValidateForSubmission(now)
			require.Error(t, err)
			assert.True(t, ierr.IsValidation(err))
		})
	}
}

func TestValidateForSubmissionCollectsAllViolations(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	d := New()
	err := d.ValidateForSubmission(now)
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))

	var payloads []string
	for _, sdp := range errors.GetAllSafeDetails(err) {
		payloads = append(payloads, sdp.SafeDetails...)
	}
	details := strings.Join(payloads, "\n")

	// every missing field is reported, not just the first
	for _, field := range []string{"service_request_id", "payment_terms", "currency", "notes", "due_date", "items[0].description"} {
		assert.Contains(t, details, field)
	}
}
