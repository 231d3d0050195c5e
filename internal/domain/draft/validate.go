package draft

import (
	"fmt"
	"strings"
	"time"

	ierr "github.com/crewdesk/crewdesk/internal/errors"
)

// ValidateForSubmission checks every required non-computational field
// and every item before the draft may be sent upstream. Violations are
// collected per field so the caller can surface them all at once; a
// failing draft is never sent to the server.
func (d Draft) ValidateForSubmission(now time.Time) error {
	details := make(map[string]any)

	if d.ServiceRequestID == "" {
		details["service_request_id"] = "service request is required"
	}
	if d.PaymentTerms == "" {
		details["payment_terms"] = "payment terms are required"
	}
	if d.Currency == "" {
		details["currency"] = "currency is required"
	}
	if d.Notes == "" {
		details["notes"] = "notes are required"
	}

	if d.DueDate == nil {
		details["due_date"] = "due date is required"
	} else {
		today := now.UTC().Truncate(24 * time.Hour)
		due := d.DueDate.UTC().Truncate(24 * time.Hour)
		if due.Before(today) {
			details["due_date"] = "due date must be today or later"
		}
	}

	for i, item := range d.Items {
		if strings.TrimSpace(item.Description) == "" {
			details[fmt.Sprintf("items[%d].description", i)] = "description is required"
		}
		if !item.Quantity.IsPositive() {
			details[fmt.Sprintf("items[%d].quantity", i)] = "quantity must be greater than zero"
		}
	}

	if len(details) > 0 {
		return ierr.NewError("draft is not ready for submission").
			WithHint("Please fill in the highlighted fields").
			WithReportableDetails(details).
			Mark(ierr.ErrValidation)
	}

	return nil
}
