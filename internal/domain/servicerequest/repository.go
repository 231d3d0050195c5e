package servicerequest

import (
	"context"
	"errors"
)

// ErrServiceRequestNotFound is returned when the upstream catalog has
// no record for the requested ID
var ErrServiceRequestNotFound = errors.New("service request not found")

// Repository defines read-only access to the upstream service-request
// catalog
type Repository interface {
	// Get retrieves a single service request by ID
	Get(ctx context.Context, id string) (*ServiceRequest, error)

	// List retrieves the selectable service requests
	List(ctx context.Context) ([]*ServiceRequest, error)
}
