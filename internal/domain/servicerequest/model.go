package servicerequest

import (
	"github.com/shopspring/decimal"
)

// Service is a catalog entry whose base price can seed a draft line item
type Service struct {
	Name      string          `json:"name"`
	BasePrice decimal.Decimal `json:"base_price"`
}

// ServiceRequest is a read-only upstream record. Only the fields the
// draft editor needs are modelled; the rest of the upstream payload is
// ignored.
type ServiceRequest struct {
	ID        string   `json:"id"`
	Reference string   `json:"reference"`
	Service   *Service `json:"service,omitempty"`
}

// Resolvable reports whether the record carries enough data to seed a
// line item. Upstream rows with a missing or malformed service block
// are not resolvable; selecting one must leave the draft untouched.
func (sr *ServiceRequest) Resolvable() bool {
	return sr != nil && sr.Service != nil && sr.Service.Name != ""
}
