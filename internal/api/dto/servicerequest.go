package dto

import (
	"github.com/crewdesk/crewdesk/internal/domain/servicerequest"
	"github.com/shopspring/decimal"
)

// ServiceResponse is the nested catalog service of a service request
type ServiceResponse struct {
	Name      string          `json:"name"`
	BasePrice decimal.Decimal `json:"base_price"`
}

// ServiceRequestResponse is one selectable service request
type ServiceRequestResponse struct {
	ID        string           `json:"id"`
	Reference string           `json:"reference"`
	Service   *ServiceResponse `json:"service,omitempty"`
}

// ListServiceRequestsResponse wraps the selectable service requests
type ListServiceRequestsResponse struct {
	Items []*ServiceRequestResponse `json:"items"`
	Total int                       `json:"total"`
}

// NewServiceRequestResponse converts the domain record to its API shape
func NewServiceRequestResponse(sr *servicerequest.ServiceRequest) *ServiceRequestResponse {
	if sr == nil {
		return nil
	}

	resp := &ServiceRequestResponse{
		ID:        sr.ID,
		Reference: sr.Reference,
	}
	if sr.Service != nil {
		resp.Service = &ServiceResponse{
			Name:      sr.Service.Name,
			BasePrice: sr.Service.BasePrice,
		}
	}
	return resp
}
