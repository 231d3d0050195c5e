package service

import (
	"context"

	"github.com/crewdesk/crewdesk/internal/api/dto"
	"github.com/crewdesk/crewdesk/internal/domain/servicerequest"
	"github.com/samber/lo"
)

type ServiceRequestService interface {
	ListServiceRequests(ctx context.Context) (*dto.ListServiceRequestsResponse, error)
}

type serviceRequestService struct {
	ServiceParams
}

func NewServiceRequestService(params ServiceParams) ServiceRequestService {
	return &serviceRequestService{
		ServiceParams: params,
	}
}

func (s *serviceRequestService) ListServiceRequests(ctx context.Context) (*dto.ListServiceRequestsResponse, error) {
	records, err := s.ServiceRequestRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := lo.Map(records, func(sr *servicerequest.ServiceRequest, _ int) *dto.ServiceRequestResponse {
		return dto.NewServiceRequestResponse(sr)
	})

	return &dto.ListServiceRequestsResponse{
		Items: items,
		Total: len(items),
	}, nil
}
