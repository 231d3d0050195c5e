package service

import (
	"github.com/crewdesk/crewdesk/internal/config"
	"github.com/crewdesk/crewdesk/internal/domain/draft"
	"github.com/crewdesk/crewdesk/internal/domain/invoicing"
	"github.com/crewdesk/crewdesk/internal/domain/servicerequest"
	"github.com/crewdesk/crewdesk/internal/logger"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	// Repositories
	DraftRepo          draft.Repository
	ServiceRequestRepo servicerequest.Repository

	// External collaborators
	InvoicingGateway invoicing.Gateway
}

func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	draftRepo draft.Repository,
	serviceRequestRepo servicerequest.Repository,
	invoicingGateway invoicing.Gateway,
) ServiceParams {
	return ServiceParams{
		Logger:             logger,
		Config:             config,
		DraftRepo:          draftRepo,
		ServiceRequestRepo: serviceRequestRepo,
		InvoicingGateway:   invoicingGateway,
	}
}
