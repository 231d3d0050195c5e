package repository

import (
	"github.com/crewdesk/crewdesk/internal/cache"
	"github.com/crewdesk/crewdesk/internal/config"
	"github.com/crewdesk/crewdesk/internal/domain/draft"
	"github.com/crewdesk/crewdesk/internal/domain/invoicing"
	"github.com/crewdesk/crewdesk/internal/domain/servicerequest"
	"github.com/crewdesk/crewdesk/internal/httpclient"
	"github.com/crewdesk/crewdesk/internal/logger"
	memoryRepo "github.com/crewdesk/crewdesk/internal/repository/memory"
	upstreamRepo "github.com/crewdesk/crewdesk/internal/repository/upstream"
)

func NewDraftRepository(cfg *config.Configuration, logger *logger.Logger) draft.Repository {
	return memoryRepo.NewDraftRepository(cfg.Drafts.TTL, logger)
}

func NewServiceRequestRepository(
	client httpclient.Client,
	c *cache.InMemoryCache,
	cfg *config.Configuration,
	logger *logger.Logger,
) servicerequest.Repository {
	return upstreamRepo.NewCatalogRepository(client, c, cfg, logger)
}

func NewInvoicingGateway(
	client httpclient.Client,
	cfg *config.Configuration,
	logger *logger.Logger,
) invoicing.Gateway {
	return upstreamRepo.NewInvoicingGateway(client, cfg, logger)
}
