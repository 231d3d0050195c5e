package main

import (
	"context"
	"time"

	"github.com/crewdesk/crewdesk/internal/api"
	v1 "github.com/crewdesk/crewdesk/internal/api/v1"
	"github.com/crewdesk/crewdesk/internal/cache"
	"github.com/crewdesk/crewdesk/internal/config"
	"github.com/crewdesk/crewdesk/internal/httpclient"
	"github.com/crewdesk/crewdesk/internal/logger"
	"github.com/crewdesk/crewdesk/internal/repository"
	"github.com/crewdesk/crewdesk/internal/service"
	"github.com/crewdesk/crewdesk/internal/validator"
	"github.com/gin-gonic/gin"
	validatorpkg "github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

// @title CrewDesk Invoice Draft API
// @version 1.0
// @description Draft editing and submission service for the CrewDesk operations console
// @BasePath /v1
// @schemes http https

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Cache
			cache.Initialize,

			// HTTP client
			provideHTTPClient,

			// Repositories
			repository.NewDraftRepository,
			repository.NewServiceRequestRepository,
			repository.NewInvoicingGateway,

			// Services
			service.NewServiceParams,
			service.NewDraftService,
			service.NewServiceRequestService,

			// API
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(startServer),
	)

	app.Run()
}

func provideHTTPClient(cfg *config.Configuration) httpclient.Client {
	return httpclient.NewClientWithTimeout(cfg.Invoicing.Timeout)
}

func provideHandlers(
	logger *logger.Logger,
	draftService service.DraftService,
	serviceRequestService service.ServiceRequestService,
) api.Handlers {
	return api.Handlers{
		Health:         v1.NewHealthHandler(logger),
		Draft:          v1.NewDraftHandler(draftService, logger),
		ServiceRequest: v1.NewServiceRequestHandler(serviceRequestService, logger),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration, logger *logger.Logger) *gin.Engine {
	return api.NewRouter(handlers, cfg, logger)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	_ *validatorpkg.Validate,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infof("Starting API server at %s", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}
