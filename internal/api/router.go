package api

import (
	v1 "github.com/crewdesk/crewdesk/internal/api/v1"
	"github.com/crewdesk/crewdesk/internal/config"
	"github.com/crewdesk/crewdesk/internal/logger"
	"github.com/crewdesk/crewdesk/internal/rest/middleware"
	"github.com/crewdesk/crewdesk/internal/types"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health         *v1.HealthHandler
	Draft          *v1.DraftHandler
	ServiceRequest *v1.ServiceRequestHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, logger *logger.Logger) *gin.Engine {
	if cfg.Deployment.Mode != types.ModeLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.CORSMiddleware)
	router.Use(middleware.ErrorHandler())

	router.GET("/health", handlers.Health.Health)

	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	// Draft routes
	drafts := router.Group("/drafts")
	{
		drafts.POST("", handlers.Draft.CreateDraft)
		drafts.GET("/:id", handlers.Draft.GetDraft)
		drafts.PUT("/:id", handlers.Draft.UpdateDraft)
		drafts.POST("/:id/items", handlers.Draft.AddItem)
		drafts.PATCH("/:id/items/:index", handlers.Draft.UpdateItem)
		drafts.DELETE("/:id/items/:index", handlers.Draft.RemoveItem)
		drafts.PUT("/:id/service-request", handlers.Draft.SelectServiceRequest)
		drafts.POST("/:id/submit", handlers.Draft.SubmitDraft)
	}

	// Service request routes
	serviceRequests := router.Group("/service-requests")
	{
		serviceRequests.GET("", handlers.ServiceRequest.ListServiceRequests)
	}
}
