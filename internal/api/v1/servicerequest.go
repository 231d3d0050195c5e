package v1

import (
	"net/http"

	"github.com/crewdesk/crewdesk/internal/logger"
	"github.com/crewdesk/crewdesk/internal/service"
	"github.com/gin-gonic/gin"
)

type ServiceRequestHandler struct {
	serviceRequestService service.ServiceRequestService
	logger                *logger.Logger
}

func NewServiceRequestHandler(serviceRequestService service.ServiceRequestService, logger *logger.Logger) *ServiceRequestHandler {
	return &ServiceRequestHandler{
		serviceRequestService: serviceRequestService,
		logger:                logger,
	}
}

// ListServiceRequests godoc
// @Summary List selectable service requests
// @Description Cached read-only view of the upstream catalog
// @Tags ServiceRequests
// @Produce json
// @Success 200 {object} dto.ListServiceRequestsResponse
// @Failure 502 {object} ierr.ErrorResponse
// @Router /service-requests [get]
func (h *ServiceRequestHandler) ListServiceRequests(c *gin.Context) {
	resp, err := h.serviceRequestService.ListServiceRequests(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list service requests", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
