package v1

import (
	"net/http"
	"strconv"

	"github.com/crewdesk/crewdesk/internal/api/dto"
	ierr "github.com/crewdesk/crewdesk/internal/errors"
	"github.com/crewdesk/crewdesk/internal/logger"
	"github.com/crewdesk/crewdesk/internal/service"
	"github.com/gin-gonic/gin"
)

type DraftHandler struct {
	draftService service.DraftService
	logger       *logger.Logger
}

func NewDraftHandler(draftService service.DraftService, logger *logger.Logger) *DraftHandler {
	return &DraftHandler{
		draftService: draftService,
		logger:       logger,
	}
}

// CreateDraft godoc
// @Summary Open a new invoice draft
// @Description Start an editing session with a single blank line item
// @Tags Drafts
// @Accept json
// @Produce json
// @Param draft body dto.CreateDraftRequest true "Draft header fields"
// @Success 201 {object} dto.DraftResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /drafts [post]
func (h *DraftHandler) CreateDraft(c *gin.Context) {
	var req dto.CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorw("failed to bind request", "error", err)
		c.Error(ierr.WithError(err).WithHint("invalid request").Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.draftService.CreateDraft(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetDraft godoc
// @Summary Get a draft by ID
// @Description Current draft state with items and derived totals
// @Tags Drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} dto.DraftResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /drafts/{id} [get]
func (h *DraftHandler) GetDraft(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("invalid draft id").Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.draftService.GetDraft(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateDraft godoc
// @Summary Update draft header fields
// @Tags Drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param draft body dto.UpdateDraftRequest true "Header fields"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /drafts/{id} [put]
func (h *DraftHandler) UpdateDraft(c *gin.Context) {
	var req dto.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).WithHint("invalid request").Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.draftService.UpdateDraft(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AddItem godoc
// @Summary Append a blank line item
// @Tags Drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} dto.DraftResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /drafts/{id}/items [post]
func (h *DraftHandler) AddItem(c *gin.Context) {
	resp, err := h.draftService.AddItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RemoveItem godoc
// @Summary Remove the line item at index
// @Description Removing the last remaining item is a no-op
// @Tags Drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Param index path int true "Item index"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /drafts/{id}/items/{index} [delete]
func (h *DraftHandler) RemoveItem(c *gin.Context) {
	index, err := h.itemIndex(c)
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.draftService.RemoveItem(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateItem godoc
// @Summary Edit one line item
// @Description Quantity and rate are raw text and are coerced; the derived amount and invoice totals are recomputed synchronously
// @Tags Drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param index path int true "Item index"
// @Param item body dto.UpdateLineItemRequest true "Fields to update"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /drafts/{id}/items/{index} [patch]
func (h *DraftHandler) UpdateItem(c *gin.Context) {
	index, err := h.itemIndex(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req dto.UpdateLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).WithHint("invalid request").Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.draftService.UpdateItem(c.Request.Context(), c.Param("id"), index, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SelectServiceRequest godoc
// @Summary Seed the draft from a service request
// @Description Replaces the whole item collection with one item priced from the catalog; fails closed when the selection cannot be resolved
// @Tags Drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param selection body dto.SelectServiceRequest true "Service request selection"
// @Success 200 {object} dto.DraftResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Router /drafts/{id}/service-request [put]
func (h *DraftHandler) SelectServiceRequest(c *gin.Context) {
	var req dto.SelectServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).WithHint("invalid request").Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.draftService.SelectServiceRequest(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SubmitDraft godoc
// @Summary Submit the draft to the invoicing endpoint
// @Description Validates, assembles the payload with rederived amounts and posts it upstream; the draft is kept unchanged on failure
// @Tags Drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} dto.SubmitDraftResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 502 {object} ierr.ErrorResponse
// @Router /drafts/{id}/submit [post]
func (h *DraftHandler) SubmitDraft(c *gin.Context) {
	resp, err := h.draftService.SubmitDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *DraftHandler) itemIndex(c *gin.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("item index must be an integer").
			Mark(ierr.ErrValidation)
	}
	return index, nil
}
