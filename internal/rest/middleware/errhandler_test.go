package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	ierr "github.com/crewdesk/crewdesk/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performRequest(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/test", handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestErrorHandlerRendersEnvelope(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		c.Error(ierr.NewError("draft not found").
			WithHint("The draft does not exist or the editing session has expired").
			WithReportableDetails(map[string]any{"draft_id": "draft_01"}).
			Mark(ierr.ErrNotFound))
	})

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp ierr.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "The draft does not exist or the editing session has expired", resp.Error.Display)
	assert.Equal(t, "draft_01", resp.Error.Details["draft_id"])
}

func TestErrorHandlerStatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		mark     error
		expected int
	}{
		{name: "validation", mark: ierr.ErrValidation, expected: http.StatusBadRequest},
		{name: "not_found", mark: ierr.ErrNotFound, expected: http.StatusNotFound},
		{name: "service_unresolved", mark: ierr.ErrServiceUnresolved, expected: http.StatusConflict},
		{name: "submission_upstream", mark: ierr.ErrSubmissionUpstream, expected: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(func(c *gin.Context) {
				c.Error(ierr.NewError("boom").WithHint("boom").Mark(tt.mark))
			})
			assert.Equal(t, tt.expected, w.Code)
		})
	}
}

func TestErrorHandlerNoErrorsPassesThrough(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
