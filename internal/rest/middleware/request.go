package middleware

import (
	"context"

	"github.com/crewdesk/crewdesk/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func RequestIDMiddleware(c *gin.Context) {
	ctx := c.Request.Context()

	requestID := c.GetHeader(types.HeaderRequestID)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	ctx = context.WithValue(ctx, types.CtxRequestID, requestID)

	// The editing session header ties every draft operation to the one
	// session that owns the draft.
	if sessionID := c.GetHeader(types.HeaderSessionID); sessionID != "" {
		ctx = types.SetSessionID(ctx, sessionID)
	}

	c.Request = c.Request.WithContext(ctx)

	c.Header(types.HeaderRequestID, requestID)

	c.Next()
}
