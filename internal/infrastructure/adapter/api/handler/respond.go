package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/nerdytips/internal/domain/error"
	coreport "github.com/amirhossein-jamali/nerdytips/internal/domain/port/core"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/api/middleware"
)

// fieldLogger is implemented by domain errors that carry their own context
type fieldLogger interface {
	LogFields() map[string]any
}

// respondError logs err and answers with its public status and message.
// Server-side failures are logged at error level with their cause.
func respondError(c *gin.Context, logger coreport.Logger, message string, err error) {
	status := domainerr.HTTPStatus(err)

	fields := map[string]any{
		"path":       c.Request.URL.Path,
		"request_id": c.GetString(middleware.RequestIDKey),
		"status":     status,
		"error":      err.Error(),
	}
	if userID := middleware.UserID(c); userID != "" {
		fields["user_id"] = userID
	}
	var fl fieldLogger
	if errors.As(err, &fl) {
		for k, v := range fl.LogFields() {
			fields[k] = v
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error(message, fields)
	} else {
		logger.Warn(message, fields)
	}

	_ = c.Error(err)
	c.JSON(status, dto.NewErrorResponse(err))
}

// bindJSON decodes the body into req, turning decode failures into ErrInvalidRequest
func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return fmt.Errorf("%w: malformed request body", domainerr.ErrInvalidRequest)
	}
	return nil
}
