package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "github.com/k1ngsterr1/quick-notes/internal/errors"
	"github.com/k1ngsterr1/quick-notes/internal/logger"
	"github.com/k1ngsterr1/quick-notes/internal/middleware"
	"github.com/k1ngsterr1/quick-notes/internal/models"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse represents a plain confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// parsePathID validates a record id path parameter. Ids are decimal strings.
func parsePathID(c *gin.Context, param string) (string, error) {
	id := c.Param(param)
	if !models.ValidRecordID(id) {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// errorBody converts err into the JSON error envelope and its status code.
// Unexpected errors are logged and reported as a generic internal error.
func errorBody(c *gin.Context, err error) (int, gin.H) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		logger.Get().Errorw("unexpected error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"request_id", middleware.RequestID(c),
		)
		appErr = apperrors.ErrInternalServer
	} else if appErr.Internal != nil {
		logger.Get().Errorw("app error",
			"code", appErr.Code,
			"internal", appErr.Internal.Error(),
			"path", c.Request.URL.Path,
			"request_id", middleware.RequestID(c),
		)
	}

	return appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	}
}

// respondWithError writes a consistent JSON error response.
func respondWithError(c *gin.Context, err error) {
	status, body := errorBody(c, err)
	c.JSON(status, body)
}
