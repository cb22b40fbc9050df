package utils

import (
	"errors"
	"net/http"

	"nextstep-career-api/internal/ai"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	ErrorCode string      `json:"error_code"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}

// RespondWithError sends a standardized error response
func RespondWithError(c *gin.Context, statusCode int, errorCode, message string, details interface{}) {
	c.JSON(statusCode, ErrorResponse{
		ErrorCode: errorCode,
		Message:   message,
		Details:   details,
	})
}

// RespondWithBadRequest sends a 400 Bad Request error
func RespondWithBadRequest(c *gin.Context, message string, details interface{}) {
	RespondWithError(c, http.StatusBadRequest, "bad_request", message, details)
}

// RespondWithNotFound sends a 404 Not Found error
func RespondWithNotFound(c *gin.Context, message string) {
	RespondWithError(c, http.StatusNotFound, "not_found", message, nil)
}

// RespondWithInternalError sends a 500 Internal Server Error
func RespondWithInternalError(c *gin.Context, message string, details interface{}) {
	RespondWithError(c, http.StatusInternalServerError, "internal_error", message, details)
}

// RespondWithTooManyRequests sends a 429 Too Many Requests error
func RespondWithTooManyRequests(c *gin.Context, message string, details interface{}) {
	RespondWithError(c, http.StatusTooManyRequests, "rate_limit_exceeded", message, details)
}

// RespondWithGatewayError maps an AI gateway failure onto a server error.
// The error code distinguishes the taxonomy for operators; the message stays
// generic for end users.
func RespondWithGatewayError(c *gin.Context, err error) {
	code := "ai_provider_error"
	switch {
	case errors.Is(err, ai.ErrAuth):
		code = "ai_auth_error"
	case errors.Is(err, ai.ErrTimeout):
		code = "ai_timeout"
	}
	RespondWithError(c, http.StatusInternalServerError, code, "AI service unavailable", nil)
}
