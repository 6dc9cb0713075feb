package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the standard error response body. Every error the API
// returns carries a single human-readable detail string.
type APIError struct {
	Detail string `json:"detail"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Detail
}

// NewAPIError creates a new APIError
func NewAPIError(detail string) *APIError {
	return &APIError{Detail: detail}
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.JSON(statusCode, err)
}

// Helper functions for common error responses

// Unauthorized sends a 401 response with a Bearer challenge header.
func Unauthorized(c *gin.Context, detail string) {
	if detail == "" {
		detail = "Could not validate credentials"
	}
	c.Header("WWW-Authenticate", "Bearer")
	RespondWithError(c, http.StatusUnauthorized, NewAPIError(detail))
}

// Forbidden sends a 403 response
func Forbidden(c *gin.Context, detail string) {
	if detail == "" {
		detail = "Access denied"
	}
	RespondWithError(c, http.StatusForbidden, NewAPIError(detail))
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, detail string) {
	if detail == "" {
		detail = "Resource not found"
	}
	RespondWithError(c, http.StatusNotFound, NewAPIError(detail))
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, detail string) {
	if detail == "" {
		detail = "Invalid request"
	}
	RespondWithError(c, http.StatusBadRequest, NewAPIError(detail))
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, detail string) {
	if detail == "" {
		detail = "Internal server error"
	}
	RespondWithError(c, http.StatusInternalServerError, NewAPIError(detail))
}
