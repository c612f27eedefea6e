package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flavorshare/backend/internal/service"
)

// Machine-readable error codes. The "error" message field is the
// compatibility surface; "code" is the structured addition.
const (
	CodeUnauthenticated = "unauthenticated"
	CodeForbidden       = "forbidden"
	CodeNotFound        = "not_found"
	CodeValidation      = "validation"
	CodeUpstream        = "upstream"
	CodeInternal        = "internal"
)

// respondError maps a service error to an HTTP status, a code and a
// human-readable message. Unclassified errors collapse to a generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case service.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": CodeValidation})
	case errors.Is(err, service.ErrEmailTaken), errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": CodeValidation})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found", "code": CodeNotFound})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "user not authorized", "code": CodeForbidden})
	case errors.Is(err, service.ErrUpstream):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "code": CodeUpstream})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error", "code": CodeInternal})
	}
}
