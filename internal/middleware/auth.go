package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TokenClaims holds the identity extracted from a verified token
type TokenClaims struct {
	UserID uuid.UUID
}

// TokenValidator is an interface for validating bearer tokens
type TokenValidator interface {
	ValidateToken(token string) (*TokenClaims, error)
}

// ContextUserKey is the gin context key the resolved user id is stored under
const ContextUserKey = "user_id"

// BearerToken extracts the token from a request. The plain X-Auth-Token
// header wins over the Authorization header when both are present; the
// Authorization value may or may not carry a "Bearer " prefix.
func BearerToken(c *gin.Context) string {
	if token := c.GetHeader("X-Auth-Token"); token != "" {
		return token
	}
	auth := c.GetHeader("Authorization")
	if auth == "" {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}

// AuthMiddleware creates a middleware that validates bearer tokens and
// stores the resolved user id in the request context
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no token, authorization denied", "code": "unauthenticated"})
			c.Abort()
			return
		}

		claims, err := validator.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token is not valid", "code": "unauthenticated"})
			c.Abort()
			return
		}

		c.Set(ContextUserKey, claims.UserID)
		c.Next()
	}
}

// UserID returns the authenticated user id from the context.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
