package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubValidator struct {
	userID uuid.UUID
	err    error
	seen   string
}

func (s *stubValidator) ValidateToken(token string) (*TokenClaims, error) {
	s.seen = token
	if s.err != nil {
		return nil, s.err
	}
	return &TokenClaims{UserID: s.userID}, nil
}

func setupAuthRouter(validator TokenValidator) (*gin.Engine, *uuid.UUID) {
	gin.SetMode(gin.TestMode)
	var captured uuid.UUID
	r := gin.New()
	r.GET("/protected", AuthMiddleware(validator), func(c *gin.Context) {
		id, ok := UserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		captured = id
		c.Status(http.StatusOK)
	})
	return r, &captured
}

func TestAuthMiddlewareXAuthToken(t *testing.T) {
	v := &stubValidator{userID: uuid.New()}
	r, captured := setupAuthRouter(v)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("X-Auth-Token", "plain-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "plain-token", v.seen)
	assert.Equal(t, v.userID, *captured)
}

func TestAuthMiddlewareXAuthTokenWinsOverAuthorization(t *testing.T) {
	v := &stubValidator{userID: uuid.New()}
	r, _ := setupAuthRouter(v)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("X-Auth-Token", "header-token")
	req.Header.Set("Authorization", "Bearer other-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "header-token", v.seen)
}

func TestAuthMiddlewareBearerPrefix(t *testing.T) {
	v := &stubValidator{userID: uuid.New()}
	r, _ := setupAuthRouter(v)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "some-token", v.seen)
}

func TestAuthMiddlewareBarAuthorization(t *testing.T) {
	v := &stubValidator{userID: uuid.New()}
	r, _ := setupAuthRouter(v)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "raw-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "raw-token", v.seen)
}

func TestAuthMiddlewareNoToken(t *testing.T) {
	v := &stubValidator{userID: uuid.New()}
	r, _ := setupAuthRouter(v)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "no token, authorization denied")
	assert.Empty(t, v.seen)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	v := &stubValidator{err: errors.New("expired")}
	r, _ := setupAuthRouter(v)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("X-Auth-Token", "stale")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token is not valid")
}
