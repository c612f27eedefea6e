package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/flavorshare/backend/internal/api"
	"github.com/flavorshare/backend/internal/mocks"
	"github.com/flavorshare/backend/internal/router"
	"github.com/flavorshare/backend/internal/service"
	"github.com/flavorshare/backend/internal/testhelpers"
)

const testJWTSecret = "test-secret-0123456789abcdef"

// testServer wires the full HTTP stack over an in-memory database, with
// the image relay mocked out.
type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	images *mocks.ImageService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	images := &mocks.ImageService{}

	authSvc := service.NewAuthService(db, testJWTSecret, 7*24*time.Hour)
	userSvc := service.NewUserService(db)
	recipeSvc := service.NewRecipeService(db, nil, nil)

	userHandler := api.NewUserHandler(authSvc, userSvc)
	recipeHandler := api.NewRecipeHandler(recipeSvc, userSvc, authSvc)
	imageHandler := api.NewImageHandler(images, authSvc)

	r := router.SetupRouter(userHandler, recipeHandler, imageHandler, []string{"http://localhost:3000"})

	return &testServer{router: r, db: db, images: images}
}

// do sends a JSON request, attaching token as x-auth-token when non-empty.
func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-Auth-Token", token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// register creates an account and returns its bearer token.
func (s *testServer) register(t *testing.T, name, email string) string {
	t.Helper()

	w := s.do(t, http.MethodPost, "/api/users/register", "", gin.H{
		"name":     name,
		"email":    email,
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp api.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// createRecipe posts a recipe as token's user and returns its id.
func (s *testServer) createRecipe(t *testing.T, token, title, category string) string {
	t.Helper()

	w := s.do(t, http.MethodPost, "/api/recipes", token, gin.H{
		"title":       title,
		"ingredients": []string{"eggs", "flour"},
		"steps":       []string{"mix", "bake"},
		"category":    category,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	return created.ID
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}
