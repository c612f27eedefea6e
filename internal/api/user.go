package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flavorshare/backend/internal/middleware"
	"github.com/flavorshare/backend/internal/service"
)

// UserHandler serves registration, login, the current-user record and the
// favorites toggle.
type UserHandler struct {
	auth  service.IAuthService
	users *service.UserService
}

func NewUserHandler(auth service.IAuthService, users *service.UserService) *UserHandler {
	return &UserHandler{auth: auth, users: users}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.POST("/register", h.Register)
		users.POST("/login", h.Login)
		users.GET("/me", middleware.AuthMiddleware(h.auth), h.Me)
		users.PUT("/favorites/:recipeId", middleware.AuthMiddleware(h.auth), h.ToggleFavorite)
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": CodeValidation})
		return
	}

	token, err := h.auth.Register(req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": CodeValidation})
		return
	}

	token, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated", "code": CodeUnauthenticated})
		return
	}

	user, err := h.users.Me(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ToggleFavorite flips the recipe's membership in the caller's favorites
// set and returns the resulting set only.
func (h *UserHandler) ToggleFavorite(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated", "code": CodeUnauthenticated})
		return
	}

	favorites, err := h.users.ToggleFavorite(c.Request.Context(), userID, c.Param("recipeId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, favorites)
}
