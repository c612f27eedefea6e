package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flavorshare/backend/internal/middleware"
	"github.com/flavorshare/backend/internal/service"
)

// RecipeHandler serves recipe CRUD, the feed and filter reads, the
// favorites listing and the like toggle.
type RecipeHandler struct {
	recipes service.IRecipeService
	users   *service.UserService
	auth    middleware.TokenValidator
}

func NewRecipeHandler(recipes service.IRecipeService, users *service.UserService, auth middleware.TokenValidator) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, users: users, auth: auth}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/user", middleware.AuthMiddleware(h.auth), h.ListOwnRecipes)
		recipes.GET("/favorites", middleware.AuthMiddleware(h.auth), h.ListFavorites)
		recipes.GET("/category/:category", h.ListByCategory)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", middleware.AuthMiddleware(h.auth), h.CreateRecipe)
		recipes.PUT("/:id", middleware.AuthMiddleware(h.auth), h.UpdateRecipe)
		recipes.DELETE("/:id", middleware.AuthMiddleware(h.auth), h.DeleteRecipe)
		recipes.PUT("/like/:id", middleware.AuthMiddleware(h.auth), h.ToggleLike)
	}
}

// ListRecipes returns the whole collection, newest first. Pagination and
// search happen client-side over this list.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) ListOwnRecipes(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated", "code": CodeUnauthenticated})
		return
	}

	recipes, err := h.recipes.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) ListFavorites(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated", "code": CodeUnauthenticated})
		return
	}

	recipes, err := h.users.Favorites(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) ListByCategory(c *gin.Context) {
	recipes, err := h.recipes.ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, ownerName, err := h.recipes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, RecipeDetail{
		Recipe: *recipe,
		Owner:  OwnerRef{ID: recipe.UserID, Name: ownerName},
	})
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": CodeValidation})
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated", "code": CodeUnauthenticated})
		return
	}

	recipe, err := h.recipes.Create(c.Request.Context(), userID, service.CreateRecipeInput{
		Title:         req.Title,
		Ingredients:   req.Ingredients,
		Steps:         req.Steps,
		Category:      req.Category,
		ImageURL:      req.ImageURL,
		ImagePublicID: req.ImagePublicID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	var req UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": CodeValidation})
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated", "code": CodeUnauthenticated})
		return
	}

	recipe, err := h.recipes.Update(c.Request.Context(), userID, c.Param("id"), service.UpdateRecipeInput{
		Title:         req.Title,
		Ingredients:   req.Ingredients,
		Steps:         req.Steps,
		Category:      req.Category,
		ImageURL:      req.ImageURL,
		ImagePublicID: req.ImagePublicID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated", "code": CodeUnauthenticated})
		return
	}

	if err := h.recipes.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "recipe removed"})
}

// ToggleLike flips the caller's like and returns the resulting likes set
// only, not the full record.
func (h *RecipeHandler) ToggleLike(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated", "code": CodeUnauthenticated})
		return
	}

	likes, err := h.recipes.ToggleLike(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, likes)
}
