package api

import (
	"github.com/google/uuid"

	"github.com/flavorshare/backend/internal/model"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type CreateRecipeRequest struct {
	Title         string   `json:"title" binding:"required"`
	Ingredients   []string `json:"ingredients" binding:"required"`
	Steps         []string `json:"steps" binding:"required"`
	Category      string   `json:"category" binding:"required"`
	ImageURL      string   `json:"image_url"`
	ImagePublicID string   `json:"image_public_id"`
}

// UpdateRecipeRequest uses pointers so an absent field can be told apart
// from a present-but-empty one: absent leaves the stored value untouched,
// present replaces it.
type UpdateRecipeRequest struct {
	Title         *string   `json:"title"`
	Ingredients   *[]string `json:"ingredients"`
	Steps         *[]string `json:"steps"`
	Category      *string   `json:"category"`
	ImageURL      *string   `json:"image_url"`
	ImagePublicID *string   `json:"image_public_id"`
}

type UploadImageRequest struct {
	Image string `json:"image" binding:"required"`
}

// OwnerRef is the resolved owner attached to a recipe detail response.
type OwnerRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// RecipeDetail is a recipe with its owner's display name resolved.
type RecipeDetail struct {
	model.Recipe
	Owner OwnerRef `json:"user"`
}
