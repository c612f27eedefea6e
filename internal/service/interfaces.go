package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/flavorshare/backend/internal/middleware"
	"github.com/flavorshare/backend/internal/model"
)

// IAuthService is the auth surface the handlers depend on
type IAuthService interface {
	Register(name, email, password string) (string, error)
	Login(email, password string) (string, error)
	ValidateToken(token string) (*middleware.TokenClaims, error)
}

// IImageService is the image relay surface the handlers depend on
type IImageService interface {
	Upload(ctx context.Context, payload, folder string) (*ImageRef, error)
	Delete(ctx context.Context, publicID string) error
}

// ImageReleaser releases stored images when recipes drop their reference.
// RecipeService treats it as best effort.
type ImageReleaser interface {
	Delete(ctx context.Context, publicID string) error
}

// IRecipeService is the recipe store surface the handlers depend on
type IRecipeService interface {
	Create(ctx context.Context, userID uuid.UUID, in CreateRecipeInput) (*model.Recipe, error)
	List(ctx context.Context) ([]model.Recipe, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Recipe, error)
	ListByCategory(ctx context.Context, category string) ([]model.Recipe, error)
	Get(ctx context.Context, id string) (*model.Recipe, string, error)
	Update(ctx context.Context, userID uuid.UUID, id string, in UpdateRecipeInput) (*model.Recipe, error)
	Delete(ctx context.Context, userID uuid.UUID, id string) error
	ToggleLike(ctx context.Context, userID uuid.UUID, id string) (model.JSONBUUIDArray, error)
}
