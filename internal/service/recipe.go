package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/flavorshare/backend/internal/model"
)

const (
	feedCacheKey = "recipes:feed"
	feedCacheTTL = 30 * time.Second
)

// CreateRecipeInput carries the validated fields for a new recipe.
type CreateRecipeInput struct {
	Title         string
	Ingredients   []string
	Steps         []string
	Category      string
	ImageURL      string
	ImagePublicID string
}

// UpdateRecipeInput carries partial-update fields. A nil pointer leaves the
// stored value untouched; a non-nil pointer replaces it after validation.
type UpdateRecipeInput struct {
	Title         *string
	Ingredients   *[]string
	Steps         *[]string
	Category      *string
	ImageURL      *string
	ImagePublicID *string
}

// RecipeService owns recipe persistence, filters, like toggles and the
// best-effort release of replaced or orphaned images. The public feed read
// is fronted by a short-lived redis cache when a client is available.
type RecipeService struct {
	db     *gorm.DB
	cache  *redis.Client
	images ImageReleaser
}

// NewRecipeService creates a RecipeService. cache and images may be nil;
// the service then reads straight from the database and skips release.
func NewRecipeService(db *gorm.DB, cache *redis.Client, images ImageReleaser) *RecipeService {
	return &RecipeService{db: db, cache: cache, images: images}
}

// Create stores a new recipe owned by userID.
func (s *RecipeService) Create(ctx context.Context, userID uuid.UUID, in CreateRecipeInput) (*model.Recipe, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, Validationf("title is required")
	}
	if !model.ValidCategory(in.Category) {
		return nil, Validationf("invalid category")
	}
	ingredients := trimNonEmpty(in.Ingredients)
	if len(ingredients) == 0 {
		return nil, Validationf("at least one ingredient is required")
	}
	steps := trimNonEmpty(in.Steps)
	if len(steps) == 0 {
		return nil, Validationf("at least one step is required")
	}
	if (in.ImageURL == "") != (in.ImagePublicID == "") {
		return nil, Validationf("image url and image id must be set together")
	}

	// The owner reference must resolve at creation time.
	var owner model.User
	if err := s.db.WithContext(ctx).Select("id").First(&owner, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	recipe := model.Recipe{
		Title:         title,
		Ingredients:   ingredients,
		Steps:         steps,
		Category:      in.Category,
		ImageURL:      in.ImageURL,
		ImagePublicID: in.ImagePublicID,
		Likes:         model.JSONBUUIDArray{},
		UserID:        userID,
	}
	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}

	s.invalidateFeed(ctx)
	return &recipe, nil
}

// List returns every recipe, newest first. The full collection is returned
// by design; clients paginate in memory.
func (s *RecipeService) List(ctx context.Context) ([]model.Recipe, error) {
	if cached, ok := s.feedFromCache(ctx); ok {
		return cached, nil
	}

	var recipes []model.Recipe
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}

	s.feedToCache(ctx, recipes)
	return recipes, nil
}

// ListByUser returns the recipes owned by userID, newest first.
func (s *RecipeService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&recipes).Error
	return recipes, err
}

// ListByCategory returns recipes matching category exactly, newest first.
// An unknown category yields an empty list, not an error.
func (s *RecipeService) ListByCategory(ctx context.Context, category string) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := s.db.WithContext(ctx).Where("category = ?", category).Order("created_at DESC").Find(&recipes).Error
	return recipes, err
}

// Get returns a recipe and its owner's display name. A malformed id and a
// missing record both report ErrNotFound.
func (s *RecipeService) Get(ctx context.Context, id string) (*model.Recipe, string, error) {
	recipeID, err := uuid.Parse(id)
	if err != nil {
		return nil, "", ErrNotFound
	}

	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}

	var owner model.User
	ownerName := ""
	if err := s.db.WithContext(ctx).Select("id", "name").First(&owner, "id = ?", recipe.UserID).Error; err == nil {
		ownerName = owner.Name
	}

	return &recipe, ownerName, nil
}

// Update applies a partial update. Only the owner may update; the existence
// check runs before the ownership check so a missing recipe is a 404, not
// a 403.
func (s *RecipeService) Update(ctx context.Context, userID uuid.UUID, id string, in UpdateRecipeInput) (*model.Recipe, error) {
	recipe, err := s.fetchOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, Validationf("title cannot be empty")
		}
		recipe.Title = title
	}
	if in.Ingredients != nil {
		ingredients := trimNonEmpty(*in.Ingredients)
		if len(ingredients) == 0 {
			return nil, Validationf("at least one ingredient is required")
		}
		recipe.Ingredients = ingredients
	}
	if in.Steps != nil {
		steps := trimNonEmpty(*in.Steps)
		if len(steps) == 0 {
			return nil, Validationf("at least one step is required")
		}
		recipe.Steps = steps
	}
	if in.Category != nil {
		if !model.ValidCategory(*in.Category) {
			return nil, Validationf("invalid category")
		}
		recipe.Category = *in.Category
	}

	replacedImageID := ""
	if in.ImageURL != nil || in.ImagePublicID != nil {
		if in.ImageURL == nil || in.ImagePublicID == nil {
			return nil, Validationf("image url and image id must be set together")
		}
		if (*in.ImageURL == "") != (*in.ImagePublicID == "") {
			return nil, Validationf("image url and image id must be set together")
		}
		if recipe.ImagePublicID != "" && recipe.ImagePublicID != *in.ImagePublicID {
			replacedImageID = recipe.ImagePublicID
		}
		recipe.ImageURL = *in.ImageURL
		recipe.ImagePublicID = *in.ImagePublicID
	}

	if err := s.db.WithContext(ctx).Save(recipe).Error; err != nil {
		return nil, err
	}

	// Release only once the record no longer references the old object; a
	// failed save must not leave the stored URL pointing at a deleted key.
	if replacedImageID != "" {
		s.releaseImage(ctx, replacedImageID)
	}

	s.invalidateFeed(ctx)
	return recipe, nil
}

// Delete removes a recipe and releases its image best effort. A failed
// release never rolls back or blocks the record deletion.
func (s *RecipeService) Delete(ctx context.Context, userID uuid.UUID, id string) error {
	recipe, err := s.fetchOwned(ctx, userID, id)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(recipe).Error; err != nil {
		return err
	}

	if recipe.ImagePublicID != "" {
		s.releaseImage(ctx, recipe.ImagePublicID)
	}

	s.invalidateFeed(ctx)
	return nil
}

// ToggleLike flips the caller's membership in the recipe's likes set and
// returns the resulting set. Any authenticated user may like any recipe,
// including their own.
func (s *RecipeService) ToggleLike(ctx context.Context, userID uuid.UUID, id string) (model.JSONBUUIDArray, error) {
	recipeID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	likes := model.ToggleMembership(recipe.Likes, userID)
	if err := s.db.WithContext(ctx).Model(&recipe).Update("likes", likes).Error; err != nil {
		return nil, err
	}

	s.invalidateFeed(ctx)
	return likes, nil
}

// fetchOwned resolves id, confirms existence, then checks ownership.
func (s *RecipeService) fetchOwned(ctx context.Context, userID uuid.UUID, id string) (*model.Recipe, error) {
	recipeID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if recipe.UserID != userID {
		return nil, ErrForbidden
	}
	return &recipe, nil
}

func (s *RecipeService) releaseImage(ctx context.Context, publicID string) {
	if s.images == nil {
		return
	}
	if err := s.images.Delete(ctx, publicID); err != nil {
		logrus.WithError(err).WithField("public_id", publicID).Warn("failed to release image")
	}
}

func (s *RecipeService) feedFromCache(ctx context.Context) ([]model.Recipe, bool) {
	if s.cache == nil {
		return nil, false
	}
	data, err := s.cache.Get(ctx, feedCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	var recipes []model.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, false
	}
	return recipes, true
}

func (s *RecipeService) feedToCache(ctx context.Context, recipes []model.Recipe) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(recipes)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, feedCacheKey, data, feedCacheTTL).Err(); err != nil {
		logrus.WithError(err).Debug("failed to cache recipe feed")
	}
}

func (s *RecipeService) invalidateFeed(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, feedCacheKey).Err(); err != nil {
		logrus.WithError(err).Debug("failed to invalidate recipe feed cache")
	}
}

// trimNonEmpty trims every entry and drops the blank ones, preserving order.
func trimNonEmpty(items []string) model.JSONBStringArray {
	out := model.JSONBStringArray{}
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
