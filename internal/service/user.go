package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flavorshare/backend/internal/model"
)

// UserService owns the caller-facing user operations: the current-user
// record and the favorites set.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Me returns the user record for userID. The password hash never
// serializes (json:"-" on the model).
func (s *UserService) Me(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ToggleFavorite flips recipeID's membership in the caller's favorites set
// and returns the resulting set. Mirrors the like toggle; the favorited
// recipe's existence is not checked, so a stale id is a valid favorite.
func (s *UserService) ToggleFavorite(ctx context.Context, userID uuid.UUID, recipeID string) (model.JSONBUUIDArray, error) {
	rid, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, Validationf("invalid recipe id")
	}

	var user model.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	favorites := model.ToggleMembership(user.Favorites, rid)
	if err := s.db.WithContext(ctx).Model(&user).Update("favorites", favorites).Error; err != nil {
		return nil, err
	}

	return favorites, nil
}

// Favorites resolves the caller's favorite ids to recipe records, newest
// first. Ids whose recipe has since been deleted are silently skipped.
func (s *UserService) Favorites(ctx context.Context, userID uuid.UUID) ([]model.Recipe, error) {
	var user model.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	recipes := []model.Recipe{}
	if len(user.Favorites) == 0 {
		return recipes, nil
	}

	ids := make([]string, 0, len(user.Favorites))
	for _, id := range user.Favorites {
		ids = append(ids, id.String())
	}

	err := s.db.WithContext(ctx).Where("id IN ?", ids).Order("created_at DESC").Find(&recipes).Error
	return recipes, err
}
