package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe categories. Category is a closed set; anything else is rejected
// at creation and update time.
const (
	CategoryBreakfast = "Breakfast"
	CategoryLunch     = "Lunch"
	CategoryDinner    = "Dinner"
	CategoryDessert   = "Dessert"
	CategorySnack     = "Snack"
	CategoryOther     = "Other"
)

// Categories lists every valid recipe category.
var Categories = []string{
	CategoryBreakfast,
	CategoryLunch,
	CategoryDinner,
	CategoryDessert,
	CategorySnack,
	CategoryOther,
}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

type Recipe struct {
	ID            uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	DeletedAt     gorm.DeletedAt   `gorm:"index" json:"-"`
	Title         string           `gorm:"size:255;not null" json:"title"`
	Ingredients   JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Steps         JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"steps"`
	Category      string           `gorm:"size:50;not null" json:"category"`
	ImageURL      string           `gorm:"size:255" json:"image_url"`
	ImagePublicID string           `gorm:"size:255" json:"image_public_id"`
	Likes         JSONBUUIDArray   `gorm:"type:jsonb;not null;default:'[]'" json:"likes"`
	UserID        uuid.UUID        `gorm:"type:varchar(36);not null;index" json:"user_id"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
