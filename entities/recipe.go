package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe source tags. Imported rows carry the provider's external id so
// re-imports update in place instead of duplicating.
const (
	RecipeSourceUser        = "USER"
	RecipeSourceCurated     = "CURATED"
	RecipeSourceMealDB      = "MEALDB"
	RecipeSourceSpoonacular = "SPOONACULAR"
)

type Recipe struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	Title       string     `json:"title"`
	Ingredients string     `json:"ingredients" gorm:"type:text"`
	Steps       string     `json:"steps" gorm:"type:text"`
	IsPublic    bool       `json:"is_public"`
	Source      string     `gorm:"default:USER;uniqueIndex:idx_recipes_source_external" json:"source"`
	ImageURL    string     `json:"image_url,omitempty" gorm:"type:text"`
	Tags        string     `json:"tags,omitempty" gorm:"type:text"`
	Likes       int64      `json:"likes"`
	Views       int64      `json:"views"`
	ExternalID  *string    `gorm:"uniqueIndex:idx_recipes_source_external" json:"external_id,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type RecipeLike struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"uniqueIndex:idx_recipe_likes_user_recipe" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"uniqueIndex:idx_recipe_likes_user_recipe" json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}

type RecipeView struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"uniqueIndex:idx_recipe_views_user_recipe" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"uniqueIndex:idx_recipe_views_user_recipe" json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}

type RecipeHistory struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `gorm:"uniqueIndex:idx_recipe_history_user_recipe" json:"user_id"`
	RecipeID     uuid.UUID `gorm:"uniqueIndex:idx_recipe_history_user_recipe" json:"recipe_id"`
	LastViewedAt time.Time `gorm:"type:timestamp" json:"last_viewed_at"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (l *RecipeLike) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

func (v *RecipeView) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

func (h *RecipeHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
