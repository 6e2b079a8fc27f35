package engagement

import (
	"Cookshare-Backend/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	EngagementRepository interface {
		GetLike(ctx context.Context, userID, recipeID string) (*entities.RecipeLike, error)
		CreateLike(ctx context.Context, userID, recipeID string) error
		DeleteLike(ctx context.Context, like *entities.RecipeLike) error
		CountLikes(ctx context.Context, recipeID string) (int64, error)
		IsLiked(ctx context.Context, userID, recipeID string) (bool, error)
		ListLikes(ctx context.Context, userID string) ([]*entities.RecipeLike, error)

		RecordView(ctx context.Context, userID, recipeID string) (bool, int64, error)

		UpsertHistory(ctx context.Context, userID, recipeID string, viewedAt time.Time) error
		ListHistory(ctx context.Context, userID string) ([]*entities.RecipeHistory, error)
		DeleteHistory(ctx context.Context, userID, recipeID string) error
	}

	engagementRepository struct {
		db *gorm.DB
	}
)

func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

func (r *engagementRepository) GetLike(ctx context.Context, userID, recipeID string) (*entities.RecipeLike, error) {
	var like entities.RecipeLike
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&like).Error; err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *engagementRepository) CreateLike(ctx context.Context, userID, recipeID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return err
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return err
	}

	like := entities.RecipeLike{
		ID:        uuid.New(),
		UserID:    userUUID,
		RecipeID:  recipeUUID,
		CreatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Create(&like).Error
}

func (r *engagementRepository) DeleteLike(ctx context.Context, like *entities.RecipeLike) error {
	return r.db.WithContext(ctx).Delete(like).Error
}

// CountLikes is the authoritative like count, recomputed from the fact rows.
func (r *engagementRepository) CountLikes(ctx context.Context, recipeID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeLike{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *engagementRepository) IsLiked(ctx context.Context, userID, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeLike{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *engagementRepository) ListLikes(ctx context.Context, userID string) ([]*entities.RecipeLike, error) {
	var likes []*entities.RecipeLike
	if err := r.db.WithContext(ctx).
		Preload("Recipe").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

// RecordView inserts the per-user view fact and bumps the recipe counter in
// the same transaction. A repeated view is a no-op; the flag reports whether
// this call actually counted.
func (r *engagementRepository) RecordView(ctx context.Context, userID, recipeID string) (bool, int64, error) {
	counted := false
	var views int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing entities.RecipeView
		err := tx.Where("user_id = ? AND recipe_id = ?", userID, recipeID).
			First(&existing).Error
		if err == nil {
			var recipe entities.Recipe
			if err := tx.Select("id, views").Where("id = ?", recipeID).First(&recipe).Error; err != nil {
				return err
			}
			views = recipe.Views
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		userUUID, err := uuid.Parse(userID)
		if err != nil {
			return err
		}
		recipeUUID, err := uuid.Parse(recipeID)
		if err != nil {
			return err
		}

		view := entities.RecipeView{
			ID:        uuid.New(),
			UserID:    userUUID,
			RecipeID:  recipeUUID,
			CreatedAt: time.Now(),
		}
		if err := tx.Create(&view).Error; err != nil {
			return err
		}

		if err := tx.Model(&entities.Recipe{}).
			Where("id = ?", recipeID).
			UpdateColumn("views", gorm.Expr("views + ?", 1)).Error; err != nil {
			return err
		}

		var recipe entities.Recipe
		if err := tx.Select("id, views").Where("id = ?", recipeID).First(&recipe).Error; err != nil {
			return err
		}
		views = recipe.Views
		counted = true
		return nil
	})
	if err != nil {
		return false, 0, err
	}
	return counted, views, nil
}

func (r *engagementRepository) UpsertHistory(ctx context.Context, userID, recipeID string, viewedAt time.Time) error {
	var existing entities.RecipeHistory
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&existing).Error; err == nil {
		existing.LastViewedAt = viewedAt
		return r.db.WithContext(ctx).Save(&existing).Error
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return err
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return err
	}

	history := entities.RecipeHistory{
		ID:           uuid.New(),
		UserID:       userUUID,
		RecipeID:     recipeUUID,
		LastViewedAt: viewedAt,
	}
	return r.db.WithContext(ctx).Create(&history).Error
}

func (r *engagementRepository) ListHistory(ctx context.Context, userID string) ([]*entities.RecipeHistory, error) {
	var history []*entities.RecipeHistory
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("last_viewed_at desc").
		Find(&history).Error; err != nil {
		return nil, err
	}
	return history, nil
}

func (r *engagementRepository) DeleteHistory(ctx context.Context, userID, recipeID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.RecipeHistory{}).Error
}
