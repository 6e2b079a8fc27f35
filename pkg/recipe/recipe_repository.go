package recipe

import (
	"Cookshare-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

// Pagination bounds. Feed and listing queries share one cap; the hybrid
// search endpoint keeps the tighter one the external provider tolerates.
const (
	MaxFeedPageSize   = 200
	MaxSearchPageSize = 50
)

// feedColumns keeps ranked and search queries off the large text columns.
const feedColumns = "id, user_id, title, image_url, tags, likes, views, source, created_at"

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		SaveRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, recipe *entities.Recipe) error

		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetPublicRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetOwnedRecipeByID(ctx context.Context, id, ownerID string) (*entities.Recipe, error)
		ListOwnedRecipes(ctx context.Context, ownerID string) ([]*entities.Recipe, error)
		CountPublicRecipes(ctx context.Context) (int64, error)

		RankedPublicPage(ctx context.Context, page, size int) ([]*entities.Recipe, error)
		SearchByTitle(ctx context.Context, q string, page, size int) ([]*entities.Recipe, error)
		SearchByTags(ctx context.Context, q string, page, size int) ([]*entities.Recipe, error)
		GetLightByIDs(ctx context.Context, ids []string) ([]*entities.Recipe, error)

		GetBySourceAndExternalID(ctx context.Context, source, externalID string) (*entities.Recipe, error)
		UpsertBySource(ctx context.Context, source, externalID string, fields *entities.Recipe) (bool, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// ClampPage floors the page index at zero.
func ClampPage(page int) int {
	if page < 0 {
		return 0
	}
	return page
}

// ClampPageSize bounds the page size to [1, max].
func ClampPageSize(size, max int) int {
	if size < 1 {
		return 1
	}
	if size > max {
		return max
	}
	return size
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) SaveRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Delete(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetPublicRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_public = ?", id, true).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetOwnedRecipeByID(ctx context.Context, id, ownerID string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) ListOwnedRecipes(ctx context.Context, ownerID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) CountPublicRecipes(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("is_public = ?", true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// RankedPublicPage orders by likes, then views, then recency. The three-key
// order makes ties deterministic.
func (r *recipeRepository) RankedPublicPage(ctx context.Context, page, size int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Select(feedColumns).
		Where("is_public = ?", true).
		Order("likes desc, views desc, created_at desc").
		Offset(page * size).
		Limit(size).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) SearchByTitle(ctx context.Context, q string, page, size int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Select(feedColumns).
		Where("is_public = ? AND LOWER(title) LIKE LOWER(?)", true, "%"+q+"%").
		Order("likes desc, views desc, created_at desc").
		Offset(page * size).
		Limit(size).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) SearchByTags(ctx context.Context, q string, page, size int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Select(feedColumns).
		Where("is_public = ? AND tags IS NOT NULL AND LOWER(tags) LIKE LOWER(?)", true, "%"+q+"%").
		Order("likes desc, views desc, created_at desc").
		Offset(page * size).
		Limit(size).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetLightByIDs(ctx context.Context, ids []string) ([]*entities.Recipe, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Select(feedColumns).
		Where("id IN ?", ids).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetBySourceAndExternalID(ctx context.Context, source, externalID string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("source = ? AND external_id = ?", source, externalID).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// UpsertBySource inserts a new recipe for the (source, externalID) pair or
// overwrites the mutable fields of the existing row. The returned flag is
// true only when a new row was inserted, which is what import batch caps
// count against.
func (r *recipeRepository) UpsertBySource(ctx context.Context, source, externalID string, fields *entities.Recipe) (bool, error) {
	existing, err := r.GetBySourceAndExternalID(ctx, source, externalID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, err
		}

		fields.Source = source
		fields.ExternalID = &externalID
		if err := r.db.WithContext(ctx).Create(fields).Error; err != nil {
			return false, err
		}
		return true, nil
	}

	existing.Title = fields.Title
	existing.Ingredients = fields.Ingredients
	existing.Steps = fields.Steps
	existing.ImageURL = fields.ImageURL
	existing.Tags = fields.Tags
	existing.IsPublic = fields.IsPublic

	if err := r.db.WithContext(ctx).Save(existing).Error; err != nil {
		return false, err
	}
	return false, nil
}
