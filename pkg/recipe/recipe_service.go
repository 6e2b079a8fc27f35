package recipe

import (
	"Cookshare-Backend/domain"
	"Cookshare-Backend/entities"
	"Cookshare-Backend/internal/utils/storage"
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error)
		ListMyRecipes(ctx context.Context, userID string) ([]domain.RecipeSummary, error)
		GetMyRecipe(ctx context.Context, recipeID, userID string) (domain.RecipeResponse, error)
		DeleteMyRecipe(ctx context.Context, recipeID, userID string) error
		GetPublicRecipe(ctx context.Context, recipeID string) (domain.PublicRecipeDetail, error)
		CountPublicRecipes(ctx context.Context) (int64, error)
		UploadRecipeImage(ctx context.Context, recipeID, userID string, file *multipart.FileHeader) (string, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               *storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, s3 *storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeResponse, error) {
	title := strings.TrimSpace(req.Title)
	ingredients := strings.TrimSpace(req.Ingredients)
	steps := strings.TrimSpace(req.Steps)

	if title == "" || ingredients == "" || steps == "" {
		return domain.RecipeResponse{}, domain.ErrMissingRecipeFields
	}

	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	recipe := entities.Recipe{
		UserID:      &ownerID,
		Title:       title,
		Ingredients: ingredients,
		Steps:       steps,
		IsPublic:    false,
		Source:      entities.RecipeSourceUser,
	}
	if err := s.recipeRepository.CreateRecipe(ctx, &recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return domain.RecipeResponse{
		ID:          recipe.ID.String(),
		Title:       recipe.Title,
		Ingredients: recipe.Ingredients,
		Steps:       recipe.Steps,
		CreatedAt:   recipe.CreatedAt,
	}, nil
}

func (s *recipeService) ListMyRecipes(ctx context.Context, userID string) ([]domain.RecipeSummary, error) {
	recipes, err := s.recipeRepository.ListOwnedRecipes(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.RecipeSummary, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, domain.RecipeSummary{
			ID:        r.ID.String(),
			Title:     r.Title,
			CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}

func (s *recipeService) GetMyRecipe(ctx context.Context, recipeID, userID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetOwnedRecipeByID(ctx, recipeID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	return domain.RecipeResponse{
		ID:          recipe.ID.String(),
		Title:       recipe.Title,
		Ingredients: recipe.Ingredients,
		Steps:       recipe.Steps,
		CreatedAt:   recipe.CreatedAt,
	}, nil
}

func (s *recipeService) DeleteMyRecipe(ctx context.Context, recipeID, userID string) error {
	recipe, err := s.recipeRepository.GetOwnedRecipeByID(ctx, recipeID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	return s.recipeRepository.DeleteRecipe(ctx, recipe)
}

func (s *recipeService) GetPublicRecipe(ctx context.Context, recipeID string) (domain.PublicRecipeDetail, error) {
	recipe, err := s.recipeRepository.GetPublicRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PublicRecipeDetail{}, domain.ErrRecipeNotFound
		}
		return domain.PublicRecipeDetail{}, err
	}

	return domain.PublicRecipeDetail{
		ID:          recipe.ID.String(),
		Title:       recipe.Title,
		ImageURL:    recipe.ImageURL,
		Tags:        recipe.Tags,
		Source:      recipe.Source,
		Views:       recipe.Views,
		CreatedAt:   recipe.CreatedAt,
		Ingredients: recipe.Ingredients,
		Steps:       recipe.Steps,
	}, nil
}

func (s *recipeService) CountPublicRecipes(ctx context.Context) (int64, error) {
	return s.recipeRepository.CountPublicRecipes(ctx)
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, recipeID, userID string, file *multipart.FileHeader) (string, error) {
	recipe, err := s.recipeRepository.GetOwnedRecipeByID(ctx, recipeID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrRecipeNotFound
		}
		return "", err
	}

	url, err := s.s3.UploadFile(ctx, file, "recipes")
	if err != nil {
		return "", err
	}

	recipe.ImageURL = url
	if err := s.recipeRepository.SaveRecipe(ctx, recipe); err != nil {
		return "", err
	}
	return url, nil
}
