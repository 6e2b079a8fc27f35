package spoonacular

import (
	"Cookshare-Backend/domain"
	"Cookshare-Backend/entities"
	"Cookshare-Backend/pkg/recipe"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type (
	ImportService interface {
		ImportByExternalID(ctx context.Context, externalID string) (domain.ImportResponse, error)
	}

	importService struct {
		client           Client
		recipeRepository recipe.RecipeRepository
	}
)

func NewImportService(client Client, recipeRepository recipe.RecipeRepository) ImportService {
	return &importService{
		client:           client,
		recipeRepository: recipeRepository,
	}
}

// ImportByExternalID pulls one recipe from the provider into the local
// store. A second import of the same external id is a no-op reported as
// imported=false.
func (s *importService) ImportByExternalID(ctx context.Context, externalID string) (domain.ImportResponse, error) {
	if !s.client.Enabled() {
		return domain.ImportResponse{}, domain.ErrProviderDisabled
	}

	existing, err := s.recipeRepository.GetBySourceAndExternalID(ctx, entities.RecipeSourceSpoonacular, externalID)
	if err == nil {
		return domain.ImportResponse{ID: existing.ID.String(), Imported: false}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ImportResponse{}, err
	}

	info, err := s.client.GetRecipeInformation(ctx, externalID)
	if err != nil || info == nil {
		return domain.ImportResponse{}, domain.ErrProviderFetchFailed
	}

	ingredients := strings.Join(info.Ingredients, "\n")
	if strings.TrimSpace(ingredients) == "" {
		ingredients = "Ingredients not available"
	}

	steps := info.Instructions
	if strings.TrimSpace(steps) == "" {
		steps = info.Summary
	}

	externalIDCopy := info.ExternalID
	saved := entities.Recipe{
		Title:       info.Title,
		Ingredients: ingredients,
		Steps:       steps,
		IsPublic:    true,
		Source:      entities.RecipeSourceSpoonacular,
		ImageURL:    info.ImageURL,
		Tags:        strings.Join(info.Tags, ", "),
		ExternalID:  &externalIDCopy,
	}
	if err := s.recipeRepository.CreateRecipe(ctx, &saved); err != nil {
		return domain.ImportResponse{}, err
	}

	return domain.ImportResponse{ID: saved.ID.String(), Imported: true}, nil
}
