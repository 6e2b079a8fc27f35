package mealdb

import (
	"Cookshare-Backend/domain"
	"Cookshare-Backend/entities"
	"Cookshare-Backend/pkg/recipe"
	"context"
	"math/rand"
	"strings"
)

const MaxImportLimit = 500

type (
	ImportService interface {
		ImportMeals(ctx context.Context, limit int) (domain.SyncResponse, error)
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

// ImportMeals walks the provider's by-letter indexes in random order
// and upserts meals until limit NEW rows landed or the alphabet ran
// out, then tops up from the random endpoint. Re-imported meals are
// refreshed but not counted.
func (s *importService) ImportMeals(ctx context.Context, limit int) (domain.SyncResponse, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > MaxImportLimit {
		limit = MaxImportLimit
	}

	letters := []rune("abcdefghijklmnopqrstuvwxyz")
	rand.Shuffle(len(letters), func(i, j int) {
		letters[i], letters[j] = letters[j], letters[i]
	})

	saved := 0
	for _, letter := range letters {
		if saved >= limit {
			break
		}
		meals, err := s.client.SearchByLetter(ctx, letter)
		if err != nil {
			continue
		}
		for i := range meals {
			if saved >= limit {
				break
			}
			inserted, err := s.upsertMeal(ctx, &meals[i])
			if err != nil {
				continue
			}
			if inserted {
				saved++
			}
		}
	}

	// The letter indexes mostly return meals already imported on a
	// rerun, so chase the remainder through the random endpoint.
	maxAttempts := limit * 6
	for attempt := 0; saved < limit && attempt < maxAttempts; attempt++ {
		meal, err := s.client.Random(ctx)
		if err != nil {
			continue
		}
		inserted, err := s.upsertMeal(ctx, meal)
		if err != nil {
			continue
		}
		if inserted {
			saved++
		}
	}

	return domain.SyncResponse{Saved: saved, Source: entities.RecipeSourceMealDB}, nil
}

func (s *importService) upsertMeal(ctx context.Context, meal *Meal) (bool, error) {
	if meal.ExternalID == "" || meal.Title == "" || meal.Instructions == "" {
		return false, nil
	}

	ingredients := strings.Join(meal.IngredientLines, "\n")
	if ingredients == "" {
		ingredients = "Ingredients not available"
	}

	fields := entities.Recipe{
		Title:       meal.Title,
		Ingredients: ingredients,
		Steps:       meal.Instructions,
		IsPublic:    true,
		ImageURL:    meal.ImageURL,
		Tags:        strings.Join(meal.Tags(), ", "),
	}
	return s.recipeRepository.UpsertBySource(ctx, entities.RecipeSourceMealDB, meal.ExternalID, &fields)
}
