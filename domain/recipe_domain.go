package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessUploadImage     = "recipe image uploaded successfully"

	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedUploadImage     = "failed to upload recipe image"

	ErrRecipeNotFound      = errors.New("recipe not found")
	ErrMissingRecipeFields = errors.New("title, ingredients, and steps are required")
)

type (
	CreateRecipeRequest struct {
		Title       string `json:"title" validate:"required"`
		Ingredients string `json:"ingredients" validate:"required"`
		Steps       string `json:"steps" validate:"required"`
	}

	RecipeResponse struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		Ingredients string    `json:"ingredients"`
		Steps       string    `json:"steps"`
		CreatedAt   time.Time `json:"created_at"`
	}

	RecipeSummary struct {
		ID        string    `json:"id"`
		Title     string    `json:"title"`
		CreatedAt time.Time `json:"created_at"`
	}

	PublicRecipeDetail struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		ImageURL    string    `json:"image_url,omitempty"`
		Tags        string    `json:"tags,omitempty"`
		Source      string    `json:"source"`
		Views       int64     `json:"views"`
		CreatedAt   time.Time `json:"created_at"`
		Ingredients string    `json:"ingredients"`
		Steps       string    `json:"steps"`
	}
)
