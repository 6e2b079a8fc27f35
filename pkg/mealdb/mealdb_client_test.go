package mealdb

import "testing"

func TestMealFromRaw_FoldsIngredientPairs(t *testing.T) {
	raw := map[string]any{
		"idMeal":          "52772",
		"strMeal":         "Teriyaki Chicken Casserole",
		"strMealThumb":    "https://example.com/thumb.jpg",
		"strInstructions": "Preheat oven.",
		"strCategory":     "Chicken",
		"strArea":         "Japanese",
		"strTags":         "Meat,Casserole",
		"strIngredient1":  "soy sauce",
		"strMeasure1":     "3/4 cup",
		"strIngredient2":  "water",
		"strMeasure2":     "1/2 cup",
		"strIngredient3":  "",
		"strMeasure3":     " ",
	}

	meal := mealFromRaw(raw)

	if meal.ExternalID != "52772" || meal.Title != "Teriyaki Chicken Casserole" {
		t.Fatalf("unexpected identity: %q %q", meal.ExternalID, meal.Title)
	}
	if len(meal.IngredientLines) != 2 {
		t.Fatalf("expected 2 ingredient lines, got %d", len(meal.IngredientLines))
	}
	if meal.IngredientLines[0] != "• 3/4 cup soy sauce" {
		t.Fatalf("unexpected first line: %q", meal.IngredientLines[0])
	}
	if meal.IngredientLines[1] != "• 1/2 cup water" {
		t.Fatalf("unexpected second line: %q", meal.IngredientLines[1])
	}
}

func TestMealFromRaw_IngredientWithoutMeasure(t *testing.T) {
	raw := map[string]any{
		"idMeal":         "1",
		"strMeal":        "Toast",
		"strIngredient1": "bread",
	}

	meal := mealFromRaw(raw)
	if len(meal.IngredientLines) != 1 || meal.IngredientLines[0] != "• bread" {
		t.Fatalf("unexpected lines: %v", meal.IngredientLines)
	}
}

func TestMealTags_MergesWithoutDuplicates(t *testing.T) {
	meal := Meal{
		Category: "Chicken",
		Area:     "Japanese",
		TagsCSV:  "Meat, chicken ,Casserole",
	}

	tags := meal.Tags()
	want := []string{"Chicken", "Japanese", "Meat", "Casserole"}
	if len(tags) != len(want) {
		t.Fatalf("expected %v, got %v", want, tags)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, tags)
		}
	}
}
