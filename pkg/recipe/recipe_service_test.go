package recipe

import (
	"Cookshare-Backend/domain"
	"Cookshare-Backend/entities"
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"
)

func newServiceWithDB(t *testing.T) (RecipeService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewRecipeService(NewRecipeRepository(db), nil), db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entities.User {
	t.Helper()
	user := entities.User{Username: "cook", Email: email}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return &user
}

func TestCreateRecipe_DefaultsToPrivate(t *testing.T) {
	svc, db := newServiceWithDB(t)
	owner := seedUser(t, db, "owner@test.local")

	res, err := svc.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title:       "  Family Stew  ",
		Ingredients: "beef, carrots",
		Steps:       "Simmer for two hours.",
	}, owner.ID.String())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.Title != "Family Stew" {
		t.Fatalf("expected trimmed title, got %q", res.Title)
	}

	var row entities.Recipe
	if err := db.First(&row, "id = ?", res.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if row.IsPublic {
		t.Fatalf("expected new recipe to be private")
	}
	if row.Source != entities.RecipeSourceUser {
		t.Fatalf("expected source USER, got %q", row.Source)
	}
}

func TestCreateRecipe_MissingFields(t *testing.T) {
	svc, db := newServiceWithDB(t)
	owner := seedUser(t, db, "owner@test.local")

	_, err := svc.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title: "Only a title", Ingredients: "  ",
		Steps: "x",
	}, owner.ID.String())
	if !errors.Is(err, domain.ErrMissingRecipeFields) {
		t.Fatalf("expected ErrMissingRecipeFields, got %v", err)
	}
}

func TestGetMyRecipe_HidesOtherOwners(t *testing.T) {
	svc, db := newServiceWithDB(t)
	owner := seedUser(t, db, "owner@test.local")
	stranger := seedUser(t, db, "stranger@test.local")

	created, err := svc.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title: "Secret Sauce", Ingredients: "i", Steps: "s",
	}, owner.ID.String())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.GetMyRecipe(context.Background(), created.ID, stranger.ID.String()); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound for other owner, got %v", err)
	}
	if _, err := svc.GetMyRecipe(context.Background(), created.ID, owner.ID.String()); err != nil {
		t.Fatalf("owner read: %v", err)
	}
}

func TestDeleteMyRecipe_OwnerOnly(t *testing.T) {
	svc, db := newServiceWithDB(t)
	owner := seedUser(t, db, "owner@test.local")
	stranger := seedUser(t, db, "stranger@test.local")

	created, err := svc.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title: "To Delete", Ingredients: "i", Steps: "s",
	}, owner.ID.String())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.DeleteMyRecipe(context.Background(), created.ID, stranger.ID.String()); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound for stranger delete, got %v", err)
	}
	if err := svc.DeleteMyRecipe(context.Background(), created.ID, owner.ID.String()); err != nil {
		t.Fatalf("owner delete: %v", err)
	}

	var count int64
	if err := db.Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected recipe removed, %d rows remain", count)
	}
}

func TestGetPublicRecipe_RejectsPrivate(t *testing.T) {
	svc, db := newServiceWithDB(t)
	owner := seedUser(t, db, "owner@test.local")

	created, err := svc.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title: "Private Dish", Ingredients: "i", Steps: "s",
	}, owner.ID.String())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.GetPublicRecipe(context.Background(), created.ID); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound for private recipe, got %v", err)
	}
}
