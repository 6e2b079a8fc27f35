package engagement

import (
	"Cookshare-Backend/entities"
	"Cookshare-Backend/pkg/recipe"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Recipe{},
		&entities.RecipeLike{},
		&entities.RecipeView{},
		&entities.RecipeHistory{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newTestService(t *testing.T) (EngagementService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewEngagementService(NewEngagementRepository(db), recipe.NewRecipeRepository(db)), db
}

func seedUserAndRecipe(t *testing.T, db *gorm.DB) (string, string) {
	t.Helper()
	user := entities.User{Username: "cook", Email: fmt.Sprintf("%s@test.local", uuid.NewString())}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	row := entities.Recipe{
		Title:       "Lasagna",
		Ingredients: "i",
		Steps:       "s",
		IsPublic:    true,
		Source:      entities.RecipeSourceCurated,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("seed recipe: %v", err)
	}
	return user.ID.String(), row.ID.String()
}

func TestToggleLike_RoundTrip(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	userID, recipeID := seedUserAndRecipe(t, db)

	first, err := svc.ToggleLike(ctx, userID, recipeID)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !first.Liked || first.Likes != 1 {
		t.Fatalf("expected liked with count 1, got liked=%v likes=%d", first.Liked, first.Likes)
	}

	second, err := svc.ToggleLike(ctx, userID, recipeID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if second.Liked || second.Likes != 0 {
		t.Fatalf("expected unliked with count 0, got liked=%v likes=%d", second.Liked, second.Likes)
	}
}

func TestToggleLike_UnknownRecipe(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	userID, _ := seedUserAndRecipe(t, db)

	if _, err := svc.ToggleLike(ctx, userID, uuid.NewString()); err == nil {
		t.Fatalf("expected error for unknown recipe")
	}
}

func TestRecordView_CountedOncePerUser(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	userID, recipeID := seedUserAndRecipe(t, db)

	first, err := svc.RecordView(ctx, userID, recipeID)
	if err != nil {
		t.Fatalf("first view: %v", err)
	}
	if !first.Counted || first.Views != 1 {
		t.Fatalf("expected counted first view with 1 total, got counted=%v views=%d", first.Counted, first.Views)
	}

	second, err := svc.RecordView(ctx, userID, recipeID)
	if err != nil {
		t.Fatalf("second view: %v", err)
	}
	if second.Counted {
		t.Fatalf("expected repeat view to be uncounted")
	}
	if second.Views != 1 {
		t.Fatalf("expected view total to stay at 1, got %d", second.Views)
	}

	var row entities.Recipe
	if err := db.First(&row, "id = ?", recipeID).Error; err != nil {
		t.Fatalf("reload recipe: %v", err)
	}
	if row.Views != 1 {
		t.Fatalf("expected stored views 1, got %d", row.Views)
	}
}

func TestTrackHistory_SingleRowPerRecipe(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	userID, recipeID := seedUserAndRecipe(t, db)

	if _, err := svc.TrackHistory(ctx, userID, recipeID); err != nil {
		t.Fatalf("first track: %v", err)
	}

	var before entities.RecipeHistory
	if err := db.First(&before, "user_id = ? AND recipe_id = ?", userID, recipeID).Error; err != nil {
		t.Fatalf("load history: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if _, err := svc.TrackHistory(ctx, userID, recipeID); err != nil {
		t.Fatalf("second track: %v", err)
	}

	var count int64
	if err := db.Model(&entities.RecipeHistory{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		t.Fatalf("count history: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single history row, got %d", count)
	}

	var after entities.RecipeHistory
	if err := db.First(&after, "user_id = ? AND recipe_id = ?", userID, recipeID).Error; err != nil {
		t.Fatalf("reload history: %v", err)
	}
	if !after.LastViewedAt.After(before.LastViewedAt) {
		t.Fatalf("expected last_viewed_at to advance")
	}
}

func TestListHistory_MostRecentFirst(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	userID, firstRecipe := seedUserAndRecipe(t, db)

	second := entities.Recipe{
		Title: "Ramen", Ingredients: "i", Steps: "s",
		IsPublic: true, Source: entities.RecipeSourceCurated,
	}
	if err := db.Create(&second).Error; err != nil {
		t.Fatalf("seed second recipe: %v", err)
	}

	if _, err := svc.TrackHistory(ctx, userID, firstRecipe); err != nil {
		t.Fatalf("track first: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, err := svc.TrackHistory(ctx, userID, second.ID.String()); err != nil {
		t.Fatalf("track second: %v", err)
	}

	entries, err := svc.ListHistory(ctx, userID)
	if err != nil {
		t.Fatalf("list history: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Title != "Ramen" {
		t.Fatalf("expected most recent first, got %q", entries[0].Title)
	}
}

func TestRemoveHistory_Idempotent(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	userID, recipeID := seedUserAndRecipe(t, db)

	if _, err := svc.TrackHistory(ctx, userID, recipeID); err != nil {
		t.Fatalf("track: %v", err)
	}

	res, err := svc.RemoveHistory(ctx, userID, recipeID)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !res.Deleted {
		t.Fatalf("expected deleted=true")
	}

	// removing again still succeeds
	if _, err := svc.RemoveHistory(ctx, userID, recipeID); err != nil {
		t.Fatalf("second remove: %v", err)
	}
}
