package feed

import (
	"Cookshare-Backend/entities"
	"Cookshare-Backend/pkg/engagement"
	"Cookshare-Backend/pkg/recipe"
	"Cookshare-Backend/pkg/spoonacular"
	"context"
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeExternal struct {
	enabled bool
	cards   []spoonacular.RecipeCard
	err     error

	lastNumber int
	lastOffset int
}

func (f *fakeExternal) Enabled() bool { return f.enabled }

func (f *fakeExternal) Search(ctx context.Context, q string, number, offset int) ([]spoonacular.RecipeCard, error) {
	f.lastNumber = number
	f.lastOffset = offset
	if f.err != nil {
		return nil, f.err
	}
	if number < len(f.cards) {
		return f.cards[:number], nil
	}
	return f.cards, nil
}

func (f *fakeExternal) GetRecipeInformation(ctx context.Context, externalID string) (*spoonacular.RecipeInfo, error) {
	return nil, errors.New("not used")
}

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

func newTestFeed(t *testing.T, external spoonacular.Client) (FeedService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewFeedService(
		recipe.NewRecipeRepository(db),
		engagement.NewEngagementRepository(db),
		external,
	)
	return svc, db
}

func seedPublic(t *testing.T, db *gorm.DB, title, tags string) *entities.Recipe {
	t.Helper()
	row := entities.Recipe{
		Title:       title,
		Ingredients: "i",
		Steps:       "s",
		IsPublic:    true,
		Source:      entities.RecipeSourceCurated,
		Tags:        tags,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("seed recipe: %v", err)
	}
	return &row
}

func TestHybridSearch_BlankQueryShortCircuits(t *testing.T) {
	external := &fakeExternal{enabled: true}
	svc, _ := newTestFeed(t, external)

	res, err := svc.HybridSearch(context.Background(), "   ", 0, 10, "")
	if err != nil {
		t.Fatalf("hybrid search: %v", err)
	}
	if len(res.Items) != 0 || res.LocalCount != 0 || res.ExternalCount != 0 {
		t.Fatalf("expected empty response, got %+v", res)
	}
	if external.lastNumber != 0 {
		t.Fatalf("expected no external call for blank query")
	}
}

func TestHybridSearch_ExternalTopUpArithmetic(t *testing.T) {
	external := &fakeExternal{
		enabled: true,
		cards: []spoonacular.RecipeCard{
			{ExternalID: "100", Title: "External Curry"},
			{ExternalID: "101", Title: "External Curry II"},
			{ExternalID: "102", Title: "External Curry III"},
		},
	}
	svc, db := newTestFeed(t, external)

	seedPublic(t, db, "Green Curry", "")
	seedPublic(t, db, "Red Curry", "")

	res, err := svc.HybridSearch(context.Background(), "curry", 0, 5, "")
	if err != nil {
		t.Fatalf("hybrid search: %v", err)
	}

	if res.LocalCount != 2 {
		t.Fatalf("expected 2 local items, got %d", res.LocalCount)
	}
	if external.lastNumber != 3 {
		t.Fatalf("expected provider asked for 3 items, got %d", external.lastNumber)
	}
	if res.ExternalCount != 3 {
		t.Fatalf("expected 3 external items, got %d", res.ExternalCount)
	}
	if len(res.Items) != 5 {
		t.Fatalf("expected 5 items total, got %d", len(res.Items))
	}

	last := res.Items[len(res.Items)-1]
	if !last.IsExternal || last.ID != nil || last.ExternalID == nil {
		t.Fatalf("expected trailing external item, got %+v", last)
	}
}

func TestHybridSearch_TagTopUpDeduplicates(t *testing.T) {
	external := &fakeExternal{enabled: false}
	svc, db := newTestFeed(t, external)

	// matches both by title and by tag, must appear once
	both := seedPublic(t, db, "Curry Noodles", "curry, noodles")
	seedPublic(t, db, "Plain Soup", "curry")

	res, err := svc.HybridSearch(context.Background(), "curry", 0, 10, "")
	if err != nil {
		t.Fatalf("hybrid search: %v", err)
	}
	if res.LocalCount != 2 {
		t.Fatalf("expected 2 local items, got %d", res.LocalCount)
	}
	seen := 0
	for _, item := range res.Items {
		if item.ID != nil && *item.ID == both.ID.String() {
			seen++
		}
	}
	if seen != 1 {
		t.Fatalf("expected deduplicated item to appear once, appeared %d times", seen)
	}
}

func TestHybridSearch_ProviderFailureDegrades(t *testing.T) {
	external := &fakeExternal{enabled: true, err: errors.New("upstream 500")}
	svc, db := newTestFeed(t, external)

	seedPublic(t, db, "Curry Rice", "")

	res, err := svc.HybridSearch(context.Background(), "curry", 0, 5, "")
	if err != nil {
		t.Fatalf("expected degraded response, got error: %v", err)
	}
	if res.LocalCount != 1 {
		t.Fatalf("expected local results to survive, got %d", res.LocalCount)
	}
	if res.ExternalCount != 0 {
		t.Fatalf("expected zero external results, got %d", res.ExternalCount)
	}
	if res.ExternalError == "" {
		t.Fatalf("expected external error to be reported")
	}
}

func TestHybridSearch_FullLocalPageSkipsProvider(t *testing.T) {
	external := &fakeExternal{enabled: true, cards: []spoonacular.RecipeCard{{ExternalID: "1", Title: "x"}}}
	svc, db := newTestFeed(t, external)

	seedPublic(t, db, "Curry One", "")
	seedPublic(t, db, "Curry Two", "")

	res, err := svc.HybridSearch(context.Background(), "curry", 0, 2, "")
	if err != nil {
		t.Fatalf("hybrid search: %v", err)
	}
	if res.ExternalCount != 0 || external.lastNumber != 0 {
		t.Fatalf("expected provider untouched when page is full")
	}
}

func TestHybridSearch_ExternalOffsetFollowsPage(t *testing.T) {
	external := &fakeExternal{enabled: true}
	svc, _ := newTestFeed(t, external)

	if _, err := svc.HybridSearch(context.Background(), "curry", 2, 10, ""); err != nil {
		t.Fatalf("hybrid search: %v", err)
	}
	if external.lastOffset != 20 {
		t.Fatalf("expected external offset 20, got %d", external.lastOffset)
	}
}

func TestSearchFeed_BlankQueryReturnsEmpty(t *testing.T) {
	svc, db := newTestFeed(t, &fakeExternal{})
	seedPublic(t, db, "Anything", "")

	res, err := svc.SearchFeed(context.Background(), "  ", "title", 0, 10, "")
	if err != nil {
		t.Fatalf("search feed: %v", err)
	}
	if len(res) != 0 {
		t.Fatalf("expected empty result for blank query, got %d", len(res))
	}
}

func TestFeed_ReportsLikedByMe(t *testing.T) {
	svc, db := newTestFeed(t, &fakeExternal{})

	user := entities.User{Username: "cook", Email: "cook@test.local"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	liked := seedPublic(t, db, "Liked Dish", "")
	seedPublic(t, db, "Other Dish", "")

	like := entities.RecipeLike{UserID: user.ID, RecipeID: liked.ID}
	if err := db.Create(&like).Error; err != nil {
		t.Fatalf("seed like: %v", err)
	}

	res, err := svc.Feed(context.Background(), 0, 10, user.ID.String())
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if len(res) != 2 {
		t.Fatalf("expected 2 recipes, got %d", len(res))
	}
	for _, item := range res {
		want := item.Title == "Liked Dish"
		if item.LikedByMe != want {
			t.Fatalf("recipe %q: liked_by_me=%v", item.Title, item.LikedByMe)
		}
	}
	// live count from the fact table, not the stored column
	for _, item := range res {
		if item.Title == "Liked Dish" && item.Likes != 1 {
			t.Fatalf("expected live like count 1, got %d", item.Likes)
		}
	}
}
