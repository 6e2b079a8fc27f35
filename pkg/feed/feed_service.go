package feed

import (
	"Cookshare-Backend/domain"
	"Cookshare-Backend/entities"
	"Cookshare-Backend/pkg/engagement"
	"Cookshare-Backend/pkg/recipe"
	"Cookshare-Backend/pkg/spoonacular"
	"context"
	"strings"
)

type (
	FeedService interface {
		Feed(ctx context.Context, page, size int, userID string) ([]domain.FeedRecipe, error)
		SearchFeed(ctx context.Context, q, searchType string, page, size int, userID string) ([]domain.FeedRecipe, error)
		HybridSearch(ctx context.Context, q string, page, size int, userID string) (domain.HybridSearchResponse, error)
	}

	feedService struct {
		recipeRepository     recipe.RecipeRepository
		engagementRepository engagement.EngagementRepository
		external             spoonacular.Client
	}
)

func NewFeedService(recipeRepository recipe.RecipeRepository, engagementRepository engagement.EngagementRepository, external spoonacular.Client) FeedService {
	return &feedService{
		recipeRepository:     recipeRepository,
		engagementRepository: engagementRepository,
		external:             external,
	}
}

// Feed returns one page of public recipes ranked by likes, then views,
// then recency. userID may be blank for anonymous callers.
func (s *feedService) Feed(ctx context.Context, page, size int, userID string) ([]domain.FeedRecipe, error) {
	page = recipe.ClampPage(page)
	size = recipe.ClampPageSize(size, recipe.MaxFeedPageSize)

	rows, err := s.recipeRepository.RankedPublicPage(ctx, page, size)
	if err != nil {
		return nil, err
	}

	out := make([]domain.FeedRecipe, 0, len(rows))
	for _, row := range rows {
		out = append(out, s.toFeedRecipe(ctx, row, userID))
	}
	return out, nil
}

// SearchFeed searches public recipes locally, by title or by tags. A
// blank query returns an empty page instead of everything.
func (s *feedService) SearchFeed(ctx context.Context, q, searchType string, page, size int, userID string) ([]domain.FeedRecipe, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []domain.FeedRecipe{}, nil
	}

	page = recipe.ClampPage(page)
	size = recipe.ClampPageSize(size, recipe.MaxFeedPageSize)

	var (
		rows []*entities.Recipe
		err  error
	)
	if searchType == "tags" {
		rows, err = s.recipeRepository.SearchByTags(ctx, q, page, size)
	} else {
		rows, err = s.recipeRepository.SearchByTitle(ctx, q, page, size)
	}
	if err != nil {
		return nil, err
	}

	out := make([]domain.FeedRecipe, 0, len(rows))
	for _, row := range rows {
		out = append(out, s.toFeedRecipe(ctx, row, userID))
	}
	return out, nil
}

// HybridSearch fills a page from local title matches, tops it up with
// local tag matches, then asks the external provider for whatever room
// is left. Provider trouble degrades the response instead of failing it.
func (s *feedService) HybridSearch(ctx context.Context, q string, page, size int, userID string) (domain.HybridSearchResponse, error) {
	resp := domain.HybridSearchResponse{Items: []domain.HybridSearchItem{}}

	q = strings.TrimSpace(q)
	if q == "" {
		return resp, nil
	}

	page = recipe.ClampPage(page)
	size = recipe.ClampPageSize(size, recipe.MaxSearchPageSize)

	byTitle, err := s.recipeRepository.SearchByTitle(ctx, q, page, size)
	if err != nil {
		return resp, err
	}

	seen := make(map[string]bool, len(byTitle))
	locals := make([]*entities.Recipe, 0, size)
	for _, row := range byTitle {
		seen[row.ID.String()] = true
		locals = append(locals, row)
	}

	if len(locals) < size {
		byTags, err := s.recipeRepository.SearchByTags(ctx, q, page, size)
		if err != nil {
			return resp, err
		}
		for _, row := range byTags {
			if len(locals) >= size {
				break
			}
			if seen[row.ID.String()] {
				continue
			}
			seen[row.ID.String()] = true
			locals = append(locals, row)
		}
	}

	for _, row := range locals {
		feedRow := s.toFeedRecipe(ctx, row, userID)
		id := feedRow.ID
		createdAt := feedRow.CreatedAt
		resp.Items = append(resp.Items, domain.HybridSearchItem{
			ID:        &id,
			Title:     feedRow.Title,
			ImageURL:  feedRow.ImageURL,
			Tags:      feedRow.Tags,
			Likes:     feedRow.Likes,
			LikedByMe: feedRow.LikedByMe,
			Views:     feedRow.Views,
			Source:    feedRow.Source,
			CreatedAt: &createdAt,
		})
	}
	resp.LocalCount = len(resp.Items)

	remaining := size - resp.LocalCount
	if remaining <= 0 || !s.external.Enabled() {
		return resp, nil
	}

	cards, err := s.external.Search(ctx, q, remaining, page*size)
	if err != nil {
		resp.ExternalError = err.Error()
		return resp, nil
	}

	for i := range cards {
		card := cards[i]
		resp.Items = append(resp.Items, domain.HybridSearchItem{
			Title:      card.Title,
			ImageURL:   card.ImageURL,
			Source:     entities.RecipeSourceSpoonacular,
			IsExternal: true,
			ExternalID: &card.ExternalID,
		})
	}
	resp.ExternalCount = len(cards)
	return resp, nil
}

func (s *feedService) toFeedRecipe(ctx context.Context, row *entities.Recipe, userID string) domain.FeedRecipe {
	out := domain.FeedRecipe{
		ID:        row.ID.String(),
		Title:     row.Title,
		ImageURL:  row.ImageURL,
		Tags:      row.Tags,
		Likes:     row.Likes,
		Views:     row.Views,
		Source:    row.Source,
		CreatedAt: row.CreatedAt,
	}

	if count, err := s.engagementRepository.CountLikes(ctx, out.ID); err == nil {
		out.Likes = count
	}
	if userID != "" {
		if liked, err := s.engagementRepository.IsLiked(ctx, userID, out.ID); err == nil {
			out.LikedByMe = liked
		}
	}
	return out
}
