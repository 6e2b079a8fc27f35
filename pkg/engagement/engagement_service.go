package engagement

import (
	"Cookshare-Backend/domain"
	"Cookshare-Backend/pkg/recipe"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type (
	EngagementService interface {
		ToggleLike(ctx context.Context, userID, recipeID string) (domain.ToggleLikeResponse, error)
		ListMyLikes(ctx context.Context, userID string) ([]domain.LikedRecipe, error)
		RecordView(ctx context.Context, userID, recipeID string) (domain.RecordViewResponse, error)
		TrackHistory(ctx context.Context, userID, recipeID string) (domain.TrackHistoryResponse, error)
		ListHistory(ctx context.Context, userID string) ([]domain.HistoryEntry, error)
		RemoveHistory(ctx context.Context, userID, recipeID string) (domain.RemoveHistoryResponse, error)
	}

	engagementService struct {
		engagementRepository EngagementRepository
		recipeRepository     recipe.RecipeRepository
	}
)

func NewEngagementService(engagementRepository EngagementRepository, recipeRepository recipe.RecipeRepository) EngagementService {
	return &engagementService{
		engagementRepository: engagementRepository,
		recipeRepository:     recipeRepository,
	}
}

// ToggleLike flips the caller's like fact for the recipe. The count in the
// response is recomputed from the fact rows so a drifted recipe counter can
// never leak into the answer. The recipe row itself is left untouched on
// purpose: the likes column is a display aid, not the source of truth.
func (s *engagementService) ToggleLike(ctx context.Context, userID, recipeID string) (domain.ToggleLikeResponse, error) {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ToggleLikeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.ToggleLikeResponse{}, err
	}

	var liked bool
	existing, err := s.engagementRepository.GetLike(ctx, userID, recipeID)
	if err == nil {
		if err := s.engagementRepository.DeleteLike(ctx, existing); err != nil {
			return domain.ToggleLikeResponse{}, err
		}
		liked = false
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := s.engagementRepository.CreateLike(ctx, userID, recipeID); err != nil {
			return domain.ToggleLikeResponse{}, err
		}
		liked = true
	} else {
		return domain.ToggleLikeResponse{}, err
	}

	count, err := s.engagementRepository.CountLikes(ctx, recipeID)
	if err != nil {
		return domain.ToggleLikeResponse{}, err
	}

	return domain.ToggleLikeResponse{
		RecipeID: recipeID,
		Liked:    liked,
		Likes:    count,
	}, nil
}

func (s *engagementService) ListMyLikes(ctx context.Context, userID string) ([]domain.LikedRecipe, error) {
	likes, err := s.engagementRepository.ListLikes(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.LikedRecipe, 0, len(likes))
	for _, l := range likes {
		if l.Recipe == nil {
			continue
		}

		count, err := s.engagementRepository.CountLikes(ctx, l.RecipeID.String())
		if err != nil {
			return nil, err
		}

		out = append(out, domain.LikedRecipe{
			ID:       l.Recipe.ID.String(),
			Title:    l.Recipe.Title,
			ImageURL: l.Recipe.ImageURL,
			Likes:    count,
		})
	}
	return out, nil
}

// RecordView charges the caller one view for a public recipe, at most once
// per (user, recipe) pair.
func (s *engagementService) RecordView(ctx context.Context, userID, recipeID string) (domain.RecordViewResponse, error) {
	if _, err := s.recipeRepository.GetPublicRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecordViewResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecordViewResponse{}, err
	}

	counted, views, err := s.engagementRepository.RecordView(ctx, userID, recipeID)
	if err != nil {
		return domain.RecordViewResponse{}, err
	}

	return domain.RecordViewResponse{
		RecipeID: recipeID,
		Views:    views,
		Counted:  counted,
	}, nil
}

func (s *engagementService) TrackHistory(ctx context.Context, userID, recipeID string) (domain.TrackHistoryResponse, error) {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TrackHistoryResponse{}, domain.ErrRecipeNotFound
		}
		return domain.TrackHistoryResponse{}, err
	}

	if err := s.engagementRepository.UpsertHistory(ctx, userID, recipeID, time.Now()); err != nil {
		return domain.TrackHistoryResponse{}, err
	}

	return domain.TrackHistoryResponse{
		RecipeID: recipeID,
		Tracked:  true,
	}, nil
}

// ListHistory returns the caller's history newest first, joined to a light
// recipe projection. Entries whose recipe no longer resolves are dropped.
func (s *engagementService) ListHistory(ctx context.Context, userID string) ([]domain.HistoryEntry, error) {
	history, err := s.engagementRepository.ListHistory(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(history))
	for _, h := range history {
		ids = append(ids, h.RecipeID.String())
	}

	recipes, err := s.recipeRepository.GetLightByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(recipes))
	for i, r := range recipes {
		byID[r.ID.String()] = i
	}

	out := make([]domain.HistoryEntry, 0, len(history))
	for _, h := range history {
		idx, ok := byID[h.RecipeID.String()]
		if !ok {
			continue
		}
		r := recipes[idx]

		count, err := s.engagementRepository.CountLikes(ctx, h.RecipeID.String())
		if err != nil {
			return nil, err
		}

		out = append(out, domain.HistoryEntry{
			FeedRecipe: domain.FeedRecipe{
				ID:        r.ID.String(),
				Title:     r.Title,
				ImageURL:  r.ImageURL,
				Tags:      r.Tags,
				Likes:     count,
				Views:     r.Views,
				Source:    r.Source,
				CreatedAt: r.CreatedAt,
			},
			LastViewedAt: h.LastViewedAt,
		})
	}
	return out, nil
}

// RemoveHistory deletes the entry when present and reports success either
// way.
func (s *engagementService) RemoveHistory(ctx context.Context, userID, recipeID string) (domain.RemoveHistoryResponse, error) {
	if err := s.engagementRepository.DeleteHistory(ctx, userID, recipeID); err != nil {
		return domain.RemoveHistoryResponse{}, err
	}

	return domain.RemoveHistoryResponse{
		RecipeID: recipeID,
		Deleted:  true,
	}, nil
}
