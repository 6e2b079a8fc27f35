package domain

import (
	"time"
)

var (
	MessageSuccessToggleLike    = "success toggle like"
	MessageSuccessGetLikes      = "success get liked recipes"
	MessageSuccessRecordView    = "success record view"
	MessageSuccessTrackHistory  = "success track history"
	MessageSuccessGetHistory    = "success get history"
	MessageSuccessRemoveHistory = "success remove history entry"

	MessageFailedToggleLike    = "failed to toggle like"
	MessageFailedGetLikes      = "failed to get liked recipes"
	MessageFailedRecordView    = "failed to record view"
	MessageFailedTrackHistory  = "failed to track history"
	MessageFailedGetHistory    = "failed to get history"
	MessageFailedRemoveHistory = "failed to remove history entry"
)

type (
	ToggleLikeResponse struct {
		RecipeID string `json:"recipe_id"`
		Liked    bool   `json:"liked"`
		// Likes is always recomputed from the like facts; the cached
		// counter on the recipe row is never trusted here.
		Likes int64 `json:"likes"`
	}

	LikedRecipe struct {
		ID       string `json:"id"`
		Title    string `json:"title"`
		ImageURL string `json:"image_url,omitempty"`
		Likes    int64  `json:"likes"`
	}

	RecordViewResponse struct {
		RecipeID string `json:"recipe_id"`
		Views    int64  `json:"views"`
		Counted  bool   `json:"counted"`
	}

	TrackHistoryResponse struct {
		RecipeID string `json:"recipe_id"`
		Tracked  bool   `json:"tracked"`
	}

	HistoryEntry struct {
		FeedRecipe
		LastViewedAt time.Time `json:"last_viewed_at"`
	}

	RemoveHistoryResponse struct {
		RecipeID string `json:"recipe_id"`
		Deleted  bool   `json:"deleted"`
	}
)
