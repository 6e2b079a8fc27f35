package domain

import (
	"time"
)

var (
	MessageSuccessGetFeed   = "success get feed"
	MessageSuccessGetSearch = "success search recipes"
	MessageSuccessCount     = "success count public recipes"

	MessageFailedGetFeed   = "failed to get feed"
	MessageFailedGetSearch = "failed to search recipes"
)

type (
	// FeedRecipe is the lightweight projection used for feed, search, and
	// history listings. Ingredients and steps stay out of it on purpose.
	FeedRecipe struct {
		ID        string    `json:"id"`
		Title     string    `json:"title"`
		ImageURL  string    `json:"image_url,omitempty"`
		Tags      string    `json:"tags,omitempty"`
		Likes     int64     `json:"likes"`
		LikedByMe bool      `json:"liked_by_me"`
		Views     int64     `json:"views"`
		Source    string    `json:"source"`
		CreatedAt time.Time `json:"created_at"`
	}

	// HybridSearchItem covers both local rows and external provider results.
	// External items carry no local id, likes, or views.
	HybridSearchItem struct {
		ID         *string    `json:"id"`
		Title      string     `json:"title"`
		ImageURL   string     `json:"image_url,omitempty"`
		Tags       string     `json:"tags,omitempty"`
		Likes      int64      `json:"likes"`
		LikedByMe  bool       `json:"liked_by_me"`
		Views      int64      `json:"views"`
		Source     string     `json:"source"`
		CreatedAt  *time.Time `json:"created_at"`
		IsExternal bool       `json:"is_external"`
		ExternalID *string    `json:"external_id"`
	}

	HybridSearchResponse struct {
		Items         []HybridSearchItem `json:"items"`
		LocalCount    int                `json:"local_count"`
		ExternalCount int                `json:"external_count"`
		ExternalError string             `json:"external_error,omitempty"`
	}
)
