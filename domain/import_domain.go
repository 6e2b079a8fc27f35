package domain

import "errors"

var (
	MessageSuccessImport = "success import recipe"
	MessageSuccessSync   = "success sync external recipes"
	MessageSuccessSeed   = "success seed recipes"

	MessageFailedImport = "failed to import recipe"
	MessageFailedSync   = "failed to sync external recipes"
	MessageFailedSeed   = "failed to seed recipes"

	ErrProviderDisabled    = errors.New("external recipe provider disabled")
	ErrProviderFetchFailed = errors.New("failed to fetch external recipe")
)

type (
	ImportResponse struct {
		ID       string `json:"id"`
		Imported bool   `json:"imported"`
	}

	SyncResponse struct {
		Saved  int    `json:"saved"`
		Source string `json:"source"`
	}

	SeedResponse struct {
		Requested int `json:"requested"`
		Inserted  int `json:"inserted"`
	}
)
