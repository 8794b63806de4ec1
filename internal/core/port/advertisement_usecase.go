package port

import (
	"context"

	"adrotation/internal/core/domain"
)

// AdvertisementUseCase is the primary port used by the HTTP adapter.
type AdvertisementUseCase interface {
	// Create stores the banner and a new campaign and returns its id.
	Create(ctx context.Context, in CampaignInput) (int64, error)
	// Update replaces the campaign attributes and banner. It returns
	// ErrNotFound for an unknown id.
	Update(ctx context.Context, id int64, in CampaignInput) error
	// Get returns the campaign or ErrNotFound.
	Get(ctx context.Context, id int64) (domain.Campaign, error)
	// Run serves one campaign and charges its budget. It returns
	// ErrNoEligibleCampaign, ErrExhaustedByContention or ErrServeTimeout
	// when nothing was served.
	Run(ctx context.Context) (*RunResponse, error)
}

// CampaignInput carries validated fields of a create or update request.
type CampaignInput struct {
	Text   string
	Amount int64
	Price  float64
	Banner domain.Banner
}

// RunResponse describes the campaign served by Run.
type RunResponse struct {
	ID           int64  `json:"id"`
	Text         string `json:"text"`
	BannerFileID int64  `json:"banner_file_id"`
	BannerURL    string `json:"banner_url"`
}
