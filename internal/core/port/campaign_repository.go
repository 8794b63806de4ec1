package port

import (
	"context"

	"adrotation/internal/core/domain"
)

// CampaignStore is the part of campaign persistence the serving path relies
// on. Implementations must be safe for concurrent use.
type CampaignStore interface {
	// ListEligible returns a snapshot of campaigns that are active and have
	// consumed < budget at call time. The snapshot may be stale by the time
	// any of its campaigns is consumed.
	ListEligible(ctx context.Context) ([]domain.Campaign, error)
	// TryConsume increments the consumed counter of the campaign if and only
	// if it is still below the budget, as a single indivisible operation. It
	// reports false when the campaign is exhausted, inactive or gone.
	TryConsume(ctx context.Context, id int64) (bool, error)
}

// CampaignLister lists active campaigns regardless of their consumption.
// It lets a counter store keep the consumed counters somewhere else while
// reading campaign attributes from the repository.
type CampaignLister interface {
	ListActive(ctx context.Context) ([]domain.Campaign, error)
}

// CampaignRepository is the administrative persistence of campaigns. It
// shares the storage with CampaignStore but never touches Consumed.
type CampaignRepository interface {
	// Create stores c with Consumed = 0 and returns the new id.
	Create(ctx context.Context, c domain.Campaign) (int64, error)
	// Update replaces the mutable attributes of the campaign with c.ID.
	// It returns ErrNotFound when the campaign does not exist.
	Update(ctx context.Context, c domain.Campaign) error
	// Get returns the campaign or ErrNotFound.
	Get(ctx context.Context, id int64) (domain.Campaign, error)
}

// FileRepository stores banner file records.
type FileRepository interface {
	CreateFile(ctx context.Context, path string) (int64, error)
	GetFile(ctx context.Context, id int64) (domain.File, error)
	DeleteFile(ctx context.Context, id int64) error
}

// FileStore persists banner bytes together with their file record.
type FileStore interface {
	Save(ctx context.Context, data []byte, filename string) (int64, error)
	Delete(ctx context.Context, id int64) error
	URLOf(ctx context.Context, id int64) (string, error)
}

// ConsumedReader reads the authoritative consumed counter of a campaign
// when it is kept outside the campaign repository. It returns ErrNotFound
// when no counter exists for id.
type ConsumedReader interface {
	Consumed(ctx context.Context, id int64) (int64, error)
}
