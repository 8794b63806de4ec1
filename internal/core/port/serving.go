package port

import (
	"context"
	"time"

	"adrotation/internal/core/domain"
)

// Selector ranks a candidate set and returns the campaign to serve next.
type Selector interface {
	PickBest(candidates []domain.Campaign) (domain.Campaign, bool)
}

// Meter charges one display against a campaign budget.
type Meter interface {
	TryConsume(ctx context.Context, id int64) (bool, error)
}

// Serve outcomes reported to a ServeObserver.
const (
	OutcomeServed     = "served"
	OutcomeNotFound   = "not_found"
	OutcomeExhausted  = "exhausted"
	OutcomeTimeout    = "timeout"
	OutcomeStorageErr = "storage_error"
)

// ServeObserver receives the outcome of every serve attempt.
type ServeObserver interface {
	ObserveServe(outcome string, attempts int, elapsed time.Duration)
}

// CampaignListener is notified synchronously by the administrative path
// after a campaign has been persisted. prev is the state before the update.
type CampaignListener interface {
	CampaignCreated(ctx context.Context, c domain.Campaign) error
	CampaignUpdated(ctx context.Context, prev, next domain.Campaign) error
}
