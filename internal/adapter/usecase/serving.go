package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"adrotation/internal/core/domain"
	"adrotation/internal/core/port"
)

// ServingCoordinator serves one campaign per call. It ranks a snapshot of
// eligible campaigns and charges the winner; when the winner was exhausted
// by a concurrent serve it drops it and tries the next best one. At most
// one candidate is dropped per attempt, so a call makes at most as many
// attempts as there were candidates.
type ServingCoordinator struct {
	store    port.CampaignStore
	selector port.Selector
	meter    port.Meter
	observer port.ServeObserver
	logger   *slog.Logger
}

// CoordinatorOption customises a ServingCoordinator.
type CoordinatorOption func(*ServingCoordinator)

// WithObserver reports every serve outcome to o.
func WithObserver(o port.ServeObserver) CoordinatorOption {
	return func(c *ServingCoordinator) {
		if o != nil {
			c.observer = o
		}
	}
}

// WithLogger sets the logger used for contention and failure messages.
func WithLogger(l *slog.Logger) CoordinatorOption {
	return func(c *ServingCoordinator) {
		c.logger = l
	}
}

// NewServingCoordinator wires the coordinator from its collaborators.
func NewServingCoordinator(store port.CampaignStore, selector port.Selector, meter port.Meter, opts ...CoordinatorOption) *ServingCoordinator {
	c := &ServingCoordinator{
		store:    store,
		selector: selector,
		meter:    meter,
		observer: nopObserver{},
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ServeOne selects the best eligible campaign and charges one display
// against it. It returns port.ErrNoEligibleCampaign when nothing is
// eligible, port.ErrExhaustedByContention when every candidate was consumed
// by concurrent serves, and port.ErrServeTimeout when ctx is done before a
// campaign was charged. A campaign whose charge succeeded is always
// returned, even if ctx expired meanwhile.
func (s *ServingCoordinator) ServeOne(ctx context.Context) (domain.Campaign, error) {
	start := time.Now()
	attempts := 0
	c, outcome, err := s.serve(ctx, &attempts)
	s.observer.ObserveServe(outcome, attempts, time.Since(start))
	return c, err
}

func (s *ServingCoordinator) serve(ctx context.Context, attempts *int) (domain.Campaign, string, error) {
	if err := ctx.Err(); err != nil {
		return domain.Campaign{}, port.OutcomeTimeout, timeoutError(err)
	}

	listed, err := s.store.ListEligible(ctx)
	if err != nil {
		return s.failure(ctx, "list eligible", err)
	}
	candidates := slices.Clone(listed)

	for range len(listed) {
		winner, ok := s.selector.PickBest(candidates)
		if !ok {
			break
		}
		if err = ctx.Err(); err != nil {
			return domain.Campaign{}, port.OutcomeTimeout, timeoutError(err)
		}

		*attempts++
		consumed, err := s.meter.TryConsume(ctx, winner.ID)
		if err != nil {
			return s.failure(ctx, "try consume", err)
		}
		if consumed {
			winner.Consumed++
			return winner, port.OutcomeServed, nil
		}

		s.logger.Debug("campaign exhausted by concurrent serve",
			slog.Int64("campaign_id", winner.ID),
			slog.Int("attempt", *attempts))
		candidates = slices.DeleteFunc(candidates, func(c domain.Campaign) bool {
			return c.ID == winner.ID
		})
	}

	if len(listed) == 0 {
		return domain.Campaign{}, port.OutcomeNotFound, port.ErrNoEligibleCampaign
	}
	return domain.Campaign{}, port.OutcomeExhausted, port.ErrExhaustedByContention
}

// failure classifies a store error. Errors caused by the caller deadline
// are reported as timeouts, everything else as storage failures.
func (s *ServingCoordinator) failure(ctx context.Context, op string, err error) (domain.Campaign, string, error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return domain.Campaign{}, port.OutcomeTimeout, timeoutError(ctxErr)
	}
	s.logger.Error("serve failed", slog.String("op", op), slog.Any("error", err))
	if !errors.Is(err, port.ErrStorage) {
		err = port.StorageError(op, err)
	}
	return domain.Campaign{}, port.OutcomeStorageErr, err
}

func timeoutError(err error) error {
	return fmt.Errorf("%w: %w", port.ErrServeTimeout, err)
}

type nopObserver struct{}

func (nopObserver) ObserveServe(string, int, time.Duration) {}
