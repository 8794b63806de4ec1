package usecase

import (
	"context"
	"errors"
	"log/slog"

	"adrotation/internal/core/domain"
	"adrotation/internal/core/port"
)

var _ port.AdvertisementUseCase = (*AdvertisementUseCase)(nil)

// AdvertisementUseCase implements the administrative operations on
// campaigns and the serving entry point. Listeners are invoked in order
// after each successful create or update; their failures are logged and do
// not undo the committed write.
type AdvertisementUseCase struct {
	repo      port.CampaignRepository
	files     port.FileStore
	serving   *ServingCoordinator
	counters  port.ConsumedReader
	listeners []port.CampaignListener
	logger    *slog.Logger
}

// UseCaseOption customises an AdvertisementUseCase.
type UseCaseOption func(*AdvertisementUseCase)

// WithListeners appends listeners notified after creates and updates.
func WithListeners(l ...port.CampaignListener) UseCaseOption {
	return func(u *AdvertisementUseCase) {
		u.listeners = append(u.listeners, l...)
	}
}

// WithConsumedReader makes Update check new budgets against counters kept
// outside the repository, such as the redis meter.
func WithConsumedReader(r port.ConsumedReader) UseCaseOption {
	return func(u *AdvertisementUseCase) {
		u.counters = r
	}
}

// NewAdvertisementUseCase creates the use case.
func NewAdvertisementUseCase(
	repo port.CampaignRepository,
	files port.FileStore,
	serving *ServingCoordinator,
	logger *slog.Logger,
	opts ...UseCaseOption,
) *AdvertisementUseCase {
	u := &AdvertisementUseCase{
		repo:    repo,
		files:   files,
		serving: serving,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Create saves the banner, then the campaign. The banner is removed again
// when the campaign cannot be stored.
func (u *AdvertisementUseCase) Create(ctx context.Context, in port.CampaignInput) (int64, error) {
	bannerID, err := u.files.Save(ctx, in.Banner.Data, in.Banner.StoredName())
	if err != nil {
		return 0, err
	}
	c := domain.Campaign{
		Active:       true,
		Text:         in.Text,
		Price:        in.Price,
		Budget:       in.Amount,
		BannerFileID: bannerID,
	}
	c.ID, err = u.repo.Create(ctx, c)
	if err != nil {
		u.discardBanner(ctx, bannerID)
		return 0, err
	}
	for _, l := range u.listeners {
		if err = l.CampaignCreated(ctx, c); err != nil {
			u.logger.Error("campaign created listener failed",
				slog.Int64("campaign_id", c.ID), slog.Any("error", err))
		}
	}
	return c.ID, nil
}

// Update replaces text, price, budget and banner of campaign id.
func (u *AdvertisementUseCase) Update(ctx context.Context, id int64, in port.CampaignInput) error {
	prev, err := u.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	consumed, err := u.consumed(ctx, prev)
	if err != nil {
		return err
	}
	if in.Amount < consumed {
		return port.NewValidationError("amount", "below the number of displays already served")
	}
	bannerID, err := u.files.Save(ctx, in.Banner.Data, in.Banner.StoredName())
	if err != nil {
		return err
	}
	next := prev
	next.Text = in.Text
	next.Price = in.Price
	next.Budget = in.Amount
	next.BannerFileID = bannerID
	if err = u.repo.Update(ctx, next); err != nil {
		u.discardBanner(ctx, bannerID)
		return err
	}
	for _, l := range u.listeners {
		if err = l.CampaignUpdated(ctx, prev, next); err != nil {
			u.logger.Error("campaign updated listener failed",
				slog.Int64("campaign_id", next.ID), slog.Any("error", err))
		}
	}
	return nil
}

// consumed returns the displays already served for c, taking the larger of
// the repository value and the external counter when there is one.
func (u *AdvertisementUseCase) consumed(ctx context.Context, c domain.Campaign) (int64, error) {
	if u.counters == nil {
		return c.Consumed, nil
	}
	n, err := u.counters.Consumed(ctx, c.ID)
	switch {
	case errors.Is(err, port.ErrNotFound):
		return c.Consumed, nil
	case err != nil:
		return 0, err
	}
	return max(n, c.Consumed), nil
}

// Get returns campaign id.
func (u *AdvertisementUseCase) Get(ctx context.Context, id int64) (domain.Campaign, error) {
	return u.repo.Get(ctx, id)
}

// Run serves one campaign and resolves its banner URL.
func (u *AdvertisementUseCase) Run(ctx context.Context) (*port.RunResponse, error) {
	c, err := u.serving.ServeOne(ctx)
	if err != nil {
		return nil, err
	}
	resp := &port.RunResponse{
		ID:           c.ID,
		Text:         c.Text,
		BannerFileID: c.BannerFileID,
	}
	// The display is already charged; a missing banner must not hide it.
	url, err := u.files.URLOf(context.WithoutCancel(ctx), c.BannerFileID)
	switch {
	case err == nil:
		resp.BannerURL = url
	case errors.Is(err, port.ErrNotFound):
		u.logger.Warn("served campaign has no banner",
			slog.Int64("campaign_id", c.ID), slog.Int64("banner_file_id", c.BannerFileID))
	default:
		return nil, err
	}
	return resp, nil
}

func (u *AdvertisementUseCase) discardBanner(ctx context.Context, id int64) {
	if err := u.files.Delete(context.WithoutCancel(ctx), id); err != nil {
		u.logger.Error("discard banner", slog.Int64("banner_file_id", id), slog.Any("error", err))
	}
}
