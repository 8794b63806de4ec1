package usecase

import (
	"context"
	"errors"
	"log/slog"

	"adrotation/internal/core/domain"
	"adrotation/internal/core/port"
)

var _ port.CampaignListener = (*BannerJanitor)(nil)

// BannerJanitor removes a banner once an update has replaced it.
type BannerJanitor struct {
	files  port.FileStore
	logger *slog.Logger
}

// NewBannerJanitor returns a listener deleting superseded banners from files.
func NewBannerJanitor(files port.FileStore, logger *slog.Logger) *BannerJanitor {
	return &BannerJanitor{files: files, logger: logger}
}

// CampaignCreated is a no-op.
func (j *BannerJanitor) CampaignCreated(context.Context, domain.Campaign) error {
	return nil
}

// CampaignUpdated deletes prev's banner when next refers to another one.
// A banner that is already gone is not an error.
func (j *BannerJanitor) CampaignUpdated(ctx context.Context, prev, next domain.Campaign) error {
	if prev.BannerFileID == next.BannerFileID || prev.BannerFileID == 0 {
		return nil
	}
	err := j.files.Delete(ctx, prev.BannerFileID)
	if errors.Is(err, port.ErrNotFound) {
		j.logger.Warn("superseded banner already removed", slog.Int64("banner_file_id", prev.BannerFileID))
		return nil
	}
	return err
}
