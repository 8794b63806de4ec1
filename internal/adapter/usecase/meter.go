package usecase

import (
	"context"
	"errors"

	"adrotation/internal/core/port"
)

var _ port.Meter = (*StoreMeter)(nil)

// StoreMeter charges displays through the store's conditional update. It
// keeps no state of its own: the store is the only source of truth for
// consumed counters.
type StoreMeter struct {
	store port.CampaignStore
}

// NewStoreMeter returns a meter backed by store.
func NewStoreMeter(store port.CampaignStore) *StoreMeter {
	return &StoreMeter{store: store}
}

// TryConsume charges one display against campaign id. A false result with
// a nil error means the campaign could not be charged any more.
func (m *StoreMeter) TryConsume(ctx context.Context, id int64) (bool, error) {
	ok, err := m.store.TryConsume(ctx, id)
	if err != nil {
		if errors.Is(err, port.ErrStorage) {
			return false, err
		}
		return false, port.StorageError("try consume", err)
	}
	return ok, nil
}
