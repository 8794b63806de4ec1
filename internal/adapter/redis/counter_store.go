package redis

import (
	"context"
	_ "embed"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"

	"adrotation/internal/core/domain"
	"adrotation/internal/core/port"
)

var (
	//go:embed lua/try_consume.lua
	tryConsumeScript string

	//go:embed lua/sync_budget.lua
	syncBudgetScript string

	_ port.CampaignStore    = (*CounterStore)(nil)
	_ port.CampaignListener = (*CounterStore)(nil)
	_ port.ConsumedReader   = (*CounterStore)(nil)
)

// CounterStore keeps consumed counters in Redis hashes, one per campaign,
// holding budget, active and consumed. Campaign attributes still come from
// the lister; only the counters live here. The charge is a Lua script so
// Redis runs the check and the increment as one command.
type CounterStore struct {
	cmd        redis.Cmdable
	lister     port.CampaignLister
	keyPrefix  string
	tryConsume *redis.Script
	syncBudget *redis.Script
}

// NewCounterStore returns a counter store reading campaigns from lister.
func NewCounterStore(cmd redis.Cmdable, lister port.CampaignLister, keyPrefix string) *CounterStore {
	return &CounterStore{
		cmd:        cmd,
		lister:     lister,
		keyPrefix:  keyPrefix,
		tryConsume: redis.NewScript(tryConsumeScript),
		syncBudget: redis.NewScript(syncBudgetScript),
	}
}

// ListEligible returns the active campaigns whose Redis counter is below
// their budget, with Consumed taken from Redis. Every listed counter is
// synced with its campaign first: budget and active flag are copied, and a
// counter that is missing or behind the row starts from the row's Consumed.
func (s *CounterStore) ListEligible(ctx context.Context) ([]domain.Campaign, error) {
	active, err := s.lister.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if len(active) == 0 {
		return nil, nil
	}

	synced := make([]*redis.Cmd, len(active))
	_, err = s.cmd.Pipelined(ctx, func(p redis.Pipeliner) error {
		for i, c := range active {
			synced[i] = s.syncBudget.Eval(ctx, p, []string{s.counterKey(c.ID)}, s.syncArgs(c)...)
		}
		return nil
	})
	if err != nil {
		return nil, port.StorageError("sync counters", err)
	}

	eligible := make([]domain.Campaign, 0, len(active))
	for i, c := range active {
		n, err := synced[i].Int64()
		if err != nil {
			return nil, port.StorageError("sync counters", err)
		}
		c.Consumed = n
		if c.Eligible() {
			eligible = append(eligible, c)
		}
	}
	return eligible, nil
}

// TryConsume charges one display if the counter is below its budget.
func (s *CounterStore) TryConsume(ctx context.Context, id int64) (bool, error) {
	n, err := s.tryConsume.Run(ctx, s.cmd, []string{s.counterKey(id)}).Int64()
	if err != nil {
		return false, port.StorageError("try consume", err)
	}
	return n == 1, nil
}

// Consumed returns the counter of campaign id, or port.ErrNotFound when
// Redis holds no counter for it.
func (s *CounterStore) Consumed(ctx context.Context, id int64) (int64, error) {
	n, err := s.cmd.HGet(ctx, s.counterKey(id), "consumed").Int64()
	if errors.Is(err, redis.Nil) {
		return 0, port.ErrNotFound
	}
	if err != nil {
		return 0, port.StorageError("read counter", err)
	}
	return n, nil
}

// CampaignCreated initialises the counter of a new campaign.
func (s *CounterStore) CampaignCreated(ctx context.Context, c domain.Campaign) error {
	return s.sync(ctx, c)
}

// CampaignUpdated copies the new budget and active flag to the counter.
func (s *CounterStore) CampaignUpdated(ctx context.Context, _, next domain.Campaign) error {
	return s.sync(ctx, next)
}

func (s *CounterStore) sync(ctx context.Context, c domain.Campaign) error {
	err := s.syncBudget.Run(ctx, s.cmd, []string{s.counterKey(c.ID)}, s.syncArgs(c)...).Err()
	if err != nil {
		return port.StorageError("sync counter", err)
	}
	return nil
}

func (s *CounterStore) syncArgs(c domain.Campaign) []any {
	return []any{c.Budget, activeFlag(c.Active), c.Consumed}
}

func (s *CounterStore) counterKey(id int64) string {
	return s.keyPrefix + "campaign:" + strconv.FormatInt(id, 10)
}

func activeFlag(active bool) string {
	if active {
		return "1"
	}
	return "0"
}
