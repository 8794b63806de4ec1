package redis

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"adrotation/internal/adapter/filestore"
	"adrotation/internal/adapter/memory"
	"adrotation/internal/adapter/usecase"
	"adrotation/internal/core/domain"
	"adrotation/internal/core/port"
)

func newTestStore(t *testing.T) (*CounterStore, *memory.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	campaigns := memory.NewStore()
	return NewCounterStore(client, campaigns, "test:"), campaigns, mr
}

func createCampaign(t *testing.T, s *CounterStore, repo *memory.Store, c domain.Campaign) int64 {
	t.Helper()
	ctx := context.Background()
	id, err := repo.Create(ctx, c)
	require.NoError(t, err)
	c.ID = id
	require.NoError(t, s.CampaignCreated(ctx, c))
	return id
}

func TestCounterStore_TryConsume(t *testing.T) {
	ctx := context.Background()
	s, repo, _ := newTestStore(t)
	id := createCampaign(t, s, repo, domain.Campaign{Active: true, Price: 1, Budget: 2})

	for _, want := range []bool{true, true, false} {
		ok, err := s.TryConsume(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, ok)
	}

	n, err := s.Consumed(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestCounterStore_TryConsumeUnknown(t *testing.T) {
	s, _, _ := newTestStore(t)

	ok, err := s.TryConsume(context.Background(), 404)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.Consumed(context.Background(), 404)
	assert.ErrorIs(t, err, port.ErrNotFound)
}

func TestCounterStore_InactiveIsNotConsumed(t *testing.T) {
	ctx := context.Background()
	s, repo, _ := newTestStore(t)
	id := createCampaign(t, s, repo, domain.Campaign{Active: false, Price: 1, Budget: 2})

	ok, err := s.TryConsume(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCounterStore_ListEligible(t *testing.T) {
	ctx := context.Background()
	s, repo, _ := newTestStore(t)
	spent := createCampaign(t, s, repo, domain.Campaign{Active: true, Price: 3, Budget: 1})
	open := createCampaign(t, s, repo, domain.Campaign{Active: true, Price: 1, Budget: 5})
	createCampaign(t, s, repo, domain.Campaign{Active: false, Price: 9, Budget: 5})

	ok, err := s.TryConsume(ctx, spent)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = s.TryConsume(ctx, open)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := s.ListEligible(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, open, got[0].ID)
	assert.Equal(t, int64(1), got[0].Consumed)
}

func TestCounterStore_ListEligibleBackfillsCounters(t *testing.T) {
	ctx := context.Background()
	s, repo, mr := newTestStore(t)

	// created without the listener, as if the redis meter was enabled later
	id, err := repo.Create(ctx, domain.Campaign{Active: true, Price: 1, Budget: 1})
	require.NoError(t, err)

	got, err := s.ListEligible(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", mr.HGet("test:campaign:1", "budget"))

	ok, err := s.TryConsume(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCounterStore_UpdateNeverDropsBudgetBelowConsumed(t *testing.T) {
	ctx := context.Background()
	s, repo, mr := newTestStore(t)
	c := domain.Campaign{Active: true, Price: 1, Budget: 3}
	c.ID = createCampaign(t, s, repo, c)

	for range 2 {
		_, err := s.TryConsume(ctx, c.ID)
		require.NoError(t, err)
	}

	next := c
	next.Budget = 1
	require.NoError(t, s.CampaignUpdated(ctx, c, next))
	assert.Equal(t, "2", mr.HGet("test:campaign:1", "budget"))

	ok, err := s.TryConsume(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	next.Budget = 4
	require.NoError(t, s.CampaignUpdated(ctx, c, next))
	ok, err = s.TryConsume(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCounterStore_ConcurrentServe(t *testing.T) {
	const (
		budget  = 15
		callers = 60
	)
	ctx := context.Background()
	s, repo, _ := newTestStore(t)
	id := createCampaign(t, s, repo, domain.Campaign{Active: true, Price: 2, Budget: budget})

	coord := usecase.NewServingCoordinator(s, usecase.PriceSelector{}, usecase.NewStoreMeter(s))

	var served atomic.Int64
	var g errgroup.Group
	for range callers {
		g.Go(func() error {
			if _, err := coord.ServeOne(ctx); err == nil {
				served.Add(1)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int64(budget), served.Load())
	n, err := s.Consumed(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(budget), n)
}

func TestCounterStore_StartsFromRecordedConsumed(t *testing.T) {
	ctx := context.Background()
	s, repo, _ := newTestStore(t)

	// served twice while displays were still charged on the campaign row
	id, err := repo.Create(ctx, domain.Campaign{Active: true, Price: 1, Budget: 2})
	require.NoError(t, err)
	for range 2 {
		ok, err := repo.TryConsume(ctx, id)
		require.NoError(t, err)
		require.True(t, ok)
	}

	got, err := s.ListEligible(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	for range 5 {
		ok, err := s.TryConsume(ctx, id)
		require.NoError(t, err)
		assert.False(t, ok)
	}
	n, err := s.Consumed(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestCounterStore_SyncNeverLowersConsumed(t *testing.T) {
	ctx := context.Background()
	s, repo, _ := newTestStore(t)

	id, err := repo.Create(ctx, domain.Campaign{Active: true, Price: 1, Budget: 4})
	require.NoError(t, err)
	ok, err := repo.TryConsume(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)

	c, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.NoError(t, s.CampaignCreated(ctx, c))
	n, err := s.Consumed(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	for range 2 {
		ok, err = s.TryConsume(ctx, id)
		require.NoError(t, err)
		require.True(t, ok)
	}

	// the row still says 1; the counter keeps 3
	require.NoError(t, s.CampaignUpdated(ctx, c, c))
	n, err = s.Consumed(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestCounterStore_ListEligibleRefreshesBudget(t *testing.T) {
	ctx := context.Background()
	s, repo, mr := newTestStore(t)
	c := domain.Campaign{Active: true, Price: 1, Budget: 5}
	c.ID = createCampaign(t, s, repo, c)

	// updated while the counter listener was unavailable
	lowered := c
	lowered.Budget = 1
	require.NoError(t, repo.Update(ctx, lowered))

	_, err := s.ListEligible(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1", mr.HGet("test:campaign:1", "budget"))
}

func TestCounterStore_UpdateBelowServedDisplaysIsRejected(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.DiscardHandler)
	s, repo, _ := newTestStore(t)
	files := filestore.New(afero.NewMemMapFs(), repo, "/storage/files", logger)
	serving := usecase.NewServingCoordinator(s, usecase.PriceSelector{}, usecase.NewStoreMeter(s))
	svc := usecase.NewAdvertisementUseCase(repo, files, serving, logger,
		usecase.WithListeners(s), usecase.WithConsumedReader(s))

	in := port.CampaignInput{
		Text:   "Ad A",
		Amount: 3,
		Price:  1.25,
		Banner: domain.Banner{Filename: "a.png", ContentType: "image/png", Data: []byte("png")},
	}
	id, err := svc.Create(ctx, in)
	require.NoError(t, err)
	for range 3 {
		_, err = svc.Run(ctx)
		require.NoError(t, err)
	}

	in.Amount = 1
	err = svc.Update(ctx, id, in)
	assert.ErrorIs(t, err, port.ErrValidation)

	c, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(3), c.Budget)
}
