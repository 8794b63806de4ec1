package memory

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"adrotation/internal/adapter/usecase"
	"adrotation/internal/core/domain"
	"adrotation/internal/core/port"
)

func TestStore_TryConsumeRespectsBudget(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	id, err := s.Create(ctx, domain.Campaign{Active: true, Price: 1, Budget: 2})
	require.NoError(t, err)

	for _, want := range []bool{true, true, false, false} {
		ok, err := s.TryConsume(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, ok)
	}

	c, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), c.Consumed)

	eligible, err := s.ListEligible(ctx)
	require.NoError(t, err)
	assert.Empty(t, eligible)
}

func TestStore_TryConsumeInactiveOrMissing(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	id, err := s.Create(ctx, domain.Campaign{Active: false, Price: 1, Budget: 2})
	require.NoError(t, err)

	ok, err := s.TryConsume(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.TryConsume(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_UpdateKeepsConsumed(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	id, err := s.Create(ctx, domain.Campaign{Active: true, Text: "a", Price: 1, Budget: 3})
	require.NoError(t, err)
	_, err = s.TryConsume(ctx, id)
	require.NoError(t, err)

	require.NoError(t, s.Update(ctx, domain.Campaign{ID: id, Active: true, Text: "b", Price: 2, Budget: 5, Consumed: 0}))
	c, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "b", c.Text)
	assert.Equal(t, int64(5), c.Budget)
	assert.Equal(t, int64(1), c.Consumed)

	err = s.Update(ctx, domain.Campaign{ID: 9999})
	assert.ErrorIs(t, err, port.ErrNotFound)
}

// TestServeOne_ConcurrentSingleCampaign runs more concurrent serves than a
// single campaign has budget for and checks that exactly the budget is
// served while the rest report that nothing was left.
func TestServeOne_ConcurrentSingleCampaign(t *testing.T) {
	const (
		budget  = 25
		callers = 200
	)
	ctx := context.Background()
	s := NewStore()
	id, err := s.Create(ctx, domain.Campaign{Active: true, Price: 1.25, Budget: budget})
	require.NoError(t, err)

	coord := usecase.NewServingCoordinator(s, usecase.PriceSelector{}, usecase.NewStoreMeter(s))

	var served, empty atomic.Int64
	var g errgroup.Group
	for range callers {
		g.Go(func() error {
			c, err := coord.ServeOne(ctx)
			switch {
			case err == nil:
				if c.ID != id {
					return errors.New("served unexpected campaign")
				}
				served.Add(1)
			case errors.Is(err, port.ErrNoEligibleCampaign), errors.Is(err, port.ErrExhaustedByContention):
				empty.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int64(budget), served.Load())
	assert.Equal(t, int64(callers-budget), empty.Load())

	c, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(budget), c.Consumed)
}

// TestServeOne_ConcurrentManyCampaigns checks the budget invariant for every
// campaign when many serves compete over several campaigns.
func TestServeOne_ConcurrentManyCampaigns(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	budgets := map[int64]int64{}
	var total int64
	for i, b := range []int64{3, 7, 1, 0, 12} {
		id, err := s.Create(ctx, domain.Campaign{Active: true, Price: float64(i%2 + 1), Budget: b})
		require.NoError(t, err)
		budgets[id] = b
		total += b
	}

	coord := usecase.NewServingCoordinator(s, usecase.PriceSelector{}, usecase.NewStoreMeter(s))

	var served atomic.Int64
	var g errgroup.Group
	for range 100 {
		g.Go(func() error {
			if _, err := coord.ServeOne(ctx); err == nil {
				served.Add(1)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, total, served.Load())
	for id, b := range budgets {
		c, err := s.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, b, c.Consumed, "campaign %d", id)
	}
}

func TestStore_Files(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	id, err := s.CreateFile(ctx, "a.png")
	require.NoError(t, err)

	f, err := s.GetFile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "a.png", f.Path)

	require.NoError(t, s.DeleteFile(ctx, id))
	_, err = s.GetFile(ctx, id)
	assert.ErrorIs(t, err, port.ErrNotFound)
	assert.ErrorIs(t, s.DeleteFile(ctx, id), port.ErrNotFound)
}

func TestStore_UpdateBelowConsumed(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	id, err := s.Create(ctx, domain.Campaign{Active: true, Price: 1, Budget: 3})
	require.NoError(t, err)
	for range 2 {
		_, err = s.TryConsume(ctx, id)
		require.NoError(t, err)
	}

	err = s.Update(ctx, domain.Campaign{ID: id, Active: true, Price: 1, Budget: 1})
	assert.ErrorIs(t, err, port.ErrValidation)
}
