// Package memory keeps campaigns and banner file records in process
// memory. It backs local development and the HTTP tests.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"adrotation/internal/core/domain"
	"adrotation/internal/core/port"
)

var (
	_ port.CampaignStore      = (*Store)(nil)
	_ port.CampaignRepository = (*Store)(nil)
	_ port.CampaignLister     = (*Store)(nil)
	_ port.FileRepository     = (*Store)(nil)
)

// Store is a mutex guarded campaign and file store. TryConsume holds the
// write lock for the check and the increment, which makes it the same
// indivisible conditional update the SQL store performs.
type Store struct {
	mu        sync.RWMutex
	campaigns map[int64]domain.Campaign
	files     map[int64]domain.File
	nextID    int64
	nextFile  int64
	now       func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		campaigns: make(map[int64]domain.Campaign),
		files:     make(map[int64]domain.File),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// ListEligible returns active campaigns with budget left, ordered by id.
func (s *Store) ListEligible(context.Context) ([]domain.Campaign, error) {
	return s.list(domain.Campaign.Eligible), nil
}

// ListActive returns active campaigns ordered by id.
func (s *Store) ListActive(context.Context) ([]domain.Campaign, error) {
	return s.list(func(c domain.Campaign) bool { return c.Active }), nil
}

func (s *Store) list(keep func(domain.Campaign) bool) []domain.Campaign {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Campaign, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		if keep(c) {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b domain.Campaign) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// TryConsume charges one display if the campaign is still eligible.
func (s *Store) TryConsume(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.campaigns[id]
	if !ok || !c.Eligible() {
		return false, nil
	}
	c.Consumed++
	c.UpdatedAt = s.now()
	s.campaigns[id] = c
	return true, nil
}

// Create stores c as a new campaign with nothing consumed.
func (s *Store) Create(_ context.Context, c domain.Campaign) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	c.ID = s.nextID
	c.Consumed = 0
	c.CreatedAt = s.now()
	c.UpdatedAt = c.CreatedAt
	s.campaigns[c.ID] = c
	return c.ID, nil
}

// Update replaces the administrative attributes of c.ID.
func (s *Store) Update(_ context.Context, c domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.campaigns[c.ID]
	if !ok {
		return port.ErrNotFound
	}
	if c.Budget < cur.Consumed {
		return port.NewValidationError("amount", "below the number of displays already served")
	}
	cur.Active = c.Active
	cur.Text = c.Text
	cur.Price = c.Price
	cur.Budget = c.Budget
	cur.BannerFileID = c.BannerFileID
	cur.UpdatedAt = s.now()
	s.campaigns[c.ID] = cur
	return nil
}

// Get returns campaign id or port.ErrNotFound.
func (s *Store) Get(_ context.Context, id int64) (domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.campaigns[id]
	if !ok {
		return domain.Campaign{}, port.ErrNotFound
	}
	return c, nil
}

// CreateFile records a stored banner.
func (s *Store) CreateFile(_ context.Context, path string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextFile++
	s.files[s.nextFile] = domain.File{ID: s.nextFile, Path: path, CreatedAt: s.now()}
	return s.nextFile, nil
}

// GetFile returns file id or port.ErrNotFound.
func (s *Store) GetFile(_ context.Context, id int64) (domain.File, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.files[id]
	if !ok {
		return domain.File{}, port.ErrNotFound
	}
	return f, nil
}

// DeleteFile removes file id or returns port.ErrNotFound.
func (s *Store) DeleteFile(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.files[id]; !ok {
		return port.ErrNotFound
	}
	delete(s.files, id)
	return nil
}
