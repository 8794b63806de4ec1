//go:build e2e

package postgres

import (
	"context"
	"net/url"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"adrotation/internal/config/configs"
	"adrotation/internal/core/domain"
	"adrotation/internal/core/port"
	"adrotation/internal/db"
)

// CampaignRepositoryTestSuite runs against the database in PSQL_ADDRESS.
type CampaignRepositoryTestSuite struct {
	suite.Suite
	pool      *pgxpool.Pool
	campaigns *CampaignRepository
	files     *FileRepository
}

func TestCampaignRepository(t *testing.T) {
	suite.Run(t, new(CampaignRepositoryTestSuite))
}

func (s *CampaignRepositoryTestSuite) SetupSuite() {
	raw := os.Getenv("PSQL_ADDRESS")
	if raw == "" {
		s.T().Skip("PSQL_ADDRESS is not set")
	}
	addr, err := url.Parse(raw)
	s.Require().NoError(err)

	_, err = db.Migrate(*addr)
	s.Require().NoError(err)

	s.pool, err = db.NewPostgresPool(s.T().Context(), configs.Postgres{Addr: *addr, MaxConns: 32})
	s.Require().NoError(err)
	s.campaigns = NewCampaignRepository(s.pool)
	s.files = NewFileRepository(s.pool)
}

func (s *CampaignRepositoryTestSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *CampaignRepositoryTestSuite) SetupTest() {
	_, err := s.pool.Exec(s.T().Context(), `TRUNCATE campaigns, files RESTART IDENTITY`)
	s.Require().NoError(err)
}

func (s *CampaignRepositoryTestSuite) createCampaign(ctx context.Context, price float64, budget int64) int64 {
	fileID, err := s.files.CreateFile(ctx, "banner.png")
	s.Require().NoError(err)
	id, err := s.campaigns.Create(ctx, domain.Campaign{
		Active:       true,
		Text:         "Ad",
		Price:        price,
		Budget:       budget,
		BannerFileID: fileID,
	})
	s.Require().NoError(err)
	return id
}

func (s *CampaignRepositoryTestSuite) TestCreateGetUpdate() {
	ctx := s.T().Context()
	id := s.createCampaign(ctx, 1.25, 3)

	c, err := s.campaigns.Get(ctx, id)
	s.Require().NoError(err)
	s.Equal("Ad", c.Text)
	s.Equal(1.25, c.Price)
	s.Equal(int64(0), c.Consumed)

	c.Text = "Ad B"
	c.Budget = 10
	s.Require().NoError(s.campaigns.Update(ctx, c))

	got, err := s.campaigns.Get(ctx, id)
	s.Require().NoError(err)
	s.Equal("Ad B", got.Text)
	s.Equal(int64(10), got.Budget)

	s.ErrorIs(s.campaigns.Update(ctx, domain.Campaign{ID: 9999, Text: "x", Price: 1, BannerFileID: c.BannerFileID}), port.ErrNotFound)
	_, err = s.campaigns.Get(ctx, 9999)
	s.ErrorIs(err, port.ErrNotFound)
}

func (s *CampaignRepositoryTestSuite) TestUpdateBelowConsumed() {
	ctx := s.T().Context()
	id := s.createCampaign(ctx, 1, 3)
	for range 2 {
		ok, err := s.campaigns.TryConsume(ctx, id)
		s.Require().NoError(err)
		s.Require().True(ok)
	}

	c, err := s.campaigns.Get(ctx, id)
	s.Require().NoError(err)
	c.Budget = 1
	s.ErrorIs(s.campaigns.Update(ctx, c), port.ErrValidation)
}

func (s *CampaignRepositoryTestSuite) TestListEligibleOrdering() {
	ctx := s.T().Context()
	low := s.createCampaign(ctx, 1, 5)
	high := s.createCampaign(ctx, 2, 5)
	s.createCampaign(ctx, 3, 0)

	got, err := s.campaigns.ListEligible(ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(high, got[0].ID)
	s.Equal(low, got[1].ID)

	active, err := s.campaigns.ListActive(ctx)
	s.Require().NoError(err)
	s.Len(active, 3)
}

func (s *CampaignRepositoryTestSuite) TestTryConsumeConcurrent() {
	const (
		budget  = 20
		callers = 100
	)
	ctx := s.T().Context()
	id := s.createCampaign(ctx, 1, budget)

	var (
		wg      sync.WaitGroup
		success atomic.Int64
	)
	wg.Add(callers)
	for range callers {
		go func() {
			defer wg.Done()
			ok, err := s.campaigns.TryConsume(ctx, id)
			s.NoError(err)
			if ok {
				success.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int64(budget), success.Load())
	c, err := s.campaigns.Get(ctx, id)
	s.Require().NoError(err)
	s.Equal(int64(budget), c.Consumed)
}

func (s *CampaignRepositoryTestSuite) TestFiles() {
	ctx := s.T().Context()
	id, err := s.files.CreateFile(ctx, "a.png")
	s.Require().NoError(err)

	f, err := s.files.GetFile(ctx, id)
	s.Require().NoError(err)
	s.Equal("a.png", f.Path)

	s.Require().NoError(s.files.DeleteFile(ctx, id))
	s.ErrorIs(s.files.DeleteFile(ctx, id), port.ErrNotFound)
}
