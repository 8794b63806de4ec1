package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"adrotation/internal/core/domain"
	"adrotation/internal/core/port"
)

var (
	_ port.CampaignStore      = (*CampaignRepository)(nil)
	_ port.CampaignRepository = (*CampaignRepository)(nil)
	_ port.CampaignLister     = (*CampaignRepository)(nil)
)

const (
	campaignColumns = `id, active, text, price, budget, consumed, banner_file_id, created_at, updated_at`

	checkViolation      = "23514"
	budgetConstraint    = "campaigns_consumed_within_budget"
	foreignKeyViolation = "23503"
)

// CampaignRepository implements the campaign ports on PostgreSQL using
// pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// ListEligible returns active campaigns with budget left, best first.
func (r *CampaignRepository) ListEligible(ctx context.Context) ([]domain.Campaign, error) {
	return r.list(ctx, "list eligible", `
        SELECT `+campaignColumns+`
        FROM campaigns
        WHERE active AND consumed < budget
        ORDER BY price DESC, id`)
}

// ListActive returns every active campaign regardless of its consumption.
func (r *CampaignRepository) ListActive(ctx context.Context) ([]domain.Campaign, error) {
	return r.list(ctx, "list active", `
        SELECT `+campaignColumns+`
        FROM campaigns
        WHERE active
        ORDER BY price DESC, id`)
}

func (r *CampaignRepository) list(ctx context.Context, op, query string) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, port.StorageError(op, err)
	}
	campaigns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
	if err != nil {
		return nil, port.StorageError(op, err)
	}
	return campaigns, nil
}

// TryConsume charges one display with a single conditional UPDATE. The
// row lock taken by the update serialises concurrent consumers, and the
// WHERE clause is re-checked against the committed row after waiting, so
// consumed can never pass budget.
func (r *CampaignRepository) TryConsume(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
        UPDATE campaigns
        SET consumed = consumed + 1, updated_at = now()
        WHERE id = $1 AND active AND consumed < budget`, id)
	if err != nil {
		return false, port.StorageError("try consume", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Create inserts c with nothing consumed.
func (r *CampaignRepository) Create(ctx context.Context, c domain.Campaign) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
        INSERT INTO campaigns (active, text, price, budget, consumed, banner_file_id)
        VALUES ($1, $2, $3, $4, 0, $5)
        RETURNING id`,
		c.Active, c.Text, c.Price, c.Budget, c.BannerFileID).Scan(&id)
	if err != nil {
		return 0, mapWriteError("create campaign", err)
	}
	return id, nil
}

// Update replaces the administrative attributes of c.ID. Consumed is left
// untouched.
func (r *CampaignRepository) Update(ctx context.Context, c domain.Campaign) error {
	tag, err := r.pool.Exec(ctx, `
        UPDATE campaigns
        SET active = $2, text = $3, price = $4, budget = $5, banner_file_id = $6, updated_at = now()
        WHERE id = $1`,
		c.ID, c.Active, c.Text, c.Price, c.Budget, c.BannerFileID)
	if err != nil {
		return mapWriteError("update campaign", err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// Get returns a campaign by id.
func (r *CampaignRepository) Get(ctx context.Context, id int64) (domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Campaign{}, port.ErrNotFound
	}
	if err != nil {
		return domain.Campaign{}, port.StorageError("get campaign", err)
	}
	return c, nil
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.Active,
		&c.Text,
		&c.Price,
		&c.Budget,
		&c.Consumed,
		&c.BannerFileID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// mapWriteError turns constraint violations into domain errors.
func mapWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == checkViolation && pgErr.ConstraintName == budgetConstraint:
			return port.NewValidationError("amount", "below the number of displays already served")
		case pgErr.Code == foreignKeyViolation:
			return port.NewValidationError("banner", "unknown banner file")
		}
	}
	return port.StorageError(op, err)
}
