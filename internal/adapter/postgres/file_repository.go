package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adrotation/internal/core/domain"
	"adrotation/internal/core/port"
)

var _ port.FileRepository = (*FileRepository)(nil)

// FileRepository stores banner file records in the files table.
type FileRepository struct {
	pool *pgxpool.Pool
}

func NewFileRepository(pool *pgxpool.Pool) *FileRepository {
	return &FileRepository{pool: pool}
}

func (r *FileRepository) CreateFile(ctx context.Context, path string) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `INSERT INTO files (path) VALUES ($1) RETURNING id`, path).Scan(&id)
	if err != nil {
		return 0, port.StorageError("create file", err)
	}
	return id, nil
}

func (r *FileRepository) GetFile(ctx context.Context, id int64) (domain.File, error) {
	var f domain.File
	err := r.pool.QueryRow(ctx, `SELECT id, path, created_at FROM files WHERE id = $1`, id).
		Scan(&f.ID, &f.Path, &f.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.File{}, port.ErrNotFound
	}
	if err != nil {
		return domain.File{}, port.StorageError("get file", err)
	}
	return f, nil
}

// DeleteFile removes the record. A file still referenced by a campaign is
// kept by the foreign key and reported as a storage failure.
func (r *FileRepository) DeleteFile(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM files WHERE id = $1`, id)
	if err != nil {
		return port.StorageError("delete file", err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}
