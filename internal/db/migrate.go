package db

import (
	"errors"
	"fmt"
	"net/url"

	"adrotation/db/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// ErrDirty is returned when a previous migration failed half way and the
// schema needs manual repair.
var ErrDirty = errors.New("database is in dirty state")

// Migrate brings the schema at addr to migrations.Version and returns the
// version the database was at before.
func Migrate(addr url.URL) (before uint, err error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return 0, fmt.Errorf("open embedded migrations: %w", err)
	}

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr.String())
	if err != nil {
		_ = src.Close()
		return 0, fmt.Errorf("init migrate: %w", err)
	}
	defer func() {
		srcErr, dbErr := mg.Close()
		if err == nil {
			err = errors.Join(srcErr, dbErr)
		}
	}()

	before, dirty, err := mg.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		before = 0
	case err != nil:
		return 0, err
	case dirty:
		return before, fmt.Errorf("version %d: %w", before, ErrDirty)
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return before, err
	}
	return before, nil
}
