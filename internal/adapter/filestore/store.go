// Package filestore keeps banner images on an afero filesystem and their
// records in a port.FileRepository.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"adrotation/internal/core/port"
)

var _ port.FileStore = (*Store)(nil)

// Store saves banners under a randomized name so uploads with the same
// client file name never collide.
type Store struct {
	fs      afero.Fs
	records port.FileRepository
	baseURL string
	logger  *slog.Logger
}

// New returns a store writing into fs. fs is usually an afero.BasePathFs
// rooted at the banner directory. baseURL is the public prefix under which
// Handler serves the files.
func New(fs afero.Fs, records port.FileRepository, baseURL string, logger *slog.Logger) *Store {
	return &Store{
		fs:      fs,
		records: records,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// NewOnDisk returns a store rooted at dir, creating it when missing.
func NewOnDisk(dir string, records port.FileRepository, baseURL string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create banner dir: %w", err)
	}
	return New(afero.NewBasePathFs(afero.NewOsFs(), dir), records, baseURL, logger), nil
}

// Save writes data under a fresh name and records it.
func (s *Store) Save(ctx context.Context, data []byte, filename string) (int64, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	if err := afero.WriteFile(s.fs, rooted(name), data, 0o644); err != nil {
		return 0, port.StorageError("write banner", err)
	}
	id, err := s.records.CreateFile(ctx, name)
	if err != nil {
		if rmErr := s.fs.Remove(rooted(name)); rmErr != nil {
			s.logger.Error("remove orphan banner", slog.String("path", name), slog.Any("error", rmErr))
		}
		return 0, err
	}
	return id, nil
}

// Delete removes the record and the stored bytes. Bytes that are already
// gone are not an error.
func (s *Store) Delete(ctx context.Context, id int64) error {
	f, err := s.records.GetFile(ctx, id)
	if err != nil {
		return err
	}
	if err = s.records.DeleteFile(ctx, id); err != nil {
		return err
	}
	if err = s.fs.Remove(rooted(f.Path)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return port.StorageError("remove banner", err)
	}
	return nil
}

// URLOf returns the public URL of file id.
func (s *Store) URLOf(ctx context.Context, id int64) (string, error) {
	f, err := s.records.GetFile(ctx, id)
	if err != nil {
		return "", err
	}
	return s.baseURL + "/" + path.Base(f.Path), nil
}

// Handler serves stored banners. Mount it with the base URL stripped.
func (s *Store) Handler() http.Handler {
	return http.FileServer(afero.NewHttpFs(s.fs))
}

// rooted returns the filesystem path of a stored name. http.FileServer
// opens files by their slash-rooted path, so files are written the same way.
func rooted(name string) string {
	return "/" + strings.TrimLeft(name, "/")
}
