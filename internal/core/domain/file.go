package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// File is a stored banner asset. Path is the name of the object inside the
// banner storage, not an absolute filesystem path.
type File struct {
	ID        int64
	Path      string
	CreatedAt time.Time
}

// Banner is an uploaded banner image before it is stored. ContentType is
// the sniffed image type, not the one declared by the client.
type Banner struct {
	Filename    string
	ContentType string
	Data        []byte
}

var bannerExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// StoredName returns Filename with the extension matching ContentType, so
// a mislabeled upload is stored and served under its real type. Unknown
// content types keep Filename as is.
func (b Banner) StoredName() string {
	ext, ok := bannerExtensions[b.ContentType]
	if !ok {
		return b.Filename
	}
	return strings.TrimSuffix(b.Filename, filepath.Ext(b.Filename)) + ext
}
