package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"greenhall/internal/storage"
)

// Package assets implements the image asset lifecycle on top of object
// storage: upload with format/size policy enforced before any network call,
// and best-effort deletion that never fails the surrounding operation.

const (
	// Folder is the logical prefix under which all site images live.
	Folder = "greenhall-capital"

	// MaxUploadSize caps a single image at 10 MiB.
	MaxUploadSize = 10 << 20
)

var (
	// ErrNotImage rejects uploads whose content type or extension is not an
	// accepted image format.
	ErrNotImage = errors.New("only image files are allowed")

	// ErrTooLarge rejects uploads over MaxUploadSize.
	ErrTooLarge = errors.New("file exceeds maximum upload size")
)

var allowedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

var unsafeChars = regexp.MustCompile(`[^\w.-]`)

// FileUpload carries the bytes and metadata of one uploaded file.
type FileUpload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}

// Asset identifies one stored image. PublicID is the stable handle used to
// delete the object later; it is stored alongside the URL and never parsed
// back out of it.
type Asset struct {
	URL      string
	PublicID string
}

// CleanupResult is the outcome of a best-effort asset deletion. Err is kept
// for diagnostics only; callers log it and move on.
type CleanupResult struct {
	PublicID string
	Err      error
}

// OK reports whether the deletion succeeded (or was a no-op).
func (r CleanupResult) OK() bool { return r.Err == nil }

// Client is the interface record services use to manage image assets.
type Client interface {
	// Upload stores the file and returns its URL and public ID. The policy
	// checks (image-only, size cap) run before any network call.
	Upload(ctx context.Context, f FileUpload) (Asset, error)

	// Destroy removes the asset behind publicID. It never reports failure to
	// the caller beyond the returned CleanupResult: record mutations must not
	// be blocked by asset cleanup.
	Destroy(ctx context.Context, publicID string) CleanupResult
}

// Uploader implements Client over an S3-compatible storage backend.
type Uploader struct {
	store  storage.Storage
	logger *zap.Logger
}

// NewUploader constructs an Uploader. A nil logger falls back to a no-op.
func NewUploader(store storage.Storage, logger *zap.Logger) *Uploader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Uploader{store: store, logger: logger}
}

var _ Client = (*Uploader)(nil)

func (u *Uploader) Upload(ctx context.Context, f FileUpload) (Asset, error) {
	if f.Reader == nil {
		return Asset{}, fmt.Errorf("upload: reader is nil")
	}
	if !strings.HasPrefix(f.ContentType, "image/") {
		return Asset{}, ErrNotImage
	}
	if !allowedExts[strings.ToLower(filepath.Ext(f.Filename))] {
		return Asset{}, ErrNotImage
	}
	if f.Size > MaxUploadSize {
		return Asset{}, ErrTooLarge
	}

	key := PublicID(f.Filename, time.Now())

	info, err := u.store.Put(ctx, key, f.Reader, storage.PutObjectOptions{
		Size:        f.Size,
		ContentType: f.ContentType,
		Metadata: map[string]string{
			"original-filename": f.Filename,
		},
	})
	if err != nil {
		return Asset{}, fmt.Errorf("upload to storage: %w", err)
	}

	return Asset{
		URL:      u.store.ObjectURL(info.Key),
		PublicID: info.Key,
	}, nil
}

func (u *Uploader) Destroy(ctx context.Context, publicID string) CleanupResult {
	if publicID == "" {
		return CleanupResult{}
	}
	res := CleanupResult{PublicID: publicID}
	if err := u.store.Delete(ctx, publicID); err != nil {
		res.Err = err
		u.logger.Warn("could not destroy asset",
			zap.String("public_id", publicID),
			zap.Error(err),
		)
	}
	return res
}

// PublicID builds the collision-resistant object key for an upload:
// millisecond timestamp prefix plus the sanitized original filename,
// scoped to the shared folder. Whitespace collapses to underscores and
// anything outside [A-Za-z0-9_.-] is stripped.
func PublicID(filename string, now time.Time) string {
	base := filepath.Base(filename)
	safe := strings.Join(strings.Fields(base), "_")
	safe = unsafeChars.ReplaceAllString(safe, "")
	if safe == "" || safe == "." {
		safe = "upload"
	}
	return fmt.Sprintf("%s/%d-%s", Folder, now.UnixMilli(), safe)
}
