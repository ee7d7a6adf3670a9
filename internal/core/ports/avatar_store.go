package ports

import (
	"context"
	"io"
)

// AvatarStore abstracts the object storage holding avatar images.
type AvatarStore interface {
	// CopyDefault copies the fixed default avatar asset to destKey. It fails
	// when the default asset is missing or unreadable; callers treat that as
	// a fatal provisioning error.
	CopyDefault(ctx context.Context, destKey string) error
	// Put uploads a replacement avatar under key.
	Put(ctx context.Context, key, contentType string, content io.Reader) error
	// URL returns the public URL for an avatar key.
	URL(key string) string
}
