package objectstore

import (
	"context"
	"io"
)

// Store is the object-storage boundary: put bytes under a key and resolve
// the public locator for a stored object. Failures are terminal for the
// attempt; callers never retry automatically.
type Store interface {
	Upload(ctx context.Context, bucket, key string, r io.Reader, contentType string) error
	PublicURL(bucket, key string) string
}
