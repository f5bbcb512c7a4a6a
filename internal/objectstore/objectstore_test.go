package objectstore

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore_UploadAndFetch(t *testing.T) {
	store := NewMemoryStore()

	err := store.Upload(context.Background(), "videos", "a.mp4", strings.NewReader("payload"), "video/mp4")
	require.NoError(t, err)

	b, ok := store.Object("videos", "a.mp4")
	require.True(t, ok)
	require.Equal(t, []byte("payload"), b)
	require.Equal(t, 1, store.Len())

	_, ok = store.Object("videos", "missing.mp4")
	require.False(t, ok)
}

func TestMemoryStore_RespectsCanceledContext(t *testing.T) {
	store := NewMemoryStore()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Upload(ctx, "videos", "a.mp4", strings.NewReader("payload"), "video/mp4")
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 0, store.Len())
}

func TestNewS3Store_RequiresEndpoint(t *testing.T) {
	_, err := NewS3Store(S3Config{})
	require.Error(t, err)
}

func TestS3Store_PublicURL(t *testing.T) {
	store, err := NewS3Store(S3Config{
		Endpoint:      "http://localhost:9000",
		PublicBaseURL: "https://media.playkaro.test/",
	})
	require.NoError(t, err)

	// Trailing slash on the base URL does not double up.
	require.Equal(t, "https://media.playkaro.test/videos/a.mp4", store.PublicURL("videos", "a.mp4"))
}

func TestS3Store_PublicURLDefaultsToEndpoint(t *testing.T) {
	store, err := NewS3Store(S3Config{Endpoint: "http://localhost:9000"})
	require.NoError(t, err)

	require.Equal(t, "http://localhost:9000/thumbnails/t.png", store.PublicURL("thumbnails", "t.png"))
}
