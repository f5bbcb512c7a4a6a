package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/playkaro/video-catalog/internal/catalog/models"
)

func videoTitled(title, description string, createdAt time.Time) models.Video {
	return models.Video{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		VideoURL:    "https://media.test/videos/" + uuid.NewString() + ".mp4",
		CreatedAt:   createdAt,
	}
}

func TestFilter_BlankQueryIsIdentity(t *testing.T) {
	now := time.Now()
	videos := []models.Video{
		videoTitled("Sunset Drive", "", now),
		videoTitled("Ocean Walk", "", now.Add(-time.Hour)),
	}

	for _, q := range []string{"", " ", "\t", "  \n "} {
		got := Filter(videos, q)
		require.Equal(t, videos, got, "query %q should return the set unchanged", q)
	}
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	now := time.Now()
	sunset := videoTitled("Sunset Drive", "evening cruise", now)
	ocean := videoTitled("Ocean Walk", "a stroll by the sea", now.Add(-time.Hour))
	videos := []models.Video{sunset, ocean}

	cases := []struct {
		name  string
		query string
		want  []models.Video
	}{
		{name: "title fragment", query: "oce", want: []models.Video{ocean}},
		{name: "uppercase query", query: "SUNSET", want: []models.Video{sunset}},
		{name: "description match", query: "sea", want: []models.Video{ocean}},
		{name: "matches both", query: "e", want: videos},
		{name: "no match", query: "mountain", want: []models.Video{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter(videos, tc.query)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	now := time.Now()
	videos := []models.Video{
		videoTitled("Sunset Drive", "", now),
		videoTitled("Ocean Walk", "", now.Add(-time.Hour)),
		videoTitled("Ocean Sunrise", "", now.Add(-2*time.Hour)),
	}

	once := Filter(videos, "ocean")
	twice := Filter(once, "ocean")
	require.Equal(t, once, twice)
}

func TestFilter_PreservesOrder(t *testing.T) {
	now := time.Now()
	newest := videoTitled("Ocean Walk", "", now)
	oldest := videoTitled("Ocean Sunrise", "", now.Add(-time.Hour))
	videos := []models.Video{newest, oldest}

	got := Filter(videos, "ocean")
	require.Equal(t, []models.Video{newest, oldest}, got)
}
