package service

import (
	"strings"

	"github.com/playkaro/video-catalog/internal/catalog/models"
)

// Filter narrows videos to those whose title or description contains query,
// case-insensitively. A blank (empty or whitespace-only) query returns the
// input unchanged, order preserved. Pure and idempotent; no storage access.
func Filter(videos []models.Video, query string) []models.Video {
	if strings.TrimSpace(query) == "" {
		return videos
	}

	q := strings.ToLower(query)
	out := make([]models.Video, 0, len(videos))
	for _, v := range videos {
		if strings.Contains(strings.ToLower(v.Title), q) ||
			strings.Contains(strings.ToLower(v.Description), q) {
			out = append(out, v)
		}
	}
	return out
}
