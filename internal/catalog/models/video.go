package models

import (
	"time"

	"github.com/google/uuid"
)

// Video is one catalog entry. ID is assigned exactly once at creation by the
// service layer; VideoURL is non-empty for every complete record; UploadedBy
// is set once and never reassigned.
type Video struct {
	ID           uuid.UUID `db:"id"`
	Title        string    `db:"title"`
	Description  string    `db:"description"`
	VideoURL     string    `db:"video_url"`
	ThumbnailURL string    `db:"thumbnail_url"`
	UploadedBy   uuid.UUID `db:"uploaded_by"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
