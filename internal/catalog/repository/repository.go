package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/playkaro/video-catalog/internal/catalog/models"
)

// UpdateFields is the partial field set of one update. Title and Description
// are always written; a URL field is written only when non-nil, so an edit
// without a new file never touches the stored locator.
type UpdateFields struct {
	Title        string
	Description  string
	VideoURL     *string
	ThumbnailURL *string
}

// VideoRepository persists catalog entries. Write operations take the domain
// event describing the change so implementations can record it atomically
// with the row write (outbox pattern).
type VideoRepository interface {
	List(ctx context.Context) ([]models.Video, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Video, error)
	Create(ctx context.Context, v *models.Video, ev models.DomainEvent) error
	Update(ctx context.Context, id uuid.UUID, fields UpdateFields, ev models.DomainEvent) (*models.Video, error)
	Delete(ctx context.Context, id uuid.UUID, ev models.DomainEvent) error
}
