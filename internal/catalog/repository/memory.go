package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/playkaro/video-catalog/internal/catalog/models"
)

// MemoryRepository keeps videos in a map. Used by tests and local runs
// without a database; domain events are dropped.
type MemoryRepository struct {
	mu   sync.RWMutex
	data map[uuid.UUID]*models.Video
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		data: make(map[uuid.UUID]*models.Video),
	}
}

func (r *MemoryRepository) List(ctx context.Context) ([]models.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Video, 0, len(r.data))
	for _, v := range r.data {
		out = append(out, *v)
	}
	// Newest first, matching the postgres ORDER BY created_at DESC.
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Video, error) {
	if id == uuid.Nil {
		return nil, models.ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.data[id]
	if !ok {
		return nil, models.ErrNotFound
	}

	// Copy so callers cannot mutate the stored record.
	cp := *v
	return &cp, nil
}

func (r *MemoryRepository) Create(ctx context.Context, v *models.Video, _ models.DomainEvent) error {
	if v == nil || v.ID == uuid.Nil {
		return models.ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[v.ID]; exists {
		return models.ErrConflict
	}

	cp := *v
	r.data[v.ID] = &cp
	return nil
}

func (r *MemoryRepository) Update(ctx context.Context, id uuid.UUID, fields UpdateFields, _ models.DomainEvent) (*models.Video, error) {
	if id == uuid.Nil {
		return nil, models.ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.data[id]
	if !ok {
		return nil, models.ErrNotFound
	}

	v.Title = fields.Title
	v.Description = fields.Description
	if fields.VideoURL != nil {
		v.VideoURL = *fields.VideoURL
	}
	if fields.ThumbnailURL != nil {
		v.ThumbnailURL = *fields.ThumbnailURL
	}
	v.UpdatedAt = time.Now()

	cp := *v
	return &cp, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id uuid.UUID, _ models.DomainEvent) error {
	if id == uuid.Nil {
		return models.ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.data, id)
	return nil
}
