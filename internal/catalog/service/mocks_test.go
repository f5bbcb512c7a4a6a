package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/playkaro/video-catalog/internal/catalog/models"
	"github.com/playkaro/video-catalog/internal/catalog/repository"
)

type RepoMock struct {
	mock.Mock
}

func (m *RepoMock) List(ctx context.Context) ([]models.Video, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RepoMock) GetByID(ctx context.Context, id uuid.UUID) (*models.Video, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RepoMock) Create(ctx context.Context, v *models.Video, ev models.DomainEvent) error {
	args := m.Called(ctx, v, ev)
	return args.Error(0)
}

func (m *RepoMock) Update(ctx context.Context, id uuid.UUID, fields repository.UpdateFields, ev models.DomainEvent) (*models.Video, error) {
	args := m.Called(ctx, id, fields, ev)
	if v := args.Get(0); v != nil {
		return v.(*models.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RepoMock) Delete(ctx context.Context, id uuid.UUID, ev models.DomainEvent) error {
	args := m.Called(ctx, id, ev)
	return args.Error(0)
}

type StoreMock struct {
	mock.Mock
}

func (m *StoreMock) Upload(ctx context.Context, bucket, key string, r io.Reader, contentType string) error {
	args := m.Called(ctx, bucket, key, r, contentType)
	return args.Error(0)
}

func (m *StoreMock) PublicURL(bucket, key string) string {
	args := m.Called(bucket, key)
	return args.String(0)
}
