package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/playkaro/video-catalog/internal/auth"
	"github.com/playkaro/video-catalog/internal/catalog/models"
	"github.com/playkaro/video-catalog/internal/catalog/repository"
	"github.com/playkaro/video-catalog/internal/objectstore"
)

// Buckets names the object-storage locations for the two media kinds.
type Buckets struct {
	Videos     string
	Thumbnails string
}

// FileUpload is one file selected in the admin form.
type FileUpload struct {
	Reader      io.Reader
	Filename    string
	Size        int64
	ContentType string
}

// VideoInput is the transient form state of one create/edit session.
type VideoInput struct {
	Title       string
	Description string
	Video       *FileUpload
	Thumbnail   *FileUpload
}

type Service struct {
	repo    repository.VideoRepository
	store   objectstore.Store
	buckets Buckets
	clock   func() time.Time
	idGen   func() uuid.UUID
	logger  zerolog.Logger
}

func New(repo repository.VideoRepository, store objectstore.Store, buckets Buckets, logger zerolog.Logger) *Service {
	return &Service{
		repo:    repo,
		store:   store,
		buckets: buckets,
		clock:   time.Now,
		idGen:   uuid.New,
		logger:  logger.With().Str("component", "catalog_service").Logger(),
	}
}

// List returns the whole catalog newest-first, narrowed by query. Filtering
// happens over the fetched set; no extra storage query per search.
func (s *Service) List(ctx context.Context, query string) ([]models.Video, error) {
	videos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(videos, query), nil
}

// Get is a point lookup. A missing id surfaces as models.ErrNotFound so the
// transport can render a not-found affordance rather than a system error.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Video, error) {
	if id == uuid.Nil {
		return nil, models.ErrInvalidArgument
	}
	return s.repo.GetByID(ctx, id)
}

// Create runs the admin upload workflow as an ordered, non-transactional
// sequence: validate, upload video, upload thumbnail, insert exactly one row.
// Validation happens before any network effect. An upload that succeeds
// before a later step fails is left in place; no compensating delete.
func (s *Service) Create(ctx context.Context, sess *auth.Session, in VideoInput) (*models.Video, error) {
	if sess == nil || !sess.IsAdmin {
		return nil, models.ErrForbidden
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("title", "title is required")
	}
	if in.Video == nil {
		return nil, models.NewValidationError("video", "video file is required")
	}

	videoURL, err := s.uploadFile(ctx, in.Video, s.buckets.Videos)
	if err != nil {
		return nil, err
	}

	thumbnailURL := ""
	if in.Thumbnail != nil {
		thumbnailURL, err = s.uploadFile(ctx, in.Thumbnail, s.buckets.Thumbnails)
		if err != nil {
			return nil, err
		}
	}

	now := s.clock()
	v := &models.Video{
		ID:           s.idGen(),
		Title:        in.Title,
		Description:  in.Description,
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
		UploadedBy:   sess.UserID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	ev := models.NewVideoCreated(v.ID, sess.UserID, v.Title)
	if err := s.repo.Create(ctx, v, ev); err != nil {
		return nil, err
	}

	s.logger.Info().
		Stringer("video_id", v.ID).
		Stringer("uploaded_by", sess.UserID).
		Msg("video created")

	return v, nil
}

// Update edits one record. Title and description are always written; each
// URL field is written only when a new file was uploaded for it, so an edit
// without file selections preserves both stored locators untouched.
func (s *Service) Update(ctx context.Context, sess *auth.Session, id uuid.UUID, in VideoInput) (*models.Video, error) {
	if sess == nil || !sess.IsAdmin {
		return nil, models.ErrForbidden
	}
	if id == uuid.Nil {
		return nil, models.ErrInvalidArgument
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("title", "title is required")
	}

	// Point lookup up front so a stale edit of a deleted record reports
	// not-found before any upload happens.
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	fields := repository.UpdateFields{
		Title:       in.Title,
		Description: in.Description,
	}

	if in.Video != nil {
		url, err := s.uploadFile(ctx, in.Video, s.buckets.Videos)
		if err != nil {
			return nil, err
		}
		fields.VideoURL = &url
	}

	if in.Thumbnail != nil {
		url, err := s.uploadFile(ctx, in.Thumbnail, s.buckets.Thumbnails)
		if err != nil {
			return nil, err
		}
		fields.ThumbnailURL = &url
	}

	ev := models.NewVideoUpdated(id)
	updated, err := s.repo.Update(ctx, id, fields, ev)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Stringer("video_id", id).
		Bool("new_video", in.Video != nil).
		Bool("new_thumbnail", in.Thumbnail != nil).
		Msg("video updated")

	return updated, nil
}

// Delete removes one record. Confirmation is a client concern; the service
// acts only on an explicit call. Last write wins, no soft delete.
func (s *Service) Delete(ctx context.Context, sess *auth.Session, id uuid.UUID) error {
	if sess == nil || !sess.IsAdmin {
		return models.ErrForbidden
	}
	if id == uuid.Nil {
		return models.ErrInvalidArgument
	}

	ev := models.NewVideoDeleted(id)
	if err := s.repo.Delete(ctx, id, ev); err != nil {
		return err
	}

	s.logger.Info().Stringer("video_id", id).Msg("video deleted")
	return nil
}

// uploadFile stores the file under a fresh random key carrying the original
// extension and returns its public URL.
func (s *Service) uploadFile(ctx context.Context, f *FileUpload, bucket string) (string, error) {
	ext := strings.ToLower(filepath.Ext(f.Filename))
	key := s.idGen().String() + ext

	if err := s.store.Upload(ctx, bucket, key, f.Reader, f.ContentType); err != nil {
		return "", fmt.Errorf("upload %q: %w", f.Filename, err)
	}

	s.logger.Debug().
		Str("bucket", bucket).
		Str("key", key).
		Int64("size", f.Size).
		Msg("file uploaded")

	return s.store.PublicURL(bucket, key), nil
}
