package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/playkaro/video-catalog/internal/catalog/models"
	"github.com/playkaro/video-catalog/internal/catalog/repository"
)

const videoColumns = "id, title, description, video_url, thumbnail_url, uploaded_by, created_at, updated_at"

// VideoRepo is the sqlx implementation of repository.VideoRepository. Every
// write runs in one transaction together with its outbox event.
type VideoRepo struct {
	db     *sqlx.DB
	outbox *OutboxRepo
}

func NewVideoRepo(db *sqlx.DB, outbox *OutboxRepo) *VideoRepo {
	return &VideoRepo{db: db, outbox: outbox}
}

func (r *VideoRepo) List(ctx context.Context) ([]models.Video, error) {
	q := fmt.Sprintf(`
		SELECT %s
		FROM videos
		ORDER BY created_at DESC
	`, videoColumns)

	videos := []models.Video{}
	if err := r.db.SelectContext(ctx, &videos, q); err != nil {
		return nil, fmt.Errorf("video list: %w", err)
	}
	return videos, nil
}

func (r *VideoRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Video, error) {
	q := fmt.Sprintf(`
		SELECT %s
		FROM videos
		WHERE id = $1
	`, videoColumns)

	var v models.Video
	if err := r.db.GetContext(ctx, &v, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("video get by id: %w", err)
	}
	return &v, nil
}

func (r *VideoRepo) Create(ctx context.Context, v *models.Video, ev models.DomainEvent) error {
	const q = `
		INSERT INTO videos (id, title, description, video_url, thumbnail_url, uploaded_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	return r.inTx(ctx, ev, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, q,
			v.ID, v.Title, v.Description, v.VideoURL, v.ThumbnailURL, v.UploadedBy, v.CreatedAt, v.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("video create: %w", err)
		}
		return nil
	})
}

// Update writes only the supplied field set: title and description always,
// each URL column only when the caller provided a replacement.
func (r *VideoRepo) Update(ctx context.Context, id uuid.UUID, fields repository.UpdateFields, ev models.DomainEvent) (*models.Video, error) {
	set := []string{"title = $2", "description = $3", "updated_at = NOW()"}
	args := []any{id, fields.Title, fields.Description}

	if fields.VideoURL != nil {
		args = append(args, *fields.VideoURL)
		set = append(set, fmt.Sprintf("video_url = $%d", len(args)))
	}
	if fields.ThumbnailURL != nil {
		args = append(args, *fields.ThumbnailURL)
		set = append(set, fmt.Sprintf("thumbnail_url = $%d", len(args)))
	}

	q := fmt.Sprintf(`
		UPDATE videos
		SET %s
		WHERE id = $1
		RETURNING %s
	`, strings.Join(set, ", "), videoColumns)

	var v models.Video
	err := r.inTx(ctx, ev, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &v, q, args...); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return models.ErrNotFound
			}
			return fmt.Errorf("video update: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VideoRepo) Delete(ctx context.Context, id uuid.UUID, ev models.DomainEvent) error {
	const q = `DELETE FROM videos WHERE id = $1`

	return r.inTx(ctx, ev, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, q, id)
		if err != nil {
			return fmt.Errorf("video delete: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("video delete rows affected: %w", err)
		}
		if n == 0 {
			return models.ErrNotFound
		}
		return nil
	})
}

// inTx runs fn and the outbox append in one transaction.
func (r *VideoRepo) inTx(ctx context.Context, ev models.DomainEvent, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if ev != nil && r.outbox != nil {
		if err := r.outbox.Add(ctx, tx, ev); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
