package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/playkaro/video-catalog/internal/auth"
	"github.com/playkaro/video-catalog/internal/catalog/httpapi"
	"github.com/playkaro/video-catalog/internal/catalog/service"
	"github.com/playkaro/video-catalog/internal/objectstore"
	"github.com/playkaro/video-catalog/internal/storage/postgres"
	"github.com/playkaro/video-catalog/internal/web"
)

func run(ctx context.Context, logger zerolog.Logger) error {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return fmt.Errorf("DATABASE_URL is empty")
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return fmt.Errorf("JWT_SECRET is empty")
	}

	db, err := postgres.Connect(ctx, dsn)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer db.Close()

	store, err := objectstore.NewS3Store(objectstore.S3Config{
		Endpoint:      os.Getenv("S3_ENDPOINT"),
		Region:        os.Getenv("S3_REGION"),
		AccessKey:     os.Getenv("S3_ACCESS_KEY"),
		SecretKey:     os.Getenv("S3_SECRET_KEY"),
		PublicBaseURL: os.Getenv("S3_PUBLIC_BASE_URL"),
	})
	if err != nil {
		return fmt.Errorf("object store: %w", err)
	}

	buckets := service.Buckets{
		Videos:     envOr("S3_VIDEO_BUCKET", "videos"),
		Thumbnails: envOr("S3_THUMBNAIL_BUCKET", "thumbnails"),
	}

	// Dependencies
	outboxRepo := postgres.NewOutboxRepo(db)
	videoRepo := postgres.NewVideoRepo(db, outboxRepo)
	userRepo := postgres.NewUserRepo(db)

	authSvc := auth.New(userRepo, []byte(jwtSecret))
	catalogSvc := service.New(videoRepo, store, buckets, logger)

	h := httpapi.New(catalogSvc, authSvc, logger)
	router := httpapi.NewRouter(h, authSvc, logger)
	web.New(catalogSvc, logger).RegisterRoutes(router)

	srv := &http.Server{
		Addr:              envOr("HTTP_ADDR", ":8080"),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	logger.Info().Str("addr", srv.Addr).Msg("http server listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil

	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen and serve: %w", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
