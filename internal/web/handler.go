// Package web serves the visitor-facing pages: the searchable video grid
// and the watch page.
package web

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/playkaro/video-catalog/internal/catalog/models"
	"github.com/playkaro/video-catalog/internal/catalog/service"
)

type Handler struct {
	svc      *service.Service
	index    *template.Template
	watch    *template.Template
	notFound *template.Template
	logger   zerolog.Logger
}

type indexData struct {
	Query  string
	Videos []models.Video
}

type watchData struct {
	Title       string
	Description string
	VideoURL    string
	UploadedOn  string
}

func New(svc *service.Service, logger zerolog.Logger) *Handler {
	return &Handler{
		svc:      svc,
		index:    template.Must(template.New("index").Parse(indexHTML)),
		watch:    template.Must(template.New("watch").Parse(watchHTML)),
		notFound: template.Must(template.New("notfound").Parse(notFoundHTML)),
		logger:   logger.With().Str("component", "web").Logger(),
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Index)
	r.GET("/videos/:id", h.Watch)
}

// Index renders the catalog grid, narrowed by the q form value. The filter
// runs over the full fetched set; a blank query shows everything.
func (h *Handler) Index(c *gin.Context) {
	query := c.Query("q")
	videos, err := h.svc.List(c.Request.Context(), query)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load videos")
		c.String(http.StatusInternalServerError, "failed to load videos")
		return
	}

	h.render(c, http.StatusOK, h.index, indexData{Query: query, Videos: videos})
}

// Watch renders the playback page. A missing record gets the not-found page
// with a way back to the grid, not an error page.
func (h *Handler) Watch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.render(c, http.StatusNotFound, h.notFound, nil)
		return
	}

	v, err := h.svc.Get(c.Request.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		h.render(c, http.StatusNotFound, h.notFound, nil)
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Stringer("video_id", id).Msg("failed to load video")
		c.String(http.StatusInternalServerError, "failed to load video")
		return
	}

	h.render(c, http.StatusOK, h.watch, watchData{
		Title:       v.Title,
		Description: v.Description,
		VideoURL:    v.VideoURL,
		UploadedOn:  v.CreatedAt.Format("January 2, 2006"),
	})
}

func (h *Handler) render(c *gin.Context, status int, tmpl *template.Template, data any) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(c.Writer, data); err != nil {
		h.logger.Error().Err(err).Msg("template render failed")
	}
}
