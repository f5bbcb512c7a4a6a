package httpapi

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/playkaro/video-catalog/internal/auth"
	"github.com/playkaro/video-catalog/internal/catalog/models"
	"github.com/playkaro/video-catalog/internal/catalog/service"
)

type Handler struct {
	svc    *service.Service
	authz  *auth.Service
	logger zerolog.Logger
}

func New(svc *service.Service, authz *auth.Service, logger zerolog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		authz:  authz,
		logger: logger.With().Str("component", "httpapi").Logger(),
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListVideos returns the whole catalog newest-first, narrowed by the q
// parameter. Searching never issues a second storage query.
func (h *Handler) ListVideos(c *gin.Context) {
	videos, err := h.svc.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toListResponse(videos))
}

// GetVideo is a point lookup; an absent record is a 404, not a server error.
func (h *Handler) GetVideo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	v, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toVideoResponse(v))
}

func (h *Handler) CreateVideo(c *gin.Context) {
	in, closers, err := h.bindVideoInput(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer closeAll(closers)

	v, err := h.svc.Create(c.Request.Context(), auth.SessionFrom(c), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toVideoResponse(v))
}

func (h *Handler) UpdateVideo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	in, closers, err := h.bindVideoInput(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer closeAll(closers)

	v, err := h.svc.Update(c.Request.Context(), auth.SessionFrom(c), id, in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toVideoResponse(v))
}

func (h *Handler) DeleteVideo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), auth.SessionFrom(c), id); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "video deleted"})
}

func (h *Handler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, sess, err := h.authz.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sessionResponse(token, sess))
}

func (h *Handler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, sess, err := h.authz.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(token, sess))
}

func sessionResponse(token string, sess *auth.Session) gin.H {
	return gin.H{
		"token": token,
		"user": gin.H{
			"id":       sess.UserID,
			"email":    sess.Email,
			"is_admin": sess.IsAdmin,
		},
	}
}

// bindVideoInput reads the multipart form shared by create and edit: title,
// description, and the two optional file fields.
func (h *Handler) bindVideoInput(c *gin.Context) (service.VideoInput, []multipart.File, error) {
	var form VideoForm
	if err := c.ShouldBind(&form); err != nil {
		return service.VideoInput{}, nil, err
	}

	in := service.VideoInput{
		Title:       form.Title,
		Description: form.Description,
	}

	var closers []multipart.File

	video, f, err := formFile(c, "video")
	if err != nil {
		return service.VideoInput{}, closers, err
	}
	if video != nil {
		in.Video = video
		closers = append(closers, f)
	}

	thumb, f, err := formFile(c, "thumbnail")
	if err != nil {
		closeAll(closers)
		return service.VideoInput{}, nil, err
	}
	if thumb != nil {
		in.Thumbnail = thumb
		closers = append(closers, f)
	}

	return in, closers, nil
}

func formFile(c *gin.Context, field string) (*service.FileUpload, multipart.File, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}

	return &service.FileUpload{
		Reader:      f,
		Filename:    fh.Filename,
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
	}, f, nil
}

func closeAll(files []multipart.File) {
	for _, f := range files {
		_ = f.Close()
	}
}

// writeError maps service errors onto the HTTP surface. Validation failures
// carry the offending field; a missing record is a 404, never a 500.
func (h *Handler) writeError(c *gin.Context, err error) {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message, "field": vErr.Field})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, models.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
	case errors.Is(err, models.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "conflict"})
	case errors.Is(err, models.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid argument"})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	default:
		h.logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
