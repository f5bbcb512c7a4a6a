package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/playkaro/video-catalog/internal/auth"
)

const maxMultipartMemory = 64 << 20 // 64 MB before spilling to disk

// NewRouter wires the API surface: public catalog reads, auth endpoints,
// and the admin-only mutation group.
func NewRouter(h *Handler, authz *auth.Service, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(logger))
	r.MaxMultipartMemory = maxMultipartMemory

	r.GET("/health", h.Health)

	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", h.Register)
			authGroup.POST("/login", h.Login)
		}

		api.GET("/videos", h.ListVideos)
		api.GET("/videos/:id", h.GetVideo)

		admin := api.Group("/admin")
		admin.Use(auth.RequireAuth(authz), auth.RequireAdmin())
		{
			admin.POST("/videos", h.CreateVideo)
			admin.PUT("/videos/:id", h.UpdateVideo)
			admin.DELETE("/videos/:id", h.DeleteVideo)
		}
	}

	return r
}

// RequestLogger emits one structured line per request.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	l := logger.With().Str("component", "http").Logger()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		l.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("client_ip", c.ClientIP()).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
