package middleware

import (
	"log/slog"
	"slices"

	"fleet-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always allows the Authorization header that POST /reserve
// needs and exposes the request id header, whatever the configured lists say.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     withHeaders(cfg.AllowHeaders, "Authorization", "Content-Type"),
		ExposeHeaders:    withHeaders(cfg.ExposeHeaders, requestIDHeader),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}

func withHeaders(headers []string, required ...string) []string {
	out := slices.Clone(headers)
	for _, h := range required {
		if !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out
}
