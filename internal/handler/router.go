package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fleet-booking/internal/handler/api"
	"fleet-booking/internal/handler/middleware"
	"fleet-booking/internal/pkg/config"
	"fleet-booking/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type handlers struct {
	Resources    *api.ResourceHandler
	Availability *api.AvailabilityHandler
	Reservations *api.ReservationHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	m *metrics.Metrics,
	resourceHandler *api.ResourceHandler,
	availabilityHandler *api.AvailabilityHandler,
	reservationHandler *api.ReservationHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, m, handlers{
		Resources:    resourceHandler,
		Availability: availabilityHandler,
		Reservations: reservationHandler,
	}, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.MetricsMiddleware(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, m *metrics.Metrics, h handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodGet, Path: "/cars", Handler: h.Resources.List},
		{Method: http.MethodGet, Path: "/availability", Handler: h.Availability.ByLicensePlate},
		{Method: http.MethodGet, Path: "/availability/:car_id", Handler: h.Availability.ByCarID},
		{
			Method:  http.MethodPost,
			Path:    "/reserve",
			Handler: h.Reservations.Reserve,
			Mw:      []gin.HandlerFunc{authMiddleware.RequireAuth()},
		},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
