package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"table-booking/internal/handler/api"
	"table-booking/internal/handler/httperr"
	"table-booking/internal/handler/middleware"
	"table-booking/internal/pkg/clock"
	"table-booking/internal/pkg/config"
	"table-booking/internal/pkg/errs"
	"table-booking/internal/pkg/metrics"
)

var errRouteNotFound = errs.New("route not found")

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Logger         *middleware.Logger
	Metrics        *metrics.Metrics
	Clock          clock.Clock
	TableHandler   *api.TableHandler
	BookingHandler *api.BookingHandler
}

func NewRouter(p RouterParams) {
	// Trailing-slash paths are served by alias routes instead of a 301.
	p.Engine.RedirectTrailingSlash = false

	setupMiddleware(p.Engine, p.Config, p.Logger, p.Metrics, p.Clock)
	setupRoutes(p.Engine, p.Config, p.Metrics, p.TableHandler, p.BookingHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics, clk clock.Clock) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.MetricsMiddleware(m))
	if cfg.RateLimit.Enabled() {
		engine.Use(middleware.NewRateLimiter(cfg.RateLimit, m, clk).RateLimit())
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, m *metrics.Metrics, tableHandler *api.TableHandler, bookingHandler *api.BookingHandler) {
	if cfg.Metrics.Enabled {
		engine.GET("/metrics", gin.WrapH(m.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodGet, Path: "/health", Handler: healthCheck},
		{Method: http.MethodGet, Path: "/tables", Handler: tableHandler.List},
		{Method: http.MethodGet, Path: "/bookings", Handler: bookingHandler.List},
		{Method: http.MethodPost, Path: "/bookings", Handler: bookingHandler.Create},
	})

	engine.NoRoute(notFound)
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

func notFound(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusNotFound, errRouteNotFound, "Not found")
}

// addRoutes registers every path twice, with and without a trailing slash.
func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		for _, path := range []string{r.Path, r.Path + "/"} {
			switch r.Method {
			case http.MethodGet:
				g.GET(path, r.Handler)
			case http.MethodPost:
				g.POST(path, r.Handler)
			default:
				g.Handle(r.Method, path, r.Handler)
			}
		}
	}
}
