package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ynot-advisory/landing/middleware"
	"github.com/ynot-advisory/landing/static"
)

type RouterConfig struct {
	RateLimitPerMinute float64
	AllowedHosts       []string
	Gatherer           prometheus.Gatherer
}

// NewRouter wires every route of the site onto a fresh gin engine.
func NewRouter(h *Handler, cfg RouterConfig) *gin.Engine {
	if h.Logger == nil {
		h.Logger = zap.NewNop()
	}
	if cfg.Gatherer == nil {
		cfg.Gatherer = prometheus.DefaultGatherer
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(h.Logger))
	router.Use(middleware.DomainWhitelistMiddleware(cfg.AllowedHosts, h.Logger))

	router.StaticFS("/static", http.FS(static.FS()))
	router.GET("/health", Health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))

	limit := middleware.RateLimitMiddleware(cfg.RateLimitPerMinute, h.Logger)
	router.POST("/api/contact", limit, h.ContactAPI)

	router.GET(h.BasePath, h.Home)
	router.POST(h.formAction(), limit, h.ContactForm)

	router.NoRoute(h.NotFound)
	return router
}
