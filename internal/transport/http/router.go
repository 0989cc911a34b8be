package rest

import (
	"net/http"
	"time"

	"github.com/Gunvolt24/bloodbank/internal/ports"
	"github.com/Gunvolt24/bloodbank/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Пагинация журнала.
const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// RouterConfig — параметры HTTP-слоя.
type RouterConfig struct {
	GinMode        string        // debug|release|test
	HandlerTimeout time.Duration // 0 — без ограничения
	TracingService string        // непусто — включается otelgin
}

type Handler struct {
	service ports.ScreeningService
	log     ports.Logger
}

func NewHandler(service ports.ScreeningService, log ports.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func NewRouter(h *Handler, cfg RouterConfig) *gin.Engine {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if cfg.TracingService != "" {
		r.Use(otelgin.Middleware(cfg.TracingService))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log, "/ping", "/metrics"))
	r.Use(httpx.RequestTimeout(cfg.HandlerTimeout))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	{
		api.GET("/eligibility/criteria", h.getCriteria)
		api.POST("/eligibility/evaluate", h.evaluate)

		api.POST("/screenings", h.screen)
		api.GET("/screenings", h.listScreenings)
		api.GET("/screenings/:id", h.getScreening)

		api.GET("/stats/screenings", h.stats)
	}

	return r
}
