package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/Gunvolt24/wb_basket/internal/ports"
	"github.com/Gunvolt24/wb_basket/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const defaultHandlerTimeout = 3 * time.Second

// Pinger — проверка готовности зависимостей (каталог).
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler — HTTP-обработчики корзины поверх ports.BasketService.
type Handler struct {
	service ports.BasketService
	log     ports.Logger
	timeout time.Duration
	ready   Pinger
}

// NewHandler — конструктор; timeout ограничивает обработку одного запроса.
func NewHandler(service ports.BasketService, log ports.Logger, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = defaultHandlerTimeout
	}
	return &Handler{service: service, log: log, timeout: timeout}
}

// WithReadiness — подключает проверку готовности для /ready.
func (h *Handler) WithReadiness(p Pinger) *Handler {
	h.ready = p
	return h
}

// NewRouter — gin-роутер. otelServiceName != "" включает otelgin.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/ready", h.readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/areas/:areaId", h.getArea)

	session := r.Group("/", httpx.SessionIDMiddleware())
	{
		items := session.Group("/items/:itemId/config")
		items.GET("", h.getConfig)
		items.PUT("/time", h.setTime)
		items.PUT("/faster", h.setFaster)
		items.PUT("/self-service", h.setSelfService)
		items.POST("/self-service/toggle", h.toggleSelfService)
		items.POST("/time/focus", h.focusTimeField)
		items.POST("/time/commit", h.commitTimeField)

		basket := session.Group("/basket/:areaId/:itemId")
		basket.GET("", h.getBasket)
		basket.POST("/checkout", h.checkout)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	return r
}

func (h *Handler) readiness(c *gin.Context) {
	if h.ready == nil {
		c.String(http.StatusOK, "ok")
		return
	}
	if err := h.ready.Ping(c.Request.Context()); err != nil {
		h.log.Warnf(c.Request.Context(), "readiness check failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog unavailable"})
		return
	}
	c.String(http.StatusOK, "ok")
}

// requestContext — контекст запроса с таймаутом обработчика.
func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.timeout)
}
