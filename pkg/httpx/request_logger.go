package httpx

import (
	"time"

	"github.com/Gunvolt24/wb_basket/internal/ports"
	"github.com/gin-gonic/gin"
)

// RequestLogger — middleware для логирования HTTP-запросов.
// request_id / session_id / trace_id добавляет сам логгер из контекста.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// не логируем служебные маршруты
		switch c.FullPath() {
		case "/metrics", "/ping":
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		ctx := c.Request.Context()
		if len(c.Errors) > 0 {
			log.Warnf(ctx, "request method=%s path=%s status=%d duration=%s errors=%s",
				c.Request.Method, path, c.Writer.Status(), time.Since(start), c.Errors.String())
			return
		}

		log.Infof(ctx, "request method=%s path=%s status=%d ip=%s duration=%s size=%d",
			c.Request.Method,
			path,
			c.Writer.Status(),
			c.ClientIP(),
			time.Since(start),
			c.Writer.Size(),
		)
	}
}
