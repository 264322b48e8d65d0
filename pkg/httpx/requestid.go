package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/Gunvolt24/wb_basket/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID — корреляционный идентификатор запроса.
	HeaderRequestID = "X-Request-ID"
	// HeaderSessionID — идентификатор сессии заказа (переживает перезапуски экрана).
	HeaderSessionID = "X-Session-ID"

	maxSessionIDLen = 128
)

// RequestIDMiddleware:
// - принимает X-Request-ID от клиента или генерирует UUID
// - кладёт request_id в контекст
// - возвращает его в ответном заголовке X-Request-ID
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(HeaderRequestID))
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header(HeaderRequestID, requestID)
		withContext(c, ctxmeta.WithRequestID, requestID)

		c.Next()
	}
}

// SessionIDMiddleware — обязательный X-Session-ID: без него (или со слишком
// длинным значением) запрос отклоняется с 400. Значение кладётся в контекст.
func SessionIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := strings.TrimSpace(c.GetHeader(HeaderSessionID))
		if sessionID == "" || len(sessionID) > maxSessionIDLen {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing or invalid " + HeaderSessionID})
			return
		}
		withContext(c, ctxmeta.WithSessionID, sessionID)

		c.Next()
	}
}

// SessionID — идентификатор сессии, положенный SessionIDMiddleware.
func SessionID(c *gin.Context) string {
	id, _ := ctxmeta.SessionIDFromContext(c.Request.Context())
	return id
}

func withContext(c *gin.Context, put func(context.Context, string) context.Context, v string) {
	c.Request = c.Request.WithContext(put(c.Request.Context(), v))
}
