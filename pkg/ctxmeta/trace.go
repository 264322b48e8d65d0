package ctxmeta

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// SpanFromContext — trace/span активного спана в виде строк для логов и заголовков.
// Без валидного спана (трейсинг выключен, noop-провайдер) возвращает ok=false.
func SpanFromContext(ctx context.Context) (traceID, spanID string, ok bool) {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return "", "", false
	}
	return sc.TraceID().String(), sc.SpanID().String(), true
}
