package ports

import "context"

// Logger — логгер сервиса корзины. Реализация сама добавляет к записи
// request_id, session_id и trace_id/span_id из контекста, поэтому
// вызывающему не нужно передавать их в аргументах.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
