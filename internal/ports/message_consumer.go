package ports

import "context"

// MessageConsumer — фоновый источник строк заказа (Kafka).
// Run блокируется до отмены ctx; Close освобождает ридер после остановки Run.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
