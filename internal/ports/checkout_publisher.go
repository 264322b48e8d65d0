package ports

import (
	"context"

	"github.com/Gunvolt24/wb_basket/internal/domain"
)

// CheckoutPublisher — хук начала оплаты (брокер сообщений).
type CheckoutPublisher interface {
	PublishCheckout(ctx context.Context, ev *domain.CheckoutEvent) error
	Close() error
}
