package ports

import (
	"context"

	"github.com/Gunvolt24/wb_basket/internal/domain"
)

// BasketService — операции корзины, доступные транспортному слою.
type BasketService interface {
	Area(ctx context.Context, areaID string) (*domain.FoodArea, error)
	Basket(ctx context.Context, sessionID, areaID, itemID string) (*domain.BasketView, error)
	GetConfig(ctx context.Context, sessionID, itemID string) domain.ItemConfig
	SetTime(ctx context.Context, sessionID, itemID, t string) (domain.ItemConfig, error)
	SetFaster(ctx context.Context, sessionID, itemID string, v bool) (domain.ItemConfig, error)
	SetSelfService(ctx context.Context, sessionID, itemID string, v bool) (domain.ItemConfig, error)
	ToggleSelfService(ctx context.Context, sessionID, itemID string) (domain.ItemConfig, error)
	FocusTimeField(ctx context.Context, sessionID, itemID string) (domain.ItemConfig, error)
	CommitTimeField(ctx context.Context, sessionID, itemID, v string) (domain.ItemConfig, error)
	Checkout(ctx context.Context, sessionID, areaID, itemID string) (*domain.CheckoutEvent, error)
}
