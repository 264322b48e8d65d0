package ports

import (
	"context"

	"github.com/Gunvolt24/wb_basket/internal/domain"
)

// CatalogRepository — чтение каталога (только чтение).
// При отсутствии записи возвращает ошибку, оборачивающую domain.ErrAreaNotFound / domain.ErrItemNotFound.
type CatalogRepository interface {
	Area(ctx context.Context, areaID string) (*domain.FoodArea, error)
	Item(ctx context.Context, areaID, itemID string) (*domain.FoodArea, *domain.CatalogItem, error)
}
