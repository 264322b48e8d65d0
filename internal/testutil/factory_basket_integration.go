//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/Gunvolt24/wb_basket/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeArea — зона с одной позицией «бизнес-ланч» из двух продуктов.
func MakeArea(opts ...func(*domain.FoodArea)) domain.FoodArea {
	a := domain.FoodArea{
		ID:   "area-" + UniqSuffix(),
		Name: "Кафе на этаже",
		Items: []domain.CatalogItem{
			{
				ID:          "item-" + UniqSuffix(),
				Name:        "Бизнес-ланч",
				Description: "Суп и салат",
				Image:       "lunch.png",
				Foods:       []domain.Food{{ID: "soup"}, {ID: "salad"}},
			},
		},
	}
	for _, fn := range opts {
		fn(&a)
	}
	return a
}

// WithItems — n позиций, у i-й позиции i+1 продуктов.
func WithItems(n int) func(*domain.FoodArea) {
	return func(a *domain.FoodArea) {
		a.Items = make([]domain.CatalogItem, 0, n)
		for i := 0; i < n; i++ {
			it := domain.CatalogItem{ID: fmt.Sprintf("item-%d-%s", i, UniqSuffix()), Name: "Item"}
			for j := 0; j <= i; j++ {
				it.Foods = append(it.Foods, domain.Food{ID: fmt.Sprintf("food-%d", j)})
			}
			a.Items = append(a.Items, it)
		}
	}
}

// MakeLineEvent — валидное событие строки заказа.
func MakeLineEvent(sessionID, productID string, price int64, count int) domain.LineEvent {
	return domain.LineEvent{
		SessionID: sessionID,
		Key:       "line-" + UniqSuffix(),
		Item:      domain.Product{ID: productID, Name: productID, Price: price},
		Count:     count,
	}
}
