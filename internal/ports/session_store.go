package ports

import (
	"context"

	"github.com/Gunvolt24/wb_basket/internal/basket"
	"github.com/Gunvolt24/wb_basket/internal/domain"
)

// ConfigSlot — сессионный слот параметров позиций, переживающий перезапуски экрана.
// Требования к реализации: потокобезопасность; публикация = атомарный
// read-modify-write над последним опубликованным значением.
type ConfigSlot interface {
	// Configs — последнее опубликованное хранилище сессии (пустое, если сессии нет).
	Configs(ctx context.Context, sessionID string) basket.ConfigStore

	// PublishConfigs — применить fn к последнему значению и опубликовать результат.
	PublishConfigs(ctx context.Context, sessionID string, fn func(basket.ConfigStore) basket.ConfigStore) basket.ConfigStore
}

// OrderPoolStore — сессионный пул строк заказа.
type OrderPoolStore interface {
	// Pool — снимок пула и его версия.
	Pool(ctx context.Context, sessionID string) (domain.OrderPool, uint64)

	// ApplyLine — добавить/заменить строку (count > 0) или удалить её (count == 0).
	// Возвращает новую версию пула.
	ApplyLine(ctx context.Context, ev *domain.LineEvent) uint64
}
