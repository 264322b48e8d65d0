// Пакет basket — ядро корзины: хранилище параметров позиций,
// агрегация строк заказа и гейт оплаты. Без I/O и без блокировок.
package basket

import (
	"sort"

	"github.com/Gunvolt24/wb_basket/internal/domain"
)

// ConfigStore — неизменяемое отображение itemID → ItemConfig.
// Любое обновление возвращает новое значение; опубликованное не меняется.
type ConfigStore struct {
	items map[string]domain.ItemConfig
}

// Patch — частичное обновление записи позиции; nil-поля не трогаются.
type Patch struct {
	Time        *string
	SelfService *bool
	Faster      *bool
}

// NewConfigStore — пустое хранилище.
func NewConfigStore() ConfigStore { return ConfigStore{} }

// Get — запись позиции или запись по умолчанию.
func (s ConfigStore) Get(itemID string) domain.ItemConfig {
	if cfg, ok := s.items[itemID]; ok {
		return cfg
	}
	return domain.DefaultItemConfig()
}

func (s ConfigStore) has(itemID string) bool {
	_, ok := s.items[itemID]
	return ok
}

// Len — количество сохранённых записей (пишется в лог каждого перехода).
func (s ConfigStore) Len() int { return len(s.items) }

// itemIDs — идентификаторы сохранённых позиций по возрастанию.
func (s ConfigStore) itemIDs() []string {
	ids := make([]string, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Merge — новое хранилище, в котором у itemID изменены только поля из patch.
// Запись читается из текущего значения (read-modify-write), остальные копируются.
func (s ConfigStore) Merge(itemID string, patch Patch) ConfigStore {
	next := make(map[string]domain.ItemConfig, len(s.items)+1)
	for id, cfg := range s.items {
		next[id] = cfg
	}
	next[itemID] = patch.Apply(s.Get(itemID))
	return ConfigStore{items: next}
}

// Apply — применяет patch к копии записи.
func (p Patch) Apply(cfg domain.ItemConfig) domain.ItemConfig {
	if p.Time != nil {
		cfg.Time = *p.Time
	}
	if p.SelfService != nil {
		cfg.SelfService = *p.SelfService
	}
	if p.Faster != nil {
		cfg.Faster = *p.Faster
	}
	return cfg
}

func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }
