package basket

import (
	"slices"
	"strings"

	"github.com/Gunvolt24/wb_basket/internal/domain"
)

// MemoKey — ключ кэша агрегации. Версия пула меняется при каждом его обновлении,
// Foods — отпечаток состава позиции: смена каталога даёт новый ключ.
// Позиции ищутся внутри зоны, поэтому AreaID обязателен.
type MemoKey struct {
	SessionID   string
	PoolVersion uint64
	AreaID      string
	ItemID      string
	Foods       string
}

// NewMemoKey — ключ для позиции item зоны areaID на версии пула version.
func NewMemoKey(sessionID, areaID string, version uint64, item domain.CatalogItem) MemoKey {
	return MemoKey{
		SessionID:   sessionID,
		PoolVersion: version,
		AreaID:      areaID,
		ItemID:      item.ID,
		Foods:       foodsFingerprint(item.Foods),
	}
}

// foodsFingerprint — отсортированные уникальные id продуктов через \x1f.
func foodsFingerprint(foods []domain.Food) string {
	ids := make([]string, 0, len(foods))
	for _, f := range foods {
		ids = append(ids, f.ID)
	}
	slices.Sort(ids)
	return strings.Join(slices.Compact(ids), "\x1f")
}

// ResultCache — хранилище результатов агрегации.
type ResultCache interface {
	Get(key MemoKey) (domain.AggregationResult, bool)
	Set(key MemoKey, res domain.AggregationResult)
}

// Memo — Aggregate с кэшированием по MemoKey.
type Memo struct {
	cache ResultCache
}

// NewMemo — конструктор; nil-кэш отключает кэширование.
func NewMemo(cache ResultCache) *Memo { return &Memo{cache: cache} }

// Aggregate — результат из кэша или пересчёт с записью в кэш.
func (m *Memo) Aggregate(key MemoKey, pool domain.OrderPool, item domain.CatalogItem) domain.AggregationResult {
	if m == nil || m.cache == nil {
		return Aggregate(pool, item)
	}
	if res, ok := m.cache.Get(key); ok {
		return res
	}
	res := Aggregate(pool, item)
	m.cache.Set(key, res)
	return res
}
