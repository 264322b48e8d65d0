package memory

import (
	"strconv"
	"strings"
	"time"

	"github.com/Gunvolt24/wb_basket/internal/basket"
	"github.com/Gunvolt24/wb_basket/internal/domain"
)

var _ basket.ResultCache = (*ResultCache)(nil)

// ResultCache — LRU результатов агрегации без TTL: ключ включает версию пула,
// поэтому записи не устаревают, а только вытесняются.
type ResultCache struct {
	lru *lruTTL[domain.AggregationResult]
}

func NewResultCache(capacity int) *ResultCache {
	return &ResultCache{lru: newLRUTTL[domain.AggregationResult]("aggregation", capacity, 0)}
}

func (c *ResultCache) Get(key basket.MemoKey) (domain.AggregationResult, bool) {
	res, ok := c.lru.get(memoKey(key), time.Now())
	if !ok {
		return domain.AggregationResult{}, false
	}
	return cloneResult(res), true
}

func (c *ResultCache) Set(key basket.MemoKey, res domain.AggregationResult) {
	c.lru.set(memoKey(key), cloneResult(res), time.Now())
}

func memoKey(k basket.MemoKey) string {
	var b strings.Builder
	for i, part := range []string{k.SessionID, strconv.FormatUint(k.PoolVersion, 10), k.AreaID, k.ItemID, k.Foods} {
		if i > 0 {
			b.WriteByte(0)
		}
		b.WriteString(part)
	}
	return b.String()
}

// cloneResult — копия результата, чтобы внешние изменения
// не отражались на данных внутри кэша.
func cloneResult(res domain.AggregationResult) domain.AggregationResult {
	out := res
	out.MatchedLines = append([]domain.MatchedLine{}, res.MatchedLines...)
	return out
}
