package basket

import (
	"sort"

	"github.com/Gunvolt24/wb_basket/internal/domain"
)

// Aggregate — отбирает строки пула, чей продукт входит в item.Foods,
// и суммирует price*count. Строки упорядочены по ключу пула.
// Пустой или отсутствующий Foods даёт пустой результат с суммой 0.
func Aggregate(pool domain.OrderPool, item domain.CatalogItem) domain.AggregationResult {
	res := domain.AggregationResult{MatchedLines: []domain.MatchedLine{}}
	if len(item.Foods) == 0 || len(pool) == 0 {
		return res
	}

	foodIDs := make(map[string]struct{}, len(item.Foods))
	for _, f := range item.Foods {
		foodIDs[f.ID] = struct{}{}
	}

	keys := make([]string, 0, len(pool))
	for key, line := range pool {
		if _, ok := foodIDs[line.Item.ID]; ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		line := pool[key]
		res.MatchedLines = append(res.MatchedLines, domain.MatchedLine{Key: key, Line: line})
		res.TotalPrice += line.Item.Price * int64(line.Count)
	}
	return res
}
