package basket

import (
	"reflect"
	"testing"

	"github.com/Gunvolt24/wb_basket/internal/domain"
)

func line(id string, price int64, count int) domain.OrderLine {
	return domain.OrderLine{Item: domain.Product{ID: id, Price: price}, Count: count}
}

func TestAggregate_Scenario(t *testing.T) {
	t.Parallel()

	pool := domain.OrderPool{
		"L1": line("a", 100, 2),
		"L2": line("b", 50, 1),
	}
	item := domain.CatalogItem{ID: "item", Foods: []domain.Food{{ID: "a"}}}

	got := Aggregate(pool, item)
	if got.TotalPrice != 200 {
		t.Fatalf("TotalPrice = %d, want 200", got.TotalPrice)
	}
	if len(got.MatchedLines) != 1 || got.MatchedLines[0].Key != "L1" {
		t.Fatalf("MatchedLines = %+v, want [L1]", got.MatchedLines)
	}
}

func TestAggregate_EmptyFoods(t *testing.T) {
	t.Parallel()

	pool := domain.OrderPool{"L1": line("a", 100, 2)}

	for name, item := range map[string]domain.CatalogItem{
		"nil":   {ID: "x"},
		"empty": {ID: "x", Foods: []domain.Food{}},
	} {
		got := Aggregate(pool, item)
		if got.TotalPrice != 0 || got.MatchedLines == nil || len(got.MatchedLines) != 0 {
			t.Fatalf("%s: want empty result, got %+v", name, got)
		}
	}
}

func TestAggregate_SumsOnlyMatchingLines(t *testing.T) {
	t.Parallel()

	pool := domain.OrderPool{
		"k3": line("c", 7, 100),
		"k1": line("a", 10, 3),
		"k2": line("b", 25, 2),
		"k4": line("a", 1, 1),
	}
	item := domain.CatalogItem{Foods: []domain.Food{{ID: "a"}, {ID: "b"}, {ID: "zzz"}}}

	got := Aggregate(pool, item)
	if got.TotalPrice != 10*3+25*2+1*1 {
		t.Fatalf("TotalPrice = %d", got.TotalPrice)
	}
	keys := make([]string, 0, len(got.MatchedLines))
	for _, m := range got.MatchedLines {
		keys = append(keys, m.Key)
	}
	if !reflect.DeepEqual(keys, []string{"k1", "k2", "k4"}) {
		t.Fatalf("matched keys = %v", keys)
	}
}

// Одинаковые входы — одинаковый результат (в том числе порядок строк).
func TestAggregate_Deterministic(t *testing.T) {
	t.Parallel()

	pool := domain.OrderPool{}
	for _, k := range []string{"e", "d", "c", "b", "a"} {
		pool[k] = line("p", 3, 1)
	}
	item := domain.CatalogItem{Foods: []domain.Food{{ID: "p"}}}

	first := Aggregate(pool, item)
	for i := 0; i < 20; i++ {
		if got := Aggregate(pool, item); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}

func TestAggregate_EmptyPool(t *testing.T) {
	t.Parallel()

	got := Aggregate(nil, domain.CatalogItem{Foods: []domain.Food{{ID: "a"}}})
	if got.TotalPrice != 0 || len(got.MatchedLines) != 0 {
		t.Fatalf("want empty result, got %+v", got)
	}
}
