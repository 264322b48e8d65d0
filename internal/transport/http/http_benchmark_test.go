//go:build !integration

package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/wb_basket/internal/domain"
	"github.com/Gunvolt24/wb_basket/pkg/httpx"
)

// --- Бенчмарки ---

// Базовый бенч: экран корзины — сравниваем LEAN vs FULL пайплайн
func BenchmarkHTTP_Basket(b *testing.B) {
	h := NewHandler(svcView{v: makeView(3)}, nopLogger{}, 2*time.Second)

	lean := makeLeanRouter(h)
	full := makeFullRouter(h)

	b.Run("lean/no-mw", func(b *testing.B) {
		benchServe(b, lean, http.MethodGet, "/basket/a1/i1", http.StatusOK)
	})
	b.Run("full/prod-mw", func(b *testing.B) {
		benchServe(b, full, http.MethodGet, "/basket/a1/i1", http.StatusOK)
	})
}

// Потолок без маршалинга: тот же view, но заранее закодированный JSON
func BenchmarkHTTP_Basket_PreMarshaledBytes(b *testing.B) {
	raw, _ := json.Marshal(makeView(3))

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/basket/:areaId/:itemId", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", raw)
	})

	benchServe(b, r, http.MethodGet, "/basket/a1/i1", http.StatusOK)
}

// Рост числа совпавших строк: 10/50/100
func BenchmarkHTTP_Basket_MatchedLines(b *testing.B) {
	for _, n := range []int{10, 50, 100} {
		b.Run("N="+strconv.Itoa(n), func(b *testing.B) {
			h := NewHandler(svcView{v: makeView(n)}, nopLogger{}, 2*time.Second)
			benchServe(b, makeLeanRouter(h), http.MethodGet, "/basket/a1/i1", http.StatusOK)
		})
	}
}

// Переход конфигурации: bind JSON + ответ
func BenchmarkHTTP_SetTime(b *testing.B) {
	h := NewHandler(svcView{v: makeView(0)}, nopLogger{}, 2*time.Second)
	r := makeLeanRouter(h)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req := newRequest(http.MethodPut, "/items/i1/config/time", `{"time":"12:30"}`)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}

// Ошибочный путь (404): "цена" роутера и 404-хендлера
func BenchmarkHTTP_404(b *testing.B) {
	h := NewHandler(svcView{v: makeView(0)}, nopLogger{}, 2*time.Second)
	benchServe(b, makeLeanRouter(h), http.MethodGet, "/nope", http.StatusNotFound)
}

// --- nopLogger — логгер, который не делает ничего. ---

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// --- Стаб сервиса: всегда отдаёт заранее собранный view ---

type svcView struct{ v *domain.BasketView }

func (s svcView) Basket(context.Context, string, string, string) (*domain.BasketView, error) {
	return s.v, nil
}
func (s svcView) Area(context.Context, string) (*domain.FoodArea, error) {
	return &domain.FoodArea{ID: s.v.AreaID, Name: s.v.AreaName}, nil
}
func (s svcView) GetConfig(context.Context, string, string) domain.ItemConfig { return s.v.Config }
func (s svcView) SetTime(_ context.Context, _, _, t string) (domain.ItemConfig, error) {
	return domain.ItemConfig{Time: t}, nil
}
func (s svcView) SetFaster(_ context.Context, _, _ string, v bool) (domain.ItemConfig, error) {
	return domain.ItemConfig{Faster: v}, nil
}
func (s svcView) SetSelfService(_ context.Context, _, _ string, v bool) (domain.ItemConfig, error) {
	return domain.ItemConfig{SelfService: v}, nil
}
func (s svcView) ToggleSelfService(context.Context, string, string) (domain.ItemConfig, error) {
	return s.v.Config, nil
}
func (s svcView) FocusTimeField(context.Context, string, string) (domain.ItemConfig, error) {
	return s.v.Config, nil
}
func (s svcView) CommitTimeField(_ context.Context, _, _, v string) (domain.ItemConfig, error) {
	return domain.ItemConfig{Time: v}, nil
}
func (s svcView) Checkout(context.Context, string, string, string) (*domain.CheckoutEvent, error) {
	return nil, domain.ErrCheckoutNotAllowed
}

// --- функции-помощники ---

func makeView(n int) *domain.BasketView {
	lines := make([]domain.MatchedLine, 0, n)
	var total int64
	for i := 0; i < n; i++ {
		line := domain.OrderLine{
			Item:  domain.Product{ID: "f" + strconv.Itoa(i), Name: "Блюдо " + strconv.Itoa(i), Price: 150},
			Count: 2,
		}
		total += line.Item.Price * int64(line.Count)
		lines = append(lines, domain.MatchedLine{Key: "k" + strconv.Itoa(i), Line: line})
	}
	return &domain.BasketView{
		AreaID:          "a1",
		AreaName:        "Кафе",
		Item:            domain.CatalogItem{ID: "i1", Name: "Ланч"},
		Config:          domain.DefaultItemConfig(),
		TimeState:       domain.TimeASAP,
		Result:          domain.AggregationResult{TotalPrice: total, MatchedLines: lines},
		CheckoutAllowed: total > 0,
	}
}

func makeLeanRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New() // без Recovery/otel/logger — только сессия и хендлеры
	s := r.Group("/", httpx.SessionIDMiddleware())
	s.GET("/basket/:areaId/:itemId", h.getBasket)
	s.PUT("/items/:itemId/config/time", h.setTime)
	r.NoRoute(func(c *gin.Context) { c.Status(http.StatusNotFound) })
	return r
}

func makeFullRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	return NewRouter(h, "")
}

func newRequest(method, path, body string) *http.Request {
	var rd io.Reader = http.NoBody
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, _ := http.NewRequest(method, path, rd)
	req.Header.Set(httpx.HeaderSessionID, "bench-session")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func benchServe(b *testing.B, r *gin.Engine, method, path string, want int) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()

	// Параллельный режим ближе к реальности без TCP
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, newRequest(method, path, ""))
			_, _ = io.Copy(io.Discard, w.Body)
			if w.Code != want {
				b.Fatalf("status=%d", w.Code)
			}
		}
	})
}
