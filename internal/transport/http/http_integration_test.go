//go:build integration

package rest_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Gunvolt24/wb_basket/internal/basket"
	cachemem "github.com/Gunvolt24/wb_basket/internal/cache/memory"
	"github.com/Gunvolt24/wb_basket/internal/domain"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/wb_basket/internal/ports"
	pgrepo "github.com/Gunvolt24/wb_basket/internal/repo/postgres"
	"github.com/Gunvolt24/wb_basket/internal/testutil"
	rest "github.com/Gunvolt24/wb_basket/internal/transport/http"
	"github.com/Gunvolt24/wb_basket/internal/usecase"
	"github.com/Gunvolt24/wb_basket/pkg/httpx"
	"github.com/Gunvolt24/wb_basket/pkg/logger"
	"github.com/Gunvolt24/wb_basket/pkg/validate"
)

type stack struct {
	ts        *httptest.Server
	svc       *usecase.BasketService
	publisher *recordingPublisher
	area      domain.FoodArea
}

// startStack — Postgres + миграции + зона в каталоге + реальный сервис за HTTP.
func startStack(t *testing.T) *stack {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	t.Cleanup(cancel)

	pg, stop, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stop(context.Background()) })
	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	repo := pgrepo.NewCatalogRepository(pg.Pool)
	area := testutil.MakeArea()
	require.NoError(t, repo.SaveArea(ctx, &area))

	sessions := cachemem.NewSessionCache(100, time.Minute)
	memo := basket.NewMemo(cachemem.NewResultCache(100))
	pub := &recordingPublisher{}
	svc := usecase.NewBasketService(repo, sessions, sessions, memo, pub, validate.NewLineValidator(), logg)

	h := rest.NewHandler(svc, logg, 2*time.Second).WithReadiness(repo)
	ts := httptest.NewServer(rest.NewRouter(h, ""))
	t.Cleanup(ts.Close)

	return &stack{ts: ts, svc: svc, publisher: pub, area: area}
}

// 1) Полный сценарий: строки → корзина → параметры → оплата
func TestHTTP_BasketFlow_TC(t *testing.T) {
	st := startStack(t)
	const session = "sess-flow"
	item := st.area.Items[0]
	basketURL := st.ts.URL + "/basket/" + st.area.ID + "/" + item.ID

	ctx := context.Background()
	require.NoError(t, st.svc.ApplyLineFromMessage(ctx, lineJSON(t, testutil.MakeLineEvent(session, "soup", 250, 2))))
	require.NoError(t, st.svc.ApplyLineFromMessage(ctx, lineJSON(t, testutil.MakeLineEvent(session, "salad", 300, 1))))
	require.NoError(t, st.svc.ApplyLineFromMessage(ctx, lineJSON(t, testutil.MakeLineEvent(session, "cola", 100, 5))))

	// корзина: суп + салат, кола не из группы
	resp := send(t, http.MethodGet, basketURL, session, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var view domain.BasketView
	decode(t, resp, &view)
	require.Equal(t, int64(800), view.Result.TotalPrice)
	require.Len(t, view.Result.MatchedLines, 2)
	require.Equal(t, st.area.Name, view.AreaName)
	require.Equal(t, domain.TimeASAP, view.TimeState)
	require.True(t, view.CheckoutAllowed)

	// фокус на поле времени закрывает гейт
	resp = send(t, http.MethodPost, st.ts.URL+"/items/"+item.ID+"/config/time/focus", session, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = send(t, http.MethodPost, basketURL+"/checkout", session, "")
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
	require.Empty(t, st.publisher.events())

	// время выбрано — гейт открыт
	resp = send(t, http.MethodPost, st.ts.URL+"/items/"+item.ID+"/config/time/commit", session, `{"time":"13:15"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cfg domain.ItemConfig
	decode(t, resp, &cfg)
	require.Equal(t, domain.ItemConfig{Time: "13:15"}, cfg)

	resp = send(t, http.MethodPost, basketURL+"/checkout", session, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var ev domain.CheckoutEvent
	decode(t, resp, &ev)
	require.Equal(t, item.ID, ev.ItemID)
	require.Equal(t, int64(800), ev.TotalPrice)
	require.Equal(t, "13:15", ev.Time)
	require.Len(t, st.publisher.events(), 1)
}

// 2) Параметры живут между запросами одной сессии и не видны другой
func TestHTTP_ConfigSurvivesRequests_TC(t *testing.T) {
	st := startStack(t)
	itemURL := st.ts.URL + "/items/" + st.area.Items[0].ID + "/config"

	resp := send(t, http.MethodPut, itemURL+"/self-service", "sess-a", `{"self_service":true}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = send(t, http.MethodGet, itemURL, "sess-a", "")
	var cfg domain.ItemConfig
	decode(t, resp, &cfg)
	require.Equal(t, domain.ItemConfig{SelfService: true, Faster: true}, cfg)

	resp = send(t, http.MethodGet, itemURL, "sess-b", "")
	decode(t, resp, &cfg)
	require.Equal(t, domain.DefaultItemConfig(), cfg)
}

// 3) 404 для неизвестной зоны/позиции, 400 для неверного времени
func TestHTTP_NotFoundAndBadTime_TC(t *testing.T) {
	st := startStack(t)

	resp := send(t, http.MethodGet, st.ts.URL+"/basket/no-area/no-item", "sess", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = send(t, http.MethodGet, st.ts.URL+"/basket/"+st.area.ID+"/no-item", "sess", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = send(t, http.MethodPut, st.ts.URL+"/items/"+st.area.Items[0].ID+"/config/time", "sess", `{"time":"7pm"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var got map[string]any
	decode(t, resp, &got)
	require.Equal(t, domain.ErrInvalidTime.Error(), got["error"])
}

func TestHTTP_Area_TC(t *testing.T) {
	st := startStack(t)

	resp := send(t, http.MethodGet, st.ts.URL+"/areas/"+st.area.ID, "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got domain.FoodArea
	decode(t, resp, &got)
	require.Equal(t, st.area.Name, got.Name)
	require.Len(t, got.Items, 1)
	require.ElementsMatch(t, st.area.Items[0].Foods, got.Items[0].Foods)

	resp = send(t, http.MethodGet, st.ts.URL+"/areas/no-area", "", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

// 4) /ping, /ready, /metrics, 404 и 405
func TestHTTP_Health_Metrics_404_405_TC(t *testing.T) {
	st := startStack(t)

	resp := send(t, http.MethodGet, st.ts.URL+"/ping", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "pong", string(readAll(t, resp.Body)))
	resp.Body.Close()

	resp = send(t, http.MethodGet, st.ts.URL+"/ready", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = send(t, http.MethodGet, st.ts.URL+"/metrics", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, readAll(t, resp.Body)) // достаточно, что не пусто
	resp.Body.Close()

	resp = send(t, http.MethodGet, st.ts.URL+"/no/such/route", "", "")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = send(t, http.MethodDelete, st.ts.URL+"/basket/a/i", "sess", "")
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	var got map[string]any
	decode(t, resp, &got)
	require.Equal(t, "method not allowed", got["error"])
}

// 5) Таймаут запросов: Handler с коротким timeout должен вернуть 500
func TestHTTP_Basket_Timeout_500_TC(t *testing.T) {
	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	h := rest.NewHandler(slowService{}, logg, 10*time.Millisecond)
	ts := httptest.NewServer(rest.NewRouter(h, ""))
	defer ts.Close()

	resp := send(t, http.MethodGet, ts.URL+"/basket/a/i", "sess", "")
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var got map[string]any
	decode(t, resp, &got)
	require.Equal(t, "internal server error", got["error"])
}

// --- функции помощники ---

// recordingPublisher — запоминает события оплаты вместо брокера.
type recordingPublisher struct {
	mu  sync.Mutex
	evs []domain.CheckoutEvent
}

func (p *recordingPublisher) PublishCheckout(_ context.Context, ev *domain.CheckoutEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.evs = append(p.evs, *ev)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) events() []domain.CheckoutEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.CheckoutEvent(nil), p.evs...)
}

// slowService — ждёт ctx.Done() и возвращает ошибку контекста (для проверки таймаута 500).
// Остальные методы не вызываются.
type slowService struct{ ports.BasketService }

func (slowService) Basket(ctx context.Context, _, _, _ string) (*domain.BasketView, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func send(t *testing.T, method, url, session, body string) *http.Response {
	t.Helper()
	var rd io.Reader = http.NoBody
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, rd)
	require.NoError(t, err)
	if session != "" {
		req.Header.Set(httpx.HeaderSessionID, session)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

func lineJSON(t *testing.T, ev domain.LineEvent) []byte {
	t.Helper()
	raw, err := json.Marshal(ev)
	require.NoError(t, err)
	return raw
}

// readAll — просто прочитать тело.
func readAll(t *testing.T, r io.Reader) []byte {
	t.Helper()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return b
}
