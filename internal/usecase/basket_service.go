package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/wb_basket/internal/basket"
	"github.com/Gunvolt24/wb_basket/internal/domain"
	"github.com/Gunvolt24/wb_basket/internal/ports"
	"github.com/Gunvolt24/wb_basket/pkg/metrics"
	"github.com/Gunvolt24/wb_basket/pkg/telemetry"
	"github.com/Gunvolt24/wb_basket/pkg/validate"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Проверка, что BasketService удовлетворяет интерфейсу транспортного слоя.
var _ ports.BasketService = (*BasketService)(nil)

// timeLayout — формат значения поля времени (HH:MM).
const timeLayout = "15:04"

// BasketService — прикладная логика корзины (без знаний о транспорте).
type BasketService struct {
	catalog   ports.CatalogRepository // каталог (только чтение)
	configs   ports.ConfigSlot        // сессионный слот параметров
	lines     ports.OrderPoolStore    // сессионный пул строк заказа
	memo      *basket.Memo            // кэш агрегации
	publisher ports.CheckoutPublisher // хук начала оплаты
	validator ports.LineValidator     // валидатор событий строк
	log       ports.Logger

	now   func() time.Time
	newID func() string
}

// NewBasketService — DI-конструктор.
func NewBasketService(
	catalog ports.CatalogRepository,
	configs ports.ConfigSlot,
	lines ports.OrderPoolStore,
	memo *basket.Memo,
	publisher ports.CheckoutPublisher,
	validator ports.LineValidator,
	log ports.Logger,
) *BasketService {
	return &BasketService{
		catalog:   catalog,
		configs:   configs,
		lines:     lines,
		memo:      memo,
		publisher: publisher,
		validator: validator,
		log:       log,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
}

// GetConfig — параметры позиции в сессии (или значения по умолчанию).
func (s *BasketService) GetConfig(ctx context.Context, sessionID, itemID string) domain.ItemConfig {
	return s.configs.Configs(ctx, sessionID).Get(itemID)
}

// SetTime — назначить время (пустая строка снимает назначение).
func (s *BasketService) SetTime(ctx context.Context, sessionID, itemID, t string) (domain.ItemConfig, error) {
	if err := checkTime(t); err != nil {
		return domain.ItemConfig{}, err
	}
	return s.publish(ctx, sessionID, itemID, "time", func(st basket.ConfigStore) basket.ConfigStore {
		return basket.SetTime(st, itemID, t)
	}), nil
}

// SetFaster — флаг «как можно быстрее».
func (s *BasketService) SetFaster(ctx context.Context, sessionID, itemID string, v bool) (domain.ItemConfig, error) {
	return s.publish(ctx, sessionID, itemID, "faster", func(st basket.ConfigStore) basket.ConfigStore {
		return basket.SetFaster(st, itemID, v)
	}), nil
}

// SetSelfService — «с собой» / «на месте».
func (s *BasketService) SetSelfService(ctx context.Context, sessionID, itemID string, v bool) (domain.ItemConfig, error) {
	return s.publish(ctx, sessionID, itemID, "self_service", func(st basket.ConfigStore) basket.ConfigStore {
		return basket.SetSelfService(st, itemID, v)
	}), nil
}

// ToggleSelfService — обработчик обоих переключателей режима.
func (s *BasketService) ToggleSelfService(ctx context.Context, sessionID, itemID string) (domain.ItemConfig, error) {
	return s.publish(ctx, sessionID, itemID, "toggle_self_service", func(st basket.ConfigStore) basket.ConfigStore {
		return basket.ToggleSelfService(st, itemID)
	}), nil
}

// FocusTimeField — событие фокуса на поле времени.
func (s *BasketService) FocusTimeField(ctx context.Context, sessionID, itemID string) (domain.ItemConfig, error) {
	return s.publish(ctx, sessionID, itemID, "focus", func(st basket.ConfigStore) basket.ConfigStore {
		return basket.FocusTimeField(st, itemID)
	}), nil
}

// CommitTimeField — событие фиксации значения поля времени.
func (s *BasketService) CommitTimeField(ctx context.Context, sessionID, itemID, v string) (domain.ItemConfig, error) {
	if err := checkTime(v); err != nil {
		return domain.ItemConfig{}, err
	}
	return s.publish(ctx, sessionID, itemID, "commit", func(st basket.ConfigStore) basket.ConfigStore {
		return basket.CommitTimeField(st, itemID, v)
	}), nil
}

// Aggregate — корзина позиции: строки пула сессии, относящиеся к её продуктам.
func (s *BasketService) Aggregate(ctx context.Context, sessionID, areaID, itemID string) (domain.AggregationResult, error) {
	_, item, err := s.catalog.Item(ctx, areaID, itemID)
	if err != nil {
		return domain.AggregationResult{}, err
	}
	return s.aggregate(ctx, sessionID, areaID, item), nil
}

// Area — зона питания со списком позиций (экран, на который ведёт шапка корзины).
func (s *BasketService) Area(ctx context.Context, areaID string) (*domain.FoodArea, error) {
	area, err := s.catalog.Area(ctx, areaID)
	if err != nil {
		s.log.Warnf(ctx, "area lookup failed area=%s err=%v", areaID, err)
		return nil, err
	}
	return area, nil
}

// Basket — данные экрана корзины: позиция, параметры, сумма и гейт оплаты.
func (s *BasketService) Basket(ctx context.Context, sessionID, areaID, itemID string) (*domain.BasketView, error) {
	area, item, err := s.catalog.Item(ctx, areaID, itemID)
	if err != nil {
		s.log.Warnf(ctx, "catalog lookup failed area=%s item=%s err=%v", areaID, itemID, err)
		return nil, err
	}

	res := s.aggregate(ctx, sessionID, areaID, item)
	cfg := s.GetConfig(ctx, sessionID, itemID)

	return &domain.BasketView{
		AreaID:          area.ID,
		AreaName:        area.Name,
		Item:            *item,
		Config:          cfg,
		TimeState:       basket.StateOf(cfg),
		Result:          res,
		CheckoutAllowed: basket.IsCheckoutAllowed(res, cfg),
	}, nil
}

// Checkout — хук начала оплаты. Публикует событие только при открытом гейте,
// иначе возвращает domain.ErrCheckoutNotAllowed без побочных эффектов.
func (s *BasketService) Checkout(ctx context.Context, sessionID, areaID, itemID string) (_ *domain.CheckoutEvent, err error) {
	ctx, span := telemetry.Tracer().Start(ctx, "basket.checkout")
	span.SetAttributes(attribute.String("basket.area_id", areaID), attribute.String("basket.item_id", itemID))
	defer func() {
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	_, item, err := s.catalog.Item(ctx, areaID, itemID)
	if err != nil {
		metrics.CheckoutAttempts.WithLabelValues("lookup_failed").Inc()
		s.log.Warnf(ctx, "checkout lookup failed area=%s item=%s err=%v", areaID, itemID, err)
		return nil, err
	}

	res := s.aggregate(ctx, sessionID, areaID, item)
	cfg := s.GetConfig(ctx, sessionID, itemID)
	if !basket.IsCheckoutAllowed(res, cfg) {
		metrics.CheckoutAttempts.WithLabelValues("rejected").Inc()
		s.log.Infof(ctx, "checkout rejected session=%s item=%s total=%d state=%s",
			sessionID, itemID, res.TotalPrice, basket.StateOf(cfg))
		return nil, domain.ErrCheckoutNotAllowed
	}

	ev := &domain.CheckoutEvent{
		CheckoutID:  s.newID(),
		SessionID:   sessionID,
		AreaID:      areaID,
		ItemID:      itemID,
		TotalPrice:  res.TotalPrice,
		Lines:       res.MatchedLines,
		Time:        cfg.Time,
		Faster:      cfg.Faster,
		SelfService: cfg.SelfService,
		RequestedAt: s.now().UTC(),
	}
	if err = s.publisher.PublishCheckout(ctx, ev); err != nil {
		metrics.CheckoutAttempts.WithLabelValues("publish_failed").Inc()
		s.log.Errorf(ctx, "publish checkout failed session=%s item=%s err=%v", sessionID, itemID, err)
		return nil, fmt.Errorf("%w: %w", domain.ErrCheckoutPublish, err)
	}

	metrics.CheckoutAttempts.WithLabelValues("allowed").Inc()
	s.log.Infof(ctx, "checkout published id=%s session=%s item=%s total=%d",
		ev.CheckoutID, sessionID, itemID, ev.TotalPrice)
	return ev, nil
}

// Lines — снимок пула строк сессии и его версия.
func (s *BasketService) Lines(ctx context.Context, sessionID string) (domain.OrderPool, uint64) {
	return s.lines.Pool(ctx, sessionID)
}

// ApplyLineFromMessage — применить событие строки заказа, пришедшее из Kafka (raw JSON).
// Строгий разбор и валидация — validate.ValidateLineFromJSON.
// Любые проблемы с данными оборачивают validate.ErrInvalidLine: консьюмер
// коммитит такие сообщения и не повторяет их.
func (s *BasketService) ApplyLineFromMessage(ctx context.Context, raw []byte) error {
	ev, err := validate.ValidateLineFromJSON(ctx, s.validator, raw)
	if err != nil {
		s.log.Warnf(ctx, "order line rejected err=%v", err)
		return fmt.Errorf("apply line: %w", err)
	}

	version := s.lines.ApplyLine(ctx, ev)
	s.log.Infof(ctx, "order line applied session=%s key=%s count=%d version=%d", ev.SessionID, ev.Key, ev.Count, version)
	return nil
}

// ------вспомогательные функции------

func (s *BasketService) publish(
	ctx context.Context,
	sessionID, itemID, kind string,
	fn func(basket.ConfigStore) basket.ConfigStore,
) domain.ItemConfig {
	store := s.configs.PublishConfigs(ctx, sessionID, fn)
	cfg := store.Get(itemID)
	metrics.ConfigTransitions.WithLabelValues(kind).Inc()
	s.log.Infof(ctx, "config %s session=%s item=%s time=%q faster=%t self_service=%t items=%d",
		kind, sessionID, itemID, cfg.Time, cfg.Faster, cfg.SelfService, store.Len())
	return cfg
}

func (s *BasketService) aggregate(ctx context.Context, sessionID, areaID string, item *domain.CatalogItem) domain.AggregationResult {
	pool, version := s.lines.Pool(ctx, sessionID)
	return s.memo.Aggregate(basket.NewMemoKey(sessionID, areaID, version, *item), pool, *item)
}

// checkTime — пустая строка или HH:MM.
func checkTime(t string) error {
	if t == "" {
		return nil
	}
	if _, err := time.Parse(timeLayout, t); err != nil || len(t) != len(timeLayout) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidTime, t)
	}
	return nil
}
