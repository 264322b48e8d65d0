package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Gunvolt24/wb_basket/internal/domain"
	"github.com/Gunvolt24/wb_basket/internal/ports"
	"github.com/Gunvolt24/wb_basket/pkg/ctxmeta"
	"github.com/Gunvolt24/wb_basket/pkg/metrics"
	"github.com/nats-io/nats.go"
)

// HeaderRequestID — заголовок сообщения с корреляционным идентификатором запроса.
const HeaderRequestID = "X-Request-ID"

const (
	brokerName          = "nats"
	defaultFlushTimeout = 5 * time.Second
)

var _ ports.CheckoutPublisher = (*CheckoutPublisher)(nil)

// conn — минимальный контракт над *nats.Conn (подменяется в тестах).
type conn interface {
	PublishMsg(m *nats.Msg) error
	FlushWithContext(ctx context.Context) error
	Drain() error
}

// PublisherConfig — параметры публикации событий оплаты в NATS.
type PublisherConfig struct {
	URL          string
	Subject      string
	FlushTimeout time.Duration
}

// CheckoutPublisher — публикация событий начала оплаты в NATS (core, без JetStream).
// После PublishMsg делается Flush: ошибка сервера возвращается вызывающему, а не теряется в буфере.
type CheckoutPublisher struct {
	conn         conn
	subject      string
	flushTimeout time.Duration
	log          ports.Logger
	closeOnce    sync.Once
}

// NewCheckoutPublisher — подключается к NATS; переподключения логируются.
func NewCheckoutPublisher(cfg *PublisherConfig, log ports.Logger) (*CheckoutPublisher, error) {
	nc, err := nats.Connect(cfg.URL,
		nats.Name("basket-checkout"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warnf(context.Background(), "nats disconnected: %v", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Infof(context.Background(), "nats reconnected url=%s", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return newCheckoutPublisher(nc, cfg, log), nil
}

func newCheckoutPublisher(c conn, cfg *PublisherConfig, log ports.Logger) *CheckoutPublisher {
	ft := cfg.FlushTimeout
	if ft <= 0 {
		ft = defaultFlushTimeout
	}
	return &CheckoutPublisher{conn: c, subject: cfg.Subject, flushTimeout: ft, log: log}
}

// PublishCheckout — сериализует событие в JSON и публикует его в subject.
func (p *CheckoutPublisher) PublishCheckout(ctx context.Context, ev *domain.CheckoutEvent) error {
	raw, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal checkout event: %w", err)
	}

	msg := nats.NewMsg(p.subject)
	msg.Data = raw
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		msg.Header.Set(HeaderRequestID, rid)
	}

	if err := p.publish(ctx, msg); err != nil {
		metrics.CheckoutPublished.WithLabelValues(brokerName, "error").Inc()
		p.log.Warnf(ctx, "nats publish failed subject=%s checkout=%s: %v", p.subject, ev.CheckoutID, err)
		return err
	}

	metrics.CheckoutPublished.WithLabelValues(brokerName, "ok").Inc()
	return nil
}

func (p *CheckoutPublisher) publish(ctx context.Context, msg *nats.Msg) error {
	if err := p.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("nats publish: %w", err)
	}

	flushCtx, cancel := context.WithTimeout(ctx, p.flushTimeout)
	defer cancel()
	if err := p.conn.FlushWithContext(flushCtx); err != nil {
		return fmt.Errorf("nats flush: %w", err)
	}
	return nil
}

// Close — дожидается отправки буфера (Drain) и закрывает соединение.
func (p *CheckoutPublisher) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.conn.Drain()
	})
	return retErr
}
