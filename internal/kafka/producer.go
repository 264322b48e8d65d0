package kafka

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
	"github.com/segmentio/kafka-go"
)

// HeaderRequestID — заголовок сообщения с корреляционным идентификатором запроса.
const HeaderRequestID = "X-Request-ID"

const brokerName = "kafka"

var _ ports.CheckoutPublisher = (*CheckoutProducer)(nil)

// writer — минимальный контракт над kafka.Writer (подменяется в тестах).
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ProducerConfig — параметры продюсера событий оплаты.
type ProducerConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

// CheckoutProducer — публикация событий начала оплаты в Kafka.
// Ключ сообщения — session_id: события одной сессии попадают в одну партицию.
type CheckoutProducer struct {
	writer    writer
	topic     string
	log       ports.Logger
	closeOnce sync.Once
}

// NewCheckoutProducer — конструктор; запись синхронная, с подтверждением от всех реплик.
func NewCheckoutProducer(cfg *ProducerConfig, log ports.Logger) *CheckoutProducer {
	wt := cfg.WriteTimeout
	if wt <= 0 {
		wt = 10 * time.Second
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		WriteTimeout: wt,
	}
	return newCheckoutProducer(w, cfg.Topic, log)
}

func newCheckoutProducer(w writer, topic string, log ports.Logger) *CheckoutProducer {
	return &CheckoutProducer{writer: w, topic: topic, log: log}
}

// PublishCheckout — сериализует событие в JSON и пишет его в топик.
func (p *CheckoutProducer) PublishCheckout(ctx context.Context, ev *domain.CheckoutEvent) error {
	raw, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal checkout event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(ev.SessionID),
		Value: raw,
		Time:  ev.RequestedAt,
	}
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		msg.Headers = append(msg.Headers, kafka.Header{Key: HeaderRequestID, Value: []byte(rid)})
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		metrics.CheckoutPublished.WithLabelValues(brokerName, "error").Inc()
		p.log.Warnf(ctx, "kafka write failed topic=%s checkout=%s: %v", p.topic, ev.CheckoutID, err)
		return fmt.Errorf("kafka write: %w", err)
	}

	metrics.CheckoutPublished.WithLabelValues(brokerName, "ok").Inc()
	return nil
}

// Close — сбрасывает буферы и закрывает writer.
func (p *CheckoutProducer) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}
