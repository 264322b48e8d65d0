package kafka

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/Gunvolt24/wb_basket/internal/ports"
	"github.com/Gunvolt24/wb_basket/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Consumer удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.MessageConsumer = (*Consumer)(nil)

// reader — минимальный контракт над источником (kafka.Reader),
// чтобы легко подменять его моками в тестах.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// lineApplier — зависимость на бизнес-логику, которая парсит, валидирует
// и применяет событие строки заказа к пулу сессии.
type lineApplier interface {
	ApplyLineFromMessage(ctx context.Context, raw []byte) error
}

// Consumer — обёртка над kafka.Reader + зависимостями (usecase, logger).
type Consumer struct {
	reader         reader
	service        lineApplier
	log            ports.Logger
	processTimeout time.Duration
	retryInitial   time.Duration
	retryMax       time.Duration
	jitterRand     *rand.Rand
	closeOnce      sync.Once
}

// NewConsumer — конструктор. ReaderConfig() настроен на ручной коммит оффсетов.
func NewConsumer(cfg *ConsumerConfig, service lineApplier, log ports.Logger) *Consumer {
	return newConsumer(kafka.NewReader(cfg.ReaderConfig()), cfg, service, log)
}

func newConsumer(reader reader, cfg *ConsumerConfig, service lineApplier, log ports.Logger) *Consumer {
	// Параметры по умолчанию (если не заданы в конфиге)
	pt := cfg.ProcessTimeout
	if pt <= 0 {
		pt = 5 * time.Second
	}

	rInit := cfg.RetryInitial
	if rInit <= 0 {
		rInit = 1 * time.Second
	}

	rMax := cfg.RetryMax
	if rMax <= 0 {
		rMax = 30 * time.Second
	}

	return &Consumer{
		reader:         reader,
		service:        service,
		log:            log,
		processTimeout: pt,
		retryInitial:   rInit,
		retryMax:       rMax,
		// jitterRand — источник случайности, чтобы рассинхронизировать экспоненциальный backoff.
		jitterRand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run — основной цикл:
// 1) читаем сообщение без авто-коммита;
// 2) успешная обработка → CommitMessages;
// 3) невалидные события (validate.ErrInvalidLine) → лог и CommitMessages (пропускаем навсегда);
// 4) временная ошибка → повтор того же сообщения с backoff, следующее не читаем.
//
// События одной сессии идут по порядку (ключ — session_id), поздняя запись строки
// перекрывает раннюю, поэтому перескакивать через сообщение нельзя.
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "kafka consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	// Экспоненциальный backoff на ошибках FetchMessage с equal-jitter
	retry := c.retryInitial

	for {
		// Читаем сообщение (без автокоммита)
		msg, fetchErr := c.reader.FetchMessage(ctx)
		if fetchErr != nil {
			// Если контекст отменен -> выходим
			if ctx.Err() != nil {
				return ctx.Err()
			}
			// Иначе - временная ошибка брокера/сети. Ожидаем и повторяем
			sleep := c.withJitterEqual(retry)
			c.log.Warnf(ctx, "fetch failed: %v (will retry in %s)", fetchErr, sleep)
			if !c.sleepWithBackoff(ctx, sleep) {
				return ctx.Err()
			}
			retry = c.nextBackoff(retry)
			continue
		}

		// Успешный FetchMessage -> сбрасываем интервал ожидания и инкрементим метрики
		retry = c.retryInitial
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		if err := c.processInPlace(ctx, rc.Topic, &msg); err != nil {
			return err
		}
	}
}

// processInPlace — обрабатывает сообщение до успеха или пропуска и коммитит его.
// Возвращает ошибку только при отмене контекста (оффсет тогда не коммитится).
func (c *Consumer) processInPlace(ctx context.Context, topic string, msg *kafka.Message) error {
	backoff := minDuration(c.retryInitial, 500*time.Millisecond)
	for attempt := 1; ; attempt++ {
		if c.handleMessage(ctx, topic, msg) {
			c.commitSafely(ctx, msg)
			return nil
		}
		// Пауза с джиттером: разносим повторы во времени
		sleep := c.withJitterEqual(backoff)
		c.log.Warnf(ctx, "retrying offset=%d attempt=%d in %s", msg.Offset, attempt+1, sleep)
		if !c.sleepWithBackoff(ctx, sleep) {
			return ctx.Err()
		}
		backoff = c.nextBackoff(backoff)
	}
}

// Close - закрывает reader. Вызывается при остановке приложения.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}
