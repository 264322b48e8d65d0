package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
	CheckoutPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_events_published_total",
			Help: "Checkout events sent to the broker",
		},
		[]string{"broker", "result"}, // kafka|nats ; ok|error
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"cache", "op"}, // session|aggregation ; hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
		[]string{"cache"},
	)
)

var (
	ConfigTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "basket_config_transitions_total",
			Help: "Item configuration transitions published",
		},
		[]string{"kind"}, // time|faster|self_service|toggle_self_service|focus|commit
	)
	CheckoutAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "basket_checkout_attempts_total",
			Help: "Checkout attempts by result",
		},
		[]string{"result"}, // allowed|rejected|publish_failed|lookup_failed
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует метрики в default-registry; повторные вызовы ничего не делают.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed, CheckoutPublished,
			CacheOps, CacheSize,
			ConfigTransitions, CheckoutAttempts,
		)
	})
}
