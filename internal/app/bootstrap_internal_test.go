package app

import (
	"context"
	"testing"

	"github.com/Gunvolt24/wb_basket/config"
	"github.com/Gunvolt24/wb_basket/internal/kafka"
	"github.com/gin-gonic/gin"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

func TestNewCheckoutPublisher_Kafka(t *testing.T) {
	cfg := &config.Config{}
	cfg.Kafka.Brokers = []string{"127.0.0.1:9092"}
	cfg.Kafka.CheckoutTopic = "checkouts"

	for _, broker := range []string{"", "kafka", " KAFKA "} {
		cfg.Checkout.Broker = broker
		p, err := newCheckoutPublisher(cfg, nopLogger{})
		if err != nil {
			t.Fatalf("broker=%q: %v", broker, err)
		}
		if _, ok := p.(*kafka.CheckoutProducer); !ok {
			t.Fatalf("broker=%q: want *kafka.CheckoutProducer, got %T", broker, p)
		}
		_ = p.Close()
	}
}

func TestNewCheckoutPublisher_UnknownBroker(t *testing.T) {
	cfg := &config.Config{}
	cfg.Checkout.Broker = "rabbit"

	if _, err := newCheckoutPublisher(cfg, nopLogger{}); err == nil {
		t.Fatal("want error for unknown broker")
	}
}

func TestNewCheckoutPublisher_NATSUnreachable(t *testing.T) {
	cfg := &config.Config{}
	cfg.Checkout.Broker = "nats"
	cfg.NATS.URL = "nats://127.0.0.1:1"
	cfg.NATS.Subject = "basket.checkout"

	if _, err := newCheckoutPublisher(cfg, nopLogger{}); err == nil {
		t.Fatal("want connect error")
	}
}

func TestNewMetricsServer(t *testing.T) {
	tests := []struct {
		name     string
		httpAddr string
		addr     string
		want     bool
	}{
		{"separate", ":8080", ":2112", true},
		{"same_as_http", ":8080", ":8080", false},
		{"disabled", ":8080", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.HTTP.Addr = tt.httpAddr
			cfg.Metrics.Addr = tt.addr
			if got := newMetricsServer(cfg) != nil; got != tt.want {
				t.Fatalf("server created=%v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyGinMode(t *testing.T) {
	defer gin.SetMode(gin.TestMode)

	tests := map[string]string{
		"release": gin.ReleaseMode,
		" TEST ":  gin.TestMode,
		"":        gin.DebugMode,
		"weird":   gin.DebugMode,
	}
	for in, want := range tests {
		applyGinMode(context.Background(), in, nopLogger{})
		if gin.Mode() != want {
			t.Fatalf("mode %q: want %s, got %s", in, want, gin.Mode())
		}
	}
}
