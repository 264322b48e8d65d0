package app_test

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Gunvolt24/wb_basket/internal/app"
	"github.com/Gunvolt24/wb_basket/internal/ports/mocks"
	"github.com/golang/mock/gomock"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// blockingConsumer — Run держится до отмены ctx, как реальный консьюмер строк.
type blockingConsumer struct {
	runs, closes atomic.Int32
}

func (b *blockingConsumer) Run(ctx context.Context) error {
	b.runs.Add(1)
	<-ctx.Done()
	return ctx.Err()
}

func (b *blockingConsumer) Close() error {
	b.closes.Add(1)
	return nil
}

func newApp(c *blockingConsumer, withMetrics bool) *app.App {
	a := &app.App{
		Logger:        nopLogger{},
		HTTPServer:    &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()},
		KafkaConsumer: c,
	}
	if withMetrics {
		a.MetricsServer = &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	}
	return a
}

func runFor(t *testing.T, a *app.App, d time.Duration) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after context cancel")
	}
}

func TestAppRun_GracefulShutdown(t *testing.T) {
	c := &blockingConsumer{}
	runFor(t, newApp(c, false), 300*time.Millisecond)

	if c.runs.Load() != 1 {
		t.Fatalf("consumer.Run calls=%d, want 1", c.runs.Load())
	}
	if c.closes.Load() == 0 {
		t.Fatal("consumer.Close should be called")
	}
}

func TestAppRun_StopsMetricsServer(t *testing.T) {
	c := &blockingConsumer{}
	runFor(t, newApp(c, true), 300*time.Millisecond)

	if c.closes.Load() == 0 {
		t.Fatal("consumer.Close should be called")
	}
}

func TestAppRun_ConsumerFailureStopsApp(t *testing.T) {
	consumer := mocks.NewMockMessageConsumer(gomock.NewController(t))
	gomock.InOrder(
		consumer.EXPECT().Run(gomock.Any()).Return(errors.New("broker unreachable")),
		consumer.EXPECT().Close().Return(nil),
	)

	a := &app.App{
		Logger:        nopLogger{},
		HTTPServer:    &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()},
		KafkaConsumer: consumer,
	}
	// Без ошибки консьюмера Run ждал бы минуту.
	runFor(t, a, time.Minute)
}
