//go:build integration

package nats_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/wb_basket/internal/domain"
	basketnats "github.com/Gunvolt24/wb_basket/internal/nats"
	"github.com/Gunvolt24/wb_basket/internal/testutil"
	"github.com/Gunvolt24/wb_basket/pkg/ctxmeta"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

func TestCheckoutPublisher_NATS_RoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	env, stop, err := testutil.StartNATSTC(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stop(context.Background()) })

	const subject = "basket.checkout.itc"

	sub, err := nats.Connect(env.URL)
	require.NoError(t, err)
	defer sub.Close()

	msgs := make(chan *nats.Msg, 1)
	s, err := sub.ChanSubscribe(subject, msgs)
	require.NoError(t, err)
	defer func() { _ = s.Unsubscribe() }()
	require.NoError(t, sub.Flush())

	pub, err := basketnats.NewCheckoutPublisher(&basketnats.PublisherConfig{URL: env.URL, Subject: subject}, nopLogger{})
	require.NoError(t, err)
	defer func() { _ = pub.Close() }()

	ev := &domain.CheckoutEvent{
		CheckoutID:  "c-itc",
		SessionID:   "sess-itc",
		AreaID:      "area-1",
		ItemID:      "item-1",
		TotalPrice:  800,
		Faster:      true,
		RequestedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, pub.PublishCheckout(ctxmeta.WithRequestID(ctx, "rid-itc"), ev))

	select {
	case m := <-msgs:
		require.Equal(t, "rid-itc", m.Header.Get(basketnats.HeaderRequestID))
		var got domain.CheckoutEvent
		require.NoError(t, json.Unmarshal(m.Data, &got))
		require.Equal(t, ev.CheckoutID, got.CheckoutID)
		require.Equal(t, int64(800), got.TotalPrice)
		require.True(t, got.Faster)
	case <-time.After(10 * time.Second):
		t.Fatal("checkout event was not delivered")
	}
}
