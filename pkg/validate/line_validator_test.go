package validate_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Gunvolt24/wb_basket/internal/domain"
	"github.com/Gunvolt24/wb_basket/pkg/validate"
)

func validLine() *domain.LineEvent {
	return &domain.LineEvent{
		SessionID: "sess-1",
		Key:       "line-1",
		Item:      domain.Product{ID: "burger", Name: "Бургер", Price: 250},
		Count:     2,
	}
}

func TestLineValidator_Validate(t *testing.T) {
	v := validate.NewLineValidator()
	ctx := context.Background()

	t.Run("valid line", func(t *testing.T) {
		if err := v.Validate(ctx, validLine()); err != nil {
			t.Fatalf("expected valid line, got: %v", err)
		}
	})

	t.Run("removal without item", func(t *testing.T) {
		ev := &domain.LineEvent{SessionID: "s", Key: "k", Count: 0}
		if err := v.Validate(ctx, ev); err != nil {
			t.Fatalf("removal must be valid, got: %v", err)
		}
	})

	cases := []struct {
		name string
		make func() *domain.LineEvent
		msg  string
	}{
		{"nil event", func() *domain.LineEvent { return nil }, "событие не может быть nil"},
		{"empty session", func() *domain.LineEvent { e := validLine(); e.SessionID = ""; return e }, "session_id обязателен"},
		{"empty key", func() *domain.LineEvent { e := validLine(); e.Key = ""; return e }, "key обязателен"},
		{"negative count", func() *domain.LineEvent { e := validLine(); e.Count = -1; return e }, "count должен быть неотрицательным"},
		{"empty item id", func() *domain.LineEvent { e := validLine(); e.Item.ID = ""; return e }, "item.id обязателен"},
		{"negative price", func() *domain.LineEvent { e := validLine(); e.Item.Price = -10; return e }, "item.price должен быть неотрицательным"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(ctx, tc.make())
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !errors.Is(err, validate.ErrInvalidLine) {
				t.Fatalf("expected ErrInvalidLine, got: %v", err)
			}
			if !strings.Contains(err.Error(), tc.msg) {
				t.Fatalf("expected message %q, got %q", tc.msg, err.Error())
			}
		})
	}
}
