package ports

import (
	"context"

	"github.com/Gunvolt24/wb_basket/internal/domain"
)

type LineValidator interface {
	Validate(ctx context.Context, ev *domain.LineEvent) error
}
