package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/wb_basket/internal/domain"
	"github.com/Gunvolt24/wb_basket/internal/ports"
)

// ValidateLineFromJSON — строгий разбор (без неизвестных полей и хвоста) и валидация события.
// Любая проблема с данными оборачивает ErrInvalidLine.
func ValidateLineFromJSON(ctx context.Context, validator ports.LineValidator, raw []byte) (*domain.LineEvent, error) {
	var ev domain.LineEvent
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ev); err != nil {
		return nil, fmt.Errorf("invalid json: %v: %w", err, ErrInvalidLine)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data: %w", ErrInvalidLine)
	}
	if err := validator.Validate(ctx, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}
