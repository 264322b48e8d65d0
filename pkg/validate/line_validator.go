package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/wb_basket/internal/domain"
	"github.com/Gunvolt24/wb_basket/internal/ports"
)

// Проверка, что LineValidator удовлетворяет интерфейсу LineValidator.
var _ ports.LineValidator = (*LineValidator)(nil)

// ErrInvalidLine — базовая (sentinel error) ошибка валидации события строки заказа.
var ErrInvalidLine = errors.New("order line validation failed")

// LineValidator — валидация событий строк заказа на входе (Kafka, CLI).
// Ядро корзины числа не проверяет, поэтому отсекаем мусор здесь.
type LineValidator struct{}

// NewLineValidator — конструктор LineValidator.
func NewLineValidator() *LineValidator { return &LineValidator{} }

// Validate — возвращает ErrInvalidLine (с обёрнутой причиной) при любой проблеме.
func (v *LineValidator) Validate(_ context.Context, ev *domain.LineEvent) error {
	if ev == nil {
		return fmt.Errorf("%w: событие не может быть nil", ErrInvalidLine)
	}
	if ev.SessionID == "" {
		return fmt.Errorf("%w: session_id обязателен", ErrInvalidLine)
	}
	if ev.Key == "" {
		return fmt.Errorf("%w: key обязателен", ErrInvalidLine)
	}
	if ev.Count < 0 {
		return fmt.Errorf("%w: count должен быть неотрицательным", ErrInvalidLine)
	}
	// удаление строки: товар не нужен
	if ev.Count == 0 {
		return nil
	}
	if ev.Item.ID == "" {
		return fmt.Errorf("%w: item.id обязателен", ErrInvalidLine)
	}
	if ev.Item.Price < 0 {
		return fmt.Errorf("%w: item.price должен быть неотрицательным", ErrInvalidLine)
	}
	return nil
}
