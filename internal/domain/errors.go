package domain

import "errors"

var (
	// ErrAreaNotFound — зона не найдена в каталоге.
	ErrAreaNotFound = errors.New("food area not found")
	// ErrItemNotFound — позиция не найдена в зоне.
	ErrItemNotFound = errors.New("catalog item not found")
	// ErrCheckoutNotAllowed — гейт оплаты закрыт (сумма 0 или время не выбрано).
	ErrCheckoutNotAllowed = errors.New("checkout is not allowed")
	// ErrCheckoutPublish — брокер не принял событие начала оплаты.
	ErrCheckoutPublish = errors.New("failed to publish checkout")
	// ErrInvalidTime — время не в формате HH:MM.
	ErrInvalidTime = errors.New("invalid time, want HH:MM")
)
