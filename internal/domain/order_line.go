package domain

// Product — продукт в строке заказа. Цена — целое число в минимальных единицах.
type Product struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Image string `json:"image"`
}

// OrderLine — одна выбранная позиция (продукт и количество).
type OrderLine struct {
	Item  Product `json:"item"`
	Count int     `json:"count"`
}

// OrderPool — пул строк заказа сессии: ключ строки → строка.
// Опубликованный пул не изменяется, обновления создают новую карту.
type OrderPool map[string]OrderLine

// LineEvent — событие изменения строки заказа (приходит из Kafka).
// Count == 0 удаляет строку из пула.
type LineEvent struct {
	SessionID string  `json:"session_id"`
	Key       string  `json:"key"`
	Item      Product `json:"item"`
	Count     int     `json:"count"`
}

// MatchedLine — строка пула, попавшая в корзину позиции.
type MatchedLine struct {
	Key  string    `json:"key"`
	Line OrderLine `json:"line"`
}

// AggregationResult — производные данные корзины, не хранятся.
type AggregationResult struct {
	TotalPrice   int64         `json:"total_price"`
	MatchedLines []MatchedLine `json:"matched_lines"`
}
