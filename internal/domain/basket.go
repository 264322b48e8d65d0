package domain

import "time"

// BasketView — всё, что нужно экрану корзины для одной позиции.
type BasketView struct {
	AreaID          string            `json:"area_id"`
	AreaName        string            `json:"area_name"`
	Item            CatalogItem       `json:"item"`
	Config          ItemConfig        `json:"config"`
	TimeState       TimeState         `json:"time_state"`
	Result          AggregationResult `json:"result"`
	CheckoutAllowed bool              `json:"checkout_allowed"`
}

// CheckoutEvent — событие начала оплаты, публикуется только при открытом гейте.
type CheckoutEvent struct {
	CheckoutID  string        `json:"checkout_id"`
	SessionID   string        `json:"session_id"`
	AreaID      string        `json:"area_id"`
	ItemID      string        `json:"item_id"`
	TotalPrice  int64         `json:"total_price"`
	Lines       []MatchedLine `json:"lines"`
	Time        string        `json:"time,omitempty"`
	Faster      bool          `json:"faster"`
	SelfService bool          `json:"self_service"`
	RequestedAt time.Time     `json:"requested_at"`
}
