package domain

// ItemConfig — параметры заказа, выбранные пользователем для одной позиции каталога.
// Time пустой — время не назначено, иначе "HH:MM".
type ItemConfig struct {
	Time        string `json:"time"`
	SelfService bool   `json:"self_service"`
	Faster      bool   `json:"faster"`
}

// DefaultItemConfig — запись по умолчанию: на месте, «как можно быстрее».
func DefaultItemConfig() ItemConfig {
	const selfService = false
	return ItemConfig{Time: "", SelfService: selfService, Faster: !selfService}
}

// TimeState — состояние выбора времени для позиции.
type TimeState string

const (
	TimeUnset     TimeState = "unset"
	TimeASAP      TimeState = "asap"
	TimeScheduled TimeState = "scheduled"
)
