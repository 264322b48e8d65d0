package basket

import "github.com/Gunvolt24/wb_basket/internal/domain"

// Переходы состояния выбора времени. Каждая функция принимает текущее
// хранилище и возвращает следующее; публикует результат вызывающая сторона.

// SetTime — назначить время; непустое время снимает «как можно быстрее».
func SetTime(s ConfigStore, itemID, t string) ConfigStore {
	return s.Merge(itemID, TimePatch(t))
}

// SetFaster — включить/выключить «как можно быстрее».
// Включение очищает время, выключение оставляет его как есть.
func SetFaster(s ConfigStore, itemID string, v bool) ConfigStore {
	return s.Merge(itemID, FasterPatch(v))
}

// SetSelfService — «с собой» (true) или «на месте» (false); время не затрагивает.
func SetSelfService(s ConfigStore, itemID string, v bool) ConfigStore {
	return s.Merge(itemID, Patch{SelfService: boolPtr(v)})
}

// ToggleSelfService — оба переключателя («с собой» и «на месте») инвертируют один флаг.
func ToggleSelfService(s ConfigStore, itemID string) ConfigStore {
	return SetSelfService(s, itemID, !s.Get(itemID).SelfService)
}

// FocusTimeField — поле времени получило фокус: снимаем «как можно быстрее».
func FocusTimeField(s ConfigStore, itemID string) ConfigStore {
	return s.Merge(itemID, Patch{Faster: boolPtr(false)})
}

// CommitTimeField — значение поля времени зафиксировано (blur/submit).
// Пустое значение переводит позицию в Unset.
func CommitTimeField(s ConfigStore, itemID, v string) ConfigStore {
	return s.Merge(itemID, Patch{Time: strPtr(v), Faster: boolPtr(false)})
}

// TimePatch — patch для SetTime.
func TimePatch(t string) Patch {
	p := Patch{Time: strPtr(t)}
	if t != "" {
		p.Faster = boolPtr(false)
	}
	return p
}

// FasterPatch — patch для SetFaster.
func FasterPatch(v bool) Patch {
	if v {
		return Patch{Time: strPtr(""), Faster: boolPtr(true)}
	}
	return Patch{Faster: boolPtr(false)}
}

// IsCheckoutAllowed — единственный гейт оплаты.
func IsCheckoutAllowed(res domain.AggregationResult, cfg domain.ItemConfig) bool {
	return res.TotalPrice > 0 && (cfg.Time != "" || cfg.Faster)
}

// StateOf — состояние выбора времени для записи.
func StateOf(cfg domain.ItemConfig) domain.TimeState {
	switch {
	case cfg.Time != "":
		return domain.TimeScheduled
	case cfg.Faster:
		return domain.TimeASAP
	default:
		return domain.TimeUnset
	}
}
