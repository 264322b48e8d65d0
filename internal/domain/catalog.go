package domain

// Food — ссылка на продукт, входящий в группу позиции каталога.
type Food struct {
	ID string `json:"id"`
}

// CatalogItem — позиция каталога (заведение/набор), к которой привязана корзина.
// Foods задаёт множество продуктов, по которым считается сумма.
type CatalogItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Foods       []Food `json:"foods"`
}

// FoodArea — фудкорт/зона с набором позиций.
type FoodArea struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Items []CatalogItem `json:"items"`
}
