package address

import "time"

// Coords — координаты точки доставки.
type Coords struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Address — адрес доставки пользователя.
//
// Признак "выбранный/дефолтный" на адресе не хранится: выбор ведется
// отдельной связкой userID → addressID, чтобы переживать правки
// и удаления адресов без миграции самого адреса.
type Address struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	AddressText    string    `json:"addressText"`
	Apartment      string    `json:"apartment,omitempty"`
	Floor          string    `json:"floor,omitempty"`
	Label          string    `json:"label,omitempty"`
	IsFavorite     bool      `json:"isFavorite"`
	CourierComment string    `json:"courierComment,omitempty"`
	Coords         *Coords   `json:"coords,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
