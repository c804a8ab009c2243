package address

import "gomarket/internal/domain/address"

// AddressRequest — тело создания и обновления адреса.
type AddressRequest struct {
	AddressText    string          `json:"addressText"`
	Apartment      string          `json:"apartment,omitempty"`
	Floor          string          `json:"floor,omitempty"`
	Label          string          `json:"label,omitempty"`
	IsFavorite     bool            `json:"isFavorite,omitempty"`
	CourierComment string          `json:"courierComment,omitempty"`
	Coords         *address.Coords `json:"coords,omitempty"`
}

type listOutput struct {
	Body []address.Address
}

type createInput struct {
	Body AddressRequest
}

type updateInput struct {
	ID   string `path:"id"`
	Body AddressRequest
}

type addressOutput struct {
	Body address.Address
}

type deleteInput struct {
	ID string `path:"id"`
}

// DefaultPointer — указатель userID → addressID, живет отдельно
// от самих адресов.
type DefaultPointer struct {
	AddressID string `json:"addressId"`
}

type defaultOutput struct {
	Body DefaultPointer
}

type setDefaultInput struct {
	Body DefaultPointer
}
