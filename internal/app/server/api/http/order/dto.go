package order

import "gomarket/internal/domain/order"

// CheckoutRequest — запрос оформления заказа. Позиции несут только
// productId и количество: цены сервер берет с витрины сам.
type CheckoutRequest struct {
	Items     []order.Line `json:"items"`
	AddressID string       `json:"addressId"`
	ContactID string       `json:"contactId"`
}

type checkoutInput struct {
	Body CheckoutRequest
}

type orderOutput struct {
	Body order.Order
}

type listOutput struct {
	Body []order.Order
}
