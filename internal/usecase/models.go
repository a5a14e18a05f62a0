package usecase

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/shuvajitmaitra/glamor-gallery/internal/domain"
)

// CART USECASE

// AddItemReq — запрос на добавление товара в корзину.
type AddItemReq struct {
	ProductID string
	Quantity  int
	Size      string
	Color     string
}

// UpdateQuantityReq — запрос на перезапись количества у позиции корзины.
type UpdateQuantityReq struct {
	Key      domain.ItemKey
	Quantity int
}

// CHECKOUT USECASE

// CheckoutReq — запрос на оформление заказа.
type CheckoutReq struct {
	Contact domain.CheckoutInfo
}

// CheckoutRes — результат оформления: идентификатор заказа, ссылка для
// передачи во внешний канал и сводка заказа.
type CheckoutRes struct {
	OrderID     string
	WhatsAppURL string
	Summary     domain.OrderSummary
	Transcript  string
}

// INFRASTRUCTURE

// OrderPlacedReq — событие об оформленном заказе для внешнего канала.
type OrderPlacedReq struct {
	OrderID    string
	SessionID  string
	Transcript string
	Total      decimal.Decimal
	PlacedAt   time.Time
}

// MAPPERS

func NewAddItemReq(productID string, quantity int, size, color string) *AddItemReq {
	return &AddItemReq{
		ProductID: productID,
		Quantity:  quantity,
		Size:      size,
		Color:     color,
	}
}

func NewUpdateQuantityReq(key domain.ItemKey, quantity int) *UpdateQuantityReq {
	return &UpdateQuantityReq{
		Key:      key,
		Quantity: quantity,
	}
}

func NewCheckoutReq(contact domain.CheckoutInfo) *CheckoutReq {
	return &CheckoutReq{Contact: contact}
}

func NewOrderPlacedReq(orderID, sessionID, transcript string, total decimal.Decimal, placedAt time.Time) *OrderPlacedReq {
	return &OrderPlacedReq{
		OrderID:    orderID,
		SessionID:  sessionID,
		Transcript: transcript,
		Total:      total,
		PlacedAt:   placedAt,
	}
}
