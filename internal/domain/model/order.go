package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// 列挙に含まれるかだけを見る。遷移グラフはあえて持たない（どの状態からでも変更可）。
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Customer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type ShippingAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
}

// 注文。チェックアウト確定時に一度だけ作られる。
// Items はカート明細の値コピー。以後カタログやカートが変わっても注文は不変。
// 変更されるのは Status だけで、削除はしない。
type Order struct {
	ID           string          `json:"id"`
	CreatedAt    time.Time       `json:"created_at"`
	Customer     Customer        `json:"customer"`
	Shipping     ShippingAddress `json:"shipping"`
	Items        []CartLine      `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	ShippingCost decimal.Decimal `json:"shipping_cost"`
	Tax          decimal.Decimal `json:"tax"`
	Total        decimal.Decimal `json:"total"`
	Status       OrderStatus     `json:"status"`
}
