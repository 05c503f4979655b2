package repository

import (
	"context"

	"github.com/varun123-lab/Mario-Vendor/internal/domain/model"
)

// 注文は追記のみ。更新できるのはステータスだけ。
type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	FindByID(ctx context.Context, orderID string) (model.Order, error)
	Append(ctx context.Context, o model.Order) error
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error
}
