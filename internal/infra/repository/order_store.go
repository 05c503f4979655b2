package repository

import (
	"context"

	"github.com/varun123-lab/Mario-Vendor/internal/domain/model"
	"github.com/varun123-lab/Mario-Vendor/internal/infra/storage"
	repo "github.com/varun123-lab/Mario-Vendor/internal/repository"
)

// OrderStoreRepository は vendor_orders キーの注文リスト（追記のみ）。
type OrderStoreRepository struct {
	store *storage.Store
}

func NewOrderStoreRepository(store *storage.Store) *OrderStoreRepository {
	return &OrderStoreRepository{store: store}
}

var _ repo.OrderRepository = (*OrderStoreRepository)(nil)

func (r *OrderStoreRepository) load() []model.Order {
	var orders []model.Order
	if ok := r.store.Get(keyOrders, &orders); !ok {
		return []model.Order{}
	}
	return orders
}

func (r *OrderStoreRepository) List(ctx context.Context) ([]model.Order, error) {
	return r.load(), nil
}

func (r *OrderStoreRepository) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	for _, o := range r.load() {
		if o.ID == orderID {
			return o, nil
		}
	}
	return model.Order{}, repo.ErrNotFound
}

func (r *OrderStoreRepository) Append(ctx context.Context, o model.Order) error {
	orders := append(r.load(), o)
	return r.store.Set(keyOrders, orders)
}

func (r *OrderStoreRepository) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	orders := r.load()
	for i := range orders {
		if orders[i].ID == orderID {
			orders[i].Status = status
			return r.store.Set(keyOrders, orders)
		}
	}
	return repo.ErrNotFound
}
