package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/varun123-lab/Mario-Vendor/internal/domain/model"
	repo "github.com/varun123-lab/Mario-Vendor/internal/repository"
)

// VendorUsecase はダッシュボード側の業務ロジック。
type VendorUsecase struct {
	productRepo repo.ProductRepository
	orderRepo   repo.OrderRepository
	notifier    Notifier
}

func NewVendorUsecase(
	productRepo repo.ProductRepository,
	orderRepo repo.OrderRepository,
	notifier Notifier,
) *VendorUsecase {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &VendorUsecase{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		notifier:    notifier,
	}
}

// DashboardStats は毎回その場で集計する。キャッシュや無効化はしない。
type DashboardStats struct {
	TotalProducts int
	TotalOrders   int
	Revenue       decimal.Decimal // cancelled以外のtotal合計
	PendingOrders int
	InStock       int // stock > 10
	LowStock      int // 0 < stock <= 10
}

func (u *VendorUsecase) Stats(ctx context.Context) (DashboardStats, error) {
	products, err := u.productRepo.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	orders, err := u.orderRepo.List(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	stats := DashboardStats{
		TotalProducts: len(products),
		TotalOrders:   len(orders),
		Revenue:       decimal.Zero,
	}

	for _, o := range orders {
		if o.Status != model.OrderStatusCancelled {
			stats.Revenue = stats.Revenue.Add(o.Total)
		}
		if o.Status == model.OrderStatusPending {
			stats.PendingOrders++
		}
	}

	for _, p := range products {
		switch {
		case p.Stock > 10:
			stats.InStock++
		case p.Stock > 0:
			stats.LowStock++
		}
		// stock==0 は行単位で見せるだけで集計しない
	}

	return stats, nil
}

// UpdateOrderStatus は列挙に含まれる値ならどの状態からでも上書きする。
// 遷移の妥当性チェックはあえて無し。
func (u *VendorUsecase) UpdateOrderStatus(ctx context.Context, orderID string, status string) error {
	newStatus := model.OrderStatus(strings.TrimSpace(status))
	if !newStatus.Valid() {
		return FieldErrors{"status": "invalid status"}
	}

	err := u.orderRepo.UpdateStatus(ctx, orderID, newStatus)
	if err == repo.ErrNotFound {
		return NewNotFoundError("order", orderID)
	}
	if err != nil {
		return err
	}

	u.notifier.Success("Order #" + orderID + " marked as " + string(newStatus))
	return nil
}

// 商品テーブルの複合フィルタ。条件はANDで重ねる。
type ProductTableFilter struct {
	Query    string // name/brandへの部分一致（大文字小文字無視）
	Category string // 完全一致。空は素通し
	Brand    string // 完全一致。空は素通し
}

func (u *VendorUsecase) FilterProducts(ctx context.Context, f ProductTableFilter) ([]model.Product, error) {
	products, err := u.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Brand), q) {
			continue
		}
		if f.Category != "" && string(p.Category) != f.Category {
			continue
		}
		if f.Brand != "" && p.Brand != f.Brand {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// ListOrders はステータス指定があればそれだけに絞る。空は全件。
func (u *VendorUsecase) ListOrders(ctx context.Context, status string) ([]model.Order, error) {
	orders, err := u.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return orders, nil
	}

	out := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if string(o.Status) == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (u *VendorUsecase) GetOrder(ctx context.Context, orderID string) (model.Order, error) {
	o, err := u.orderRepo.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return model.Order{}, NewNotFoundError("order", orderID)
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}
