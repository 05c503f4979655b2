package usecase

import (
	"context"
	"strconv"

	"github.com/varun123-lab/Mario-Vendor/internal/domain/model"
	repo "github.com/varun123-lab/Mario-Vendor/internal/repository"
)

// CartUsecase はカートの業務ロジック。
// 同一 (productId, size, color) は1明細にまとめて数量を加算する。
type CartUsecase struct {
	cartRepo    repo.CartRepository
	productRepo repo.ProductRepository
	pricing     PricingPolicy
	notifier    Notifier
	counter     CartCountListener // nil可
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	productRepo repo.ProductRepository,
	pricing PricingPolicy,
	notifier Notifier,
	counter CartCountListener,
) *CartUsecase {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &CartUsecase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		pricing:     pricing,
		notifier:    notifier,
		counter:     counter,
	}
}

type AddToCartInput struct {
	ProductID int64
	Quantity  int64  // 1未満は1として扱う
	Size      string // 空なら商品の先頭サイズ
	Color     string // 空なら商品の先頭カラー
}

// Add は商品を解決してカートへ。商品が無ければエラートーストを出してNotFoundを返す
// （呼び出し側はそれ以上伝播させない想定）。
func (u *CartUsecase) Add(ctx context.Context, in AddToCartInput) error {
	qty := in.Quantity
	if qty < 1 {
		qty = 1
	}

	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if err == repo.ErrNotFound {
		u.notifier.Error("Product not found")
		return NewNotFoundError("product", strconv.FormatInt(in.ProductID, 10))
	}
	if err != nil {
		return err
	}

	size := in.Size
	if size == "" && len(p.Sizes) > 0 {
		size = p.Sizes[0]
	}
	color := in.Color
	if color == "" && len(p.Colors) > 0 {
		color = p.Colors[0]
	}

	lines, err := u.cartRepo.Load(ctx)
	if err != nil {
		return err
	}

	merged := false
	for i := range lines {
		if lines[i].ProductID == in.ProductID && lines[i].Size == size && lines[i].Color == color {
			lines[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, model.CartLine{
			ProductID: p.ID,
			Name:      p.Name,
			Brand:     p.Brand,
			Price:     p.Price,
			Image:     p.Image,
			Quantity:  qty,
			Size:      size,
			Color:     color,
		})
	}

	if err := u.cartRepo.Save(ctx, lines); err != nil {
		return err
	}

	u.notifier.Success(p.Name + " added to cart")
	u.notifyCount(lines)
	return nil
}

// Remove は範囲外のindexを黙って無視する。
func (u *CartUsecase) Remove(ctx context.Context, index int) error {
	lines, err := u.cartRepo.Load(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(lines) {
		return nil
	}

	removed := lines[index]
	lines = append(lines[:index], lines[index+1:]...)
	if err := u.cartRepo.Save(ctx, lines); err != nil {
		return err
	}

	u.notifier.Success(removed.Name + " removed from cart")
	u.notifyCount(lines)
	return nil
}

// SetQuantity の qty<=0 は削除と同じ。
func (u *CartUsecase) SetQuantity(ctx context.Context, index int, qty int64) error {
	if qty <= 0 {
		return u.Remove(ctx, index)
	}

	lines, err := u.cartRepo.Load(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(lines) {
		return nil
	}

	lines[index].Quantity = qty
	if err := u.cartRepo.Save(ctx, lines); err != nil {
		return err
	}

	u.notifyCount(lines)
	return nil
}

func (u *CartUsecase) Clear(ctx context.Context) error {
	if err := u.cartRepo.Save(ctx, []model.CartLine{}); err != nil {
		return err
	}
	u.notifier.Success("Cart cleared")
	u.notifyCount(nil)
	return nil
}

func (u *CartUsecase) Lines(ctx context.Context) ([]model.CartLine, error) {
	return u.cartRepo.Load(ctx)
}

// Summary は現在の明細から小計・送料・税・合計を導出する。
func (u *CartUsecase) Summary(ctx context.Context) (CartSummary, error) {
	lines, err := u.cartRepo.Load(ctx)
	if err != nil {
		return CartSummary{}, err
	}
	return Summarize(lines, u.pricing), nil
}

func (u *CartUsecase) Count(ctx context.Context) (int64, error) {
	sum, err := u.Summary(ctx)
	if err != nil {
		return 0, err
	}
	return sum.Count, nil
}

func (u *CartUsecase) notifyCount(lines []model.CartLine) {
	if u.counter == nil {
		return
	}
	var count int64 = 0
	for _, l := range lines {
		count += l.Quantity
	}
	u.counter.CartCountChanged(count)
}
