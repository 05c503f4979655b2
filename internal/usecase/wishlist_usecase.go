package usecase

import (
	"context"
	"strconv"

	repo "github.com/varun123-lab/Mario-Vendor/internal/repository"
)

// WishlistUsecase はウィッシュリスト（商品IDの列）の操作。
type WishlistUsecase struct {
	wishlistRepo repo.WishlistRepository
	productRepo  repo.ProductRepository
	notifier     Notifier
}

func NewWishlistUsecase(
	wishlistRepo repo.WishlistRepository,
	productRepo repo.ProductRepository,
	notifier Notifier,
) *WishlistUsecase {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &WishlistUsecase{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
		notifier:     notifier,
	}
}

// Add は重複なら情報トーストだけ出して何もしない。
func (u *WishlistUsecase) Add(ctx context.Context, productID int64) error {
	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return NewNotFoundError("product", strconv.FormatInt(productID, 10))
	}
	if err != nil {
		return err
	}

	ids, err := u.wishlistRepo.List(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == productID {
			u.notifier.Info("Already in wishlist")
			return nil
		}
	}

	if err := u.wishlistRepo.Save(ctx, append(ids, productID)); err != nil {
		return err
	}
	u.notifier.Success(p.Name + " added to wishlist")
	return nil
}

func (u *WishlistUsecase) List(ctx context.Context) ([]int64, error) {
	return u.wishlistRepo.List(ctx)
}
