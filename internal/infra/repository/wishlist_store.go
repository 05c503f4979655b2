package repository

import (
	"context"

	"github.com/varun123-lab/Mario-Vendor/internal/infra/storage"
	repo "github.com/varun123-lab/Mario-Vendor/internal/repository"
)

// WishlistStoreRepository は wishlist キーの商品ID列。
type WishlistStoreRepository struct {
	store *storage.Store
}

func NewWishlistStoreRepository(store *storage.Store) *WishlistStoreRepository {
	return &WishlistStoreRepository{store: store}
}

var _ repo.WishlistRepository = (*WishlistStoreRepository)(nil)

func (r *WishlistStoreRepository) List(ctx context.Context) ([]int64, error) {
	var ids []int64
	if ok := r.store.Get(keyWishlist, &ids); !ok {
		return []int64{}, nil
	}
	return ids, nil
}

func (r *WishlistStoreRepository) Save(ctx context.Context, ids []int64) error {
	if ids == nil {
		ids = []int64{}
	}
	return r.store.Set(keyWishlist, ids)
}
