package repository

import (
	"context"

	"github.com/varun123-lab/Mario-Vendor/internal/domain/model"
	"github.com/varun123-lab/Mario-Vendor/internal/infra/storage"
	repo "github.com/varun123-lab/Mario-Vendor/internal/repository"
)

// CartStoreRepository は vendorCart キーのカート明細。
type CartStoreRepository struct {
	store *storage.Store
}

func NewCartStoreRepository(store *storage.Store) *CartStoreRepository {
	return &CartStoreRepository{store: store}
}

var _ repo.CartRepository = (*CartStoreRepository)(nil)

func (r *CartStoreRepository) Load(ctx context.Context) ([]model.CartLine, error) {
	var lines []model.CartLine
	if ok := r.store.Get(keyCart, &lines); !ok {
		return []model.CartLine{}, nil
	}
	return lines, nil
}

func (r *CartStoreRepository) Save(ctx context.Context, lines []model.CartLine) error {
	if lines == nil {
		lines = []model.CartLine{}
	}
	return r.store.Set(keyCart, lines)
}
