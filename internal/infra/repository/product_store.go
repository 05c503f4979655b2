package repository

import (
	"context"

	"github.com/varun123-lab/Mario-Vendor/internal/domain/model"
	"github.com/varun123-lab/Mario-Vendor/internal/infra/storage"
	repo "github.com/varun123-lab/Mario-Vendor/internal/repository"
)

// ProductStoreRepository は vendorProducts キーの上のカタログ。
// キーが無い間はseedを返し、最初の書き込みで上書きキーが生まれる。
type ProductStoreRepository struct {
	store *storage.Store
	seed  []model.Product
}

// DI
func NewProductStoreRepository(store *storage.Store) *ProductStoreRepository {
	return &ProductStoreRepository{
		store: store,
		seed:  SeedProducts(),
	}
}

var _ repo.ProductRepository = (*ProductStoreRepository)(nil)

func (r *ProductStoreRepository) load() []model.Product {
	var products []model.Product
	if ok := r.store.Get(keyProducts, &products); !ok {
		// 読み出しだけではキーを作らない
		return append([]model.Product(nil), r.seed...)
	}
	return products
}

func (r *ProductStoreRepository) persist(products []model.Product) error {
	return r.store.Set(keyProducts, products)
}

func (r *ProductStoreRepository) List(ctx context.Context) ([]model.Product, error) {
	return r.load(), nil
}

func (r *ProductStoreRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	for _, p := range r.load() {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}

// Create は既存IDの最大値+1を採番する。
func (r *ProductStoreRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	products := r.load()

	var maxID int64 = 0
	for _, existing := range products {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	p.ID = maxID + 1

	products = append(products, p)
	if err := r.persist(products); err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductStoreRepository) Update(ctx context.Context, p model.Product) error {
	products := r.load()
	for i := range products {
		if products[i].ID == p.ID {
			products[i] = p
			return r.persist(products)
		}
	}
	return repo.ErrNotFound
}

func (r *ProductStoreRepository) Delete(ctx context.Context, id int64) (bool, error) {
	products := r.load()
	for i := range products {
		if products[i].ID == id {
			products = append(products[:i], products[i+1:]...)
			if err := r.persist(products); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}
