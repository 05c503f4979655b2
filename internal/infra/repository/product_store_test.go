package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varun123-lab/Mario-Vendor/internal/domain/model"
	infrarepo "github.com/varun123-lab/Mario-Vendor/internal/infra/repository"
	"github.com/varun123-lab/Mario-Vendor/internal/infra/storage"
	repo "github.com/varun123-lab/Mario-Vendor/internal/repository"
)

func newStore(t *testing.T) *storage.Store {
	t.Helper()
	s, err := storage.Open(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)
	return s
}

func TestProductListFallsBackToSeed(t *testing.T) {
	store := newStore(t)
	r := infrarepo.NewProductStoreRepository(store)

	products, err := r.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, products, 11)
	assert.Equal(t, "Ralph Lauren Hoodie", products[0].Name)

	// 読み出しだけでは上書きキーを作らない
	assert.False(t, store.Has("vendorProducts"))
}

func TestProductFindByID(t *testing.T) {
	r := infrarepo.NewProductStoreRepository(newStore(t))
	ctx := context.Background()

	p, err := r.FindByID(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, "AirPods", p.Name)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("179.00")))

	_, err = r.FindByID(ctx, 999)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestProductCreateAssignsNextID(t *testing.T) {
	store := newStore(t)
	r := infrarepo.NewProductStoreRepository(store)
	ctx := context.Background()

	created, err := r.Create(ctx, model.Product{
		Name:     "Varsity Jacket",
		Category: model.CategoryHoodies,
		Price:    decimal.RequireFromString("120.00"),
	})

	require.NoError(t, err)
	// seedの最大IDは11
	assert.Equal(t, int64(12), created.ID)

	// 最初の書き込みで上書きキーが生まれる
	assert.True(t, store.Has("vendorProducts"))

	got, err := r.FindByID(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestProductUpdate(t *testing.T) {
	r := infrarepo.NewProductStoreRepository(newStore(t))
	ctx := context.Background()

	p, err := r.FindByID(ctx, 1)
	require.NoError(t, err)

	p.Stock = 99
	require.NoError(t, r.Update(ctx, p))

	got, err := r.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(99), got.Stock)

	p.ID = 999
	assert.ErrorIs(t, r.Update(ctx, p), repo.ErrNotFound)
}

func TestProductDelete(t *testing.T) {
	r := infrarepo.NewProductStoreRepository(newStore(t))
	ctx := context.Background()

	deleted, err := r.Delete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = r.FindByID(ctx, 1)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	deleted, err = r.Delete(ctx, 1)
	require.NoError(t, err)
	assert.False(t, deleted)
}

// 採番は削除後も「残っている最大+1」。穴は埋めない。
func TestProductCreateAfterDelete(t *testing.T) {
	r := infrarepo.NewProductStoreRepository(newStore(t))
	ctx := context.Background()

	_, err := r.Delete(ctx, 11)
	require.NoError(t, err)

	created, err := r.Create(ctx, model.Product{Name: "x", Price: decimal.Zero})
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
}

func TestProductEditsPersistAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	ctx := context.Background()

	store, err := storage.Open(path)
	require.NoError(t, err)
	r := infrarepo.NewProductStoreRepository(store)

	_, err = r.Delete(ctx, 1)
	require.NoError(t, err)

	reopened, err := storage.Open(path)
	require.NoError(t, err)
	r2 := infrarepo.NewProductStoreRepository(reopened)

	products, err := r2.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 10)
}
