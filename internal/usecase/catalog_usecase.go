package usecase

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/varun123-lab/Mario-Vendor/internal/domain/model"
	repo "github.com/varun123-lab/Mario-Vendor/internal/repository"
)

// CatalogUsecase は商品カタログの業務ロジック。
// 検索・絞り込み・ソートは取得済みリストに対する純粋関数で行う。
type CatalogUsecase struct {
	productRepo repo.ProductRepository
}

func NewCatalogUsecase(productRepo repo.ProductRepository) *CatalogUsecase {
	return &CatalogUsecase{productRepo: productRepo}
}

func (u *CatalogUsecase) ListAll(ctx context.Context) ([]model.Product, error) {
	return u.productRepo.List(ctx)
}

func (u *CatalogUsecase) ListFeatured(ctx context.Context) ([]model.Product, error) {
	products, err := u.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out, nil
}

// ListByCategory は空文字と"all"を「絞り込みなし」として素通しする。
func (u *CatalogUsecase) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	products, err := u.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" || category == "all" {
		return products, nil
	}

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if string(p.Category) == category {
			out = append(out, p)
		}
	}
	return out, nil
}

// ListByBrand は完全一致。
func (u *CatalogUsecase) ListByBrand(ctx context.Context, brand string) ([]model.Product, error) {
	products, err := u.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.Brand == brand {
			out = append(out, p)
		}
	}
	return out, nil
}

func (u *CatalogUsecase) GetByID(ctx context.Context, id int64) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Product{}, NewNotFoundError("product", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// Search は name/description/brand への大文字小文字を無視した部分一致（OR）。
func (u *CatalogUsecase) Search(ctx context.Context, query string) ([]model.Product, error) {
	products, err := u.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

type SortKey string

const (
	SortDefault   SortKey = ""
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortName      SortKey = "name"
	SortNewest    SortKey = "newest" // IDの降順
)

// SortProducts は入力を壊さずコピーを並べ替えて返す。未知のキーは入力順のまま。
func SortProducts(products []model.Product, key SortKey) []model.Product {
	sorted := append([]model.Product(nil), products...)

	switch key {
	case SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price.LessThan(sorted[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[j].Price.LessThan(sorted[i].Price)
		})
	case SortName:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Name < sorted[j].Name
		})
	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[j].ID < sorted[i].ID
		})
	}
	return sorted
}

type AddProductInput struct {
	Name          string
	Brand         string
	Category      model.Category
	Price         decimal.Decimal
	OriginalPrice *decimal.Decimal
	Image         string
	Description   string
	Sizes         []string
	Colors        []string
	Stock         int64
	Badge         model.Badge
	Featured      bool
}

// AddProduct はvendorの商品追加。badge未指定は"new"に落とす。
func (u *CatalogUsecase) AddProduct(ctx context.Context, in AddProductInput) (model.Product, error) {
	errs := FieldErrors{}
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = "name required"
	}
	if in.Price.IsNegative() {
		errs["price"] = "price must be >= 0"
	}
	if in.Stock < 0 {
		errs["stock"] = "stock must be >= 0"
	}
	if len(errs) > 0 {
		return model.Product{}, errs
	}

	badge := in.Badge
	if badge == model.BadgeNone {
		badge = model.BadgeNew
	}

	return u.productRepo.Create(ctx, model.Product{
		Name:          strings.TrimSpace(in.Name),
		Brand:         in.Brand,
		Category:      in.Category,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		Image:         in.Image,
		Description:   in.Description,
		Sizes:         in.Sizes,
		Colors:        in.Colors,
		Stock:         in.Stock,
		Badge:         badge,
		Featured:      in.Featured,
	})
}

// UpdateProduct は渡されたフィールドだけを既存レコードに浅くマージする。
func (u *CatalogUsecase) UpdateProduct(ctx context.Context, id int64, patch repo.ProductPatch) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Product{}, NewNotFoundError("product", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return model.Product{}, err
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.OriginalPrice != nil {
		if patch.OriginalPrice.Valid {
			v := patch.OriginalPrice.Decimal
			p.OriginalPrice = &v
		} else {
			p.OriginalPrice = nil
		}
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Sizes != nil {
		p.Sizes = *patch.Sizes
	}
	if patch.Colors != nil {
		p.Colors = *patch.Colors
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Badge != nil {
		p.Badge = *patch.Badge
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}

	if err := u.productRepo.Update(ctx, p); err != nil {
		if err == repo.ErrNotFound {
			return model.Product{}, NewNotFoundError("product", strconv.FormatInt(id, 10))
		}
		return model.Product{}, err
	}
	return p, nil
}

// DeleteProduct は消せたかどうかを返す。
// 既存カート明細はスナップショットなので、ここでは一切触らない。
func (u *CatalogUsecase) DeleteProduct(ctx context.Context, id int64) (bool, error) {
	return u.productRepo.Delete(ctx, id)
}
