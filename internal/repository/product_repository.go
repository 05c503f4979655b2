package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/varun123-lab/Mario-Vendor/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 部分更新。nil のフィールドは触らない。
// OriginalPrice と Badge は「nullにする」更新があるので NullDecimal / ポインタで区別する。
type ProductPatch struct {
	Name          *string
	Brand         *string
	Category      *model.Category
	Price         *decimal.Decimal
	OriginalPrice *decimal.NullDecimal
	Image         *string
	Description   *string
	Sizes         *[]string
	Colors        *[]string
	Stock         *int64
	Badge         *model.Badge
	Featured      *bool
}

// 商品の永続化（保存・取得）だけを約束。
// 検索・ソートは純粋関数としてusecase側に置く。
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	// IDは既存の最大値+1で採番して返す
	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	// 消せたかどうかを返す（無ければ false）
	Delete(ctx context.Context, id int64) (bool, error)
}
