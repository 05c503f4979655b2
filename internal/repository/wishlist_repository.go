package repository

import "context"

// ウィッシュリストは商品IDの列そのもの。
type WishlistRepository interface {
	List(ctx context.Context) ([]int64, error)
	Save(ctx context.Context, ids []int64) error
}
