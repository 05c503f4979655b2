package repository

import (
	"context"

	"github.com/varun123-lab/Mario-Vendor/internal/domain/model"
)

// カートは明細リスト丸ごとで読み書きする。
// 明細のマージや数量ルールはusecase側の仕事。
type CartRepository interface {
	Load(ctx context.Context) ([]model.CartLine, error)
	Save(ctx context.Context, lines []model.CartLine) error
}
