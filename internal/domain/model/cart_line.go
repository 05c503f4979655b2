package model

import "github.com/shopspring/decimal"

// カートの明細。
// name/brand/price/image は追加時点のスナップショット。
// 商品が後から編集・削除されても明細は変わらない（ProductIDは宙に浮いてよい）。
type CartLine struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int64           `json:"quantity"`
	Size      string          `json:"size"`
	Color     string          `json:"color"`
}
