package model

import "github.com/shopspring/decimal"

type Category string

const (
	CategoryHoodies     Category = "hoodies"
	CategorySweaters    Category = "sweaters"
	CategoryTShirts     Category = "t-shirts"
	CategoryAccessories Category = "accessories"
)

type Badge string

const (
	BadgeSale Badge = "sale"
	BadgeNew  Badge = "new"
	BadgeNone Badge = ""
)

// 商品。IDはカタログ側で採番する。
type Product struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Brand         string           `json:"brand"`
	Category      Category         `json:"category"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Image         string           `json:"image"`
	Description   string           `json:"description"`
	Sizes         []string         `json:"sizes"`
	Colors        []string         `json:"colors"`
	Stock         int64            `json:"stock"`
	Badge         Badge            `json:"badge,omitempty"`
	Featured      bool             `json:"featured"`
}
