package view

import (
	"strconv"

	"github.com/varun123-lab/Mario-Vendor/internal/domain/model"
	"github.com/varun123-lab/Mario-Vendor/internal/usecase"
)

// CartItemView はカート画面の1行。
type CartItemView struct {
	Index    int // 削除・数量変更はこのindexで指す
	Image    string
	Brand    string
	Name     string
	Variant  string // "Size: M | Color: Black"
	Price    string
	Quantity int64
}

// CartSummaryView は小計ブロック。送料0は "FREE" 表示。
type CartSummaryView struct {
	Subtotal string
	Shipping string
	Tax      string
	Total    string
}

type CartView struct {
	Empty   bool
	Count   int64
	Items   []CartItemView
	Summary CartSummaryView
}

func NewCartView(lines []model.CartLine, sum usecase.CartSummary) CartView {
	items := make([]CartItemView, 0, len(lines))
	for i, l := range lines {
		items = append(items, CartItemView{
			Index:    i,
			Image:    l.Image,
			Brand:    l.Brand,
			Name:     l.Name,
			Variant:  "Size: " + l.Size + " | Color: " + l.Color,
			Price:    FormatPrice(l.Price),
			Quantity: l.Quantity,
		})
	}

	shipping := "FREE"
	if !sum.Shipping.IsZero() {
		shipping = FormatPrice(sum.Shipping)
	}

	return CartView{
		Empty: len(lines) == 0,
		Count: sum.Count,
		Items: items,
		Summary: CartSummaryView{
			Subtotal: FormatPrice(sum.Subtotal),
			Shipping: shipping,
			Tax:      FormatPrice(sum.Tax),
			Total:    FormatPrice(sum.Total),
		},
	}
}

// CartBadge はヘッダのバッジ表示。0件なら隠す。
type CartBadge struct {
	Count   string
	Visible bool
}

func NewCartBadge(count int64) CartBadge {
	return CartBadge{
		Count:   strconv.FormatInt(count, 10),
		Visible: count > 0,
	}
}
