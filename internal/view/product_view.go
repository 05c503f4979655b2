package view

import (
	"github.com/varun123-lab/Mario-Vendor/internal/domain/model"
)

// ProductCard は商品グリッドの1枚分。
type ProductCard struct {
	ID            int64
	Brand         string
	Name          string
	Price         string
	OriginalPrice string // 無ければ空
	Badge         string // "sale" / "new" / 空
	Image         string
	InStock       bool
}

func NewProductCard(p model.Product) ProductCard {
	card := ProductCard{
		ID:      p.ID,
		Brand:   p.Brand,
		Name:    p.Name,
		Price:   FormatPrice(p.Price),
		Badge:   string(p.Badge),
		Image:   p.Image,
		InStock: p.Stock > 0,
	}
	if p.OriginalPrice != nil {
		card.OriginalPrice = FormatPrice(*p.OriginalPrice)
	}
	return card
}

func NewProductCards(products []model.Product) []ProductCard {
	cards := make([]ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, NewProductCard(p))
	}
	return cards
}

// StockStatus は在庫バッジ。
type StockStatus struct {
	Class string // in-stock / low-stock / out-of-stock
	Label string
}

func StockStatusOf(stock int64) StockStatus {
	switch {
	case stock == 0:
		return StockStatus{Class: "out-of-stock", Label: "Out of Stock"}
	case stock <= 10:
		return StockStatus{Class: "low-stock", Label: "Low Stock"}
	}
	return StockStatus{Class: "in-stock", Label: "In Stock"}
}

// ProductRow はvendorの商品テーブルの1行。
type ProductRow struct {
	ID       int64
	Image    string
	Name     string
	Category string
	Brand    string
	Price    string
	Stock    int64
	Status   StockStatus
}

func NewProductRow(p model.Product) ProductRow {
	return ProductRow{
		ID:       p.ID,
		Image:    p.Image,
		Name:     p.Name,
		Category: string(p.Category),
		Brand:    p.Brand,
		Price:    FormatPrice(p.Price),
		Stock:    p.Stock,
		Status:   StockStatusOf(p.Stock),
	}
}

func NewProductRows(products []model.Product) []ProductRow {
	rows := make([]ProductRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, NewProductRow(p))
	}
	return rows
}
