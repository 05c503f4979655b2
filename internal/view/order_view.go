package view

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/varun123-lab/Mario-Vendor/internal/domain/model"
	"github.com/varun123-lab/Mario-Vendor/internal/usecase"
)

// OrderRow はvendorの注文テーブルの1行。
type OrderRow struct {
	ID            string
	Date          string
	CustomerName  string
	CustomerEmail string
	ItemCount     int64 // Σ quantity
	Total         string
	Status        string
	StatusClass   string // "status-pending" など
}

func NewOrderRow(o model.Order) OrderRow {
	var count int64 = 0
	for _, it := range o.Items {
		count += it.Quantity
	}

	return OrderRow{
		ID:            o.ID,
		Date:          FormatDate(o.CreatedAt),
		CustomerName:  o.Customer.FirstName + " " + o.Customer.LastName,
		CustomerEmail: o.Customer.Email,
		ItemCount:     count,
		Total:         FormatPrice(o.Total),
		Status:        string(o.Status),
		StatusClass:   "status-" + string(o.Status),
	}
}

func NewOrderRows(orders []model.Order) []OrderRow {
	rows := make([]OrderRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, NewOrderRow(o))
	}
	return rows
}

// OrderItemView は注文詳細の明細1行。
type OrderItemView struct {
	Image     string
	Name      string
	Brand     string
	Variant   string
	Quantity  int64
	LineTotal string // price × quantity
}

// OrderDetail は注文詳細モーダル分のデータ。
type OrderDetail struct {
	ID           string
	Date         string
	Status       string
	StatusClass  string
	CustomerName string
	Email        string
	Phone        string
	Address      string
	CityLine     string // "City, ST 12345"
	Items        []OrderItemView
	Subtotal     string
	Shipping     string // 0は"FREE"
	Tax          string
	Total        string
}

func NewOrderDetail(o model.Order) OrderDetail {
	items := make([]OrderItemView, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemView{
			Image:     it.Image,
			Name:      it.Name,
			Brand:     it.Brand,
			Variant:   "Size: " + it.Size + " | Color: " + it.Color,
			Quantity:  it.Quantity,
			LineTotal: FormatPrice(it.Price.Mul(decimal.NewFromInt(it.Quantity))),
		})
	}

	shipping := "FREE"
	if !o.ShippingCost.IsZero() {
		shipping = FormatPrice(o.ShippingCost)
	}

	return OrderDetail{
		ID:           o.ID,
		Date:         FormatDateLong(o.CreatedAt),
		Status:       string(o.Status),
		StatusClass:  "status-" + string(o.Status),
		CustomerName: o.Customer.FirstName + " " + o.Customer.LastName,
		Email:        o.Customer.Email,
		Phone:        o.Customer.Phone,
		Address:      o.Shipping.Address,
		CityLine:     o.Shipping.City + ", " + o.Shipping.State + " " + o.Shipping.Zip,
		Items:        items,
		Subtotal:     FormatPrice(o.Subtotal),
		Shipping:     shipping,
		Tax:          FormatPrice(o.Tax),
		Total:        FormatPrice(o.Total),
	}
}

// Confirmation は購入完了画面のデータ。
type Confirmation struct {
	OrderID   string
	FirstName string
	Email     string
}

func NewConfirmation(out usecase.ConfirmationOutput) Confirmation {
	return Confirmation{
		OrderID:   out.OrderID,
		FirstName: out.FirstName,
		Email:     out.Email,
	}
}

// Dashboard はダッシュボード上段のカード群。
type Dashboard struct {
	TotalProducts string
	TotalOrders   string
	Revenue       string
	PendingOrders string
	InStock       string
	LowStock      string
}

func NewDashboard(s usecase.DashboardStats) Dashboard {
	return Dashboard{
		TotalProducts: strconv.Itoa(s.TotalProducts),
		TotalOrders:   strconv.Itoa(s.TotalOrders),
		Revenue:       FormatPrice(s.Revenue),
		PendingOrders: strconv.Itoa(s.PendingOrders),
		InStock:       strconv.Itoa(s.InStock),
		LowStock:      strconv.Itoa(s.LowStock),
	}
}
