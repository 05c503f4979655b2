package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/varun123-lab/Mario-Vendor/internal/domain/model"
)

// PricingPolicy は送料と税のルール。設定から注入する。
type PricingPolicy struct {
	TaxRate         decimal.Decimal // 小計のみに掛かる（送料には掛けない）
	FreeShippingMin decimal.Decimal // 小計がここ以上なら送料無料
	FlatShipping    decimal.Decimal // それ未満の固定送料
}

func DefaultPricingPolicy() PricingPolicy {
	return PricingPolicy{
		TaxRate:         decimal.RequireFromString("0.08"),
		FreeShippingMin: decimal.RequireFromString("150.00"),
		FlatShipping:    decimal.RequireFromString("9.99"),
	}
}

// CartSummary は明細リストから毎回導出する。保持はしない。
type CartSummary struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
	Count    int64 // Σ quantity（行数ではない）
}

// Summarize は純粋関数。明細とルールだけで決まる。
func Summarize(lines []model.CartLine, policy PricingPolicy) CartSummary {
	subtotal := decimal.Zero
	var count int64 = 0

	for _, l := range lines {
		subtotal = subtotal.Add(l.Price.Mul(decimal.NewFromInt(l.Quantity)))
		count += l.Quantity
	}

	shipping := policy.FlatShipping
	if subtotal.GreaterThanOrEqual(policy.FreeShippingMin) {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(policy.TaxRate)

	return CartSummary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
		Count:    count,
	}
}
