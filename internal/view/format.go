// Package view はレンダリング層へ渡すビューモデルを組み立てる。
// マークアップ生成はしない。純粋なデータ整形だけ。
package view

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatPrice はUSD表示（"$4,500.00"）。
func FormatPrice(p decimal.Decimal) string {
	s := p.Abs().StringFixed(2)

	intPart := s[:len(s)-3]
	frac := s[len(s)-3:]

	// 3桁ごとにカンマ
	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := "$" + strings.Join(groups, ",") + frac
	if p.IsNegative() {
		out = "-" + out
	}
	return out
}

// FormatDate は一覧行用の短い日付。
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatDateLong は注文詳細用。
func FormatDateLong(t time.Time) string {
	return t.Format("Monday, January 2, 2006 3:04 PM")
}
