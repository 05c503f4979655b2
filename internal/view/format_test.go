package view_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/varun123-lab/Mario-Vendor/internal/view"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$59.99", view.FormatPrice(d("59.99")))
	assert.Equal(t, "$0.00", view.FormatPrice(decimal.Zero))
	// 3桁ごとのカンマ
	assert.Equal(t, "$4,500.00", view.FormatPrice(d("4500")))
	assert.Equal(t, "$1,234,567.89", view.FormatPrice(d("1234567.89")))
	assert.Equal(t, "-$9.99", view.FormatPrice(d("-9.99")))
	// 小数3桁以上は2桁へ丸め
	assert.Equal(t, "$10.56", view.FormatPrice(d("10.555")))
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "Mar 5, 2024", view.FormatDate(ts))
	assert.Equal(t, "Tuesday, March 5, 2024 2:30 PM", view.FormatDateLong(ts))
}
