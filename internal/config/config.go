package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

// Configはアプリ全体の設定。
// 元は設定項目なしで動くので、全部デフォルト付き（環境変数で上書き可）。
type Config struct {
	StorePath string // 保存ファイルのパス

	TaxRate         decimal.Decimal // 小計に掛ける税率
	FreeShippingMin decimal.Decimal // 送料無料ライン
	FlatShipping    decimal.Decimal // 固定送料
}

// Loadは環境変数
func Load() (Config, error) {
	taxRate, err := decimalEnv("TAX_RATE", "0.08")
	if err != nil {
		return Config{}, err
	}
	freeShippingMin, err := decimalEnv("FREE_SHIPPING_MIN", "150.00")
	if err != nil {
		return Config{}, err
	}
	flatShipping, err := decimalEnv("FLAT_SHIPPING", "9.99")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		StorePath:       stringEnv("STORE_PATH", "storefront.json"),
		TaxRate:         taxRate,
		FreeShippingMin: freeShippingMin,
		FlatShipping:    flatShipping,
	}

	if cfg.TaxRate.IsNegative() {
		return Config{}, fmt.Errorf("TAX_RATE must be >= 0")
	}
	if cfg.FlatShipping.IsNegative() {
		return Config{}, fmt.Errorf("FLAT_SHIPPING must be >= 0")
	}

	return cfg, nil
}

func stringEnv(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func decimalEnv(key string, def string) (decimal.Decimal, error) {
	v := os.Getenv(key)
	if v == "" {
		v = def
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s must be decimal: %w", key, err)
	}
	return d, nil
}
