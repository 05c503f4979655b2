package validator

import (
	"regexp"
	"strings"

	"github.com/varun123-lab/Mario-Vendor/internal/usecase"
)

var (
	// RFC準拠ではなく「それらしい形」だけ見る
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// 数字・空白・ハイフン・括弧・プラスで10文字以上
	phoneRe = regexp.MustCompile(`^[\d\s\-\(\)\+]{10,}$`)
)

type checkoutValidator struct{}

// Usecaseには interface で渡す
func NewCheckoutValidator() usecase.CheckoutValidator {
	return &checkoutValidator{}
}

// Validate は最初の失敗で止めず、全フィールド分のエラーを集めて返す。
// キーはフォームのフィールドID。
func (v *checkoutValidator) Validate(in usecase.CheckoutInput) usecase.FieldErrors {
	errs := usecase.FieldErrors{}

	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		errs["first-name"] = "Please enter your full name"
	}

	if !IsEmailLike(in.Email) {
		errs["email"] = "Please enter a valid email"
	}

	if !IsPhoneLike(in.Phone) {
		errs["phone"] = "Please enter a valid phone number"
	}

	if strings.TrimSpace(in.Address) == "" ||
		strings.TrimSpace(in.City) == "" ||
		strings.TrimSpace(in.State) == "" ||
		strings.TrimSpace(in.Zip) == "" {
		errs["address"] = "Please complete your shipping address"
	}

	return errs
}

// 簡易メール形式をチェック
func IsEmailLike(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

// 簡易電話番号形式をチェック
func IsPhoneLike(s string) bool {
	return phoneRe.MatchString(strings.TrimSpace(s))
}
