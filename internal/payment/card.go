// Package payment はカード入力欄の検証。純粋関数のみで、状態は持たない。
// 実際の決済ゲートウェイにはどこにも繋がらない。
package payment

import (
	"regexp"
	"strings"
	"time"
)

type CardType string

const (
	CardVisa       CardType = "visa"
	CardMastercard CardType = "mastercard"
	CardAmex       CardType = "amex"
	CardDiscover   CardType = "discover"
	CardUnknown    CardType = ""
)

var expiryRe = regexp.MustCompile(`^(\d{2})/(\d{2})$`)

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateCardNumber は数字以外を落とし、桁数[13,19]とLuhnチェックサムを見る。
func ValidateCardNumber(number string) bool {
	digits := digitsOnly(number)
	if len(digits) < 13 || len(digits) > 19 {
		return false
	}
	return luhn(digits)
}

// 右端から1つおきに倍にし、9を超えたら9を引いて合計。mod 10 == 0 で合格。
func luhn(digits string) bool {
	sum := 0
	double := false

	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// DetectCardType は先頭プレフィックスの先勝ち。
// visa: 4 / mastercard: 51-55 / amex: 34,37 / discover: 6011,65
func DetectCardType(number string) CardType {
	digits := digitsOnly(number)

	switch {
	case strings.HasPrefix(digits, "4"):
		return CardVisa
	case len(digits) >= 2 && digits[0] == '5' && digits[1] >= '1' && digits[1] <= '5':
		return CardMastercard
	case strings.HasPrefix(digits, "34"), strings.HasPrefix(digits, "37"):
		return CardAmex
	case strings.HasPrefix(digits, "6011"), strings.HasPrefix(digits, "65"):
		return CardDiscover
	}
	return CardUnknown
}

// ValidateExpiry は "MM/YY" を now と比べる。同年なら月まで見る。
func ValidateExpiry(expiry string, now time.Time) bool {
	m := expiryRe.FindStringSubmatch(expiry)
	if m == nil {
		return false
	}

	month := int(m[1][0]-'0')*10 + int(m[1][1]-'0')
	year := 2000 + int(m[2][0]-'0')*10 + int(m[2][1]-'0')

	if month < 1 || month > 12 {
		return false
	}

	currentYear := now.Year()
	currentMonth := int(now.Month())

	if year < currentYear {
		return false
	}
	if year == currentYear && month < currentMonth {
		return false
	}
	return true
}

// ValidateCVC はamexのみ4桁、それ以外は3桁。
func ValidateCVC(cvc string, cardType CardType) bool {
	digits := digitsOnly(cvc)
	expected := 3
	if cardType == CardAmex {
		expected = 4
	}
	return len(digits) == expected
}

// MaskCardNumber は下4桁だけ見せる表示用マスク。
func MaskCardNumber(number string) string {
	digits := digitsOnly(number)
	if len(digits) < 4 {
		return digits
	}
	return "•••• •••• •••• " + digits[len(digits)-4:]
}

// FormatCardNumber は4桁ごとに空白を挟む入力整形。
func FormatCardNumber(number string) string {
	digits := digitsOnly(number)
	if digits == "" {
		return ""
	}

	var groups []string
	for len(digits) > 4 {
		groups = append(groups, digits[:4])
		digits = digits[4:]
	}
	groups = append(groups, digits)
	return strings.Join(groups, " ")
}

// FormatExpiry は数字だけ拾って "MM/YY" の形へ寄せる入力整形。
func FormatExpiry(input string) string {
	digits := digitsOnly(input)
	if len(digits) < 2 {
		return digits
	}
	if len(digits) > 4 {
		digits = digits[:4]
	}
	return digits[:2] + "/" + digits[2:]
}
