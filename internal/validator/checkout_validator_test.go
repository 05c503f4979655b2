package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/varun123-lab/Mario-Vendor/internal/usecase"
	"github.com/varun123-lab/Mario-Vendor/internal/validator"
)

func validInput() usecase.CheckoutInput {
	return usecase.CheckoutInput{
		FirstName: "Mario",
		LastName:  "Rossi",
		Email:     "mario@example.com",
		Phone:     "(555) 123-4567",
		Address:   "123 Main St",
		City:      "Springfield",
		State:     "IL",
		Zip:       "62704",
	}
}

func TestValidateAllValid(t *testing.T) {
	v := validator.NewCheckoutValidator()

	errs := v.Validate(validInput())

	assert.Empty(t, errs)
}

func TestValidateName(t *testing.T) {
	v := validator.NewCheckoutValidator()

	// 姓か名のどちらかが空白だけでも落ちる
	in := validInput()
	in.LastName = "   "
	errs := v.Validate(in)

	assert.Equal(t, "Please enter your full name", errs["first-name"])
	assert.Len(t, errs, 1)
}

func TestValidateEmail(t *testing.T) {
	v := validator.NewCheckoutValidator()

	for _, bad := range []string{"", "plain", "a@b", "a b@c.com", "a@b c.com"} {
		in := validInput()
		in.Email = bad
		errs := v.Validate(in)
		assert.Equal(t, "Please enter a valid email", errs["email"], "email=%q", bad)
	}
}

func TestValidatePhone(t *testing.T) {
	v := validator.NewCheckoutValidator()

	// 10文字未満はNG
	in := validInput()
	in.Phone = "123456789"
	errs := v.Validate(in)
	assert.Equal(t, "Please enter a valid phone number", errs["phone"])

	// 英字混じりもNG
	in.Phone = "555-CALL-NOW"
	errs = v.Validate(in)
	assert.Contains(t, errs, "phone")
}

func TestValidateAddressGroup(t *testing.T) {
	v := validator.NewCheckoutValidator()

	// address/city/state/zipのどれが欠けても同じキーに1つ
	in := validInput()
	in.Zip = ""
	errs := v.Validate(in)

	assert.Equal(t, "Please complete your shipping address", errs["address"])
	assert.Len(t, errs, 1)
}

func TestValidateCollectsAllErrors(t *testing.T) {
	v := validator.NewCheckoutValidator()

	errs := v.Validate(usecase.CheckoutInput{})

	assert.Len(t, errs, 4)
}

func TestIsEmailLike(t *testing.T) {
	assert.True(t, validator.IsEmailLike("user@example.com"))
	assert.True(t, validator.IsEmailLike("  user@example.com  ")) // 前後空白は無視
	assert.False(t, validator.IsEmailLike("user@example"))
}

func TestIsPhoneLike(t *testing.T) {
	assert.True(t, validator.IsPhoneLike("090-1234-5678"))
	assert.True(t, validator.IsPhoneLike("+1 (555) 123-4567"))
	assert.False(t, validator.IsPhoneLike("12345"))
}
