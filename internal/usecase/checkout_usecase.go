package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/varun123-lab/Mario-Vendor/internal/domain/model"
	repo "github.com/varun123-lab/Mario-Vendor/internal/repository"
)

// カートが空のままチェックアウトしようとした
var ErrEmptyCart = errors.New("cart empty")

type CheckoutInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string

	Address string
	City    string
	State   string
	Zip     string
}

// CheckoutValidator はフォーム検証の約束。全フィールドをまとめて検証し、
// フィールド名→メッセージを返す（空なら合格）。実装は validator パッケージ。
type CheckoutValidator interface {
	Validate(in CheckoutInput) FieldErrors
}

// ConfirmationOutput は購入者へ見せる確定結果。
type ConfirmationOutput struct {
	OrderID   string
	FirstName string
	Email     string
	Total     string // フォーマット済みではなく素の10進文字列
}

// CheckoutUsecase はフォーム検証→注文スナップショット→カートクリアまで。
// 単一の同期appendなのでロールバックは持たない。
type CheckoutUsecase struct {
	cartRepo  repo.CartRepository
	orderRepo repo.OrderRepository
	validator CheckoutValidator
	pricing   PricingPolicy
	clock     Clock
}

func NewCheckoutUsecase(
	cartRepo repo.CartRepository,
	orderRepo repo.OrderRepository,
	validator CheckoutValidator,
	pricing PricingPolicy,
	clock Clock,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		validator: validator,
		pricing:   pricing,
		clock:     clock,
	}
}

// OrderID はタイムスタンプ(ms)を36進大文字にしたもの。連番ではない。
func OrderID(t time.Time) string {
	return "ORD-" + strings.ToUpper(strconv.FormatInt(t.UnixMilli(), 36))
}

func (u *CheckoutUsecase) PlaceOrder(ctx context.Context, in CheckoutInput) (ConfirmationOutput, error) {
	if errs := u.validator.Validate(in); len(errs) > 0 {
		return ConfirmationOutput{}, errs
	}

	lines, err := u.cartRepo.Load(ctx)
	if err != nil {
		return ConfirmationOutput{}, err
	}
	if len(lines) == 0 {
		return ConfirmationOutput{}, ErrEmptyCart
	}

	sum := Summarize(lines, u.pricing)
	now := u.clock.Now()

	// 明細は値コピーで凍結する
	items := append([]model.CartLine(nil), lines...)

	order := model.Order{
		ID:        OrderID(now),
		CreatedAt: now,
		Customer: model.Customer{
			FirstName: strings.TrimSpace(in.FirstName),
			LastName:  strings.TrimSpace(in.LastName),
			Email:     strings.TrimSpace(in.Email),
			Phone:     strings.TrimSpace(in.Phone),
		},
		Shipping: model.ShippingAddress{
			Address: strings.TrimSpace(in.Address),
			City:    strings.TrimSpace(in.City),
			State:   strings.TrimSpace(in.State),
			Zip:     strings.TrimSpace(in.Zip),
		},
		Items:        items,
		Subtotal:     sum.Subtotal,
		ShippingCost: sum.Shipping,
		Tax:          sum.Tax,
		Total:        sum.Total,
		Status:       model.OrderStatusPending,
	}

	if err := u.orderRepo.Append(ctx, order); err != nil {
		return ConfirmationOutput{}, err
	}
	if err := u.cartRepo.Save(ctx, []model.CartLine{}); err != nil {
		return ConfirmationOutput{}, err
	}

	return ConfirmationOutput{
		OrderID:   order.ID,
		FirstName: order.Customer.FirstName,
		Email:     order.Customer.Email,
		Total:     order.Total.String(),
	}, nil
}
