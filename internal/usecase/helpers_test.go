package usecase_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/varun123-lab/Mario-Vendor/internal/domain/model"
	repo "github.com/varun123-lab/Mario-Vendor/internal/repository"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// =====================
// In-memory fakes（Load/Saveだけの薄いrepoはfakeの方が読みやすい）
// =====================

type cartRepoFake struct {
	lines []model.CartLine
}

func (f *cartRepoFake) Load(ctx context.Context) ([]model.CartLine, error) {
	return append([]model.CartLine(nil), f.lines...), nil
}

func (f *cartRepoFake) Save(ctx context.Context, lines []model.CartLine) error {
	f.lines = append([]model.CartLine(nil), lines...)
	return nil
}

type productRepoFake struct {
	products []model.Product
}

func (f *productRepoFake) List(ctx context.Context) ([]model.Product, error) {
	return append([]model.Product(nil), f.products...), nil
}

func (f *productRepoFake) FindByID(ctx context.Context, id int64) (model.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}

func (f *productRepoFake) Create(ctx context.Context, p model.Product) (model.Product, error) {
	var maxID int64 = 0
	for _, existing := range f.products {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	p.ID = maxID + 1
	f.products = append(f.products, p)
	return p, nil
}

func (f *productRepoFake) Update(ctx context.Context, p model.Product) error {
	for i := range f.products {
		if f.products[i].ID == p.ID {
			f.products[i] = p
			return nil
		}
	}
	return repo.ErrNotFound
}

func (f *productRepoFake) Delete(ctx context.Context, id int64) (bool, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type orderRepoFake struct {
	orders []model.Order
}

func (f *orderRepoFake) List(ctx context.Context) ([]model.Order, error) {
	return append([]model.Order(nil), f.orders...), nil
}

func (f *orderRepoFake) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	for _, o := range f.orders {
		if o.ID == orderID {
			return o, nil
		}
	}
	return model.Order{}, repo.ErrNotFound
}

func (f *orderRepoFake) Append(ctx context.Context, o model.Order) error {
	f.orders = append(f.orders, o)
	return nil
}

func (f *orderRepoFake) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	for i := range f.orders {
		if f.orders[i].ID == orderID {
			f.orders[i].Status = status
			return nil
		}
	}
	return repo.ErrNotFound
}

type wishlistRepoFake struct {
	ids []int64
}

func (f *wishlistRepoFake) List(ctx context.Context) ([]int64, error) {
	return append([]int64(nil), f.ids...), nil
}

func (f *wishlistRepoFake) Save(ctx context.Context, ids []int64) error {
	f.ids = append([]int64(nil), ids...)
	return nil
}

// =====================
// Notifier / badge / clock
// =====================

type NotifierMock struct{ mock.Mock }

func (m *NotifierMock) Success(msg string) { m.Called(msg) }
func (m *NotifierMock) Error(msg string)   { m.Called(msg) }
func (m *NotifierMock) Info(msg string)    { m.Called(msg) }

// recordingNotifier は呼ばれた内容だけ貯める
type recordingNotifier struct {
	successes []string
	errors    []string
	infos     []string
}

func (n *recordingNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recordingNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }
func (n *recordingNotifier) Info(msg string)    { n.infos = append(n.infos, msg) }

type recordingBadge struct {
	counts []int64
}

func (b *recordingBadge) CartCountChanged(count int64) { b.counts = append(b.counts, count) }

type fixedClock struct {
	t time.Time
}

func (c *fixedClock) Now() time.Time { return c.t }
