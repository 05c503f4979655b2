package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/varun123-lab/Mario-Vendor/internal/config"
	infraRepo "github.com/varun123-lab/Mario-Vendor/internal/infra/repository"
	"github.com/varun123-lab/Mario-Vendor/internal/infra/storage"
	"github.com/varun123-lab/Mario-Vendor/internal/payment"
	"github.com/varun123-lab/Mario-Vendor/internal/usecase"
	"github.com/varun123-lab/Mario-Vendor/internal/validator"
	"github.com/varun123-lab/Mario-Vendor/internal/view"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

// トーストはコンソールに流すだけ
type toastLogger struct{}

func (toastLogger) Success(msg string) { log.Printf("[toast/success] %s", msg) }
func (toastLogger) Error(msg string)   { log.Printf("[toast/error] %s", msg) }
func (toastLogger) Info(msg string)    { log.Printf("[toast/info] %s", msg) }

// ヘッダのカートバッジ更新
type badgeLogger struct{}

func (badgeLogger) CartCountChanged(count int64) {
	b := view.NewCartBadge(count)
	if !b.Visible {
		log.Printf("[badge] hidden")
		return
	}
	log.Printf("[badge] %s", b.Count)
}

func main() {
	// .envは無くてもよい
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	store, err := storage.Open(cfg.StorePath)
	if err != nil {
		panic(err)
	}
	if warn := store.Warning(); warn != nil {
		log.Printf("stored state reset: %v", warn)
	}

	// Repository（localstore実装）生成
	productRepo := infraRepo.NewProductStoreRepository(store)
	cartRepo := infraRepo.NewCartStoreRepository(store)
	orderRepo := infraRepo.NewOrderStoreRepository(store)
	wishlistRepo := infraRepo.NewWishlistStoreRepository(store)

	// usecaseに渡す部品
	notifier := toastLogger{}
	badge := badgeLogger{}
	clock := &realClock{}
	pricing := usecase.PricingPolicy{
		TaxRate:         cfg.TaxRate,
		FreeShippingMin: cfg.FreeShippingMin,
		FlatShipping:    cfg.FlatShipping,
	}

	// Usecase生成
	catalogUC := usecase.NewCatalogUsecase(productRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, productRepo, pricing, notifier, badge)
	checkoutUC := usecase.NewCheckoutUsecase(cartRepo, orderRepo, validator.NewCheckoutValidator(), pricing, clock)
	vendorUC := usecase.NewVendorUsecase(productRepo, orderRepo, notifier)
	wishlistUC := usecase.NewWishlistUsecase(wishlistRepo, productRepo, notifier)

	ctx := context.Background()

	featured, err := catalogUC.ListFeatured(ctx)
	if err != nil {
		panic(err)
	}
	log.Printf("storefront ready: %d featured products", len(featured))
	for _, card := range view.NewProductCards(usecase.SortProducts(featured, usecase.SortPriceLow)) {
		log.Printf("  [%d] %s %s — %s", card.ID, card.Brand, card.Name, card.Price)
	}

	// ちょいとした買い物の流れ
	if err := cartUC.Add(ctx, usecase.AddToCartInput{ProductID: 4, Quantity: 2}); err != nil {
		log.Printf("add to cart: %v", err)
	}
	if err := wishlistUC.Add(ctx, 11); err != nil {
		log.Printf("wishlist: %v", err)
	}

	lines, err := cartUC.Lines(ctx)
	if err != nil {
		panic(err)
	}
	sum, err := cartUC.Summary(ctx)
	if err != nil {
		panic(err)
	}
	cart := view.NewCartView(lines, sum)
	log.Printf("cart: %d items, subtotal %s, shipping %s, tax %s, total %s",
		cart.Count, cart.Summary.Subtotal, cart.Summary.Shipping, cart.Summary.Tax, cart.Summary.Total)

	// 支払い欄の検証（シミュレーションなのでゲートウェイには出ない）
	cardNumber := "4539 1488 0343 6467"
	cardType := payment.DetectCardType(cardNumber)
	if !payment.ValidateCardNumber(cardNumber) ||
		!payment.ValidateExpiry("12/28", clock.Now()) ||
		!payment.ValidateCVC("123", cardType) {
		log.Printf("checkout: card declined")
		return
	}
	enc := payment.NewEncryptor(payment.UUIDTokenGenerator{}, clock)
	sealed, err := enc.Encrypt(map[string]string{
		"card": payment.MaskCardNumber(cardNumber),
		"type": string(cardType),
	})
	if err != nil {
		panic(err)
	}
	log.Printf("payment accepted: %s (%s), envelope %d bytes", payment.MaskCardNumber(cardNumber), cardType, len(sealed))

	out, err := checkoutUC.PlaceOrder(ctx, usecase.CheckoutInput{
		FirstName: "Ava",
		LastName:  "Stone",
		Email:     "ava@example.com",
		Phone:     "(555) 010-9900",
		Address:   "1 Demo Street",
		City:      "Springfield",
		State:     "IL",
		Zip:       "62701",
	})
	if err != nil {
		log.Printf("checkout: %v", err)
	} else {
		conf := view.NewConfirmation(out)
		log.Printf("order confirmed: %s for %s (%s)", conf.OrderID, conf.FirstName, conf.Email)
	}

	stats, err := vendorUC.Stats(ctx)
	if err != nil {
		panic(err)
	}
	dash := view.NewDashboard(stats)
	log.Printf("dashboard: products=%s orders=%s revenue=%s pending=%s in-stock=%s low-stock=%s",
		dash.TotalProducts, dash.TotalOrders, dash.Revenue, dash.PendingOrders, dash.InStock, dash.LowStock)
}
