package repository

import (
	"github.com/shopspring/decimal"

	"github.com/varun123-lab/Mario-Vendor/internal/domain/model"
)

// ブランド名
const (
	brandRalphLauren = "Ralph Lauren"
	brandSp5der      = "Sp5der"
	brandDenimTears  = "Denim Tears"
	brandEssentials  = "Essentials"
	brandApple       = "Apple"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func dp(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

// SeedProducts は組み込みのカタログ。vendorProductsキーが無い間はこれを見せる。
func SeedProducts() []model.Product {
	return []model.Product{
		{
			ID:            1,
			Name:          "Ralph Lauren Hoodie",
			Brand:         brandRalphLauren,
			Category:      model.CategoryHoodies,
			Price:         d("4500.00"),
			OriginalPrice: dp("5000.00"),
			Image:         "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=400&h=400&fit=crop",
			Description:   "Premium cotton hoodie with embroidered Polo logo. Comfortable fit with kangaroo pocket and ribbed cuffs.",
			Sizes:         []string{"S", "M", "L", "XL", "XXL"},
			Colors:        []string{"Black", "Navy", "Gray"},
			Stock:         25,
			Badge:         model.BadgeSale,
			Featured:      true,
		},
		{
			ID:            2,
			Name:          "Sp5der Hoodie",
			Brand:         brandSp5der,
			Category:      model.CategoryHoodies,
			Price:         d("3999.00"),
			OriginalPrice: dp("5000.00"),
			Image:         "https://images.unsplash.com/photo-1509942774463-acf339cf87d5?w=400&h=400&fit=crop",
			Description:   "Iconic spider web print design. Heavy-weight fleece construction. Available in multiple vibrant colors including Pink, Blue, Green, Yellow, Purple, Red.",
			Sizes:         []string{"S", "M", "L", "XL"},
			Colors:        []string{"Black", "Pink", "Blue", "Green", "Yellow", "Purple", "Red"},
			Stock:         12,
			Badge:         model.BadgeSale,
			Featured:      true,
		},
		{
			ID:            3,
			Name:          "Denim Tears Hoodie",
			Brand:         brandDenimTears,
			Category:      model.CategoryHoodies,
			Price:         d("4200.00"),
			OriginalPrice: dp("5000.00"),
			Image:         "https://images.unsplash.com/photo-1578768079052-aa76e52ff62e?w=400&h=400&fit=crop",
			Description:   "African Diaspora Goods collection. Premium French terry material with signature cotton wreath design.",
			Sizes:         []string{"S", "M", "L", "XL"},
			Colors:        []string{"Black", "Cream"},
			Stock:         8,
			Badge:         model.BadgeSale,
			Featured:      true,
		},
		{
			ID:          4,
			Name:        "Essentials Hoodie",
			Brand:       brandEssentials,
			Category:    model.CategoryHoodies,
			Price:       d("25.00"),
			Image:       "https://images.unsplash.com/photo-1620799140408-edc6dcb6d633?w=400&h=400&fit=crop",
			Description: "Fear of God Essentials oversized fit hoodie with dropped shoulders. Rubberized logo on chest.",
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"Oatmeal", "Black", "Sage"},
			Stock:       30,
			Badge:       model.BadgeNew,
			Featured:    true,
		},
		{
			ID:          5,
			Name:        "Ralph Lauren Sweater",
			Brand:       brandRalphLauren,
			Category:    model.CategorySweaters,
			Price:       d("50.00"),
			Image:       "https://images.unsplash.com/photo-1434389677669-e08b4cac3105?w=400&h=400&fit=crop",
			Description: "Classic cable-knit sweater. 100% cotton construction with embroidered red Polo pony logo. Premium quality.",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Navy", "Black", "Hunter Green"},
			Stock:       18,
			Featured:    true,
		},
		{
			ID:            6,
			Name:          "Essentials Sweater",
			Brand:         brandEssentials,
			Category:      model.CategorySweaters,
			Price:         d("8500.00"),
			OriginalPrice: dp("9000.00"),
			Image:         "https://images.unsplash.com/photo-1614975059251-992f11792b9f?w=400&h=400&fit=crop",
			Description:   "Fear of God Essentials relaxed fit crewneck sweater. Soft cotton blend fabric with rubberized \"ESSENTIALS FEAR OF GOD\" branding.",
			Sizes:         []string{"XS", "S", "M", "L", "XL"},
			Colors:        []string{"Tan", "Beige", "Sage", "Black"},
			Stock:         22,
			Badge:         model.BadgeSale,
			Featured:      true,
		},
		{
			ID:          7,
			Name:        "Ralph Lauren T-Shirt",
			Brand:       brandRalphLauren,
			Category:    model.CategoryTShirts,
			Price:       d("25.00"),
			Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400&h=400&fit=crop",
			Description: "Classic cotton tee featuring the iconic Polo Bear graphic. Premium soft cotton construction.",
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Colors:      []string{"White", "Black", "Navy"},
			Stock:       40,
		},
		{
			ID:            8,
			Name:          "Sp5der T-Shirt",
			Brand:         brandSp5der,
			Category:      model.CategoryTShirts,
			Price:         d("4500.00"),
			OriginalPrice: dp("5000.00"),
			Image:         "https://images.unsplash.com/photo-1583743814966-8936f5b7be1a?w=400&h=400&fit=crop",
			Description:   "Premium cotton tee with signature spider web print design. Heavyweight construction.",
			Sizes:         []string{"S", "M", "L", "XL"},
			Colors:        []string{"Black", "White", "Pink"},
			Stock:         28,
			Badge:         model.BadgeSale,
			Featured:      true,
		},
		{
			ID:            9,
			Name:          "Denim Tears T-Shirt",
			Brand:         brandDenimTears,
			Category:      model.CategoryTShirts,
			Price:         d("3800.00"),
			OriginalPrice: dp("5000.00"),
			Image:         "https://images.unsplash.com/photo-1562157873-818bc0726f68?w=400&h=400&fit=crop",
			Description:   "Heavyweight cotton tee with signature cotton wreath print. African Diaspora Goods collection.",
			Sizes:         []string{"S", "M", "L", "XL"},
			Colors:        []string{"White", "Black"},
			Stock:         20,
			Badge:         model.BadgeSale,
			Featured:      true,
		},
		{
			ID:          10,
			Name:        "Essentials T-Shirt",
			Brand:       brandEssentials,
			Category:    model.CategoryTShirts,
			Price:       d("25.00"),
			Image:       "https://images.unsplash.com/photo-1581655353564-df123a1eb820?w=400&h=400&fit=crop",
			Description: "Fear of God Essentials boxy fit tee with rubberized branding on chest.",
			Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
			Colors:      []string{"Oatmeal", "Black", "Sage", "Cream"},
			Stock:       50,
			Badge:       model.BadgeNew,
			Featured:    true,
		},
		{
			ID:            11,
			Name:          "AirPods",
			Brand:         brandApple,
			Category:      model.CategoryAccessories,
			Price:         d("179.00"),
			OriginalPrice: dp("199.00"),
			Image:         "https://images.unsplash.com/photo-1606220588913-b3aacb4d2f46?w=400&h=400&fit=crop",
			Description:   "Apple AirPods wireless earbuds with spatial audio and dynamic head tracking. Adaptive EQ. Sweat and water resistant.",
			Sizes:         []string{"One Size"},
			Colors:        []string{"White"},
			Stock:         35,
			Badge:         model.BadgeSale,
			Featured:      true,
		},
	}
}
