package seed

import (
	"github.com/google/uuid"

	"github.com/Alturino/storefront/internal/repository"
	orderResponse "github.com/Alturino/storefront/order/pkg/response"
)

var (
	socksID      = uuid.MustParse("e43638ce-6aa0-4b85-b27f-e1d07eb678c6")
	basketballID = uuid.MustParse("15b6fc6f-327a-4ec4-896f-486349e85a3d")
	tShirtID     = uuid.MustParse("83d4ca15-0f35-48f5-b7a3-1ea210004f2e")
	toasterID    = uuid.MustParse("54e0eccd-8f36-462b-b68a-8182611d9add")
	plateSetID   = uuid.MustParse("3ebe75dc-64d2-4137-8860-1f5a963e534b")
	bakewareID   = uuid.MustParse("8c9c52b5-5a19-4bcb-a5d1-158a74287c53")
	sweatshirtID = uuid.MustParse("dd82ca78-a18b-4e2a-9250-31e67412f98d")
	towelSetID   = uuid.MustParse("77919bbe-0e56-475b-adde-4f24dfed3a04")
	detergentID  = uuid.MustParse("3fdfe8d6-9a15-4979-b459-585b0d0545b9")
	sneakersID   = uuid.MustParse("58b4fc92-e98c-42aa-8c55-b6b79996769a")
)

// Timestamps are left zero; the seeder stamps each row when loading.
var DefaultProducts = []repository.CreateProductsParams{
	{
		ID:          socksID,
		Name:        "Black and Gray Athletic Cotton Socks - 6 Pairs",
		Image:       "images/products/athletic-cotton-socks-6-pairs.jpg",
		Category:    "apparel",
		PriceCents:  1090,
		RatingStars: 4.5,
		RatingCount: 87,
		Keywords:    []string{"socks", "sports", "apparel"},
	},
	{
		ID:          basketballID,
		Name:        "Intermediate Size Basketball",
		Image:       "images/products/intermediate-composite-basketball.jpg",
		Category:    "sports",
		PriceCents:  2095,
		RatingStars: 4,
		RatingCount: 127,
		Keywords:    []string{"sports", "basketballs"},
	},
	{
		ID:          tShirtID,
		Name:        "Adults Plain Cotton T-Shirt - 2 Pack",
		Image:       "images/products/adults-plain-cotton-tshirt-2-pack-teal.jpg",
		Category:    "apparel",
		PriceCents:  799,
		RatingStars: 4.5,
		RatingCount: 56,
		Keywords:    []string{"tshirts", "apparel", "mens"},
	},
	{
		ID:          toasterID,
		Name:        "2 Slot Toaster - Black",
		Image:       "images/products/black-2-slot-toaster.jpg",
		Category:    "kitchen",
		PriceCents:  1899,
		RatingStars: 5,
		RatingCount: 2197,
		Keywords:    []string{"toaster", "kitchen", "appliances"},
	},
	{
		ID:          plateSetID,
		Name:        "6 Piece White Dinner Plate Set",
		Image:       "images/products/6-piece-white-dinner-plate-set.jpg",
		Category:    "kitchen",
		PriceCents:  2067,
		RatingStars: 4,
		RatingCount: 37,
		Keywords:    []string{"plates", "kitchen", "dining"},
	},
	{
		ID:          bakewareID,
		Name:        "6-Piece Nonstick, Carbon Steel Oven Bakeware Baking Set",
		Image:       "images/products/6-piece-non-stick-baking-set.webp",
		Category:    "kitchen",
		PriceCents:  3499,
		RatingStars: 4.5,
		RatingCount: 175,
		Keywords:    []string{"kitchen", "cookware"},
	},
	{
		ID:          sweatshirtID,
		Name:        "Plain Hooded Fleece Sweatshirt",
		Image:       "images/products/plain-hooded-fleece-sweatshirt-yellow.jpg",
		Category:    "apparel",
		PriceCents:  2400,
		RatingStars: 4.5,
		RatingCount: 317,
		Keywords:    []string{"hoodies", "sweaters", "apparel"},
	},
	{
		ID:          towelSetID,
		Name:        "Luxury Towel Set - Graphite Gray",
		Image:       "images/products/luxury-tower-set-6-piece.jpg",
		Category:    "home",
		PriceCents:  3599,
		RatingStars: 4.5,
		RatingCount: 144,
		Keywords:    []string{"bathroom", "washroom", "restroom", "towels", "bath towels"},
	},
	{
		ID:          detergentID,
		Name:        "Liquid Laundry Detergent, Plain",
		Image:       "images/products/liquid-laundry-detergent-plain.jpg",
		Category:    "home",
		PriceCents:  2899,
		RatingStars: 4.5,
		RatingCount: 305,
		Keywords:    []string{"bathroom", "cleaning"},
	},
	{
		ID:          sneakersID,
		Name:        "Waterproof Knit Athletic Sneakers - Gray",
		Image:       "images/products/knit-athletic-sneakers-gray.jpg",
		Category:    "apparel",
		PriceCents:  3390,
		RatingStars: 4,
		RatingCount: 89,
		Keywords:    []string{"shoes", "running shoes", "footwear"},
	},
}

var DefaultDeliveryOptions = []repository.CreateDeliveryOptionsParams{
	{ID: "1", Label: "Standard Shipping", DeliveryDays: 7, PriceCents: 0},
	{ID: "2", Label: "Express Shipping", DeliveryDays: 3, PriceCents: 499},
	{ID: "3", Label: "Next Day Shipping", DeliveryDays: 1, PriceCents: 999},
}

// DefaultCart only references rows of DefaultProducts and
// DefaultDeliveryOptions.
var DefaultCart = []repository.CreateCartItemsParams{
	{
		ID:               uuid.MustParse("0b0d5a4e-7a1c-4c55-8f55-9f0a6f3a1c01"),
		ProductID:        socksID,
		Quantity:         2,
		DeliveryOptionID: "1",
	},
	{
		ID:               uuid.MustParse("0b0d5a4e-7a1c-4c55-8f55-9f0a6f3a1c02"),
		ProductID:        basketballID,
		Quantity:         1,
		DeliveryOptionID: "2",
	},
}

type DefaultOrder struct {
	ID          uuid.UUID
	OrderTimeMs int64
	Products    []orderResponse.OrderProduct
}

var DefaultOrders = []DefaultOrder{
	{
		ID:          uuid.MustParse("27cba69d-4c3d-4098-b42d-ac7fa62b7664"),
		OrderTimeMs: 1723456800000,
		Products: []orderResponse.OrderProduct{
			{
				ProductID:               socksID,
				Quantity:                1,
				PriceCents:              1090,
				DeliveryOptionID:        "2",
				EstimatedDeliveryTimeMs: 1723716000000,
			},
			{
				ProductID:               tShirtID,
				Quantity:                2,
				PriceCents:              799,
				DeliveryOptionID:        "1",
				EstimatedDeliveryTimeMs: 1724061600000,
			},
		},
	},
	{
		ID:          uuid.MustParse("b6b6c212-d30e-4d4a-805d-90b52ce6b37d"),
		OrderTimeMs: 1718013600000,
		Products: []orderResponse.OrderProduct{
			{
				ProductID:               basketballID,
				Quantity:                2,
				PriceCents:              2095,
				DeliveryOptionID:        "3",
				EstimatedDeliveryTimeMs: 1718100000000,
			},
		},
	},
}
