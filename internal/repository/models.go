package repository

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Product struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Image       string             `json:"image"`
	Category    string             `json:"category"`
	PriceCents  int64              `json:"price_cents"`
	RatingStars float64            `json:"rating_stars"`
	RatingCount int32              `json:"rating_count"`
	Keywords    []string           `json:"keywords"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

type DeliveryOption struct {
	ID           string             `json:"id"`
	Label        string             `json:"label"`
	DeliveryDays int32              `json:"delivery_days"`
	PriceCents   int64              `json:"price_cents"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

type CartItem struct {
	ID               uuid.UUID          `json:"id"`
	ProductID        uuid.UUID          `json:"product_id"`
	Quantity         int32              `json:"quantity"`
	DeliveryOptionID string             `json:"delivery_option_id"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
	UpdatedAt        pgtype.Timestamptz `json:"updated_at"`
}

// Order.Products holds the jsonb snapshot of the ordered line items.
type Order struct {
	ID             uuid.UUID          `json:"id"`
	OrderTimeMs    int64              `json:"order_time_ms"`
	TotalCostCents int64              `json:"total_cost_cents"`
	Products       []byte             `json:"products"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}
