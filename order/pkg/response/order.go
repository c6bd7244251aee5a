package response

import (
	"time"

	"github.com/google/uuid"

	productResponse "github.com/Alturino/storefront/product/pkg/response"
)

type Order struct {
	ID             uuid.UUID      `json:"id"`
	OrderTimeMs    int64          `json:"orderTimeMs"`
	TotalCostCents int64          `json:"totalCostCents"`
	Products       []OrderProduct `json:"products"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// OrderProduct is the line item snapshot taken when the order was placed.
type OrderProduct struct {
	ProductID               uuid.UUID                `json:"productId"`
	Quantity                int32                    `json:"quantity"`
	PriceCents              int64                    `json:"priceCents"`
	DeliveryOptionID        string                   `json:"deliveryOptionId"`
	EstimatedDeliveryTimeMs int64                    `json:"estimatedDeliveryTimeMs"`
	Product                 *productResponse.Product `json:"product,omitempty"`
}
