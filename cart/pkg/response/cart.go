package response

import (
	"time"

	"github.com/google/uuid"

	productResponse "github.com/Alturino/storefront/product/pkg/response"
)

type CartItem struct {
	ID               uuid.UUID                `json:"id"`
	ProductID        uuid.UUID                `json:"productId"`
	Quantity         int32                    `json:"quantity"`
	DeliveryOptionID string                   `json:"deliveryOptionId"`
	Product          *productResponse.Product `json:"product,omitempty"`
	CreatedAt        time.Time                `json:"createdAt"`
	UpdatedAt        time.Time                `json:"updatedAt"`
}
