package response

import "time"

type DeliveryOption struct {
	ID                      string    `json:"id"`
	Label                   string    `json:"label"`
	DeliveryDays            int32     `json:"deliveryDays"`
	PriceCents              int64     `json:"priceCents"`
	EstimatedDeliveryTimeMs *int64    `json:"estimatedDeliveryTimeMs,omitempty"`
	CreatedAt               time.Time `json:"createdAt"`
	UpdatedAt               time.Time `json:"updatedAt"`
}
