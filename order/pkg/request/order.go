package request

import (
	"github.com/google/uuid"
)

type CreateOrder struct {
	Products []OrderProduct `validate:"required,min=1,dive" json:"products"`
}

type OrderProduct struct {
	ProductID        uuid.UUID `validate:"required"          json:"productId"`
	Quantity         int32     `validate:"gte=1,lte=1000"    json:"quantity"`
	DeliveryOptionID string    `validate:"required,notblank" json:"deliveryOptionId"`
}
