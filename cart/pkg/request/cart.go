package request

import (
	"github.com/google/uuid"
)

type InsertCartItem struct {
	ProductID uuid.UUID `validate:"required"       json:"productId"`
	Quantity  int32     `validate:"gte=1,lte=1000" json:"quantity"`
}

type UpdateCartItem struct {
	Quantity         *int32  `validate:"omitempty,gte=1,lte=1000" json:"quantity"`
	DeliveryOptionID *string `validate:"omitempty,notblank"       json:"deliveryOptionId"`
}
