package request

type InsertDeliveryOption struct {
	ID           string `validate:"required,notblank,max=32" json:"id"`
	Label        string `validate:"required,notblank"        json:"label"`
	DeliveryDays int32  `validate:"gte=0,lte=365"            json:"deliveryDays"`
	PriceCents   int64  `validate:"gte=0"                    json:"priceCents"`
}

type UpdateDeliveryOption struct {
	Label        string `validate:"required,notblank" json:"label"`
	DeliveryDays int32  `validate:"gte=0,lte=365"     json:"deliveryDays"`
	PriceCents   int64  `validate:"gte=0"             json:"priceCents"`
}
