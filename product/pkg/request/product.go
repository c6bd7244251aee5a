package request

type Rating struct {
	Stars float64 `validate:"gte=0,lte=5" json:"stars"`
	Count int32   `validate:"gte=0"       json:"count"`
}

type Product struct {
	Name       string   `validate:"required,notblank"       json:"name"`
	Image      string   `validate:"required,notblank"       json:"image"`
	Category   string   `validate:"required,notblank"       json:"category"`
	PriceCents int64    `validate:"gt=0"                    json:"priceCents"`
	Rating     Rating   `                                   json:"rating"`
	Keywords   []string `validate:"omitempty,dive,notblank" json:"keywords"`
}

type FindProducts struct {
	Search string `validate:"max=100"`
}
