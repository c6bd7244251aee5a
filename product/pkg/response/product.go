package response

import (
	"time"

	"github.com/google/uuid"
)

type Rating struct {
	Stars float64 `json:"stars"`
	Count int32   `json:"count"`
}

type Product struct {
	ID         uuid.UUID `json:"id"`
	Image      string    `json:"image"`
	Name       string    `json:"name"`
	Rating     Rating    `json:"rating"`
	PriceCents int64     `json:"priceCents"`
	Category   string    `json:"category"`
	Keywords   []string  `json:"keywords"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
