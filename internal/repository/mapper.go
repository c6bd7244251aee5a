package repository

import (
	"encoding/json"

	cartResponse "github.com/Alturino/storefront/cart/pkg/response"
	deliveryOptionResponse "github.com/Alturino/storefront/deliveryoption/pkg/response"
	orderResponse "github.com/Alturino/storefront/order/pkg/response"
	productResponse "github.com/Alturino/storefront/product/pkg/response"
)

func (p Product) Response() productResponse.Product {
	keywords := p.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return productResponse.Product{
		ID:         p.ID,
		Image:      p.Image,
		Name:       p.Name,
		Rating:     productResponse.Rating{Stars: p.RatingStars, Count: p.RatingCount},
		PriceCents: p.PriceCents,
		Category:   p.Category,
		Keywords:   keywords,
		CreatedAt:  p.CreatedAt.Time,
		UpdatedAt:  p.UpdatedAt.Time,
	}
}

func (d DeliveryOption) Response() deliveryOptionResponse.DeliveryOption {
	return deliveryOptionResponse.DeliveryOption{
		ID:           d.ID,
		Label:        d.Label,
		DeliveryDays: d.DeliveryDays,
		PriceCents:   d.PriceCents,
		CreatedAt:    d.CreatedAt.Time,
		UpdatedAt:    d.UpdatedAt.Time,
	}
}

func (c CartItem) Response() cartResponse.CartItem {
	return cartResponse.CartItem{
		ID:               c.ID,
		ProductID:        c.ProductID,
		Quantity:         c.Quantity,
		DeliveryOptionID: c.DeliveryOptionID,
		CreatedAt:        c.CreatedAt.Time,
		UpdatedAt:        c.UpdatedAt.Time,
	}
}

func (o Order) Response() (orderResponse.Order, error) {
	products := []orderResponse.OrderProduct{}
	if len(o.Products) > 0 {
		if err := json.Unmarshal(o.Products, &products); err != nil {
			return orderResponse.Order{}, err
		}
	}
	return orderResponse.Order{
		ID:             o.ID,
		OrderTimeMs:    o.OrderTimeMs,
		TotalCostCents: o.TotalCostCents,
		Products:       products,
		CreatedAt:      o.CreatedAt.Time,
		UpdatedAt:      o.UpdatedAt.Time,
	}, nil
}
