package pricing

import "github.com/shopspring/decimal"

var TaxRate = decimal.NewFromFloat(0.1)

// Line is one purchased product: its unit price, how many, and the price of the
// delivery option chosen for it. Shipping is charged once per line.
type Line struct {
	Quantity      int32
	PriceCents    int64
	ShippingCents int64
}

type Summary struct {
	TotalItems              int64 `json:"totalItems"`
	ProductCostCents        int64 `json:"productCostCents"`
	ShippingCostCents       int64 `json:"shippingCostCents"`
	TotalCostBeforeTaxCents int64 `json:"totalCostBeforeTaxCents"`
	TaxCents                int64 `json:"taxCents"`
	TotalCostCents          int64 `json:"totalCostCents"`
}

func Summarize(lines []Line) Summary {
	s := Summary{}
	for _, l := range lines {
		s.TotalItems += int64(l.Quantity)
		s.ProductCostCents += l.PriceCents * int64(l.Quantity)
		s.ShippingCostCents += l.ShippingCents
	}
	s.TotalCostBeforeTaxCents = s.ProductCostCents + s.ShippingCostCents
	s.TaxCents = decimal.NewFromInt(s.TotalCostBeforeTaxCents).Mul(TaxRate).Round(0).IntPart()
	s.TotalCostCents = s.TotalCostBeforeTaxCents + s.TaxCents
	return s
}
