package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/Alturino/storefront/internal/log"
	"github.com/Alturino/storefront/internal/otel"
	"github.com/Alturino/storefront/internal/pricing"
	"github.com/Alturino/storefront/internal/repository"
	orderResponse "github.com/Alturino/storefront/order/pkg/response"
)

// Result reports what a Seed or Reset call loaded. Base is the timestamp the
// first row of every set was stamped with; row i carries Base + i ms.
type Result struct {
	Seeded          bool      `json:"seeded"`
	Products        int64     `json:"products"`
	DeliveryOptions int64     `json:"deliveryOptions"`
	CartItems       int64     `json:"cartItems"`
	Orders          int64     `json:"orders"`
	Base            time.Time `json:"base"`
}

type Seeder struct {
	store repository.Store
	now   func() time.Time
}

type Option func(*Seeder)

func WithClock(now func() time.Time) Option {
	return func(s *Seeder) { s.now = now }
}

func NewSeeder(store repository.Store, opts ...Option) *Seeder {
	s := &Seeder{store: store, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func stamp(base time.Time, i int) time.Time {
	return base.Add(time.Duration(i) * time.Millisecond)
}

// Seed loads the default data sets when the products table is empty and does
// nothing otherwise. The four sets are written in one transaction.
func (s *Seeder) Seed(c context.Context) (Result, error) {
	c, span := otel.Tracer.Start(c, "Seeder Seed")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "Seeder Seed").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "counting products").Logger()
	logger.Info().Msg("counting products")
	count, err := s.store.CountProducts(c)
	if err != nil {
		err = fmt.Errorf("failed counting products with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return Result{}, err
	}
	logger.Info().Int64("count", count).Msg("counted products")
	if count > 0 {
		logger.Info().Msg("default data already present")
		return Result{Seeded: false}, nil
	}

	logger = logger.With().Str(log.KeyProcess, "seeding default data").Logger()
	result, err := s.load(c, s.store.ExecTx, nil)
	if err != nil {
		err = fmt.Errorf("failed seeding default data with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return Result{}, err
	}
	logger.Info().Any(log.KeySeedResult, result).Msg("default data seeded")

	return result, nil
}

// Reset wipes the four tables and loads the default data sets again with a
// fresh base timestamp, in one transaction.
func (s *Seeder) Reset(c context.Context) (Result, error) {
	c, span := otel.Tracer.Start(c, "Seeder Reset")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "Seeder Reset").
		Str(log.KeyProcess, "resetting default data").
		Logger()

	logger.Info().Msg("resetting default data")
	result, err := s.load(c, s.store.ExecTx, wipe)
	if err != nil {
		err = fmt.Errorf("failed resetting default data with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return Result{}, err
	}
	logger.Info().Any(log.KeySeedResult, result).Msg("reset default data")

	return result, nil
}

func wipe(c context.Context, q repository.Querier) error {
	if _, err := q.DeleteAllOrders(c); err != nil {
		return fmt.Errorf("failed deleting orders with error=%w", err)
	}
	if _, err := q.DeleteAllCartItems(c); err != nil {
		return fmt.Errorf("failed deleting cart items with error=%w", err)
	}
	if _, err := q.DeleteAllDeliveryOptions(c); err != nil {
		return fmt.Errorf("failed deleting delivery options with error=%w", err)
	}
	if _, err := q.DeleteAllProducts(c); err != nil {
		return fmt.Errorf("failed deleting products with error=%w", err)
	}
	return nil
}

type txFunc func(context.Context, func(repository.Querier) error) error

func (s *Seeder) load(
	c context.Context,
	tx txFunc,
	before func(context.Context, repository.Querier) error,
) (Result, error) {
	logger := zerolog.Ctx(c)

	base := s.now()
	products, deliveryOptions, cartItems, orders, err := Defaults(base)
	if err != nil {
		return Result{}, err
	}
	logger.Debug().Time(log.KeySeedBase, base).Msg("captured seed base")

	result := Result{Seeded: true, Base: base}
	err = tx(c, func(q repository.Querier) error {
		if before != nil {
			if err := before(c, q); err != nil {
				return err
			}
		}

		n, err := q.CreateProducts(c, products)
		if err != nil {
			return fmt.Errorf("failed creating products with error=%w", err)
		}
		result.Products = n

		n, err = q.CreateDeliveryOptions(c, deliveryOptions)
		if err != nil {
			return fmt.Errorf("failed creating delivery options with error=%w", err)
		}
		result.DeliveryOptions = n

		n, err = q.CreateCartItems(c, cartItems)
		if err != nil {
			return fmt.Errorf("failed creating cart items with error=%w", err)
		}
		result.CartItems = n

		n, err = q.CreateOrders(c, orders)
		if err != nil {
			return fmt.Errorf("failed creating orders with error=%w", err)
		}
		result.Orders = n

		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return result, nil
}

// Defaults returns copies of the default data sets with row i of every set
// stamped base + i ms.
func Defaults(base time.Time) (
	[]repository.CreateProductsParams,
	[]repository.CreateDeliveryOptionsParams,
	[]repository.CreateCartItemsParams,
	[]repository.CreateOrdersParams,
	error,
) {
	products := make([]repository.CreateProductsParams, len(DefaultProducts))
	for i, p := range DefaultProducts {
		p.Keywords = slices.Clone(p.Keywords)
		p.CreatedAt = stamp(base, i)
		p.UpdatedAt = p.CreatedAt
		products[i] = p
	}

	deliveryOptions := make([]repository.CreateDeliveryOptionsParams, len(DefaultDeliveryOptions))
	for i, d := range DefaultDeliveryOptions {
		d.CreatedAt = stamp(base, i)
		d.UpdatedAt = d.CreatedAt
		deliveryOptions[i] = d
	}

	cartItems := make([]repository.CreateCartItemsParams, len(DefaultCart))
	for i, ci := range DefaultCart {
		ci.CreatedAt = stamp(base, i)
		ci.UpdatedAt = ci.CreatedAt
		cartItems[i] = ci
	}

	orders := make([]repository.CreateOrdersParams, len(DefaultOrders))
	for i, o := range DefaultOrders {
		lines, err := json.Marshal(o.Products)
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf(
				"failed marshaling products of order=%s with error=%w",
				o.ID,
				err,
			)
		}
		orders[i] = repository.CreateOrdersParams{
			ID:             o.ID,
			OrderTimeMs:    o.OrderTimeMs,
			TotalCostCents: OrderTotal(o.Products),
			Products:       lines,
			CreatedAt:      stamp(base, i),
			UpdatedAt:      stamp(base, i),
		}
	}

	return products, deliveryOptions, cartItems, orders, nil
}

// OrderTotal prices a default order against DefaultDeliveryOptions.
func OrderTotal(products []orderResponse.OrderProduct) int64 {
	shipping := make(map[string]int64, len(DefaultDeliveryOptions))
	for _, d := range DefaultDeliveryOptions {
		shipping[d.ID] = d.PriceCents
	}
	lines := make([]pricing.Line, 0, len(products))
	for _, p := range products {
		lines = append(lines, pricing.Line{
			Quantity:      p.Quantity,
			PriceCents:    p.PriceCents,
			ShippingCents: shipping[p.DeliveryOptionID],
		})
	}
	return pricing.Summarize(lines).TotalCostCents
}
