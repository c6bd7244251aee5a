package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Alturino/storefront/internal/log"
	inOtel "github.com/Alturino/storefront/internal/otel"
	"github.com/Alturino/storefront/internal/pricing"
	"github.com/Alturino/storefront/internal/repository"
	"github.com/Alturino/storefront/payment/internal/otel"
)

type PaymentService struct {
	store repository.Store
}

func NewPaymentService(store repository.Store) *PaymentService {
	return &PaymentService{store: store}
}

// Summary prices the current cart. Cart items whose product no longer exists
// are left out and an unknown delivery option ships for free.
func (svc *PaymentService) Summary(c context.Context) (pricing.Summary, error) {
	c, span := otel.Tracer.Start(c, "PaymentService Summary")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "PaymentService Summary").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding cart items").Logger()
	items, err := svc.store.FindCartItems(c)
	if err != nil {
		err = fmt.Errorf("failed finding cart items with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return pricing.Summary{}, err
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	logger = logger.With().Str(log.KeyProcess, "finding products in cart").Logger()
	products, err := svc.store.FindProductsByIds(c, ids)
	if err != nil {
		err = fmt.Errorf("failed finding products with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return pricing.Summary{}, err
	}
	priceByID := make(map[uuid.UUID]int64, len(products))
	for _, p := range products {
		priceByID[p.ID] = p.PriceCents
	}

	logger = logger.With().Str(log.KeyProcess, "finding delivery options").Logger()
	deliveryOptions, err := svc.store.FindDeliveryOptions(c)
	if err != nil {
		err = fmt.Errorf("failed finding delivery options with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return pricing.Summary{}, err
	}
	shippingByID := make(map[string]int64, len(deliveryOptions))
	for _, d := range deliveryOptions {
		shippingByID[d.ID] = d.PriceCents
	}

	lines := make([]pricing.Line, 0, len(items))
	for _, item := range items {
		price, ok := priceByID[item.ProductID]
		if !ok {
			logger.Warn().
				Str(log.KeyProductID, item.ProductID.String()).
				Msg("cart item references missing product")
			continue
		}
		lines = append(lines, pricing.Line{
			Quantity:      item.Quantity,
			PriceCents:    price,
			ShippingCents: shippingByID[item.DeliveryOptionID],
		})
	}

	summary := pricing.Summarize(lines)
	logger.Info().Any(log.KeyPaymentSummary, summary).Msg("computed payment summary")
	return summary, nil
}
