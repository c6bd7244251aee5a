package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	inErrors "github.com/Alturino/storefront/internal/errors"
	"github.com/Alturino/storefront/internal/log"
	inOtel "github.com/Alturino/storefront/internal/otel"
	"github.com/Alturino/storefront/internal/pricing"
	"github.com/Alturino/storefront/internal/repository"
	"github.com/Alturino/storefront/order/internal/otel"
	"github.com/Alturino/storefront/order/pkg/request"
	"github.com/Alturino/storefront/order/pkg/response"
	productResponse "github.com/Alturino/storefront/product/pkg/response"
)

type OrderService struct {
	store repository.Store
	now   func() time.Time
}

func NewOrderService(store repository.Store, now func() time.Time) *OrderService {
	if now == nil {
		now = time.Now
	}
	return &OrderService{store: store, now: now}
}

func (svc *OrderService) attachProducts(c context.Context, orders []response.Order) error {
	seen := map[uuid.UUID]struct{}{}
	ids := []uuid.UUID{}
	for _, o := range orders {
		for _, p := range o.Products {
			if _, ok := seen[p.ProductID]; !ok {
				seen[p.ProductID] = struct{}{}
				ids = append(ids, p.ProductID)
			}
		}
	}
	if len(ids) == 0 {
		return nil
	}

	products, err := svc.store.FindProductsByIds(c, ids)
	if err != nil {
		return fmt.Errorf("failed finding products of orders with error=%w", err)
	}
	byID := make(map[uuid.UUID]productResponse.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p.Response()
	}
	for i := range orders {
		for j := range orders[i].Products {
			if p, ok := byID[orders[i].Products[j].ProductID]; ok {
				orders[i].Products[j].Product = &p
			}
		}
	}
	return nil
}

func (svc *OrderService) FindOrders(
	c context.Context,
	expandProducts bool,
) ([]response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService FindOrders")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService FindOrders").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding orders in database").Logger()
	logger.Trace().Msg("finding orders in database")
	rows, err := svc.store.FindOrders(c)
	if err != nil {
		err = fmt.Errorf("failed finding orders with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Int("count", len(rows)).Msg("found orders in database")

	orders := make([]response.Order, 0, len(rows))
	for _, row := range rows {
		o, err := row.Response()
		if err != nil {
			err = fmt.Errorf("failed decoding products of order=%s with error=%w", row.ID, err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return nil, err
		}
		orders = append(orders, o)
	}

	if expandProducts {
		logger = logger.With().Str(log.KeyProcess, "attaching products to orders").Logger()
		if err = svc.attachProducts(c, orders); err != nil {
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return nil, err
		}
	}

	return orders, nil
}

func (svc *OrderService) FindOrderById(
	c context.Context,
	id uuid.UUID,
	expandProducts bool,
) (response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService FindOrderById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService FindOrderById").
		Str(log.KeyOrderID, id.String()).
		Str(log.KeyProcess, "finding order in database").
		Logger()

	logger.Trace().Msg("finding order in database")
	row, err := svc.store.FindOrderById(c, id)
	if errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("failed finding order=%s with error=%w", id, inErrors.ErrOrderNotFound)
		inOtel.RecordError(err, span)
		logger.Info().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	if err != nil {
		err = fmt.Errorf("failed finding order with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger.Info().Msg("found order in database")

	order, err := row.Response()
	if err != nil {
		err = fmt.Errorf("failed decoding products of order=%s with error=%w", id, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}

	if expandProducts {
		orders := []response.Order{order}
		if err = svc.attachProducts(c, orders); err != nil {
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.Order{}, err
		}
		order = orders[0]
	}
	return order, nil
}

// CreateOrder snapshots the current price of every product and the delivery
// estimate of its option, then stores the order with its total.
func (svc *OrderService) CreateOrder(
	c context.Context,
	param request.CreateOrder,
) (response.Order, error) {
	c, span := otel.Tracer.Start(c, "OrderService CreateOrder")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "OrderService CreateOrder").
		Logger()

	if len(param.Products) == 0 {
		err := fmt.Errorf("failed creating order with error=%w", inErrors.ErrEmptyOrder)
		inOtel.RecordError(err, span)
		logger.Info().Err(err).Msg(err.Error())
		return response.Order{}, err
	}

	orderTime := svc.now()
	var created repository.Order
	err := svc.store.ExecTx(c, func(q repository.Querier) error {
		ids := make([]uuid.UUID, 0, len(param.Products))
		for _, p := range param.Products {
			ids = append(ids, p.ProductID)
		}

		logger := logger.With().Str(log.KeyProcess, "finding ordered products").Logger()
		logger.Trace().Msg("finding ordered products")
		products, err := q.FindProductsByIds(c, ids)
		if err != nil {
			return fmt.Errorf("failed finding products with error=%w", err)
		}
		priceByID := make(map[uuid.UUID]int64, len(products))
		for _, p := range products {
			priceByID[p.ID] = p.PriceCents
		}

		logger = logger.With().Str(log.KeyProcess, "finding delivery options").Logger()
		logger.Trace().Msg("finding delivery options")
		deliveryOptions, err := q.FindDeliveryOptions(c)
		if err != nil {
			return fmt.Errorf("failed finding delivery options with error=%w", err)
		}
		optionByID := make(map[string]repository.DeliveryOption, len(deliveryOptions))
		for _, d := range deliveryOptions {
			optionByID[d.ID] = d
		}

		lines := make([]response.OrderProduct, 0, len(param.Products))
		priced := make([]pricing.Line, 0, len(param.Products))
		for _, p := range param.Products {
			price, ok := priceByID[p.ProductID]
			if !ok {
				return fmt.Errorf(
					"%w: product=%s does not exist",
					inErrors.ErrInvalidRequest,
					p.ProductID,
				)
			}
			option, ok := optionByID[p.DeliveryOptionID]
			if !ok {
				return fmt.Errorf(
					"%w: delivery option=%s does not exist",
					inErrors.ErrInvalidRequest,
					p.DeliveryOptionID,
				)
			}
			estimated := orderTime.Add(time.Duration(option.DeliveryDays) * 24 * time.Hour)
			lines = append(lines, response.OrderProduct{
				ProductID:               p.ProductID,
				Quantity:                p.Quantity,
				PriceCents:              price,
				DeliveryOptionID:        option.ID,
				EstimatedDeliveryTimeMs: estimated.UnixMilli(),
			})
			priced = append(priced, pricing.Line{
				Quantity:      p.Quantity,
				PriceCents:    price,
				ShippingCents: option.PriceCents,
			})
		}

		body, err := json.Marshal(lines)
		if err != nil {
			return fmt.Errorf("failed marshaling order products with error=%w", err)
		}

		logger = logger.With().Str(log.KeyProcess, "inserting order").Logger()
		logger.Trace().Msg("inserting order")
		created, err = q.InsertOrder(c, repository.InsertOrderParams{
			ID:             uuid.New(),
			OrderTimeMs:    orderTime.UnixMilli(),
			TotalCostCents: pricing.Summarize(priced).TotalCostCents,
			Products:       body,
		})
		if err != nil {
			return fmt.Errorf("failed inserting order with error=%w", err)
		}
		return nil
	})
	if err != nil {
		err = fmt.Errorf("failed creating order with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	logger = logger.With().Str(log.KeyOrderID, created.ID.String()).Logger()
	logger.Info().Int64("totalCostCents", created.TotalCostCents).Msg("created order")
	otel.OrdersCreated.Add(c, 1)

	order, err := created.Response()
	if err != nil {
		err = fmt.Errorf("failed decoding products of order=%s with error=%w", created.ID, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Order{}, err
	}
	return order, nil
}
