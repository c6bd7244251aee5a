package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/Alturino/storefront/cart/internal/otel"
	"github.com/Alturino/storefront/cart/pkg/request"
	"github.com/Alturino/storefront/cart/pkg/response"
	inErrors "github.com/Alturino/storefront/internal/errors"
	"github.com/Alturino/storefront/internal/log"
	inOtel "github.com/Alturino/storefront/internal/otel"
	"github.com/Alturino/storefront/internal/repository"
	productResponse "github.com/Alturino/storefront/product/pkg/response"
)

// DefaultDeliveryOptionID is assigned to products newly added to the cart.
const DefaultDeliveryOptionID = "1"

type CartService struct {
	store repository.Store
}

func NewCartService(store repository.Store) *CartService {
	return &CartService{store: store}
}

func (svc *CartService) attachProducts(
	c context.Context,
	items []response.CartItem,
) error {
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	products, err := svc.store.FindProductsByIds(c, ids)
	if err != nil {
		return fmt.Errorf("failed finding products of cart items with error=%w", err)
	}
	byID := make(map[uuid.UUID]productResponse.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p.Response()
	}
	for i := range items {
		if p, ok := byID[items[i].ProductID]; ok {
			items[i].Product = &p
		}
	}
	return nil
}

func (svc *CartService) FindCartItems(
	c context.Context,
	expandProduct bool,
) ([]response.CartItem, error) {
	c, span := otel.Tracer.Start(c, "CartService FindCartItems")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService FindCartItems").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding cart items in database").Logger()
	logger.Trace().Msg("finding cart items in database")
	rows, err := svc.store.FindCartItems(c)
	if err != nil {
		err = fmt.Errorf("failed finding cart items with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Int("count", len(rows)).Msg("found cart items in database")

	items := make([]response.CartItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.Response())
	}
	if !expandProduct || len(items) == 0 {
		return items, nil
	}

	logger = logger.With().Str(log.KeyProcess, "attaching products to cart items").Logger()
	if err = svc.attachProducts(c, items); err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Trace().Msg("attached products to cart items")

	return items, nil
}

func (svc *CartService) FindCartItemByProductId(
	c context.Context,
	productID uuid.UUID,
	expandProduct bool,
) (response.CartItem, error) {
	c, span := otel.Tracer.Start(c, "CartService FindCartItemByProductId")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService FindCartItemByProductId").
		Str(log.KeyProductID, productID.String()).
		Str(log.KeyProcess, "finding cart item in database").
		Logger()

	logger.Trace().Msg("finding cart item in database")
	row, err := svc.store.FindCartItemByProductId(c, productID)
	if errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf(
			"failed finding cart item of product=%s with error=%w",
			productID,
			inErrors.ErrCartItemNotFound,
		)
		inOtel.RecordError(err, span)
		logger.Info().Err(err).Msg(err.Error())
		return response.CartItem{}, err
	}
	if err != nil {
		err = fmt.Errorf("failed finding cart item with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.CartItem{}, err
	}
	logger.Info().Msg("found cart item in database")

	items := []response.CartItem{row.Response()}
	if expandProduct {
		if err = svc.attachProducts(c, items); err != nil {
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return response.CartItem{}, err
		}
	}
	return items[0], nil
}

// AddCartItem puts a product in the cart, adding to its quantity when it is
// already there. The product must exist.
func (svc *CartService) AddCartItem(
	c context.Context,
	param request.InsertCartItem,
) (response.CartItem, error) {
	c, span := otel.Tracer.Start(c, "CartService AddCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService AddCartItem").
		Str(log.KeyProductID, param.ProductID.String()).
		Int32("quantity", param.Quantity).
		Logger()

	var item repository.CartItem
	err := svc.store.ExecTx(c, func(q repository.Querier) error {
		logger := logger.With().Str(log.KeyProcess, "finding product in database").Logger()
		logger.Trace().Msg("finding product in database")
		_, err := q.FindProductById(c, param.ProductID)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf(
				"%w: product=%s does not exist",
				inErrors.ErrInvalidRequest,
				param.ProductID,
			)
		}
		if err != nil {
			return fmt.Errorf("failed finding product with error=%w", err)
		}

		logger = logger.With().Str(log.KeyProcess, "upserting cart item").Logger()
		logger.Trace().Msg("upserting cart item")
		item, err = q.UpsertCartItem(c, repository.UpsertCartItemParams{
			ProductID:        param.ProductID,
			Quantity:         param.Quantity,
			DeliveryOptionID: DefaultDeliveryOptionID,
		})
		if repository.IsCheckViolation(err) {
			return fmt.Errorf("%w: quantity must be at least 1", inErrors.ErrInvalidRequest)
		}
		if err != nil {
			return fmt.Errorf("failed upserting cart item with error=%w", err)
		}
		return nil
	})
	if err != nil {
		err = fmt.Errorf("failed adding cart item with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.CartItem{}, err
	}
	logger.Info().Int32("totalQuantity", item.Quantity).Msg("added cart item")

	return item.Response(), nil
}

func (svc *CartService) UpdateCartItem(
	c context.Context,
	productID uuid.UUID,
	param request.UpdateCartItem,
) (response.CartItem, error) {
	c, span := otel.Tracer.Start(c, "CartService UpdateCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService UpdateCartItem").
		Str(log.KeyProductID, productID.String()).
		Logger()

	var item repository.CartItem
	err := svc.store.ExecTx(c, func(q repository.Querier) error {
		current, err := q.FindCartItemByProductId(c, productID)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf(
				"failed finding cart item of product=%s with error=%w",
				productID,
				inErrors.ErrCartItemNotFound,
			)
		}
		if err != nil {
			return fmt.Errorf("failed finding cart item with error=%w", err)
		}

		params := repository.UpdateCartItemParams{
			ProductID:        productID,
			Quantity:         current.Quantity,
			DeliveryOptionID: current.DeliveryOptionID,
		}
		if param.Quantity != nil {
			params.Quantity = *param.Quantity
		}
		if param.DeliveryOptionID != nil {
			_, err = q.FindDeliveryOptionById(c, *param.DeliveryOptionID)
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf(
					"%w: delivery option=%s does not exist",
					inErrors.ErrInvalidRequest,
					*param.DeliveryOptionID,
				)
			}
			if err != nil {
				return fmt.Errorf("failed finding delivery option with error=%w", err)
			}
			params.DeliveryOptionID = *param.DeliveryOptionID
		}

		item, err = q.UpdateCartItem(c, params)
		if repository.IsCheckViolation(err) {
			return fmt.Errorf("%w: quantity must be at least 1", inErrors.ErrInvalidRequest)
		}
		if err != nil {
			return fmt.Errorf("failed updating cart item with error=%w", err)
		}
		return nil
	})
	if err != nil {
		err = fmt.Errorf("failed updating cart item with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.CartItem{}, err
	}
	logger.Info().Msg("updated cart item")

	return item.Response(), nil
}

func (svc *CartService) RemoveCartItem(c context.Context, productID uuid.UUID) error {
	c, span := otel.Tracer.Start(c, "CartService RemoveCartItem")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartService RemoveCartItem").
		Str(log.KeyProductID, productID.String()).
		Str(log.KeyProcess, "removing cart item in database").
		Logger()

	logger.Trace().Msg("removing cart item in database")
	_, err := svc.store.DeleteCartItemByProductId(c, productID)
	if errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf(
			"failed removing cart item of product=%s with error=%w",
			productID,
			inErrors.ErrCartItemNotFound,
		)
		inOtel.RecordError(err, span)
		logger.Info().Err(err).Msg(err.Error())
		return err
	}
	if err != nil {
		err = fmt.Errorf("failed removing cart item with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("removed cart item in database")

	return nil
}
