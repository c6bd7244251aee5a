package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/Alturino/storefront/internal/cache"
	inErrors "github.com/Alturino/storefront/internal/errors"
	"github.com/Alturino/storefront/internal/log"
	inOtel "github.com/Alturino/storefront/internal/otel"
	"github.com/Alturino/storefront/internal/repository"
	"github.com/Alturino/storefront/product/internal/otel"
	"github.com/Alturino/storefront/product/pkg/request"
	"github.com/Alturino/storefront/product/pkg/response"
)

type ProductService struct {
	store repository.Store
	cache cache.ProductCache
}

func NewProductService(store repository.Store, productCache cache.ProductCache) *ProductService {
	return &ProductService{store: store, cache: productCache}
}

func (svc *ProductService) FindProducts(
	c context.Context,
	param request.FindProducts,
) ([]response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService FindProducts")
	defer span.End()

	search := strings.TrimSpace(param.Search)
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService FindProducts").
		Str(log.KeySearch, search).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding products in database").Logger()
	logger.Trace().Msg("finding products in database")
	span.AddEvent("finding products in database")
	var products []repository.Product
	var err error
	if search == "" {
		products, err = svc.store.FindProducts(c)
	} else {
		products, err = svc.store.SearchProducts(c, search)
	}
	if err != nil {
		err = fmt.Errorf("failed to get products from database with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	span.AddEvent("found products in database")
	logger.Info().Int("count", len(products)).Msg("found products in database")

	result := make([]response.Product, 0, len(products))
	for _, p := range products {
		result = append(result, p.Response())
	}
	return result, nil
}

func (svc *ProductService) FindProductById(
	c context.Context,
	id uuid.UUID,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService FindProductById")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService FindProductById").
		Str(log.KeyProductID, id.String()).
		Str(log.KeyCacheKey, cache.ProductKey(id)).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding product in cache").Logger()
	logger.Trace().Msg("finding product in cache")
	product, err := svc.cache.Get(c, id)
	if err == nil {
		span.AddEvent("found product in cache")
		logger.Debug().Msg("found product in cache")
		return product, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		logger.Warn().Err(err).Msg("failed reading product from cache, falling back to database")
	}

	logger = logger.With().Str(log.KeyProcess, "finding product in database").Logger()
	logger.Trace().Msg("finding product in database")
	span.AddEvent("finding product in database")
	row, err := svc.store.FindProductById(c, id)
	if errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("failed finding product=%s with error=%w", id, inErrors.ErrProductNotFound)
		inOtel.RecordError(err, span)
		logger.Info().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	if err != nil {
		err = fmt.Errorf("failed to find product in database with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	product = row.Response()
	span.AddEvent("found product in database")
	logger.Info().Msg("found product in database")

	logger = logger.With().Str(log.KeyProcess, "inserting product to cache").Logger()
	if err = svc.cache.Set(c, product); err != nil {
		logger.Warn().Err(err).Msg("failed inserting product to cache")
	}

	return product, nil
}

func (svc *ProductService) InsertProduct(
	c context.Context,
	param request.Product,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService InsertProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService InsertProduct").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "inserting product to database").Logger()
	logger.Trace().Msg("inserting product to database")
	span.AddEvent("inserting product to database")
	product, err := svc.store.InsertProduct(c, repository.InsertProductParams{
		Name:        param.Name,
		Image:       param.Image,
		Category:    param.Category,
		PriceCents:  param.PriceCents,
		RatingStars: param.Rating.Stars,
		RatingCount: param.Rating.Count,
		Keywords:    keywords(param.Keywords),
	})
	if err != nil {
		err = fmt.Errorf("failed to insert product with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	span.AddEvent("inserted product to database")
	logger = logger.With().Str(log.KeyProductID, product.ID.String()).Logger()
	logger.Info().Msg("inserted product to database")

	return product.Response(), nil
}

func (svc *ProductService) UpdateProduct(
	c context.Context,
	id uuid.UUID,
	param request.Product,
) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "ProductService UpdateProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService UpdateProduct").
		Str(log.KeyProductID, id.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "updating product to database").Logger()
	logger.Trace().Msg("updating product to database")
	span.AddEvent("updating product to database")
	product, err := svc.store.UpdateProduct(c, repository.UpdateProductParams{
		ID:          id,
		Name:        param.Name,
		Image:       param.Image,
		Category:    param.Category,
		PriceCents:  param.PriceCents,
		RatingStars: param.Rating.Stars,
		RatingCount: param.Rating.Count,
		Keywords:    keywords(param.Keywords),
	})
	if errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("failed updating product=%s with error=%w", id, inErrors.ErrProductNotFound)
		inOtel.RecordError(err, span)
		logger.Info().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	if err != nil {
		err = fmt.Errorf("failed to update product with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	span.AddEvent("updated product to database")
	logger.Info().Msg("updated product to database")

	logger = logger.With().Str(log.KeyProcess, "removing product in cache").Logger()
	if err = svc.cache.Delete(c, id); err != nil {
		logger.Warn().Err(err).Msg("failed removing stale product in cache")
	}

	return product.Response(), nil
}

func (svc *ProductService) RemoveProduct(c context.Context, id uuid.UUID) error {
	c, span := otel.Tracer.Start(c, "ProductService RemoveProduct")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "ProductService RemoveProduct").
		Str(log.KeyProductID, id.String()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "removing product in database").Logger()
	logger.Trace().Msg("removing product in database")
	span.AddEvent("removing product in database")
	_, err := svc.store.DeleteProduct(c, id)
	if errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("failed removing product=%s with error=%w", id, inErrors.ErrProductNotFound)
		inOtel.RecordError(err, span)
		logger.Info().Err(err).Msg(err.Error())
		return err
	}
	if err != nil {
		err = fmt.Errorf("failed to remove product in database with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	span.AddEvent("removed product in database")
	logger.Info().Msg("removed product in database")

	logger = logger.With().Str(log.KeyProcess, "removing product in cache").Logger()
	if err = svc.cache.Delete(c, id); err != nil {
		logger.Warn().Err(err).Msg("failed removing product in cache")
	}

	return nil
}

func keywords(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
