package repository

import (
	"context"

	"github.com/google/uuid"
)

type Querier interface {
	CountProducts(ctx context.Context) (int64, error)
	FindProducts(ctx context.Context) ([]Product, error)
	SearchProducts(ctx context.Context, search string) ([]Product, error)
	FindProductById(ctx context.Context, id uuid.UUID) (Product, error)
	FindProductsByIds(ctx context.Context, ids []uuid.UUID) ([]Product, error)
	InsertProduct(ctx context.Context, arg InsertProductParams) (Product, error)
	UpdateProduct(ctx context.Context, arg UpdateProductParams) (Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) (Product, error)
	DeleteAllProducts(ctx context.Context) (int64, error)
	CreateProducts(ctx context.Context, arg []CreateProductsParams) (int64, error)

	FindDeliveryOptions(ctx context.Context) ([]DeliveryOption, error)
	FindDeliveryOptionById(ctx context.Context, id string) (DeliveryOption, error)
	InsertDeliveryOption(ctx context.Context, arg InsertDeliveryOptionParams) (DeliveryOption, error)
	UpdateDeliveryOption(ctx context.Context, arg UpdateDeliveryOptionParams) (DeliveryOption, error)
	DeleteDeliveryOption(ctx context.Context, id string) (DeliveryOption, error)
	DeleteAllDeliveryOptions(ctx context.Context) (int64, error)
	CreateDeliveryOptions(ctx context.Context, arg []CreateDeliveryOptionsParams) (int64, error)

	FindCartItems(ctx context.Context) ([]CartItem, error)
	FindCartItemByProductId(ctx context.Context, productID uuid.UUID) (CartItem, error)
	UpsertCartItem(ctx context.Context, arg UpsertCartItemParams) (CartItem, error)
	UpdateCartItem(ctx context.Context, arg UpdateCartItemParams) (CartItem, error)
	DeleteCartItemByProductId(ctx context.Context, productID uuid.UUID) (CartItem, error)
	DeleteAllCartItems(ctx context.Context) (int64, error)
	CreateCartItems(ctx context.Context, arg []CreateCartItemsParams) (int64, error)

	FindOrders(ctx context.Context) ([]Order, error)
	FindOrderById(ctx context.Context, id uuid.UUID) (Order, error)
	InsertOrder(ctx context.Context, arg InsertOrderParams) (Order, error)
	DeleteAllOrders(ctx context.Context) (int64, error)
	CreateOrders(ctx context.Context, arg []CreateOrdersParams) (int64, error)
}

var _ Querier = (*Queries)(nil)
