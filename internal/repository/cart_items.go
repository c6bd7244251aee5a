package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const cartItemColumns = `id, product_id, quantity, delivery_option_id, created_at, updated_at`

func scanCartItem(row pgx.Row) (CartItem, error) {
	var i CartItem
	err := row.Scan(
		&i.ID,
		&i.ProductID,
		&i.Quantity,
		&i.DeliveryOptionID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const findCartItems = `SELECT ` + cartItemColumns + ` FROM cart_items ORDER BY created_at, id`

func (q *Queries) FindCartItems(ctx context.Context) ([]CartItem, error) {
	rows, err := q.db.Query(ctx, findCartItems)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []CartItem{}
	for rows.Next() {
		i, err := scanCartItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const findCartItemByProductId = `SELECT ` + cartItemColumns + ` FROM cart_items WHERE product_id = $1`

func (q *Queries) FindCartItemByProductId(
	ctx context.Context,
	productID uuid.UUID,
) (CartItem, error) {
	return scanCartItem(q.db.QueryRow(ctx, findCartItemByProductId, productID))
}

// Adding a product already in the cart increments its quantity.
const upsertCartItem = `INSERT INTO cart_items (product_id, quantity, delivery_option_id)
VALUES ($1, $2, $3)
ON CONFLICT (product_id) DO UPDATE
SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = now()
RETURNING ` + cartItemColumns

type UpsertCartItemParams struct {
	ProductID        uuid.UUID `json:"product_id"`
	Quantity         int32     `json:"quantity"`
	DeliveryOptionID string    `json:"delivery_option_id"`
}

func (q *Queries) UpsertCartItem(ctx context.Context, arg UpsertCartItemParams) (CartItem, error) {
	row := q.db.QueryRow(ctx, upsertCartItem, arg.ProductID, arg.Quantity, arg.DeliveryOptionID)
	return scanCartItem(row)
}

const updateCartItem = `UPDATE cart_items
SET quantity = $2, delivery_option_id = $3, updated_at = now()
WHERE product_id = $1
RETURNING ` + cartItemColumns

type UpdateCartItemParams struct {
	ProductID        uuid.UUID `json:"product_id"`
	Quantity         int32     `json:"quantity"`
	DeliveryOptionID string    `json:"delivery_option_id"`
}

func (q *Queries) UpdateCartItem(ctx context.Context, arg UpdateCartItemParams) (CartItem, error) {
	row := q.db.QueryRow(ctx, updateCartItem, arg.ProductID, arg.Quantity, arg.DeliveryOptionID)
	return scanCartItem(row)
}

const deleteCartItemByProductId = `DELETE FROM cart_items WHERE product_id = $1 RETURNING ` + cartItemColumns

func (q *Queries) DeleteCartItemByProductId(
	ctx context.Context,
	productID uuid.UUID,
) (CartItem, error) {
	return scanCartItem(q.db.QueryRow(ctx, deleteCartItemByProductId, productID))
}

const deleteAllCartItems = `DELETE FROM cart_items`

func (q *Queries) DeleteAllCartItems(ctx context.Context) (int64, error) {
	result, err := q.db.Exec(ctx, deleteAllCartItems)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

type CreateCartItemsParams struct {
	ID               uuid.UUID `json:"id"`
	ProductID        uuid.UUID `json:"product_id"`
	Quantity         int32     `json:"quantity"`
	DeliveryOptionID string    `json:"delivery_option_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (q *Queries) CreateCartItems(ctx context.Context, arg []CreateCartItemsParams) (int64, error) {
	return q.db.CopyFrom(
		ctx,
		pgx.Identifier{"cart_items"},
		[]string{"id", "product_id", "quantity", "delivery_option_id", "created_at", "updated_at"},
		pgx.CopyFromSlice(len(arg), func(i int) ([]any, error) {
			return []any{
				arg[i].ID,
				arg[i].ProductID,
				arg[i].Quantity,
				arg[i].DeliveryOptionID,
				arg[i].CreatedAt,
				arg[i].UpdatedAt,
			}, nil
		}),
	)
}
