package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, order_time_ms, total_cost_cents, products, created_at, updated_at`

func scanOrder(row pgx.Row) (Order, error) {
	var i Order
	err := row.Scan(
		&i.ID,
		&i.OrderTimeMs,
		&i.TotalCostCents,
		&i.Products,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const findOrders = `SELECT ` + orderColumns + ` FROM orders ORDER BY order_time_ms DESC, created_at DESC`

func (q *Queries) FindOrders(ctx context.Context) ([]Order, error) {
	rows, err := q.db.Query(ctx, findOrders)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Order{}
	for rows.Next() {
		i, err := scanOrder(rows)
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

const findOrderById = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

func (q *Queries) FindOrderById(ctx context.Context, id uuid.UUID) (Order, error) {
	return scanOrder(q.db.QueryRow(ctx, findOrderById, id))
}

const insertOrder = `INSERT INTO orders (id, order_time_ms, total_cost_cents, products)
VALUES ($1, $2, $3, $4)
RETURNING ` + orderColumns

type InsertOrderParams struct {
	ID             uuid.UUID `json:"id"`
	OrderTimeMs    int64     `json:"order_time_ms"`
	TotalCostCents int64     `json:"total_cost_cents"`
	Products       []byte    `json:"products"`
}

func (q *Queries) InsertOrder(ctx context.Context, arg InsertOrderParams) (Order, error) {
	row := q.db.QueryRow(ctx, insertOrder,
		arg.ID,
		arg.OrderTimeMs,
		arg.TotalCostCents,
		arg.Products,
	)
	return scanOrder(row)
}

const deleteAllOrders = `DELETE FROM orders`

func (q *Queries) DeleteAllOrders(ctx context.Context) (int64, error) {
	result, err := q.db.Exec(ctx, deleteAllOrders)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

type CreateOrdersParams struct {
	ID             uuid.UUID `json:"id"`
	OrderTimeMs    int64     `json:"order_time_ms"`
	TotalCostCents int64     `json:"total_cost_cents"`
	Products       []byte    `json:"products"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (q *Queries) CreateOrders(ctx context.Context, arg []CreateOrdersParams) (int64, error) {
	return q.db.CopyFrom(
		ctx,
		pgx.Identifier{"orders"},
		[]string{"id", "order_time_ms", "total_cost_cents", "products", "created_at", "updated_at"},
		pgx.CopyFromSlice(len(arg), func(i int) ([]any, error) {
			return []any{
				arg[i].ID,
				arg[i].OrderTimeMs,
				arg[i].TotalCostCents,
				arg[i].Products,
				arg[i].CreatedAt,
				arg[i].UpdatedAt,
			}, nil
		}),
	)
}
