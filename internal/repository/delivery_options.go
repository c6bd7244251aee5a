package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

const deliveryOptionColumns = `id, label, delivery_days, price_cents, created_at, updated_at`

func scanDeliveryOption(row pgx.Row) (DeliveryOption, error) {
	var i DeliveryOption
	err := row.Scan(
		&i.ID,
		&i.Label,
		&i.DeliveryDays,
		&i.PriceCents,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const findDeliveryOptions = `SELECT ` + deliveryOptionColumns + ` FROM delivery_options ORDER BY created_at, id`

func (q *Queries) FindDeliveryOptions(ctx context.Context) ([]DeliveryOption, error) {
	rows, err := q.db.Query(ctx, findDeliveryOptions)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []DeliveryOption{}
	for rows.Next() {
		i, err := scanDeliveryOption(rows)
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

const findDeliveryOptionById = `SELECT ` + deliveryOptionColumns + ` FROM delivery_options WHERE id = $1`

func (q *Queries) FindDeliveryOptionById(ctx context.Context, id string) (DeliveryOption, error) {
	return scanDeliveryOption(q.db.QueryRow(ctx, findDeliveryOptionById, id))
}

const insertDeliveryOption = `INSERT INTO delivery_options (id, label, delivery_days, price_cents)
VALUES ($1, $2, $3, $4)
RETURNING ` + deliveryOptionColumns

type InsertDeliveryOptionParams struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	DeliveryDays int32  `json:"delivery_days"`
	PriceCents   int64  `json:"price_cents"`
}

func (q *Queries) InsertDeliveryOption(
	ctx context.Context,
	arg InsertDeliveryOptionParams,
) (DeliveryOption, error) {
	row := q.db.QueryRow(ctx, insertDeliveryOption,
		arg.ID,
		arg.Label,
		arg.DeliveryDays,
		arg.PriceCents,
	)
	return scanDeliveryOption(row)
}

const updateDeliveryOption = `UPDATE delivery_options
SET label = $2, delivery_days = $3, price_cents = $4, updated_at = now()
WHERE id = $1
RETURNING ` + deliveryOptionColumns

type UpdateDeliveryOptionParams struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	DeliveryDays int32  `json:"delivery_days"`
	PriceCents   int64  `json:"price_cents"`
}

func (q *Queries) UpdateDeliveryOption(
	ctx context.Context,
	arg UpdateDeliveryOptionParams,
) (DeliveryOption, error) {
	row := q.db.QueryRow(ctx, updateDeliveryOption,
		arg.ID,
		arg.Label,
		arg.DeliveryDays,
		arg.PriceCents,
	)
	return scanDeliveryOption(row)
}

const deleteDeliveryOption = `DELETE FROM delivery_options WHERE id = $1 RETURNING ` + deliveryOptionColumns

func (q *Queries) DeleteDeliveryOption(ctx context.Context, id string) (DeliveryOption, error) {
	return scanDeliveryOption(q.db.QueryRow(ctx, deleteDeliveryOption, id))
}

const deleteAllDeliveryOptions = `DELETE FROM delivery_options`

func (q *Queries) DeleteAllDeliveryOptions(ctx context.Context) (int64, error) {
	result, err := q.db.Exec(ctx, deleteAllDeliveryOptions)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

type CreateDeliveryOptionsParams struct {
	ID           string    `json:"id"`
	Label        string    `json:"label"`
	DeliveryDays int32     `json:"delivery_days"`
	PriceCents   int64     `json:"price_cents"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (q *Queries) CreateDeliveryOptions(
	ctx context.Context,
	arg []CreateDeliveryOptionsParams,
) (int64, error) {
	return q.db.CopyFrom(
		ctx,
		pgx.Identifier{"delivery_options"},
		[]string{"id", "label", "delivery_days", "price_cents", "created_at", "updated_at"},
		pgx.CopyFromSlice(len(arg), func(i int) ([]any, error) {
			return []any{
				arg[i].ID,
				arg[i].Label,
				arg[i].DeliveryDays,
				arg[i].PriceCents,
				arg[i].CreatedAt,
				arg[i].UpdatedAt,
			}, nil
		}),
	)
}
