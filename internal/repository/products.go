package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const productColumns = `id, name, image, category, price_cents, rating_stars, rating_count, keywords, created_at, updated_at`

func scanProduct(row pgx.Row) (Product, error) {
	var i Product
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Image,
		&i.Category,
		&i.PriceCents,
		&i.RatingStars,
		&i.RatingCount,
		&i.Keywords,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func collectProducts(rows pgx.Rows) ([]Product, error) {
	defer rows.Close()
	items := []Product{}
	for rows.Next() {
		i, err := scanProduct(rows)
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

const countProducts = `SELECT count(*) FROM products`

func (q *Queries) CountProducts(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countProducts)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const findProducts = `SELECT ` + productColumns + ` FROM products ORDER BY created_at, id`

func (q *Queries) FindProducts(ctx context.Context) ([]Product, error) {
	rows, err := q.db.Query(ctx, findProducts)
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

const searchProducts = `SELECT ` + productColumns + ` FROM products
WHERE name ILIKE '%' || $1 || '%'
   OR EXISTS (SELECT 1 FROM unnest(keywords) AS keyword WHERE keyword ILIKE '%' || $1 || '%')
ORDER BY created_at, id`

func (q *Queries) SearchProducts(ctx context.Context, search string) ([]Product, error) {
	rows, err := q.db.Query(ctx, searchProducts, search)
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

const findProductById = `SELECT ` + productColumns + ` FROM products WHERE id = $1`

func (q *Queries) FindProductById(ctx context.Context, id uuid.UUID) (Product, error) {
	return scanProduct(q.db.QueryRow(ctx, findProductById, id))
}

const findProductsByIds = `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1::uuid[]) ORDER BY created_at, id`

func (q *Queries) FindProductsByIds(ctx context.Context, ids []uuid.UUID) ([]Product, error) {
	rows, err := q.db.Query(ctx, findProductsByIds, ids)
	if err != nil {
		return nil, err
	}
	return collectProducts(rows)
}

const insertProduct = `INSERT INTO products (name, image, category, price_cents, rating_stars, rating_count, keywords)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + productColumns

type InsertProductParams struct {
	Name        string   `json:"name"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	PriceCents  int64    `json:"price_cents"`
	RatingStars float64  `json:"rating_stars"`
	RatingCount int32    `json:"rating_count"`
	Keywords    []string `json:"keywords"`
}

func (q *Queries) InsertProduct(ctx context.Context, arg InsertProductParams) (Product, error) {
	row := q.db.QueryRow(ctx, insertProduct,
		arg.Name,
		arg.Image,
		arg.Category,
		arg.PriceCents,
		arg.RatingStars,
		arg.RatingCount,
		arg.Keywords,
	)
	return scanProduct(row)
}

const updateProduct = `UPDATE products
SET name = $2, image = $3, category = $4, price_cents = $5, rating_stars = $6, rating_count = $7, keywords = $8, updated_at = now()
WHERE id = $1
RETURNING ` + productColumns

type UpdateProductParams struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	PriceCents  int64     `json:"price_cents"`
	RatingStars float64   `json:"rating_stars"`
	RatingCount int32     `json:"rating_count"`
	Keywords    []string  `json:"keywords"`
}

func (q *Queries) UpdateProduct(ctx context.Context, arg UpdateProductParams) (Product, error) {
	row := q.db.QueryRow(ctx, updateProduct,
		arg.ID,
		arg.Name,
		arg.Image,
		arg.Category,
		arg.PriceCents,
		arg.RatingStars,
		arg.RatingCount,
		arg.Keywords,
	)
	return scanProduct(row)
}

const deleteProduct = `DELETE FROM products WHERE id = $1 RETURNING ` + productColumns

func (q *Queries) DeleteProduct(ctx context.Context, id uuid.UUID) (Product, error) {
	return scanProduct(q.db.QueryRow(ctx, deleteProduct, id))
}

const deleteAllProducts = `DELETE FROM products`

func (q *Queries) DeleteAllProducts(ctx context.Context) (int64, error) {
	result, err := q.db.Exec(ctx, deleteAllProducts)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

type CreateProductsParams struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	PriceCents  int64     `json:"price_cents"`
	RatingStars float64   `json:"rating_stars"`
	RatingCount int32     `json:"rating_count"`
	Keywords    []string  `json:"keywords"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateProducts bulk loads rows with COPY, keeping caller supplied ids and
// timestamps.
func (q *Queries) CreateProducts(ctx context.Context, arg []CreateProductsParams) (int64, error) {
	return q.db.CopyFrom(
		ctx,
		pgx.Identifier{"products"},
		[]string{
			"id",
			"name",
			"image",
			"category",
			"price_cents",
			"rating_stars",
			"rating_count",
			"keywords",
			"created_at",
			"updated_at",
		},
		pgx.CopyFromSlice(len(arg), func(i int) ([]any, error) {
			return []any{
				arg[i].ID,
				arg[i].Name,
				arg[i].Image,
				arg[i].Category,
				arg[i].PriceCents,
				arg[i].RatingStars,
				arg[i].RatingCount,
				arg[i].Keywords,
				arg[i].CreatedAt,
				arg[i].UpdatedAt,
			}, nil
		}),
	)
}
