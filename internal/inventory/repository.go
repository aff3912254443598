package inventory

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wheels-hub/wheels-hub/internal/shared"
)

// Repository is the persistence surface for inventory items.
type Repository interface {
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id int64) (Item, error)
	Insert(ctx context.Context, in CreateInput) (Item, error)
	UpdateStock(ctx context.Context, id int64, quantity int) (Item, error)
	ResetAllStock(ctx context.Context) (int64, error)
}

// PGRepository implements Repository against Postgres.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewPGRepository constructs a PGRepository.
func NewPGRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

const itemColumns = `id, name, category, price, stock_quantity, reorder_level, description, image_url, created_at, updated_at`

func (r *PGRepository) List(ctx context.Context) ([]Item, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+itemColumns+`
		FROM inventory_items
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PGRepository) Get(ctx context.Context, id int64) (Item, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+itemColumns+`
		FROM inventory_items
		WHERE id = $1`, id)
	item, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Item{}, shared.ErrNotFound
	}
	return item, err
}

func (r *PGRepository) Insert(ctx context.Context, in CreateInput) (Item, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO inventory_items (name, category, price, stock_quantity, reorder_level, description, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+itemColumns,
		in.Name, in.Category, in.Price, in.StockQuantity, in.ReorderLevel, in.Description, in.ImageURL)
	return scanItem(row)
}

func (r *PGRepository) UpdateStock(ctx context.Context, id int64, quantity int) (Item, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE inventory_items
		SET stock_quantity = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+itemColumns, id, quantity)
	item, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Item{}, shared.ErrNotFound
	}
	return item, err
}

func (r *PGRepository) ResetAllStock(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE inventory_items
		SET stock_quantity = 0, updated_at = now()
		WHERE stock_quantity <> 0`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (Item, error) {
	var item Item
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Category,
		&item.Price,
		&item.StockQuantity,
		&item.ReorderLevel,
		&item.Description,
		&item.ImageURL,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	return item, err
}
