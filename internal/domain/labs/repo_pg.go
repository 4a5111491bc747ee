package labs

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type categoryRepoPG struct{ pool *pgxpool.Pool }

func NewCategoryRepoPG(pool *pgxpool.Pool) CategoryRepository {
	return &categoryRepoPG{pool: pool}
}

const categoryCols = `id, name, code, description, active, created_at, updated_at`

func scanCategory(row pgx.Row) (*Category, error) {
	var cat Category
	err := row.Scan(&cat.ID, &cat.Name, &cat.Code, &cat.Description, &cat.Active,
		&cat.CreatedAt, &cat.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *categoryRepoPG) Create(ctx context.Context, cat *Category) error {
	cat.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO lab_category (id, name, code, description, active)
		VALUES ($1,$2,$3,$4,$5)`,
		cat.ID, cat.Name, cat.Code, cat.Description, cat.Active)
	return err
}

func (r *categoryRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	return scanCategory(r.pool.QueryRow(ctx, `SELECT `+categoryCols+` FROM lab_category WHERE id = $1`, id))
}

func (r *categoryRepoPG) Update(ctx context.Context, cat *Category) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE lab_category SET name=$2, code=$3, description=$4, active=$5, updated_at=NOW()
		WHERE id = $1`,
		cat.ID, cat.Name, cat.Code, cat.Description, cat.Active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *categoryRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM lab_category WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *categoryRepoPG) List(ctx context.Context, limit, offset int) ([]*Category, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM lab_category`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+categoryCols+` FROM lab_category
		ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Category
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, cat)
	}
	return items, total, rows.Err()
}
