package categories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dvesiz/Ship-Management-System/internal/common"
	"github.com/Dvesiz/Ship-Management-System/internal/dbx"
	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, category *models.ShipCategory) (*models.ShipCategory, error) {

	query :=
		`INSERT INTO ship_categories (name, description)
		 VALUES ($1, $2)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query, category.Name, category.Description).
		Scan(&category.ID, &category.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return category, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.ShipCategory, error) {
	query := `SELECT id, name, description, created_at FROM ship_categories WHERE id = $1`

	c := &models.ShipCategory{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) Update(ctx context.Context, category *models.ShipCategory) error {
	query := `UPDATE ship_categories SET name = $2, description = $3 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, category.ID, category.Name, category.Description); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM ship_categories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.ShipCategory, error) {
	query := `SELECT id, name, description, created_at FROM ship_categories ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items := []models.ShipCategory{}
	for rows.Next() {
		var c models.ShipCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return items, nil
}

func (r *PostgresRepository) CountShips(ctx context.Context, id int64) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ships WHERE category_id = $1`, id).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
