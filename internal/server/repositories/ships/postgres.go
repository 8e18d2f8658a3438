package ships

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

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

const shipColumns = `id, category_id, name, imo_number, flag, tonnage, build_date, status, remarks, created_at, updated_at`

func scanShip(row interface{ Scan(...any) error }) (*models.Ship, error) {
	s := &models.Ship{}
	err := row.Scan(&s.ID, &s.CategoryID, &s.Name, &s.IMONumber, &s.Flag, &s.Tonnage,
		&s.BuildDate, &s.Status, &s.Remarks, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) Create(ctx context.Context, ship *models.Ship) (*models.Ship, error) {

	query :=
		`INSERT INTO ships (category_id, name, imo_number, flag, tonnage, build_date, status, remarks)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		ship.CategoryID, ship.Name, ship.IMONumber, ship.Flag, ship.Tonnage,
		ship.BuildDate, ship.Status, ship.Remarks).
		Scan(&ship.ID, &ship.CreatedAt, &ship.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return ship, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Ship, error) {
	query := `SELECT ` + shipColumns + ` FROM ships WHERE id = $1`
	return scanShip(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) Update(ctx context.Context, ship *models.Ship) error {
	query :=
		`UPDATE ships
		 SET category_id = $2, name = $3, imo_number = $4, flag = $5, tonnage = $6,
		     build_date = $7, status = $8, remarks = $9, updated_at = now()
		 WHERE id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query,
		ship.ID, ship.CategoryID, ship.Name, ship.IMONumber, ship.Flag, ship.Tonnage,
		ship.BuildDate, ship.Status, ship.Remarks); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM ships WHERE id = $1`, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteBatch(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "$" + strconv.Itoa(i+1)
		args[i] = id
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM ships WHERE id IN (`+strings.Join(placeholders, ", ")+`)`, args...)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) Page(ctx context.Context, offset, limit int, f PageFilter) (*models.Page[models.Ship], error) {

	where := []string{"TRUE"}
	args := []any{}

	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		where = append(where, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if f.NameLike != "" {
		args = append(args, "%"+f.NameLike+"%")
		where = append(where, fmt.Sprintf("name LIKE $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}

	cond := strings.Join(where, " AND ")

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ships WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT `+shipColumns+` FROM ships WHERE `+cond+
		` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	page := &models.Page[models.Ship]{Total: total, Items: []models.Ship{}}
	for rows.Next() {
		s, err := scanShip(rows)
		if err != nil {
			return nil, err
		}
		page.Items = append(page.Items, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return page, nil
}
