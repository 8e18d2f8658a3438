package maintenances

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

const maintenanceColumns = `id, ship_id, title, description, cost, start_date, end_date, status, created_at, updated_at`

func scanMaintenance(row interface{ Scan(...any) error }) (*models.MaintenanceRecord, error) {
	m := &models.MaintenanceRecord{}
	err := row.Scan(&m.ID, &m.ShipID, &m.Title, &m.Description, &m.Cost,
		&m.StartDate, &m.EndDate, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) Create(ctx context.Context, record *models.MaintenanceRecord) (*models.MaintenanceRecord, error) {

	query :=
		`INSERT INTO maintenance_records (ship_id, title, description, cost, start_date, end_date, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		record.ShipID, record.Title, record.Description, record.Cost,
		record.StartDate, record.EndDate, record.Status).
		Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return record, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.MaintenanceRecord, error) {
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_records WHERE id = $1`
	return scanMaintenance(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) Update(ctx context.Context, record *models.MaintenanceRecord) error {
	query :=
		`UPDATE maintenance_records
		 SET ship_id = $2, title = $3, description = $4, cost = $5,
		     start_date = $6, end_date = $7, status = $8, updated_at = now()
		 WHERE id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query,
		record.ID, record.ShipID, record.Title, record.Description, record.Cost,
		record.StartDate, record.EndDate, record.Status); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM maintenance_records WHERE id = $1`, id); err != nil {
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

	res, err := r.db.ExecContext(ctx, `DELETE FROM maintenance_records WHERE id IN (`+strings.Join(placeholders, ", ")+`)`, args...)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) Page(ctx context.Context, offset, limit int, f PageFilter) (*models.Page[models.MaintenanceRecord], error) {

	where := []string{"TRUE"}
	args := []any{}

	if f.ShipID != nil {
		args = append(args, *f.ShipID)
		where = append(where, fmt.Sprintf("ship_id = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}

	cond := strings.Join(where, " AND ")

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM maintenance_records WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT `+maintenanceColumns+` FROM maintenance_records WHERE `+cond+
		` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	page := &models.Page[models.MaintenanceRecord]{Total: total, Items: []models.MaintenanceRecord{}}
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, err
		}
		page.Items = append(page.Items, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return page, nil
}
