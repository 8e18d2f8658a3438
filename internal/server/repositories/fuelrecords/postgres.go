package fuelrecords

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

const fuelColumns = `id, ship_id, voyage_id, record_date, fuel_type, quantity, unit_price, total_cost, supplier, port, remarks, created_at, updated_at`

func scanFuelRecord(row interface{ Scan(...any) error }) (*models.FuelRecord, error) {
	fr := &models.FuelRecord{}
	err := row.Scan(&fr.ID, &fr.ShipID, &fr.VoyageID, &fr.RecordDate, &fr.FuelType,
		&fr.Quantity, &fr.UnitPrice, &fr.TotalCost, &fr.Supplier, &fr.Port, &fr.Remarks,
		&fr.CreatedAt, &fr.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return fr, nil
}

func (r *PostgresRepository) Create(ctx context.Context, record *models.FuelRecord) (*models.FuelRecord, error) {

	query :=
		`INSERT INTO fuel_records (ship_id, voyage_id, record_date, fuel_type, quantity,
		                           unit_price, total_cost, supplier, port, remarks)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		record.ShipID, record.VoyageID, record.RecordDate, record.FuelType, record.Quantity,
		record.UnitPrice, record.TotalCost, record.Supplier, record.Port, record.Remarks).
		Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return record, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.FuelRecord, error) {
	query := `SELECT ` + fuelColumns + ` FROM fuel_records WHERE id = $1`
	return scanFuelRecord(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) Update(ctx context.Context, record *models.FuelRecord) error {
	query :=
		`UPDATE fuel_records
		 SET ship_id = $2, voyage_id = $3, record_date = $4, fuel_type = $5, quantity = $6,
		     unit_price = $7, total_cost = $8, supplier = $9, port = $10, remarks = $11,
		     updated_at = now()
		 WHERE id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query,
		record.ID, record.ShipID, record.VoyageID, record.RecordDate, record.FuelType,
		record.Quantity, record.UnitPrice, record.TotalCost, record.Supplier, record.Port,
		record.Remarks); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM fuel_records WHERE id = $1`, id); err != nil {
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

	res, err := r.db.ExecContext(ctx, `DELETE FROM fuel_records WHERE id IN (`+strings.Join(placeholders, ", ")+`)`, args...)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) Page(ctx context.Context, offset, limit int, f PageFilter) (*models.Page[models.FuelRecord], error) {

	where := []string{"TRUE"}
	args := []any{}

	if f.ShipID != nil {
		args = append(args, *f.ShipID)
		where = append(where, fmt.Sprintf("ship_id = $%d", len(args)))
	}
	if f.VoyageID != nil {
		args = append(args, *f.VoyageID)
		where = append(where, fmt.Sprintf("voyage_id = $%d", len(args)))
	}
	if f.From != nil {
		args = append(args, *f.From)
		where = append(where, fmt.Sprintf("record_date >= $%d", len(args)))
	}
	if f.To != nil {
		args = append(args, *f.To)
		where = append(where, fmt.Sprintf("record_date <= $%d", len(args)))
	}

	cond := strings.Join(where, " AND ")

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM fuel_records WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT `+fuelColumns+` FROM fuel_records WHERE `+cond+
		` ORDER BY record_date DESC NULLS LAST, id DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	page := &models.Page[models.FuelRecord]{Total: total, Items: []models.FuelRecord{}}
	for rows.Next() {
		fr, err := scanFuelRecord(rows)
		if err != nil {
			return nil, err
		}
		page.Items = append(page.Items, *fr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return page, nil
}

func (r *PostgresRepository) Summary(ctx context.Context, shipID int64) (*CostSummary, error) {
	query :=
		`SELECT COALESCE(SUM(quantity), 0), COALESCE(SUM(total_cost), 0)
		 FROM fuel_records
		 WHERE ship_id = $1
		 `

	s := &CostSummary{ShipID: shipID}
	if err := r.db.QueryRowContext(ctx, query, shipID).Scan(&s.TotalQuantity, &s.TotalCost); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}
