package voyages

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

const voyageColumns = `id, ship_id, voyage_no, departure_port, arrival_port, departure_time, expected_arrival, actual_arrival, status, remarks, created_at, updated_at`

func scanVoyage(row interface{ Scan(...any) error }) (*models.Voyage, error) {
	v := &models.Voyage{}
	err := row.Scan(&v.ID, &v.ShipID, &v.VoyageNo, &v.DeparturePort, &v.ArrivalPort,
		&v.DepartureTime, &v.ExpectedArrival, &v.ActualArrival, &v.Status, &v.Remarks,
		&v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}

func (r *PostgresRepository) Create(ctx context.Context, voyage *models.Voyage) (*models.Voyage, error) {

	query :=
		`INSERT INTO voyages (ship_id, voyage_no, departure_port, arrival_port,
		                      departure_time, expected_arrival, actual_arrival, status, remarks)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		voyage.ShipID, voyage.VoyageNo, voyage.DeparturePort, voyage.ArrivalPort,
		voyage.DepartureTime, voyage.ExpectedArrival, voyage.ActualArrival,
		voyage.Status, voyage.Remarks).
		Scan(&voyage.ID, &voyage.CreatedAt, &voyage.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return voyage, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Voyage, error) {
	query := `SELECT ` + voyageColumns + ` FROM voyages WHERE id = $1`
	return scanVoyage(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) Update(ctx context.Context, voyage *models.Voyage) error {
	query :=
		`UPDATE voyages
		 SET ship_id = $2, voyage_no = $3, departure_port = $4, arrival_port = $5,
		     departure_time = $6, expected_arrival = $7, actual_arrival = $8,
		     status = $9, remarks = $10, updated_at = now()
		 WHERE id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query,
		voyage.ID, voyage.ShipID, voyage.VoyageNo, voyage.DeparturePort, voyage.ArrivalPort,
		voyage.DepartureTime, voyage.ExpectedArrival, voyage.ActualArrival,
		voyage.Status, voyage.Remarks); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM voyages WHERE id = $1`, id); err != nil {
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

	res, err := r.db.ExecContext(ctx, `DELETE FROM voyages WHERE id IN (`+strings.Join(placeholders, ", ")+`)`, args...)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) Page(ctx context.Context, offset, limit int, f PageFilter) (*models.Page[models.Voyage], error) {

	where := []string{"TRUE"}
	args := []any{}

	if f.ShipID != nil {
		args = append(args, *f.ShipID)
		where = append(where, fmt.Sprintf("ship_id = $%d", len(args)))
	}
	if f.VoyageNoLike != "" {
		args = append(args, "%"+f.VoyageNoLike+"%")
		where = append(where, fmt.Sprintf("voyage_no LIKE $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}

	cond := strings.Join(where, " AND ")

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM voyages WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT `+voyageColumns+` FROM voyages WHERE `+cond+
		` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	page := &models.Page[models.Voyage]{Total: total, Items: []models.Voyage{}}
	for rows.Next() {
		v, err := scanVoyage(rows)
		if err != nil {
			return nil, err
		}
		page.Items = append(page.Items, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return page, nil
}

func (r *PostgresRepository) Complete(ctx context.Context, id int64) error {
	query :=
		`UPDATE voyages
		 SET status = $2, actual_arrival = now(), updated_at = now()
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id, models.VoyageCompleted)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
