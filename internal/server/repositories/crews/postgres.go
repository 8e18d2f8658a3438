package crews

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

const crewColumns = `id, ship_id, name, position, phone, cert_no, status, remarks, created_at, updated_at`

func scanCrew(row interface{ Scan(...any) error }) (*models.Crew, error) {
	c := &models.Crew{}
	err := row.Scan(&c.ID, &c.ShipID, &c.Name, &c.Position, &c.Phone, &c.CertNo,
		&c.Status, &c.Remarks, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, crew *models.Crew) (*models.Crew, error) {

	query :=
		`INSERT INTO crews (ship_id, name, position, phone, cert_no, status, remarks)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		crew.ShipID, crew.Name, crew.Position, crew.Phone, crew.CertNo, crew.Status, crew.Remarks).
		Scan(&crew.ID, &crew.CreatedAt, &crew.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return crew, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Crew, error) {
	query := `SELECT ` + crewColumns + ` FROM crews WHERE id = $1`
	return scanCrew(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) Update(ctx context.Context, crew *models.Crew) error {
	query :=
		`UPDATE crews
		 SET ship_id = $2, name = $3, position = $4, phone = $5, cert_no = $6,
		     status = $7, remarks = $8, updated_at = now()
		 WHERE id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query,
		crew.ID, crew.ShipID, crew.Name, crew.Position, crew.Phone, crew.CertNo,
		crew.Status, crew.Remarks); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM crews WHERE id = $1`, id); err != nil {
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

	res, err := r.db.ExecContext(ctx, `DELETE FROM crews WHERE id IN (`+strings.Join(placeholders, ", ")+`)`, args...)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) Page(ctx context.Context, offset, limit int, f PageFilter) (*models.Page[models.Crew], error) {

	where := []string{"TRUE"}
	args := []any{}

	if f.ShipID != nil {
		args = append(args, *f.ShipID)
		where = append(where, fmt.Sprintf("ship_id = $%d", len(args)))
	}
	if f.NameLike != "" {
		args = append(args, "%"+f.NameLike+"%")
		where = append(where, fmt.Sprintf("name LIKE $%d", len(args)))
	}
	if f.Position != "" {
		args = append(args, f.Position)
		where = append(where, fmt.Sprintf("position = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}

	cond := strings.Join(where, " AND ")

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM crews WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT `+crewColumns+` FROM crews WHERE `+cond+
		` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	page := &models.Page[models.Crew]{Total: total, Items: []models.Crew{}}
	for rows.Next() {
		c, err := scanCrew(rows)
		if err != nil {
			return nil, err
		}
		page.Items = append(page.Items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return page, nil
}

func (r *PostgresRepository) Unassign(ctx context.Context, shipID int64) error {
	query := `UPDATE crews SET ship_id = NULL, updated_at = now() WHERE ship_id = $1`
	if _, err := r.db.ExecContext(ctx, query, shipID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
