package certificates

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

const certColumns = `id, ship_id, certificate_name, certificate_no, issuing_authority, issue_date, expiry_date, status, attachment_url, remarks, created_at, updated_at`

func scanCertificate(row interface{ Scan(...any) error }) (*models.ShipCertificate, error) {
	c := &models.ShipCertificate{}
	var status string
	err := row.Scan(&c.ID, &c.ShipID, &c.CertificateName, &c.CertificateNo, &c.IssuingAuthority,
		&c.IssueDate, &c.ExpiryDate, &status, &c.AttachmentURL, &c.Remarks,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	c.Status = models.CertStatus(status)
	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, cert *models.ShipCertificate) (*models.ShipCertificate, error) {

	query :=
		`INSERT INTO ship_certificates (ship_id, certificate_name, certificate_no, issuing_authority,
		                                issue_date, expiry_date, status, attachment_url, remarks)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		cert.ShipID, cert.CertificateName, cert.CertificateNo, cert.IssuingAuthority,
		cert.IssueDate, cert.ExpiryDate, string(cert.Status), cert.AttachmentURL, cert.Remarks).
		Scan(&cert.ID, &cert.CreatedAt, &cert.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return cert, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.ShipCertificate, error) {
	query := `SELECT ` + certColumns + ` FROM ship_certificates WHERE id = $1`
	return scanCertificate(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) Update(ctx context.Context, cert *models.ShipCertificate) error {
	query :=
		`UPDATE ship_certificates
		 SET ship_id = $2, certificate_name = $3, certificate_no = $4, issuing_authority = $5,
		     issue_date = $6, expiry_date = $7, status = $8, attachment_url = $9, remarks = $10,
		     updated_at = now()
		 WHERE id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query,
		cert.ID, cert.ShipID, cert.CertificateName, cert.CertificateNo, cert.IssuingAuthority,
		cert.IssueDate, cert.ExpiryDate, string(cert.Status), cert.AttachmentURL, cert.Remarks); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM ship_certificates WHERE id = $1`, id); err != nil {
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

	res, err := r.db.ExecContext(ctx, `DELETE FROM ship_certificates WHERE id IN (`+strings.Join(placeholders, ", ")+`)`, args...)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) Page(ctx context.Context, offset, limit int, f PageFilter) (*models.Page[models.ShipCertificate], error) {

	where := []string{"TRUE"}
	args := []any{}

	if f.ShipID != nil {
		args = append(args, *f.ShipID)
		where = append(where, fmt.Sprintf("ship_id = $%d", len(args)))
	}
	if f.NameLike != "" {
		args = append(args, "%"+f.NameLike+"%")
		where = append(where, fmt.Sprintf("certificate_name LIKE $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, string(f.Status))
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}

	cond := strings.Join(where, " AND ")

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ship_certificates WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT `+certColumns+` FROM ship_certificates WHERE `+cond+
		` ORDER BY expiry_date ASC NULLS LAST, id LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	page := &models.Page[models.ShipCertificate]{Total: total, Items: []models.ShipCertificate{}}
	for rows.Next() {
		c, err := scanCertificate(rows)
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

func (r *PostgresRepository) ListAll(ctx context.Context) ([]models.ShipCertificate, error) {
	query := `SELECT ` + certColumns + ` FROM ship_certificates ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items := []models.ShipCertificate{}
	for rows.Next() {
		c, err := scanCertificate(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return items, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id int64, status models.CertStatus) error {
	query := `UPDATE ship_certificates SET status = $2, updated_at = now() WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, string(status)); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) CountByStatus(ctx context.Context) (map[models.CertStatus]int64, error) {
	query := `SELECT status, COUNT(*) FROM ship_certificates GROUP BY status`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	counts := map[models.CertStatus]int64{}
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		counts[models.CertStatus(status)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return counts, nil
}
