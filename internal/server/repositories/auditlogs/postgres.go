package auditlogs

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

const logColumns = `id, user_id, username, module, operation, operation_desc, method, request_url, request_params, response_result, ip_address, user_agent, execution_time, error_msg, created_at`

func scanLog(row interface{ Scan(...any) error }) (*models.OperationLog, error) {
	l := &models.OperationLog{}
	err := row.Scan(&l.ID, &l.UserID, &l.Username, &l.Module, &l.Operation, &l.OperationDesc,
		&l.Method, &l.RequestURL, &l.RequestParams, &l.ResponseResult, &l.IPAddress,
		&l.UserAgent, &l.ExecutionTime, &l.ErrorMsg, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return l, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, entry *models.OperationLog) error {

	query :=
		`INSERT INTO operation_logs (user_id, username, module, operation, operation_desc,
		                             method, request_url, request_params, response_result,
		                             ip_address, user_agent, execution_time, error_msg)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		entry.UserID, entry.Username, entry.Module, entry.Operation, entry.OperationDesc,
		entry.Method, entry.RequestURL, entry.RequestParams, entry.ResponseResult,
		entry.IPAddress, entry.UserAgent, entry.ExecutionTime, entry.ErrorMsg).
		Scan(&entry.ID, &entry.CreatedAt)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.OperationLog, error) {
	query := `SELECT ` + logColumns + ` FROM operation_logs WHERE id = $1`
	return scanLog(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) Page(ctx context.Context, offset, limit int, f PageFilter) (*models.Page[models.OperationLog], error) {

	where := []string{"TRUE"}
	args := []any{}

	if f.UsernameLike != "" {
		args = append(args, "%"+f.UsernameLike+"%")
		where = append(where, fmt.Sprintf("username LIKE $%d", len(args)))
	}
	if f.Module != "" {
		args = append(args, f.Module)
		where = append(where, fmt.Sprintf("module = $%d", len(args)))
	}
	if f.Operation != "" {
		args = append(args, f.Operation)
		where = append(where, fmt.Sprintf("operation = $%d", len(args)))
	}

	cond := strings.Join(where, " AND ")

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM operation_logs WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT `+logColumns+` FROM operation_logs WHERE `+cond+
		` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	page := &models.Page[models.OperationLog]{Total: total, Items: []models.OperationLog{}}
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		page.Items = append(page.Items, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return page, nil
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

	res, err := r.db.ExecContext(ctx, `DELETE FROM operation_logs WHERE id IN (`+strings.Join(placeholders, ", ")+`)`, args...)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	query := `DELETE FROM operation_logs WHERE created_at < now() - make_interval(days => $1)`

	res, err := r.db.ExecContext(ctx, query, days)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
