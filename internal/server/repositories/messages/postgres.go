package messages

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
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

// System messages carry sender_id 0, which joins to no user row.
const messageColumns = `m.id, m.sender_id, m.receiver_id, m.title, m.content, m.type, m.status,
	m.related_id, m.related_type, m.created_at, m.read_at,
	COALESCE(u.nickname, ''), COALESCE(u.avatar_url, '')`

func scanMessage(row interface{ Scan(...any) error }) (*models.Message, error) {
	m := &models.Message{}
	err := row.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Title, &m.Content, &m.Type, &m.Status,
		&m.RelatedID, &m.RelatedType, &m.CreatedAt, &m.ReadAt, &m.SenderName, &m.SenderAvatar)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if m.SenderID == models.SystemSenderID && m.SenderName == "" {
		m.SenderName = "system"
	}
	return m, nil
}

func (r *PostgresRepository) Create(ctx context.Context, msg *models.Message) (*models.Message, error) {

	query :=
		`INSERT INTO messages (sender_id, receiver_id, title, content, type, status, related_id, related_type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		msg.SenderID, msg.ReceiverID, msg.Title, msg.Content, msg.Type, msg.Status,
		msg.RelatedID, msg.RelatedType).
		Scan(&msg.ID, &msg.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return msg, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id, receiverID int64) (*models.Message, error) {
	query := `SELECT ` + messageColumns + `
		 FROM messages m
		 LEFT JOIN users u ON u.id = m.sender_id
		 WHERE m.id = $1 AND m.receiver_id = $2`

	return scanMessage(r.db.QueryRowContext(ctx, query, id, receiverID))
}

func (r *PostgresRepository) Page(ctx context.Context, offset, limit int, f PageFilter) (*models.Page[models.Message], error) {

	where := []string{"m.receiver_id = $1"}
	args := []any{f.ReceiverID}

	if f.Status != "" {
		args = append(args, f.Status)
		where = append(where, fmt.Sprintf("m.status = $%d", len(args)))
	}
	if f.Type != "" {
		args = append(args, f.Type)
		where = append(where, fmt.Sprintf("m.type = $%d", len(args)))
	}

	cond := strings.Join(where, " AND ")

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM messages m WHERE `+cond, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT `+messageColumns+`
		 FROM messages m
		 LEFT JOIN users u ON u.id = m.sender_id
		 WHERE `+cond+`
		 ORDER BY m.created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	page := &models.Page[models.Message]{Total: total, Items: []models.Message{}}
	for rows.Next() {
		m, err := scanMessage(rows)
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

func (r *PostgresRepository) MarkRead(ctx context.Context, id, receiverID int64) error {
	query :=
		`UPDATE messages
		 SET status = $3, read_at = now()
		 WHERE id = $1 AND receiver_id = $2 AND status = $4
		 `

	res, err := r.db.ExecContext(ctx, query, id, receiverID, models.MessageRead, models.MessageUnread)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) MarkAllRead(ctx context.Context, receiverID int64) (int64, error) {
	query :=
		`UPDATE messages
		 SET status = $2, read_at = now()
		 WHERE receiver_id = $1 AND status = $3
		 `

	res, err := r.db.ExecContext(ctx, query, receiverID, models.MessageRead, models.MessageUnread)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, receiverID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id = $1 AND receiver_id = $2`, id, receiverID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) CountUnread(ctx context.Context, receiverID int64) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM messages WHERE receiver_id = $1 AND status = $2`,
		receiverID, models.MessageUnread).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
