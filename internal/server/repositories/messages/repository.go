package messages

import (
	"context"

	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
)

type PageFilter struct {
	ReceiverID int64
	Status     string
	Type       string
}

type Repository interface {
	Create(ctx context.Context, msg *models.Message) (*models.Message, error)
	// GetByID hydrates sender name and avatar. Only the receiver may read.
	GetByID(ctx context.Context, id, receiverID int64) (*models.Message, error)
	Page(ctx context.Context, offset, limit int, f PageFilter) (*models.Page[models.Message], error)
	MarkRead(ctx context.Context, id, receiverID int64) error
	MarkAllRead(ctx context.Context, receiverID int64) (int64, error)
	Delete(ctx context.Context, id, receiverID int64) error
	CountUnread(ctx context.Context, receiverID int64) (int64, error)
}
