package auditlogs

import (
	"context"

	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
)

type PageFilter struct {
	UsernameLike string
	Module       string
	Operation    string
}

type Repository interface {
	Insert(ctx context.Context, entry *models.OperationLog) error
	GetByID(ctx context.Context, id int64) (*models.OperationLog, error)
	Page(ctx context.Context, offset, limit int, f PageFilter) (*models.Page[models.OperationLog], error)
	DeleteBatch(ctx context.Context, ids []int64) (int64, error)
	// DeleteOlderThan removes entries created more than the given number of
	// days ago and reports how many were removed.
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}
