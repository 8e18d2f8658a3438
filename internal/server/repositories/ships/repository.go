package ships

import (
	"context"

	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
)

// PageFilter narrows the ship listing.
type PageFilter struct {
	CategoryID *int64
	NameLike   string
	Status     string
}

type Repository interface {
	Create(ctx context.Context, ship *models.Ship) (*models.Ship, error)
	GetByID(ctx context.Context, id int64) (*models.Ship, error)
	Update(ctx context.Context, ship *models.Ship) error
	Delete(ctx context.Context, id int64) error
	DeleteBatch(ctx context.Context, ids []int64) (int64, error)
	Page(ctx context.Context, offset, limit int, f PageFilter) (*models.Page[models.Ship], error)
}
