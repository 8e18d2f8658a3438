package voyages

import (
	"context"

	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
)

type PageFilter struct {
	ShipID       *int64
	VoyageNoLike string
	Status       string
}

type Repository interface {
	Create(ctx context.Context, voyage *models.Voyage) (*models.Voyage, error)
	GetByID(ctx context.Context, id int64) (*models.Voyage, error)
	Update(ctx context.Context, voyage *models.Voyage) error
	Delete(ctx context.Context, id int64) error
	DeleteBatch(ctx context.Context, ids []int64) (int64, error)
	Page(ctx context.Context, offset, limit int, f PageFilter) (*models.Page[models.Voyage], error)
	// Complete marks a voyage arrived, recording the actual arrival time.
	Complete(ctx context.Context, id int64) error
}
