package crews

import (
	"context"

	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
)

type PageFilter struct {
	ShipID   *int64
	NameLike string
	Position string
	Status   string
}

type Repository interface {
	Create(ctx context.Context, crew *models.Crew) (*models.Crew, error)
	GetByID(ctx context.Context, id int64) (*models.Crew, error)
	Update(ctx context.Context, crew *models.Crew) error
	Delete(ctx context.Context, id int64) error
	DeleteBatch(ctx context.Context, ids []int64) (int64, error)
	Page(ctx context.Context, offset, limit int, f PageFilter) (*models.Page[models.Crew], error)
	// Unassign clears the ship assignment for every crew member on a ship.
	Unassign(ctx context.Context, shipID int64) error
}
