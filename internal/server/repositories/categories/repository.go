package categories

import (
	"context"

	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, category *models.ShipCategory) (*models.ShipCategory, error)
	GetByID(ctx context.Context, id int64) (*models.ShipCategory, error)
	Update(ctx context.Context, category *models.ShipCategory) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]models.ShipCategory, error)
	// CountShips reports how many ships reference the category. Deletion is
	// refused while the count is non-zero.
	CountShips(ctx context.Context, id int64) (int64, error)
}
