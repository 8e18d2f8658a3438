package maintenances

import (
	"context"

	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
)

type PageFilter struct {
	ShipID *int64
	Status string
}

type Repository interface {
	Create(ctx context.Context, record *models.MaintenanceRecord) (*models.MaintenanceRecord, error)
	GetByID(ctx context.Context, id int64) (*models.MaintenanceRecord, error)
	Update(ctx context.Context, record *models.MaintenanceRecord) error
	Delete(ctx context.Context, id int64) error
	DeleteBatch(ctx context.Context, ids []int64) (int64, error)
	Page(ctx context.Context, offset, limit int, f PageFilter) (*models.Page[models.MaintenanceRecord], error)
}
