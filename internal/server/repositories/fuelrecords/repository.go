package fuelrecords

import (
	"context"
	"time"

	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
)

type PageFilter struct {
	ShipID   *int64
	VoyageID *int64
	From     *time.Time
	To       *time.Time
}

// CostSummary aggregates fuel spend for one ship.
type CostSummary struct {
	ShipID        int64   `json:"shipId"`
	TotalQuantity float64 `json:"totalQuantity"`
	TotalCost     float64 `json:"totalCost"`
}

type Repository interface {
	Create(ctx context.Context, record *models.FuelRecord) (*models.FuelRecord, error)
	GetByID(ctx context.Context, id int64) (*models.FuelRecord, error)
	Update(ctx context.Context, record *models.FuelRecord) error
	Delete(ctx context.Context, id int64) error
	DeleteBatch(ctx context.Context, ids []int64) (int64, error)
	Page(ctx context.Context, offset, limit int, f PageFilter) (*models.Page[models.FuelRecord], error)
	Summary(ctx context.Context, shipID int64) (*CostSummary, error)
}
