package services

import (
	"context"
	"database/sql"

	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/fuelrecords"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/repomanager"
)

type FuelService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewFuelService(db *sql.DB, m repomanager.RepositoryManager) *FuelService {
	return &FuelService{db: db, repomanager: m}
}

func (s *FuelService) Create(ctx context.Context, record *models.FuelRecord) (*models.FuelRecord, error) {
	if record.TotalCost == 0 {
		record.TotalCost = record.Quantity * record.UnitPrice
	}
	return s.repomanager.FuelRecords(s.db).Create(ctx, record)
}

func (s *FuelService) GetByID(ctx context.Context, id int64) (*models.FuelRecord, error) {
	return s.repomanager.FuelRecords(s.db).GetByID(ctx, id)
}

func (s *FuelService) Update(ctx context.Context, record *models.FuelRecord) error {
	if record.TotalCost == 0 {
		record.TotalCost = record.Quantity * record.UnitPrice
	}
	return s.repomanager.FuelRecords(s.db).Update(ctx, record)
}

func (s *FuelService) Delete(ctx context.Context, id int64) error {
	return s.repomanager.FuelRecords(s.db).Delete(ctx, id)
}

func (s *FuelService) DeleteBatch(ctx context.Context, ids []int64) (int64, error) {
	return s.repomanager.FuelRecords(s.db).DeleteBatch(ctx, ids)
}

func (s *FuelService) Page(ctx context.Context, offset, limit int, f fuelrecords.PageFilter) (*models.Page[models.FuelRecord], error) {
	return s.repomanager.FuelRecords(s.db).Page(ctx, offset, limit, f)
}

func (s *FuelService) Summary(ctx context.Context, shipID int64) (*fuelrecords.CostSummary, error) {
	return s.repomanager.FuelRecords(s.db).Summary(ctx, shipID)
}
