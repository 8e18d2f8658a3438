package services

import (
	"context"
	"database/sql"

	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/maintenances"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/repomanager"
)

type MaintenanceService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewMaintenanceService(db *sql.DB, m repomanager.RepositoryManager) *MaintenanceService {
	return &MaintenanceService{db: db, repomanager: m}
}

func (s *MaintenanceService) Create(ctx context.Context, record *models.MaintenanceRecord) (*models.MaintenanceRecord, error) {
	if record.Status == "" {
		record.Status = models.MaintenancePlanned
	}
	return s.repomanager.Maintenances(s.db).Create(ctx, record)
}

func (s *MaintenanceService) GetByID(ctx context.Context, id int64) (*models.MaintenanceRecord, error) {
	return s.repomanager.Maintenances(s.db).GetByID(ctx, id)
}

func (s *MaintenanceService) Update(ctx context.Context, record *models.MaintenanceRecord) error {
	return s.repomanager.Maintenances(s.db).Update(ctx, record)
}

func (s *MaintenanceService) Delete(ctx context.Context, id int64) error {
	return s.repomanager.Maintenances(s.db).Delete(ctx, id)
}

func (s *MaintenanceService) DeleteBatch(ctx context.Context, ids []int64) (int64, error) {
	return s.repomanager.Maintenances(s.db).DeleteBatch(ctx, ids)
}

func (s *MaintenanceService) Page(ctx context.Context, offset, limit int, f maintenances.PageFilter) (*models.Page[models.MaintenanceRecord], error) {
	return s.repomanager.Maintenances(s.db).Page(ctx, offset, limit, f)
}
