package services

import (
	"context"
	"database/sql"

	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/repomanager"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/voyages"
)

type VoyageService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewVoyageService(db *sql.DB, m repomanager.RepositoryManager) *VoyageService {
	return &VoyageService{db: db, repomanager: m}
}

func (s *VoyageService) Create(ctx context.Context, voyage *models.Voyage) (*models.Voyage, error) {
	if voyage.Status == "" {
		voyage.Status = models.VoyageSailing
	}
	return s.repomanager.Voyages(s.db).Create(ctx, voyage)
}

func (s *VoyageService) GetByID(ctx context.Context, id int64) (*models.Voyage, error) {
	return s.repomanager.Voyages(s.db).GetByID(ctx, id)
}

func (s *VoyageService) Update(ctx context.Context, voyage *models.Voyage) error {
	return s.repomanager.Voyages(s.db).Update(ctx, voyage)
}

// Finish marks a voyage completed with the current time as actual arrival.
func (s *VoyageService) Finish(ctx context.Context, id int64) error {
	return s.repomanager.Voyages(s.db).Complete(ctx, id)
}

func (s *VoyageService) Delete(ctx context.Context, id int64) error {
	return s.repomanager.Voyages(s.db).Delete(ctx, id)
}

func (s *VoyageService) DeleteBatch(ctx context.Context, ids []int64) (int64, error) {
	return s.repomanager.Voyages(s.db).DeleteBatch(ctx, ids)
}

func (s *VoyageService) Page(ctx context.Context, offset, limit int, f voyages.PageFilter) (*models.Page[models.Voyage], error) {
	return s.repomanager.Voyages(s.db).Page(ctx, offset, limit, f)
}
