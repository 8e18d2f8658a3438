package services

import (
	"context"
	"database/sql"

	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/crews"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/repomanager"
)

type CrewService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCrewService(db *sql.DB, m repomanager.RepositoryManager) *CrewService {
	return &CrewService{db: db, repomanager: m}
}

func (s *CrewService) Create(ctx context.Context, crew *models.Crew) (*models.Crew, error) {
	return s.repomanager.Crews(s.db).Create(ctx, crew)
}

func (s *CrewService) GetByID(ctx context.Context, id int64) (*models.Crew, error) {
	return s.repomanager.Crews(s.db).GetByID(ctx, id)
}

func (s *CrewService) Update(ctx context.Context, crew *models.Crew) error {
	return s.repomanager.Crews(s.db).Update(ctx, crew)
}

func (s *CrewService) Delete(ctx context.Context, id int64) error {
	return s.repomanager.Crews(s.db).Delete(ctx, id)
}

func (s *CrewService) DeleteBatch(ctx context.Context, ids []int64) (int64, error) {
	return s.repomanager.Crews(s.db).DeleteBatch(ctx, ids)
}

func (s *CrewService) Page(ctx context.Context, offset, limit int, f crews.PageFilter) (*models.Page[models.Crew], error) {
	return s.repomanager.Crews(s.db).Page(ctx, offset, limit, f)
}
