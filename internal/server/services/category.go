package services

import (
	"context"
	"database/sql"

	"github.com/Dvesiz/Ship-Management-System/internal/common"
	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/repomanager"
)

type CategoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCategoryService(db *sql.DB, m repomanager.RepositoryManager) *CategoryService {
	return &CategoryService{db: db, repomanager: m}
}

func (s *CategoryService) Create(ctx context.Context, category *models.ShipCategory) (*models.ShipCategory, error) {
	if category.Name == "" {
		return nil, common.ErrorValidation
	}
	return s.repomanager.Categories(s.db).Create(ctx, category)
}

func (s *CategoryService) List(ctx context.Context) ([]models.ShipCategory, error) {
	return s.repomanager.Categories(s.db).List(ctx)
}

func (s *CategoryService) Update(ctx context.Context, category *models.ShipCategory) error {
	if category.Name == "" {
		return common.ErrorValidation
	}
	return s.repomanager.Categories(s.db).Update(ctx, category)
}

// Delete refuses to remove a category that still has ships.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	repo := s.repomanager.Categories(s.db)
	n, err := repo.CountShips(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return common.ErrorConflict
	}
	return repo.Delete(ctx, id)
}
