package services

import (
	"context"
	"database/sql"

	"github.com/Dvesiz/Ship-Management-System/internal/dbx"
	"github.com/Dvesiz/Ship-Management-System/internal/logging"
	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/repomanager"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/ships"
)

type ShipService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewShipService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *ShipService {
	return &ShipService{db: db, repomanager: m, logger: logger}
}

func (s *ShipService) Create(ctx context.Context, ship *models.Ship) (*models.Ship, error) {
	if ship.Status == "" {
		ship.Status = models.ShipInService
	}
	return s.repomanager.Ships(s.db).Create(ctx, ship)
}

func (s *ShipService) GetByID(ctx context.Context, id int64) (*models.Ship, error) {
	return s.repomanager.Ships(s.db).GetByID(ctx, id)
}

func (s *ShipService) Update(ctx context.Context, ship *models.Ship) error {
	return s.repomanager.Ships(s.db).Update(ctx, ship)
}

// Delete removes a ship and releases its crew assignments in one
// transaction.
func (s *ShipService) Delete(ctx context.Context, id int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Crews(tx).Unassign(ctx, id); err != nil {
			return err
		}
		return s.repomanager.Ships(tx).Delete(ctx, id)
	})
}

func (s *ShipService) DeleteBatch(ctx context.Context, ids []int64) (int64, error) {
	var n int64
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, id := range ids {
			if err := s.repomanager.Crews(tx).Unassign(ctx, id); err != nil {
				return err
			}
		}
		var delErr error
		n, delErr = s.repomanager.Ships(tx).DeleteBatch(ctx, ids)
		return delErr
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (s *ShipService) Page(ctx context.Context, offset, limit int, f ships.PageFilter) (*models.Page[models.Ship], error) {
	return s.repomanager.Ships(s.db).Page(ctx, offset, limit, f)
}
