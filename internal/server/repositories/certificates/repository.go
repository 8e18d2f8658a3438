package certificates

import (
	"context"

	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
)

type PageFilter struct {
	ShipID   *int64
	NameLike string
	Status   models.CertStatus
}

type Repository interface {
	Create(ctx context.Context, cert *models.ShipCertificate) (*models.ShipCertificate, error)
	GetByID(ctx context.Context, id int64) (*models.ShipCertificate, error)
	Update(ctx context.Context, cert *models.ShipCertificate) error
	Delete(ctx context.Context, id int64) error
	DeleteBatch(ctx context.Context, ids []int64) (int64, error)
	Page(ctx context.Context, offset, limit int, f PageFilter) (*models.Page[models.ShipCertificate], error)
	// ListAll returns every certificate. The lifecycle sweep walks the full
	// set, reclassifies, and persists only the rows whose status changed.
	ListAll(ctx context.Context) ([]models.ShipCertificate, error)
	UpdateStatus(ctx context.Context, id int64, status models.CertStatus) error
	// CountByStatus powers the expiry dashboard.
	CountByStatus(ctx context.Context) (map[models.CertStatus]int64, error)
}
