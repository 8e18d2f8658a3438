package services

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/Dvesiz/Ship-Management-System/internal/logging"
	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/certificates"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/repomanager"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/users"
)

// ExpiringSoonDays is the warning window before a certificate's expiry date.
const ExpiringSoonDays = 30

// ClassifyStatus derives a certificate status from its expiry date. The
// comparison is at date granularity: a certificate expiring today is still
// expiring, not expired. A nil expiry never expires.
func ClassifyStatus(expiry *time.Time, today time.Time) models.CertStatus {
	if expiry == nil {
		return models.CertValid
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	exp := time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 0, 0, 0, 0, today.Location())

	if exp.Before(day) {
		return models.CertExpired
	}
	if exp.Before(day.AddDate(0, 0, ExpiringSoonDays)) {
		return models.CertExpiring
	}
	return models.CertValid
}

// CertificateService owns ship certificates and their expiry lifecycle. The
// stored status is denormalized: recomputed on every write and by Sweep.
type CertificateService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger

	now func() time.Time
}

func NewCertificateService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *CertificateService {
	return &CertificateService{db: db, repomanager: m, logger: logger, now: time.Now}
}

func (s *CertificateService) Create(ctx context.Context, cert *models.ShipCertificate) (*models.ShipCertificate, error) {
	cert.Status = ClassifyStatus(cert.ExpiryDate, s.now())
	return s.repomanager.Certificates(s.db).Create(ctx, cert)
}

func (s *CertificateService) Update(ctx context.Context, cert *models.ShipCertificate) error {
	cert.Status = ClassifyStatus(cert.ExpiryDate, s.now())
	return s.repomanager.Certificates(s.db).Update(ctx, cert)
}

func (s *CertificateService) GetByID(ctx context.Context, id int64) (*models.ShipCertificate, error) {
	return s.repomanager.Certificates(s.db).GetByID(ctx, id)
}

func (s *CertificateService) Delete(ctx context.Context, id int64) error {
	return s.repomanager.Certificates(s.db).Delete(ctx, id)
}

func (s *CertificateService) DeleteBatch(ctx context.Context, ids []int64) (int64, error) {
	return s.repomanager.Certificates(s.db).DeleteBatch(ctx, ids)
}

func (s *CertificateService) Page(ctx context.Context, offset, limit int, f certificates.PageFilter) (*models.Page[models.ShipCertificate], error) {
	return s.repomanager.Certificates(s.db).Page(ctx, offset, limit, f)
}

func (s *CertificateService) ListByShip(ctx context.Context, shipID int64) ([]models.ShipCertificate, error) {
	page, err := s.repomanager.Certificates(s.db).Page(ctx, 0, 1000, certificates.PageFilter{ShipID: &shipID})
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (s *CertificateService) CountByStatus(ctx context.Context) (map[models.CertStatus]int64, error) {
	return s.repomanager.Certificates(s.db).CountByStatus(ctx)
}

// Sweep reclassifies every certificate against the current date and persists
// only the rows whose status changed. Safe to run concurrently with writes;
// a write landing between read and update is recomputed on the next pass.
func (s *CertificateService) Sweep(ctx context.Context) (int, error) {
	repo := s.repomanager.Certificates(s.db)

	certs, err := repo.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	today := s.now()
	changed := 0
	for _, cert := range certs {
		status := ClassifyStatus(cert.ExpiryDate, today)
		if status == cert.Status {
			continue
		}
		if err := repo.UpdateStatus(ctx, cert.ID, status); err != nil {
			s.logger.Error(ctx, "certificate status update failed", "id", cert.ID, "error", err)
			continue
		}
		changed++
		s.notifyTransition(ctx, &cert, status)
	}

	if changed > 0 {
		s.logger.Info(ctx, "certificate sweep finished", "total", len(certs), "changed", changed)
	}
	return changed, nil
}

// notifyTransition sends a system message to every admin when a certificate
// degrades to EXPIRING or EXPIRED. Delivery is best-effort.
func (s *CertificateService) notifyTransition(ctx context.Context, cert *models.ShipCertificate, status models.CertStatus) {
	if status == models.CertValid {
		return
	}

	admins, err := s.repomanager.Users(s.db).Page(ctx, 0, 1000, users.PageFilter{Role: string(models.RoleAdmin)})
	if err != nil {
		s.logger.Warn(ctx, "certificate notification skipped, admin lookup failed", "error", err)
		return
	}

	title := "Certificate expiring soon"
	if status == models.CertExpired {
		title = "Certificate expired"
	}

	relatedID := cert.ID
	for _, admin := range admins.Items {
		msg := &models.Message{
			SenderID:    models.SystemSenderID,
			ReceiverID:  admin.ID,
			Title:       title,
			Content:     cert.CertificateName + " (ship " + strconv.FormatInt(cert.ShipID, 10) + ") is " + string(status),
			Type:        "CERT_EXPIRY",
			Status:      models.MessageUnread,
			RelatedID:   &relatedID,
			RelatedType: "certificate",
		}
		if _, err := s.repomanager.Messages(s.db).Create(ctx, msg); err != nil {
			s.logger.Warn(ctx, "certificate notification failed", "receiver", admin.ID, "error", err)
		}
	}
}
