package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/Dvesiz/Ship-Management-System/internal/common"
	"github.com/Dvesiz/Ship-Management-System/internal/dbx"
	"github.com/Dvesiz/Ship-Management-System/internal/logging"
	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/auditlogs"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/categories"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/certificates"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/crews"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/fuelrecords"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/maintenances"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/messages"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/ships"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/users"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/voyages"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeRepoManager vends in-memory repositories regardless of the DBTX handle.
type fakeRepoManager struct {
	users *fakeUserRepo
	certs *fakeCertRepo
	msgs  *fakeMessageRepo
	logs  *fakeAuditRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		users: &fakeUserRepo{byID: map[int64]*models.User{}},
		certs: &fakeCertRepo{statuses: map[int64]models.CertStatus{}},
		msgs:  &fakeMessageRepo{},
		logs:  &fakeAuditRepo{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error      { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                   { return m.users }
func (m *fakeRepoManager) Ships(dbx.DBTX) ships.Repository                   { return nil }
func (m *fakeRepoManager) Categories(dbx.DBTX) categories.Repository         { return nil }
func (m *fakeRepoManager) Crews(dbx.DBTX) crews.Repository                   { return nil }
func (m *fakeRepoManager) Voyages(dbx.DBTX) voyages.Repository               { return nil }
func (m *fakeRepoManager) FuelRecords(dbx.DBTX) fuelrecords.Repository       { return nil }
func (m *fakeRepoManager) Maintenances(dbx.DBTX) maintenances.Repository     { return nil }
func (m *fakeRepoManager) Certificates(dbx.DBTX) certificates.Repository     { return m.certs }
func (m *fakeRepoManager) Messages(dbx.DBTX) messages.Repository             { return m.msgs }
func (m *fakeRepoManager) AuditLogs(dbx.DBTX) auditlogs.Repository           { return m.logs }

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*models.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	u.ID = r.nextID
	cp := *u
	r.byID[u.ID] = &cp
	return u, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, common.ErrorNotFound
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if stored, ok := r.byID[u.ID]; ok {
		stored.Nickname = u.Nickname
		stored.Email = u.Email
		stored.AvatarURL = u.AvatarURL
		return nil
	}
	return common.ErrorNotFound
}

func (r *fakeUserRepo) UpdatePasswordHash(_ context.Context, id int64, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byID[id]; ok {
		u.PasswordHash = hash
		return nil
	}
	return common.ErrorNotFound
}

func (r *fakeUserRepo) UpdateAvatar(_ context.Context, username, avatarURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Username == username {
			u.AvatarURL = avatarURL
			return nil
		}
	}
	return common.ErrorNotFound
}

func (r *fakeUserRepo) UpdateRole(_ context.Context, id int64, role models.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byID[id]; ok {
		u.Role = role
		return nil
	}
	return common.ErrorNotFound
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	return nil
}

func (r *fakeUserRepo) DeleteBatch(_ context.Context, ids []int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, id := range ids {
		if _, ok := r.byID[id]; ok {
			delete(r.byID, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) Page(_ context.Context, offset, limit int, f users.PageFilter) (*models.Page[models.User], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := []models.User{}
	for _, u := range r.byID {
		if f.Role != "" && string(u.Role) != f.Role {
			continue
		}
		items = append(items, *u)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return &models.Page[models.User]{Total: int64(len(items)), Items: items}, nil
}

func (r *fakeUserRepo) Search(_ context.Context, query string, limit int) ([]models.UserView, error) {
	return nil, nil
}

func (r *fakeUserRepo) GetStats(_ context.Context) (*users.Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := &users.Stats{}
	for _, u := range r.byID {
		s.TotalUsers++
		if u.Role == models.RoleAdmin {
			s.AdminCount++
		} else {
			s.UserCount++
		}
	}
	return s, nil
}

type fakeCertRepo struct {
	mu       sync.Mutex
	certs    []models.ShipCertificate
	statuses map[int64]models.CertStatus
	updates  int
}

func (r *fakeCertRepo) Create(_ context.Context, c *models.ShipCertificate) (*models.ShipCertificate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = int64(len(r.certs) + 1)
	r.certs = append(r.certs, *c)
	return c, nil
}

func (r *fakeCertRepo) GetByID(_ context.Context, id int64) (*models.ShipCertificate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.certs {
		if c.ID == id {
			cp := c
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *fakeCertRepo) Update(_ context.Context, c *models.ShipCertificate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.certs {
		if r.certs[i].ID == c.ID {
			r.certs[i] = *c
			return nil
		}
	}
	return common.ErrorNotFound
}

func (r *fakeCertRepo) Delete(_ context.Context, id int64) error { return nil }

func (r *fakeCertRepo) DeleteBatch(_ context.Context, ids []int64) (int64, error) { return 0, nil }

func (r *fakeCertRepo) Page(_ context.Context, offset, limit int, f certificates.PageFilter) (*models.Page[models.ShipCertificate], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := []models.ShipCertificate{}
	for _, c := range r.certs {
		if f.ShipID != nil && c.ShipID != *f.ShipID {
			continue
		}
		items = append(items, c)
	}
	return &models.Page[models.ShipCertificate]{Total: int64(len(items)), Items: items}, nil
}

func (r *fakeCertRepo) ListAll(_ context.Context) ([]models.ShipCertificate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.ShipCertificate, len(r.certs))
	copy(out, r.certs)
	return out, nil
}

func (r *fakeCertRepo) UpdateStatus(_ context.Context, id int64, status models.CertStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates++
	r.statuses[id] = status
	for i := range r.certs {
		if r.certs[i].ID == id {
			r.certs[i].Status = status
		}
	}
	return nil
}

func (r *fakeCertRepo) CountByStatus(_ context.Context) (map[models.CertStatus]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[models.CertStatus]int64{}
	for _, c := range r.certs {
		counts[c.Status]++
	}
	return counts, nil
}

type fakeMessageRepo struct {
	mu   sync.Mutex
	sent []models.Message
}

func (r *fakeMessageRepo) Create(_ context.Context, m *models.Message) (*models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = int64(len(r.sent) + 1)
	r.sent = append(r.sent, *m)
	return m, nil
}

func (r *fakeMessageRepo) GetByID(_ context.Context, id, receiverID int64) (*models.Message, error) {
	return nil, common.ErrorNotFound
}

func (r *fakeMessageRepo) Page(_ context.Context, offset, limit int, f messages.PageFilter) (*models.Page[models.Message], error) {
	return &models.Page[models.Message]{Items: []models.Message{}}, nil
}

func (r *fakeMessageRepo) MarkRead(_ context.Context, id, receiverID int64) error { return nil }

func (r *fakeMessageRepo) MarkAllRead(_ context.Context, receiverID int64) (int64, error) {
	return 0, nil
}

func (r *fakeMessageRepo) Delete(_ context.Context, id, receiverID int64) error { return nil }

func (r *fakeMessageRepo) CountUnread(_ context.Context, receiverID int64) (int64, error) {
	return 0, nil
}

type fakeAuditRepo struct {
	mu      sync.Mutex
	entries []models.OperationLog
}

func (r *fakeAuditRepo) Insert(_ context.Context, e *models.OperationLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = int64(len(r.entries) + 1)
	r.entries = append(r.entries, *e)
	return nil
}

func (r *fakeAuditRepo) GetByID(_ context.Context, id int64) (*models.OperationLog, error) {
	return nil, common.ErrorNotFound
}

func (r *fakeAuditRepo) Page(_ context.Context, offset, limit int, f auditlogs.PageFilter) (*models.Page[models.OperationLog], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.OperationLog, len(r.entries))
	copy(out, r.entries)
	return &models.Page[models.OperationLog]{Total: int64(len(out)), Items: out}, nil
}

func (r *fakeAuditRepo) DeleteBatch(_ context.Context, ids []int64) (int64, error) { return 0, nil }

func (r *fakeAuditRepo) DeleteOlderThan(_ context.Context, days int) (int64, error) {
	return int64(len(r.entries)), nil
}

func (r *fakeAuditRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
