package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
)

func day(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestClassifyStatus(t *testing.T) {
	today, _ := time.Parse("2006-01-02", "2026-06-15")

	tests := []struct {
		name   string
		expiry *time.Time
		want   models.CertStatus
	}{
		{"nil expiry", nil, models.CertValid},
		{"yesterday", day("2026-06-14"), models.CertExpired},
		{"today", day("2026-06-15"), models.CertExpiring},
		{"within window", day("2026-07-10"), models.CertExpiring},
		{"window edge", day("2026-07-14"), models.CertExpiring},
		{"just outside window", day("2026-07-15"), models.CertValid},
		{"far future", day("2030-01-01"), models.CertValid},
		{"long expired", day("2020-01-01"), models.CertExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStatus(tt.expiry, today))
		})
	}
}

func TestClassifyStatus_DateGranularity(t *testing.T) {
	// Late in the day, a certificate expiring tomorrow is still expiring,
	// not expired.
	today, _ := time.Parse(time.RFC3339, "2026-06-15T23:59:00Z")
	got := ClassifyStatus(day("2026-06-16"), today)
	assert.Equal(t, models.CertExpiring, got)
}

func TestCreate_ComputesStatus(t *testing.T) {
	rm := newFakeRepoManager()
	svc := NewCertificateService(nil, rm, testLogger())
	svc.now = func() time.Time { t, _ := time.Parse("2006-01-02", "2026-06-15"); return t }

	cert, err := svc.Create(context.Background(), &models.ShipCertificate{
		ShipID:          1,
		CertificateName: "Safety Management",
		ExpiryDate:      day("2026-06-20"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.CertExpiring, cert.Status)
}

func TestSweep_UpdatesOnlyChanged(t *testing.T) {
	rm := newFakeRepoManager()
	svc := NewCertificateService(nil, rm, testLogger())
	svc.now = func() time.Time { t, _ := time.Parse("2006-01-02", "2026-06-15"); return t }

	ctx := context.Background()
	rm.certs.certs = []models.ShipCertificate{
		{ID: 1, ShipID: 1, CertificateName: "A", ExpiryDate: day("2026-06-10"), Status: models.CertValid},    // becomes EXPIRED
		{ID: 2, ShipID: 1, CertificateName: "B", ExpiryDate: day("2026-07-01"), Status: models.CertExpiring}, // unchanged
		{ID: 3, ShipID: 2, CertificateName: "C", ExpiryDate: day("2027-01-01"), Status: models.CertValid},    // unchanged
	}

	changed, err := svc.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, changed)
	assert.Equal(t, 1, rm.certs.updates)
	assert.Equal(t, models.CertExpired, rm.certs.statuses[1])
}

func TestSweep_Idempotent(t *testing.T) {
	rm := newFakeRepoManager()
	svc := NewCertificateService(nil, rm, testLogger())
	svc.now = func() time.Time { t, _ := time.Parse("2006-01-02", "2026-06-15"); return t }

	ctx := context.Background()
	rm.certs.certs = []models.ShipCertificate{
		{ID: 1, ShipID: 1, CertificateName: "A", ExpiryDate: day("2026-06-10"), Status: models.CertValid},
	}

	changed, err := svc.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, changed)

	changed, err = svc.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, changed)
}

func TestSweep_NotifiesAdminsOnDegrade(t *testing.T) {
	rm := newFakeRepoManager()
	svc := NewCertificateService(nil, rm, testLogger())
	svc.now = func() time.Time { t, _ := time.Parse("2006-01-02", "2026-06-15"); return t }

	ctx := context.Background()
	rm.users.Create(ctx, &models.User{Username: "root", Role: models.RoleAdmin})
	rm.users.Create(ctx, &models.User{Username: "bob", Role: models.RoleUser})
	rm.certs.certs = []models.ShipCertificate{
		{ID: 1, ShipID: 1, CertificateName: "A", ExpiryDate: day("2026-06-10"), Status: models.CertValid},
	}

	_, err := svc.Sweep(ctx)
	require.NoError(t, err)

	require.Len(t, rm.msgs.sent, 1)
	msg := rm.msgs.sent[0]
	assert.Equal(t, models.SystemSenderID, msg.SenderID)
	assert.Equal(t, int64(1), msg.ReceiverID)
	assert.Equal(t, "CERT_EXPIRY", msg.Type)
}
