package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dvesiz/Ship-Management-System/internal/common"
	"github.com/Dvesiz/Ship-Management-System/internal/server/auth"
	"github.com/Dvesiz/Ship-Management-System/internal/server/kv"
	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
)

type fakeMailer struct {
	mu    sync.Mutex
	sent  []string
	codes []string
}

func (m *fakeMailer) SendCode(_ context.Context, to, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to)
	m.codes = append(m.codes, code)
	return nil
}

type fakeVerifier struct{ ok bool }

func (v *fakeVerifier) Verify(context.Context, string) bool { return v.ok }

func newUserService(rm *fakeRepoManager, store kv.Store, verifier HumanVerifier) (*UserService, *auth.SessionRegistry, *auth.Signer) {
	signer := auth.NewSigner([]byte("test-secret"), 12*time.Hour)
	sessions := auth.NewSessionRegistry(store, 12*time.Hour)
	svc := NewUserService(nil, rm, signer, sessions, store, &fakeMailer{}, verifier, testLogger())
	return svc, sessions, signer
}

func storedCode(t *testing.T, store kv.Store, email string) string {
	t.Helper()
	code, err := store.Get(context.Background(), codeKeyPrefix+email)
	require.NoError(t, err)
	return code
}

func TestSendCode_LockRefusesRepeat(t *testing.T) {
	store := kv.NewMemoryStore()
	svc, _, _ := newUserService(newFakeRepoManager(), store, &fakeVerifier{ok: true})
	ctx := context.Background()

	require.NoError(t, svc.SendCode(ctx, "a@example.com"))

	err := svc.SendCode(ctx, "a@example.com")
	assert.ErrorIs(t, err, common.ErrTooFrequent)

	// An unrelated address is not affected by the lock.
	require.NoError(t, svc.SendCode(ctx, "b@example.com"))
}

func TestRegister_Flow(t *testing.T) {
	store := kv.NewMemoryStore()
	rm := newFakeRepoManager()
	svc, _, _ := newUserService(rm, store, &fakeVerifier{ok: true})
	ctx := context.Background()

	require.NoError(t, svc.SendCode(ctx, "a@example.com"))
	code := storedCode(t, store, "a@example.com")

	user, err := svc.Register(ctx, "alice", "pw123456", "a@example.com", code)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "pw123456", user.PasswordHash)

	// Consumed code cannot be replayed.
	_, err = svc.Register(ctx, "alice2", "pw123456", "a@example.com", code)
	assert.ErrorIs(t, err, common.ErrCodeMismatch)
}

func TestRegister_WrongCode(t *testing.T) {
	store := kv.NewMemoryStore()
	svc, _, _ := newUserService(newFakeRepoManager(), store, &fakeVerifier{ok: true})
	ctx := context.Background()

	require.NoError(t, svc.SendCode(ctx, "a@example.com"))

	_, err := svc.Register(ctx, "alice", "pw", "a@example.com", "000000x")
	assert.ErrorIs(t, err, common.ErrCodeMismatch)

	// One wrong attempt does not consume the code.
	code := storedCode(t, store, "a@example.com")
	_, err = svc.Register(ctx, "alice", "pw123456", "a@example.com", code)
	assert.NoError(t, err)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	store := kv.NewMemoryStore()
	rm := newFakeRepoManager()
	svc, _, _ := newUserService(rm, store, &fakeVerifier{ok: true})
	ctx := context.Background()

	rm.users.Create(ctx, &models.User{Username: "alice", Role: models.RoleUser})

	require.NoError(t, svc.SendCode(ctx, "a@example.com"))
	code := storedCode(t, store, "a@example.com")

	_, err := svc.Register(ctx, "alice", "pw123456", "a@example.com", code)
	assert.ErrorIs(t, err, common.ErrorConflict)
}

func TestLogin_Success(t *testing.T) {
	store := kv.NewMemoryStore()
	rm := newFakeRepoManager()
	svc, sessions, signer := newUserService(rm, store, &fakeVerifier{ok: true})
	ctx := context.Background()

	hash, err := auth.HashPassword("pw123456")
	require.NoError(t, err)
	rm.users.Create(ctx, &models.User{Username: "alice", PasswordHash: hash, Role: models.RoleAdmin})

	token, user, err := svc.Login(ctx, "alice", "pw123456", "cf-token")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	claims, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)

	active, err := sessions.IsActive(ctx, token)
	require.NoError(t, err)
	assert.True(t, active)
}

func TestLogin_WrongPasswordAndUnknownUser(t *testing.T) {
	store := kv.NewMemoryStore()
	rm := newFakeRepoManager()
	svc, _, _ := newUserService(rm, store, &fakeVerifier{ok: true})
	ctx := context.Background()

	hash, _ := auth.HashPassword("pw123456")
	rm.users.Create(ctx, &models.User{Username: "alice", PasswordHash: hash, Role: models.RoleUser})

	_, _, err := svc.Login(ctx, "alice", "wrong", "cf-token")
	assert.ErrorIs(t, err, common.ErrUnauthenticated)

	_, _, err = svc.Login(ctx, "ghost", "pw123456", "cf-token")
	assert.ErrorIs(t, err, common.ErrUnauthenticated)
}

func TestLogin_VerifierRejects(t *testing.T) {
	store := kv.NewMemoryStore()
	rm := newFakeRepoManager()
	svc, _, _ := newUserService(rm, store, &fakeVerifier{ok: false})

	_, _, err := svc.Login(context.Background(), "alice", "pw123456", "")
	assert.ErrorIs(t, err, common.ErrExternalVerification)
}

func TestLoginByEmail(t *testing.T) {
	store := kv.NewMemoryStore()
	rm := newFakeRepoManager()
	svc, sessions, _ := newUserService(rm, store, &fakeVerifier{ok: true})
	ctx := context.Background()

	rm.users.Create(ctx, &models.User{Username: "alice", Email: "a@example.com", Role: models.RoleUser})

	require.NoError(t, svc.SendCode(ctx, "a@example.com"))
	code := storedCode(t, store, "a@example.com")

	token, user, err := svc.LoginByEmail(ctx, "a@example.com", code)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	active, err := sessions.IsActive(ctx, token)
	require.NoError(t, err)
	assert.True(t, active)
}

func TestResetPassword(t *testing.T) {
	store := kv.NewMemoryStore()
	rm := newFakeRepoManager()
	svc, _, _ := newUserService(rm, store, &fakeVerifier{ok: true})
	ctx := context.Background()

	hash, _ := auth.HashPassword("old")
	rm.users.Create(ctx, &models.User{Username: "alice", Email: "a@example.com", PasswordHash: hash, Role: models.RoleUser})

	require.NoError(t, svc.SendCode(ctx, "a@example.com"))
	code := storedCode(t, store, "a@example.com")

	require.NoError(t, svc.ResetPassword(ctx, "a@example.com", code, "newpw123"))

	stored, err := rm.users.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword("newpw123", stored.PasswordHash))
	assert.False(t, auth.CheckPassword("old", stored.PasswordHash))
}

func TestUpdatePassword(t *testing.T) {
	store := kv.NewMemoryStore()
	rm := newFakeRepoManager()
	svc, _, _ := newUserService(rm, store, &fakeVerifier{ok: true})
	ctx := context.Background()

	hash, _ := auth.HashPassword("old12345")
	u, _ := rm.users.Create(ctx, &models.User{Username: "alice", PasswordHash: hash, Role: models.RoleUser})

	err := svc.UpdatePassword(ctx, u.ID, "wrong", "new12345")
	assert.ErrorIs(t, err, common.ErrUnauthenticated)

	err = svc.UpdatePassword(ctx, u.ID, "old12345", "old12345")
	assert.ErrorIs(t, err, common.ErrorValidation)

	require.NoError(t, svc.UpdatePassword(ctx, u.ID, "old12345", "new12345"))
}

func TestDeleteBatch_ExcludesCaller(t *testing.T) {
	store := kv.NewMemoryStore()
	rm := newFakeRepoManager()
	svc, _, _ := newUserService(rm, store, &fakeVerifier{ok: true})
	ctx := context.Background()

	admin, _ := rm.users.Create(ctx, &models.User{Username: "root", Role: models.RoleAdmin})
	u1, _ := rm.users.Create(ctx, &models.User{Username: "u1", Role: models.RoleUser})
	u2, _ := rm.users.Create(ctx, &models.User{Username: "u2", Role: models.RoleUser})

	n, err := svc.DeleteBatch(ctx, []int64{admin.ID, u1.ID, u2.ID}, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	_, err = rm.users.GetByID(ctx, admin.ID)
	assert.NoError(t, err)
	_, err = rm.users.GetByID(ctx, u1.ID)
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestDelete_SelfRefused(t *testing.T) {
	store := kv.NewMemoryStore()
	rm := newFakeRepoManager()
	svc, _, _ := newUserService(rm, store, &fakeVerifier{ok: true})

	err := svc.Delete(context.Background(), 7, 7)
	assert.ErrorIs(t, err, common.ErrorValidation)
}
