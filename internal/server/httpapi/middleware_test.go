package httpapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dvesiz/Ship-Management-System/internal/logging"
	"github.com/Dvesiz/Ship-Management-System/internal/server/auth"
	"github.com/Dvesiz/Ship-Management-System/internal/server/config"
	"github.com/Dvesiz/Ship-Management-System/internal/server/identity"
	"github.com/Dvesiz/Ship-Management-System/internal/server/kv"
	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type captureSink struct {
	mu      sync.Mutex
	entries []*models.OperationLog
}

func (c *captureSink) Record(entry *models.OperationLog) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, entry)
}

func (c *captureSink) last(t *testing.T) *models.OperationLog {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	require.NotEmpty(t, c.entries)
	return c.entries[len(c.entries)-1]
}

func newTestServer(t *testing.T) (*Server, *captureSink) {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()

	signer := auth.NewSigner([]byte("test-secret"), time.Hour)
	sessions := auth.NewSessionRegistry(kv.NewMemoryStore(), time.Hour)

	sink := &captureSink{}
	s := &Server{
		cfg:      cfg,
		logger:   testLogger(),
		signer:   signer,
		sessions: sessions,
		audit:    sink,
	}
	return s, sink
}

// issue creates a token that is both valid and registered, the way a login
// would leave it.
func issue(t *testing.T, s *Server, userID int64, username string, role models.Role) string {
	t.Helper()
	token, err := s.signer.Issue(userID, username, role)
	require.NoError(t, err)
	require.NoError(t, s.sessions.Put(context.Background(), token))
	return token
}

func TestRequireAuth(t *testing.T) {
	s, _ := newTestServer(t)

	var seen identity.Identity
	r := gin.New()
	r.GET("/secure", s.requireAuth(), func(c *gin.Context) {
		ident, err := identity.FromContext(c.Request.Context())
		require.NoError(t, err)
		seen = ident
		ok(c, nil)
	})

	do := func(authHeader string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("GET", "/secure", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("missing token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do("").Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do("Bearer not-a-jwt").Code)
	})

	t.Run("valid but revoked token", func(t *testing.T) {
		token, err := s.signer.Issue(7, "ghost", models.RoleUser)
		require.NoError(t, err)
		// never registered with the session registry
		assert.Equal(t, http.StatusUnauthorized, do("Bearer "+token).Code)
	})

	t.Run("registered token passes and sets identity", func(t *testing.T) {
		token := issue(t, s, 42, "alice", models.RoleAdmin)
		w := do("Bearer " + token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(42), seen.UserID)
		assert.Equal(t, "alice", seen.Username)
		assert.Equal(t, models.RoleAdmin, seen.Role)
	})

	t.Run("raw token without Bearer prefix accepted", func(t *testing.T) {
		token := issue(t, s, 43, "bob", models.RoleUser)
		assert.Equal(t, http.StatusOK, do(token).Code)
	})

	t.Run("revocation wins over valid signature", func(t *testing.T) {
		token := issue(t, s, 44, "carol", models.RoleUser)
		require.NoError(t, s.sessions.Revoke(context.Background(), token))
		assert.Equal(t, http.StatusUnauthorized, do("Bearer "+token).Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	s, _ := newTestServer(t)

	r := gin.New()
	r.GET("/admin/ping", s.requireAuth(), s.requireAdmin(), func(c *gin.Context) {
		ok(c, nil)
	})

	do := func(token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("GET", "/admin/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	userToken := issue(t, s, 1, "plain", models.RoleUser)
	adminToken := issue(t, s, 2, "boss", models.RoleAdmin)

	assert.Equal(t, http.StatusForbidden, do(userToken).Code)
	assert.Equal(t, http.StatusOK, do(adminToken).Code)
}
