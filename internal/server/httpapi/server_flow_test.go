package httpapi

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dvesiz/Ship-Management-System/internal/server/auth"
	"github.com/Dvesiz/Ship-Management-System/internal/server/kv"
	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/repomanager"
	"github.com/Dvesiz/Ship-Management-System/internal/server/services"
)

type flowMailer struct {
	mu   sync.Mutex
	sent []string
}

func (m *flowMailer) SendCode(ctx context.Context, to, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to)
	return nil
}

type allowVerifier struct{}

func (allowVerifier) Verify(ctx context.Context, token string) bool { return true }

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// TestRegisterLoginFlow drives the public auth surface end to end over the
// real router: send a code, register with it, log in, hit a protected route,
// and get bounced off the admin surface. Every mutating step leaves an audit
// entry.
func TestRegisterLoginFlow(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	logger := testLogger()
	signer := auth.NewSigner([]byte("flow-secret"), time.Hour)
	sessions := auth.NewSessionRegistry(kv.NewMemoryStore(), time.Hour)
	codes := kv.NewMemoryStore()
	mailer := &flowMailer{}
	rm := repomanager.NewPostgresRepositoryManager()

	userSvc := services.NewUserService(db, rm, signer, sessions, codes, mailer, allowVerifier{}, logger)

	srv := NewServer(nil, logger, signer, sessions, Services{Users: userSvc})
	sink := &captureSink{}
	srv.audit = sink
	router := srv.Router()

	post := func(path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	const email = "sailor@example.com"

	// 1. request a verification code
	w := post("/user/send-code", fmt.Sprintf(`{"email":%q}`, email))
	require.Equal(t, http.StatusOK, w.Code)

	code, err := codes.Get(context.Background(), "register:code:"+email)
	require.NoError(t, err)
	require.Len(t, code, 6)

	// 2. register with the code
	mock.ExpectQuery(`SELECT .+ FROM users WHERE username = \$1`).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("sailor", "sailor", sqlmock.AnyArg(), email, "", string(models.RoleUser)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(1), time.Now(), time.Now()))

	w = post("/user/register", fmt.Sprintf(`{"username":"sailor","password":"seaworthy","email":%q,"code":%q}`, email, code))
	require.Equal(t, http.StatusOK, w.Code)

	var res envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Equal(t, 0, res.Code, "register response: %s", w.Body.String())

	// 3. log in with the registered credentials
	hash, err := auth.HashPassword("seaworthy")
	require.NoError(t, err)
	userRow := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{
			"id", "username", "nickname", "password_hash", "email",
			"avatar_url", "role", "created_at", "updated_at",
		}).AddRow(int64(1), "sailor", "sailor", hash, email, "", "USER", time.Now(), time.Now())
	}
	mock.ExpectQuery(`SELECT .+ FROM users WHERE username = \$1`).
		WillReturnRows(userRow())

	w = post("/user/login", `{"username":"sailor","password":"seaworthy"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Equal(t, 0, res.Code, "login response: %s", w.Body.String())

	var login loginResponse
	require.NoError(t, json.Unmarshal(res.Data, &login))
	require.NotEmpty(t, login.Token)
	assert.Equal(t, "sailor", login.User.Username)

	// 4. the token opens the protected surface
	mock.ExpectQuery(`SELECT .+ FROM users WHERE id = \$1`).
		WillReturnRows(userRow())

	req := httptest.NewRequest("GET", "/user/info", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// 5. but not the admin surface
	req = httptest.NewRequest("GET", "/admin/user/list", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// 6. login without credentials is refused and audited as FAILED
	mock.ExpectQuery(`SELECT .+ FROM users WHERE username = \$1`).
		WillReturnError(sql.ErrNoRows)
	w = post("/user/login", `{"username":"nobody","password":"wrong-pass"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	require.NoError(t, mock.ExpectationsWereMet())

	outcomes := map[string]bool{}
	sink.mu.Lock()
	for _, e := range sink.entries {
		outcomes[e.Operation+"/"+e.ResponseResult] = true
	}
	sink.mu.Unlock()
	assert.True(t, outcomes["SEND_CODE/"+models.OutcomeSuccess])
	assert.True(t, outcomes["REGISTER/"+models.OutcomeSuccess])
	assert.True(t, outcomes["LOGIN/"+models.OutcomeSuccess])
	assert.True(t, outcomes["LOGIN/"+models.OutcomeFailed])
}
