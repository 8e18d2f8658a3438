package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dvesiz/Ship-Management-System/internal/common"
)

func TestFail_ErrorMapping(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"not found", common.ErrorNotFound, http.StatusOK, "not found"},
		{"validation", common.ErrorValidation, http.StatusOK, "validation failed"},
		{"conflict", fmt.Errorf("username taken: %w", common.ErrorConflict), http.StatusOK, "username taken: conflict"},
		{"code mismatch", common.ErrCodeMismatch, http.StatusOK, "verification code incorrect or expired"},
		{"too frequent", common.ErrTooFrequent, http.StatusOK, "too frequent, try again later"},
		{"external verification", common.ErrExternalVerification, http.StatusOK, "external verification failed"},
		{"unauthenticated", common.ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
		{"invalid token", common.ErrInvalidToken, http.StatusUnauthorized, "unauthenticated"},
		{"expired token", common.ErrTokenExpired, http.StatusUnauthorized, "unauthenticated"},
		{"forbidden", common.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"unexpected stays server-side", fmt.Errorf("pq: connection refused"), http.StatusOK, "service busy, try again later"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/x", func(c *gin.Context) { s.fail(c, tt.err) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest("GET", "/x", nil))

			require.Equal(t, tt.wantStatus, w.Code)

			var res Result
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.Equal(t, 1, res.Code)
			assert.Equal(t, tt.wantMessage, res.Message)
		})
	}
}

func TestOk_Envelope(t *testing.T) {
	r := gin.New()
	r.GET("/x", func(c *gin.Context) { ok(c, gin.H{"n": 1}) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/x", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var res Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 0, res.Code)
	assert.Equal(t, "ok", res.Message)
	assert.NotNil(t, res.Data)
}
