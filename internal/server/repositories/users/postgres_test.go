package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Dvesiz/Ship-Management-System/internal/common"
	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(42), now, now)
	mock.ExpectQuery(`INSERT\s+INTO\s+users`).
		WithArgs("alice", "Alice", "hash", "alice@example.com", "", "USER").
		WillReturnRows(rows)

	u := &models.User{Username: "alice", Nickname: "Alice", PasswordHash: "hash", Email: "alice@example.com", Role: models.RoleUser}
	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != 42 || got.Username != "alice" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{Username: "alice", Role: models.RoleUser})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func userRows(id int64, username string, role string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "username", "nickname", "password_hash", "email", "avatar_url", "role", "created_at", "updated_at"}).
		AddRow(id, username, "", "hash", username+"@example.com", "", role, now, now)
}

func TestGetByUsername_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM users WHERE username = \$1`).
		WithArgs("alice").
		WillReturnRows(userRows(1, "alice", "ADMIN"))

	got, err := repo.GetByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByUsername error: %v", err)
	}
	if got.ID != 1 || got.Role != models.RoleAdmin {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetByUsername_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM users WHERE username = \$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestDeleteBatch_Empty(t *testing.T) {
	repo, _, db := newRepoWithMock(t)
	defer db.Close()

	n, err := repo.DeleteBatch(context.Background(), nil)
	if err != nil {
		t.Fatalf("DeleteBatch error: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 rows, got %d", n)
	}
}

func TestDeleteBatch_Placeholders(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM users WHERE id IN \(\$1, \$2, \$3\)`).
		WithArgs(int64(1), int64(2), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeleteBatch(context.Background(), []int64{1, 2, 3})
	if err != nil {
		t.Fatalf("DeleteBatch error: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 rows, got %d", n)
	}
}

func TestPage_WithFilters(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users WHERE TRUE AND username LIKE \$1 AND role = \$2`).
		WithArgs("%ali%", "USER").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	mock.ExpectQuery(`SELECT .+ FROM users WHERE TRUE AND username LIKE \$1 AND role = \$2 ORDER BY created_at DESC LIMIT \$3 OFFSET \$4`).
		WithArgs("%ali%", "USER", 10, 0).
		WillReturnRows(userRows(1, "alice", "USER"))

	page, err := repo.Page(context.Background(), 0, 10, PageFilter{UsernameLike: "ali", Role: "USER"})
	if err != nil {
		t.Fatalf("Page error: %v", err)
	}
	if page.Total != 1 || len(page.Items) != 1 || page.Items[0].Username != "alice" {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestGetStats(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\),`).
		WillReturnRows(sqlmock.NewRows([]string{"total", "admins", "users"}).AddRow(int64(5), int64(1), int64(4)))

	s, err := repo.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats error: %v", err)
	}
	if s.TotalUsers != 5 || s.AdminCount != 1 || s.UserCount != 4 {
		t.Fatalf("unexpected stats: %+v", s)
	}
}
