// Package services contains the server-side business logic. This file
// implements UserService: registration and login backed by one-time mail
// codes, token issuance with a revocable session registry, profile
// management, and the admin user surface.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Dvesiz/Ship-Management-System/internal/common"
	"github.com/Dvesiz/Ship-Management-System/internal/logging"
	"github.com/Dvesiz/Ship-Management-System/internal/server/auth"
	"github.com/Dvesiz/Ship-Management-System/internal/server/kv"
	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/repomanager"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/users"
)

const (
	codeKeyPrefix = "register:code:"
	lockKeyPrefix = "send:lock:"

	codeTTL = 5 * time.Minute
	lockTTL = time.Minute

	searchLimit = 20
)

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	signer      *auth.Signer
	sessions    *auth.SessionRegistry
	codes       kv.Store
	mailer      Mailer
	verifier    HumanVerifier
	logger      logging.Logger
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, signer *auth.Signer,
	sessions *auth.SessionRegistry, codes kv.Store, mailer Mailer, verifier HumanVerifier,
	logger logging.Logger) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		signer:      signer,
		sessions:    sessions,
		codes:       codes,
		mailer:      mailer,
		verifier:    verifier,
		logger:      logger,
	}
}

// SendCode issues a 6-digit verification code to the address, valid for five
// minutes. Repeat requests within a minute are refused. Mail delivery runs in
// the background; a delivery failure does not undo the stored code.
func (s *UserService) SendCode(ctx context.Context, email string) error {
	locked, err := s.codes.Exists(ctx, lockKeyPrefix+email)
	if err != nil {
		return fmt.Errorf("send lock check: %w", err)
	}
	if locked {
		return common.ErrTooFrequent
	}

	code, err := common.SixDigitCode()
	if err != nil {
		return fmt.Errorf("code generation: %w", err)
	}
	if err := s.codes.Set(ctx, codeKeyPrefix+email, code, codeTTL); err != nil {
		return fmt.Errorf("code store: %w", err)
	}
	if err := s.codes.Set(ctx, lockKeyPrefix+email, "1", lockTTL); err != nil {
		return fmt.Errorf("lock store: %w", err)
	}

	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.mailer.SendCode(sendCtx, email, code); err != nil {
			s.logger.Warn(sendCtx, "verification mail delivery failed", "email", email, "error", err)
		}
	}()

	s.logger.Info(ctx, "verification code issued", "email", email, "code", code)
	return nil
}

// consumeCode checks the stored code for email and deletes it on match.
// Codes are single-use: a successful match invalidates the code immediately.
func (s *UserService) consumeCode(ctx context.Context, email, code string) error {
	stored, err := s.codes.Get(ctx, codeKeyPrefix+email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrCodeMismatch
		}
		return fmt.Errorf("code lookup: %w", err)
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return common.ErrCodeMismatch
	}
	return s.codes.Delete(ctx, codeKeyPrefix+email)
}

func (s *UserService) Register(ctx context.Context, username, password, email, code string) (*models.User, error) {
	if username == "" || password == "" || email == "" {
		return nil, common.ErrorValidation
	}
	if err := s.consumeCode(ctx, email, code); err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)
	if _, err := repo.GetByUsername(ctx, username); err == nil {
		return nil, common.ErrorConflict
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("password hash: %w", err)
	}

	user := &models.User{
		Username:     username,
		Nickname:     username,
		PasswordHash: hash,
		Email:        email,
		Role:         models.RoleUser,
	}
	created, err := repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user registered", "username", username)
	return created, nil
}

// Login verifies the bot challenge, then the credentials, and on success
// issues a session token registered in the revocation registry. Unknown user
// and wrong password both map to ErrUnauthenticated.
func (s *UserService) Login(ctx context.Context, username, password, challengeToken string) (string, *models.User, error) {
	if !s.verifier.Verify(ctx, challengeToken) {
		return "", nil, common.ErrExternalVerification
	}

	user, err := s.repomanager.Users(s.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrUnauthenticated
		}
		return "", nil, err
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", nil, common.ErrUnauthenticated
	}

	return s.issueSession(ctx, user)
}

// LoginByEmail authenticates with a mailed one-time code instead of a
// password.
func (s *UserService) LoginByEmail(ctx context.Context, email, code string) (string, *models.User, error) {
	if err := s.consumeCode(ctx, email, code); err != nil {
		return "", nil, err
	}

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrUnauthenticated
		}
		return "", nil, err
	}

	return s.issueSession(ctx, user)
}

func (s *UserService) issueSession(ctx context.Context, user *models.User) (string, *models.User, error) {
	token, err := s.signer.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("token issue: %w", err)
	}
	if err := s.sessions.Put(ctx, token); err != nil {
		return "", nil, fmt.Errorf("session register: %w", err)
	}
	return token, user, nil
}

// ResetPassword sets a new password after a one-time code check. Existing
// sessions keep working until their TTL runs out.
func (s *UserService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if newPassword == "" {
		return common.ErrorValidation
	}
	if err := s.consumeCode(ctx, email, code); err != nil {
		return err
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("password hash: %w", err)
	}
	return repo.UpdatePasswordHash(ctx, user.ID, hash)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByUsername(ctx, username)
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, user *models.User) error {
	return s.repomanager.Users(s.db).Update(ctx, user)
}

// UpdatePassword changes the password of an authenticated user. The old
// password must match and the new one must differ from it.
func (s *UserService) UpdatePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	if newPassword == "" || oldPassword == newPassword {
		return common.ErrorValidation
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(oldPassword, user.PasswordHash) {
		return common.ErrUnauthenticated
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("password hash: %w", err)
	}
	return repo.UpdatePasswordHash(ctx, userID, hash)
}

func (s *UserService) UpdateAvatar(ctx context.Context, username, avatarURL string) error {
	return s.repomanager.Users(s.db).UpdateAvatar(ctx, username, avatarURL)
}

func (s *UserService) Search(ctx context.Context, query string) ([]models.UserView, error) {
	return s.repomanager.Users(s.db).Search(ctx, query, searchLimit)
}

// Admin surface.

func (s *UserService) Page(ctx context.Context, offset, limit int, f users.PageFilter) (*models.Page[models.User], error) {
	return s.repomanager.Users(s.db).Page(ctx, offset, limit, f)
}

func (s *UserService) UpdateRole(ctx context.Context, id int64, role models.Role) error {
	return s.repomanager.Users(s.db).UpdateRole(ctx, id, role)
}

// ResetUserPassword lets an admin set a user's password directly.
func (s *UserService) ResetUserPassword(ctx context.Context, id int64, newPassword string) error {
	if newPassword == "" {
		return common.ErrorValidation
	}
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("password hash: %w", err)
	}
	return s.repomanager.Users(s.db).UpdatePasswordHash(ctx, id, hash)
}

func (s *UserService) Delete(ctx context.Context, id, currentUserID int64) error {
	if id == currentUserID {
		return common.ErrorValidation
	}
	return s.repomanager.Users(s.db).Delete(ctx, id)
}

// DeleteBatch removes the given users, silently excluding the caller so an
// admin cannot delete their own account in a bulk operation.
func (s *UserService) DeleteBatch(ctx context.Context, ids []int64, currentUserID int64) (int64, error) {
	filtered := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id != currentUserID {
			filtered = append(filtered, id)
		}
	}
	return s.repomanager.Users(s.db).DeleteBatch(ctx, filtered)
}

func (s *UserService) Stats(ctx context.Context) (*users.Stats, error) {
	return s.repomanager.Users(s.db).GetStats(ctx)
}
