package users

import (
	"context"

	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
)

// PageFilter narrows the admin user listing.
type PageFilter struct {
	UsernameLike string
	Role         string
}

// Stats is the admin dashboard user breakdown.
type Stats struct {
	TotalUsers int64 `json:"totalUsers"`
	AdminCount int64 `json:"adminCount"`
	UserCount  int64 `json:"userCount"`
}

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
	UpdateAvatar(ctx context.Context, username, avatarURL string) error
	UpdateRole(ctx context.Context, id int64, role models.Role) error
	Delete(ctx context.Context, id int64) error
	DeleteBatch(ctx context.Context, ids []int64) (int64, error)
	Page(ctx context.Context, offset, limit int, f PageFilter) (*models.Page[models.User], error)
	Search(ctx context.Context, query string, limit int) ([]models.UserView, error)
	GetStats(ctx context.Context) (*Stats, error)
}
