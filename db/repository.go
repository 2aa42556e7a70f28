package db

import (
	"context"
	"time"

	"gorm.io/gorm"

	"userbase/internal/common"
	"userbase/models"
)

var (
	ErrNotFound = common.ErrNotFound
)

// UserRepository defines the interface for user operations
type UserRepository interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	// ReplaceToken stores token as the user's only valid token.
	ReplaceToken(ctx context.Context, id uint, token string, issuedAt time.Time) error
}

// RepositoryFactory creates repositories on top of a shared gorm handle
type RepositoryFactory struct {
	DB *gorm.DB
}

// NewRepositoryFactory creates a new repository factory
func NewRepositoryFactory(gdb *gorm.DB) *RepositoryFactory {
	return &RepositoryFactory{DB: gdb}
}

// NewUserRepository creates a new user repository
func (f *RepositoryFactory) NewUserRepository() UserRepository {
	return NewGormUserRepository(f.DB)
}
