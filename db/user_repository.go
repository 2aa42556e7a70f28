package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"userbase/internal/util"
	"userbase/models"
)

// GormUserRepository implements UserRepository with gorm
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(gdb *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: gdb}
}

// Count returns the number of rows in Users
func (r *GormUserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("error counting users: %w", err)
	}
	return n, nil
}

// Create inserts a user and fills in its ID and timestamps
func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	err := util.RetryOnLock(ctx, func() error {
		return r.db.WithContext(ctx).Create(user).Error
	})
	if err != nil {
		return fmt.Errorf("error creating user %q: %w", user.Username, err)
	}
	return nil
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error finding user %q: %w", username, err)
	}
	return &user, nil
}

// ReplaceToken overwrites token and issuedDate in a single update
func (r *GormUserRepository) ReplaceToken(ctx context.Context, id uint, token string, issuedAt time.Time) error {
	var affected int64
	err := util.RetryOnLock(ctx, func() error {
		result := r.db.WithContext(ctx).
			Model(&models.User{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"token":      token,
				"issuedDate": issuedAt,
			})
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return fmt.Errorf("error replacing token for user %d: %w", id, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
