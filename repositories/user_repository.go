package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/blogem/user-management/models"
)

// UserRepository interface defines user database operations
type UserRepository interface {
	Repository[models.User]
	GetByActiveStatus(ctx context.Context, isActive bool) ([]models.User, error)
	GetWithLogs(ctx context.Context, id int64) (*models.User, error)
}

// userRepository implements UserRepository interface
type userRepository struct {
	Repository[models.User]
	db bun.IDB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db bun.IDB) UserRepository {
	return &userRepository{
		Repository: NewRepository[models.User](db),
		db:         db,
	}
}

// GetByActiveStatus retrieves users whose active flag equals isActive
func (r *userRepository) GetByActiveStatus(ctx context.Context, isActive bool) ([]models.User, error) {
	users := make([]models.User, 0)

	err := r.db.NewSelect().
		Model(&users).
		Where("is_active = ?", isActive).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query users by active status: %w", err)
	}

	return users, nil
}

// GetWithLogs retrieves a user with its logs loaded; a missing user yields nil without error
func (r *userRepository) GetWithLogs(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{ID: id}

	err := r.db.NewSelect().
		Model(user).
		Relation("Logs", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("date_and_time ASC", "id ASC")
		}).
		WherePK().
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user with logs: %w", err)
	}

	if user.Logs == nil {
		user.Logs = []models.Log{}
	}
	return user, nil
}
