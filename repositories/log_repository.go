package repositories

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/blogem/user-management/models"
)

// LogRepository handles audit log persistence
type LogRepository interface {
	Repository[models.Log]
	GetByUserID(ctx context.Context, userID int64) ([]models.Log, error)
}

type logRepository struct {
	Repository[models.Log]
	db bun.IDB
}

// NewLogRepository creates a new log repository
func NewLogRepository(db bun.IDB) LogRepository {
	return &logRepository{
		Repository: NewRepository[models.Log](db),
		db:         db,
	}
}

// GetByUserID retrieves the logs owned by a user, newest first
func (r *logRepository) GetByUserID(ctx context.Context, userID int64) ([]models.Log, error) {
	logs := make([]models.Log, 0)

	err := r.db.NewSelect().
		Model(&logs).
		Where("user_id = ?", userID).
		Order("date_and_time DESC", "id DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query logs for user %d: %w", userID, err)
	}

	return logs, nil
}
