package services

import (
	"context"

	"github.com/blogem/user-management/mapping"
	"github.com/blogem/user-management/models"
	"github.com/blogem/user-management/repositories"
)

// LogService interface defines audit log business logic
type LogService interface {
	Add(ctx context.Context, model *models.LogModel) (*models.LogModel, error)
	GetByID(ctx context.Context, id int64) (*models.LogModel, error)
	GetAll(ctx context.Context) ([]models.LogModel, error)
	Update(ctx context.Context, model *models.LogModel) error
	Delete(ctx context.Context, id int64) error
	GetByUserID(ctx context.Context, userID int64) ([]models.LogModel, error)
}

// logService implements LogService interface
type logService struct {
	*BaseService[models.Log, models.LogModel]
	logRepo repositories.LogRepository
}

// NewLogService creates a new log service
func NewLogService(logRepo repositories.LogRepository) LogService {
	return &logService{
		BaseService: NewBaseService[models.Log](logRepo, mapping.Logs),
		logRepo:     logRepo,
	}
}

// GetByUserID retrieves the logs owned by a user
func (s *logService) GetByUserID(ctx context.Context, userID int64) ([]models.LogModel, error) {
	logs, err := s.logRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapping.Logs.ToModels(logs), nil
}
