package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/blogem/user-management/mapping"
	"github.com/blogem/user-management/models"
	"github.com/blogem/user-management/repositories"
)

var timeNow = func() time.Time {
	return time.Now()
}

// UserService interface defines user management business logic
type UserService interface {
	GetAll(ctx context.Context) ([]models.UserModel, error)
	GetByActiveStatus(ctx context.Context, isActive bool) ([]models.UserModel, error)
	Add(ctx context.Context, model *models.AddUserModel) (*models.UserModel, error)
	GetByID(ctx context.Context, id int64) (*models.UserModel, error)
	GetUpdateModel(ctx context.Context, id int64) (*models.UpdateUserModel, error)
	Update(ctx context.Context, model *models.UpdateUserModel) error
	GetUserAndLogs(ctx context.Context, id int64) (*models.UserLogsModel, error)
	Delete(ctx context.Context, id int64) error
}

// UserServiceOption configures a user service
type UserServiceOption func(*userService)

// WithAuditPolicy overrides DefaultAuditPolicy
func WithAuditPolicy(policy AuditPolicy) UserServiceOption {
	return func(s *userService) {
		s.policy = policy
	}
}

// WithDiagnosticLogger sets where best-effort audit failures are reported
func WithDiagnosticLogger(logger *log.Logger) UserServiceOption {
	return func(s *userService) {
		if logger != nil {
			s.diag = logger
		}
	}
}

// WithClock sets the clock used to timestamp audit logs
func WithClock(now func() time.Time) UserServiceOption {
	return func(s *userService) {
		if now != nil {
			s.now = now
		}
	}
}

// userService implements UserService interface
type userService struct {
	*BaseService[models.User, models.UserModel]
	updates    *BaseService[models.User, models.UpdateUserModel]
	userRepo   repositories.UserRepository
	logService LogService
	policy     AuditPolicy
	diag       *log.Logger
	now        func() time.Time
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository, logService LogService, opts ...UserServiceOption) UserService {
	base := NewBaseService[models.User](userRepo, mapping.Users)

	s := &userService{
		BaseService: base,
		updates:     WithMapper(base, mapping.UpdateUsers),
		userRepo:    userRepo,
		logService:  logService,
		policy:      DefaultAuditPolicy(),
		diag:        log.Default(),
		now:         timeNow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetByActiveStatus retrieves users by active flag; never returns a nil slice on success
func (s *userService) GetByActiveStatus(ctx context.Context, isActive bool) ([]models.UserModel, error) {
	users, err := s.userRepo.GetByActiveStatus(ctx, isActive)
	if err != nil {
		return nil, fmt.Errorf("failed to get users by active status: %w", err)
	}

	if len(users) == 0 {
		return []models.UserModel{}, nil
	}
	return mapping.Users.ToModels(users), nil
}

// Add creates a new, always active, user and records a "User Added" log
func (s *userService) Add(ctx context.Context, model *models.AddUserModel) (*models.UserModel, error) {
	if model == nil {
		return nil, fmt.Errorf("add user: %w", ErrNullArgument)
	}

	entity := mapping.AddUsers.ToEntity(model)
	entity.IsActive = true

	added, err := s.userRepo.Add(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("failed to add user: %w", err)
	}
	if added == nil {
		return nil, fmt.Errorf("failed to add user: %w", ErrInvalidOperation)
	}

	err = s.audit(ctx, s.policy.Add, models.LogTypeUserAdded, added.ID,
		fmt.Sprintf("User %s %s added successfully.", entity.Forename, entity.Surname))
	if err != nil {
		return nil, err
	}

	out := mapping.Users.ToModel(added)
	return &out, nil
}

// GetByID retrieves a user and records a "User Viewed" log; a missing user yields nil without error
func (s *userService) GetByID(ctx context.Context, id int64) (*models.UserModel, error) {
	entity, err := s.userRepo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	err = s.audit(ctx, s.policy.View, models.LogTypeUserViewed, entity.ID,
		fmt.Sprintf("User %s %s was viewed.", entity.Forename, entity.Surname))
	if err != nil {
		return nil, err
	}

	out := mapping.Users.ToModel(entity)
	return &out, nil
}

// GetUpdateModel retrieves a user in its editable shape without recording a view
func (s *userService) GetUpdateModel(ctx context.Context, id int64) (*models.UpdateUserModel, error) {
	return s.updates.GetByID(ctx, id)
}

// Update replaces the user's mutable fields and records a "User Updated" log
func (s *userService) Update(ctx context.Context, model *models.UpdateUserModel) error {
	if model == nil {
		return fmt.Errorf("update user: %w", ErrNullArgument)
	}

	entity := mapping.UpdateUsers.ToEntity(model)
	if err := s.userRepo.Update(ctx, entity); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return s.audit(ctx, s.policy.Update, models.LogTypeUserUpdated, entity.ID,
		fmt.Sprintf("User %s %s was updated.", entity.Forename, entity.Surname))
}

// GetUserAndLogs retrieves a user with its logs; a missing user yields nil without error
func (s *userService) GetUserAndLogs(ctx context.Context, id int64) (*models.UserLogsModel, error) {
	user, err := s.userRepo.GetWithLogs(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user and logs: %w", err)
	}
	if user == nil {
		return nil, nil
	}

	out := mapping.UserLogs.ToModel(user)
	return &out, nil
}

// audit writes one log entry, applying policy when the write fails
func (s *userService) audit(ctx context.Context, policy LogPolicy, logType string, userID int64, message string) error {
	entry := &models.LogModel{
		LogType:     logType,
		LogMessage:  message,
		DateAndTime: s.now().UTC(),
		UserID:      userID,
	}

	if _, err := s.logService.Add(ctx, entry); err != nil {
		if policy == BestEffortLog {
			s.diag.Printf("Failed to record %q log for user %d: %v", logType, userID, err)
			return nil
		}
		return fmt.Errorf("failed to record %q log for user %d: %w", logType, userID, err)
	}

	return nil
}
