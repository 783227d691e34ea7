package repositories

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/uptrace/bun"

	"github.com/blogem/user-management/database"
	"github.com/blogem/user-management/models"
)

// seeded by 003_seed_users.sql
const (
	seededUsers         = 11
	seededActiveUsers   = 7
	seededInactiveUsers = 4
)

func setupTestDB(t *testing.T) *bun.DB {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	// Initialize test database using the actual migration system
	if err := database.InitializeDatabase(dbPath); err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() {
		database.CloseDB()
	})

	return database.GetBunDB()
}

func newTestUser() *models.User {
	return &models.User{
		DateOfBirth: time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		Forename:    "Test",
		Surname:     "User",
		Email:       "test.user@example.com",
		IsActive:    true,
	}
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	// Test Add
	user := newTestUser()
	added, err := repo.Add(ctx, user)
	if err != nil {
		t.Fatalf("Failed to add user: %v", err)
	}

	if added.ID == 0 {
		t.Error("Expected user ID to be set after creation")
	}
	if added.ID <= seededUsers {
		t.Errorf("Expected new ID after the seeded rows, got %d", added.ID)
	}

	// Test GetByID
	retrieved, err := repo.GetByID(ctx, added.ID)
	if err != nil {
		t.Fatalf("Failed to get user by ID: %v", err)
	}

	if retrieved.Forename != user.Forename || retrieved.Email != user.Email {
		t.Errorf("Expected %s <%s>, got %s <%s>", user.Forename, user.Email, retrieved.Forename, retrieved.Email)
	}
	if !retrieved.DateOfBirth.Equal(user.DateOfBirth) {
		t.Errorf("Expected date of birth %v, got %v", user.DateOfBirth, retrieved.DateOfBirth)
	}

	// Test GetAll
	users, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("Failed to get all users: %v", err)
	}

	if len(users) != seededUsers+1 {
		t.Errorf("Expected %d users, got %d", seededUsers+1, len(users))
	}

	// Test Update
	retrieved.Surname = "Updated"
	retrieved.IsActive = false
	if err := repo.Update(ctx, retrieved); err != nil {
		t.Fatalf("Failed to update user: %v", err)
	}

	updated, err := repo.GetByID(ctx, added.ID)
	if err != nil {
		t.Fatalf("Failed to get updated user: %v", err)
	}

	if updated.Surname != "Updated" || updated.IsActive {
		t.Errorf("Expected surname 'Updated' and inactive, got %s active=%v", updated.Surname, updated.IsActive)
	}

	// Test Delete
	if err := repo.Delete(ctx, added.ID); err != nil {
		t.Fatalf("Failed to delete user: %v", err)
	}

	// Verify deletion
	_, err = repo.GetByID(ctx, added.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound when getting deleted user, got %v", err)
	}
}

func TestUserRepository_GetByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user, err := repo.GetByID(context.Background(), 9999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	if user != nil {
		t.Errorf("Expected nil user, got %+v", user)
	}
}

func TestUserRepository_DeleteNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	err := repo.Delete(context.Background(), 9999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound deleting a missing user, got %v", err)
	}
}

func TestUserRepository_UpdateNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	missing := newTestUser()
	missing.ID = 9999

	err := repo.Update(context.Background(), missing)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound updating a missing user, got %v", err)
	}
}

func TestUserRepository_GetByActiveStatus(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	active, err := repo.GetByActiveStatus(ctx, true)
	if err != nil {
		t.Fatalf("Failed to get active users: %v", err)
	}
	if len(active) != seededActiveUsers {
		t.Errorf("Expected %d active users, got %d", seededActiveUsers, len(active))
	}
	for _, u := range active {
		if !u.IsActive {
			t.Errorf("Expected only active users, got inactive user %d", u.ID)
		}
	}

	inactive, err := repo.GetByActiveStatus(ctx, false)
	if err != nil {
		t.Fatalf("Failed to get inactive users: %v", err)
	}
	if len(inactive) != seededInactiveUsers {
		t.Errorf("Expected %d inactive users, got %d", seededInactiveUsers, len(inactive))
	}

	// Activate every inactive user
	for i := range inactive {
		inactive[i].IsActive = true
		if err := repo.Update(ctx, &inactive[i]); err != nil {
			t.Fatalf("Failed to activate user %d: %v", inactive[i].ID, err)
		}
	}

	none, err := repo.GetByActiveStatus(ctx, false)
	if err != nil {
		t.Fatalf("Failed to get inactive users: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", none)
	}
}

func TestUserRepository_GetWithLogs(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	logRepo := NewLogRepository(db)

	// Seeded user without logs
	user, err := userRepo.GetWithLogs(ctx, 1)
	if err != nil {
		t.Fatalf("Failed to get user with logs: %v", err)
	}
	if user == nil {
		t.Fatal("Expected seeded user 1")
	}
	if user.Logs == nil || len(user.Logs) != 0 {
		t.Errorf("Expected empty non-nil logs, got %v", user.Logs)
	}

	now := time.Now().UTC()
	for i, logType := range []string{models.LogTypeUserAdded, models.LogTypeUserViewed} {
		_, err := logRepo.Add(ctx, &models.Log{
			UserID:      1,
			LogType:     logType,
			LogMessage:  "entry",
			DateAndTime: now.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Failed to add log: %v", err)
		}
	}

	user, err = userRepo.GetWithLogs(ctx, 1)
	if err != nil {
		t.Fatalf("Failed to get user with logs: %v", err)
	}
	if len(user.Logs) != 2 {
		t.Fatalf("Expected 2 logs, got %d", len(user.Logs))
	}
	if user.Logs[0].LogType != models.LogTypeUserAdded {
		t.Errorf("Expected oldest log first, got %s", user.Logs[0].LogType)
	}

	// Missing user is absent, not an error
	missing, err := userRepo.GetWithLogs(ctx, 9999)
	if err != nil {
		t.Fatalf("Expected no error for missing user, got %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for missing user, got %+v", missing)
	}
}

func TestLogRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewLogRepository(db)

	// Test GetByUserID with no logs
	empty, err := repo.GetByUserID(ctx, 2)
	if err != nil {
		t.Fatalf("Failed to get logs by user ID: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", empty)
	}

	// Test Add
	entry := &models.Log{
		UserID:      2,
		LogType:     models.LogTypeUserAdded,
		LogMessage:  "User Benjamin Franklin Gates added successfully.",
		DateAndTime: time.Now().UTC(),
	}
	added, err := repo.Add(ctx, entry)
	if err != nil {
		t.Fatalf("Failed to add log: %v", err)
	}
	if added.ID == 0 {
		t.Error("Expected log ID to be set after creation")
	}

	if _, err := repo.Add(ctx, &models.Log{UserID: 3, LogType: models.LogTypeUserViewed, DateAndTime: time.Now().UTC()}); err != nil {
		t.Fatalf("Failed to add log: %v", err)
	}

	// Test GetByID
	retrieved, err := repo.GetByID(ctx, added.ID)
	if err != nil {
		t.Fatalf("Failed to get log by ID: %v", err)
	}
	if retrieved.LogMessage != entry.LogMessage {
		t.Errorf("Expected message %q, got %q", entry.LogMessage, retrieved.LogMessage)
	}

	// Test GetByUserID
	logs, err := repo.GetByUserID(ctx, 2)
	if err != nil {
		t.Fatalf("Failed to get logs by user ID: %v", err)
	}
	if len(logs) != 1 || logs[0].UserID != 2 {
		t.Errorf("Expected one log for user 2, got %v", logs)
	}

	// Test GetAll
	all, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("Failed to get all logs: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected 2 logs, got %d", len(all))
	}

	// Test GetByID not found
	if _, err := repo.GetByID(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestLogRepository_RejectsOrphanedLog(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLogRepository(db)

	_, err := repo.Add(context.Background(), &models.Log{
		UserID:      9999,
		LogType:     models.LogTypeUserAdded,
		DateAndTime: time.Now().UTC(),
	})
	if err == nil {
		t.Error("Expected foreign key error for a log without an owning user")
	}
}

func TestLogRepository_CascadesOnUserDelete(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	logRepo := NewLogRepository(db)

	if _, err := logRepo.Add(ctx, &models.Log{UserID: 5, LogType: models.LogTypeUserViewed, DateAndTime: time.Now().UTC()}); err != nil {
		t.Fatalf("Failed to add log: %v", err)
	}

	if err := userRepo.Delete(ctx, 5); err != nil {
		t.Fatalf("Failed to delete user: %v", err)
	}

	logs, err := logRepo.GetByUserID(ctx, 5)
	if err != nil {
		t.Fatalf("Failed to get logs by user ID: %v", err)
	}
	if len(logs) != 0 {
		t.Errorf("Expected logs to be removed with their user, got %d", len(logs))
	}
}
