package services

import (
	"bytes"
	"context"
	"log"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/user-management/database"
	"github.com/blogem/user-management/models"
	"github.com/blogem/user-management/repositories"
)

func setupServices(t *testing.T, opts ...UserServiceOption) *Services {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.InitializeDatabase(dbPath))
	t.Cleanup(func() {
		database.CloseDB()
	})

	return NewServices(repositories.NewRepositories(database.GetBunDB()), opts...)
}

func TestServices_AddUserWritesOneLog(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	added, err := svc.User.Add(ctx, &models.AddUserModel{
		DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Forename:    "John",
		Surname:     "Doe",
		Email:       "john@example.com",
	})
	require.NoError(t, err)
	assert.Positive(t, added.ID)
	assert.True(t, added.IsActive)

	logs, err := svc.Log.GetByUserID(ctx, added.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, models.LogTypeUserAdded, logs[0].LogType)
	assert.Equal(t, "User John Doe added successfully.", logs[0].LogMessage)
	assert.Equal(t, added.ID, logs[0].UserID)
}

func TestServices_ViewThenUpdateAccumulatesLogs(t *testing.T) {
	svc := setupServices(t, WithDiagnosticLogger(log.New(&bytes.Buffer{}, "", 0)))
	ctx := context.Background()

	viewed, err := svc.User.GetByID(ctx, 3)
	require.NoError(t, err)
	require.NotNil(t, viewed)
	assert.False(t, viewed.IsActive)

	editable, err := svc.User.GetUpdateModel(ctx, 3)
	require.NoError(t, err)
	editable.IsActive = true
	require.NoError(t, svc.User.Update(ctx, editable))

	active, err := svc.User.GetByActiveStatus(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 8)

	withLogs, err := svc.User.GetUserAndLogs(ctx, 3)
	require.NoError(t, err)
	require.NotNil(t, withLogs)
	require.Equal(t, 2, withLogs.TotalLogs())
	assert.Equal(t, models.LogTypeUserViewed, withLogs.Logs[0].LogType)
	assert.Equal(t, models.LogTypeUserUpdated, withLogs.Logs[1].LogType)
}

func TestServices_MissingUser(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	viewed, err := svc.User.GetByID(ctx, 999)
	assert.NoError(t, err)
	assert.Nil(t, viewed)

	withLogs, err := svc.User.GetUserAndLogs(ctx, 999)
	assert.NoError(t, err)
	assert.Nil(t, withLogs)

	err = svc.User.Update(ctx, &models.UpdateUserModel{ID: 999, Forename: "No", Surname: "Body", Email: "no@body.com"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	assert.ErrorIs(t, svc.User.Delete(ctx, 999), repositories.ErrNotFound)

	all, err := svc.Log.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestServices_DeleteRemovesUserLogs(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	_, err := svc.User.GetByID(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, svc.User.Delete(ctx, 1))

	logs, err := svc.Log.GetByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, logs)

	users, err := svc.User.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 10)
}
