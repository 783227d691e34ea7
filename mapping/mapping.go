// Package mapping converts between persisted entities and the view models
// handed to controllers. Every conversion is a plain field-by-field copy so a
// renamed or retyped field fails to compile instead of silently dropping data.
package mapping

import (
	"github.com/blogem/user-management/models"
)

// Mapper pairs the two directions of an entity/model conversion
type Mapper[T any, M any] struct {
	ToModel  func(entity *T) M
	ToEntity func(model *M) *T
}

// ToModels maps every entity; the result is never nil
func (m Mapper[T, M]) ToModels(entities []T) []M {
	out := make([]M, 0, len(entities))
	for i := range entities {
		out = append(out, m.ToModel(&entities[i]))
	}
	return out
}

var (
	Users       = Mapper[models.User, models.UserModel]{ToModel: UserToModel, ToEntity: UserFromModel}
	AddUsers    = Mapper[models.User, models.AddUserModel]{ToModel: UserToAddModel, ToEntity: UserFromAddModel}
	UpdateUsers = Mapper[models.User, models.UpdateUserModel]{ToModel: UserToUpdateModel, ToEntity: UserFromUpdateModel}
	UserLogs    = Mapper[models.User, models.UserLogsModel]{ToModel: UserToLogsModel, ToEntity: UserFromLogsModel}
	Logs        = Mapper[models.Log, models.LogModel]{ToModel: LogToModel, ToEntity: LogFromModel}
)

func UserToModel(u *models.User) models.UserModel {
	return models.UserModel{
		ID:          u.ID,
		DateOfBirth: u.DateOfBirth,
		Forename:    u.Forename,
		Surname:     u.Surname,
		Email:       u.Email,
		IsActive:    u.IsActive,
	}
}

func UserFromModel(m *models.UserModel) *models.User {
	return &models.User{
		ID:          m.ID,
		DateOfBirth: m.DateOfBirth,
		Forename:    m.Forename,
		Surname:     m.Surname,
		Email:       m.Email,
		IsActive:    m.IsActive,
	}
}

func UserToAddModel(u *models.User) models.AddUserModel {
	return models.AddUserModel{
		DateOfBirth: u.DateOfBirth,
		Forename:    u.Forename,
		Surname:     u.Surname,
		Email:       u.Email,
	}
}

// UserFromAddModel leaves ID unset; the store assigns it on insert
func UserFromAddModel(m *models.AddUserModel) *models.User {
	return &models.User{
		DateOfBirth: m.DateOfBirth,
		Forename:    m.Forename,
		Surname:     m.Surname,
		Email:       m.Email,
	}
}

func UserToUpdateModel(u *models.User) models.UpdateUserModel {
	return models.UpdateUserModel{
		ID:          u.ID,
		DateOfBirth: u.DateOfBirth,
		Forename:    u.Forename,
		Surname:     u.Surname,
		Email:       u.Email,
		IsActive:    u.IsActive,
	}
}

func UserFromUpdateModel(m *models.UpdateUserModel) *models.User {
	return &models.User{
		ID:          m.ID,
		DateOfBirth: m.DateOfBirth,
		Forename:    m.Forename,
		Surname:     m.Surname,
		Email:       m.Email,
		IsActive:    m.IsActive,
	}
}

func UserToLogsModel(u *models.User) models.UserLogsModel {
	return models.UserLogsModel{
		ID:          u.ID,
		DateOfBirth: u.DateOfBirth,
		Forename:    u.Forename,
		Surname:     u.Surname,
		Email:       u.Email,
		IsActive:    u.IsActive,
		Logs:        Logs.ToModels(u.Logs),
	}
}

func UserFromLogsModel(m *models.UserLogsModel) *models.User {
	u := &models.User{
		ID:          m.ID,
		DateOfBirth: m.DateOfBirth,
		Forename:    m.Forename,
		Surname:     m.Surname,
		Email:       m.Email,
		IsActive:    m.IsActive,
	}
	if len(m.Logs) > 0 {
		u.Logs = make([]models.Log, 0, len(m.Logs))
		for i := range m.Logs {
			u.Logs = append(u.Logs, *LogFromModel(&m.Logs[i]))
		}
	}
	return u
}

func LogToModel(l *models.Log) models.LogModel {
	return models.LogModel{
		ID:          l.ID,
		UserID:      l.UserID,
		LogType:     l.LogType,
		LogMessage:  l.LogMessage,
		DateAndTime: l.DateAndTime,
	}
}

func LogFromModel(m *models.LogModel) *models.Log {
	return &models.Log{
		ID:          m.ID,
		UserID:      m.UserID,
		LogType:     m.LogType,
		LogMessage:  m.LogMessage,
		DateAndTime: m.DateAndTime,
	}
}
