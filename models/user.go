package models

import (
	"time"

	"github.com/uptrace/bun"
)

// User represents a managed user record
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID          int64     `json:"id" bun:"id,pk,autoincrement"`
	DateOfBirth time.Time `json:"date_of_birth" bun:"date_of_birth,notnull"`
	Forename    string    `json:"forename" bun:"forename,notnull"`
	Surname     string    `json:"surname" bun:"surname,notnull"`
	Email       string    `json:"email" bun:"email,notnull"`
	IsActive    bool      `json:"is_active" bun:"is_active,notnull"`

	Logs []Log `json:"logs,omitempty" bun:"rel:has-many,join:id=user_id"`
}

// GetID returns the user's identity
func (u *User) GetID() int64 { return u.ID }

// SetID sets the user's identity
func (u *User) SetID(id int64) { u.ID = id }

// UserModel is the full read view of a user
type UserModel struct {
	BaseModel

	ID          int64     `json:"id"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Forename    string    `json:"forename"`
	Surname     string    `json:"surname"`
	Email       string    `json:"email"`
	IsActive    bool      `json:"is_active"`
}

// FullName returns forename and surname joined by a space
func (m UserModel) FullName() string {
	return m.Forename + " " + m.Surname
}

// AddUserModel is the input for creating a user
type AddUserModel struct {
	BaseModel

	DateOfBirth time.Time `json:"date_of_birth"`
	Forename    string    `json:"forename" validate:"required,min=2,max=50"`
	Surname     string    `json:"surname" validate:"required,min=2,max=50"`
	Email       string    `json:"email" validate:"required,email,max=100"`
}

// Validate validates the add form data
func (m *AddUserModel) Validate() []string {
	errors := validationMessages(m)
	if m.DateOfBirth.IsZero() {
		errors = append([]string{msgDateOfBirthRequired}, errors...)
	}
	return errors
}

// UpdateUserModel is the input for replacing a user's mutable fields
type UpdateUserModel struct {
	BaseModel

	ID          int64     `json:"id" validate:"gt=0"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Forename    string    `json:"forename" validate:"required,min=2,max=50"`
	Surname     string    `json:"surname" validate:"required,min=2,max=50"`
	Email       string    `json:"email" validate:"required,email,max=100"`
	IsActive    bool      `json:"is_active"`
}

// Validate validates the update form data
func (m *UpdateUserModel) Validate() []string {
	errors := validationMessages(m)
	if m.DateOfBirth.IsZero() {
		errors = append([]string{msgDateOfBirthRequired}, errors...)
	}
	return errors
}

// UserLogsModel is a user together with its audit trail
type UserLogsModel struct {
	BaseModel

	ID          int64      `json:"id"`
	DateOfBirth time.Time  `json:"date_of_birth"`
	Forename    string     `json:"forename"`
	Surname     string     `json:"surname"`
	Email       string     `json:"email"`
	IsActive    bool       `json:"is_active"`
	Logs        []LogModel `json:"logs"`
}

// FullName returns forename and surname joined by a space
func (m UserLogsModel) FullName() string {
	return m.Forename + " " + m.Surname
}

// TotalLogs returns the number of log entries, 0 if none
func (m UserLogsModel) TotalLogs() int {
	return len(m.Logs)
}
