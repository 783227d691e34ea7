package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Audit log classifications
const (
	LogTypeUserAdded   = "User Added"
	LogTypeUserUpdated = "User Updated"
	LogTypeUserDeleted = "User Deleted"
	LogTypeUserViewed  = "User Viewed"
)

// Log is an append-only audit entry owned by a user
type Log struct {
	bun.BaseModel `bun:"table:logs,alias:l"`

	ID          int64     `json:"id" bun:"id,pk,autoincrement"`
	UserID      int64     `json:"user_id" bun:"user_id,notnull"`
	LogType     string    `json:"log_type" bun:"log_type"`
	LogMessage  string    `json:"log_message" bun:"log_message"`
	DateAndTime time.Time `json:"date_and_time" bun:"date_and_time,notnull"`
}

// GetID returns the log's identity
func (l *Log) GetID() int64 { return l.ID }

// SetID sets the log's identity
func (l *Log) SetID(id int64) { l.ID = id }

// LogModel is the read view of an audit entry
type LogModel struct {
	BaseModel

	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	LogType     string    `json:"log_type"`
	LogMessage  string    `json:"log_message"`
	DateAndTime time.Time `json:"date_and_time"`
}
