package models

import (
	"time"
)

// Entity is implemented by every persisted record with a store-assigned numeric identity
type Entity interface {
	GetID() int64
	SetID(id int64)
}

// ViewModel marks the externally-facing shapes the services hand out
type ViewModel interface {
	viewModel()
}

// BaseModel is embedded by every view model
type BaseModel struct{}

func (BaseModel) viewModel() {}

// FlashMessage represents a flash message for user feedback
type FlashMessage struct {
	Type    string `json:"type"` // "success", "error", "warning", "info"
	Message string `json:"message"`
}

// DateLayout is the layout used by date inputs and the date_of_birth column
const DateLayout = "2006-01-02"

// FormatDate formats a time as YYYY-MM-DD
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// FormatDateTime formats a time as YYYY-MM-DD HH:MM
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

// ParseDate parses a YYYY-MM-DD string into a time.Time
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(DateLayout, dateStr)
}
