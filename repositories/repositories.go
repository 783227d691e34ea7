package repositories

import (
	"github.com/uptrace/bun"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	User UserRepository
	Log  LogRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db bun.IDB) *Repositories {
	return &Repositories{
		User: NewUserRepository(db),
		Log:  NewLogRepository(db),
	}
}
