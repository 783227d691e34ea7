package services

import (
	"github.com/blogem/user-management/repositories"
)

// Services holds all service instances
type Services struct {
	User UserService
	Log  LogService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, opts ...UserServiceOption) *Services {
	logService := NewLogService(repos.Log)

	return &Services{
		User: NewUserService(repos.User, logService, opts...),
		Log:  logService,
	}
}
