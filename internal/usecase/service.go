package usecase

import (
	"user-management/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Auth AuthService
	User UserService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Auth: NewAuthService(repo.User, log),
		User: NewUserService(repo.User, log),
	}
}
