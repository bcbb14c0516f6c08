package usecase

import (
	"context"
	"errors"
	"fmt"

	"user-management/internal/data/repository"
	"user-management/internal/dto/request"
	"user-management/internal/dto/response"
	"user-management/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	Logout(ctx context.Context)
}

type authService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		log:      log,
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	// 1. Find user by username
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Warn("User not found for login", zap.String("username", req.Username))
			return nil, ErrInvalidCredentials
		}
		s.log.Error("Failed to find user for login", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	// 2. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.Int64("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username))

	return response.LoginToResponse(user), nil
}

// Logout has no session state to invalidate; it exists so the endpoint can
// acknowledge unconditionally.
func (s *authService) Logout(ctx context.Context) {
	s.log.Info("User logged out")
}
