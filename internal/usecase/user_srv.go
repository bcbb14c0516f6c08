package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"user-management/internal/data/entity"
	"user-management/internal/data/repository"
	"user-management/internal/dto/request"
	"user-management/internal/dto/response"
	"user-management/pkg/utils"

	"go.uber.org/zap"
)

const (
	msgEmailTaken        = "El correo electrónico ya está registrado"
	msgUsernameTaken     = "El nombre de usuario ya existe"
	msgEmailTakenByOther = "El correo electrónico ya está registrado por otro usuario"
)

type UserService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	GetAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	GetByID(ctx context.Context, id int64) (*response.UserResponse, error)
	Update(ctx context.Context, id int64, req *request.UpdateUserRequest) (*response.UserResponse, error)
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log,
	}
}

func (us *userService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	// 1. Check email and username, collecting both conflicts instead of
	// short-circuiting on the first
	var conflicts []string

	emailTaken, err := us.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if emailTaken {
		conflicts = append(conflicts, msgEmailTaken)
	}

	usernameTaken, err := us.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if usernameTaken {
		conflicts = append(conflicts, msgUsernameTaken)
	}

	if len(conflicts) > 0 {
		us.log.Warn("Registration conflicts",
			zap.Strings("conflicts", conflicts),
			zap.String("email", req.Email),
			zap.String("username", req.Username),
		)
		return nil, &ValidationError{Errors: conflicts}
	}

	// 2. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		us.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 3. Create user entity; the store assigns the id
	now := time.Now().UTC()
	user := &entity.User{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// 4. Save user. The unique constraints are the backstop for concurrent
	// registrations that passed the pre-check above.
	if err := us.userRepo.Create(ctx, user); err != nil {
		if ve := duplicateToValidation(err); ve != nil {
			return nil, ve
		}
		us.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create user: %w", err)
	}

	us.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) GetAll(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	req.Normalize()

	total, err := us.userRepo.CountAll(ctx)
	if err != nil {
		us.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("count users: %w", err)
	}

	users, err := us.userRepo.FindAll(ctx, req.PageSize, req.Offset())
	if err != nil {
		us.log.Error("Failed to get all users",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("page_size", req.PageSize),
		)
		return nil, fmt.Errorf("get users: %w", err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	us.log.Info("Users retrieved",
		zap.Int("count", len(users)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
		zap.Int("page_size", req.PageSize),
	)

	return response.NewPaginatedResponse(userResponses, req.Page, req.PageSize, total), nil
}

func (us *userService) GetByID(ctx context.Context, id int64) (*response.UserResponse, error) {
	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		us.log.Error("Failed to find user", zap.Error(err), zap.Int64("user_id", id))
		return nil, fmt.Errorf("get user: %w", err)
	}

	resp := response.UserToDetailResponse(user)
	return &resp, nil
}

func (us *userService) Update(ctx context.Context, id int64, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	// 1. Target must exist
	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		us.log.Error("Failed to find user for update", zap.Error(err), zap.Int64("user_id", id))
		return nil, fmt.Errorf("find user: %w", err)
	}

	// 2. New email must not collide with a different user
	taken, err := us.userRepo.EmailTakenByOther(ctx, req.Email, id)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, &ValidationError{Errors: []string{msgEmailTakenByOther}}
	}

	// 3. Overwrite mutable fields. Username and created_at are immutable;
	// password only changes when a non-empty value was supplied.
	user.Name = req.Name
	user.Phone = req.Phone
	user.Email = req.Email

	if strings.TrimSpace(req.Password) != "" {
		hashedPassword, err := utils.HashPassword(req.Password)
		if err != nil {
			us.log.Error("Failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hashedPassword
	}

	user.UpdatedAt = time.Now().UTC()

	if err := us.userRepo.Update(ctx, user); err != nil {
		// Constraint backstop for an email claimed between the pre-check and
		// the UPDATE. Same message as the pre-check path.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, &ValidationError{Errors: []string{msgEmailTakenByOther}}
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		us.log.Error("Failed to update user", zap.Error(err), zap.Int64("user_id", id))
		return nil, fmt.Errorf("update user: %w", err)
	}

	us.log.Info("User updated", zap.Int64("user_id", id), zap.String("email", user.Email))

	resp := response.UserToDetailResponse(user)
	return &resp, nil
}

func (us *userService) Delete(ctx context.Context, id int64) error {
	if err := us.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return err
		}
		us.log.Error("Failed to delete user", zap.Error(err), zap.Int64("user_id", id))
		return fmt.Errorf("delete user: %w", err)
	}

	us.log.Info("User deleted", zap.Int64("user_id", id))
	return nil
}

// duplicateToValidation turns a registration-time unique-constraint sentinel
// into the same user-facing conflict error the pre-checks produce
func duplicateToValidation(err error) *ValidationError {
	switch {
	case errors.Is(err, repository.ErrDuplicateEmail):
		return &ValidationError{Errors: []string{msgEmailTaken}}
	case errors.Is(err, repository.ErrDuplicateUsername):
		return &ValidationError{Errors: []string{msgUsernameTaken}}
	}
	return nil
}
