package service

import (
	"context"

	"newsportal/internal/config"
	"newsportal/internal/models"
	"newsportal/internal/repository"
)

type UserService interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
	CreateUser(ctx context.Context, req repository.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, req repository.UpdateUserRequest, requesterID string) (*models.User, error)
	DeleteUser(ctx context.Context, userID, requesterID string) error
}

type userService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewUserService(userRepo repository.UserRepository, cfg *config.Config) UserService {
	return &userService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *userService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAllUsers(ctx)
}

func (s *userService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *userService) CreateUser(ctx context.Context, req repository.CreateUserRequest) (*models.User, error) {
	user := &models.User{
		Name:  req.Name,
		Email: req.Email,
	}

	err := s.userRepo.CreateUser(ctx, user, req.Password)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, req repository.UpdateUserRequest, requesterID string) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	if !canMutate(requesterID, user.UserID) {
		return nil, repository.ErrForbidden
	}

	// partial update
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	if req.Password != nil && *req.Password != "" {
		if err := s.userRepo.UpdatePassword(ctx, user.UserID, *req.Password); err != nil {
			return nil, err
		}
	}

	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID, requesterID string) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if !canMutate(requesterID, user.UserID) {
		return repository.ErrForbidden
	}

	return s.userRepo.DeleteUser(ctx, userID)
}
