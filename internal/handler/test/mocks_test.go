package test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"newsportal/internal/models"
	"newsportal/internal/repository"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, string, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.String(2), args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.String(2), args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*models.User, string, string, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.String(2), args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) Logout(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockAuthService) ParseAccessToken(tokenString string) (*models.Principal, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Principal), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, req repository.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, req repository.UpdateUserRequest, requesterID string) (*models.User, error) {
	args := m.Called(ctx, req, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID, requesterID string) error {
	args := m.Called(ctx, userID, requesterID)
	return args.Error(0)
}

type MockNewsService struct {
	mock.Mock
}

func (m *MockNewsService) GetAll(ctx context.Context, q repository.ListNewsQuery) ([]models.News, int, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.News), args.Int(1), args.Error(2)
}

func (m *MockNewsService) GetByID(ctx context.Context, newsID string) (*models.News, error) {
	args := m.Called(ctx, newsID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.News), args.Error(1)
}

func (m *MockNewsService) Create(ctx context.Context, req repository.CreateNewsRequest, authorID string) (*models.News, error) {
	args := m.Called(ctx, req, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.News), args.Error(1)
}

func (m *MockNewsService) Update(ctx context.Context, req repository.UpdateNewsRequest, requesterID string) (*models.News, error) {
	args := m.Called(ctx, req, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.News), args.Error(1)
}

func (m *MockNewsService) Delete(ctx context.Context, newsID, requesterID string) error {
	args := m.Called(ctx, newsID, requesterID)
	return args.Error(0)
}

func (m *MockNewsService) AddComment(ctx context.Context, newsID, text, requesterID string) (*models.News, error) {
	args := m.Called(ctx, newsID, text, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.News), args.Error(1)
}

func (m *MockNewsService) RemoveComment(ctx context.Context, newsID, commentID, requesterID string) (*models.News, error) {
	args := m.Called(ctx, newsID, commentID, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.News), args.Error(1)
}

func (m *MockNewsService) AttachImage(ctx context.Context, newsID, requesterID, fileName string, file io.Reader, size int64) (*models.Image, error) {
	args := m.Called(ctx, newsID, requesterID, fileName, file, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Image), args.Error(1)
}

func (m *MockNewsService) RemoveImage(ctx context.Context, newsID, imageID, requesterID string) error {
	args := m.Called(ctx, newsID, imageID, requesterID)
	return args.Error(0)
}
