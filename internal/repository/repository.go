package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"newsportal/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, userID, password string) error
	DeleteUser(ctx context.Context, userID string) error
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	UpdateRefreshTokenHash(ctx context.Context, userID string, hash *string) error
}

// ListNewsQuery carries normalized list parameters down to the store.
type ListNewsQuery struct {
	Page  int
	Limit int
	Query string
	Sort  string
	Order string
}

type NewsRepository interface {
	Create(ctx context.Context, news *models.News) error
	GetByID(ctx context.Context, newsID string) (*models.News, error)
	GetAll(ctx context.Context, q ListNewsQuery) ([]models.News, int, error)
	Update(ctx context.Context, news *models.News) error
	// Delete removes the article together with its comments and image rows
	// in a single transaction, comments first.
	Delete(ctx context.Context, newsID string) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, commentID string) (*models.Comment, error)
	GetByNewsID(ctx context.Context, newsID string) ([]models.Comment, error)
	GetByNewsIDs(ctx context.Context, newsIDs []string) ([]models.Comment, error)
	Delete(ctx context.Context, commentID string) error
}

type ImageRepository interface {
	Create(ctx context.Context, image *models.Image) error
	GetByID(ctx context.Context, imageID string) (*models.Image, error)
	GetByNewsID(ctx context.Context, newsID string) ([]models.Image, error)
	Delete(ctx context.Context, imageID string) error
}

type Repository struct {
	User    UserRepository
	News    NewsRepository
	Comment CommentRepository
	Image   ImageRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		News:    NewNewsRepository(db),
		Comment: NewCommentRepository(db),
		Image:   NewImageRepository(db),
	}
}
