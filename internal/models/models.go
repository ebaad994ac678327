package models

import (
	"database/sql"
	"time"
)

type User struct {
	UserID           string         `json:"id" db:"user_id"`
	Name             string         `json:"name" db:"name"`
	Email            string         `json:"email" db:"email"`
	PasswordHash     string         `json:"-" db:"password_hash"`
	RefreshTokenHash sql.NullString `json:"-" db:"refresh_token_hash"`
	CreatedAt        time.Time      `json:"created_at" db:"created_at"`
}

type News struct {
	NewsID    string    `json:"id" db:"news_id"`
	AuthorID  string    `json:"author_id" db:"author_id"`
	Title     string    `json:"title" db:"title"`
	Body      string    `json:"body" db:"body"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Comments  []Comment `json:"comments" db:"-"`
	Images    []Image   `json:"images,omitempty" db:"-"`
}

type Comment struct {
	CommentID string    `json:"id" db:"comment_id"`
	NewsID    string    `json:"news_id" db:"news_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Image struct {
	ImageID    string    `json:"id" db:"image_id"`
	NewsID     string    `json:"news_id" db:"news_id"`
	ObjectName string    `json:"-" db:"object_name"`
	ImageURL   string    `json:"image_url" db:"image_url"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Principal - authenticated identity attached to the request context
type Principal struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
