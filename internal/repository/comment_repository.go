package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"newsportal/internal/models"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if comment.CommentID == "" {
		comment.CommentID = uuid.New().String()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO comments (comment_id, news_id, user_id, text, created_at)
		VALUES (:comment_id, :news_id, :user_id, :text, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		return fmt.Errorf("ошибка при создании комментария: %w", err)
	}

	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, commentID string) (*models.Comment, error) {
	if _, err := uuid.Parse(commentID); err != nil {
		return nil, fmt.Errorf("неверный формат ID %q: %w", commentID, ErrNotFound)
	}

	var comment models.Comment

	query := `SELECT * FROM comments WHERE comment_id = $1`

	err := r.db.GetContext(ctx, &comment, query, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("комментарий с ID %s: %w", commentID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении комментария: %w", err)
	}

	return &comment, nil
}

func (r *commentRepository) GetByNewsID(ctx context.Context, newsID string) ([]models.Comment, error) {
	var comments []models.Comment

	query := `SELECT * FROM comments WHERE news_id = $1 ORDER BY created_at`

	err := r.db.SelectContext(ctx, &comments, query, newsID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев: %w", err)
	}

	return comments, nil
}

func (r *commentRepository) GetByNewsIDs(ctx context.Context, newsIDs []string) ([]models.Comment, error) {
	if len(newsIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT * FROM comments WHERE news_id IN (?) ORDER BY created_at`, newsIDs)
	if err != nil {
		return nil, fmt.Errorf("ошибка при построении запроса: %w", err)
	}

	var comments []models.Comment
	err = r.db.SelectContext(ctx, &comments, r.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев: %w", err)
	}

	return comments, nil
}

func (r *commentRepository) Delete(ctx context.Context, commentID string) error {
	query := `DELETE FROM comments WHERE comment_id = $1`

	result, err := r.db.ExecContext(ctx, query, commentID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении комментария: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("комментарий с ID %s: %w", commentID, ErrNotFound)
	}

	return nil
}
