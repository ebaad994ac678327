package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"newsportal/internal/models"
)

type newsRepository struct {
	db *sqlx.DB
}

type CreateNewsRequest struct {
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	CreatedAt *time.Time `json:"created_at"`
}

type UpdateNewsRequest struct {
	NewsID string
	Title  *string
	Body   *string
}

func NewNewsRepository(db *sqlx.DB) NewsRepository {
	return &newsRepository{db: db}
}

// sortColumns whitelists client-supplied sort fields.
var sortColumns = map[string]string{
	"created_at": "created_at",
	"title":      "title",
	"id":         "news_id",
	"_id":        "news_id",
}

func (r *newsRepository) Create(ctx context.Context, news *models.News) error {
	if news.NewsID == "" {
		news.NewsID = uuid.New().String()
	}
	if news.CreatedAt.IsZero() {
		news.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO news (news_id, author_id, title, body, created_at)
		VALUES (:news_id, :author_id, :title, :body, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, news)
	if err != nil {
		return fmt.Errorf("ошибка при создании новости: %w", err)
	}

	return nil
}

func (r *newsRepository) GetByID(ctx context.Context, newsID string) (*models.News, error) {
	if _, err := uuid.Parse(newsID); err != nil {
		return nil, fmt.Errorf("неверный формат ID %q: %w", newsID, ErrNotFound)
	}

	var news models.News

	query := `SELECT * FROM news WHERE news_id = $1`

	err := r.db.GetContext(ctx, &news, query, newsID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("новость с ID %s: %w", newsID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении новости: %w", err)
	}

	return &news, nil
}

func (r *newsRepository) GetAll(ctx context.Context, q ListNewsQuery) ([]models.News, int, error) {
	sortColumn, ok := sortColumns[q.Sort]
	if !ok {
		sortColumn = "created_at"
	}

	order := "DESC"
	if strings.EqualFold(q.Order, "asc") {
		order = "ASC"
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	// case-insensitive substring match against title or body
	filter := `($1 = '' OR title ILIKE '%' || $1 || '%' OR body ILIKE '%' || $1 || '%')`

	listQuery := fmt.Sprintf(
		`SELECT * FROM news WHERE %s ORDER BY %s %s LIMIT $2 OFFSET $3`,
		filter, sortColumn, order,
	)

	var items []models.News
	err := r.db.SelectContext(ctx, &items, listQuery, q.Query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка при получении списка новостей: %w", err)
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM news WHERE %s`, filter)

	var total int
	err = r.db.GetContext(ctx, &total, countQuery, q.Query)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка при подсчёте новостей: %w", err)
	}

	return items, total, nil
}

func (r *newsRepository) Update(ctx context.Context, news *models.News) error {
	query := `
		UPDATE news
		SET title = :title, body = :body
		WHERE news_id = :news_id
	`

	result, err := r.db.NamedExecContext(ctx, query, news)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении новости: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("новость с ID %s: %w", news.NewsID, ErrNotFound)
	}

	return nil
}

func (r *newsRepository) Delete(ctx context.Context, newsID string) error {
	if _, err := uuid.Parse(newsID); err != nil {
		return fmt.Errorf("неверный формат ID %q: %w", newsID, ErrNotFound)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	// comments and images go first so a crash can only leave orphaned
	// children, never an article pointing at deleted rows
	if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE news_id = $1`, newsID); err != nil {
		return fmt.Errorf("ошибка при удалении комментариев: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM images WHERE news_id = $1`, newsID); err != nil {
		return fmt.Errorf("ошибка при удалении изображений: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM news WHERE news_id = $1`, newsID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении новости: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("новость с ID %s: %w", newsID, ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при завершении транзакции: %w", err)
	}

	return nil
}
