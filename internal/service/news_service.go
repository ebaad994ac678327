package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"newsportal/internal/cache"
	"newsportal/internal/models"
	"newsportal/internal/repository"
	"newsportal/internal/storage"
)

type NewsService interface {
	GetAll(ctx context.Context, q repository.ListNewsQuery) ([]models.News, int, error)
	GetByID(ctx context.Context, newsID string) (*models.News, error)
	Create(ctx context.Context, req repository.CreateNewsRequest, authorID string) (*models.News, error)
	Update(ctx context.Context, req repository.UpdateNewsRequest, requesterID string) (*models.News, error)
	Delete(ctx context.Context, newsID, requesterID string) error
	AddComment(ctx context.Context, newsID, text, requesterID string) (*models.News, error)
	RemoveComment(ctx context.Context, newsID, commentID, requesterID string) (*models.News, error)
	AttachImage(ctx context.Context, newsID, requesterID, fileName string, file io.Reader, size int64) (*models.Image, error)
	RemoveImage(ctx context.Context, newsID, imageID, requesterID string) error
}

type newsService struct {
	newsRepo    repository.NewsRepository
	commentRepo repository.CommentRepository
	imageRepo   repository.ImageRepository
	cache       cache.Cache
	objects     storage.Storage
}

func NewNewsService(
	newsRepo repository.NewsRepository,
	commentRepo repository.CommentRepository,
	imageRepo repository.ImageRepository,
	store cache.Cache,
	objects storage.Storage,
) NewsService {
	return &newsService{
		newsRepo:    newsRepo,
		commentRepo: commentRepo,
		imageRepo:   imageRepo,
		cache:       store,
		objects:     objects,
	}
}

// invalidateCache drops every cached GET response for the news
// collection. Best-effort: a failure is logged, never returned.
func (s *newsService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DelPrefix(ctx, cache.NewsPrefix); err != nil {
		log.Printf("Не удалось очистить кэш новостей: %v", err)
	}
}

func (s *newsService) GetAll(ctx context.Context, q repository.ListNewsQuery) ([]models.News, int, error) {
	items, total, err := s.newsRepo.GetAll(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	if err := s.attachComments(ctx, items); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *newsService) attachComments(ctx context.Context, items []models.News) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]string, len(items))
	for i := range items {
		ids[i] = items[i].NewsID
	}

	comments, err := s.commentRepo.GetByNewsIDs(ctx, ids)
	if err != nil {
		return err
	}

	byNews := make(map[string][]models.Comment, len(items))
	for _, comment := range comments {
		byNews[comment.NewsID] = append(byNews[comment.NewsID], comment)
	}

	for i := range items {
		items[i].Comments = byNews[items[i].NewsID]
		if items[i].Comments == nil {
			items[i].Comments = []models.Comment{}
		}
	}

	return nil
}

func (s *newsService) GetByID(ctx context.Context, newsID string) (*models.News, error) {
	news, err := s.newsRepo.GetByID(ctx, newsID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.GetByNewsID(ctx, newsID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	news.Comments = comments

	images, err := s.imageRepo.GetByNewsID(ctx, newsID)
	if err != nil {
		return nil, err
	}
	news.Images = images

	return news, nil
}

func (s *newsService) Create(ctx context.Context, req repository.CreateNewsRequest, authorID string) (*models.News, error) {
	news := &models.News{
		AuthorID: authorID,
		Title:    req.Title,
		Body:     req.Body,
	}
	if req.CreatedAt != nil {
		news.CreatedAt = *req.CreatedAt
	}

	if err := s.newsRepo.Create(ctx, news); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)

	news.Comments = []models.Comment{}
	return news, nil
}

func (s *newsService) Update(ctx context.Context, req repository.UpdateNewsRequest, requesterID string) (*models.News, error) {
	news, err := s.newsRepo.GetByID(ctx, req.NewsID)
	if err != nil {
		return nil, err
	}

	if !canMutate(requesterID, news.AuthorID) {
		return nil, fmt.Errorf("изменять новость может только автор: %w", repository.ErrForbidden)
	}

	// partial update, author and created_at stay immutable
	if req.Title != nil {
		news.Title = *req.Title
	}
	if req.Body != nil {
		news.Body = *req.Body
	}

	if err := s.newsRepo.Update(ctx, news); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)

	return s.GetByID(ctx, news.NewsID)
}

func (s *newsService) Delete(ctx context.Context, newsID, requesterID string) error {
	news, err := s.newsRepo.GetByID(ctx, newsID)
	if err != nil {
		return err
	}

	if !canMutate(requesterID, news.AuthorID) {
		return fmt.Errorf("удалить новость может только автор: %w", repository.ErrForbidden)
	}

	// collect object names before the rows disappear
	images, err := s.imageRepo.GetByNewsID(ctx, newsID)
	if err != nil {
		return err
	}

	if err := s.newsRepo.Delete(ctx, newsID); err != nil {
		return err
	}

	// object storage cleanup is best-effort
	if s.objects != nil {
		for _, image := range images {
			if err := s.objects.DeleteImage(ctx, image.ObjectName); err != nil {
				log.Printf("Не удалось удалить объект %s: %v", image.ObjectName, err)
			}
		}
	}

	s.invalidateCache(ctx)

	return nil
}

func (s *newsService) AddComment(ctx context.Context, newsID, text, requesterID string) (*models.News, error) {
	// parent article must exist
	news, err := s.newsRepo.GetByID(ctx, newsID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		NewsID: news.NewsID,
		UserID: requesterID,
		Text:   text,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)

	return s.GetByID(ctx, newsID)
}

func (s *newsService) RemoveComment(ctx context.Context, newsID, commentID, requesterID string) (*models.News, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if comment.NewsID != newsID {
		return nil, fmt.Errorf("комментарий %s не относится к новости %s: %w", commentID, newsID, repository.ErrNotFound)
	}

	if !canMutate(requesterID, comment.UserID) {
		return nil, fmt.Errorf("удалить комментарий может только его автор: %w", repository.ErrForbidden)
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)

	return s.GetByID(ctx, newsID)
}

func (s *newsService) AttachImage(ctx context.Context, newsID, requesterID, fileName string, file io.Reader, size int64) (*models.Image, error) {
	news, err := s.newsRepo.GetByID(ctx, newsID)
	if err != nil {
		return nil, err
	}

	if !canMutate(requesterID, news.AuthorID) {
		return nil, fmt.Errorf("добавлять изображения может только автор: %w", repository.ErrForbidden)
	}

	objectName, imageURL, err := s.objects.UploadImage(ctx, newsID, fileName, file, size)
	if err != nil {
		return nil, err
	}

	image := &models.Image{
		NewsID:     newsID,
		ObjectName: objectName,
		ImageURL:   imageURL,
	}

	if err := s.imageRepo.Create(ctx, image); err != nil {
		// keep storage consistent with the failed insert
		if delErr := s.objects.DeleteImage(ctx, objectName); delErr != nil {
			log.Printf("Не удалось удалить объект %s: %v", objectName, delErr)
		}
		return nil, err
	}

	s.invalidateCache(ctx)

	return image, nil
}

func (s *newsService) RemoveImage(ctx context.Context, newsID, imageID, requesterID string) error {
	news, err := s.newsRepo.GetByID(ctx, newsID)
	if err != nil {
		return err
	}

	if !canMutate(requesterID, news.AuthorID) {
		return fmt.Errorf("удалять изображения может только автор: %w", repository.ErrForbidden)
	}

	image, err := s.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return err
	}

	if image.NewsID != newsID {
		return fmt.Errorf("изображение %s не относится к новости %s: %w", imageID, newsID, repository.ErrNotFound)
	}

	if err := s.imageRepo.Delete(ctx, imageID); err != nil {
		return err
	}

	if err := s.objects.DeleteImage(ctx, image.ObjectName); err != nil {
		log.Printf("Не удалось удалить объект %s: %v", image.ObjectName, err)
	}

	s.invalidateCache(ctx)

	return nil
}
