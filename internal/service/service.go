package service

import (
	"newsportal/internal/cache"
	"newsportal/internal/config"
	"newsportal/internal/repository"
	"newsportal/internal/storage"
)

type Service struct {
	User UserService
	News NewsService
	Auth AuthService
}

func NewService(rep *repository.Repository, cfg *config.Config, store cache.Cache, objects storage.Storage) *Service {
	return &Service{
		User: NewUserService(rep.User, cfg),
		News: NewNewsService(rep.News, rep.Comment, rep.Image, store, objects),
		Auth: NewAuthService(rep.User, cfg),
	}
}

// canMutate is the single ownership rule shared by every mutating path:
// the requester must be the stored owner of the resource.
func canMutate(requesterID, ownerID string) bool {
	return requesterID != "" && requesterID == ownerID
}
