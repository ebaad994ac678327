package app

import (
	"log"

	"newsportal/internal/cache"
	"newsportal/internal/config"
	"newsportal/internal/database"
	"newsportal/internal/repository"
	"newsportal/internal/service"
	"newsportal/internal/storage"
)

func App(cfg *config.Config) (*database.DB, cache.Cache, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// cache backend
	store := newCacheStore(cfg)

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать MinIO: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, store, minioClient)

	return db, store, repo, services
}

func newCacheStore(cfg *config.Config) cache.Cache {
	switch cfg.Cache.Backend {
	case "redis":
		store, err := cache.NewRedisStore(cfg.Cache.RedisAddr, cfg.Cache.TTL)
		if err != nil {
			log.Fatalf("Не удалось подключиться к Redis: %v", err)
		}
		return store
	default:
		store, err := cache.NewFileStore(cfg.Cache.Dir, cfg.Cache.TTL)
		if err != nil {
			log.Fatalf("Не удалось инициализировать файловый кэш: %v", err)
		}
		return store
	}
}
