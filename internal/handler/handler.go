package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"

	"newsportal/internal/config"
	"newsportal/internal/database"
	"newsportal/internal/models"
	"newsportal/internal/service"
)

type contextKey string

// PrincipalContextKey is where the identity middleware stores the
// authenticated principal.
const PrincipalContextKey = contextKey("principal")

func PrincipalFromContext(ctx context.Context) (*models.Principal, bool) {
	principal, ok := ctx.Value(PrincipalContextKey).(*models.Principal)
	return principal, ok && principal != nil
}

type Handlers struct {
	UserService service.UserService
	AuthService service.AuthService
	NewsService service.NewsService
	DB          *database.DB
	Cfg         *config.Config
	Validate    *validator.Validate
}

func NewHandlers(services *service.Service, db *database.DB, config *config.Config) *Handlers {
	return &Handlers{
		UserService: services.User,
		AuthService: services.Auth,
		NewsService: services.News,
		DB:          db,
		Cfg:         config,
		Validate:    validator.New(),
	}
}
