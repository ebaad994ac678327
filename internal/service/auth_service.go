package service

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"newsportal/internal/config"
	"newsportal/internal/models"
	"newsportal/internal/repository"
)

type AuthService interface {
	Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, string, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (*models.User, string, string, error)
	Logout(ctx context.Context, userID string) error
	ParseAccessToken(tokenString string) (*models.Principal, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *authService) Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, string, string, error) {
	user := &models.User{
		Name:  req.Name,
		Email: req.Email,
	}

	err := s.userRepo.CreateUser(ctx, user, req.Password)
	if err != nil {
		return nil, "", "", fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	// auto-login semantics: registration issues the same token pair
	return s.issueTokens(ctx, user)
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, "", "", fmt.Errorf("ошибка аутентификации: %w", err)
	}

	return s.issueTokens(ctx, user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*models.User, string, string, error) {
	claims, err := s.parseToken(refreshToken, s.cfg.RefreshTokenSecret)
	if err != nil {
		return nil, "", "", fmt.Errorf("недействительный refresh token: %w", repository.ErrUnauthorized)
	}

	userID, err := claims.GetSubject()
	if err != nil || userID == "" {
		return nil, "", "", fmt.Errorf("недействительный refresh token: %w", repository.ErrUnauthorized)
	}

	user, err := s.findByIDMatchingRefreshToken(ctx, userID, refreshToken)
	if err != nil {
		return nil, "", "", err
	}

	// rotation: the stored hash is overwritten, so the presented token
	// can never be replayed
	return s.issueTokens(ctx, user)
}

func (s *authService) Logout(ctx context.Context, userID string) error {
	err := s.userRepo.UpdateRefreshTokenHash(ctx, userID, nil)
	if err != nil {
		return fmt.Errorf("ошибка при отзыве refresh token: %w", err)
	}
	return nil
}

// findByIDMatchingRefreshToken loads the user and verifies the presented
// refresh token against the stored hash.
func (s *authService) findByIDMatchingRefreshToken(ctx context.Context, userID, refreshToken string) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("недействительный refresh token: %w", repository.ErrUnauthorized)
	}

	if !user.RefreshTokenHash.Valid {
		return nil, fmt.Errorf("refresh token отозван: %w", repository.ErrUnauthorized)
	}

	if !matchRefreshToken(user.RefreshTokenHash.String, refreshToken) {
		return nil, fmt.Errorf("refresh token не совпадает с сохранённым: %w", repository.ErrUnauthorized)
	}

	return user, nil
}

func (s *authService) issueTokens(ctx context.Context, user *models.User) (*models.User, string, string, error) {
	accessToken, err := s.generateToken(user, s.cfg.AccessTokenSecret, s.cfg.AccessTokenDuration)
	if err != nil {
		return nil, "", "", fmt.Errorf("ошибка генерации access token: %w", err)
	}

	refreshToken, err := s.generateToken(user, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenDuration)
	if err != nil {
		return nil, "", "", fmt.Errorf("ошибка генерации refresh token: %w", err)
	}

	hash, err := hashRefreshToken(refreshToken)
	if err != nil {
		return nil, "", "", fmt.Errorf("ошибка хеширования refresh token: %w", err)
	}

	err = s.userRepo.UpdateRefreshTokenHash(ctx, user.UserID, &hash)
	if err != nil {
		return nil, "", "", fmt.Errorf("ошибка сохранения refresh token: %w", err)
	}

	return user, accessToken, refreshToken, nil
}

func (s *authService) generateToken(user *models.User, secret string, duration time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.UserID,
		"email": user.Email,
		"name":  user.Name,
		"iat":   now.Unix(),
		"exp":   now.Add(duration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

func (s *authService) parseToken(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга токена: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("недействительный токен")
	}

	return claims, nil
}

func (s *authService) ParseAccessToken(tokenString string) (*models.Principal, error) {
	claims, err := s.parseToken(tokenString, s.cfg.AccessTokenSecret)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, repository.ErrUnauthorized)
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	if sub == "" {
		return nil, fmt.Errorf("неверные claims токена: %w", repository.ErrUnauthorized)
	}

	return &models.Principal{ID: sub, Name: name, Email: email}, nil
}

// hashRefreshToken stores refresh tokens the same one-way style as
// passwords. The token is digested first because bcrypt caps input at
// 72 bytes and signed tokens are much longer.
func hashRefreshToken(token string) (string, error) {
	digest := sha256.Sum256([]byte(token))
	hash, err := bcrypt.GenerateFromPassword(digest[:], bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func matchRefreshToken(hash, token string) bool {
	digest := sha256.Sum256([]byte(token))
	return bcrypt.CompareHashAndPassword([]byte(hash), digest[:]) == nil
}
