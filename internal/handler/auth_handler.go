package handlers

import (
	"net/http"

	"newsportal/internal/repository"
)

const (
	accessTokenCookie  = "access_token"
	refreshTokenCookie = "refresh_token"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (h *Handlers) setAuthCookies(w http.ResponseWriter, accessToken, refreshToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    accessToken,
		Path:     "/",
		MaxAge:   int(h.Cfg.AccessTokenDuration.Seconds()),
		HttpOnly: true,
		Secure:   h.Cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     refreshTokenCookie,
		Value:    refreshToken,
		Path:     "/",
		MaxAge:   int(h.Cfg.RefreshTokenDuration.Seconds()),
		HttpOnly: true,
		Secure:   h.Cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handlers) clearAuthCookies(w http.ResponseWriter) {
	for _, name := range []string{accessTokenCookie, refreshTokenCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   h.Cfg.IsProduction(),
			SameSite: http.SameSiteLaxMode,
		})
	}
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	user, accessToken, refreshToken, err := h.AuthService.Register(r.Context(), repository.CreateUserRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.setAuthCookies(w, accessToken, refreshToken)
	WriteSuccess(w, user, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	user, accessToken, refreshToken, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.setAuthCookies(w, accessToken, refreshToken)
	WriteSuccess(w, user, http.StatusOK)
}

// Refresh rotates the token pair. The token comes from the refresh
// cookie, with a JSON-body fallback for non-browser clients.
func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	var presented string
	if cookie, err := r.Cookie(refreshTokenCookie); err == nil {
		presented = cookie.Value
	}
	if presented == "" {
		var req RefreshRequest
		if err := decodeJSON(r, &req); err == nil {
			presented = req.RefreshToken
		}
	}
	if presented == "" {
		WriteError(w, "Missing refresh token", http.StatusUnauthorized)
		return
	}

	user, accessToken, refreshToken, err := h.AuthService.Refresh(r.Context(), presented)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.setAuthCookies(w, accessToken, refreshToken)
	WriteSuccess(w, user, http.StatusOK)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.AuthService.Logout(r.Context(), principal.ID); err != nil {
		writeServiceError(w, err)
		return
	}

	h.clearAuthCookies(w)
	WriteSuccess(w, map[string]string{"message": "Logged out successfully"}, http.StatusOK)
}

func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	principal, ok := PrincipalFromContext(r.Context())
	if !ok {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.UserService.GetUser(r.Context(), principal.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, user, http.StatusOK)
}
