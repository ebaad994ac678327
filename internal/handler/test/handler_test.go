package test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"newsportal/internal/config"
	handlers "newsportal/internal/handler"
	"newsportal/internal/models"
)

type testServices struct {
	auth *MockAuthService
	user *MockUserService
	news *MockNewsService
}

func createTestHandler() (*handlers.Handlers, *testServices) {
	services := &testServices{
		auth: new(MockAuthService),
		user: new(MockUserService),
		news: new(MockNewsService),
	}

	cfg := &config.Config{
		AppEnv:               "test",
		AccessTokenDuration:  15 * time.Minute,
		RefreshTokenDuration: 168 * time.Hour,
		MaxUploadSize:        10 * 1024 * 1024,
	}

	handler := &handlers.Handlers{
		UserService: services.user,
		AuthService: services.auth,
		NewsService: services.news,
		Cfg:         cfg,
		Validate:    validator.New(),
	}

	return handler, services
}

// withPrincipal emulates the identity middleware.
func withPrincipal(r *http.Request, principal *models.Principal) *http.Request {
	ctx := context.WithValue(r.Context(), handlers.PrincipalContextKey, principal)
	return r.WithContext(ctx)
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) handlers.Envelope {
	t.Helper()

	var envelope handlers.Envelope
	err := json.Unmarshal(rr.Body.Bytes(), &envelope)
	assert.NoError(t, err)
	return envelope
}

// assertEnvelopeError checks the uniform error response
func assertEnvelopeError(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	envelope := decodeEnvelope(t, rr)
	assert.False(t, envelope.Status)
	assert.Equal(t, expectedStatus, envelope.StatusCode)
	if expectedMsg != "" {
		assert.Contains(t, envelope.Msg, expectedMsg)
	}
}

// assertEnvelopeSuccess checks the uniform success response and returns
// its data payload
func assertEnvelopeSuccess(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int) interface{} {
	t.Helper()

	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	envelope := decodeEnvelope(t, rr)
	assert.True(t, envelope.Status)
	assert.Equal(t, expectedStatus, envelope.StatusCode)
	assert.Equal(t, "Success", envelope.Msg)
	return envelope.Data
}

func findCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
