package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripgenius/internal/models/request_models"
	"tripgenius/internal/repositories"
	"tripgenius/internal/services"
	"tripgenius/pkg/middleware"
	"tripgenius/pkg/utils"
)

type echoHasher struct{}

func (echoHasher) Hash(secret string) (string, error) { return secret, nil }
func (echoHasher) Compare(hash string, secret string) error {
	if hash != secret {
		return utils.ErrInvalidCredentials
	}
	return nil
}

func newGuardedEngine(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := repositories.NewUserRepository()
	sessions := services.NewSessionService(repositories.NewSessionRepository())
	auth := services.NewAuthService(userRepo, sessions, echoHasher{})

	_, token, err := auth.SignUp(context.Background(), request_models.SignUpRequest{
		Name:     "Ana",
		Email:    "ana@x.com",
		Password: "abcdef",
	})
	require.NoError(t, err)

	r := gin.New()
	r.GET("/guarded", middleware.SessionAuthMiddleware(auth), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(middleware.ContextUserIDKey))
	})
	return r, token
}

func TestSessionAuthMiddleware_MissingHeader(t *testing.T) {
	r, _ := newGuardedEngine(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuthMiddleware_MalformedHeader(t *testing.T) {
	r, token := newGuardedEngine(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", token) // no Bearer prefix
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuthMiddleware_UnknownToken(t *testing.T) {
	r, _ := newGuardedEngine(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer deadbeef")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuthMiddleware_ValidTokenReachesHandler(t *testing.T) {
	r, token := newGuardedEngine(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())
}
