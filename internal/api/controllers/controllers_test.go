package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripgenius/internal/api/controllers"
	"tripgenius/internal/repositories"
	"tripgenius/internal/services"
	"tripgenius/pkg/middleware"
	"tripgenius/pkg/utils"
)

// newTestEngine wires the whole HTTP surface against fresh in-memory
// stores, mirroring the router assembly in cmd/app.
func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := repositories.NewUserRepository()
	tripRepo := repositories.NewTripRepository()
	sessions := services.NewSessionService(repositories.NewSessionRepository())
	auth := services.NewAuthService(userRepo, sessions, utils.NewBcryptHasher())
	trips := services.NewTripService(tripRepo, userRepo)
	itineraries := services.NewItineraryService()

	authController := controllers.NewAuthController(auth)
	tripController := controllers.NewTripController(trips, itineraries)
	healthController := controllers.NewHealthController(userRepo, tripRepo)

	r := gin.New()
	r.GET("/ping", healthController.Ping)

	authGroup := r.Group("/auth")
	authGroup.POST("/signup", authController.Signup)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/logout", authController.Logout)
	authGroup.GET("/me", authController.Me)

	tripGroup := r.Group("/trips")
	tripGroup.Use(middleware.SessionAuthMiddleware(auth))
	tripGroup.POST("/generate", tripController.GenerateTrip)
	tripGroup.GET("", tripController.GetTrips)
	tripGroup.GET("/:id", tripController.GetTrip)
	tripGroup.PUT("/:id", tripController.UpdateTrip)
	tripGroup.DELETE("/:id", tripController.DeleteTrip)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func signup(t *testing.T, r *gin.Engine) (userID string, token string) {
	t.Helper()
	w, resp := doJSON(t, r, http.MethodPost, "/auth/signup", "", gin.H{
		"name":     "Ana",
		"email":    "ana@x.com",
		"password": "abcdef",
	})
	require.Equal(t, http.StatusOK, w.Code)

	data := resp["data"].(map[string]interface{})
	user := data["user"].(map[string]interface{})
	return user["id"].(string), data["session_token"].(string)
}

func TestSignupLoginMeFlow(t *testing.T) {
	r := newTestEngine(t)

	userID, signupToken := signup(t, r)

	// Login mints a distinct token.
	w, resp := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "ana@x.com",
		"password": "abcdef",
	})
	require.Equal(t, http.StatusOK, w.Code)
	loginToken := resp["data"].(map[string]interface{})["session_token"].(string)
	assert.NotEqual(t, signupToken, loginToken)

	// Both tokens resolve to the same user, secret never serialized.
	for _, token := range []string{signupToken, loginToken} {
		w, resp := doJSON(t, r, http.MethodGet, "/auth/me", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		user := resp["data"].(map[string]interface{})["user"].(map[string]interface{})
		assert.Equal(t, userID, user["id"])
		assert.NotContains(t, user, "password")
		assert.NotContains(t, user, "secret_hash")
	}
}

func TestSignup_RejectsDuplicateAndShortPassword(t *testing.T) {
	r := newTestEngine(t)
	signup(t, r)

	w, _ := doJSON(t, r, http.MethodPost, "/auth/signup", "", gin.H{
		"name":     "Ana Again",
		"email":    "ana@x.com",
		"password": "abcdef",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/auth/signup", "", gin.H{
		"name":     "Bob",
		"email":    "bob@x.com",
		"password": "abc",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	r := newTestEngine(t)
	signup(t, r)

	w, _ := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "ana@x.com",
		"password": "wrong-secret",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "ghost@x.com",
		"password": "abcdef",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout_AlwaysSucceeds(t *testing.T) {
	r := newTestEngine(t)
	_, token := signup(t, r)

	w, _ := doJSON(t, r, http.MethodPost, "/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Logging out again with the now-revoked token still reports success.
	w, _ = doJSON(t, r, http.MethodPost, "/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// But the session is gone.
	w, _ = doJSON(t, r, http.MethodGet, "/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTripLifecycleOverHTTP(t *testing.T) {
	r := newTestEngine(t)
	_, token := signup(t, r)

	// Generate a 3-day trip.
	w, resp := doJSON(t, r, http.MethodPost, "/trips/generate", token, gin.H{
		"destination": "Paris, France",
		"start_date":  "2024-06-15",
		"end_date":    "2024-06-17",
		"travelers":   2,
		"interests":   []string{"Culture"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	trip := resp["data"].(map[string]interface{})["trip"].(map[string]interface{})
	tripID := trip["id"].(string)
	assert.Equal(t, float64(3), trip["duration"])

	// Trip count went up.
	w, resp = doJSON(t, r, http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := resp["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, float64(1), user["trip_count"])

	// List and fetch.
	w, resp = doJSON(t, r, http.MethodGet, "/trips", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	trips := resp["data"].(map[string]interface{})["trips"].([]interface{})
	assert.Len(t, trips, 1)

	w, _ = doJSON(t, r, http.MethodGet, "/trips/"+tripID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Update a field.
	w, resp = doJSON(t, r, http.MethodPut, "/trips/"+tripID, token, gin.H{
		"travelers": 4,
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := resp["data"].(map[string]interface{})["trip"].(map[string]interface{})
	assert.Equal(t, float64(4), updated["travelers"])

	// Delete restores the trip count.
	w, _ = doJSON(t, r, http.MethodDelete, "/trips/"+tripID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = doJSON(t, r, http.MethodGet, "/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	user = resp["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, float64(0), user["trip_count"])

	w, _ = doJSON(t, r, http.MethodGet, "/trips/"+tripID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTripRoutes_RequireSession(t *testing.T) {
	r := newTestEngine(t)

	w, _ := doJSON(t, r, http.MethodGet, "/trips", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/trips/generate", "", gin.H{
		"destination": "Paris",
		"start_date":  "2024-06-15",
		"end_date":    "2024-06-17",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTripAccess_OtherOwnerForbidden(t *testing.T) {
	r := newTestEngine(t)
	_, anaToken := signup(t, r)

	w, resp := doJSON(t, r, http.MethodPost, "/trips/generate", anaToken, gin.H{
		"destination": "Paris, France",
		"start_date":  "2024-06-15",
		"end_date":    "2024-06-17",
	})
	require.Equal(t, http.StatusOK, w.Code)
	tripID := resp["data"].(map[string]interface{})["trip"].(map[string]interface{})["id"].(string)

	w, respBob := doJSON(t, r, http.MethodPost, "/auth/signup", "", gin.H{
		"name":     "Bob",
		"email":    "bob@x.com",
		"password": "abcdef",
	})
	require.Equal(t, http.StatusOK, w.Code)
	bobToken := respBob["data"].(map[string]interface{})["session_token"].(string)

	w, _ = doJSON(t, r, http.MethodGet, "/trips/"+tripID, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = doJSON(t, r, http.MethodDelete, "/trips/"+tripID, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGenerateTrip_MissingFields(t *testing.T) {
	r := newTestEngine(t)
	_, token := signup(t, r)

	w, _ := doJSON(t, r, http.MethodPost, "/trips/generate", token, gin.H{
		"destination": "Paris",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPing_ReportsCounts(t *testing.T) {
	r := newTestEngine(t)
	signup(t, r)

	w, resp := doJSON(t, r, http.MethodGet, "/ping", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "pong", data["message"])
	assert.Equal(t, float64(1), data["users"])
	assert.Equal(t, float64(0), data["trips"])
}
