package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/adverx/adverx-backend/internal/api/middleware"
	"github.com/adverx/adverx-backend/internal/config"
	"github.com/adverx/adverx-backend/internal/kv"
	"github.com/adverx/adverx-backend/internal/models"
	"github.com/adverx/adverx-backend/internal/notification"
	"github.com/adverx/adverx-backend/internal/repository"
	"github.com/adverx/adverx-backend/internal/service"
	"github.com/adverx/adverx-backend/internal/types"
)

const testAdminPassword = "open-sesame"

// newTestRouter wires the full stack over an in-memory store, mirroring the
// route layout in cmd/api.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
		JWTSecret:         "test-secret",
		SessionTTL:        time.Hour,
	}
	seed := []repository.Project{
		{ID: "1", Title: "Mountain Film", Category: types.CategoryVideography, Featured: true},
		{ID: "2", Title: "Studio Portraits", Category: types.CategoryPhotography},
	}
	repos := repository.NewRepositories(kv.NewMemoryStore(), seed)
	notifier := notification.NewService()
	services := service.NewServices(&service.ServiceDeps{
		Config:   cfg,
		Repos:    repos,
		Notifier: notifier,
	})
	h := NewHandlers(services, notifier)

	r := gin.New()
	api := r.Group("/api")
	{
		api.POST("/auth/login", h.Auth.Login)
		api.GET("/projects", h.Project.List)
		api.GET("/projects/:id", h.Project.Get)
		api.POST("/contact", h.Message.Submit)
		api.POST("/requests", h.Request.Submit)
		api.POST("/pricing/estimate", h.Pricing.Estimate)
	}
	admin := api.Group("")
	admin.Use(middleware.AuthMiddleware(services.Auth))
	{
		admin.GET("/auth/me", h.Auth.Me)
		admin.POST("/projects", h.Project.Create)
		admin.GET("/admin/messages", h.Message.List)
		admin.GET("/admin/notifications", h.Notification.List)
	}
	return r
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loginAs(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "admin",
		"password": testAdminPassword,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestEstimateEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/pricing/estimate", "", gin.H{
		"projectDuration": 1,
		"qualityLevel":    "standard",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.EstimateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2300), resp.EstimatedPrice)
}

func TestEstimateEndpointRejectsBadInput(t *testing.T) {
	r := newTestRouter(t)

	// Duration missing entirely fails binding.
	w := doJSON(r, http.MethodPost, "/api/pricing/estimate", "", gin.H{
		"qualityLevel": "standard",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown quality level fails the estimator.
	w = doJSON(r, http.MethodPost, "/api/pricing/estimate", "", gin.H{
		"projectDuration": 1,
		"qualityLevel":    "imax",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginEndpoint(t *testing.T) {
	r := newTestRouter(t)

	loginAs(t, r)

	w := doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "admin",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/admin/messages", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodGet, "/api/admin/messages", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := loginAs(t, r)
	w = doJSON(r, http.MethodGet, "/api/admin/messages", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMe(t *testing.T) {
	r := newTestRouter(t)
	token := loginAs(t, r)

	w := doJSON(r, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.MeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "admin", resp.Username)
}

func TestPublicProjectRoutes(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/projects", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var projects []models.ProjectResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	assert.Len(t, projects, 2)

	w = doJSON(r, http.MethodGet, "/api/projects?category=photography", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	require.Len(t, projects, 1)
	assert.Equal(t, "Studio Portraits", projects[0].Title)

	w = doJSON(r, http.MethodGet, "/api/projects/1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/projects/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectCreateEndpoint(t *testing.T) {
	r := newTestRouter(t)
	token := loginAs(t, r)

	w := doJSON(r, http.MethodPost, "/api/projects", token, gin.H{
		"title":    "Drone Reel",
		"category": "videography",
		"imageUrl": "https://example.com/cover.jpg",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.ProjectResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)

	w = doJSON(r, http.MethodPost, "/api/projects", token, gin.H{
		"title":    "Bad Category",
		"category": "sculpture",
		"imageUrl": "https://example.com/cover.jpg",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/contact", "", gin.H{
		"name":    "Ada",
		"email":   "ada@example.com",
		"message": "We need a videographer.",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var msg models.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
	assert.Equal(t, types.MessageUnread, msg.Status)

	// Bad email fails binding.
	w = doJSON(r, http.MethodPost, "/api/contact", "", gin.H{
		"name":    "Ada",
		"email":   "not-an-email",
		"message": "hi",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequestEndpointComputesPrice(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/requests", "", gin.H{
		"name":            "Ada",
		"email":           "ada@example.com",
		"projectDuration": 2,
		"qualityLevel":    "premium",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp models.CustomRequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(4650), resp.EstimatedPrice)
	assert.Equal(t, types.RequestPending, resp.Status)
}

func TestNotificationFeedEndpoint(t *testing.T) {
	r := newTestRouter(t)
	token := loginAs(t, r)

	// A contact submission pushes an entry onto the feed.
	w := doJSON(r, http.MethodPost, "/api/contact", "", gin.H{
		"name":    "Ada",
		"email":   "ada@example.com",
		"message": "hi",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, "/api/admin/notifications", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var feed []models.NotificationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	require.Len(t, feed, 1)
	assert.Equal(t, types.NotifyInfo, feed[0].Kind)
	assert.Equal(t, int64(5000), feed[0].DurationMs)
}
