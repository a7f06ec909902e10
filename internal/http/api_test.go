package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zhejiang-tour/internal/repository/localstore"
	"zhejiang-tour/internal/service"
)

type memoryLocalStore struct {
	mu     sync.Mutex
	values map[string]string
}

func (m *memoryLocalStore) Init(ctx context.Context) error { return nil }

func (m *memoryLocalStore) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.values[key]
	return value, ok, nil
}

func (m *memoryLocalStore) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memoryLocalStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)

	store := &memoryLocalStore{values: make(map[string]string)}
	auth := service.NewAuthService(
		localstore.NewUserRepository(store),
		localstore.NewSessionStore(store),
		service.DefaultLockoutPolicy(),
		log,
	)
	attractions := service.NewAttractionsService(localstore.NewFavoritesRepository(store), 0)
	theme := service.NewThemeService(localstore.NewThemeRepository(store))

	router := gin.New()
	handler := NewHandler(auth, attractions, theme, nil, "", "", log)
	handler.RegisterRoutes(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAPI_RegisterLoginFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"username": "alice",
		"email":    "a@example.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["token"])

	rec = doJSON(t, router, http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"username": "alice",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "wrong password, 4 attempts remaining", body["message"])

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"username": "alice",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
}

func TestAPI_RegisterConflict(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"username": "alice",
		"email":    "a@example.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"username": "Alice",
		"email":    "other@example.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "username already exists", body["message"])
}

func TestAPI_ProtectedRouteRedirect(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/favorites", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "/login?redirect=%2Fapi%2Ffavorites", body["redirect"])
}

func TestAPI_ProfileRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"username": "alice",
		"email":    "a@example.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/api/auth/profile", gin.H{"bio": "x"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/auth/session", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "x", user["bio"])
	// credentials never cross the API boundary
	_, hasHash := user["passwordHash"]
	assert.False(t, hasHash)
	_, hasSalt := user["salt"]
	assert.False(t, hasSalt)
}

func TestAPI_AttractionsAndFavorites(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/attractions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var attractions []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &attractions))
	assert.Len(t, attractions, 5)

	rec = doJSON(t, router, http.MethodGet, "/api/attractions/2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/attractions/99", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	// favorites need a session
	rec = doJSON(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"username": "alice",
		"email":    "a@example.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/favorites/2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["favorite"])

	rec = doJSON(t, router, http.MethodGet, "/api/favorites", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	ids, ok := body["ids"].([]any)
	require.True(t, ok)
	assert.Len(t, ids, 1)

	rec = doJSON(t, router, http.MethodDelete, "/api/favorites", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/favorites", nil)
	body = decodeBody(t, rec)
	ids, ok = body["ids"].([]any)
	require.True(t, ok)
	assert.Empty(t, ids)
}

func TestAPI_ThemeToggle(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/theme", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)["dark"])

	rec = doJSON(t, router, http.MethodPost, "/api/theme/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["dark"])
}

func TestAPI_AvatarUploadWithoutStorage(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"username": "alice",
		"email":    "a@example.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/avatar", nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAPI_DeleteAccount(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"username": "alice",
		"email":    "a@example.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/auth/account", gin.H{"password": "secret1"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"username": "alice",
		"password": "secret1",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "user does not exist", decodeBody(t, rec)["message"])
}
