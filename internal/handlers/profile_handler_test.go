package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"devconnector_backend/internal/app"
	"devconnector_backend/internal/config"
	"devconnector_backend/internal/logger"
	"devconnector_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestServer поднимает полный роутер приложения на in-memory sqlite
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.Github.BaseURL = "http://127.0.0.1:0" // github в этих тестах не ходит
	config.AppConfig = cfg

	logger.Init("test")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Profile{}))

	return app.SetupRouter(cfg, db)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerAndGetToken(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/v1/users", "",
		`{"name": "John Doe", "email": "`+email+`", "password": "secret123"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestProfileFlow(t *testing.T) {
	r := newTestServer(t)
	token := registerAndGetToken(t, r, "john@example.com")

	// Профиля еще нет
	w := doJSON(t, r, http.MethodGet, "/api/v1/profile/me", token, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "There is no profile for this user")

	// Создание
	w = doJSON(t, r, http.MethodPost, "/api/v1/profile", token,
		`{"status": "Developer", "skills": "go, rust, c++"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"skills":["go","rust","c++"]`)

	// Теперь профиль читается и содержит владельца
	w = doJSON(t, r, http.MethodGet, "/api/v1/profile/me", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "John Doe")

	// Публичный список
	w = doJSON(t, r, http.MethodGet, "/api/v1/profile", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Developer")
}

func TestProfileByUserID_NotFound(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/profile/user/not-a-uuid", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Profile not found")

	w = doJSON(t, r, http.MethodGet, "/api/v1/profile/user/00000000-0000-0000-0000-000000000000", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Profile not found")
}

func TestExperienceRoutes(t *testing.T) {
	r := newTestServer(t)
	token := registerAndGetToken(t, r, "john@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/v1/profile", token,
		`{"status": "Developer", "skills": "go"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/v1/profile/experience", token,
		`{"title": "Engineer", "company": "Acme", "from": "2020-01-01T00:00:00Z"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Experience []struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"experience"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Experience, 1)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/profile/experience/"+resp.Experience[0].ID, token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"experience":[]`)
}

func TestDeleteAccount(t *testing.T) {
	r := newTestServer(t)
	token := registerAndGetToken(t, r, "john@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/v1/profile", token,
		`{"status": "Developer", "skills": "go"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/profile", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"msg": "User deleted"}`, w.Body.String())

	// Токен еще жив, но данных уже нет
	w = doJSON(t, r, http.MethodGet, "/api/v1/profile/me", token, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Логин удаленного пользователя неотличим от неверных кредов
	w = doJSON(t, r, http.MethodPost, "/api/v1/auth", "",
		`{"email": "john@example.com", "password": "secret123"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestRegister_Validation(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/users", "",
		`{"name": "", "email": "not-an-email", "password": "123"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "name")
	assert.Contains(t, body, "email")
	assert.Contains(t, body, "password")
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/profile", "",
		`{"status": "Developer", "skills": "go"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token supplied, authorization denied")
}
