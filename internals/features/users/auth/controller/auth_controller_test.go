package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	authRoute "kursusku_backend/internals/features/users/auth/route"
	"kursusku_backend/internals/helpers/testdb"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T, db *gorm.DB) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_REFRESH_SECRET", "test-refresh-secret")

	app := fiber.New()
	authRoute.AuthRoutes(app.Group("/api"), db)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any, headers map[string]string) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func register(t *testing.T, app *fiber.App, email string) *http.Response {
	t.Helper()
	return postJSON(t, app, "/api/register", fiber.Map{
		"user_name": "budi",
		"email":     email,
		"password":  "rahasia-banget",
	}, nil)
}

func TestRegisterDanDuplikatEmail(t *testing.T) {
	db := testdb.Open(t)
	app := setupApp(t, db)

	resp := register(t, app, "budi@example.com")
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, "Pendaftaran berhasil", env.Message)

	resp = register(t, app, "budi@example.com")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestRegisterPasswordTerlaluPendek(t *testing.T) {
	db := testdb.Open(t)
	app := setupApp(t, db)

	resp := postJSON(t, app, "/api/register", fiber.Map{
		"user_name": "budi",
		"email":     "budi@example.com",
		"password":  "pendek",
	}, nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestLoginPasswordSalah(t *testing.T) {
	db := testdb.Open(t)
	app := setupApp(t, db)

	require.Equal(t, fiber.StatusCreated, register(t, app, "budi@example.com").StatusCode)

	resp := postJSON(t, app, "/api/login", fiber.Map{
		"email":    "budi@example.com",
		"password": "password-salah",
	}, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLoginProfileLogout(t *testing.T) {
	db := testdb.Open(t)
	app := setupApp(t, db)

	require.Equal(t, fiber.StatusCreated, register(t, app, "budi@example.com").StatusCode)

	resp := postJSON(t, app, "/api/login", fiber.Map{
		"email":    "budi@example.com",
		"password": "rahasia-banget",
	}, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	var login struct {
		User struct {
			Email string `json:"email"`
		} `json:"user"`
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	require.NotEmpty(t, login.AccessToken)
	assert.Equal(t, "budi@example.com", login.User.Email)

	// Token dipakai untuk profile
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer "+login.AccessToken)
	profResp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, profResp.StatusCode)

	// Logout → token masuk blacklist
	resp = postJSON(t, app, "/api/logout", nil, map[string]string{
		"Authorization": "Bearer " + login.AccessToken,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer "+login.AccessToken)
	profResp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, profResp.StatusCode)
}
