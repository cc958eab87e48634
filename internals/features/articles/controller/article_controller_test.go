package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/articles/model"
	articleRoute "kursusku_backend/internals/features/articles/route"
	"kursusku_backend/internals/helpers/testdb"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T, db *gorm.DB) *fiber.App {
	t.Helper()
	app := fiber.New()
	articleRoute.ArticleUserRoutes(app.Group("/api"), db)
	return app
}

func seedArticle(t *testing.T, db *gorm.DB, title string, date time.Time) *model.ArticleModel {
	t.Helper()
	a := &model.ArticleModel{
		ArticleTitle:       title,
		ArticleDate:        datatypes.Date(date),
		ArticleExternalURL: "https://berita.example.com/" + uuid.NewString(),
	}
	require.NoError(t, db.Create(a).Error)
	return a
}

func TestGetAllArticlesTerbaruDulu(t *testing.T) {
	db := testdb.Open(t)
	now := time.Now().UTC()
	seedArticle(t, db, "Artikel Lama", now.AddDate(0, 0, -7))
	seedArticle(t, db, "Artikel Baru", now)
	app := setupApp(t, db)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/articles/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))

	var items []struct {
		Title string  `json:"title"`
		Image *string `json:"image"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Artikel Baru", items[0].Title)
	assert.Equal(t, "Artikel Lama", items[1].Title)
	assert.Nil(t, items[0].Image, "tanpa gambar → image null, bukan string kosong")
}

func TestGetArticleByIDMenaikkanViews(t *testing.T) {
	db := testdb.Open(t)
	a := seedArticle(t, db, "Artikel Populer", time.Now().UTC())
	app := setupApp(t, db)

	const n = 5
	for i := 0; i < n; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/articles/"+a.ArticleID.String(), nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	var reloaded model.ArticleModel
	require.NoError(t, db.Where("article_id = ?", a.ArticleID).First(&reloaded).Error)
	assert.Equal(t, n, reloaded.ArticleViews, "views bertambah tepat sejumlah request")
}

func TestGetArticleByIDKontrakResponse(t *testing.T) {
	db := testdb.Open(t)
	a := seedArticle(t, db, "Artikel Kontrak", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	app := setupApp(t, db)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/articles/"+a.ArticleID.String(), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))

	var data map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &data))

	// kunci kontrak lama frontend, termasuk readTime camelCase
	for _, key := range []string{"id", "title", "author", "date", "readTime", "category", "views", "likes", "image", "featured", "url"} {
		assert.Contains(t, data, key)
	}

	var date string
	require.NoError(t, json.Unmarshal(data["date"], &date))
	assert.Equal(t, "2026-03-15", date)
}

func TestGetArticleByIDTidakDitemukan(t *testing.T) {
	db := testdb.Open(t)
	app := setupApp(t, db)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/articles/"+uuid.NewString(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
