package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	enrollmentModel "kursusku_backend/internals/features/enrollments/model"
	"kursusku_backend/internals/features/kelas/controller"
	"kursusku_backend/internals/features/kelas/model"
	kelasRoute "kursusku_backend/internals/features/kelas/route"
	userModel "kursusku_backend/internals/features/users/user/model"
	"kursusku_backend/internals/helpers/testdb"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func seedKategoriGuru(t *testing.T, db *gorm.DB) (*model.KategoriModel, *model.GuruModel) {
	t.Helper()
	kategori := &model.KategoriModel{KategoriNama: "Pemrograman"}
	require.NoError(t, db.Create(kategori).Error)
	guru := &model.GuruModel{GuruNama: "Pak Dosen"}
	require.NoError(t, db.Create(guru).Error)
	return kategori, guru
}

func seedKelas(t *testing.T, db *gorm.DB, slug string) *model.KelasModel {
	t.Helper()
	kategori, guru := seedKategoriGuru(t, db)
	k := &model.KelasModel{
		KelasJudul:      "Kelas " + slug,
		KelasSlug:       slug,
		KelasKategoriID: kategori.KategoriID,
		KelasGuruID:     guru.GuruID,
		KelasLevel:      model.LevelPemula,
		KelasBahasa:     "Indonesia",
	}
	require.NoError(t, db.Create(k).Error)
	return k
}

func seedUser(t *testing.T, db *gorm.DB) *userModel.UserModel {
	t.Helper()
	u := &userModel.UserModel{
		UserName: "budi",
		Email:    uuid.NewString() + "@example.com",
		Password: "x",
		IsActive: true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func publicApp(t *testing.T, db *gorm.DB, userID *uuid.UUID) *fiber.App {
	t.Helper()
	app := fiber.New()
	api := app.Group("/api")
	if userID != nil {
		// gantikan OptionalAuthMiddleware: caller dianggap sudah login
		api.Use(func(c *fiber.Ctx) error {
			c.Locals("user_id", userID.String())
			return c.Next()
		})
	}
	ctrl := controller.NewKelasController(db)
	api.Get("/kelas", ctrl.GetAllKelas)
	api.Get("/kelas/:slug", ctrl.GetKelasBySlug)
	return app
}

func TestGetAllKelasJumlahPendaftarDihitung(t *testing.T) {
	db := testdb.Open(t)
	kelas := seedKelas(t, db, "golang-dasar")

	for i := 0; i < 3; i++ {
		user := seedUser(t, db)
		require.NoError(t, db.Create(&enrollmentModel.KelasUserModel{
			KelasUserUserID:  user.ID,
			KelasUserKelasID: kelas.KelasID,
			KelasUserStatus:  enrollmentModel.StatusApproved,
		}).Error)
	}

	app := publicApp(t, db, nil)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/kelas", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var items []struct {
		Slug            string `json:"slug"`
		JumlahPendaftar int    `json:"jumlah_pendaftar"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].JumlahPendaftar)
}

func TestGetKelasBySlugAnonim(t *testing.T) {
	db := testdb.Open(t)
	seedKelas(t, db, "golang-dasar")

	app := publicApp(t, db, nil)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/kelas/golang-dasar", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var data struct {
		Slug             string  `json:"slug"`
		EnrollmentStatus *string `json:"enrollment_status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "golang-dasar", data.Slug)
	assert.Nil(t, data.EnrollmentStatus, "anonim → enrollment_status null")
}

func TestGetKelasBySlugDenganStatusPendaftaran(t *testing.T) {
	db := testdb.Open(t)
	kelas := seedKelas(t, db, "golang-dasar")
	user := seedUser(t, db)
	require.NoError(t, db.Create(&enrollmentModel.KelasUserModel{
		KelasUserUserID:  user.ID,
		KelasUserKelasID: kelas.KelasID,
		KelasUserStatus:  enrollmentModel.StatusPending,
	}).Error)

	app := publicApp(t, db, &user.ID)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/kelas/golang-dasar", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var data struct {
		EnrollmentStatus *string `json:"enrollment_status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	if assert.NotNil(t, data.EnrollmentStatus) {
		assert.Equal(t, enrollmentModel.StatusPending, *data.EnrollmentStatus)
	}
}

func TestGetKelasBySlugTidakDitemukan(t *testing.T) {
	db := testdb.Open(t)
	app := publicApp(t, db, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/kelas/tidak-ada", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func adminApp(t *testing.T, db *gorm.DB) *fiber.App {
	t.Helper()
	app := fiber.New()
	kelasRoute.KelasAdminRoutes(app.Group("/api/a"), db)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestCreateKelasNormalisasiVideoDanSlug(t *testing.T) {
	db := testdb.Open(t)
	kategori, guru := seedKategoriGuru(t, db)
	app := adminApp(t, db)

	resp := postJSON(t, app, "/api/a/kelas/", fiber.Map{
		"judul":       "Belajar Golang Dasar",
		"kategori_id": kategori.KategoriID.String(),
		"guru_id":     guru.GuruID.String(),
		"level":       model.LevelPemula,
		"video_url":   "https://www.youtube.com/watch?v=abc123",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var row model.KelasModel
	require.NoError(t, db.First(&row).Error)
	assert.Equal(t, "belajar-golang-dasar", row.KelasSlug)
	if assert.NotNil(t, row.KelasVideoURL) {
		assert.Equal(t, "https://www.youtube.com/embed/abc123", *row.KelasVideoURL)
	}

	// Judul sama → slug dapat sufiks -2
	resp = postJSON(t, app, "/api/a/kelas/", fiber.Map{
		"judul":       "Belajar Golang Dasar",
		"kategori_id": kategori.KategoriID.String(),
		"guru_id":     guru.GuruID.String(),
		"level":       model.LevelPemula,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.KelasModel{}).
		Where("kelas_slug = ?", "belajar-golang-dasar-2").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateKelasBerbayarWajibHarga(t *testing.T) {
	db := testdb.Open(t)
	kategori, guru := seedKategoriGuru(t, db)
	app := adminApp(t, db)

	resp := postJSON(t, app, "/api/a/kelas/", fiber.Map{
		"judul":       "Kelas Premium",
		"kategori_id": kategori.KategoriID.String(),
		"guru_id":     guru.GuruID.String(),
		"level":       model.LevelMenengah,
		"berbayar":    true,
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCreateKelasLevelTidakValid(t *testing.T) {
	db := testdb.Open(t)
	kategori, guru := seedKategoriGuru(t, db)
	app := adminApp(t, db)

	resp := postJSON(t, app, "/api/a/kelas/", fiber.Map{
		"judul":       "Kelas Aneh",
		"kategori_id": kategori.KategoriID.String(),
		"guru_id":     guru.GuruID.String(),
		"level":       "Profesional",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCreateKelasKategoriTidakDitemukan(t *testing.T) {
	db := testdb.Open(t)
	_, guru := seedKategoriGuru(t, db)
	app := adminApp(t, db)

	resp := postJSON(t, app, "/api/a/kelas/", fiber.Map{
		"judul":       "Kelas Yatim",
		"kategori_id": uuid.NewString(),
		"guru_id":     guru.GuruID.String(),
		"level":       model.LevelPemula,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
