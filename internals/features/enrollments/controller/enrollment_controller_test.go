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
	"gorm.io/gorm"

	"kursusku_backend/internals/features/enrollments/controller"
	"kursusku_backend/internals/features/enrollments/model"
	kelasModel "kursusku_backend/internals/features/kelas/model"
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

// setupApp memasang route pendaftaran dengan "auth" palsu yang langsung
// mengisi user_id, supaya test fokus ke perilaku enroll, bukan JWT.
func setupApp(t *testing.T, db *gorm.DB, userID uuid.UUID) *fiber.App {
	t.Helper()
	app := fiber.New()

	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Locals("user_id", userID.String())
		return c.Next()
	})
	ctrl := controller.NewEnrollmentController(db)
	api.Post("/enroll/:kelas_slug", ctrl.Enroll)
	api.Get("/my-courses", ctrl.GetMyCourses)

	adminCtrl := controller.NewEnrollmentAdminController(db)
	admin := api.Group("/a/enrollments")
	admin.Get("/", adminCtrl.GetAllEnrollments)
	admin.Patch("/:id/approve", adminCtrl.ApproveEnrollment)
	admin.Delete("/:id", adminCtrl.DeleteEnrollment)
	return app
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

func seedKelas(t *testing.T, db *gorm.DB, slug string, berbayar bool) *kelasModel.KelasModel {
	t.Helper()
	kategori := &kelasModel.KategoriModel{KategoriNama: "Pemrograman"}
	require.NoError(t, db.Create(kategori).Error)
	guru := &kelasModel.GuruModel{GuruNama: "Pak Dosen"}
	require.NoError(t, db.Create(guru).Error)

	k := &kelasModel.KelasModel{
		KelasJudul:      "Kelas " + slug,
		KelasSlug:       slug,
		KelasKategoriID: kategori.KategoriID,
		KelasGuruID:     guru.GuruID,
		KelasLevel:      kelasModel.LevelPemula,
		KelasBahasa:     "Indonesia",
		KelasBerbayar:   berbayar,
	}
	if berbayar {
		harga := 150000
		k.KelasHarga = &harga
	}
	require.NoError(t, db.Create(k).Error)
	return k
}

func TestEnrollKelasGratisLangsungApproved(t *testing.T) {
	db := testdb.Open(t)
	user := seedUser(t, db)
	seedKelas(t, db, "golang-dasar", false)
	app := setupApp(t, db, user.ID)

	req := httptest.NewRequest(http.MethodPost, "/api/enroll/golang-dasar", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.True(t, env.Success)
	assert.Equal(t, "Selamat, Anda berhasil mendaftar di kursus gratis ini!", env.Message)

	var row model.KelasUserModel
	require.NoError(t, db.First(&row).Error)
	assert.Equal(t, model.StatusApproved, row.KelasUserStatus)
}

func TestEnrollKelasBerbayarPending(t *testing.T) {
	db := testdb.Open(t)
	user := seedUser(t, db)
	seedKelas(t, db, "golang-lanjut", true)
	app := setupApp(t, db, user.ID)

	req := httptest.NewRequest(http.MethodPost, "/api/enroll/golang-lanjut", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, "Pendaftaran Anda sedang diproses. Mohon tunggu konfirmasi dari Admin.", env.Message)

	var row model.KelasUserModel
	require.NoError(t, db.First(&row).Error)
	assert.Equal(t, model.StatusPending, row.KelasUserStatus)
}

func TestEnrollGandaDitolak(t *testing.T) {
	db := testdb.Open(t)
	user := seedUser(t, db)
	seedKelas(t, db, "golang-dasar", false)
	app := setupApp(t, db, user.ID)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/enroll/golang-dasar", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/api/enroll/golang-dasar", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// Tetap hanya satu baris pendaftaran
	var count int64
	require.NoError(t, db.Model(&model.KelasUserModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestEnrollKelasTidakDitemukan(t *testing.T) {
	db := testdb.Open(t)
	user := seedUser(t, db)
	app := setupApp(t, db, user.ID)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/enroll/tidak-ada", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetMyCoursesTerbaruDulu(t *testing.T) {
	db := testdb.Open(t)
	user := seedUser(t, db)
	lama := seedKelas(t, db, "kelas-lama", false)
	baru := seedKelas(t, db, "kelas-baru", true)
	app := setupApp(t, db, user.ID)

	now := time.Now().UTC()
	require.NoError(t, db.Create(&model.KelasUserModel{
		KelasUserUserID:    user.ID,
		KelasUserKelasID:   lama.KelasID,
		KelasUserStatus:    model.StatusApproved,
		KelasUserCreatedAt: now.Add(-time.Hour),
	}).Error)
	require.NoError(t, db.Create(&model.KelasUserModel{
		KelasUserUserID:    user.ID,
		KelasUserKelasID:   baru.KelasID,
		KelasUserStatus:    model.StatusPending,
		KelasUserCreatedAt: now,
	}).Error)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/my-courses", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var items []struct {
		Slug  string `json:"slug"`
		Pivot struct {
			Status string `json:"status"`
		} `json:"pivot"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "kelas-baru", items[0].Slug)
	assert.Equal(t, model.StatusPending, items[0].Pivot.Status)
	assert.Equal(t, "kelas-lama", items[1].Slug)
	assert.Equal(t, model.StatusApproved, items[1].Pivot.Status)
}

func TestApproveEnrollment(t *testing.T) {
	db := testdb.Open(t)
	user := seedUser(t, db)
	kelas := seedKelas(t, db, "golang-lanjut", true)
	app := setupApp(t, db, user.ID)

	row := &model.KelasUserModel{
		KelasUserUserID:  user.ID,
		KelasUserKelasID: kelas.KelasID,
		KelasUserStatus:  model.StatusPending,
	}
	require.NoError(t, db.Create(row).Error)

	resp, err := app.Test(httptest.NewRequest(http.MethodPatch,
		"/api/a/enrollments/"+row.KelasUserID.String()+"/approve", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated model.KelasUserModel
	require.NoError(t, db.Where("kelas_user_id = ?", row.KelasUserID).First(&updated).Error)
	assert.Equal(t, model.StatusApproved, updated.KelasUserStatus)
}

func TestApproveEnrollmentSudahDiproses(t *testing.T) {
	db := testdb.Open(t)
	user := seedUser(t, db)
	kelas := seedKelas(t, db, "golang-dasar", false)
	app := setupApp(t, db, user.ID)

	row := &model.KelasUserModel{
		KelasUserUserID:  user.ID,
		KelasUserKelasID: kelas.KelasID,
		KelasUserStatus:  model.StatusApproved,
	}
	require.NoError(t, db.Create(row).Error)

	resp, err := app.Test(httptest.NewRequest(http.MethodPatch,
		"/api/a/enrollments/"+row.KelasUserID.String()+"/approve", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestApproveEnrollmentTidakDitemukan(t *testing.T) {
	db := testdb.Open(t)
	user := seedUser(t, db)
	app := setupApp(t, db, user.ID)

	resp, err := app.Test(httptest.NewRequest(http.MethodPatch,
		"/api/a/enrollments/"+uuid.NewString()+"/approve", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteEnrollment(t *testing.T) {
	db := testdb.Open(t)
	user := seedUser(t, db)
	kelas := seedKelas(t, db, "golang-dasar", false)
	app := setupApp(t, db, user.ID)

	row := &model.KelasUserModel{
		KelasUserUserID:  user.ID,
		KelasUserKelasID: kelas.KelasID,
		KelasUserStatus:  model.StatusPending,
	}
	require.NoError(t, db.Create(row).Error)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete,
		"/api/a/enrollments/"+row.KelasUserID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.KelasUserModel{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestGetAllEnrollmentsFilterStatus(t *testing.T) {
	db := testdb.Open(t)
	user := seedUser(t, db)
	gratis := seedKelas(t, db, "kelas-gratis", false)
	berbayar := seedKelas(t, db, "kelas-berbayar", true)
	app := setupApp(t, db, user.ID)

	require.NoError(t, db.Create(&model.KelasUserModel{
		KelasUserUserID:  user.ID,
		KelasUserKelasID: gratis.KelasID,
		KelasUserStatus:  model.StatusApproved,
	}).Error)
	require.NoError(t, db.Create(&model.KelasUserModel{
		KelasUserUserID:  user.ID,
		KelasUserKelasID: berbayar.KelasID,
		KelasUserStatus:  model.StatusPending,
	}).Error)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/a/enrollments/?status=pending", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var items []struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, model.StatusPending, items[0].Status)
}
