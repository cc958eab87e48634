package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/enrollments/dto"
	"kursusku_backend/internals/features/enrollments/model"
	kelasModel "kursusku_backend/internals/features/kelas/model"
	helper "kursusku_backend/internals/helpers"
)

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

// 🟢 POST /api/enroll/:kelas_slug
// Kelas gratis → langsung approved; berbayar → pending sampai dikonfirmasi admin.
// Double-enroll dijaga unique index (bukan cek-lalu-insert), jadi aman dari race.
func (ctrl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok || userIDStr == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	slug := c.Params("kelas_slug")
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug kelas tidak boleh kosong")
	}

	var kelas kelasModel.KelasModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("kelas_slug = ?", slug).
		First(&kelas).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		log.Printf("[ERROR] Gagal mengambil kelas '%s': %v", slug, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses pendaftaran")
	}

	status := model.StatusApproved
	message := "Selamat, Anda berhasil mendaftar di kursus gratis ini!"
	if kelas.KelasBerbayar {
		status = model.StatusPending
		message = "Pendaftaran Anda sedang diproses. Mohon tunggu konfirmasi dari Admin."
	}

	enrollment := model.KelasUserModel{
		KelasUserUserID:  userID,
		KelasUserKelasID: kelas.KelasID,
		KelasUserStatus:  status,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict,
				"Anda sudah terdaftar atau sedang menunggu konfirmasi untuk kursus ini.")
		}
		log.Printf("[ERROR] Gagal membuat pendaftaran (user=%s kelas=%s): %v", userID, kelas.KelasID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses pendaftaran")
	}

	return helper.JsonCreated(c, message, fiber.Map{
		"status": enrollment.KelasUserStatus,
	})
}

// 🟢 GET /api/my-courses — kelas yang diikuti caller, terbaru dulu
func (ctrl *EnrollmentController) GetMyCourses(c *fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok || userIDStr == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var rows []model.KelasUserModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("kelas_user_user_id = ?", userIDStr).
		Preload("Kelas").
		Preload("Kelas.Kategori").
		Preload("Kelas.Guru").
		Order("kelas_user_created_at DESC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil kursus user %s: %v", userIDStr, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar kursus Anda")
	}

	return helper.JsonOK(c, "Daftar kursus berhasil diambil", dto.ToMyCourseResponseList(rows))
}
