package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/enrollments/model"
	"kursusku_backend/internals/features/kelas/dto"
	kelasModel "kursusku_backend/internals/features/kelas/model"
	helper "kursusku_backend/internals/helpers"
)

// jumlah pendaftar dihitung dari kelas_user, bukan kolom denormalisasi
const kelasWithPendaftar = "kelas.*, (SELECT COUNT(*) FROM kelas_user ku WHERE ku.kelas_user_kelas_id = kelas.kelas_id) AS kelas_jumlah_pendaftar"

type KelasController struct {
	DB *gorm.DB
}

func NewKelasController(db *gorm.DB) *KelasController {
	return &KelasController{DB: db}
}

// 🟢 GET /api/kelas — semua kelas dengan proyeksi terbatas + kategori/guru
func (ctrl *KelasController) GetAllKelas(c *fiber.Ctx) error {
	var rows []kelasModel.KelasModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Select(kelasWithPendaftar).
		Preload("Kategori").
		Preload("Guru").
		Order("kelas_created_at ASC"). // urutan insert, kontrak default
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil daftar kelas: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar kelas")
	}

	return helper.JsonOK(c, "Daftar kelas berhasil diambil", dto.ToKelasResponseList(rows))
}

// 🟢 GET /api/kelas/:slug — detail kelas by slug.
// Dengan OptionalAuthMiddleware: kalau caller login, enrollment_status diisi.
func (ctrl *KelasController) GetKelasBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug tidak boleh kosong")
	}

	var kelas kelasModel.KelasModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Select(kelasWithPendaftar).
		Preload("Kategori").
		Preload("Guru").
		Where("kelas_slug = ?", slug).
		First(&kelas).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		log.Printf("[ERROR] Gagal mengambil kelas '%s': %v", slug, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kelas")
	}

	// enrollment_status: null untuk anonim / belum terdaftar
	var enrollmentStatus *string
	if userID, ok := c.Locals("user_id").(string); ok && userID != "" {
		var row model.KelasUserModel
		if err := ctrl.DB.
			Where("kelas_user_user_id = ? AND kelas_user_kelas_id = ?", userID, kelas.KelasID).
			First(&row).Error; err == nil {
			enrollmentStatus = &row.KelasUserStatus
		}
	}

	return helper.JsonOK(c, "Kelas berhasil ditemukan", dto.ToKelasDetailResponse(&kelas, enrollmentStatus))
}
