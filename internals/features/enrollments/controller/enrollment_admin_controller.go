package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/enrollments/dto"
	"kursusku_backend/internals/features/enrollments/model"
	helper "kursusku_backend/internals/helpers"
)

type EnrollmentAdminController struct {
	DB *gorm.DB
}

func NewEnrollmentAdminController(db *gorm.DB) *EnrollmentAdminController {
	return &EnrollmentAdminController{DB: db}
}

// 🟢 GET /api/a/enrollments?status=pending&page=1&per_page=20
func (ctrl *EnrollmentAdminController) GetAllEnrollments(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.KelasUserModel{})

	if status := c.Query("status"); status != "" {
		if status != model.StatusPending && status != model.StatusApproved {
			return helper.JsonError(c, fiber.StatusBadRequest, "Status filter tidak dikenal")
		}
		q = q.Where("kelas_user_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Gagal menghitung pendaftaran: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar pendaftaran")
	}

	var rows []model.KelasUserModel
	if err := q.
		Preload("User").
		Preload("Kelas").
		Order("kelas_user_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil pendaftaran: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar pendaftaran")
	}

	return helper.JsonList(c, "Daftar pendaftaran berhasil diambil",
		dto.ToEnrollmentResponseList(rows),
		helper.BuildPagination(total, paging, len(rows)))
}

// 🟡 PATCH /api/a/enrollments/:id/approve
// Hanya pendaftaran pending yang bisa disetujui. Guard-nya di UPDATE-nya
// langsung (WHERE status='pending'), bukan read-then-write.
func (ctrl *EnrollmentAdminController) ApproveEnrollment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pendaftaran tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.KelasUserModel{}).
		Where("kelas_user_id = ? AND kelas_user_status = ?", id, model.StatusPending).
		Update("kelas_user_status", model.StatusApproved)
	if res.Error != nil {
		log.Printf("[ERROR] Gagal menyetujui pendaftaran %s: %v", id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyetujui pendaftaran")
	}

	if res.RowsAffected == 0 {
		// Bedakan tidak ada vs sudah bukan pending
		var row model.KelasUserModel
		if err := ctrl.DB.WithContext(c.UserContext()).
			Where("kelas_user_id = ?", id).
			First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
			}
			log.Printf("[ERROR] Gagal memeriksa pendaftaran %s: %v", id, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyetujui pendaftaran")
		}
		return helper.JsonError(c, fiber.StatusConflict, "Pendaftaran sudah diproses sebelumnya")
	}

	var row model.KelasUserModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("User").
		Preload("Kelas").
		Where("kelas_user_id = ?", id).
		First(&row).Error; err != nil {
		log.Printf("[ERROR] Gagal memuat ulang pendaftaran %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyetujui pendaftaran")
	}

	return helper.JsonUpdated(c, "Pendaftaran berhasil disetujui", dto.ToEnrollmentResponse(&row))
}

// 🔴 DELETE /api/a/enrollments/:id
func (ctrl *EnrollmentAdminController) DeleteEnrollment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pendaftaran tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Where("kelas_user_id = ?", id).
		Delete(&model.KelasUserModel{})
	if res.Error != nil {
		log.Printf("[ERROR] Gagal menghapus pendaftaran %s: %v", id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pendaftaran")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pendaftaran tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Pendaftaran berhasil dihapus", fiber.Map{"id": id})
}
