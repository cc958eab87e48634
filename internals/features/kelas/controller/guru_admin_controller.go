package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/kelas/dto"
	"kursusku_backend/internals/features/kelas/model"
	helper "kursusku_backend/internals/helpers"
	imagehelper "kursusku_backend/internals/helpers/image"
)

type GuruAdminController struct {
	DB *gorm.DB
}

func NewGuruAdminController(db *gorm.DB) *GuruAdminController {
	return &GuruAdminController{DB: db}
}

// 🟢 GET /api/a/guru
func (ctrl *GuruAdminController) GetAllGuru(c *fiber.Ctx) error {
	var rows []model.GuruModel
	if err := ctrl.DB.Order("guru_nama ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil guru")
	}
	return helper.JsonOK(c, "Daftar guru berhasil diambil", dto.ToGuruResponseList(rows))
}

// 🟢 POST /api/a/guru
func (ctrl *GuruAdminController) CreateGuru(c *fiber.Ctx) error {
	var req dto.GuruRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationErrorFrom(c, err)
	}

	newGuru := req.ToModel()

	// Foto opsional (multipart) → disimpan sebagai WebP
	if fh, err := c.FormFile("foto"); err == nil && fh != nil {
		rel, err := imagehelper.SaveUploadAsWebP("guru", fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		newGuru.GuruFoto = &rel
	}

	if err := ctrl.DB.Create(newGuru).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan guru: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan guru")
	}

	return helper.JsonCreated(c, "Guru berhasil ditambahkan", dto.ToGuruResponse(newGuru))
}

// 🟡 PATCH /api/a/guru/:id
func (ctrl *GuruAdminController) UpdateGuru(c *fiber.Ctx) error {
	id := c.Params("id")
	var guru model.GuruModel
	if err := ctrl.DB.Where("guru_id = ?", id).First(&guru).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
	}

	var req dto.GuruUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}

	updates := map[string]interface{}{}
	if req.Nama != nil {
		updates["guru_nama"] = *req.Nama
	}
	if req.Bio != nil {
		updates["guru_bio"] = *req.Bio
	}
	if fh, err := c.FormFile("foto"); err == nil && fh != nil {
		rel, err := imagehelper.SaveUploadAsWebP("guru", fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		if guru.GuruFoto != nil {
			_ = imagehelper.DeleteStored(*guru.GuruFoto)
		}
		updates["guru_foto"] = rel
	}

	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diupdate")
	}

	if err := ctrl.DB.Model(&guru).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui guru")
	}

	if err := ctrl.DB.Where("guru_id = ?", id).First(&guru).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data guru terbaru")
	}

	return helper.JsonUpdated(c, "Guru berhasil diperbarui", dto.ToGuruResponse(&guru))
}

// 🔴 DELETE /api/a/guru/:id
func (ctrl *GuruAdminController) DeleteGuru(c *fiber.Ctx) error {
	id := c.Params("id")
	var guru model.GuruModel
	if err := ctrl.DB.Where("guru_id = ?", id).First(&guru).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
	}

	// Tolak hapus kalau masih dipakai kelas
	var cnt int64
	if err := ctrl.DB.Model(&model.KelasModel{}).Where("kelas_guru_id = ?", id).Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kelas terkait")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Guru masih dipakai oleh kelas")
	}

	if err := ctrl.DB.Delete(&guru).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus guru")
	}

	if guru.GuruFoto != nil {
		_ = imagehelper.DeleteStored(*guru.GuruFoto)
	}

	return helper.JsonDeleted(c, "Guru berhasil dihapus", fiber.Map{"id": guru.GuruID})
}
