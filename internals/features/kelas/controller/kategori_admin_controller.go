package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/kelas/dto"
	"kursusku_backend/internals/features/kelas/model"
	helper "kursusku_backend/internals/helpers"
)

type KategoriAdminController struct {
	DB *gorm.DB
}

func NewKategoriAdminController(db *gorm.DB) *KategoriAdminController {
	return &KategoriAdminController{DB: db}
}

// 🟢 GET /api/a/kategori
func (ctrl *KategoriAdminController) GetAllKategori(c *fiber.Ctx) error {
	var rows []model.KategoriModel
	if err := ctrl.DB.Order("kategori_nama ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kategori")
	}
	return helper.JsonOK(c, "Daftar kategori berhasil diambil", dto.ToKategoriResponseList(rows))
}

// 🟢 POST /api/a/kategori
func (ctrl *KategoriAdminController) CreateKategori(c *fiber.Ctx) error {
	var req dto.KategoriRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationErrorFrom(c, err)
	}

	newKategori := req.ToModel()
	if err := ctrl.DB.Create(newKategori).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan kategori: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kategori")
	}

	return helper.JsonCreated(c, "Kategori berhasil ditambahkan", dto.ToKategoriResponse(newKategori))
}

// 🟡 PATCH /api/a/kategori/:id
func (ctrl *KategoriAdminController) UpdateKategori(c *fiber.Ctx) error {
	id := c.Params("id")
	var kategori model.KategoriModel
	if err := ctrl.DB.Where("kategori_id = ?", id).First(&kategori).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
	}

	var req dto.KategoriRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationErrorFrom(c, err)
	}

	if err := ctrl.DB.Model(&kategori).Update("kategori_nama", req.Nama).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kategori")
	}

	kategori.KategoriNama = req.Nama
	return helper.JsonUpdated(c, "Kategori berhasil diperbarui", dto.ToKategoriResponse(&kategori))
}

// 🔴 DELETE /api/a/kategori/:id
func (ctrl *KategoriAdminController) DeleteKategori(c *fiber.Ctx) error {
	id := c.Params("id")
	var kategori model.KategoriModel
	if err := ctrl.DB.Where("kategori_id = ?", id).First(&kategori).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
	}

	// Tolak hapus kalau masih dipakai kelas
	var cnt int64
	if err := ctrl.DB.Model(&model.KelasModel{}).Where("kelas_kategori_id = ?", id).Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kelas terkait")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Kategori masih dipakai oleh kelas")
	}

	if err := ctrl.DB.Delete(&kategori).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kategori")
	}

	return helper.JsonDeleted(c, "Kategori berhasil dihapus", fiber.Map{"id": kategori.KategoriID})
}
