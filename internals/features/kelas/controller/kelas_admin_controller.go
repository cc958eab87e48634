package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/kelas/dto"
	"kursusku_backend/internals/features/kelas/model"
	helper "kursusku_backend/internals/helpers"
	imagehelper "kursusku_backend/internals/helpers/image"
)

var validate = validator.New()

type KelasAdminController struct {
	DB *gorm.DB
}

func NewKelasAdminController(db *gorm.DB) *KelasAdminController {
	return &KelasAdminController{DB: db}
}

// 🟢 POST /api/a/kelas
func (ctrl *KelasAdminController) CreateKelas(c *fiber.Ctx) error {
	var req dto.KelasRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] Body parser gagal: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationErrorFrom(c, err)
	}
	if !model.IsValidLevel(req.Level) {
		return helper.JsonValidationError(c, map[string][]string{
			"level": {"harus salah satu dari: " + strings.Join(model.AllowedLevels, ", ")},
		})
	}
	if req.Berbayar && (req.Harga == nil || *req.Harga <= 0) {
		return helper.JsonValidationError(c, map[string][]string{
			"harga": {"wajib diisi untuk kelas berbayar"},
		})
	}

	// Precheck FK biar error jadi 404, bukan 500
	if err := ctrl.ensureKategoriGuruExist(c, req.KategoriID, req.GuruID); err != nil {
		return err
	}

	newKelas := req.ToModel()

	slug, err := helper.EnsureUniqueSlugCI(c.UserContext(), ctrl.DB, "kelas", "kelas_slug", req.Judul, 100)
	if err != nil {
		log.Printf("[ERROR] Gagal generate slug: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
	}
	newKelas.KelasSlug = slug

	// Thumbnail opsional (multipart) → disimpan sebagai WebP
	if fh, err := c.FormFile("thumbnail"); err == nil && fh != nil {
		rel, err := imagehelper.SaveUploadAsWebP("kelas", fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		newKelas.KelasThumbnail = &rel
	}

	if err := ctrl.DB.Create(newKelas).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Slug kelas sudah dipakai")
		}
		log.Printf("[ERROR] Gagal menyimpan kelas: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kelas")
	}

	return helper.JsonCreated(c, "Kelas berhasil ditambahkan", dto.ToKelasResponse(newKelas, true))
}

// 🟡 PATCH /api/a/kelas/:id
func (ctrl *KelasAdminController) UpdateKelas(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kelas ID tidak boleh kosong")
	}

	var kelas model.KelasModel
	if err := ctrl.DB.Where("kelas_id = ?", id).First(&kelas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}

	var req dto.KelasUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}

	updates := map[string]interface{}{}

	// Jika judul diupdate → slug ikut diupdate
	if req.Judul != nil {
		slug, err := helper.EnsureUniqueSlugCI(c.UserContext(), ctrl.DB, "kelas", "kelas_slug", *req.Judul, 100)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat slug")
		}
		updates["kelas_judul"] = *req.Judul
		updates["kelas_slug"] = slug
	}
	if req.Deskripsi != nil {
		updates["kelas_deskripsi"] = *req.Deskripsi
	}
	if req.Level != nil {
		if !model.IsValidLevel(*req.Level) {
			return helper.JsonValidationError(c, map[string][]string{
				"level": {"harus salah satu dari: " + strings.Join(model.AllowedLevels, ", ")},
			})
		}
		updates["kelas_level"] = *req.Level
	}
	if req.Bahasa != nil {
		updates["kelas_bahasa"] = *req.Bahasa
	}
	if req.KategoriID != nil {
		kategoriID, err := uuid.Parse(*req.KategoriID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Kategori ID tidak valid")
		}
		var cnt int64
		if err := ctrl.DB.Model(&model.KategoriModel{}).Where("kategori_id = ?", kategoriID).Count(&cnt).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kategori")
		}
		if cnt == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
		}
		updates["kelas_kategori_id"] = kategoriID
	}
	if req.GuruID != nil {
		guruID, err := uuid.Parse(*req.GuruID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Guru ID tidak valid")
		}
		var cnt int64
		if err := ctrl.DB.Model(&model.GuruModel{}).Where("guru_id = ?", guruID).Count(&cnt).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa guru")
		}
		if cnt == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
		}
		updates["kelas_guru_id"] = guruID
	}

	// berbayar & harga dijaga konsisten: gratis → harga NULL
	berbayar := kelas.KelasBerbayar
	if req.Berbayar != nil {
		berbayar = *req.Berbayar
		updates["kelas_berbayar"] = berbayar
	}
	if berbayar {
		if req.Harga != nil {
			if *req.Harga <= 0 {
				return helper.JsonValidationError(c, map[string][]string{
					"harga": {"harus > 0 untuk kelas berbayar"},
				})
			}
			updates["kelas_harga"] = *req.Harga
		} else if req.Berbayar != nil && kelas.KelasHarga == nil {
			return helper.JsonValidationError(c, map[string][]string{
				"harga": {"wajib diisi untuk kelas berbayar"},
			})
		}
	} else if req.Berbayar != nil {
		updates["kelas_harga"] = gorm.Expr("NULL")
	}

	if req.JumlahPelajaran != nil {
		updates["kelas_jumlah_pelajaran"] = *req.JumlahPelajaran
	}
	if req.JumlahVideo != nil {
		updates["kelas_jumlah_video"] = *req.JumlahVideo
	}
	if req.Penyelenggara != nil {
		updates["kelas_penyelenggara"] = *req.Penyelenggara
	}
	if req.VideoURL != nil {
		// dinormalisasi ke bentuk embed; kosong → NULL
		if v := helper.NormalizeVideoURLPtr(req.VideoURL); v != nil {
			updates["kelas_video_url"] = *v
		} else {
			updates["kelas_video_url"] = gorm.Expr("NULL")
		}
	}

	// Thumbnail baru (opsional)
	if fh, err := c.FormFile("thumbnail"); err == nil && fh != nil {
		rel, err := imagehelper.SaveUploadAsWebP("kelas", fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		if kelas.KelasThumbnail != nil {
			_ = imagehelper.DeleteStored(*kelas.KelasThumbnail)
		}
		updates["kelas_thumbnail"] = rel
	}

	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diupdate")
	}

	if err := ctrl.DB.Model(&kelas).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Slug kelas sudah dipakai")
		}
		log.Printf("[ERROR] Gagal memperbarui kelas: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kelas")
	}

	// Reload untuk response terbaru
	if err := ctrl.DB.
		Select(kelasWithPendaftar).
		Preload("Kategori").
		Preload("Guru").
		Where("kelas_id = ?", id).
		First(&kelas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data kelas terbaru")
	}

	return helper.JsonUpdated(c, "Kelas berhasil diperbarui", dto.ToKelasResponse(&kelas, true))
}

// 🔴 DELETE /api/a/kelas/:id
func (ctrl *KelasAdminController) DeleteKelas(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kelas ID tidak boleh kosong")
	}

	var kelas model.KelasModel
	if err := ctrl.DB.Where("kelas_id = ?", id).First(&kelas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}

	if err := ctrl.DB.Delete(&kelas).Error; err != nil {
		log.Printf("[ERROR] Gagal menghapus kelas: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kelas")
	}

	if kelas.KelasThumbnail != nil {
		_ = imagehelper.DeleteStored(*kelas.KelasThumbnail)
	}

	return helper.JsonDeleted(c, "Kelas berhasil dihapus", fiber.Map{"id": kelas.KelasID})
}

func (ctrl *KelasAdminController) ensureKategoriGuruExist(c *fiber.Ctx, kategoriID, guruID string) error {
	var cnt int64
	if err := ctrl.DB.Model(&model.KategoriModel{}).Where("kategori_id = ?", kategoriID).Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kategori")
	}
	if cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
	}
	if err := ctrl.DB.Model(&model.GuruModel{}).Where("guru_id = ?", guruID).Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa guru")
	}
	if cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Guru tidak ditemukan")
	}
	return nil
}
