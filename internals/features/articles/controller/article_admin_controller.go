package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/articles/dto"
	"kursusku_backend/internals/features/articles/model"
	helper "kursusku_backend/internals/helpers"
	imagehelper "kursusku_backend/internals/helpers/image"
)

var validate = validator.New()

type ArticleAdminController struct {
	DB *gorm.DB
}

func NewArticleAdminController(db *gorm.DB) *ArticleAdminController {
	return &ArticleAdminController{DB: db}
}

// 🟢 POST /api/a/articles
func (ctrl *ArticleAdminController) CreateArticle(c *fiber.Ctx) error {
	var req dto.ArticleRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] Body parser gagal: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationErrorFrom(c, err)
	}

	article := req.ToModel()

	// Gambar opsional (multipart) → disimpan sebagai WebP
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		rel, err := imagehelper.SaveUploadAsWebP("articles", fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		article.ArticleImage = &rel
	}

	if err := ctrl.DB.Create(article).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Artikel dengan URL tersebut sudah ada")
		}
		log.Printf("[ERROR] Gagal menyimpan artikel: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan artikel")
	}

	return helper.JsonCreated(c, "Artikel berhasil ditambahkan", dto.ToArticleResponse(article))
}

// 🟡 PATCH /api/a/articles/:id
func (ctrl *ArticleAdminController) UpdateArticle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID artikel tidak valid")
	}

	var article model.ArticleModel
	if err := ctrl.DB.Where("article_id = ?", id).First(&article).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Artikel tidak ditemukan")
	}

	var req dto.ArticleUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationErrorFrom(c, err)
	}

	updates := map[string]interface{}{}

	if req.Title != nil {
		updates["article_title"] = *req.Title
	}
	if req.Excerpt != nil {
		updates["article_excerpt"] = *req.Excerpt
	}
	if req.Author != nil {
		updates["article_author"] = *req.Author
	}
	if req.Date != nil {
		d, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return helper.JsonValidationError(c, map[string][]string{
				"date": {"format harus YYYY-MM-DD"},
			})
		}
		updates["article_date"] = datatypes.Date(d)
	}
	if req.ReadTime != nil {
		updates["article_read_time"] = *req.ReadTime
	}
	if req.Category != nil {
		updates["article_category"] = *req.Category
	}
	if req.Featured != nil {
		updates["article_featured"] = *req.Featured
	}
	if req.ExternalURL != nil {
		updates["article_external_url"] = *req.ExternalURL
	}

	// Ganti gambar → yang lama dihapus dari storage
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		rel, err := imagehelper.SaveUploadAsWebP("articles", fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		if article.ArticleImage != nil {
			_ = imagehelper.DeleteStored(*article.ArticleImage)
		}
		updates["article_image"] = rel
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&article).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return helper.JsonError(c, fiber.StatusConflict, "Artikel dengan URL tersebut sudah ada")
			}
			log.Printf("[ERROR] Gagal memperbarui artikel %s: %v", id, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui artikel")
		}
	}

	if err := ctrl.DB.Where("article_id = ?", id).First(&article).Error; err != nil {
		log.Printf("[ERROR] Gagal memuat ulang artikel %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui artikel")
	}

	return helper.JsonUpdated(c, "Artikel berhasil diperbarui", dto.ToArticleResponse(&article))
}

// 🔴 DELETE /api/a/articles/:id
func (ctrl *ArticleAdminController) DeleteArticle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID artikel tidak valid")
	}

	var article model.ArticleModel
	if err := ctrl.DB.Where("article_id = ?", id).First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Artikel tidak ditemukan")
		}
		log.Printf("[ERROR] Gagal mengambil artikel %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus artikel")
	}

	if err := ctrl.DB.Delete(&article).Error; err != nil {
		log.Printf("[ERROR] Gagal menghapus artikel %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus artikel")
	}
	if article.ArticleImage != nil {
		_ = imagehelper.DeleteStored(*article.ArticleImage)
	}

	return helper.JsonDeleted(c, "Artikel berhasil dihapus", fiber.Map{"id": id})
}
