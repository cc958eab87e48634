package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/articles/dto"
	"kursusku_backend/internals/features/articles/model"
	helper "kursusku_backend/internals/helpers"
)

type ArticleController struct {
	DB *gorm.DB
}

func NewArticleController(db *gorm.DB) *ArticleController {
	return &ArticleController{DB: db}
}

// 🟢 GET /api/articles — terbaru dulu (tanggal terbit, lalu created_at)
func (ctrl *ArticleController) GetAllArticles(c *fiber.Ctx) error {
	var rows []model.ArticleModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("article_date DESC, article_created_at DESC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil daftar artikel: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar artikel")
	}

	return helper.JsonOK(c, "Daftar artikel berhasil diambil", dto.ToArticleResponseList(rows))
}

// 🟢 GET /api/articles/:id — detail + naikkan views.
// Increment dilakukan di SQL (views = views + 1) supaya aman dari request paralel.
func (ctrl *ArticleController) GetArticleByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID artikel tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.ArticleModel{}).
		Where("article_id = ?", id).
		UpdateColumn("article_views", gorm.Expr("article_views + 1"))
	if res.Error != nil {
		log.Printf("[ERROR] Gagal menaikkan views artikel %s: %v", id, res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil artikel")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Artikel tidak ditemukan")
	}

	var article model.ArticleModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("article_id = ?", id).
		First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Artikel tidak ditemukan")
		}
		log.Printf("[ERROR] Gagal mengambil artikel %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil artikel")
	}

	return helper.JsonOK(c, "Artikel berhasil ditemukan", dto.ToArticleResponse(&article))
}
