package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/articles/controller"
)

// ArticleAdminRoutes: kelola artikel
func ArticleAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewArticleAdminController(db)

	articles := api.Group("/articles")
	articles.Post("/", ctrl.CreateArticle)
	articles.Patch("/:id", ctrl.UpdateArticle)
	articles.Delete("/:id", ctrl.DeleteArticle)
}
