package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/articles/controller"
)

// ArticleUserRoutes: endpoint publik artikel
func ArticleUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewArticleController(db)

	articles := api.Group("/articles")
	articles.Get("/", ctrl.GetAllArticles)
	articles.Get("/:id", ctrl.GetArticleByID)
}
