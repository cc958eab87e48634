package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/kelas/controller"
	authMiddleware "kursusku_backend/internals/middlewares/auth"
)

// KelasUserRoutes: endpoint katalog publik (JWT opsional di detail)
func KelasUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewKelasController(db)

	kelas := api.Group("/kelas")
	kelas.Get("/", ctrl.GetAllKelas)
	kelas.Get("/:slug", authMiddleware.OptionalAuthMiddleware(db), ctrl.GetKelasBySlug)
}
