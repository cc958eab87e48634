package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	articleRoute "kursusku_backend/internals/features/articles/route"
	enrollmentRoute "kursusku_backend/internals/features/enrollments/route"
	kelasRoute "kursusku_backend/internals/features/kelas/route"
	authRoute "kursusku_backend/internals/features/users/auth/route"

	"kursusku_backend/internals/constants"
	authMiddleware "kursusku_backend/internals/middlewares/auth"
)

// SetupRoutes menyusun seluruh route aplikasi:
//   - /api   → publik (katalog, artikel, auth) + pendaftaran (wajib login)
//   - /api/a → admin (CRUD kelas, kategori, guru, artikel, pendaftaran)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// 🟢 Publik
	authRoute.AuthRoutes(api, db)
	kelasRoute.KelasUserRoutes(api, db)
	articleRoute.ArticleUserRoutes(api, db)

	// 🟡 Wajib login (guard dipasang per-route di dalamnya)
	enrollmentRoute.EnrollmentUserRoutes(api, db)

	// 🔴 Admin
	admin := api.Group("/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("manajemen konten"), constants.AdminOnly),
	)
	kelasRoute.KelasAdminRoutes(admin, db)
	articleRoute.ArticleAdminRoutes(admin, db)
	enrollmentRoute.EnrollmentAdminRoutes(admin, db)
}
