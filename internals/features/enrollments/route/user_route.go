package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/constants"
	"kursusku_backend/internals/features/enrollments/controller"
	authGuard "kursusku_backend/internals/middlewares/auth"
)

// EnrollmentUserRoutes: endpoint pendaftaran, wajib login (role apa pun)
func EnrollmentUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEnrollmentController(db)
	mustLogin := authGuard.AuthMiddleware(db)
	anyRole := authGuard.OnlyRolesSlice(constants.RoleErrorLogin("pendaftaran kursus"), constants.AllowedRoles)

	api.Post("/enroll/:kelas_slug", mustLogin, anyRole, ctrl.Enroll)
	api.Get("/my-courses", mustLogin, anyRole, ctrl.GetMyCourses)
}
