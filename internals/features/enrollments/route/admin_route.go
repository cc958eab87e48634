package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/enrollments/controller"
)

// EnrollmentAdminRoutes: kelola pendaftaran (konfirmasi kursus berbayar dll.)
func EnrollmentAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEnrollmentAdminController(db)

	enrollments := api.Group("/enrollments")
	enrollments.Get("/", ctrl.GetAllEnrollments)
	enrollments.Patch("/:id/approve", ctrl.ApproveEnrollment)
	enrollments.Delete("/:id", ctrl.DeleteEnrollment)
}
