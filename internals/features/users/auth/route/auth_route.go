package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursusku_backend/internals/features/users/auth/controller"
	authMiddleware "kursusku_backend/internals/middlewares"
	authGuard "kursusku_backend/internals/middlewares/auth"
)

// AuthRoutes: /api/register, /api/login, /api/logout, dst.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	api.Post("/register", authMiddleware.RegisterRateLimiter(), ctrl.Register)
	api.Post("/login", authMiddleware.LoginRateLimiter(), ctrl.Login)
	api.Post("/login-google", authMiddleware.LoginRateLimiter(), ctrl.LoginGoogle)
	api.Post("/refresh-token", ctrl.RefreshToken)

	// butuh login
	api.Post("/logout", authGuard.AuthMiddleware(db), ctrl.Logout)
	api.Get("/profile", authGuard.AuthMiddleware(db), ctrl.Profile)
}
