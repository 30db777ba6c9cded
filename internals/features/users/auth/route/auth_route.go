package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AuthController "guidanceku_backend/internals/features/users/auth/controller"
	"guidanceku_backend/internals/middlewares"
	authMiddleware "guidanceku_backend/internals/middlewares/auth"
)

// AuthRoutes registers the public authentication endpoints. Login and
// register carry their own tighter rate limits.
func AuthRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := AuthController.NewAuthController(db)

	auth := router.Group("/auth")

	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	auth.Post("/refresh-token", ctrl.RefreshToken)
	auth.Post("/check-security-answer", ctrl.CheckSecurityAnswer)
	auth.Post("/reset-password", ctrl.ResetPassword)
}

// AuthProtectedRoutes registers the endpoints that need a valid session.
func AuthProtectedRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := AuthController.NewAuthController(db)

	auth := router.Group("/auth", authMiddleware.AuthMiddleware(db))

	auth.Get("/me", ctrl.Me)
	auth.Post("/logout", ctrl.Logout)
	auth.Post("/change-password", ctrl.ChangePassword)
}
