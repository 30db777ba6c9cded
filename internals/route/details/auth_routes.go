package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AuthRoute "guidanceku_backend/internals/features/users/auth/route"
	UserRoute "guidanceku_backend/internals/features/users/user/route"
)

// AuthPublicRoutes mounts login/register and the password recovery flow.
func AuthPublicRoutes(api fiber.Router, db *gorm.DB) {
	AuthRoute.AuthRoutes(api, db)
}

// AuthUserRoutes mounts the session-bound auth endpoints.
func AuthUserRoutes(api fiber.Router, db *gorm.DB) {
	AuthRoute.AuthProtectedRoutes(api, db)
}

// UserAdminRoutes mounts user administration for the counselor.
func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	UserRoute.UserAdminRoutes(api, db)
}
