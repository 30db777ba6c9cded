package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	NotificationRoute "guidanceku_backend/internals/features/home/notifications/route"
	ResourceRoute "guidanceku_backend/internals/features/home/resources/route"
)

// HomePublicRoutes mounts the open guidance content.
func HomePublicRoutes(api fiber.Router, db *gorm.DB) {
	ResourceRoute.ResourcePublicRoutes(api, db)
}

// HomeUserRoutes mounts per-user home endpoints.
func HomeUserRoutes(api fiber.Router, db *gorm.DB) {
	NotificationRoute.NotificationUserRoutes(api, db)
}

// HomeAdminRoutes mounts the counselor-managed content endpoints.
func HomeAdminRoutes(api fiber.Router, db *gorm.DB) {
	ResourceRoute.ResourceAdminRoutes(api, db)
}
