package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"guidanceku_backend/internals/route/details"
)

// SetupRoutes mounts every feature under three surfaces:
//
//	/api/public — no session required
//	/api/u      — any authenticated user (per-route role checks inside)
//	/api/a      — counselor administration
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	public := app.Group("/api/public")
	details.AuthPublicRoutes(public, db)
	details.HomePublicRoutes(public, db)

	user := app.Group("/api/u")
	details.AuthUserRoutes(user, db)
	details.CounselingUserRoutes(user, db)
	details.AppraisalUserRoutes(user, db)
	details.HomeUserRoutes(user, db)

	admin := app.Group("/api/a")
	details.UserAdminRoutes(admin, db)
	details.CounselingAdminRoutes(admin, db)
	details.AppraisalAdminRoutes(admin, db)
	details.HomeAdminRoutes(admin, db)
}
