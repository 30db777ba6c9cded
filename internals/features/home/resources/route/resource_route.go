package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"guidanceku_backend/internals/constants"
	ResourceController "guidanceku_backend/internals/features/home/resources/controller"
	authMiddleware "guidanceku_backend/internals/middlewares/auth"
)

// ResourcePublicRoutes registers the unauthenticated reading endpoints.
func ResourcePublicRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := ResourceController.NewResourceController(db)

	resources := router.Group("/resources")
	resources.Get("/", ctrl.GetAllResources)
	resources.Get("/:slug", ctrl.GetResourceBySlug)
}

// ResourceAdminRoutes registers the counselor-only authoring endpoints.
func ResourceAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := ResourceController.NewResourceController(db)

	resources := router.Group("/resources",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorCounselor("manage resources"), constants.CounselorOnly),
	)

	resources.Post("/", ctrl.CreateResource)
	resources.Put("/:id", ctrl.UpdateResource)
	resources.Delete("/:id", ctrl.DeleteResource)
}
