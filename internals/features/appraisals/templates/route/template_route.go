package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"guidanceku_backend/internals/constants"
	TemplateController "guidanceku_backend/internals/features/appraisals/templates/controller"
	authMiddleware "guidanceku_backend/internals/middlewares/auth"
)

// TemplateUserRoutes exposes the active template to authenticated users.
func TemplateUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := TemplateController.NewTemplateController(db)

	templates := router.Group("/appraisal-templates",
		authMiddleware.AuthMiddleware(db),
	)

	templates.Get("/active", ctrl.GetActiveTemplate)
}

// TemplateAdminRoutes registers the counselor-only authoring endpoints.
func TemplateAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := TemplateController.NewTemplateController(db)

	templates := router.Group("/appraisal-templates",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorCounselor("manage appraisal templates"), constants.CounselorOnly),
	)

	templates.Post("/", ctrl.CreateTemplate)
	templates.Get("/", ctrl.GetAllTemplates)
	templates.Get("/:id", ctrl.GetTemplateByID)
	templates.Put("/:id", ctrl.UpdateTemplate)
	templates.Put("/:id/activate", ctrl.ActivateTemplate)
	templates.Put("/:id/deactivate", ctrl.DeactivateTemplate)
	templates.Delete("/:id", ctrl.DeleteTemplate)
}
