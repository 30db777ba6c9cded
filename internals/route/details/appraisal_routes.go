package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	LegacyRoute "guidanceku_backend/internals/features/appraisals/legacy/route"
	ResponseRoute "guidanceku_backend/internals/features/appraisals/responses/route"
	TemplateRoute "guidanceku_backend/internals/features/appraisals/templates/route"
)

// AppraisalUserRoutes mounts appraisal taking and result reading.
func AppraisalUserRoutes(api fiber.Router, db *gorm.DB) {
	TemplateRoute.TemplateUserRoutes(api, db)
	ResponseRoute.StudentAppraisalUserRoutes(api, db)
	LegacyRoute.AppraisalUserRoutes(api, db)
}

// AppraisalAdminRoutes mounts template authoring and review.
func AppraisalAdminRoutes(api fiber.Router, db *gorm.DB) {
	TemplateRoute.TemplateAdminRoutes(api, db)
	ResponseRoute.StudentAppraisalAdminRoutes(api, db)
	LegacyRoute.AppraisalAdminRoutes(api, db)
}
