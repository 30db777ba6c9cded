package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"guidanceku_backend/internals/constants"
	AppraisalController "guidanceku_backend/internals/features/appraisals/legacy/controller"
	authMiddleware "guidanceku_backend/internals/middlewares/auth"
)

// AppraisalUserRoutes lets authenticated users read appraisal results.
// Students only see their own rows, enforced in the controller.
func AppraisalUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := AppraisalController.NewAppraisalController(db)

	appraisals := router.Group("/appraisals",
		authMiddleware.AuthMiddleware(db),
	)

	appraisals.Get("/:id", ctrl.GetAppraisalByID)
	appraisals.Get("/:id/evaluation", ctrl.GetAppraisalEvaluation)
	appraisals.Get("/:id/overall", ctrl.GetAppraisalOverall)
}

// AppraisalAdminRoutes registers the counselor-only endpoints.
func AppraisalAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := AppraisalController.NewAppraisalController(db)

	appraisals := router.Group("/appraisals",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorCounselor("manage appraisals"), constants.CounselorOnly),
	)

	appraisals.Post("/", ctrl.CreateAppraisal)
	appraisals.Get("/", ctrl.GetAllAppraisals)
	appraisals.Delete("/:id", ctrl.DeleteAppraisal)
}
