package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"guidanceku_backend/internals/constants"
	ResponseController "guidanceku_backend/internals/features/appraisals/responses/controller"
	authMiddleware "guidanceku_backend/internals/middlewares/auth"
)

// StudentAppraisalUserRoutes registers the student-facing endpoints.
func StudentAppraisalUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := ResponseController.NewStudentAppraisalController(db)

	appraisals := router.Group("/student-appraisals",
		authMiddleware.AuthMiddleware(db),
	)

	appraisals.Post("/",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorStudent("appraisal submission"), constants.StudentOnly),
		ctrl.SubmitAppraisal)
	appraisals.Get("/me", ctrl.GetMyAppraisals)
	appraisals.Get("/:id/evaluation", ctrl.GetAppraisalEvaluation)
}

// StudentAppraisalAdminRoutes registers the counselor-only endpoints.
func StudentAppraisalAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := ResponseController.NewStudentAppraisalController(db)

	appraisals := router.Group("/student-appraisals",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorCounselor("review appraisals"), constants.CounselorOnly),
	)

	appraisals.Get("/", ctrl.GetAllAppraisals)
}
