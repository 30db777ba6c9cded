package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"guidanceku_backend/internals/constants"
	ReportController "guidanceku_backend/internals/features/counseling/reports/controller"
	authMiddleware "guidanceku_backend/internals/middlewares/auth"
)

// ReportAdminRoutes registers the counselor dashboard reports.
func ReportAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := ReportController.NewReportController(db)

	reports := router.Group("/reports",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorCounselor("reporting"), constants.CounselorOnly),
	)

	reports.Get("/appointments", ctrl.GetAppointmentReport)
	reports.Get("/appraisals", ctrl.GetAppraisalReport)
}
