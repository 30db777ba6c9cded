package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"guidanceku_backend/internals/constants"
	ReferralController "guidanceku_backend/internals/features/counseling/referrals/controller"
	authMiddleware "guidanceku_backend/internals/middlewares/auth"
)

// ReferralTeacherRoutes registers the teacher-facing referral endpoints.
func ReferralTeacherRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := ReferralController.NewReferralController(db)

	referrals := router.Group("/referrals",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorTeacher("student referrals"), constants.StaffRoles),
	)

	referrals.Post("/", ctrl.CreateReferral)
	referrals.Get("/me", ctrl.GetMyReferrals)
}

// ReferralAdminRoutes registers the counselor-only referral endpoints.
func ReferralAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := ReferralController.NewReferralController(db)

	referrals := router.Group("/referrals",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorCounselor("manage referrals"), constants.CounselorOnly),
	)

	referrals.Get("/", ctrl.GetAllReferrals)
	referrals.Post("/:id/schedule", ctrl.ScheduleReferral)
	referrals.Put("/:id/reject", ctrl.RejectReferral)
}
