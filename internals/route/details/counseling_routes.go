package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AppointmentRoute "guidanceku_backend/internals/features/counseling/appointments/route"
	ReferralRoute "guidanceku_backend/internals/features/counseling/referrals/route"
	ReportRoute "guidanceku_backend/internals/features/counseling/reports/route"
	RequestRoute "guidanceku_backend/internals/features/counseling/requests/route"
)

// CounselingUserRoutes mounts the student- and teacher-facing endpoints.
func CounselingUserRoutes(api fiber.Router, db *gorm.DB) {
	AppointmentRoute.AppointmentUserRoutes(api, db)
	RequestRoute.AppointmentRequestUserRoutes(api, db)
	ReferralRoute.ReferralTeacherRoutes(api, db)
}

// CounselingAdminRoutes mounts the counselor-only endpoints.
func CounselingAdminRoutes(api fiber.Router, db *gorm.DB) {
	AppointmentRoute.AppointmentAdminRoutes(api, db)
	RequestRoute.AppointmentRequestAdminRoutes(api, db)
	ReferralRoute.ReferralAdminRoutes(api, db)
	ReportRoute.ReportAdminRoutes(api, db)
}
