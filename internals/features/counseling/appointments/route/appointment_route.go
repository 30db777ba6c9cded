package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"guidanceku_backend/internals/constants"
	AppointmentController "guidanceku_backend/internals/features/counseling/appointments/controller"
	authMiddleware "guidanceku_backend/internals/middlewares/auth"
)

// AppointmentUserRoutes registers the student-facing appointment endpoints.
func AppointmentUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := AppointmentController.NewAppointmentController(db)

	appointments := router.Group("/appointments",
		authMiddleware.AuthMiddleware(db),
	)

	appointments.Post("/", ctrl.CreateAppointment)
	appointments.Get("/me", ctrl.GetMyAppointments)
	appointments.Get("/:id", ctrl.GetAppointmentByID)
	appointments.Put("/:id/reschedule", ctrl.RescheduleAppointment)
	appointments.Put("/:id/cancel", ctrl.CancelAppointment)
}

// AppointmentAdminRoutes registers the counselor-only appointment endpoints.
func AppointmentAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := AppointmentController.NewAppointmentController(db)

	appointments := router.Group("/appointments",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorCounselor("manage appointments"), constants.CounselorOnly),
	)

	appointments.Get("/", ctrl.GetAllAppointments)
	appointments.Put("/:id/confirm", ctrl.ConfirmAppointment)
	appointments.Put("/:id/close", ctrl.CloseAppointment)
	appointments.Post("/close-stale", ctrl.CloseStaleAppointments)
	appointments.Delete("/:id", ctrl.DeleteAppointment)
}
