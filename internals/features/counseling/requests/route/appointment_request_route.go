package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"guidanceku_backend/internals/constants"
	RequestController "guidanceku_backend/internals/features/counseling/requests/controller"
	authMiddleware "guidanceku_backend/internals/middlewares/auth"
)

// AppointmentRequestUserRoutes registers the student-facing request endpoints.
func AppointmentRequestUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := RequestController.NewAppointmentRequestController(db)

	requests := router.Group("/appointment-requests",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorStudent("submit appointment requests"), constants.StudentOnly),
	)

	requests.Post("/", ctrl.CreateRequest)
	requests.Get("/me", ctrl.GetMyRequests)
}

// AppointmentRequestAdminRoutes registers the counselor-only request endpoints.
func AppointmentRequestAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := RequestController.NewAppointmentRequestController(db)

	requests := router.Group("/appointment-requests",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(constants.RoleErrorCounselor("manage appointment requests"), constants.CounselorOnly),
	)

	requests.Get("/", ctrl.GetAllRequests)
	requests.Post("/:id/accept", ctrl.AcceptRequest)
	requests.Delete("/:id/reject", ctrl.RejectRequest)
}
