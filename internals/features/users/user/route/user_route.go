package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"guidanceku_backend/internals/constants"
	userController "guidanceku_backend/internals/features/users/user/controller"
	authMiddleware "guidanceku_backend/internals/middlewares/auth"
)

// 🔐 Counselor-only user management
func UserAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := router.Group("/users",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorCounselor("managing users"),
			constants.CounselorOnly,
		),
	)

	users.Get("/", ctrl.GetAllUsers)
	users.Get("/:id", ctrl.GetUserByID)
	users.Put("/:id", ctrl.UpdateUser)
	users.Delete("/:id", ctrl.DeleteUser)
}
