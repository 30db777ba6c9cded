package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	NotificationController "guidanceku_backend/internals/features/home/notifications/controller"
	authMiddleware "guidanceku_backend/internals/middlewares/auth"
)

// NotificationUserRoutes registers the per-user notification endpoints.
func NotificationUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := NotificationController.NewNotificationController(db)

	notifications := router.Group("/notifications",
		authMiddleware.AuthMiddleware(db),
	)

	notifications.Get("/me", ctrl.GetMyNotifications)
	notifications.Put("/:id/read", ctrl.MarkNotificationRead)
	notifications.Put("/read-all", ctrl.MarkAllNotificationsRead)
}
