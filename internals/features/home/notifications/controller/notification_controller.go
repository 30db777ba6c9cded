package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	NotificationDTO "guidanceku_backend/internals/features/home/notifications/dto"
	NotificationModel "guidanceku_backend/internals/features/home/notifications/model"
	helper "guidanceku_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GetMyNotifications lists the authenticated user's notifications,
// unread first.
func (ctrl *NotificationController) GetMyNotifications(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	query := ctrl.DB.Model(&NotificationModel.NotificationModel{}).
		Where("notification_user_id = ?", userID)
	if c.Query("unread") == "true" {
		query = query.Where("notification_read_at IS NULL")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count notifications")
	}

	var notifications []NotificationModel.NotificationModel
	if err := query.
		Order("notification_read_at IS NULL DESC, notification_created_at DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&notifications).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}

	pagination := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Notifications fetched successfully", NotificationDTO.ToNotificationDTOList(notifications), &pagination)
}

// MarkNotificationRead stamps a single notification as read.
func (ctrl *NotificationController) MarkNotificationRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification ID")
	}

	now := time.Now()
	result := ctrl.DB.Model(&NotificationModel.NotificationModel{}).
		Where("notification_id = ? AND notification_user_id = ?", id, userID).
		Where("notification_read_at IS NULL").
		Update("notification_read_at", now)
	if result.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark notification as read")
	}
	if result.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notification not found or already read")
	}

	return helper.JsonUpdated(c, "Notification marked as read", nil)
}

// MarkAllNotificationsRead stamps every unread notification.
func (ctrl *NotificationController) MarkAllNotificationsRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	now := time.Now()
	result := ctrl.DB.Model(&NotificationModel.NotificationModel{}).
		Where("notification_user_id = ?", userID).
		Where("notification_read_at IS NULL").
		Update("notification_read_at", now)
	if result.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark notifications as read")
	}

	return helper.JsonUpdated(c, "Notifications marked as read", fiber.Map{
		"marked": result.RowsAffected,
	})
}
