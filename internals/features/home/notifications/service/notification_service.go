package service

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	NotificationModel "guidanceku_backend/internals/features/home/notifications/model"
)

// =============================
// 🔔 Notification Fan-out
// =============================

// Notify writes a single notification row for a user. Failures are
// logged and swallowed so the caller's transaction is never poisoned
// by a notification problem.
func Notify(db *gorm.DB, userID uuid.UUID, title, description string, notifType int, tags []string, payload map[string]interface{}) {
	var raw []byte
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			log.Printf("[ERROR] Failed to marshal notification payload: %v", err)
		} else {
			raw = b
		}
	}

	notif := NotificationModel.NotificationModel{
		NotificationUserID:      userID,
		NotificationTitle:       title,
		NotificationDescription: description,
		NotificationType:        notifType,
		NotificationTags:        tags,
		NotificationPayload:     raw,
	}

	if err := db.Create(&notif).Error; err != nil {
		log.Printf("[ERROR] Failed to create notification for user %s: %v", userID, err)
	}
}
