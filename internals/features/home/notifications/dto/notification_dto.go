package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"guidanceku_backend/internals/features/home/notifications/model"
)

// =============================
// 📤 Response DTO
// =============================
type NotificationDTO struct {
	NotificationID uuid.UUID      `json:"notification_id"`
	Title          string         `json:"title"`
	Description    string         `json:"description,omitempty"`
	Type           int            `json:"type"`
	Tags           []string       `json:"tags,omitempty"`
	Payload        datatypes.JSON `json:"payload,omitempty"`
	ReadAt         *time.Time     `json:"read_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

// =============================
// 🔁 Converters
// =============================
func ToNotificationDTO(m model.NotificationModel) NotificationDTO {
	return NotificationDTO{
		NotificationID: m.NotificationID,
		Title:          m.NotificationTitle,
		Description:    m.NotificationDescription,
		Type:           m.NotificationType,
		Tags:           m.NotificationTags,
		Payload:        m.NotificationPayload,
		ReadAt:         m.NotificationReadAt,
		CreatedAt:      m.NotificationCreatedAt,
	}
}

func ToNotificationDTOList(models []model.NotificationModel) []NotificationDTO {
	out := make([]NotificationDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToNotificationDTO(m))
	}
	return out
}
