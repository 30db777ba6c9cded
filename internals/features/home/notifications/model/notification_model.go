package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Notification types, handled as an enum in code
const (
	TypeAppointment = 1
	TypeReferral    = 2
	TypeAppraisal   = 3
	TypeGeneral     = 4
)

type NotificationModel struct {
	NotificationID          uuid.UUID      `gorm:"column:notification_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"notification_id"`
	NotificationUserID      uuid.UUID      `gorm:"column:notification_user_id;type:uuid;not null" json:"notification_user_id"`
	NotificationTitle       string         `gorm:"column:notification_title;type:varchar(255);not null" json:"notification_title"`
	NotificationDescription string         `gorm:"column:notification_description;type:text" json:"notification_description"`
	NotificationType        int            `gorm:"column:notification_type;not null" json:"notification_type"`
	NotificationTags        pq.StringArray `gorm:"column:notification_tags;type:text[]" json:"notification_tags"`
	NotificationPayload     datatypes.JSON `gorm:"column:notification_payload;type:jsonb" json:"notification_payload,omitempty"`
	NotificationReadAt      *time.Time     `gorm:"column:notification_read_at;type:timestamptz" json:"notification_read_at,omitempty"`
	NotificationCreatedAt   time.Time      `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
