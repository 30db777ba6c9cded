package model

import (
	"time"

	"github.com/google/uuid"

	UserModel "guidanceku_backend/internals/features/users/user/model"
)

const (
	UrgencyLow    = "low"
	UrgencyNormal = "normal"
	UrgencyHigh   = "high"
)

// AppointmentRequestModel is a student's ask for a counseling session.
// Requests carry a preferred (not guaranteed) time; accepting one
// creates the real appointment and removes the request row.
type AppointmentRequestModel struct {
	RequestID            uuid.UUID `gorm:"column:request_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"request_id"`
	RequestStudentID     uuid.UUID `gorm:"column:request_student_id;type:uuid;not null" json:"request_student_id"`
	RequestPreferredTime time.Time `gorm:"column:request_preferred_time;type:timestamptz;not null" json:"request_preferred_time"`
	RequestReason        string    `gorm:"column:request_reason;type:text;not null" json:"request_reason"`
	RequestUrgency       string    `gorm:"column:request_urgency;type:varchar(20);not null;default:'normal'" json:"request_urgency"`
	RequestType          string    `gorm:"column:request_type;type:varchar(20);not null;default:'self_appoint'" json:"request_type"`
	RequestNotes         string    `gorm:"column:request_notes;type:text" json:"request_notes,omitempty"`
	RequestCreatedAt     time.Time `gorm:"column:request_created_at;autoCreateTime" json:"request_created_at"`

	Student *UserModel.UserModel `gorm:"foreignKey:RequestStudentID;references:ID" json:"student,omitempty"`
}

func (AppointmentRequestModel) TableName() string {
	return "appointment_requests"
}
