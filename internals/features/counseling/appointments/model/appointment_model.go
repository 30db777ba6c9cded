package model

import (
	"time"

	"github.com/google/uuid"

	UserModel "guidanceku_backend/internals/features/users/user/model"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusClosed    = "closed"

	TypeSelfAppoint = "self_appoint"
	TypeReferral    = "referral"
)

// AppointmentModel is one counseling slot. The guidance office is a single
// resource: a partial unique index on appointment_date_time (non-cancelled
// rows only) enforces one active appointment per instant.
type AppointmentModel struct {
	AppointmentID          uuid.UUID  `gorm:"column:appointment_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"appointment_id"`
	AppointmentStudentID   uuid.UUID  `gorm:"column:appointment_student_id;type:uuid;not null" json:"appointment_student_id"`
	AppointmentCounselorID uuid.UUID  `gorm:"column:appointment_counselor_id;type:uuid;not null" json:"appointment_counselor_id"`
	AppointmentDateTime    time.Time  `gorm:"column:appointment_date_time;type:timestamptz;not null" json:"appointment_date_time"`
	AppointmentType        string     `gorm:"column:appointment_type;type:varchar(20);not null;default:'self_appoint'" json:"appointment_type"`
	AppointmentStatus      string     `gorm:"column:appointment_status;type:varchar(20);not null;default:'pending'" json:"appointment_status"`
	AppointmentReason      string     `gorm:"column:appointment_reason;type:text;not null" json:"appointment_reason"`
	AppointmentNotes       string     `gorm:"column:appointment_notes;type:text" json:"appointment_notes"`
	AppointmentReferralID  *uuid.UUID `gorm:"column:appointment_referral_id;type:uuid" json:"appointment_referral_id,omitempty"`
	AppointmentCreatedAt   time.Time  `gorm:"column:appointment_created_at;autoCreateTime" json:"appointment_created_at"`
	AppointmentUpdatedAt   time.Time  `gorm:"column:appointment_updated_at;autoUpdateTime" json:"appointment_updated_at"`

	// Optional relations
	Student   *UserModel.UserModel `gorm:"foreignKey:AppointmentStudentID" json:"student,omitempty"`
	Counselor *UserModel.UserModel `gorm:"foreignKey:AppointmentCounselorID" json:"counselor,omitempty"`
}

func (AppointmentModel) TableName() string {
	return "appointments"
}
