package model

import (
	"time"

	"github.com/google/uuid"

	UserModel "guidanceku_backend/internals/features/users/user/model"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusRejected  = "rejected"
)

// ReferralModel is a teacher's referral of a student to the counselor.
// Confirming a referral books a confirmed appointment and records its
// id back on the referral row.
type ReferralModel struct {
	ReferralID            uuid.UUID  `gorm:"column:referral_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"referral_id"`
	ReferralTeacherID     uuid.UUID  `gorm:"column:referral_teacher_id;type:uuid;not null" json:"referral_teacher_id"`
	ReferralStudentID     uuid.UUID  `gorm:"column:referral_student_id;type:uuid;not null" json:"referral_student_id"`
	ReferralCounselorID   *uuid.UUID `gorm:"column:referral_counselor_id;type:uuid" json:"referral_counselor_id,omitempty"`
	ReferralReason        string     `gorm:"column:referral_reason;type:text;not null" json:"referral_reason"`
	ReferralNotes         string     `gorm:"column:referral_notes;type:text" json:"referral_notes,omitempty"`
	ReferralStatus        string     `gorm:"column:referral_status;type:varchar(20);not null;default:'pending'" json:"referral_status"`
	ReferralAppointmentID *uuid.UUID `gorm:"column:referral_appointment_id;type:uuid" json:"referral_appointment_id,omitempty"`
	ReferralCreatedAt     time.Time  `gorm:"column:referral_created_at;autoCreateTime" json:"referral_created_at"`
	ReferralUpdatedAt     time.Time  `gorm:"column:referral_updated_at;autoUpdateTime" json:"referral_updated_at"`

	Teacher *UserModel.UserModel `gorm:"foreignKey:ReferralTeacherID;references:ID" json:"teacher,omitempty"`
	Student *UserModel.UserModel `gorm:"foreignKey:ReferralStudentID;references:ID" json:"student,omitempty"`
}

func (ReferralModel) TableName() string {
	return "referrals"
}
