package dto

import (
	"time"

	"github.com/google/uuid"

	"guidanceku_backend/internals/features/counseling/referrals/model"
)

// =============================
// 📤 Response DTO
// =============================
type ReferralDTO struct {
	ReferralID    uuid.UUID  `json:"referral_id"`
	TeacherID     uuid.UUID  `json:"teacher_id"`
	TeacherName   string     `json:"teacher_name,omitempty"`
	StudentID     uuid.UUID  `json:"student_id"`
	StudentName   string     `json:"student_name,omitempty"`
	CounselorID   *uuid.UUID `json:"counselor_id,omitempty"`
	Reason        string     `json:"reason"`
	Notes         string     `json:"notes,omitempty"`
	Status        string     `json:"status"`
	AppointmentID *uuid.UUID `json:"appointment_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// =============================
// 📥 Request DTOs
// =============================
type CreateReferralRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Reason    string    `json:"reason" validate:"required"`
	Notes     string    `json:"notes"`
}

type ScheduleReferralRequest struct {
	DateTime time.Time `json:"date_time" validate:"required"`
	Notes    string    `json:"notes"`
}

// =============================
// 🔁 Converters
// =============================
func ToReferralDTO(m model.ReferralModel) ReferralDTO {
	out := ReferralDTO{
		ReferralID:    m.ReferralID,
		TeacherID:     m.ReferralTeacherID,
		StudentID:     m.ReferralStudentID,
		CounselorID:   m.ReferralCounselorID,
		Reason:        m.ReferralReason,
		Notes:         m.ReferralNotes,
		Status:        m.ReferralStatus,
		AppointmentID: m.ReferralAppointmentID,
		CreatedAt:     m.ReferralCreatedAt,
	}
	if m.Teacher != nil {
		out.TeacherName = m.Teacher.FullName
	}
	if m.Student != nil {
		out.StudentName = m.Student.FullName
	}
	return out
}

func ToReferralDTOList(models []model.ReferralModel) []ReferralDTO {
	out := make([]ReferralDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToReferralDTO(m))
	}
	return out
}
