package dto

import (
	"time"

	"github.com/google/uuid"

	"guidanceku_backend/internals/features/counseling/appointments/model"
)

// =============================
// 📤 Response DTO
// =============================
type AppointmentDTO struct {
	AppointmentID uuid.UUID  `json:"appointment_id"`
	StudentID     uuid.UUID  `json:"student_id"`
	StudentName   string     `json:"student_name,omitempty"`
	CounselorID   uuid.UUID  `json:"counselor_id"`
	CounselorName string     `json:"counselor_name,omitempty"`
	DateTime      time.Time  `json:"date_time"`
	Type          string     `json:"type"`
	Status        string     `json:"status"`
	Reason        string     `json:"reason"`
	Notes         string     `json:"notes,omitempty"`
	ReferralID    *uuid.UUID `json:"referral_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// =============================
// 📥 Request DTOs
// =============================
type CreateAppointmentRequest struct {
	// StudentID is only honored for counselor bookings; students
	// always book for themselves.
	StudentID  *uuid.UUID `json:"student_id"`
	DateTime   time.Time  `json:"date_time" validate:"required"`
	Type       string     `json:"type" validate:"required,oneof=self_appoint referral"`
	Reason     string     `json:"reason" validate:"required"`
	Notes      string     `json:"notes"`
	ReferralID *uuid.UUID `json:"referral_id"`
}

type RescheduleAppointmentRequest struct {
	DateTime time.Time `json:"date_time" validate:"required"`
	Notes    *string   `json:"notes"`
}

// =============================
// 🔁 Converters
// =============================
func ToAppointmentDTO(m model.AppointmentModel) AppointmentDTO {
	out := AppointmentDTO{
		AppointmentID: m.AppointmentID,
		StudentID:     m.AppointmentStudentID,
		CounselorID:   m.AppointmentCounselorID,
		DateTime:      m.AppointmentDateTime,
		Type:          m.AppointmentType,
		Status:        m.AppointmentStatus,
		Reason:        m.AppointmentReason,
		Notes:         m.AppointmentNotes,
		ReferralID:    m.AppointmentReferralID,
		CreatedAt:     m.AppointmentCreatedAt,
	}
	if m.Student != nil {
		out.StudentName = m.Student.FullName
	}
	if m.Counselor != nil {
		out.CounselorName = m.Counselor.FullName
	}
	return out
}

func ToAppointmentDTOList(models []model.AppointmentModel) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToAppointmentDTO(m))
	}
	return out
}
