package dto

import (
	"time"

	"github.com/google/uuid"

	"guidanceku_backend/internals/features/counseling/requests/model"
)

// =============================
// 📤 Response DTO
// =============================
type AppointmentRequestDTO struct {
	RequestID     uuid.UUID `json:"request_id"`
	StudentID     uuid.UUID `json:"student_id"`
	StudentName   string    `json:"student_name,omitempty"`
	PreferredTime time.Time `json:"preferred_time"`
	Reason        string    `json:"reason"`
	Urgency       string    `json:"urgency"`
	Type          string    `json:"type"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// =============================
// 📥 Request DTOs
// =============================
type CreateAppointmentRequestRequest struct {
	PreferredTime time.Time `json:"preferred_time" validate:"required"`
	Reason        string    `json:"reason" validate:"required"`
	Urgency       string    `json:"urgency" validate:"omitempty,oneof=low normal high"`
	Type          string    `json:"type" validate:"omitempty,oneof=self_appoint referral"`
	Notes         string    `json:"notes"`
}

// AcceptAppointmentRequestRequest lets the counselor override the
// student's preferred time when the slot does not work out.
type AcceptAppointmentRequestRequest struct {
	DateTime *time.Time `json:"date_time"`
	Notes    string     `json:"notes"`
}

// =============================
// 🔁 Converters
// =============================
func ToAppointmentRequestDTO(m model.AppointmentRequestModel) AppointmentRequestDTO {
	out := AppointmentRequestDTO{
		RequestID:     m.RequestID,
		StudentID:     m.RequestStudentID,
		PreferredTime: m.RequestPreferredTime,
		Reason:        m.RequestReason,
		Urgency:       m.RequestUrgency,
		Type:          m.RequestType,
		Notes:         m.RequestNotes,
		CreatedAt:     m.RequestCreatedAt,
	}
	if m.Student != nil {
		out.StudentName = m.Student.FullName
	}
	return out
}

func ToAppointmentRequestDTOList(models []model.AppointmentRequestModel) []AppointmentRequestDTO {
	out := make([]AppointmentRequestDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToAppointmentRequestDTO(m))
	}
	return out
}
