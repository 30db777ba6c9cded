package dto

import (
	"time"

	"github.com/google/uuid"

	"guidanceku_backend/internals/features/appraisals/legacy/model"
)

// =============================
// 📥 Request DTO
// =============================
type CreateAppraisalRequest struct {
	StudentID         uuid.UUID `json:"student_id" validate:"required"`
	AcademicRaw       float64   `json:"academic_raw" validate:"gte=0,lte=100"`
	SocioEmotionalRaw float64   `json:"socio_emotional_raw" validate:"gte=0,lte=100"`
	CareerRaw         float64   `json:"career_raw" validate:"gte=0,lte=100"`
}

// =============================
// 📤 Response DTO
// =============================
type AppraisalDTO struct {
	AppraisalID uuid.UUID `json:"appraisal_id"`
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name,omitempty"`

	AcademicRaw       float64 `json:"academic_raw"`
	SocioEmotionalRaw float64 `json:"socio_emotional_raw"`
	CareerRaw         float64 `json:"career_raw"`

	AcademicScore       float64 `json:"academic_score"`
	SocioEmotionalScore float64 `json:"socio_emotional_score"`
	CareerScore         float64 `json:"career_score"`
	OverallScore        float64 `json:"overall_score"`

	CreatedAt time.Time `json:"created_at"`
}

// =============================
// 🔁 Converters
// =============================
func ToAppraisalDTO(m model.AppraisalModel) AppraisalDTO {
	out := AppraisalDTO{
		AppraisalID:         m.AppraisalID,
		StudentID:           m.AppraisalStudentID,
		AcademicRaw:         m.AppraisalAcademicRaw,
		SocioEmotionalRaw:   m.AppraisalSocioEmotionalRaw,
		CareerRaw:           m.AppraisalCareerRaw,
		AcademicScore:       m.AppraisalAcademicScore,
		SocioEmotionalScore: m.AppraisalSocioEmotionalScore,
		CareerScore:         m.AppraisalCareerScore,
		OverallScore:        m.AppraisalOverallScore,
		CreatedAt:           m.AppraisalCreatedAt,
	}
	if m.Student != nil {
		out.StudentName = m.Student.FullName
	}
	return out
}

func ToAppraisalDTOList(models []model.AppraisalModel) []AppraisalDTO {
	out := make([]AppraisalDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToAppraisalDTO(m))
	}
	return out
}
