package dto

import (
	"time"

	"github.com/google/uuid"

	"guidanceku_backend/internals/features/appraisals/responses/model"
	"guidanceku_backend/internals/features/appraisals/scoring"
)

// =============================
// 📥 Request DTOs
// =============================
type SubmitAppraisalRequest struct {
	TemplateID uuid.UUID               `json:"template_id" validate:"required"`
	Answers    []QuestionAnswerRequest `json:"answers" validate:"required,min=1,dive"`
}

type QuestionAnswerRequest struct {
	QuestionID uuid.UUID `json:"question_id" validate:"required"`
	Response   int       `json:"response" validate:"required,min=1,max=5"`
}

// =============================
// 📤 Response DTOs
// =============================
type StudentAppraisalDTO struct {
	StudentAppraisalID uuid.UUID             `json:"student_appraisal_id"`
	StudentID          uuid.UUID             `json:"student_id"`
	StudentName        string                `json:"student_name,omitempty"`
	TemplateID         uuid.UUID             `json:"template_id"`
	TemplateTitle      string                `json:"template_title,omitempty"`
	SubmittedAt        time.Time             `json:"submitted_at"`
	Categories         []CategoryResponseDTO `json:"categories,omitempty"`
}

type CategoryResponseDTO struct {
	CategoryResponseID uuid.UUID     `json:"category_response_id"`
	CategoryID         uuid.UUID     `json:"category_id"`
	CategoryName       string        `json:"category_name,omitempty"`
	Score              float64       `json:"score"`
	Evaluation         *scoring.Band `json:"evaluation,omitempty"`
}

// =============================
// 🔁 Converters
// =============================
func ToStudentAppraisalDTO(m model.StudentAppraisalModel) StudentAppraisalDTO {
	out := StudentAppraisalDTO{
		StudentAppraisalID: m.StudentAppraisalID,
		StudentID:          m.StudentAppraisalStudentID,
		TemplateID:         m.StudentAppraisalTemplateID,
		SubmittedAt:        m.StudentAppraisalSubmittedAt,
	}
	if m.Student != nil {
		out.StudentName = m.Student.FullName
	}
	if m.Template != nil {
		out.TemplateTitle = m.Template.TemplateTitle
	}
	for _, cr := range m.CategoryResponses {
		dto := CategoryResponseDTO{
			CategoryResponseID: cr.CategoryResponseID,
			CategoryID:         cr.CategoryResponseCategoryID,
			Score:              cr.CategoryResponseScore,
		}
		if cr.Category != nil {
			dto.CategoryName = cr.Category.CategoryName
		}
		out.Categories = append(out.Categories, dto)
	}
	return out
}

func ToStudentAppraisalDTOList(models []model.StudentAppraisalModel) []StudentAppraisalDTO {
	out := make([]StudentAppraisalDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToStudentAppraisalDTO(m))
	}
	return out
}
