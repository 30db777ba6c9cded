package dto

import (
	"time"

	"github.com/google/uuid"

	"guidanceku_backend/internals/features/appraisals/templates/model"
)

// =============================
// 📤 Response DTOs
// =============================
type TemplateDTO struct {
	TemplateID  uuid.UUID     `json:"template_id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	IsActive    bool          `json:"is_active"`
	Categories  []CategoryDTO `json:"categories,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

type CategoryDTO struct {
	CategoryID  uuid.UUID     `json:"category_id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Order       int           `json:"order"`
	Questions   []QuestionDTO `json:"questions,omitempty"`
	Criteria    []CriteriaDTO `json:"criteria,omitempty"`
}

type QuestionDTO struct {
	QuestionID uuid.UUID `json:"question_id"`
	Text       string    `json:"text"`
	Order      int       `json:"order"`
}

type CriteriaDTO struct {
	CriteriaID  uuid.UUID `json:"criteria_id"`
	Min         float64   `json:"min"`
	Max         float64   `json:"max"`
	Label       string    `json:"label"`
	Description string    `json:"description,omitempty"`
	Suggestion  string    `json:"suggestion,omitempty"`
}

// =============================
// 📥 Request DTOs
// =============================
type CreateTemplateRequest struct {
	Title       string                  `json:"title" validate:"required,min=3,max=255"`
	Description string                  `json:"description"`
	Categories  []CreateCategoryRequest `json:"categories" validate:"omitempty,dive"`
}

type UpdateTemplateRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=3,max=255"`
	Description *string `json:"description"`
}

type CreateCategoryRequest struct {
	Name        string                  `json:"name" validate:"required,min=2,max=255"`
	Description string                  `json:"description"`
	Order       int                     `json:"order"`
	Questions   []CreateQuestionRequest `json:"questions" validate:"omitempty,dive"`
	Criteria    []CreateCriteriaRequest `json:"criteria" validate:"omitempty,dive"`
}

type CreateQuestionRequest struct {
	Text  string `json:"text" validate:"required"`
	Order int    `json:"order"`
}

type CreateCriteriaRequest struct {
	Min         float64 `json:"min" validate:"gte=0,lte=5"`
	Max         float64 `json:"max" validate:"gte=0,lte=5,gtefield=Min"`
	Label       string  `json:"label" validate:"required,max=255"`
	Description string  `json:"description"`
	Suggestion  string  `json:"suggestion"`
}

// =============================
// 🔁 Converters
// =============================
func ToTemplateDTO(m model.TemplateModel) TemplateDTO {
	out := TemplateDTO{
		TemplateID:  m.TemplateID,
		Title:       m.TemplateTitle,
		Description: m.TemplateDescription,
		IsActive:    m.TemplateIsActive,
		CreatedAt:   m.TemplateCreatedAt,
	}
	for _, cat := range m.Categories {
		out.Categories = append(out.Categories, ToCategoryDTO(cat))
	}
	return out
}

func ToCategoryDTO(m model.CategoryModel) CategoryDTO {
	out := CategoryDTO{
		CategoryID:  m.CategoryID,
		Name:        m.CategoryName,
		Description: m.CategoryDescription,
		Order:       m.CategoryOrder,
	}
	for _, q := range m.Questions {
		out.Questions = append(out.Questions, QuestionDTO{
			QuestionID: q.QuestionID,
			Text:       q.QuestionText,
			Order:      q.QuestionOrder,
		})
	}
	for _, cr := range m.Criteria {
		out.Criteria = append(out.Criteria, CriteriaDTO{
			CriteriaID:  cr.CriteriaID,
			Min:         cr.CriteriaMin,
			Max:         cr.CriteriaMax,
			Label:       cr.CriteriaLabel,
			Description: cr.CriteriaDescription,
			Suggestion:  cr.CriteriaSuggestion,
		})
	}
	return out
}

func ToTemplateDTOList(models []model.TemplateModel) []TemplateDTO {
	out := make([]TemplateDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToTemplateDTO(m))
	}
	return out
}
