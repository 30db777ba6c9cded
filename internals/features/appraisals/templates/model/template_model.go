package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================
// 📋 Appraisal Template
// =============================

// TemplateModel is a counselor-authored appraisal form. Categories hold
// Likert questions and optional scoring criteria bands.
type TemplateModel struct {
	TemplateID          uuid.UUID `gorm:"column:template_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"template_id"`
	TemplateTitle       string    `gorm:"column:template_title;type:varchar(255);not null" json:"template_title"`
	TemplateDescription string    `gorm:"column:template_description;type:text" json:"template_description"`
	TemplateIsActive    bool      `gorm:"column:template_is_active;not null;default:false" json:"template_is_active"`
	TemplateCreatedAt   time.Time `gorm:"column:template_created_at;autoCreateTime" json:"template_created_at"`
	TemplateUpdatedAt   time.Time `gorm:"column:template_updated_at;autoUpdateTime" json:"template_updated_at"`

	Categories []CategoryModel `gorm:"foreignKey:CategoryTemplateID;references:TemplateID" json:"categories,omitempty"`
}

func (TemplateModel) TableName() string {
	return "appraisal_templates"
}

type CategoryModel struct {
	CategoryID          uuid.UUID `gorm:"column:category_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"category_id"`
	CategoryTemplateID  uuid.UUID `gorm:"column:category_template_id;type:uuid;not null" json:"category_template_id"`
	CategoryName        string    `gorm:"column:category_name;type:varchar(255);not null" json:"category_name"`
	CategoryDescription string    `gorm:"column:category_description;type:text" json:"category_description"`
	CategoryOrder       int       `gorm:"column:category_order;not null;default:0" json:"category_order"`

	Questions []QuestionModel           `gorm:"foreignKey:QuestionCategoryID;references:CategoryID" json:"questions,omitempty"`
	Criteria  []EvaluationCriteriaModel `gorm:"foreignKey:CriteriaCategoryID;references:CategoryID" json:"criteria,omitempty"`
}

func (CategoryModel) TableName() string {
	return "appraisal_categories"
}

type QuestionModel struct {
	QuestionID         uuid.UUID `gorm:"column:question_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"question_id"`
	QuestionCategoryID uuid.UUID `gorm:"column:question_category_id;type:uuid;not null" json:"question_category_id"`
	QuestionText       string    `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionOrder      int       `gorm:"column:question_order;not null;default:0" json:"question_order"`
}

func (QuestionModel) TableName() string {
	return "appraisal_questions"
}

// EvaluationCriteriaModel is a counselor-authored score band attached
// to a category. Min and Max are literal inclusive bounds.
type EvaluationCriteriaModel struct {
	CriteriaID          uuid.UUID `gorm:"column:criteria_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"criteria_id"`
	CriteriaCategoryID  uuid.UUID `gorm:"column:criteria_category_id;type:uuid;not null" json:"criteria_category_id"`
	CriteriaMin         float64   `gorm:"column:criteria_min;type:numeric(4,2);not null" json:"criteria_min"`
	CriteriaMax         float64   `gorm:"column:criteria_max;type:numeric(4,2);not null" json:"criteria_max"`
	CriteriaLabel       string    `gorm:"column:criteria_label;type:varchar(255);not null" json:"criteria_label"`
	CriteriaDescription string    `gorm:"column:criteria_description;type:text" json:"criteria_description"`
	CriteriaSuggestion  string    `gorm:"column:criteria_suggestion;type:text" json:"criteria_suggestion"`
}

func (EvaluationCriteriaModel) TableName() string {
	return "appraisal_evaluation_criteria"
}
