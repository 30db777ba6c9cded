package model

import (
	"time"

	"github.com/google/uuid"

	TemplateModel "guidanceku_backend/internals/features/appraisals/templates/model"
	UserModel "guidanceku_backend/internals/features/users/user/model"
)

// =============================
// 📝 Student Appraisal Submission
// =============================

// StudentAppraisalModel is one student's completed run of a template.
type StudentAppraisalModel struct {
	StudentAppraisalID          uuid.UUID `gorm:"column:student_appraisal_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"student_appraisal_id"`
	StudentAppraisalStudentID   uuid.UUID `gorm:"column:student_appraisal_student_id;type:uuid;not null" json:"student_appraisal_student_id"`
	StudentAppraisalTemplateID  uuid.UUID `gorm:"column:student_appraisal_template_id;type:uuid;not null" json:"student_appraisal_template_id"`
	StudentAppraisalSubmittedAt time.Time `gorm:"column:student_appraisal_submitted_at;autoCreateTime" json:"student_appraisal_submitted_at"`

	Student           *UserModel.UserModel         `gorm:"foreignKey:StudentAppraisalStudentID;references:ID" json:"student,omitempty"`
	Template          *TemplateModel.TemplateModel `gorm:"foreignKey:StudentAppraisalTemplateID;references:TemplateID" json:"template,omitempty"`
	CategoryResponses []CategoryResponseModel      `gorm:"foreignKey:CategoryResponseAppraisalID;references:StudentAppraisalID" json:"category_responses,omitempty"`
}

func (StudentAppraisalModel) TableName() string {
	return "student_appraisals"
}

// CategoryResponseModel stores the computed mean for one category. The
// stored score is authoritative; reads never recompute it.
type CategoryResponseModel struct {
	CategoryResponseID          uuid.UUID `gorm:"column:category_response_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"category_response_id"`
	CategoryResponseAppraisalID uuid.UUID `gorm:"column:category_response_appraisal_id;type:uuid;not null" json:"category_response_appraisal_id"`
	CategoryResponseCategoryID  uuid.UUID `gorm:"column:category_response_category_id;type:uuid;not null" json:"category_response_category_id"`
	CategoryResponseScore       float64   `gorm:"column:category_response_score;type:numeric(4,2);not null" json:"category_response_score"`

	Category          *TemplateModel.CategoryModel `gorm:"foreignKey:CategoryResponseCategoryID;references:CategoryID" json:"category,omitempty"`
	QuestionResponses []QuestionResponseModel      `gorm:"foreignKey:QuestionResponseCategoryResponseID;references:CategoryResponseID" json:"question_responses,omitempty"`
}

func (CategoryResponseModel) TableName() string {
	return "appraisal_category_responses"
}

type QuestionResponseModel struct {
	QuestionResponseID                 uuid.UUID `gorm:"column:question_response_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"question_response_id"`
	QuestionResponseCategoryResponseID uuid.UUID `gorm:"column:question_response_category_response_id;type:uuid;not null" json:"question_response_category_response_id"`
	QuestionResponseQuestionID         uuid.UUID `gorm:"column:question_response_question_id;type:uuid;not null" json:"question_response_question_id"`
	QuestionResponseValue              int       `gorm:"column:question_response_value;not null" json:"question_response_value"`
}

func (QuestionResponseModel) TableName() string {
	return "appraisal_question_responses"
}
