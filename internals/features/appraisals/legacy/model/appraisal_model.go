package model

import (
	"time"

	"github.com/google/uuid"

	UserModel "guidanceku_backend/internals/features/users/user/model"
)

// AppraisalModel is the fixed three-area appraisal flow. Counselors key
// in raw 0-100 marks per area; the normalized 0-5 scores and the overall
// mean are computed once at submission and stored.
type AppraisalModel struct {
	AppraisalID        uuid.UUID `gorm:"column:appraisal_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"appraisal_id"`
	AppraisalStudentID uuid.UUID `gorm:"column:appraisal_student_id;type:uuid;not null" json:"appraisal_student_id"`

	AppraisalAcademicRaw       float64 `gorm:"column:appraisal_academic_raw;type:numeric(5,2);not null" json:"appraisal_academic_raw"`
	AppraisalSocioEmotionalRaw float64 `gorm:"column:appraisal_socio_emotional_raw;type:numeric(5,2);not null" json:"appraisal_socio_emotional_raw"`
	AppraisalCareerRaw         float64 `gorm:"column:appraisal_career_raw;type:numeric(5,2);not null" json:"appraisal_career_raw"`

	AppraisalAcademicScore       float64 `gorm:"column:appraisal_academic_score;type:numeric(4,2);not null" json:"appraisal_academic_score"`
	AppraisalSocioEmotionalScore float64 `gorm:"column:appraisal_socio_emotional_score;type:numeric(4,2);not null" json:"appraisal_socio_emotional_score"`
	AppraisalCareerScore         float64 `gorm:"column:appraisal_career_score;type:numeric(4,2);not null" json:"appraisal_career_score"`
	AppraisalOverallScore        float64 `gorm:"column:appraisal_overall_score;type:numeric(4,2);not null" json:"appraisal_overall_score"`

	AppraisalCreatedAt time.Time `gorm:"column:appraisal_created_at;autoCreateTime" json:"appraisal_created_at"`

	Student *UserModel.UserModel `gorm:"foreignKey:AppraisalStudentID;references:ID" json:"student,omitempty"`
}

func (AppraisalModel) TableName() string {
	return "appraisals"
}
