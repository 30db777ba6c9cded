package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"guidanceku_backend/internals/constants"
	ResponseDTO "guidanceku_backend/internals/features/appraisals/responses/dto"
	ResponseModel "guidanceku_backend/internals/features/appraisals/responses/model"
	"guidanceku_backend/internals/features/appraisals/scoring"
	TemplateModel "guidanceku_backend/internals/features/appraisals/templates/model"
	helper "guidanceku_backend/internals/helpers"
)

type StudentAppraisalController struct {
	DB *gorm.DB
}

func NewStudentAppraisalController(db *gorm.DB) *StudentAppraisalController {
	return &StudentAppraisalController{DB: db}
}

var validate = validator.New()

// =============================
// 📝 Submission
// =============================

// SubmitAppraisal scores and stores a student's answers. Every answer
// is matched back to its template question, grouped by category, and
// the per-category mean is persisted alongside the raw responses.
func (ctrl *StudentAppraisalController) SubmitAppraisal(c *fiber.Ctx) error {
	var req ResponseDTO.SubmitAppraisalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var template TemplateModel.TemplateModel
	if err := ctrl.DB.
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("category_order ASC")
		}).
		Preload("Categories.Questions").
		First(&template, "template_id = ?", req.TemplateID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Appraisal template not found")
	}

	// Map each question to its category, then group the answers
	questionCategory := make(map[uuid.UUID]uuid.UUID)
	for _, cat := range template.Categories {
		for _, q := range cat.Questions {
			questionCategory[q.QuestionID] = cat.CategoryID
		}
	}

	answersByCategory := make(map[uuid.UUID][]ResponseDTO.QuestionAnswerRequest)
	for _, ans := range req.Answers {
		catID, ok := questionCategory[ans.QuestionID]
		if !ok {
			return helper.JsonError(c, fiber.StatusBadRequest, "Answer references a question outside this template")
		}
		answersByCategory[catID] = append(answersByCategory[catID], ans)
	}

	appraisal := ResponseModel.StudentAppraisalModel{
		StudentAppraisalStudentID:  studentID,
		StudentAppraisalTemplateID: template.TemplateID,
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&appraisal).Error; err != nil {
			return err
		}
		for _, cat := range template.Categories {
			answers := answersByCategory[cat.CategoryID]
			if len(answers) == 0 {
				continue
			}

			values := make([]int, 0, len(answers))
			for _, a := range answers {
				values = append(values, a.Response)
			}
			score, err := scoring.ScoreCategory(values)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}

			catResponse := ResponseModel.CategoryResponseModel{
				CategoryResponseAppraisalID: appraisal.StudentAppraisalID,
				CategoryResponseCategoryID:  cat.CategoryID,
				CategoryResponseScore:       score,
			}
			if err := tx.Create(&catResponse).Error; err != nil {
				return err
			}
			for _, a := range answers {
				qr := ResponseModel.QuestionResponseModel{
					QuestionResponseCategoryResponseID: catResponse.CategoryResponseID,
					QuestionResponseQuestionID:         a.QuestionID,
					QuestionResponseValue:              a.Response,
				}
				if err := tx.Create(&qr).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return helper.FromFiberError(c, fiberErr)
		}
		log.Printf("[ERROR] Failed to store appraisal submission: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit appraisal")
	}

	if err := ctrl.preload(ctrl.DB).
		First(&appraisal, "student_appraisal_id = ?", appraisal.StudentAppraisalID).Error; err != nil {
		log.Printf("[ERROR] Failed to reload appraisal submission: %v", err)
	}
	return helper.JsonCreated(c, "Appraisal submitted successfully", ResponseDTO.ToStudentAppraisalDTO(appraisal))
}

func (ctrl *StudentAppraisalController) preload(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Student").
		Preload("Template").
		Preload("CategoryResponses").
		Preload("CategoryResponses.Category")
}

// =============================
// 📖 Reading
// =============================

// GetMyAppraisals lists the authenticated student's submissions.
func (ctrl *StudentAppraisalController) GetMyAppraisals(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var appraisals []ResponseModel.StudentAppraisalModel
	if err := ctrl.preload(ctrl.DB).
		Where("student_appraisal_student_id = ?", studentID).
		Order("student_appraisal_submitted_at DESC").
		Find(&appraisals).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch appraisals")
	}

	return helper.JsonOK(c, "Appraisals fetched successfully", ResponseDTO.ToStudentAppraisalDTOList(appraisals))
}

// GetAllAppraisals lists submissions for the counselor, optionally
// filtered by student.
func (ctrl *StudentAppraisalController) GetAllAppraisals(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := ctrl.preload(ctrl.DB).Model(&ResponseModel.StudentAppraisalModel{})
	if student := c.Query("student_id"); student != "" {
		studentID, err := uuid.Parse(student)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student_id")
		}
		query = query.Where("student_appraisal_student_id = ?", studentID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count appraisals")
	}

	var appraisals []ResponseModel.StudentAppraisalModel
	if err := query.
		Order("student_appraisal_submitted_at DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&appraisals).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch appraisals")
	}

	pagination := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Appraisals fetched successfully", ResponseDTO.ToStudentAppraisalDTOList(appraisals), &pagination)
}

// GetAppraisalEvaluation re-runs the pure criteria lookup against the
// stored category scores. Stored scores are never recomputed.
func (ctrl *StudentAppraisalController) GetAppraisalEvaluation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid appraisal ID")
	}

	var appraisal ResponseModel.StudentAppraisalModel
	if err := ctrl.preload(ctrl.DB).
		Preload("CategoryResponses.Category.Criteria").
		First(&appraisal, "student_appraisal_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Appraisal not found")
	}

	if helper.GetUserRole(c) == constants.RoleStudent {
		studentID, err := helper.GetUserIDFromToken(c)
		if err != nil || appraisal.StudentAppraisalStudentID != studentID {
			return helper.JsonError(c, fiber.StatusForbidden, "You can only view your own appraisals")
		}
	}

	out := ResponseDTO.ToStudentAppraisalDTO(appraisal)
	for i, cr := range appraisal.CategoryResponses {
		if cr.Category == nil || len(cr.Category.Criteria) == 0 {
			continue
		}
		bands := make([]scoring.Band, 0, len(cr.Category.Criteria))
		for _, crit := range cr.Category.Criteria {
			bands = append(bands, scoring.Band{
				Min:         crit.CriteriaMin,
				Max:         crit.CriteriaMax,
				Label:       crit.CriteriaLabel,
				Description: crit.CriteriaDescription,
				Suggestion:  crit.CriteriaSuggestion,
			})
		}
		band, err := scoring.MatchCriteria(bands, cr.CategoryResponseScore)
		if err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "No evaluation criteria covers this score")
		}
		out.Categories[i].Evaluation = &band
	}

	return helper.JsonOK(c, "Appraisal evaluation fetched successfully", out)
}
