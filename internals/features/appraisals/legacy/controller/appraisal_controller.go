package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"guidanceku_backend/internals/constants"
	AppraisalDTO "guidanceku_backend/internals/features/appraisals/legacy/dto"
	AppraisalModel "guidanceku_backend/internals/features/appraisals/legacy/model"
	"guidanceku_backend/internals/features/appraisals/scoring"
	helper "guidanceku_backend/internals/helpers"
)

type AppraisalController struct {
	DB *gorm.DB
}

func NewAppraisalController(db *gorm.DB) *AppraisalController {
	return &AppraisalController{DB: db}
}

var validate = validator.New()

// =============================
// 📝 Submission
// =============================

// CreateAppraisal normalizes the three raw marks and stores the result.
// Overall is the mean of the three normalized scores.
func (ctrl *AppraisalController) CreateAppraisal(c *fiber.Ctx) error {
	var req AppraisalDTO.CreateAppraisalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	academic, err := scoring.NormalizeRaw(req.AcademicRaw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Academic mark must be between 0 and 100")
	}
	socio, err := scoring.NormalizeRaw(req.SocioEmotionalRaw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Socio-emotional mark must be between 0 and 100")
	}
	career, err := scoring.NormalizeRaw(req.CareerRaw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Career mark must be between 0 and 100")
	}

	appraisal := AppraisalModel.AppraisalModel{
		AppraisalStudentID:           req.StudentID,
		AppraisalAcademicRaw:         req.AcademicRaw,
		AppraisalSocioEmotionalRaw:   req.SocioEmotionalRaw,
		AppraisalCareerRaw:           req.CareerRaw,
		AppraisalAcademicScore:       academic,
		AppraisalSocioEmotionalScore: socio,
		AppraisalCareerScore:         career,
		AppraisalOverallScore:        (academic + socio + career) / 3,
	}

	if err := ctrl.DB.Create(&appraisal).Error; err != nil {
		log.Printf("[ERROR] Failed to create appraisal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create appraisal")
	}

	return helper.JsonCreated(c, "Appraisal created successfully", AppraisalDTO.ToAppraisalDTO(appraisal))
}

// =============================
// 📖 Reading
// =============================

func (ctrl *AppraisalController) GetAllAppraisals(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := ctrl.DB.Model(&AppraisalModel.AppraisalModel{}).Preload("Student")
	if student := c.Query("student_id"); student != "" {
		studentID, err := uuid.Parse(student)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student_id")
		}
		query = query.Where("appraisal_student_id = ?", studentID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count appraisals")
	}

	var appraisals []AppraisalModel.AppraisalModel
	if err := query.
		Order("appraisal_created_at DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&appraisals).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch appraisals")
	}

	pagination := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Appraisals fetched successfully", AppraisalDTO.ToAppraisalDTOList(appraisals), &pagination)
}

func (ctrl *AppraisalController) getOwnedAppraisal(c *fiber.Ctx) (*AppraisalModel.AppraisalModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid appraisal ID")
	}

	var appraisal AppraisalModel.AppraisalModel
	if err := ctrl.DB.Preload("Student").
		First(&appraisal, "appraisal_id = ?", id).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Appraisal not found")
	}

	if helper.GetUserRole(c) == constants.RoleStudent {
		studentID, err := helper.GetUserIDFromToken(c)
		if err != nil || appraisal.AppraisalStudentID != studentID {
			return nil, fiber.NewError(fiber.StatusForbidden, "You can only view your own appraisals")
		}
	}
	return &appraisal, nil
}

func (ctrl *AppraisalController) GetAppraisalByID(c *fiber.Ctx) error {
	appraisal, err := ctrl.getOwnedAppraisal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Appraisal fetched successfully", AppraisalDTO.ToAppraisalDTO(*appraisal))
}

// GetAppraisalEvaluation renders the three fixed domain bands for the
// stored normalized scores.
func (ctrl *AppraisalController) GetAppraisalEvaluation(c *fiber.Ctx) error {
	appraisal, err := ctrl.getOwnedAppraisal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	academic, err := scoring.Evaluate(scoring.DomainAcademic, appraisal.AppraisalAcademicScore)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "No evaluation band covers the academic score")
	}
	socio, err := scoring.Evaluate(scoring.DomainSocioEmotional, appraisal.AppraisalSocioEmotionalScore)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "No evaluation band covers the socio-emotional score")
	}
	career, err := scoring.Evaluate(scoring.DomainCareer, appraisal.AppraisalCareerScore)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "No evaluation band covers the career score")
	}

	return helper.JsonOK(c, "Appraisal evaluation fetched successfully", fiber.Map{
		"appraisal_id":    appraisal.AppraisalID,
		"academic":        academic,
		"socio_emotional": socio,
		"career":          career,
	})
}

// GetAppraisalOverall renders the 6-band overall rubric, including the
// "Not Yet Evaluated" zero band.
func (ctrl *AppraisalController) GetAppraisalOverall(c *fiber.Ctx) error {
	appraisal, err := ctrl.getOwnedAppraisal(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	band, err := scoring.OverallEvaluate(appraisal.AppraisalOverallScore)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "No evaluation band covers the overall score")
	}

	return helper.JsonOK(c, "Overall evaluation fetched successfully", fiber.Map{
		"appraisal_id":  appraisal.AppraisalID,
		"overall_score": appraisal.AppraisalOverallScore,
		"evaluation":    band,
	})
}

// =============================
// 🗑️ Delete
// =============================

func (ctrl *AppraisalController) DeleteAppraisal(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid appraisal ID")
	}

	result := ctrl.DB.Delete(&AppraisalModel.AppraisalModel{}, "appraisal_id = ?", id)
	if result.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete appraisal")
	}
	if result.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Appraisal not found")
	}

	return helper.JsonDeleted(c, "Appraisal deleted successfully", nil)
}
