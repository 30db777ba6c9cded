package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AppointmentModel "guidanceku_backend/internals/features/counseling/appointments/model"
	helper "guidanceku_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

type countRow struct {
	Key   string `gorm:"column:key"`
	Count int64  `gorm:"column:count"`
}

// parseRange reads optional ?from= and ?to= RFC3339 bounds.
func parseRange(c *fiber.Ctx) (from, to *time.Time, err error) {
	if raw := c.Query("from"); raw != "" {
		t, perr := time.Parse(time.RFC3339, raw)
		if perr != nil {
			return nil, nil, perr
		}
		from = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, perr := time.Parse(time.RFC3339, raw)
		if perr != nil {
			return nil, nil, perr
		}
		to = &t
	}
	return from, to, nil
}

// =============================
// 📊 Appointment Report
// =============================

// GetAppointmentReport counts appointments grouped by status and by
// type over an optional date range.
func (ctrl *ReportController) GetAppointmentReport(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date range, expected RFC3339")
	}

	base := ctrl.DB.Model(&AppointmentModel.AppointmentModel{})
	if from != nil {
		base = base.Where("appointment_date_time >= ?", *from)
	}
	if to != nil {
		base = base.Where("appointment_date_time <= ?", *to)
	}

	var byStatus []countRow
	if err := base.Session(&gorm.Session{}).
		Select("appointment_status AS key, COUNT(*) AS count").
		Group("appointment_status").
		Scan(&byStatus).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build appointment report")
	}

	var byType []countRow
	if err := base.Session(&gorm.Session{}).
		Select("appointment_type AS key, COUNT(*) AS count").
		Group("appointment_type").
		Scan(&byType).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build appointment report")
	}

	statusCounts := fiber.Map{}
	var total int64
	for _, row := range byStatus {
		statusCounts[row.Key] = row.Count
		total += row.Count
	}
	typeCounts := fiber.Map{}
	for _, row := range byType {
		typeCounts[row.Key] = row.Count
	}

	return helper.JsonOK(c, "Appointment report generated successfully", fiber.Map{
		"total":     total,
		"by_status": statusCounts,
		"by_type":   typeCounts,
	})
}

// =============================
// 📊 Appraisal Report
// =============================

// GetAppraisalReport summarizes participation and the average score per
// appraisal domain.
func (ctrl *ReportController) GetAppraisalReport(c *fiber.Ctx) error {
	var participation struct {
		Appraisals int64 `gorm:"column:appraisals"`
		Students   int64 `gorm:"column:students"`
	}
	if err := ctrl.DB.Raw(`
		SELECT COUNT(*) AS appraisals,
		       COUNT(DISTINCT appraisal_student_id) AS students
		FROM appraisals`).Scan(&participation).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build appraisal report")
	}

	var averages struct {
		Academic       *float64 `gorm:"column:academic"`
		SocioEmotional *float64 `gorm:"column:socio_emotional"`
		Career         *float64 `gorm:"column:career"`
		Overall        *float64 `gorm:"column:overall"`
	}
	if err := ctrl.DB.Raw(`
		SELECT AVG(appraisal_academic_score)        AS academic,
		       AVG(appraisal_socio_emotional_score) AS socio_emotional,
		       AVG(appraisal_career_score)          AS career,
		       AVG(appraisal_overall_score)         AS overall
		FROM appraisals`).Scan(&averages).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build appraisal report")
	}

	var submissions int64
	if err := ctrl.DB.Table("student_appraisals").Count(&submissions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build appraisal report")
	}

	return helper.JsonOK(c, "Appraisal report generated successfully", fiber.Map{
		"participation": fiber.Map{
			"appraisals":           participation.Appraisals,
			"students":             participation.Students,
			"template_submissions": submissions,
		},
		"average_scores": fiber.Map{
			"academic":        averages.Academic,
			"socio_emotional": averages.SocioEmotional,
			"career":          averages.Career,
			"overall":         averages.Overall,
		},
	})
}
