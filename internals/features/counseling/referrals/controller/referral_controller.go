package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"guidanceku_backend/internals/configs"
	"guidanceku_backend/internals/constants"
	AppointmentModel "guidanceku_backend/internals/features/counseling/appointments/model"
	ReferralDTO "guidanceku_backend/internals/features/counseling/referrals/dto"
	ReferralModel "guidanceku_backend/internals/features/counseling/referrals/model"
	"guidanceku_backend/internals/features/counseling/schedule"
	NotificationModel "guidanceku_backend/internals/features/home/notifications/model"
	NotificationService "guidanceku_backend/internals/features/home/notifications/service"
	UserModel "guidanceku_backend/internals/features/users/user/model"
	helper "guidanceku_backend/internals/helpers"
)

type ReferralController struct {
	DB     *gorm.DB
	Policy schedule.Policy
}

func NewReferralController(db *gorm.DB) *ReferralController {
	return &ReferralController{
		DB:     db,
		Policy: schedule.NewPolicy(configs.SchoolTimezone),
	}
}

var validate = validator.New()

// =============================
// 🧑‍🏫 Teacher Side
// =============================

// CreateReferral records a teacher's referral of a student.
func (ctrl *ReferralController) CreateReferral(c *fiber.Ctx) error {
	var req ReferralDTO.CreateReferralRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var student UserModel.UserModel
	if err := ctrl.DB.
		Where("id = ? AND role = ?", req.StudentID, constants.RoleStudent).
		First(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	referral := ReferralModel.ReferralModel{
		ReferralTeacherID: teacherID,
		ReferralStudentID: req.StudentID,
		ReferralReason:    req.Reason,
		ReferralNotes:     req.Notes,
		ReferralStatus:    ReferralModel.StatusPending,
	}

	if err := ctrl.DB.Create(&referral).Error; err != nil {
		log.Printf("[ERROR] Failed to create referral: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create referral")
	}

	return helper.JsonCreated(c, "Referral created successfully", ReferralDTO.ToReferralDTO(referral))
}

// GetMyReferrals lists the referrals the authenticated teacher made.
func (ctrl *ReferralController) GetMyReferrals(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var referrals []ReferralModel.ReferralModel
	if err := ctrl.DB.
		Preload("Student").
		Where("referral_teacher_id = ?", teacherID).
		Order("referral_created_at DESC").
		Find(&referrals).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch referrals")
	}

	return helper.JsonOK(c, "Referrals fetched successfully", ReferralDTO.ToReferralDTOList(referrals))
}

// =============================
// 🧑‍💼 Counselor Side
// =============================

// GetAllReferrals lists referrals with an optional status filter.
func (ctrl *ReferralController) GetAllReferrals(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := ctrl.DB.Model(&ReferralModel.ReferralModel{}).
		Preload("Teacher").
		Preload("Student")

	if status := c.Query("status"); status != "" {
		query = query.Where("referral_status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count referrals")
	}

	var referrals []ReferralModel.ReferralModel
	if err := query.
		Order("referral_created_at DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&referrals).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch referrals")
	}

	pagination := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Referrals fetched successfully", ReferralDTO.ToReferralDTOList(referrals), &pagination)
}

// ScheduleReferral books a confirmed appointment for the referred
// student and links it back to the referral.
func (ctrl *ReferralController) ScheduleReferral(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid referral ID")
	}

	var req ReferralDTO.ScheduleReferralRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var referral ReferralModel.ReferralModel
	if err := ctrl.DB.First(&referral, "referral_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Referral not found")
	}
	if referral.ReferralStatus != ReferralModel.StatusPending {
		return helper.JsonError(c, fiber.StatusConflict, "Only pending referrals can be scheduled")
	}

	if err := ctrl.Policy.ValidateSlot(req.DateTime); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "The chosen time is not a bookable slot")
	}

	counselorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	appointment := AppointmentModel.AppointmentModel{
		AppointmentStudentID:   referral.ReferralStudentID,
		AppointmentCounselorID: counselorID,
		AppointmentDateTime:    req.DateTime,
		AppointmentType:        AppointmentModel.TypeReferral,
		AppointmentStatus:      AppointmentModel.StatusConfirmed,
		AppointmentReason:      referral.ReferralReason,
		AppointmentNotes:       req.Notes,
		AppointmentReferralID:  &referral.ReferralID,
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&AppointmentModel.AppointmentModel{}).
			Where("appointment_date_time = ?", req.DateTime).
			Where("appointment_status <> ?", AppointmentModel.StatusCancelled).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return gorm.ErrDuplicatedKey
		}
		if err := tx.Create(&appointment).Error; err != nil {
			return err
		}
		return tx.Model(&referral).Updates(map[string]interface{}{
			"referral_status":         ReferralModel.StatusConfirmed,
			"referral_counselor_id":   counselorID,
			"referral_appointment_id": appointment.AppointmentID,
		}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "The selected slot is already taken")
		}
		log.Printf("[ERROR] Failed to schedule referral %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to schedule referral")
	}

	// Both the student and the referring teacher hear about the session
	NotificationService.Notify(ctrl.DB, referral.ReferralStudentID,
		"Counseling session scheduled",
		"A counseling session has been scheduled for you on "+req.DateTime.Format("2006-01-02 15:04"),
		NotificationModel.TypeReferral,
		[]string{"referral", "scheduled"},
		map[string]interface{}{"appointment_id": appointment.AppointmentID},
	)
	NotificationService.Notify(ctrl.DB, referral.ReferralTeacherID,
		"Referral scheduled",
		"Your referral has been scheduled for "+req.DateTime.Format("2006-01-02 15:04"),
		NotificationModel.TypeReferral,
		[]string{"referral", "scheduled"},
		map[string]interface{}{"referral_id": referral.ReferralID},
	)

	return helper.JsonUpdated(c, "Referral scheduled successfully", fiber.Map{
		"referral_id":    referral.ReferralID,
		"appointment_id": appointment.AppointmentID,
	})
}

// RejectReferral marks a pending referral as rejected and notifies the
// referring teacher.
func (ctrl *ReferralController) RejectReferral(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid referral ID")
	}

	var referral ReferralModel.ReferralModel
	if err := ctrl.DB.First(&referral, "referral_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Referral not found")
	}
	if referral.ReferralStatus != ReferralModel.StatusPending {
		return helper.JsonError(c, fiber.StatusConflict, "Only pending referrals can be rejected")
	}

	counselorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	if err := ctrl.DB.Model(&referral).Updates(map[string]interface{}{
		"referral_status":       ReferralModel.StatusRejected,
		"referral_counselor_id": counselorID,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reject referral")
	}

	NotificationService.Notify(ctrl.DB, referral.ReferralTeacherID,
		"Referral declined",
		"Your referral was reviewed and declined by the counselor",
		NotificationModel.TypeReferral,
		[]string{"referral", "rejected"},
		map[string]interface{}{"referral_id": referral.ReferralID},
	)

	return helper.JsonUpdated(c, "Referral rejected successfully", ReferralDTO.ToReferralDTO(referral))
}
