package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"guidanceku_backend/internals/configs"
	AppointmentModel "guidanceku_backend/internals/features/counseling/appointments/model"
	RequestDTO "guidanceku_backend/internals/features/counseling/requests/dto"
	RequestModel "guidanceku_backend/internals/features/counseling/requests/model"
	"guidanceku_backend/internals/features/counseling/schedule"
	NotificationModel "guidanceku_backend/internals/features/home/notifications/model"
	NotificationService "guidanceku_backend/internals/features/home/notifications/service"
	helper "guidanceku_backend/internals/helpers"
)

type AppointmentRequestController struct {
	DB     *gorm.DB
	Policy schedule.Policy
}

func NewAppointmentRequestController(db *gorm.DB) *AppointmentRequestController {
	return &AppointmentRequestController{
		DB:     db,
		Policy: schedule.NewPolicy(configs.SchoolTimezone),
	}
}

var validate = validator.New()

// =============================
// 📥 Student Side
// =============================

// CreateRequest records a student's ask for a session. The preferred
// time is advisory, so it is not validated against the slot policy.
func (ctrl *AppointmentRequestController) CreateRequest(c *fiber.Ctx) error {
	var req RequestDTO.CreateAppointmentRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	urgency := req.Urgency
	if urgency == "" {
		urgency = RequestModel.UrgencyNormal
	}
	reqType := req.Type
	if reqType == "" {
		reqType = AppointmentModel.TypeSelfAppoint
	}

	request := RequestModel.AppointmentRequestModel{
		RequestStudentID:     userID,
		RequestPreferredTime: req.PreferredTime,
		RequestReason:        req.Reason,
		RequestUrgency:       urgency,
		RequestType:          reqType,
		RequestNotes:         req.Notes,
	}

	if err := ctrl.DB.Create(&request).Error; err != nil {
		log.Printf("[ERROR] Failed to create appointment request: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create appointment request")
	}

	return helper.JsonCreated(c, "Appointment request submitted successfully", RequestDTO.ToAppointmentRequestDTO(request))
}

// GetMyRequests lists the authenticated student's open requests.
func (ctrl *AppointmentRequestController) GetMyRequests(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var requests []RequestModel.AppointmentRequestModel
	if err := ctrl.DB.
		Where("request_student_id = ?", userID).
		Order("request_created_at DESC").
		Find(&requests).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch appointment requests")
	}

	return helper.JsonOK(c, "Appointment requests fetched successfully", RequestDTO.ToAppointmentRequestDTOList(requests))
}

// =============================
// 📋 Counselor Side
// =============================

// GetAllRequests lists every open request, most urgent first.
func (ctrl *AppointmentRequestController) GetAllRequests(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := ctrl.DB.Model(&RequestModel.AppointmentRequestModel{}).Preload("Student")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count appointment requests")
	}

	var requests []RequestModel.AppointmentRequestModel
	if err := query.
		Order("CASE request_urgency WHEN 'high' THEN 0 WHEN 'normal' THEN 1 ELSE 2 END, request_created_at DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&requests).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch appointment requests")
	}

	pagination := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Appointment requests fetched successfully", RequestDTO.ToAppointmentRequestDTOList(requests), &pagination)
}

// AcceptRequest turns a request into a pending appointment and removes
// the request row, all inside one transaction.
func (ctrl *AppointmentRequestController) AcceptRequest(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request ID")
	}

	var req RequestDTO.AcceptAppointmentRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var request RequestModel.AppointmentRequestModel
	if err := ctrl.DB.First(&request, "request_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Appointment request not found")
	}

	dateTime := request.RequestPreferredTime
	if req.DateTime != nil {
		dateTime = *req.DateTime
	}

	if err := ctrl.Policy.ValidateSlot(dateTime); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "The chosen time is not a bookable slot")
	}

	counselorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	notes := req.Notes
	if notes == "" {
		notes = request.RequestNotes
	}

	appointment := AppointmentModel.AppointmentModel{
		AppointmentStudentID:   request.RequestStudentID,
		AppointmentCounselorID: counselorID,
		AppointmentDateTime:    dateTime,
		AppointmentType:        request.RequestType,
		AppointmentStatus:      AppointmentModel.StatusPending,
		AppointmentReason:      request.RequestReason,
		AppointmentNotes:       notes,
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&AppointmentModel.AppointmentModel{}).
			Where("appointment_date_time = ?", dateTime).
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
		return tx.Delete(&request).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "The selected slot is already taken")
		}
		log.Printf("[ERROR] Failed to accept appointment request %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to accept appointment request")
	}

	NotificationService.Notify(ctrl.DB, request.RequestStudentID,
		"Appointment request accepted",
		"Your request has been accepted for "+dateTime.Format("2006-01-02 15:04"),
		NotificationModel.TypeAppointment,
		[]string{"appointment", "request", "accepted"},
		map[string]interface{}{"appointment_id": appointment.AppointmentID},
	)

	return helper.JsonCreated(c, "Appointment request accepted successfully", fiber.Map{
		"appointment_id": appointment.AppointmentID,
	})
}

// RejectRequest drops the request and tells the student.
func (ctrl *AppointmentRequestController) RejectRequest(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request ID")
	}

	var request RequestModel.AppointmentRequestModel
	if err := ctrl.DB.First(&request, "request_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Appointment request not found")
	}

	if err := ctrl.DB.Delete(&request).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reject appointment request")
	}

	NotificationService.Notify(ctrl.DB, request.RequestStudentID,
		"Appointment request declined",
		"Your appointment request could not be accommodated, please submit a new one",
		NotificationModel.TypeAppointment,
		[]string{"appointment", "request", "rejected"},
		nil,
	)

	return helper.JsonDeleted(c, "Appointment request rejected successfully", nil)
}
