package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"guidanceku_backend/internals/configs"
	"guidanceku_backend/internals/constants"
	AppointmentDTO "guidanceku_backend/internals/features/counseling/appointments/dto"
	AppointmentModel "guidanceku_backend/internals/features/counseling/appointments/model"
	"guidanceku_backend/internals/features/counseling/schedule"
	NotificationModel "guidanceku_backend/internals/features/home/notifications/model"
	NotificationService "guidanceku_backend/internals/features/home/notifications/service"
	UserModel "guidanceku_backend/internals/features/users/user/model"
	helper "guidanceku_backend/internals/helpers"
)

type AppointmentController struct {
	DB     *gorm.DB
	Policy schedule.Policy
}

func NewAppointmentController(db *gorm.DB) *AppointmentController {
	return &AppointmentController{
		DB:     db,
		Policy: schedule.NewPolicy(configs.SchoolTimezone),
	}
}

var validate = validator.New()

// =============================
// 🧩 Slot Helpers
// =============================

// slotErrorMessage maps schedule policy errors to client-facing messages.
func slotErrorMessage(err error) string {
	switch {
	case errors.Is(err, schedule.ErrNotOnHour):
		return "Appointments must start exactly on the hour"
	case errors.Is(err, schedule.ErrWeekend):
		return "Appointments are only available Monday through Friday"
	case errors.Is(err, schedule.ErrOutsideWorkingHours):
		return "Appointments are only available 08:00-11:00, 13:00-18:00 and 20:00"
	default:
		return "Invalid appointment time"
	}
}

// slotTaken reports whether another non-cancelled appointment already
// occupies the slot. excludeID skips the appointment being rescheduled.
func (ctrl *AppointmentController) slotTaken(dateTime time.Time, excludeID *uuid.UUID) (bool, error) {
	query := ctrl.DB.Model(&AppointmentModel.AppointmentModel{}).
		Where("appointment_date_time = ?", dateTime).
		Where("appointment_status <> ?", AppointmentModel.StatusCancelled)
	if excludeID != nil {
		query = query.Where("appointment_id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// findCounselor returns the active counselor appointments are assigned to.
func (ctrl *AppointmentController) findCounselor() (*UserModel.UserModel, error) {
	var counselor UserModel.UserModel
	err := ctrl.DB.
		Where("role = ? AND is_active = ?", constants.RoleCounselor, true).
		Order("created_at ASC").
		First(&counselor).Error
	if err != nil {
		return nil, err
	}
	return &counselor, nil
}

// =============================
// 📅 Booking
// =============================

// CreateAppointment books a slot. Students book for themselves, the
// counselor may book on behalf of a student.
func (ctrl *AppointmentController) CreateAppointment(c *fiber.Ctx) error {
	var req AppointmentDTO.CreateAppointmentRequest
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
	role := helper.GetUserRole(c)

	studentID := userID
	if role == constants.RoleCounselor {
		if req.StudentID == nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id is required")
		}
		studentID = *req.StudentID
	}

	// 🕗 Slot policy runs before any database work
	if err := ctrl.Policy.ValidateSlot(req.DateTime); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, slotErrorMessage(err))
	}

	// Fast-path conflict check; the partial unique index is the
	// authoritative guard against concurrent bookings.
	taken, err := ctrl.slotTaken(req.DateTime, nil)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check slot availability")
	}
	if taken {
		return helper.JsonError(c, fiber.StatusConflict, "The selected slot is already taken")
	}

	counselor, err := ctrl.findCounselor()
	if err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "No counselor is available")
	}

	appointment := AppointmentModel.AppointmentModel{
		AppointmentStudentID:   studentID,
		AppointmentCounselorID: counselor.ID,
		AppointmentDateTime:    req.DateTime,
		AppointmentType:        req.Type,
		AppointmentStatus:      AppointmentModel.StatusPending,
		AppointmentReason:      req.Reason,
		AppointmentNotes:       req.Notes,
		AppointmentReferralID:  req.ReferralID,
	}

	if err := ctrl.DB.Create(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "The selected slot is already taken")
		}
		log.Printf("[ERROR] Failed to create appointment: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create appointment")
	}

	NotificationService.Notify(ctrl.DB, counselor.ID,
		"New appointment request",
		"A new appointment is waiting for confirmation",
		NotificationModel.TypeAppointment,
		[]string{"appointment", "pending"},
		map[string]interface{}{"appointment_id": appointment.AppointmentID},
	)

	if err := ctrl.preload(&appointment); err != nil {
		log.Printf("[ERROR] Failed to preload appointment relations: %v", err)
	}
	return helper.JsonCreated(c, "Appointment created successfully", AppointmentDTO.ToAppointmentDTO(appointment))
}

func (ctrl *AppointmentController) preload(appointment *AppointmentModel.AppointmentModel) error {
	return ctrl.DB.
		Preload("Student").
		Preload("Counselor").
		First(appointment, "appointment_id = ?", appointment.AppointmentID).Error
}

// =============================
// 📄 Listing & Detail
// =============================

// GetAllAppointments lists appointments with optional status, student,
// and date range filters (counselor view).
func (ctrl *AppointmentController) GetAllAppointments(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := ctrl.DB.Model(&AppointmentModel.AppointmentModel{}).
		Preload("Student").
		Preload("Counselor")

	if status := c.Query("status"); status != "" {
		query = query.Where("appointment_status = ?", status)
	}
	if student := c.Query("student_id"); student != "" {
		studentID, err := uuid.Parse(student)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student_id")
		}
		query = query.Where("appointment_student_id = ?", studentID)
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid from date, expected RFC3339")
		}
		query = query.Where("appointment_date_time >= ?", t)
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid to date, expected RFC3339")
		}
		query = query.Where("appointment_date_time <= ?", t)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count appointments")
	}

	var appointments []AppointmentModel.AppointmentModel
	if err := query.
		Order("appointment_date_time DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&appointments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch appointments")
	}

	pagination := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Appointments fetched successfully", AppointmentDTO.ToAppointmentDTOList(appointments), &pagination)
}

// GetMyAppointments lists the authenticated student's own appointments.
func (ctrl *AppointmentController) GetMyAppointments(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	query := ctrl.DB.Model(&AppointmentModel.AppointmentModel{}).
		Preload("Counselor").
		Where("appointment_student_id = ?", userID)

	if status := c.Query("status"); status != "" {
		query = query.Where("appointment_status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count appointments")
	}

	var appointments []AppointmentModel.AppointmentModel
	if err := query.
		Order("appointment_date_time DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&appointments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch appointments")
	}

	pagination := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Appointments fetched successfully", AppointmentDTO.ToAppointmentDTOList(appointments), &pagination)
}

// GetAppointmentByID returns a single appointment. Students may only
// view their own.
func (ctrl *AppointmentController) GetAppointmentByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid appointment ID")
	}

	var appointment AppointmentModel.AppointmentModel
	if err := ctrl.DB.
		Preload("Student").
		Preload("Counselor").
		First(&appointment, "appointment_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Appointment not found")
	}

	if helper.GetUserRole(c) == constants.RoleStudent {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil || appointment.AppointmentStudentID != userID {
			return helper.JsonError(c, fiber.StatusForbidden, "You can only view your own appointments")
		}
	}

	return helper.JsonOK(c, "Appointment fetched successfully", AppointmentDTO.ToAppointmentDTO(appointment))
}

// =============================
// 🔁 Status Transitions
// =============================

// ConfirmAppointment moves a pending appointment to confirmed and
// notifies the student.
func (ctrl *AppointmentController) ConfirmAppointment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid appointment ID")
	}

	var appointment AppointmentModel.AppointmentModel
	if err := ctrl.DB.First(&appointment, "appointment_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Appointment not found")
	}
	if appointment.AppointmentStatus != AppointmentModel.StatusPending {
		return helper.JsonError(c, fiber.StatusConflict, "Only pending appointments can be confirmed")
	}

	if err := ctrl.DB.Model(&appointment).
		Update("appointment_status", AppointmentModel.StatusConfirmed).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to confirm appointment")
	}

	NotificationService.Notify(ctrl.DB, appointment.AppointmentStudentID,
		"Appointment confirmed",
		"Your appointment on "+appointment.AppointmentDateTime.Format("2006-01-02 15:04")+" has been confirmed",
		NotificationModel.TypeAppointment,
		[]string{"appointment", "confirmed"},
		map[string]interface{}{"appointment_id": appointment.AppointmentID},
	)

	if err := ctrl.preload(&appointment); err != nil {
		log.Printf("[ERROR] Failed to preload appointment relations: %v", err)
	}
	return helper.JsonUpdated(c, "Appointment confirmed successfully", AppointmentDTO.ToAppointmentDTO(appointment))
}

// RescheduleAppointment moves an appointment to a new slot. The same
// slot rules apply; the appointment's own row is excluded from the
// conflict check.
func (ctrl *AppointmentController) RescheduleAppointment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid appointment ID")
	}

	var req AppointmentDTO.RescheduleAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var appointment AppointmentModel.AppointmentModel
	if err := ctrl.DB.First(&appointment, "appointment_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Appointment not found")
	}

	if helper.GetUserRole(c) == constants.RoleStudent {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil || appointment.AppointmentStudentID != userID {
			return helper.JsonError(c, fiber.StatusForbidden, "You can only reschedule your own appointments")
		}
	}

	if appointment.AppointmentStatus == AppointmentModel.StatusCancelled ||
		appointment.AppointmentStatus == AppointmentModel.StatusClosed {
		return helper.JsonError(c, fiber.StatusConflict, "Cancelled or closed appointments cannot be rescheduled")
	}

	if err := ctrl.Policy.ValidateSlot(req.DateTime); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, slotErrorMessage(err))
	}

	taken, err := ctrl.slotTaken(req.DateTime, &appointment.AppointmentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check slot availability")
	}
	if taken {
		return helper.JsonError(c, fiber.StatusConflict, "The selected slot is already taken")
	}

	updates := map[string]interface{}{
		"appointment_date_time": req.DateTime,
	}
	if req.Notes != nil {
		updates["appointment_notes"] = *req.Notes
	}

	if err := ctrl.DB.Model(&appointment).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "The selected slot is already taken")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reschedule appointment")
	}

	NotificationService.Notify(ctrl.DB, appointment.AppointmentStudentID,
		"Appointment rescheduled",
		"Your appointment has been moved to "+req.DateTime.Format("2006-01-02 15:04"),
		NotificationModel.TypeAppointment,
		[]string{"appointment", "rescheduled"},
		map[string]interface{}{"appointment_id": appointment.AppointmentID},
	)

	if err := ctrl.preload(&appointment); err != nil {
		log.Printf("[ERROR] Failed to preload appointment relations: %v", err)
	}
	return helper.JsonUpdated(c, "Appointment rescheduled successfully", AppointmentDTO.ToAppointmentDTO(appointment))
}

// CancelAppointment lets the owning student cancel while still pending.
// The counselor may cancel any non-closed appointment.
func (ctrl *AppointmentController) CancelAppointment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid appointment ID")
	}

	var appointment AppointmentModel.AppointmentModel
	if err := ctrl.DB.First(&appointment, "appointment_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Appointment not found")
	}

	role := helper.GetUserRole(c)
	if role == constants.RoleStudent {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil || appointment.AppointmentStudentID != userID {
			return helper.JsonError(c, fiber.StatusForbidden, "You can only cancel your own appointments")
		}
		if appointment.AppointmentStatus != AppointmentModel.StatusPending {
			return helper.JsonError(c, fiber.StatusConflict, "Only pending appointments can be cancelled")
		}
	} else if appointment.AppointmentStatus == AppointmentModel.StatusClosed {
		return helper.JsonError(c, fiber.StatusConflict, "Closed appointments cannot be cancelled")
	}

	if err := ctrl.DB.Model(&appointment).
		Update("appointment_status", AppointmentModel.StatusCancelled).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to cancel appointment")
	}

	if role != constants.RoleStudent {
		NotificationService.Notify(ctrl.DB, appointment.AppointmentStudentID,
			"Appointment cancelled",
			"Your appointment on "+appointment.AppointmentDateTime.Format("2006-01-02 15:04")+" has been cancelled",
			NotificationModel.TypeAppointment,
			[]string{"appointment", "cancelled"},
			map[string]interface{}{"appointment_id": appointment.AppointmentID},
		)
	}

	return helper.JsonUpdated(c, "Appointment cancelled successfully", nil)
}

// CloseAppointment marks a confirmed appointment as done.
func (ctrl *AppointmentController) CloseAppointment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid appointment ID")
	}

	var appointment AppointmentModel.AppointmentModel
	if err := ctrl.DB.First(&appointment, "appointment_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Appointment not found")
	}
	if appointment.AppointmentStatus == AppointmentModel.StatusCancelled ||
		appointment.AppointmentStatus == AppointmentModel.StatusClosed {
		return helper.JsonError(c, fiber.StatusConflict, "Appointment is already cancelled or closed")
	}

	if err := ctrl.DB.Model(&appointment).
		Update("appointment_status", AppointmentModel.StatusClosed).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to close appointment")
	}

	return helper.JsonUpdated(c, "Appointment closed successfully", nil)
}

// CloseStaleAppointments closes every pending appointment whose slot is
// more than an hour in the past. Triggered by the counselor dashboard.
func (ctrl *AppointmentController) CloseStaleAppointments(c *fiber.Ctx) error {
	now := time.Now()
	cutoff := schedule.StaleCutoff(now)

	result := ctrl.DB.Model(&AppointmentModel.AppointmentModel{}).
		Where("appointment_status = ?", AppointmentModel.StatusPending).
		Where("appointment_date_time <= ?", cutoff).
		Update("appointment_status", AppointmentModel.StatusClosed)
	if result.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to close stale appointments")
	}

	log.Printf("[INFO] Closed %d stale appointments (cutoff %s)", result.RowsAffected, cutoff.Format(time.RFC3339))
	return helper.JsonOK(c, "Stale appointments closed successfully", fiber.Map{
		"closed": result.RowsAffected,
	})
}

// =============================
// 🗑️ Delete
// =============================

func (ctrl *AppointmentController) DeleteAppointment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid appointment ID")
	}

	var appointment AppointmentModel.AppointmentModel
	if err := ctrl.DB.First(&appointment, "appointment_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Appointment not found")
	}

	if err := ctrl.DB.Delete(&appointment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete appointment")
	}

	return helper.JsonDeleted(c, "Appointment deleted successfully", nil)
}
