package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"guidanceku_backend/internals/features/users/user/dto"
	"guidanceku_backend/internals/features/users/user/model"
	helper "guidanceku_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var validate = validator.New()

// =============================
// 📄 Get All Users (counselor)
// GET /api/a/users?role=&q=&page=&per_page=
// =============================
func (ctrl *UserController) GetAllUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.UserModel{})
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("role = ?", role)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("lower(user_name) LIKE ? OR lower(full_name) LIKE ? OR lower(email) LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count users: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var users []model.UserModel
	if err := q.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&users).Error; err != nil {
		log.Printf("[ERROR] list users: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	return helper.JsonList(c, "", dto.ToUserDTOList(users),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =============================
// 🔍 Get User by ID (counselor)
// =============================
func (ctrl *UserController) GetUserByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonOK(c, "", dto.ToUserDTO(user))
}

// =============================
// ✏️ Update User (counselor)
// =============================
func (ctrl *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	updates := map[string]any{}
	if req.UserName != nil {
		updates["user_name"] = *req.UserName
	}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.GradeLevel != nil {
		updates["grade_level"] = *req.GradeLevel
	}
	if req.Section != nil {
		updates["section"] = *req.Section
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}

	if err := ctrl.DB.Model(&user).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update user %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}

	return helper.JsonUpdated(c, "User updated", dto.ToUserDTO(user))
}

// =============================
// ❌ Delete User (counselor)
// Cascades over counseling records owned by the user.
// =============================
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var user model.UserModel
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}

		// appraisal responses hang off the user's submissions
		if err := tx.Exec(`
			DELETE FROM appraisal_question_responses
			WHERE question_response_category_response_id IN (
				SELECT category_response_id FROM appraisal_category_responses
				WHERE category_response_appraisal_id IN (
					SELECT student_appraisal_id FROM student_appraisals
					WHERE student_appraisal_student_id = ?
				)
			)`, id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete user records")
		}
		if err := tx.Exec(`
			DELETE FROM appraisal_category_responses
			WHERE category_response_appraisal_id IN (
				SELECT student_appraisal_id FROM student_appraisals
				WHERE student_appraisal_student_id = ?
			)`, id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete user records")
		}

		// counseling records referencing the user
		tables := []struct{ table, column string }{
			{"appointments", "appointment_student_id"},
			{"appointment_requests", "request_student_id"},
			{"referrals", "referral_student_id"},
			{"referrals", "referral_teacher_id"},
			{"student_appraisals", "student_appraisal_student_id"},
			{"appraisals", "appraisal_student_id"},
			{"notifications", "notification_user_id"},
		}
		for _, t := range tables {
			if err := tx.Exec("DELETE FROM "+t.table+" WHERE "+t.column+" = ?", id).Error; err != nil {
				log.Printf("[ERROR] cascade delete %s: %v", t.table, err)
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete user records")
			}
		}

		if err := tx.Delete(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete user")
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonDeleted(c, "User deleted", fiber.Map{"id": id})
}
