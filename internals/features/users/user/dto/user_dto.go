package dto

import (
	"time"

	"github.com/google/uuid"

	"guidanceku_backend/internals/features/users/user/model"
)

// =============================
// 📤 Response DTO
// =============================
type UserDTO struct {
	ID         uuid.UUID `json:"id"`
	UserName   string    `json:"user_name"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	GradeLevel *string   `json:"grade_level,omitempty"`
	Section    *string   `json:"section,omitempty"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

// =============================
// 📥 Request DTO (Update)
// =============================
type UpdateUserRequest struct {
	UserName   *string `json:"user_name" validate:"omitempty,min=3,max=50"`
	FullName   *string `json:"full_name" validate:"omitempty,min=2,max=100"`
	Role       *string `json:"role" validate:"omitempty,oneof=student teacher counselor"`
	GradeLevel *string `json:"grade_level" validate:"omitempty,max=20"`
	Section    *string `json:"section" validate:"omitempty,max=50"`
	IsActive   *bool   `json:"is_active"`
}

// =============================
// 🔁 Converters
// =============================
func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		ID:         m.ID,
		UserName:   m.UserName,
		FullName:   m.FullName,
		Email:      m.Email,
		Role:       m.Role,
		GradeLevel: m.GradeLevel,
		Section:    m.Section,
		IsActive:   m.IsActive,
		CreatedAt:  m.CreatedAt,
	}
}

func ToUserDTOList(models []model.UserModel) []UserDTO {
	out := make([]UserDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToUserDTO(m))
	}
	return out
}
