package dto

import (
	"time"

	"github.com/google/uuid"

	"guidanceku_backend/internals/features/home/resources/model"
)

// =============================
// 📤 Response DTO
// =============================
type ResourceDTO struct {
	ResourceID uuid.UUID `json:"resource_id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Body       string    `json:"body,omitempty"`
	ImageURL   string    `json:"image_url,omitempty"`
	Tags       []string  `json:"tags,omitempty"`
	AuthorID   uuid.UUID `json:"author_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// =============================
// 📥 Request DTOs
// =============================
type CreateResourceRequest struct {
	Title    string   `json:"title" validate:"required,min=3,max=255"`
	Body     string   `json:"body" validate:"required"`
	ImageURL string   `json:"image_url"`
	Tags     []string `json:"tags"`
}

type UpdateResourceRequest struct {
	Title    *string   `json:"title" validate:"omitempty,min=3,max=255"`
	Body     *string   `json:"body"`
	ImageURL *string   `json:"image_url"`
	Tags     *[]string `json:"tags"`
}

// =============================
// 🔁 Converters
// =============================
func ToResourceDTO(m model.ResourceModel) ResourceDTO {
	return ResourceDTO{
		ResourceID: m.ResourceID,
		Title:      m.ResourceTitle,
		Slug:       m.ResourceSlug,
		Body:       m.ResourceBody,
		ImageURL:   m.ResourceImageURL,
		Tags:       m.ResourceTags,
		AuthorID:   m.ResourceAuthorID,
		CreatedAt:  m.ResourceCreatedAt,
		UpdatedAt:  m.ResourceUpdatedAt,
	}
}

// ToResourceSummaryDTO omits the body for listings.
func ToResourceSummaryDTO(m model.ResourceModel) ResourceDTO {
	out := ToResourceDTO(m)
	out.Body = ""
	return out
}

func ToResourceSummaryDTOList(models []model.ResourceModel) []ResourceDTO {
	out := make([]ResourceDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToResourceSummaryDTO(m))
	}
	return out
}
