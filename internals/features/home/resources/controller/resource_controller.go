package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	ResourceDTO "guidanceku_backend/internals/features/home/resources/dto"
	ResourceModel "guidanceku_backend/internals/features/home/resources/model"
	helper "guidanceku_backend/internals/helpers"
)

type ResourceController struct {
	DB *gorm.DB
}

func NewResourceController(db *gorm.DB) *ResourceController {
	return &ResourceController{DB: db}
}

var validate = validator.New()

// =============================
// ✏️ Authoring
// =============================

func (ctrl *ResourceController) CreateResource(c *fiber.Ctx) error {
	var req ResourceDTO.CreateResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	authorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	slug, err := helper.EnsureUniqueSlug(ctrl.DB, helper.GenerateSlug(req.Title), "resources", "resource_slug")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate slug")
	}

	resource := ResourceModel.ResourceModel{
		ResourceTitle:    req.Title,
		ResourceSlug:     slug,
		ResourceBody:     req.Body,
		ResourceImageURL: req.ImageURL,
		ResourceTags:     req.Tags,
		ResourceAuthorID: authorID,
	}

	if err := ctrl.DB.Create(&resource).Error; err != nil {
		log.Printf("[ERROR] Failed to create resource: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create resource")
	}

	return helper.JsonCreated(c, "Resource created successfully", ResourceDTO.ToResourceDTO(resource))
}

func (ctrl *ResourceController) UpdateResource(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid resource ID")
	}

	var req ResourceDTO.UpdateResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var resource ResourceModel.ResourceModel
	if err := ctrl.DB.First(&resource, "resource_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Resource not found")
	}

	updates := map[string]interface{}{}
	if req.Title != nil && *req.Title != resource.ResourceTitle {
		slug, err := helper.EnsureUniqueSlug(ctrl.DB, helper.GenerateSlug(*req.Title), "resources", "resource_slug")
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate slug")
		}
		updates["resource_title"] = *req.Title
		updates["resource_slug"] = slug
	}
	if req.Body != nil {
		updates["resource_body"] = *req.Body
	}
	if req.ImageURL != nil {
		updates["resource_image_url"] = *req.ImageURL
	}
	if req.Tags != nil {
		updates["resource_tags"] = pq.StringArray(*req.Tags)
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}

	if err := ctrl.DB.Model(&resource).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update resource")
	}

	return helper.JsonUpdated(c, "Resource updated successfully", ResourceDTO.ToResourceDTO(resource))
}

func (ctrl *ResourceController) DeleteResource(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid resource ID")
	}

	result := ctrl.DB.Delete(&ResourceModel.ResourceModel{}, "resource_id = ?", id)
	if result.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete resource")
	}
	if result.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Resource not found")
	}

	return helper.JsonDeleted(c, "Resource deleted successfully", nil)
}

// =============================
// 🌐 Public Reading
// =============================

func (ctrl *ResourceController) GetAllResources(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 12, 50)

	query := ctrl.DB.Model(&ResourceModel.ResourceModel{})
	if tag := c.Query("tag"); tag != "" {
		query = query.Where("? = ANY(resource_tags)", tag)
	}
	if q := c.Query("q"); q != "" {
		query = query.Where("resource_title ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count resources")
	}

	var resources []ResourceModel.ResourceModel
	if err := query.
		Order("resource_created_at DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&resources).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch resources")
	}

	pagination := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Resources fetched successfully", ResourceDTO.ToResourceSummaryDTOList(resources), &pagination)
}

func (ctrl *ResourceController) GetResourceBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var resource ResourceModel.ResourceModel
	if err := ctrl.DB.First(&resource, "resource_slug = ?", slug).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Resource not found")
	}

	return helper.JsonOK(c, "Resource fetched successfully", ResourceDTO.ToResourceDTO(resource))
}
