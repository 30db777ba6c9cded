package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	TemplateDTO "guidanceku_backend/internals/features/appraisals/templates/dto"
	TemplateModel "guidanceku_backend/internals/features/appraisals/templates/model"
	helper "guidanceku_backend/internals/helpers"
)

type TemplateController struct {
	DB *gorm.DB
}

func NewTemplateController(db *gorm.DB) *TemplateController {
	return &TemplateController{DB: db}
}

var validate = validator.New()

// preloadNested loads the full template tree in display order.
func (ctrl *TemplateController) preloadNested(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("category_order ASC")
		}).
		Preload("Categories.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_order ASC")
		}).
		Preload("Categories.Criteria", func(db *gorm.DB) *gorm.DB {
			return db.Order("criteria_min ASC")
		})
}

// =============================
// ✏️ Authoring
// =============================

// CreateTemplate stores a template with its nested categories,
// questions and criteria in one transaction.
func (ctrl *TemplateController) CreateTemplate(c *fiber.Ctx) error {
	var req TemplateDTO.CreateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	template := TemplateModel.TemplateModel{
		TemplateTitle:       req.Title,
		TemplateDescription: req.Description,
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&template).Error; err != nil {
			return err
		}
		for i, cat := range req.Categories {
			order := cat.Order
			if order == 0 {
				order = i + 1
			}
			category := TemplateModel.CategoryModel{
				CategoryTemplateID:  template.TemplateID,
				CategoryName:        cat.Name,
				CategoryDescription: cat.Description,
				CategoryOrder:       order,
			}
			if err := tx.Create(&category).Error; err != nil {
				return err
			}
			for j, q := range cat.Questions {
				qOrder := q.Order
				if qOrder == 0 {
					qOrder = j + 1
				}
				question := TemplateModel.QuestionModel{
					QuestionCategoryID: category.CategoryID,
					QuestionText:       q.Text,
					QuestionOrder:      qOrder,
				}
				if err := tx.Create(&question).Error; err != nil {
					return err
				}
			}
			for _, cr := range cat.Criteria {
				criteria := TemplateModel.EvaluationCriteriaModel{
					CriteriaCategoryID:  category.CategoryID,
					CriteriaMin:         cr.Min,
					CriteriaMax:         cr.Max,
					CriteriaLabel:       cr.Label,
					CriteriaDescription: cr.Description,
					CriteriaSuggestion:  cr.Suggestion,
				}
				if err := tx.Create(&criteria).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] Failed to create appraisal template: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create appraisal template")
	}

	if err := ctrl.preloadNested(ctrl.DB).
		First(&template, "template_id = ?", template.TemplateID).Error; err != nil {
		log.Printf("[ERROR] Failed to reload appraisal template: %v", err)
	}
	return helper.JsonCreated(c, "Appraisal template created successfully", TemplateDTO.ToTemplateDTO(template))
}

// UpdateTemplate edits title/description only; structure edits go
// through the category and question endpoints.
func (ctrl *TemplateController) UpdateTemplate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid template ID")
	}

	var req TemplateDTO.UpdateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var template TemplateModel.TemplateModel
	if err := ctrl.DB.First(&template, "template_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Appraisal template not found")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["template_title"] = *req.Title
	}
	if req.Description != nil {
		updates["template_description"] = *req.Description
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}

	if err := ctrl.DB.Model(&template).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update appraisal template")
	}

	return helper.JsonUpdated(c, "Appraisal template updated successfully", TemplateDTO.ToTemplateDTO(template))
}

// ActivateTemplate flips the template's active flag. Only one template
// is active at a time, so every other template is deactivated first.
func (ctrl *TemplateController) ActivateTemplate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid template ID")
	}

	var template TemplateModel.TemplateModel
	if err := ctrl.DB.First(&template, "template_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Appraisal template not found")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&TemplateModel.TemplateModel{}).
			Where("template_is_active = ?", true).
			Update("template_is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&template).Update("template_is_active", true).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to activate appraisal template")
	}

	return helper.JsonUpdated(c, "Appraisal template activated successfully", nil)
}

// DeactivateTemplate turns the template off without activating another.
func (ctrl *TemplateController) DeactivateTemplate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid template ID")
	}

	result := ctrl.DB.Model(&TemplateModel.TemplateModel{}).
		Where("template_id = ?", id).
		Update("template_is_active", false)
	if result.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to deactivate appraisal template")
	}
	if result.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Appraisal template not found")
	}

	return helper.JsonUpdated(c, "Appraisal template deactivated successfully", nil)
}

// DeleteTemplate removes the template and its nested rows.
func (ctrl *TemplateController) DeleteTemplate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid template ID")
	}

	var template TemplateModel.TemplateModel
	if err := ctrl.DB.First(&template, "template_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Appraisal template not found")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`
			DELETE FROM appraisal_questions
			WHERE question_category_id IN (
				SELECT category_id FROM appraisal_categories WHERE category_template_id = ?
			)`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`
			DELETE FROM appraisal_evaluation_criteria
			WHERE criteria_category_id IN (
				SELECT category_id FROM appraisal_categories WHERE category_template_id = ?
			)`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM appraisal_categories WHERE category_template_id = ?`, id).Error; err != nil {
			return err
		}
		return tx.Delete(&template).Error
	})
	if err != nil {
		log.Printf("[ERROR] Failed to delete appraisal template %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete appraisal template")
	}

	return helper.JsonDeleted(c, "Appraisal template deleted successfully", nil)
}

// =============================
// 📖 Reading
// =============================

func (ctrl *TemplateController) GetAllTemplates(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := ctrl.DB.Model(&TemplateModel.TemplateModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count appraisal templates")
	}

	var templates []TemplateModel.TemplateModel
	if err := query.
		Order("template_created_at DESC").
		Limit(paging.PerPage).
		Offset(paging.Offset).
		Find(&templates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch appraisal templates")
	}

	pagination := helper.BuildPagination(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Appraisal templates fetched successfully", TemplateDTO.ToTemplateDTOList(templates), &pagination)
}

func (ctrl *TemplateController) GetTemplateByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid template ID")
	}

	var template TemplateModel.TemplateModel
	if err := ctrl.preloadNested(ctrl.DB).
		First(&template, "template_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Appraisal template not found")
	}

	return helper.JsonOK(c, "Appraisal template fetched successfully", TemplateDTO.ToTemplateDTO(template))
}

// GetActiveTemplate returns the template students currently answer.
func (ctrl *TemplateController) GetActiveTemplate(c *fiber.Ctx) error {
	var template TemplateModel.TemplateModel
	if err := ctrl.preloadNested(ctrl.DB).
		Where("template_is_active = ?", true).
		First(&template).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "No active appraisal template")
	}

	return helper.JsonOK(c, "Active appraisal template fetched successfully", TemplateDTO.ToTemplateDTO(template))
}
