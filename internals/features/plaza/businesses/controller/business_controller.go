// file: internals/features/plaza/businesses/controller/business_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"plazaku_backend/internals/features/plaza/businesses/dto"
	"plazaku_backend/internals/features/plaza/businesses/model"
	helper "plazaku_backend/internals/helpers"
)

type BusinessHandler struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewBusinessHandler(db *gorm.DB) *BusinessHandler {
	return &BusinessHandler{DB: db, Validate: validator.New()}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

var businessSortable = map[string]string{
	"created_at": "business_created_at",
	"updated_at": "business_updated_at",
	"name":       "business_name",
	"floor":      "business_floor_number",
	"rent":       "business_monthly_rent_idr",
}

// -----------------------------------------
// List (GET /businesses)
// Query filters (opsional):
// - floor, active: true|false, manage: rent|electricity|gas|maintenance
// - q (cari nama/pemilik/nomor kios)
// - sort_by (created_at|updated_at|name|floor|rent), order, page, per_page
// -----------------------------------------
func (h *BusinessHandler) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&model.BusinessModel{})

	if v := c.QueryInt("floor", -1); v >= 0 {
		q = q.Where("business_floor_number = ?", v)
	}
	if v := c.Query("active"); v != "" {
		if strings.EqualFold(v, "true") {
			q = q.Where("business_is_active = TRUE")
		} else if strings.EqualFold(v, "false") {
			q = q.Where("business_is_active = FALSE")
		}
	}
	switch strings.ToLower(c.Query("manage")) {
	case "rent":
		q = q.Where("business_manage_rent = TRUE")
	case "electricity":
		q = q.Where("business_manage_electricity = TRUE")
	case "gas":
		q = q.Where("business_manage_gas = TRUE")
	case "maintenance":
		q = q.Where("business_manage_maintenance = TRUE")
	}
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		like := "%" + strings.ToLower(v) + "%"
		q = q.Where(
			"LOWER(business_name) LIKE ? OR LOWER(business_owner_name) LIKE ? OR LOWER(business_shop_number) LIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	order, err := p.SafeOrderClause(businessSortable, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid sort")
	}

	var list []model.BusinessModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", dto.ToBusinessResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// GetByID (GET /businesses/:id)
// -----------------------------------------
func (h *BusinessHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.BusinessModel
	if err := h.DB.First(&m, "business_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "business not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToBusinessResponse(m))
}

// -----------------------------------------
// Create (POST /businesses)
// -----------------------------------------
func (h *BusinessHandler) Create(c *fiber.Ctx) error {
	var in dto.BusinessCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validate.Struct(in); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, helper.ErrCodeValidation, err.Error())
	}

	m := dto.BusinessCreateDTOToModel(in)
	if err := h.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonErrorCode(c, fiber.StatusConflict, helper.ErrCodeDuplicate,
				"kios tersebut sudah ditempati tenant lain")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "business created", dto.ToBusinessResponse(m))
}

// -----------------------------------------
// Update (PATCH /businesses/:id)
// -----------------------------------------
func (h *BusinessHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.BusinessUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validate.Struct(in); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, helper.ErrCodeValidation, err.Error())
	}

	var m model.BusinessModel
	if err := h.DB.First(&m, "business_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "business not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyBusinessUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonErrorCode(c, fiber.StatusConflict, helper.ErrCodeDuplicate,
				"kios tersebut sudah ditempati tenant lain")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "business updated", dto.ToBusinessResponse(m))
}

// -----------------------------------------
// Delete (DELETE /businesses/:id) — soft delete
// Tagihan historis tidak ikut terhapus (referential integrity advisory).
// -----------------------------------------
func (h *BusinessHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.BusinessModel
	if err := h.DB.First(&m, "business_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "business not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := h.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "business deleted", dto.ToBusinessResponse(m))
}
