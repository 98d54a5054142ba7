// file: internals/features/finance/advances/controller/advance_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"plazaku_backend/internals/features/finance/advances/dto"
	"plazaku_backend/internals/features/finance/advances/model"
	"plazaku_backend/internals/features/finance/advances/service"
	helper "plazaku_backend/internals/helpers"
)

type AdvanceHandler struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAdvanceHandler(db *gorm.DB) *AdvanceHandler {
	return &AdvanceHandler{DB: db, Validate: validator.New()}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

var advanceSortable = map[string]string{
	"created_at": "advance_created_at",
	"updated_at": "advance_updated_at",
	"amount":     "advance_amount_idr",
	"year":       "advance_year",
}

// -----------------------------------------
// List (GET /advances)
// Filters: business_id, type, status, month, year
// -----------------------------------------
func (h *AdvanceHandler) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&model.AdvanceModel{})

	if v := c.Query("business_id"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			q = q.Where("advance_business_id = ?", id)
		}
	}
	if v := c.Query("type"); v != "" {
		q = q.Where("advance_type = ?", strings.ToLower(v))
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("advance_status = ?", strings.ToLower(v))
	}
	if v := c.QueryInt("month"); v >= 1 && v <= 12 {
		q = q.Where("advance_month = ?", v)
	}
	if v := c.QueryInt("year"); v > 0 {
		q = q.Where("advance_year = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	order, err := p.SafeOrderClause(advanceSortable, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid sort")
	}

	var list []model.AdvanceModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToAdvanceResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// Create (POST /advances)
// Satu advance aktif per (business, type, month, year).
// Pre-check untuk pesan ramah; unique index yang jadi guard sebenarnya.
// -----------------------------------------
func (h *AdvanceHandler) Create(c *fiber.Ctx) error {
	var in dto.AdvanceCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validate.Struct(in); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, helper.ErrCodeValidation, err.Error())
	}

	// pre-check (ramah); race tetap ditangkap unique index di bawah
	var count int64
	if err := h.DB.Model(&model.AdvanceModel{}).
		Where("advance_business_id = ? AND advance_type = ? AND advance_month = ? AND advance_year = ?",
			in.AdvanceBusinessID, in.AdvanceType, in.AdvanceMonth, in.AdvanceYear).
		Where("advance_status = ?", model.AdvanceStatusActive).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := service.EnsureNoActiveAdvance(count); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusConflict, helper.ErrCodeDuplicate, err.Error())
	}

	m := dto.AdvanceCreateDTOToModel(in)
	if err := h.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonErrorCode(c, fiber.StatusConflict, helper.ErrCodeDuplicate,
				"advance aktif untuk periode tersebut sudah ada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "advance recorded", dto.ToAdvanceResponse(m))
}

// -----------------------------------------
// Update (PATCH /advances/:id) — hanya advance aktif yang boleh diedit
// -----------------------------------------
func (h *AdvanceHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.AdvanceUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validate.Struct(in); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, helper.ErrCodeValidation, err.Error())
	}

	var m model.AdvanceModel
	if err := h.DB.First(&m, "advance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "advance not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.AdvanceStatus != model.AdvanceStatusActive {
		return helper.JsonError(c, fiber.StatusConflict, "hanya advance aktif yang bisa diedit")
	}

	dto.ApplyAdvanceUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "advance updated", dto.ToAdvanceResponse(m))
}

// -----------------------------------------
// Status: Cancel (POST /advances/:id/cancel)
// -----------------------------------------
func (h *AdvanceHandler) Cancel(c *fiber.Ctx) error {
	return h.setStatus(c, model.AdvanceStatusCancelled, "advance cancelled")
}

// -----------------------------------------
// Status: Mark Used (POST /advances/:id/mark-used)
// Dipanggil saat advance terpakai penuh oleh sebuah tagihan.
// -----------------------------------------
func (h *AdvanceHandler) MarkUsed(c *fiber.Ctx) error {
	return h.setStatus(c, model.AdvanceStatusUsed, "advance marked as used")
}

func (h *AdvanceHandler) setStatus(c *fiber.Ctx, status model.AdvanceStatus, msg string) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.AdvanceStatusDTO
	if err := c.BodyParser(&in); err != nil && len(c.Body()) > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}

	var m model.AdvanceModel
	if err := h.DB.First(&m, "advance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "advance not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	m.AdvanceStatus = status
	if in.Note != nil {
		m.AdvanceNote = in.Note
	}
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, msg, dto.ToAdvanceResponse(m))
}
