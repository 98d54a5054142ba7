// file: internals/features/finance/partial_payments/controller/partial_payment_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"plazaku_backend/internals/features/finance/partial_payments/dto"
	"plazaku_backend/internals/features/finance/partial_payments/model"
	"plazaku_backend/internals/features/finance/partial_payments/service"
	helper "plazaku_backend/internals/helpers"
)

type PartialPaymentHandler struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPartialPaymentHandler(db *gorm.DB) *PartialPaymentHandler {
	return &PartialPaymentHandler{DB: db, Validate: validator.New()}
}

var partialPaymentSortable = map[string]string{
	"created_at": "partial_payment_created_at",
	"updated_at": "partial_payment_updated_at",
	"obligation": "partial_payment_obligation_idr",
}

// -----------------------------------------
// List (GET /partial-payments)
// Filters: business_id, month, year, status
// -----------------------------------------
func (h *PartialPaymentHandler) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := h.DB.Model(&model.PartialPaymentModel{})

	if v := c.Query("business_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid business_id")
		}
		q = q.Where("partial_payment_business_id = ?", id)
	}
	if v := c.QueryInt("month", 0); v >= 1 && v <= 12 {
		q = q.Where("partial_payment_month = ?", v)
	}
	if v := c.QueryInt("year", 0); v > 0 {
		q = q.Where("partial_payment_year = ?", v)
	}
	if v := strings.ToLower(c.Query("status")); v != "" {
		q = q.Where("partial_payment_status = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	order, err := p.SafeOrderClause(partialPaymentSortable, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid sort")
	}

	var list []model.PartialPaymentModel
	if err := q.Preload("PartialPaymentEntries").
		Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToPartialPaymentResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// GetByID (GET /partial-payments/:id) — selalu ikut ledger
// -----------------------------------------
func (h *PartialPaymentHandler) GetByID(c *fiber.Ctx) error {
	m, err := h.findPlan(c, true)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", dto.ToPartialPaymentResponse(*m))
}

// -----------------------------------------
// Create (POST /partial-payments)
// Satu (business, month, year) satu plan aktif: pre-check utk pesan enak,
// partial unique index uq_partial_payment_active yang jadi guard sebenarnya
// saat balapan.
// -----------------------------------------
func (h *PartialPaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.PartialPaymentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validate.Struct(in); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, helper.ErrCodeValidation, err.Error())
	}

	var existing int64
	if err := h.DB.Model(&model.PartialPaymentModel{}).
		Where("partial_payment_business_id = ? AND partial_payment_month = ? AND partial_payment_year = ? AND partial_payment_status = ?",
			in.PartialPaymentBusinessID, in.PartialPaymentMonth, in.PartialPaymentYear,
			model.PartialPaymentStatusActive).
		Count(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := service.EnsureNoActivePlan(existing); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusConflict, helper.ErrCodeDuplicate, err.Error())
	}

	m := model.PartialPaymentModel{
		PartialPaymentBusinessID:    in.PartialPaymentBusinessID,
		PartialPaymentMonth:         in.PartialPaymentMonth,
		PartialPaymentYear:          in.PartialPaymentYear,
		PartialPaymentObligationIDR: in.PartialPaymentObligationIDR,
		PartialPaymentStatus:        model.PartialPaymentStatusActive,
		PartialPaymentNote:          in.PartialPaymentNote,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonErrorCode(c, fiber.StatusConflict, helper.ErrCodeDuplicate,
				"business tersebut sudah punya plan cicilan aktif untuk periode yang sama")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "partial payment plan created", dto.ToPartialPaymentResponse(m))
}

// -----------------------------------------
// AppendEntry (POST /partial-payments/:id/entries)
// Setoran tidak valid → 422 INVALID_AMOUNT, ledger tidak berubah.
// -----------------------------------------
func (h *PartialPaymentHandler) AppendEntry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var in dto.PartialPaymentEntryCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validate.Struct(in); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, helper.ErrCodeValidation, err.Error())
	}

	var recordedBy *uuid.UUID
	if uid, err := helper.GetUserIDFromToken(c); err == nil {
		recordedBy = &uid
	}

	plan, entry, err := service.AppendEntry(h.DB, id, in.AmountIDR, in.PaidAt, recordedBy, in.Note)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "partial payment plan not found")
		case errors.Is(err, service.ErrInvalidEntryAmount):
			return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, helper.ErrCodeInvalidAmount, err.Error())
		case errors.Is(err, service.ErrPlanNotActive):
			return helper.JsonErrorCode(c, fiber.StatusConflict, helper.ErrCodeInvalidAmount, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	// reload ledger utk response lengkap
	if err := h.DB.Preload("PartialPaymentEntries").
		First(plan, "partial_payment_id = ?", plan.PartialPaymentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "setoran dicatat", fiber.Map{
		"plan":  dto.ToPartialPaymentResponse(*plan),
		"entry": dto.ToPartialPaymentEntryResponse(*entry),
	})
}

// -----------------------------------------
// Cancel (POST /partial-payments/:id/cancel)
// Entri TIDAK dihapus — tetap jadi riwayat.
// -----------------------------------------
func (h *PartialPaymentHandler) Cancel(c *fiber.Ctx) error {
	m, err := h.findPlan(c, false)
	if err != nil {
		return err
	}
	if m.PartialPaymentStatus != model.PartialPaymentStatusActive {
		return helper.JsonErrorCode(c, fiber.StatusConflict, helper.ErrCodeDuplicate,
			"hanya plan aktif yang bisa dibatalkan")
	}
	m.PartialPaymentStatus = model.PartialPaymentStatusCancelled
	if err := h.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "plan cancelled", dto.ToPartialPaymentResponse(*m))
}

func (h *PartialPaymentHandler) findPlan(c *fiber.Ctx, withEntries bool) (*model.PartialPaymentModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	q := h.DB
	if withEntries {
		q = q.Preload("PartialPaymentEntries")
	}
	var m model.PartialPaymentModel
	if err := q.First(&m, "partial_payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "partial payment plan not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return &m, nil
}
