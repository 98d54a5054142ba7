// file: internals/features/finance/meter_readings/controller/meter_reading_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	billService "plazaku_backend/internals/features/finance/bills/service"
	"plazaku_backend/internals/features/finance/meter_readings/dto"
	"plazaku_backend/internals/features/finance/meter_readings/model"
	"plazaku_backend/internals/features/finance/meter_readings/service"
	paymentModel "plazaku_backend/internals/features/finance/payments/model"
	helper "plazaku_backend/internals/helpers"
)

type MeterReadingHandler struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMeterReadingHandler(db *gorm.DB) *MeterReadingHandler {
	return &MeterReadingHandler{DB: db, Validate: validator.New()}
}

var meterReadingSortable = map[string]string{
	"created_at": "meter_reading_created_at",
	"read_at":    "meter_reading_read_at",
	"amount":     "meter_reading_amount_idr",
}

// -----------------------------------------
// List (GET /meter-readings)
// Filters: business_id, kind, status, month, year
// -----------------------------------------
func (h *MeterReadingHandler) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := h.DB.Model(&model.MeterReadingModel{})

	if v := c.Query("business_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid business_id")
		}
		q = q.Where("meter_reading_business_id = ?", id)
	}
	if v := strings.ToLower(c.Query("kind")); v != "" {
		q = q.Where("meter_reading_kind = ?", v)
	}
	if v := strings.ToLower(c.Query("status")); v != "" {
		q = q.Where("meter_reading_status = ?", v)
	}
	if v := c.QueryInt("month", 0); v >= 1 && v <= 12 {
		q = q.Where("meter_reading_month = ?", v)
	}
	if v := c.QueryInt("year", 0); v > 0 {
		q = q.Where("meter_reading_year = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	order, err := p.SafeOrderClause(meterReadingSortable, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid sort")
	}

	var list []model.MeterReadingModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToMeterReadingResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// GetByID (GET /meter-readings/:id)
// -----------------------------------------
func (h *MeterReadingHandler) GetByID(c *fiber.Ctx) error {
	m, err := h.findReading(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", dto.ToMeterReadingResponse(*m))
}

// -----------------------------------------
// Create (POST /meter-readings)
// Tanpa alokasi nomor — nomor invoice baru terisi saat dokumen diminta.
// -----------------------------------------
func (h *MeterReadingHandler) Create(c *fiber.Ctx) error {
	var in dto.MeterReadingCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validate.Struct(in); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, helper.ErrCodeValidation, err.Error())
	}
	if in.MeterReadingCurrent < in.MeterReadingPrevious {
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, helper.ErrCodeValidation,
			"angka meteran sekarang tidak boleh lebih kecil dari sebelumnya")
	}

	readAt := time.Now()
	if in.MeterReadingReadAt != nil {
		readAt = *in.MeterReadingReadAt
	}

	m := model.MeterReadingModel{
		MeterReadingBusinessID:     in.MeterReadingBusinessID,
		MeterReadingKind:           model.MeterKind(in.MeterReadingKind),
		MeterReadingMonth:          in.MeterReadingMonth,
		MeterReadingYear:           in.MeterReadingYear,
		MeterReadingPrevious:       in.MeterReadingPrevious,
		MeterReadingCurrent:        in.MeterReadingCurrent,
		MeterReadingRatePerUnitIDR: in.MeterReadingRatePerUnitIDR,
		MeterReadingStatus:         model.MeterReadingStatusPending,
		MeterReadingReadAt:         readAt,
		MeterReadingNote:           in.MeterReadingNote,
	}
	service.ComputeUsage(&m)

	if err := h.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonErrorCode(c, fiber.StatusConflict, helper.ErrCodeDuplicate,
				"pencatatan meteran untuk business+jenis+periode tersebut sudah ada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "meter reading created", dto.ToMeterReadingResponse(m))
}

// -----------------------------------------
// Update (PATCH /meter-readings/:id) — units & amount dihitung ulang
// -----------------------------------------
func (h *MeterReadingHandler) Update(c *fiber.Ctx) error {
	m, err := h.findReading(c)
	if err != nil {
		return err
	}
	var in dto.MeterReadingUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validate.Struct(in); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, helper.ErrCodeValidation, err.Error())
	}

	dto.ApplyMeterReadingUpdate(m, in)
	if m.MeterReadingCurrent < m.MeterReadingPrevious {
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, helper.ErrCodeValidation,
			"angka meteran sekarang tidak boleh lebih kecil dari sebelumnya")
	}
	service.ComputeUsage(m)

	if err := h.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "meter reading updated", dto.ToMeterReadingResponse(*m))
}

// -----------------------------------------
// Delete (DELETE /meter-readings/:id) — soft delete
// -----------------------------------------
func (h *MeterReadingHandler) Delete(c *fiber.Ctx) error {
	m, err := h.findReading(c)
	if err != nil {
		return err
	}
	if err := h.DB.Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "meter reading deleted", dto.ToMeterReadingResponse(*m))
}

// -----------------------------------------
// MarkPaid (POST /meter-readings/:id/mark-paid)
// -----------------------------------------
func (h *MeterReadingHandler) MarkPaid(c *fiber.Ctx) error {
	m, err := h.findReading(c)
	if err != nil {
		return err
	}
	if m.MeterReadingStatus == model.MeterReadingStatusPaid {
		return helper.JsonErrorCode(c, fiber.StatusConflict, helper.ErrCodeDuplicate, "meter reading sudah paid")
	}

	var in dto.MeterReadingMarkPaidDTO
	_ = c.BodyParser(&in) // body boleh kosong
	if err := h.Validate.Struct(in); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, helper.ErrCodeValidation, err.Error())
	}

	// Perubahan status butuh nomor invoice terisi (alokasi lazy di sini)
	if err := service.EnsureInvoiceNumber(h.DB, m); err != nil {
		if errors.Is(err, service.ErrInvoiceNumberConflict) {
			return helper.JsonErrorCode(c, fiber.StatusConflict, helper.ErrCodeWriteConflict,
				"alokasi nomor invoice bentrok, silakan coba lagi")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	method := paymentModel.PaymentMethodCash
	if in.Method != nil {
		method = paymentModel.PaymentMethod(*in.Method)
	}
	by := billService.MarkedBy{Role: helper.GetRoleFromToken(c)}
	if uid, err := helper.GetUserIDFromToken(c); err == nil {
		by.UserID = &uid
	}

	var pay *paymentModel.PaymentModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		p, err := service.MarkReadingPaid(tx, m, method, by, in.PaidAt, in.Note)
		if err != nil {
			return err
		}
		pay = p
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "meter reading marked paid", fiber.Map{
		"reading": dto.ToMeterReadingResponse(*m),
		"payment": pay,
	})
}

// -----------------------------------------
// Waveoff (POST /meter-readings/:id/waveoff) — pemutihan, tanpa payment record
// -----------------------------------------
func (h *MeterReadingHandler) Waveoff(c *fiber.Ctx) error {
	m, err := h.findReading(c)
	if err != nil {
		return err
	}
	if err := service.EnsureInvoiceNumber(h.DB, m); err != nil {
		if errors.Is(err, service.ErrInvoiceNumberConflict) {
			return helper.JsonErrorCode(c, fiber.StatusConflict, helper.ErrCodeWriteConflict,
				"alokasi nomor invoice bentrok, silakan coba lagi")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var in dto.MeterReadingMarkPaidDTO
	_ = c.BodyParser(&in)

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		return service.MarkReadingWaveoff(tx, m, in.Note)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "meter reading waved off", dto.ToMeterReadingResponse(*m))
}

// -----------------------------------------
// Document (GET /meter-readings/:id/document)
// Alokasi nomor invoice terjadi DI SINI (lazy) kalau belum ada.
// -----------------------------------------
func (h *MeterReadingHandler) Document(c *fiber.Ctx) error {
	m, err := h.findReading(c)
	if err != nil {
		return err
	}
	doc, err := service.BuildReadingDocument(h.DB, m)
	if err != nil {
		if errors.Is(err, service.ErrInvoiceNumberConflict) {
			return helper.JsonErrorCode(c, fiber.StatusConflict, helper.ErrCodeWriteConflict,
				"alokasi nomor invoice bentrok, silakan coba lagi")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", doc)
}

func (h *MeterReadingHandler) findReading(c *fiber.Ctx) (*model.MeterReadingModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.MeterReadingModel
	if err := h.DB.First(&m, "meter_reading_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "meter reading not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return &m, nil
}
