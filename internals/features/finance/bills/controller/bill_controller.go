// file: internals/features/finance/bills/controller/bill_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"plazaku_backend/internals/features/finance/bills/dto"
	"plazaku_backend/internals/features/finance/bills/model"
	"plazaku_backend/internals/features/finance/bills/service"
	paymentModel "plazaku_backend/internals/features/finance/payments/model"
	businessModel "plazaku_backend/internals/features/plaza/businesses/model"
	helper "plazaku_backend/internals/helpers"
)

type BillHandler struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewBillHandler(db *gorm.DB) *BillHandler {
	return &BillHandler{DB: db, Validate: validator.New()}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

var billSortable = map[string]string{
	"created_at": "bill_created_at",
	"issue_date": "bill_issue_date",
	"due_date":   "bill_due_date",
	"number":     "bill_number",
	"total":      "bill_total_idr",
}

// -----------------------------------------
// List (GET /bills)
// Query filters (opsional):
// - business_id, kind, status, month, year
// - sort_by (created_at|issue_date|due_date|number|total), order, page, per_page
// -----------------------------------------
func (h *BillHandler) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := h.DB.Model(&model.BillModel{})

	if v := c.Query("business_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid business_id")
		}
		q = q.Where("bill_business_id = ?", id)
	}
	if v := strings.ToLower(c.Query("kind")); v != "" {
		q = q.Where("bill_kind = ?", v)
	}
	if v := strings.ToLower(c.Query("status")); v != "" {
		q = q.Where("bill_status = ?", v)
	}
	if v := c.QueryInt("month", 0); v >= 1 && v <= 12 {
		q = q.Where("bill_month = ?", v)
	}
	if v := c.QueryInt("year", 0); v > 0 {
		q = q.Where("bill_year = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	order, err := p.SafeOrderClause(billSortable, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid sort")
	}

	var list []model.BillModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", dto.ToBillResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// GetByID (GET /bills/:id)
// -----------------------------------------
func (h *BillHandler) GetByID(c *fiber.Ctx) error {
	m, err := h.findBill(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", dto.ToBillResponse(*m))
}

// -----------------------------------------
// Create (POST /bills) — tagihan tunggal manual
// Flow advance:
//   - advance aktif menutup kewajiban penuh → 409 ADVANCE_COVERS_OBLIGATION
//   - caller bisa override dgn acknowledge_advance_warning=true; bill dibuat
//     tanpa offset (advance-nya diselesaikan manual lewat modul advance)
// -----------------------------------------
func (h *BillHandler) Create(c *fiber.Ctx) error {
	var in dto.BillCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validate.Struct(in); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, helper.ErrCodeValidation, err.Error())
	}
	kind := model.BillKind(in.BillKind)

	var biz businessModel.BusinessModel
	if err := h.DB.First(&biz, "business_id = ?", in.BillBusinessID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "business not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	store := service.NewGormGenerateStore(h.DB)
	decision, err := store.ResolveAdvance(c.Context(), biz.BusinessID,
		service.AdvanceTypeForKind(kind), in.BillMonth, in.BillYear, biz.BusinessMonthlyRentIDR)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if decision.BlocksGeneration && !in.AcknowledgeAdvanceWarning {
		return helper.JsonErrorCode(c, fiber.StatusConflict, helper.ErrCodeAdvanceCovers,
			"advance tenant sudah menutup kewajiban periode ini; kirim acknowledge_advance_warning=true untuk tetap membuat tagihan")
	}

	issue := time.Now()
	if in.BillIssueDate != nil {
		issue = *in.BillIssueDate
	}

	charges := service.ChargeBreakdown{
		MaintenanceIDR: in.BillMaintenanceIDR,
		ElectricityIDR: in.BillElectricityIDR,
		GasIDR:         in.BillGasIDR,
		WaterIDR:       in.BillWaterIDR,
		OtherIDR:       in.BillOtherIDR,
	}
	offset := 0
	if !decision.BlocksGeneration {
		offset = decision.Offset
	}
	switch kind {
	case model.BillKindRent, model.BillKindCombined:
		charges.RentIDR = service.RentAfterAdvance(biz.BusinessMonthlyRentIDR, offset)
	}

	m := model.BillModel{
		BillBusinessID:       biz.BusinessID,
		BillKind:             kind,
		BillMonth:            in.BillMonth,
		BillYear:             in.BillYear,
		BillIssueDate:        issue,
		BillDueDate:          in.BillDueDate,
		BillRentIDR:          charges.RentIDR,
		BillMaintenanceIDR:   charges.MaintenanceIDR,
		BillElectricityIDR:   charges.ElectricityIDR,
		BillGasIDR:           charges.GasIDR,
		BillWaterIDR:         charges.WaterIDR,
		BillOtherIDR:         charges.OtherIDR,
		BillTotalIDR:         charges.Total(),
		BillAdvanceOffsetIDR: offset,
		BillStatus:           model.BillStatusPending,
		BillTermIDs:          pq.Int64Array(in.BillTermIDs),
		BillNote:             in.BillNote,
	}

	if err := service.InsertWithNumber(h.DB, &m, issue.Year()); err != nil {
		if helper.IsUniqueViolation(err) && strings.Contains(err.Error(), "uq_bill_period") {
			return helper.JsonErrorCode(c, fiber.StatusConflict, helper.ErrCodeDuplicate,
				"tagihan untuk business+jenis+periode tersebut sudah ada")
		}
		if strings.Contains(err.Error(), "bill number allocation") {
			return helper.JsonErrorCode(c, fiber.StatusConflict, helper.ErrCodeWriteConflict,
				"alokasi nomor tagihan bentrok, silakan coba lagi")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "bill created", dto.ToBillResponse(m))
}

// -----------------------------------------
// Update (PATCH /bills/:id) — total SELALU dihitung ulang
// -----------------------------------------
func (h *BillHandler) Update(c *fiber.Ctx) error {
	m, err := h.findBill(c)
	if err != nil {
		return err
	}
	var in dto.BillUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validate.Struct(in); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, helper.ErrCodeValidation, err.Error())
	}

	dto.ApplyBillUpdate(m, in)
	m.BillTotalIDR = service.ChargeBreakdown{
		RentIDR:        m.BillRentIDR,
		MaintenanceIDR: m.BillMaintenanceIDR,
		ElectricityIDR: m.BillElectricityIDR,
		GasIDR:         m.BillGasIDR,
		WaterIDR:       m.BillWaterIDR,
		OtherIDR:       m.BillOtherIDR,
	}.Total()

	if err := h.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "bill updated", dto.ToBillResponse(*m))
}

// -----------------------------------------
// Delete (DELETE /bills/:id) — soft delete, nomor TIDAK didaur ulang
// -----------------------------------------
func (h *BillHandler) Delete(c *fiber.Ctx) error {
	m, err := h.findBill(c)
	if err != nil {
		return err
	}
	if err := h.DB.Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "bill deleted", dto.ToBillResponse(*m))
}

// -----------------------------------------
// MarkPaid (POST /bills/:id/mark-paid)
// Satu transaksi: update status + materialisasi payment record.
// -----------------------------------------
func (h *BillHandler) MarkPaid(c *fiber.Ctx) error {
	m, err := h.findBill(c)
	if err != nil {
		return err
	}
	if m.BillStatus == model.BillStatusPaid {
		return helper.JsonErrorCode(c, fiber.StatusConflict, helper.ErrCodeDuplicate, "bill sudah paid")
	}

	var in dto.BillMarkPaidDTO
	_ = c.BodyParser(&in) // body boleh kosong
	if err := h.Validate.Struct(in); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, helper.ErrCodeValidation, err.Error())
	}

	method := paymentModel.PaymentMethodCash
	if in.Method != nil {
		method = paymentModel.PaymentMethod(*in.Method)
	}
	by := service.MarkedBy{Role: helper.GetRoleFromToken(c)}
	if uid, err := helper.GetUserIDFromToken(c); err == nil {
		by.UserID = &uid
	}

	var pay *paymentModel.PaymentModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		p, err := service.MarkBillPaid(tx, m, method, by, in.PaidAt, in.Note)
		if err != nil {
			return err
		}
		pay = p
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "bill marked paid", fiber.Map{
		"bill":    dto.ToBillResponse(*m),
		"payment": pay,
	})
}

// -----------------------------------------
// Waveoff (POST /bills/:id/waveoff) — pemutihan, tanpa payment record
// -----------------------------------------
func (h *BillHandler) Waveoff(c *fiber.Ctx) error {
	m, err := h.findBill(c)
	if err != nil {
		return err
	}
	var in dto.BillStatusNoteDTO
	_ = c.BodyParser(&in)

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		return service.MarkBillWaveoff(tx, m, in.Note)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "bill waved off", dto.ToBillResponse(*m))
}

// -----------------------------------------
// MarkPending (POST /bills/:id/mark-pending) — koreksi balik dari paid/waveoff
// -----------------------------------------
func (h *BillHandler) MarkPending(c *fiber.Ctx) error {
	m, err := h.findBill(c)
	if err != nil {
		return err
	}
	var in dto.BillStatusNoteDTO
	_ = c.BodyParser(&in)

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		return service.MarkBillPending(tx, m, in.Note)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "bill back to pending", dto.ToBillResponse(*m))
}

// -----------------------------------------
// MarkOverdue (POST /bills/:id/mark-overdue) — hanya dari pending
// -----------------------------------------
func (h *BillHandler) MarkOverdue(c *fiber.Ctx) error {
	m, err := h.findBill(c)
	if err != nil {
		return err
	}
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		return service.MarkBillOverdue(tx, m)
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "bill marked overdue", dto.ToBillResponse(*m))
}

// -----------------------------------------
// Document (GET /bills/:id/document)
// Payload terekonsiliasi utk renderer dokumen: bill + arrears + denda.
// -----------------------------------------
func (h *BillHandler) Document(c *fiber.Ctx) error {
	m, err := h.findBill(c)
	if err != nil {
		return err
	}
	doc, err := service.BuildBillDocument(h.DB, *m)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", doc)
}

// findBill: load by :id, balas 404/500 langsung ke client kalau gagal.
func (h *BillHandler) findBill(c *fiber.Ctx) (*model.BillModel, error) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.BillModel
	if err := h.DB.First(&m, "bill_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "bill not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return &m, nil
}
