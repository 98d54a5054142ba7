// file: internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	billModel "plazaku_backend/internals/features/finance/bills/model"
	"plazaku_backend/internals/features/finance/payments/dto"
	"plazaku_backend/internals/features/finance/payments/model"
	"plazaku_backend/internals/features/finance/payments/service"
	businessModel "plazaku_backend/internals/features/plaza/businesses/model"
	helper "plazaku_backend/internals/helpers"
)

type PaymentHandler struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPaymentHandler(db *gorm.DB) *PaymentHandler {
	return &PaymentHandler{DB: db, Validate: validator.New()}
}

var paymentSortable = map[string]string{
	"created_at": "payment_created_at",
	"paid_at":    "payment_paid_at",
	"amount":     "payment_amount_idr",
}

// -----------------------------------------
// List (GET /payments)
// Filters: business_id, bill_id, method, status
// -----------------------------------------
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := h.DB.Model(&model.PaymentModel{})

	if v := c.Query("business_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid business_id")
		}
		q = q.Where("payment_business_id = ?", id)
	}
	if v := c.Query("bill_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid bill_id")
		}
		q = q.Where("payment_bill_id = ?", id)
	}
	if v := strings.ToLower(c.Query("method")); v != "" {
		q = q.Where("payment_method = ?", v)
	}
	if v := strings.ToLower(c.Query("status")); v != "" {
		q = q.Where("payment_status = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	order, err := p.SafeOrderClause(paymentSortable, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid sort")
	}

	var list []model.PaymentModel
	if err := q.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToPaymentResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// SnapToken (POST /payments/snap-token)
// Tenant minta token Snap utk bayar satu tagihan via Midtrans.
// -----------------------------------------
func (h *PaymentHandler) SnapToken(c *fiber.Ctx) error {
	var in dto.SnapTokenRequestDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validate.Struct(in); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, helper.ErrCodeValidation, err.Error())
	}

	var bill billModel.BillModel
	if err := h.DB.First(&bill, "bill_id = ?", in.BillID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "bill not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if bill.BillStatus == billModel.BillStatusPaid {
		return helper.JsonErrorCode(c, fiber.StatusConflict, helper.ErrCodeDuplicate, "bill sudah paid")
	}

	var biz businessModel.BusinessModel
	if err := h.DB.First(&biz, "business_id = ?", bill.BillBusinessID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	token, orderID, err := service.GenerateSnapToken(bill, biz)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	}
	return helper.JsonOK(c, "snap token created", dto.SnapTokenResponse{Token: token, OrderID: orderID})
}

// -----------------------------------------
// Notification (POST /payments/notification)
// Endpoint webhook Midtrans — TANPA auth (dipanggil server Midtrans).
// Selalu balas 200 supaya Midtrans berhenti retry; kegagalan proses
// tercatat di payment_gateway_events.
// -----------------------------------------
func (h *PaymentHandler) Notification(c *fiber.Ctx) error {
	var n service.MidtransNotification
	if err := c.BodyParser(&n); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	_ = service.ProcessNotification(h.DB, n, c.Body())
	return helper.JsonOK(c, "ok", nil)
}

// -----------------------------------------
// Approve (POST /payments/:id/approve)
// Verifikasi admin utk setoran self-service tenant.
// -----------------------------------------
func (h *PaymentHandler) Approve(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.PaymentModel
	if err := h.DB.First(&m, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "payment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.PaymentStatus != model.PaymentStatusPendingApproval {
		return helper.JsonErrorCode(c, fiber.StatusConflict, helper.ErrCodeDuplicate,
			"payment bukan pending_approval")
	}
	m.PaymentStatus = model.PaymentStatusConfirmed
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "payment approved", dto.ToPaymentResponse(m))
}
