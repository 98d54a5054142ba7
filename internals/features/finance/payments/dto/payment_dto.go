// file: internals/features/finance/payments/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"plazaku_backend/internals/features/finance/payments/model"
)

////////////////////////////////////////////////////////////////////////////////
// PAYMENTS — DTO
////////////////////////////////////////////////////////////////////////////////

type SnapTokenRequestDTO struct {
	BillID uuid.UUID `json:"bill_id" validate:"required"`
}

type SnapTokenResponse struct {
	Token   string `json:"token"`
	OrderID string `json:"order_id"`
}

type PaymentResponse struct {
	PaymentID         uuid.UUID  `json:"payment_id"`
	PaymentBusinessID uuid.UUID  `json:"payment_business_id"`
	PaymentBillID     *uuid.UUID `json:"payment_bill_id,omitempty"`

	PaymentMeterReadingID *uuid.UUID `json:"payment_meter_reading_id,omitempty"`

	PaymentAmountIDR int    `json:"payment_amount_idr"`
	PaymentMethod    string `json:"payment_method"`
	PaymentStatus    string `json:"payment_status"`

	PaymentPaidAt time.Time `json:"payment_paid_at"`

	PaymentMarkedByUserID *uuid.UUID `json:"payment_marked_by_user_id,omitempty"`
	PaymentMarkedByRole   string     `json:"payment_marked_by_role"`

	PaymentOrderID *string `json:"payment_order_id,omitempty"`
	PaymentNote    *string `json:"payment_note,omitempty"`

	PaymentCreatedAt time.Time  `json:"payment_created_at"`
	PaymentUpdatedAt time.Time  `json:"payment_updated_at"`
	PaymentDeletedAt *time.Time `json:"payment_deleted_at,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToPaymentResponse(m model.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:             m.PaymentID,
		PaymentBusinessID:     m.PaymentBusinessID,
		PaymentBillID:         m.PaymentBillID,
		PaymentMeterReadingID: m.PaymentMeterReadingID,
		PaymentAmountIDR:      m.PaymentAmountIDR,
		PaymentMethod:         string(m.PaymentMethod),
		PaymentStatus:         string(m.PaymentStatus),
		PaymentPaidAt:         m.PaymentPaidAt,
		PaymentMarkedByUserID: m.PaymentMarkedByUserID,
		PaymentMarkedByRole:   m.PaymentMarkedByRole,
		PaymentOrderID:        m.PaymentOrderID,
		PaymentNote:           m.PaymentNote,
		PaymentCreatedAt:      m.PaymentCreatedAt,
		PaymentUpdatedAt:      m.PaymentUpdatedAt,
		PaymentDeletedAt:      toPtrTimeFromDeletedAt(m.PaymentDeletedAt),
	}
}

func ToPaymentResponses(list []model.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToPaymentResponse(m))
	}
	return out
}

func toPtrTimeFromDeletedAt(d gorm.DeletedAt) *time.Time {
	if d.Valid {
		t := d.Time
		return &t
	}
	return nil
}
