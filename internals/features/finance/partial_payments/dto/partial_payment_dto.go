// file: internals/features/finance/partial_payments/dto/partial_payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"plazaku_backend/internals/features/finance/partial_payments/model"
	"plazaku_backend/internals/features/finance/partial_payments/service"
)

////////////////////////////////////////////////////////////////////////////////
// PARTIAL PAYMENTS — DTO
////////////////////////////////////////////////////////////////////////////////

type PartialPaymentCreateDTO struct {
	PartialPaymentBusinessID    uuid.UUID `json:"partial_payment_business_id" validate:"required"`
	PartialPaymentMonth         int16     `json:"partial_payment_month" validate:"required,min=1,max=12"`
	PartialPaymentYear          int16     `json:"partial_payment_year" validate:"required,min=2000"`
	PartialPaymentObligationIDR int       `json:"partial_payment_obligation_idr" validate:"required,min=1"`
	PartialPaymentNote          *string   `json:"partial_payment_note,omitempty"`
}

type PartialPaymentEntryCreateDTO struct {
	AmountIDR int        `json:"amount_idr" validate:"required,min=1"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	Note      *string    `json:"note,omitempty"`
}

type PartialPaymentEntryResponse struct {
	PartialPaymentEntryID               uuid.UUID  `json:"partial_payment_entry_id"`
	PartialPaymentEntryAmountIDR        int        `json:"partial_payment_entry_amount_idr"`
	PartialPaymentEntryPaidAt           time.Time  `json:"partial_payment_entry_paid_at"`
	PartialPaymentEntryRecordedByUserID *uuid.UUID `json:"partial_payment_entry_recorded_by_user_id,omitempty"`
	PartialPaymentEntryNote             *string    `json:"partial_payment_entry_note,omitempty"`
	PartialPaymentEntryCreatedAt        time.Time  `json:"partial_payment_entry_created_at"`
}

// Response selalu ikut paid/remaining hasil hitung ledger — klien tidak
// perlu (dan tidak boleh) menjumlah sendiri.
type PartialPaymentResponse struct {
	PartialPaymentID            uuid.UUID  `json:"partial_payment_id"`
	PartialPaymentBusinessID    uuid.UUID  `json:"partial_payment_business_id"`
	PartialPaymentMonth         int16      `json:"partial_payment_month"`
	PartialPaymentYear          int16      `json:"partial_payment_year"`
	PartialPaymentObligationIDR int        `json:"partial_payment_obligation_idr"`
	PartialPaymentPaidIDR       int        `json:"partial_payment_paid_idr"`
	PartialPaymentRemainingIDR  int        `json:"partial_payment_remaining_idr"`
	PartialPaymentStatus        string     `json:"partial_payment_status"`
	PartialPaymentCompletedAt   *time.Time `json:"partial_payment_completed_at,omitempty"`
	PartialPaymentNote          *string    `json:"partial_payment_note,omitempty"`

	PartialPaymentEntries []PartialPaymentEntryResponse `json:"partial_payment_entries,omitempty"`

	PartialPaymentCreatedAt time.Time  `json:"partial_payment_created_at"`
	PartialPaymentUpdatedAt time.Time  `json:"partial_payment_updated_at"`
	PartialPaymentDeletedAt *time.Time `json:"partial_payment_deleted_at,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToPartialPaymentEntryResponse(e model.PartialPaymentEntryModel) PartialPaymentEntryResponse {
	return PartialPaymentEntryResponse{
		PartialPaymentEntryID:               e.PartialPaymentEntryID,
		PartialPaymentEntryAmountIDR:        e.PartialPaymentEntryAmountIDR,
		PartialPaymentEntryPaidAt:           e.PartialPaymentEntryPaidAt,
		PartialPaymentEntryRecordedByUserID: e.PartialPaymentEntryRecordedByUserID,
		PartialPaymentEntryNote:             e.PartialPaymentEntryNote,
		PartialPaymentEntryCreatedAt:        e.PartialPaymentEntryCreatedAt,
	}
}

func ToPartialPaymentResponse(m model.PartialPaymentModel) PartialPaymentResponse {
	entries := make([]PartialPaymentEntryResponse, 0, len(m.PartialPaymentEntries))
	for _, e := range m.PartialPaymentEntries {
		entries = append(entries, ToPartialPaymentEntryResponse(e))
	}
	paid := service.SumEntries(m.PartialPaymentEntries)
	return PartialPaymentResponse{
		PartialPaymentID:            m.PartialPaymentID,
		PartialPaymentBusinessID:    m.PartialPaymentBusinessID,
		PartialPaymentMonth:         m.PartialPaymentMonth,
		PartialPaymentYear:          m.PartialPaymentYear,
		PartialPaymentObligationIDR: m.PartialPaymentObligationIDR,
		PartialPaymentPaidIDR:       paid,
		PartialPaymentRemainingIDR:  service.Remaining(m.PartialPaymentObligationIDR, m.PartialPaymentEntries),
		PartialPaymentStatus:        string(m.PartialPaymentStatus),
		PartialPaymentCompletedAt:   m.PartialPaymentCompletedAt,
		PartialPaymentNote:          m.PartialPaymentNote,
		PartialPaymentEntries:       entries,
		PartialPaymentCreatedAt:     m.PartialPaymentCreatedAt,
		PartialPaymentUpdatedAt:     m.PartialPaymentUpdatedAt,
		PartialPaymentDeletedAt:     toPtrTimeFromDeletedAt(m.PartialPaymentDeletedAt),
	}
}

func ToPartialPaymentResponses(list []model.PartialPaymentModel) []PartialPaymentResponse {
	out := make([]PartialPaymentResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToPartialPaymentResponse(m))
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
