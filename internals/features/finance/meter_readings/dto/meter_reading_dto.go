// file: internals/features/finance/meter_readings/dto/meter_reading_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"plazaku_backend/internals/features/finance/meter_readings/model"
)

////////////////////////////////////////////////////////////////////////////////
// METER READINGS — DTO
////////////////////////////////////////////////////////////////////////////////

type MeterReadingCreateDTO struct {
	MeterReadingBusinessID uuid.UUID `json:"meter_reading_business_id" validate:"required"`
	MeterReadingKind       string    `json:"meter_reading_kind" validate:"required,oneof=electricity gas"`
	MeterReadingMonth      int16     `json:"meter_reading_month" validate:"required,min=1,max=12"`
	MeterReadingYear       int16     `json:"meter_reading_year" validate:"required,min=2000"`

	MeterReadingPrevious       int `json:"meter_reading_previous" validate:"min=0"`
	MeterReadingCurrent        int `json:"meter_reading_current" validate:"min=0"`
	MeterReadingRatePerUnitIDR int `json:"meter_reading_rate_per_unit_idr" validate:"min=0"`

	MeterReadingReadAt *time.Time `json:"meter_reading_read_at,omitempty"` // nil → today
	MeterReadingNote   *string    `json:"meter_reading_note,omitempty"`
}

// Update angka meteran / tarif — units & amount dihitung ulang service.
// Nomor invoice yang sudah teralokasi TIDAK bisa diubah lewat sini.
type MeterReadingUpdateDTO struct {
	MeterReadingPrevious       *int       `json:"meter_reading_previous,omitempty" validate:"omitempty,min=0"`
	MeterReadingCurrent        *int       `json:"meter_reading_current,omitempty" validate:"omitempty,min=0"`
	MeterReadingRatePerUnitIDR *int       `json:"meter_reading_rate_per_unit_idr,omitempty" validate:"omitempty,min=0"`
	MeterReadingReadAt         *time.Time `json:"meter_reading_read_at,omitempty"`
	MeterReadingNote           *string    `json:"meter_reading_note,omitempty"`
}

type MeterReadingMarkPaidDTO struct {
	PaidAt *time.Time `json:"paid_at,omitempty"`
	Method *string    `json:"method,omitempty" validate:"omitempty,oneof=cash bank_transfer gateway other"`
	Note   *string    `json:"note,omitempty"`
}

type MeterReadingResponse struct {
	MeterReadingID         uuid.UUID `json:"meter_reading_id"`
	MeterReadingBusinessID uuid.UUID `json:"meter_reading_business_id"`
	MeterReadingKind       string    `json:"meter_reading_kind"`
	MeterReadingMonth      int16     `json:"meter_reading_month"`
	MeterReadingYear       int16     `json:"meter_reading_year"`

	MeterReadingPrevious       int `json:"meter_reading_previous"`
	MeterReadingCurrent        int `json:"meter_reading_current"`
	MeterReadingUnits          int `json:"meter_reading_units"`
	MeterReadingRatePerUnitIDR int `json:"meter_reading_rate_per_unit_idr"`
	MeterReadingAmountIDR      int `json:"meter_reading_amount_idr"`

	MeterReadingInvoiceNumber *string `json:"meter_reading_invoice_number,omitempty"`

	MeterReadingStatus string     `json:"meter_reading_status"`
	MeterReadingPaidAt *time.Time `json:"meter_reading_paid_at,omitempty"`

	MeterReadingReadAt time.Time `json:"meter_reading_read_at"`
	MeterReadingNote   *string   `json:"meter_reading_note,omitempty"`

	MeterReadingCreatedAt time.Time  `json:"meter_reading_created_at"`
	MeterReadingUpdatedAt time.Time  `json:"meter_reading_updated_at"`
	MeterReadingDeletedAt *time.Time `json:"meter_reading_deleted_at,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToMeterReadingResponse(m model.MeterReadingModel) MeterReadingResponse {
	return MeterReadingResponse{
		MeterReadingID:             m.MeterReadingID,
		MeterReadingBusinessID:     m.MeterReadingBusinessID,
		MeterReadingKind:           string(m.MeterReadingKind),
		MeterReadingMonth:          m.MeterReadingMonth,
		MeterReadingYear:           m.MeterReadingYear,
		MeterReadingPrevious:       m.MeterReadingPrevious,
		MeterReadingCurrent:        m.MeterReadingCurrent,
		MeterReadingUnits:          m.MeterReadingUnits,
		MeterReadingRatePerUnitIDR: m.MeterReadingRatePerUnitIDR,
		MeterReadingAmountIDR:      m.MeterReadingAmountIDR,
		MeterReadingInvoiceNumber:  m.MeterReadingInvoiceNumber,
		MeterReadingStatus:         string(m.MeterReadingStatus),
		MeterReadingPaidAt:         m.MeterReadingPaidAt,
		MeterReadingReadAt:         m.MeterReadingReadAt,
		MeterReadingNote:           m.MeterReadingNote,
		MeterReadingCreatedAt:      m.MeterReadingCreatedAt,
		MeterReadingUpdatedAt:      m.MeterReadingUpdatedAt,
		MeterReadingDeletedAt:      toPtrTimeFromDeletedAt(m.MeterReadingDeletedAt),
	}
}

func ToMeterReadingResponses(list []model.MeterReadingModel) []MeterReadingResponse {
	out := make([]MeterReadingResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToMeterReadingResponse(m))
	}
	return out
}

func ApplyMeterReadingUpdate(m *model.MeterReadingModel, d MeterReadingUpdateDTO) {
	if d.MeterReadingPrevious != nil {
		m.MeterReadingPrevious = *d.MeterReadingPrevious
	}
	if d.MeterReadingCurrent != nil {
		m.MeterReadingCurrent = *d.MeterReadingCurrent
	}
	if d.MeterReadingRatePerUnitIDR != nil {
		m.MeterReadingRatePerUnitIDR = *d.MeterReadingRatePerUnitIDR
	}
	if d.MeterReadingReadAt != nil {
		m.MeterReadingReadAt = *d.MeterReadingReadAt
	}
	if d.MeterReadingNote != nil {
		m.MeterReadingNote = d.MeterReadingNote
	}
}

func toPtrTimeFromDeletedAt(d gorm.DeletedAt) *time.Time {
	if d.Valid {
		t := d.Time
		return &t
	}
	return nil
}
