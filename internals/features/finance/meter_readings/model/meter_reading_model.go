// file: internals/features/finance/meter_readings/model/meter_reading_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUM
// =========================================================

type MeterKind string

const (
	MeterKindElectricity MeterKind = "electricity"
	MeterKindGas         MeterKind = "gas"
)

type MeterReadingStatus string

const (
	MeterReadingStatusPending MeterReadingStatus = "pending"
	MeterReadingStatusPaid    MeterReadingStatus = "paid"
	MeterReadingStatusWaveoff MeterReadingStatus = "waveoff"
)

// =========================================================
// MODEL
// =========================================================

// MeterReadingModel = pencatatan meteran listrik/gas per business per periode.
// Nomor invoice (ELE-MR / GAS-MR) TIDAK dialokasikan saat catat — baru saat
// invoice pertama kali diminta (lazy). Sebelum itu kolomnya NULL.
// Invariant: meter_reading_amount_idr = units × rate (dihitung service).
type MeterReadingModel struct {
	MeterReadingID uuid.UUID `gorm:"column:meter_reading_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"meter_reading_id"`

	MeterReadingBusinessID uuid.UUID `gorm:"column:meter_reading_business_id;type:uuid;not null;index:ix_meter_reading_business;uniqueIndex:uq_meter_reading_period,priority:1" json:"meter_reading_business_id"`

	MeterReadingKind  MeterKind `gorm:"column:meter_reading_kind;type:varchar(20);not null;uniqueIndex:uq_meter_reading_period,priority:2" json:"meter_reading_kind"`
	MeterReadingMonth int16     `gorm:"column:meter_reading_month;type:smallint;not null;uniqueIndex:uq_meter_reading_period,priority:3" json:"meter_reading_month"`
	MeterReadingYear  int16     `gorm:"column:meter_reading_year;type:smallint;not null;uniqueIndex:uq_meter_reading_period,priority:4" json:"meter_reading_year"`

	// Angka meteran; current >= previous divalidasi di DTO/service
	MeterReadingPrevious int `gorm:"column:meter_reading_previous;not null;check:meter_reading_previous>=0" json:"meter_reading_previous"`
	MeterReadingCurrent  int `gorm:"column:meter_reading_current;not null;check:meter_reading_current>=0" json:"meter_reading_current"`

	MeterReadingUnits          int `gorm:"column:meter_reading_units;not null;default:0" json:"meter_reading_units"`
	MeterReadingRatePerUnitIDR int `gorm:"column:meter_reading_rate_per_unit_idr;not null;check:meter_reading_rate_per_unit_idr>=0" json:"meter_reading_rate_per_unit_idr"`
	MeterReadingAmountIDR      int `gorm:"column:meter_reading_amount_idr;not null;default:0" json:"meter_reading_amount_idr"`

	// NULL sampai invoice diminta; setelah terisi tidak pernah berubah
	MeterReadingInvoiceNumber *string `gorm:"column:meter_reading_invoice_number;type:varchar(30);uniqueIndex:uq_meter_reading_invoice_number" json:"meter_reading_invoice_number,omitempty"`

	MeterReadingStatus MeterReadingStatus `gorm:"column:meter_reading_status;type:varchar(20);not null;default:'pending';index:ix_meter_reading_status" json:"meter_reading_status"`
	MeterReadingPaidAt *time.Time         `gorm:"column:meter_reading_paid_at" json:"meter_reading_paid_at,omitempty"`

	MeterReadingReadAt time.Time `gorm:"column:meter_reading_read_at;type:date;not null" json:"meter_reading_read_at"`
	MeterReadingNote   *string   `gorm:"column:meter_reading_note;type:text" json:"meter_reading_note,omitempty"`

	MeterReadingCreatedAt time.Time      `gorm:"column:meter_reading_created_at;not null;default:now()" json:"meter_reading_created_at"`
	MeterReadingUpdatedAt time.Time      `gorm:"column:meter_reading_updated_at;not null;default:now()" json:"meter_reading_updated_at"`
	MeterReadingDeletedAt gorm.DeletedAt `gorm:"column:meter_reading_deleted_at;index" json:"-"`
}

func (MeterReadingModel) TableName() string {
	return "meter_readings"
}

func (m *MeterReadingModel) BeforeCreate(tx *gorm.DB) error {
	if m.MeterReadingID == uuid.Nil {
		m.MeterReadingID = uuid.New()
	}
	now := time.Now()
	if m.MeterReadingCreatedAt.IsZero() {
		m.MeterReadingCreatedAt = now
	}
	m.MeterReadingUpdatedAt = now
	return nil
}

func (m *MeterReadingModel) BeforeUpdate(tx *gorm.DB) error {
	m.MeterReadingUpdatedAt = time.Now()
	return nil
}
