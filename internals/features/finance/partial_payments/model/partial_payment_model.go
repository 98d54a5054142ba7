// file: internals/features/finance/partial_payments/model/partial_payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUM
// =========================================================

type PartialPaymentStatus string

const (
	PartialPaymentStatusActive    PartialPaymentStatus = "active"
	PartialPaymentStatusCompleted PartialPaymentStatus = "completed"
	PartialPaymentStatusCancelled PartialPaymentStatus = "cancelled"
)

// =========================================================
// MODEL — header cicilan
// =========================================================

// PartialPaymentModel = rencana cicilan sewa satu business pada satu periode.
// Satu (business, month, year) maksimal satu plan aktif — dijaga partial
// unique index uq_partial_payment_active (DDL di
// internals/databases/migrations/20260301_partial_unique_indexes.sql;
// AutoMigrate tidak mendukung index ber-WHERE).
//
// Paid/remaining TIDAK disimpan sebagai kolom — selalu dihitung ulang dari
// entri (ledger sebagai satu-satunya sumber kebenaran).
type PartialPaymentModel struct {
	PartialPaymentID uuid.UUID `gorm:"column:partial_payment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"partial_payment_id"`

	PartialPaymentBusinessID uuid.UUID `gorm:"column:partial_payment_business_id;type:uuid;not null;index:ix_partial_payment_business" json:"partial_payment_business_id"`

	PartialPaymentMonth int16 `gorm:"column:partial_payment_month;type:smallint;not null" json:"partial_payment_month"`
	PartialPaymentYear  int16 `gorm:"column:partial_payment_year;type:smallint;not null" json:"partial_payment_year"`

	// Kewajiban sewa penuh periode tsb
	PartialPaymentObligationIDR int `gorm:"column:partial_payment_obligation_idr;not null;check:partial_payment_obligation_idr>0" json:"partial_payment_obligation_idr"`

	PartialPaymentStatus PartialPaymentStatus `gorm:"column:partial_payment_status;type:varchar(20);not null;default:'active';index:ix_partial_payment_status" json:"partial_payment_status"`

	PartialPaymentCompletedAt *time.Time `gorm:"column:partial_payment_completed_at" json:"partial_payment_completed_at,omitempty"`

	PartialPaymentNote *string `gorm:"column:partial_payment_note;type:text" json:"partial_payment_note,omitempty"`

	PartialPaymentCreatedAt time.Time      `gorm:"column:partial_payment_created_at;not null;default:now()" json:"partial_payment_created_at"`
	PartialPaymentUpdatedAt time.Time      `gorm:"column:partial_payment_updated_at;not null;default:now()" json:"partial_payment_updated_at"`
	PartialPaymentDeletedAt gorm.DeletedAt `gorm:"column:partial_payment_deleted_at;index" json:"-"`

	// Ledger (preload opsional)
	PartialPaymentEntries []PartialPaymentEntryModel `gorm:"foreignKey:PartialPaymentEntryParentID;references:PartialPaymentID" json:"partial_payment_entries,omitempty"`
}

func (PartialPaymentModel) TableName() string {
	return "partial_payments"
}

func (m *PartialPaymentModel) BeforeCreate(tx *gorm.DB) error {
	if m.PartialPaymentID == uuid.Nil {
		m.PartialPaymentID = uuid.New()
	}
	now := time.Now()
	if m.PartialPaymentCreatedAt.IsZero() {
		m.PartialPaymentCreatedAt = now
	}
	m.PartialPaymentUpdatedAt = now
	return nil
}

func (m *PartialPaymentModel) BeforeUpdate(tx *gorm.DB) error {
	m.PartialPaymentUpdatedAt = time.Now()
	return nil
}
