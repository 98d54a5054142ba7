// file: internals/features/finance/partial_payments/model/partial_payment_entry_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartialPaymentEntryModel = satu setoran cicilan. APPEND-ONLY:
// tidak ada update/delete — koreksi dilakukan dengan cancel plan + buat baru.
type PartialPaymentEntryModel struct {
	PartialPaymentEntryID uuid.UUID `gorm:"column:partial_payment_entry_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"partial_payment_entry_id"`

	PartialPaymentEntryParentID uuid.UUID `gorm:"column:partial_payment_entry_parent_id;type:uuid;not null;index:ix_partial_payment_entry_parent" json:"partial_payment_entry_parent_id"`

	PartialPaymentEntryAmountIDR int `gorm:"column:partial_payment_entry_amount_idr;not null;check:partial_payment_entry_amount_idr>0" json:"partial_payment_entry_amount_idr"`

	PartialPaymentEntryPaidAt time.Time `gorm:"column:partial_payment_entry_paid_at;not null" json:"partial_payment_entry_paid_at"`

	PartialPaymentEntryRecordedByUserID *uuid.UUID `gorm:"column:partial_payment_entry_recorded_by_user_id;type:uuid" json:"partial_payment_entry_recorded_by_user_id,omitempty"`

	PartialPaymentEntryNote *string `gorm:"column:partial_payment_entry_note;type:text" json:"partial_payment_entry_note,omitempty"`

	PartialPaymentEntryCreatedAt time.Time `gorm:"column:partial_payment_entry_created_at;not null;default:now()" json:"partial_payment_entry_created_at"`
}

func (PartialPaymentEntryModel) TableName() string {
	return "partial_payment_entries"
}

func (m *PartialPaymentEntryModel) BeforeCreate(tx *gorm.DB) error {
	if m.PartialPaymentEntryID == uuid.Nil {
		m.PartialPaymentEntryID = uuid.New()
	}
	if m.PartialPaymentEntryCreatedAt.IsZero() {
		m.PartialPaymentEntryCreatedAt = time.Now()
	}
	return nil
}
