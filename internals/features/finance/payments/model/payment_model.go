// file: internals/features/finance/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentModel = kuitansi immutable yang dimaterialisasi saat tagihan
// (bill atau meter reading) ditandai lunas. Tidak pernah di-update setelah
// dibuat kecuali approve setoran tenant (pending_approval → confirmed).
// Perpindahan status tagihan KELUAR dari paid tidak menghapus row ini —
// kuitansi tetap jadi riwayat.
type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"payment_id"`

	PaymentBusinessID uuid.UUID `gorm:"column:payment_business_id;type:uuid;not null;index:ix_payment_business" json:"payment_business_id"`

	// Referensi sumber (salah satu terisi)
	PaymentBillID         *uuid.UUID `gorm:"column:payment_bill_id;type:uuid;index" json:"payment_bill_id,omitempty"`
	PaymentMeterReadingID *uuid.UUID `gorm:"column:payment_meter_reading_id;type:uuid;index" json:"payment_meter_reading_id,omitempty"`

	PaymentAmountIDR int           `gorm:"column:payment_amount_idr;not null;check:payment_amount_idr>=0" json:"payment_amount_idr"`
	PaymentMethod    PaymentMethod `gorm:"column:payment_method;type:varchar(20);not null;default:'cash'" json:"payment_method"`
	PaymentStatus    PaymentStatus `gorm:"column:payment_status;type:varchar(20);not null;default:'confirmed';index:ix_payment_status" json:"payment_status"`

	PaymentPaidAt time.Time `gorm:"column:payment_paid_at;not null;default:now()" json:"payment_paid_at"`

	// Audit: siapa yang menandai lunas (admin vs tenant self-service)
	PaymentMarkedByUserID *uuid.UUID `gorm:"column:payment_marked_by_user_id;type:uuid" json:"payment_marked_by_user_id,omitempty"`
	PaymentMarkedByRole   string     `gorm:"column:payment_marked_by_role;type:varchar(20);not null;default:'admin'" json:"payment_marked_by_role"`

	// Midtrans order id (untuk pembayaran via gateway)
	PaymentOrderID *string `gorm:"column:payment_order_id;type:varchar(80);index" json:"payment_order_id,omitempty"`

	PaymentNote *string `gorm:"column:payment_note;type:text" json:"payment_note,omitempty"`

	PaymentCreatedAt time.Time      `gorm:"column:payment_created_at;not null;default:now()" json:"payment_created_at"`
	PaymentUpdatedAt time.Time      `gorm:"column:payment_updated_at;not null;default:now()" json:"payment_updated_at"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index" json:"-"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

func (m *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	if m.PaymentID == uuid.Nil {
		m.PaymentID = uuid.New()
	}
	now := time.Now()
	if m.PaymentCreatedAt.IsZero() {
		m.PaymentCreatedAt = now
	}
	if m.PaymentPaidAt.IsZero() {
		m.PaymentPaidAt = now
	}
	m.PaymentUpdatedAt = now
	return nil
}

func (m *PaymentModel) BeforeUpdate(tx *gorm.DB) error {
	m.PaymentUpdatedAt = time.Now()
	return nil
}
