// file: internals/features/finance/bills/service/lifecycle.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"plazaku_backend/internals/features/finance/bills/model"
	paymentModel "plazaku_backend/internals/features/finance/payments/model"
)

// =======================================================
// LIFECYCLE — pending → paid | waveoff (overdue informasional)
// =======================================================

// MarkedBy = identitas yang menandai lunas (audit trail di payment record).
type MarkedBy struct {
	UserID *uuid.UUID
	Role   string // admin | tenant
}

// MarkBillPaid: transisi ke paid + materialisasi PaymentRecord dalam SATU
// transaksi. Setoran tenant self-service masuk pending_approval; admin
// langsung confirmed. Dipanggil juga oleh webhook gateway.
func MarkBillPaid(tx *gorm.DB, bill *model.BillModel, method paymentModel.PaymentMethod, by MarkedBy, paidAt *time.Time, note *string) (*paymentModel.PaymentModel, error) {
	now := time.Now()
	if paidAt == nil {
		paidAt = &now
	}

	bill.BillStatus = model.BillStatusPaid
	bill.BillPaidAt = paidAt
	if err := tx.Save(bill).Error; err != nil {
		return nil, err
	}

	status := paymentModel.PaymentStatusConfirmed
	if by.Role != "admin" {
		status = paymentModel.PaymentStatusPendingApproval
	}

	pay := paymentModel.PaymentModel{
		PaymentBusinessID:     bill.BillBusinessID,
		PaymentBillID:         &bill.BillID,
		PaymentAmountIDR:      bill.BillTotalIDR,
		PaymentMethod:         method,
		PaymentStatus:         status,
		PaymentPaidAt:         *paidAt,
		PaymentMarkedByUserID: by.UserID,
		PaymentMarkedByRole:   by.Role,
		PaymentNote:           note,
	}
	if err := tx.Create(&pay).Error; err != nil {
		return nil, err
	}
	return &pay, nil
}

// MarkBillWaveoff: kewajiban diputihkan. Tidak ada payment record.
func MarkBillWaveoff(tx *gorm.DB, bill *model.BillModel, note *string) error {
	bill.BillStatus = model.BillStatusWaveoff
	if note != nil {
		bill.BillNote = note
	}
	return tx.Save(bill).Error
}

// MarkBillPending: transisi balik dari paid/waveoff. Payment record yang
// sudah dimaterialisasi TIDAK ditarik — tetap jadi riwayat.
func MarkBillPending(tx *gorm.DB, bill *model.BillModel, note *string) error {
	bill.BillStatus = model.BillStatusPending
	bill.BillPaidAt = nil
	if note != nil {
		bill.BillNote = note
	}
	return tx.Save(bill).Error
}

// MarkBillOverdue: diset oleh jalur berbasis waktu (bukan state machine utama).
func MarkBillOverdue(tx *gorm.DB, bill *model.BillModel) error {
	if bill.BillStatus != model.BillStatusPending {
		return nil
	}
	bill.BillStatus = model.BillStatusOverdue
	return tx.Save(bill).Error
}
