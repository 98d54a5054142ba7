// file: internals/features/finance/partial_payments/service/ledger.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"plazaku_backend/internals/features/finance/partial_payments/model"
)

// =======================================================
// LEDGER CICILAN — paid/remaining SELALU dihitung dari entri
// =======================================================

var (
	// Setoran <= 0 atau melebihi sisa kewajiban
	ErrInvalidEntryAmount = errors.New("setoran harus > 0 dan tidak boleh melebihi sisa kewajiban")
	// Append ke plan yang bukan active
	ErrPlanNotActive = errors.New("plan cicilan sudah tidak aktif")
	// Sudah ada plan aktif untuk tuple (business, month, year)
	ErrDuplicateActivePlan = errors.New("business tersebut sudah punya plan cicilan aktif untuk periode yang sama")
)

// EnsureNoActivePlan: keputusan pre-check duplikat dari hasil hitung plan
// aktif. Race tetap ditangkap unique index uq_partial_payment_active.
func EnsureNoActivePlan(activeCount int64) error {
	if activeCount > 0 {
		return ErrDuplicateActivePlan
	}
	return nil
}

// SumEntries = Σ nominal entri (nilai paid yang sebenarnya).
func SumEntries(entries []model.PartialPaymentEntryModel) int {
	sum := 0
	for _, e := range entries {
		sum += e.PartialPaymentEntryAmountIDR
	}
	return sum
}

// Remaining = kewajiban - Σ entri, floor 0.
func Remaining(obligationIDR int, entries []model.PartialPaymentEntryModel) int {
	r := obligationIDR - SumEntries(entries)
	if r < 0 {
		return 0
	}
	return r
}

// ValidateAppend: setoran ditolak TANPA mutasi apa pun kalau tidak valid.
func ValidateAppend(plan *model.PartialPaymentModel, entries []model.PartialPaymentEntryModel, amountIDR int) error {
	if plan.PartialPaymentStatus != model.PartialPaymentStatusActive {
		return ErrPlanNotActive
	}
	if amountIDR <= 0 || amountIDR > Remaining(plan.PartialPaymentObligationIDR, entries) {
		return ErrInvalidEntryAmount
	}
	return nil
}

// AppendEntry: tambah setoran dalam SATU transaksi dengan lock baris plan
// (FOR UPDATE) supaya dua setoran paralel tidak sama-sama lolos validasi
// sisa. Status completed diturunkan dari ledger, bukan di-set manual.
func AppendEntry(db *gorm.DB, planID uuid.UUID, amountIDR int, paidAt *time.Time, recordedBy *uuid.UUID, note *string) (*model.PartialPaymentModel, *model.PartialPaymentEntryModel, error) {
	var plan model.PartialPaymentModel
	var entry model.PartialPaymentEntryModel

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&plan, "partial_payment_id = ?", planID).Error; err != nil {
			return err
		}

		var entries []model.PartialPaymentEntryModel
		if err := tx.Where("partial_payment_entry_parent_id = ?", planID).
			Order("partial_payment_entry_created_at ASC").
			Find(&entries).Error; err != nil {
			return err
		}

		if err := ValidateAppend(&plan, entries, amountIDR); err != nil {
			return err
		}

		now := time.Now()
		if paidAt == nil {
			paidAt = &now
		}
		entry = model.PartialPaymentEntryModel{
			PartialPaymentEntryParentID:         planID,
			PartialPaymentEntryAmountIDR:        amountIDR,
			PartialPaymentEntryPaidAt:           *paidAt,
			PartialPaymentEntryRecordedByUserID: recordedBy,
			PartialPaymentEntryNote:             note,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		// Hitung ulang DARI ledger (termasuk entri baru), bukan akumulasi kolom
		entries = append(entries, entry)
		if Remaining(plan.PartialPaymentObligationIDR, entries) == 0 {
			plan.PartialPaymentStatus = model.PartialPaymentStatusCompleted
			plan.PartialPaymentCompletedAt = &now
			if err := tx.Save(&plan).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &plan, &entry, nil
}
