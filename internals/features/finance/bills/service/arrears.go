// file: internals/features/finance/bills/service/arrears.go
package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"plazaku_backend/internals/features/finance/bills/model"
)

// =======================================================
// ARREARS & DENDA KETERLAMBATAN (untuk payload dokumen)
// =======================================================

// Persentase denda: 10% dari arrears untuk tagihan standar,
// 5% dari nominal untuk invoice meter reading.
const (
	LateSurchargePctBill         = 10
	LateSurchargePctMeterReading = 5
)

// ArrearsBefore = Σ tagihan belum lunas milik business yang terbit SEBELUM
// tanggal acuan (tagihan berjalan tidak ikut dihitung).
func ArrearsBefore(db *gorm.DB, businessID uuid.UUID, issuedBefore time.Time) (int64, error) {
	var sum int64
	err := db.Model(&model.BillModel{}).
		Where("bill_business_id = ?", businessID).
		Where("bill_status IN ?", []model.BillStatus{model.BillStatusPending, model.BillStatusOverdue}).
		Where("bill_issue_date < ?", issuedBefore).
		Select("COALESCE(SUM(bill_total_idr), 0)").
		Scan(&sum).Error
	return sum, err
}

// LateSurcharge: persen × nominal, pembulatan ke bawah.
func LateSurcharge(amountIDR int64, pct int) int64 {
	if amountIDR <= 0 || pct <= 0 {
		return 0
	}
	return amountIDR * int64(pct) / 100
}

// BillDocument = payload tagihan yang sudah direkonsiliasi untuk renderer
// dokumen eksternal. Layout bukan urusan layer ini.
type BillDocument struct {
	Bill             model.BillModel `json:"bill"`
	ArrearsIDR       int64           `json:"arrears_idr"`
	LateSurchargeIDR int64           `json:"late_surcharge_idr"`
	AmountDueIDR     int64           `json:"amount_due_idr"`
}

// BuildBillDocument menghitung arrears + denda dan total yang harus dibayar.
func BuildBillDocument(db *gorm.DB, bill model.BillModel) (BillDocument, error) {
	arrears, err := ArrearsBefore(db, bill.BillBusinessID, bill.BillIssueDate)
	if err != nil {
		return BillDocument{}, err
	}
	surcharge := LateSurcharge(arrears, LateSurchargePctBill)
	return BillDocument{
		Bill:             bill,
		ArrearsIDR:       arrears,
		LateSurchargeIDR: surcharge,
		AmountDueIDR:     int64(bill.BillTotalIDR) + arrears + surcharge,
	}, nil
}
