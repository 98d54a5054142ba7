// file: internals/features/finance/meter_readings/service/reading.go
package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	billService "plazaku_backend/internals/features/finance/bills/service"
	"plazaku_backend/internals/features/finance/meter_readings/model"
	paymentModel "plazaku_backend/internals/features/finance/payments/model"
	helper "plazaku_backend/internals/helpers"
)

// =======================================================
// METER READING — hitung pemakaian & alokasi nomor lazy
// =======================================================

// ErrInvoiceNumberConflict = retry tunggal alokasi nomor tetap bentrok.
// Controller memetakan ini ke TRANSIENT_WRITE_CONFLICT (client boleh ulang).
var ErrInvoiceNumberConflict = errors.New("invoice number allocation conflict")

// ComputeUsage: units = current - previous (floor 0), amount = units × rate.
func ComputeUsage(m *model.MeterReadingModel) {
	units := m.MeterReadingCurrent - m.MeterReadingPrevious
	if units < 0 {
		units = 0
	}
	m.MeterReadingUnits = units
	m.MeterReadingAmountIDR = billService.UtilityAmount(units, m.MeterReadingRatePerUnitIDR)
}

func invoicePrefix(kind model.MeterKind) string {
	if kind == model.MeterKindGas {
		return billService.PrefixGasMR
	}
	return billService.PrefixElectricityMR
}

func allocateInvoiceNumberTx(tx *gorm.DB, prefix string, year int) (string, error) {
	scope := fmt.Sprintf("%s-%04d-", prefix, year)
	var numbers []string
	if err := tx.Model(&model.MeterReadingModel{}).
		Where("meter_reading_invoice_number LIKE ?", scope+"%").
		Pluck("meter_reading_invoice_number", &numbers).Error; err != nil {
		return "", err
	}
	return billService.FormatBillNumber(prefix, year, billService.NextSequence(numbers, prefix, year)), nil
}

// EnsureInvoiceNumber: alokasi nomor LAZY — pertama kali invoice diminta.
// Sudah punya nomor → no-op (nomor immutable). Bentrok unique index di-retry
// SEKALI; masih bentrok → ErrInvoiceNumberConflict tanpa mengubah record.
func EnsureInvoiceNumber(db *gorm.DB, m *model.MeterReadingModel) error {
	if m.MeterReadingInvoiceNumber != nil {
		return nil
	}
	prefix := invoicePrefix(m.MeterReadingKind)
	year := time.Now().Year()

	for attempt := 0; attempt < 2; attempt++ {
		err := db.Transaction(func(tx *gorm.DB) error {
			num, err := allocateInvoiceNumberTx(tx, prefix, year)
			if err != nil {
				return err
			}
			m.MeterReadingInvoiceNumber = &num
			return tx.Save(m).Error
		})
		if err == nil {
			return nil
		}
		m.MeterReadingInvoiceNumber = nil
		if helper.IsUniqueViolation(err) {
			continue
		}
		return err
	}
	return ErrInvoiceNumberConflict
}

// MarkReadingPaid: transisi ke paid + materialisasi payment record dalam
// transaksi yang sama (pola sama dgn bill lifecycle). Caller wajib sudah
// memanggil EnsureInvoiceNumber — perubahan status butuh nomor terisi.
func MarkReadingPaid(tx *gorm.DB, m *model.MeterReadingModel, method paymentModel.PaymentMethod, by billService.MarkedBy, paidAt *time.Time, note *string) (*paymentModel.PaymentModel, error) {
	now := time.Now()
	if paidAt == nil {
		paidAt = &now
	}

	m.MeterReadingStatus = model.MeterReadingStatusPaid
	m.MeterReadingPaidAt = paidAt
	if err := tx.Save(m).Error; err != nil {
		return nil, err
	}

	status := paymentModel.PaymentStatusConfirmed
	if by.Role != "admin" {
		status = paymentModel.PaymentStatusPendingApproval
	}

	pay := paymentModel.PaymentModel{
		PaymentBusinessID:     m.MeterReadingBusinessID,
		PaymentMeterReadingID: &m.MeterReadingID,
		PaymentAmountIDR:      m.MeterReadingAmountIDR,
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

// MarkReadingWaveoff: kewajiban diputihkan, tanpa payment record.
func MarkReadingWaveoff(tx *gorm.DB, m *model.MeterReadingModel, note *string) error {
	m.MeterReadingStatus = model.MeterReadingStatusWaveoff
	if note != nil {
		m.MeterReadingNote = note
	}
	return tx.Save(m).Error
}

// ReadingDocument = payload invoice meter reading utk renderer dokumen.
// Denda 5% dari NOMINAL invoice ini — beda dgn tagihan standar yang
// 10% dari arrears.
type ReadingDocument struct {
	Reading          model.MeterReadingModel `json:"reading"`
	ArrearsIDR       int64                   `json:"arrears_idr"`
	LateSurchargeIDR int64                   `json:"late_surcharge_idr"`
	AmountDueIDR     int64                   `json:"amount_due_idr"`
}

// ReadingSurchargeIDR: denda invoice meter reading = 5% × nominal pemakaian.
func ReadingSurchargeIDR(amountIDR int) int64 {
	return billService.LateSurcharge(int64(amountIDR), billService.LateSurchargePctMeterReading)
}

// BuildReadingDocument: nomor invoice dijamin terisi dulu (lazy alloc),
// lalu arrears + denda dihitung.
func BuildReadingDocument(db *gorm.DB, m *model.MeterReadingModel) (ReadingDocument, error) {
	if err := EnsureInvoiceNumber(db, m); err != nil {
		return ReadingDocument{}, err
	}
	arrears, err := billService.ArrearsBefore(db, m.MeterReadingBusinessID, m.MeterReadingReadAt)
	if err != nil {
		return ReadingDocument{}, err
	}
	surcharge := ReadingSurchargeIDR(m.MeterReadingAmountIDR)
	return ReadingDocument{
		Reading:          *m,
		ArrearsIDR:       arrears,
		LateSurchargeIDR: surcharge,
		AmountDueIDR:     int64(m.MeterReadingAmountIDR) + arrears + surcharge,
	}, nil
}
