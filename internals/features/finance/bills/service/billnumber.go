// file: internals/features/finance/bills/service/billnumber.go
package service

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"plazaku_backend/internals/features/finance/bills/model"
	helper "plazaku_backend/internals/helpers"
)

// =======================================================
// NOMOR TAGIHAN — {PREFIX}-{YYYY}-{NNN}
// Scope penomoran per prefix+tahun, reset tiap awal tahun.
// =======================================================

const (
	PrefixRent        = "RENT"
	PrefixMaintenance = "MAIN"
	PrefixElectricity = "ELE"
	PrefixGas         = "GAS"
	PrefixCombined    = "COMB"

	// meter reading punya ledger penomoran sendiri
	PrefixElectricityMR = "ELE-MR"
	PrefixGasMR         = "GAS-MR"
)

func PrefixForKind(kind model.BillKind) string {
	switch kind {
	case model.BillKindRent:
		return PrefixRent
	case model.BillKindMaintenance:
		return PrefixMaintenance
	case model.BillKindElectricity:
		return PrefixElectricity
	case model.BillKindGas:
		return PrefixGas
	case model.BillKindCombined:
		return PrefixCombined
	default:
		return PrefixRent
	}
}

// FormatBillNumber: suffix minimal 3 digit, boleh tumbuh lewat 999 tanpa truncate.
func FormatBillNumber(prefix string, year int, seq int) string {
	return fmt.Sprintf("%s-%04d-%03d", prefix, year, seq)
}

// ParseSequence mengambil suffix numerik dari nomor dengan scope prefix+tahun.
// Nomor yang tidak match scope atau suffix-nya bukan angka → (0, false).
func ParseSequence(number, prefix string, year int) (int, bool) {
	scope := fmt.Sprintf("%s-%04d-", prefix, year)
	if !strings.HasPrefix(number, scope) {
		return 0, false
	}
	n, err := strconv.Atoi(number[len(scope):])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// NextSequence: max(suffix yang valid) + 1; tidak ada yang valid → 1.
// Tidak pernah gagal — nomor rusak diabaikan, bukan bikin error.
func NextSequence(existing []string, prefix string, year int) int {
	max := 0
	for _, num := range existing {
		if n, ok := ParseSequence(num, prefix, year); ok && n > max {
			max = n
		}
	}
	return max + 1
}

// allocateNumberTx membaca nomor existing dalam tx dan menghitung kandidat
// berikutnya. TIDAK aman sendirian terhadap caller paralel — makanya selalu
// dipakai lewat InsertWithNumber yang retry saat unique index menolak.
func allocateNumberTx(tx *gorm.DB, prefix string, year int) (string, error) {
	scope := fmt.Sprintf("%s-%04d-", prefix, year)
	var numbers []string
	if err := tx.Model(&model.BillModel{}).
		Where("bill_number LIKE ?", scope+"%").
		Pluck("bill_number", &numbers).Error; err != nil {
		return "", err
	}
	return FormatBillNumber(prefix, year, NextSequence(numbers, prefix, year)), nil
}

const numberAllocRetries = 3

// InsertWithNumber: alokasi nomor + insert dalam satu loop retry-on-conflict.
// Unique index uq_bill_number yang jadi guard terhadap alokasi ganda;
// konflik → hitung ulang dari state terbaru lalu coba lagi (dibatasi).
func InsertWithNumber(db *gorm.DB, bill *model.BillModel, year int) error {
	prefix := PrefixForKind(bill.BillKind)
	for attempt := 0; attempt < numberAllocRetries; attempt++ {
		err := db.Transaction(func(tx *gorm.DB) error {
			num, err := allocateNumberTx(tx, prefix, year)
			if err != nil {
				return err
			}
			bill.BillNumber = num
			return tx.Create(bill).Error
		})
		if err == nil {
			return nil
		}
		if helper.IsUniqueViolation(err) && strings.Contains(err.Error(), "uq_bill_number") {
			continue
		}
		return err
	}
	return fmt.Errorf("bill number allocation: conflict after %d attempts", numberAllocRetries)
}
