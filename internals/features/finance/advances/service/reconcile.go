// file: internals/features/finance/advances/service/reconcile.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"plazaku_backend/internals/features/finance/advances/model"
)

// =======================================================
// ADVANCE RECONCILER
// =======================================================

// OffsetDecision = hasil rekonsiliasi advance terhadap kewajiban bulan berjalan.
//   - BlocksGeneration: advance >= kewajiban penuh → tagihan TIDAK dibuat,
//     caller wajib menampilkan warning (bukan silently lanjut).
//   - Offset: potongan yang diterapkan ke komponen tagihan (0 kalau tak ada advance).
type OffsetDecision struct {
	Offset           int
	BlocksGeneration bool
	Advance          *model.AdvanceModel
}

// OffsetPolicy menentukan jenis advance mana yang dikonsultasikan saat
// generate tagihan. Default: hanya rent. Advance listrik/maintenance tetap
// dicatat tetapi tidak memotong tagihan (kebijakan bisa diubah per deploy).
type OffsetPolicy map[model.AdvanceType]bool

func DefaultOffsetPolicy() OffsetPolicy {
	return OffsetPolicy{model.AdvanceTypeRent: true}
}

func (p OffsetPolicy) Consults(t model.AdvanceType) bool {
	return p[t]
}

// Sudah ada advance aktif untuk tuple (business, type, month, year)
var ErrDuplicateActiveAdvance = errors.New("advance aktif untuk periode tersebut sudah ada")

// EnsureNoActiveAdvance: keputusan pre-check duplikat dari hasil hitung
// advance aktif. Race tetap ditangkap unique index — ini cuma pesan ramah.
func EnsureNoActiveAdvance(activeCount int64) error {
	if activeCount > 0 {
		return ErrDuplicateActiveAdvance
	}
	return nil
}

// Resolve: keputusan murni dari satu advance (boleh nil) + kewajiban penuh.
func Resolve(adv *model.AdvanceModel, obligationIDR int) OffsetDecision {
	if adv == nil || adv.AdvanceStatus != model.AdvanceStatusActive {
		return OffsetDecision{}
	}
	if adv.AdvanceAmountIDR >= obligationIDR {
		return OffsetDecision{BlocksGeneration: true, Advance: adv}
	}
	return OffsetDecision{Offset: adv.AdvanceAmountIDR, Advance: adv}
}

// FindActiveAdvance mengambil advance aktif unik untuk tuple.
// Tidak ketemu → (nil, nil); itu bukan error.
func FindActiveAdvance(db *gorm.DB, businessID uuid.UUID, typ model.AdvanceType, month, year int16) (*model.AdvanceModel, error) {
	var adv model.AdvanceModel
	err := db.
		Where("advance_business_id = ?", businessID).
		Where("advance_type = ?", typ).
		Where("advance_month = ? AND advance_year = ?", month, year).
		Where("advance_status = ?", model.AdvanceStatusActive).
		First(&adv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &adv, nil
}

// ResolveForBilling: lookup + keputusan dalam satu langkah, menghormati policy.
func ResolveForBilling(db *gorm.DB, policy OffsetPolicy, businessID uuid.UUID, typ model.AdvanceType, month, year int16, obligationIDR int) (OffsetDecision, error) {
	if !policy.Consults(typ) {
		return OffsetDecision{}, nil
	}
	adv, err := FindActiveAdvance(db, businessID, typ, month, year)
	if err != nil {
		return OffsetDecision{}, err
	}
	return Resolve(adv, obligationIDR), nil
}
