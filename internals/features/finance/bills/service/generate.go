// file: internals/features/finance/bills/service/generate.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	advanceModel "plazaku_backend/internals/features/finance/advances/model"
	advanceService "plazaku_backend/internals/features/finance/advances/service"
	"plazaku_backend/internals/features/finance/bills/model"
	businessModel "plazaku_backend/internals/features/plaza/businesses/model"
)

// =======================================================
// BULK GENERATION ORCHESTRATOR
// =======================================================

// GenerateStore = operasi persistensi yang dibutuhkan orchestrator.
// Dipisah interface supaya cohort walk bisa diuji tanpa DB.
type GenerateStore interface {
	ResolveAdvance(ctx context.Context, businessID uuid.UUID, typ advanceModel.AdvanceType, month, year int16, obligationIDR int) (advanceService.OffsetDecision, error)
	HasBillForPeriod(ctx context.Context, businessID uuid.UUID, kind model.BillKind, month, year int16) (bool, error)
	InsertBill(ctx context.Context, bill *model.BillModel) error
}

// GenerateInput = parameter satu batch generate.
type GenerateInput struct {
	Kind      model.BillKind
	Month     int16
	Year      int16
	IssueDate time.Time
	DueDate   *time.Time
	TermIDs   []int64
}

type BusinessError struct {
	BusinessID   uuid.UUID `json:"business_id"`
	BusinessName string    `json:"business_name"`
	Message      string    `json:"message"`
}

// Daftar error per business dibatasi supaya response batch besar tetap
// ramping; kelebihan dilaporkan lewat FailureCount.
const maxBatchErrors = 20

type GenerateResult struct {
	SuccessCount int             `json:"success_count"`
	SkipCount    int             `json:"skip_count"`
	FailureCount int             `json:"failure_count"`
	Errors       []BusinessError `json:"errors"`
}

// AdvanceTypeForKind memetakan jenis tagihan → jenis advance yang relevan.
func AdvanceTypeForKind(kind model.BillKind) advanceModel.AdvanceType {
	switch kind {
	case model.BillKindElectricity:
		return advanceModel.AdvanceTypeElectricity
	case model.BillKindMaintenance:
		return advanceModel.AdvanceTypeMaintenance
	default:
		return advanceModel.AdvanceTypeRent
	}
}

// BuildBillForBusiness menyusun BillModel dari breakdown + metadata batch.
// Murni — tidak menyentuh store.
func BuildBillForBusiness(biz businessModel.BusinessModel, in GenerateInput, charges ChargeBreakdown, advanceOffset int) model.BillModel {
	return model.BillModel{
		BillBusinessID:       biz.BusinessID,
		BillKind:             in.Kind,
		BillMonth:            in.Month,
		BillYear:             in.Year,
		BillIssueDate:        in.IssueDate,
		BillDueDate:          in.DueDate,
		BillRentIDR:          charges.RentIDR,
		BillMaintenanceIDR:   charges.MaintenanceIDR,
		BillElectricityIDR:   charges.ElectricityIDR,
		BillGasIDR:           charges.GasIDR,
		BillWaterIDR:         charges.WaterIDR,
		BillOtherIDR:         charges.OtherIDR,
		BillTotalIDR:         charges.Total(),
		BillAdvanceOffsetIDR: advanceOffset,
		BillStatus:           model.BillStatusPending,
		BillTermIDs:          pq.Int64Array(in.TermIDs),
	}
}

// GenerateAll memproses cohort per business secara independen:
//   - advance menutup kewajiban penuh → skip (dihitung, bukan error)
//   - sudah ada bill utk periode yang sama → skip (idempotent re-run)
//   - selainnya: hitung charge, alokasi nomor, persist
//
// Kegagalan satu business dicatat di Errors (maks maxBatchErrors entri,
// selebihnya cuma terhitung di FailureCount) dan TIDAK menghentikan sisanya.
func GenerateAll(ctx context.Context, store GenerateStore, cohort []businessModel.BusinessModel, in GenerateInput) GenerateResult {
	res := GenerateResult{Errors: []BusinessError{}}

	for _, biz := range cohort {
		outcome, err := generateOne(ctx, store, biz, in)
		if err != nil {
			res.FailureCount++
			if len(res.Errors) < maxBatchErrors {
				res.Errors = append(res.Errors, BusinessError{
					BusinessID:   biz.BusinessID,
					BusinessName: biz.BusinessName,
					Message:      err.Error(),
				})
			}
			continue
		}
		if outcome {
			res.SuccessCount++
		} else {
			res.SkipCount++
		}
	}
	return res
}

// generateOne → (created, err). created=false tanpa err berarti skip.
func generateOne(ctx context.Context, store GenerateStore, biz businessModel.BusinessModel, in GenerateInput) (bool, error) {
	obligation := biz.BusinessMonthlyRentIDR

	decision, err := store.ResolveAdvance(ctx, biz.BusinessID, AdvanceTypeForKind(in.Kind), in.Month, in.Year, obligation)
	if err != nil {
		return false, fmt.Errorf("resolve advance: %w", err)
	}
	if decision.BlocksGeneration {
		return false, nil // advance menutup kewajiban penuh
	}

	exists, err := store.HasBillForPeriod(ctx, biz.BusinessID, in.Kind, in.Month, in.Year)
	if err != nil {
		return false, fmt.Errorf("check existing bill: %w", err)
	}
	if exists {
		return false, nil // proteksi re-run
	}

	charges := ChargeBreakdown{}
	switch in.Kind {
	case model.BillKindRent, model.BillKindCombined:
		charges.RentIDR = RentAfterAdvance(obligation, decision.Offset)
	case model.BillKindMaintenance:
		charges.MaintenanceIDR = RentAfterAdvance(obligation, decision.Offset)
	}

	bill := BuildBillForBusiness(biz, in, charges, decision.Offset)
	if err := store.InsertBill(ctx, &bill); err != nil {
		return false, fmt.Errorf("persist bill: %w", err)
	}
	return true, nil
}

// =======================================================
// GORM-backed store
// =======================================================

type GormGenerateStore struct {
	DB     *gorm.DB
	Policy advanceService.OffsetPolicy
}

func NewGormGenerateStore(db *gorm.DB) *GormGenerateStore {
	return &GormGenerateStore{DB: db, Policy: advanceService.DefaultOffsetPolicy()}
}

func (s *GormGenerateStore) ResolveAdvance(ctx context.Context, businessID uuid.UUID, typ advanceModel.AdvanceType, month, year int16, obligationIDR int) (advanceService.OffsetDecision, error) {
	return advanceService.ResolveForBilling(s.DB.WithContext(ctx), s.Policy, businessID, typ, month, year, obligationIDR)
}

func (s *GormGenerateStore) HasBillForPeriod(ctx context.Context, businessID uuid.UUID, kind model.BillKind, month, year int16) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&model.BillModel{}).
		Where("bill_business_id = ? AND bill_kind = ? AND bill_month = ? AND bill_year = ?",
			businessID, kind, month, year).
		Count(&count).Error
	return count > 0, err
}

func (s *GormGenerateStore) InsertBill(ctx context.Context, bill *model.BillModel) error {
	// scope nomor = tahun kalender saat generate, bukan tahun periode tagihan
	return InsertWithNumber(s.DB.WithContext(ctx), bill, bill.BillIssueDate.Year())
}
