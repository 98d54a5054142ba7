// file: internals/features/finance/bills/service/generate_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	advanceModel "plazaku_backend/internals/features/finance/advances/model"
	advanceService "plazaku_backend/internals/features/finance/advances/service"
	"plazaku_backend/internals/features/finance/bills/model"
	businessModel "plazaku_backend/internals/features/plaza/businesses/model"
)

// fakeGenerateStore = store in-memory untuk nguji cohort walk tanpa DB.
type fakeGenerateStore struct {
	decisions map[uuid.UUID]advanceService.OffsetDecision
	existing  map[uuid.UUID]bool
	failOn    map[uuid.UUID]error
	inserted  []model.BillModel
}

func newFakeStore() *fakeGenerateStore {
	return &fakeGenerateStore{
		decisions: map[uuid.UUID]advanceService.OffsetDecision{},
		existing:  map[uuid.UUID]bool{},
		failOn:    map[uuid.UUID]error{},
	}
}

func (s *fakeGenerateStore) ResolveAdvance(_ context.Context, businessID uuid.UUID, _ advanceModel.AdvanceType, _, _ int16, _ int) (advanceService.OffsetDecision, error) {
	return s.decisions[businessID], nil
}

func (s *fakeGenerateStore) HasBillForPeriod(_ context.Context, businessID uuid.UUID, _ model.BillKind, _, _ int16) (bool, error) {
	return s.existing[businessID], nil
}

func (s *fakeGenerateStore) InsertBill(_ context.Context, bill *model.BillModel) error {
	if err := s.failOn[bill.BillBusinessID]; err != nil {
		return err
	}
	s.inserted = append(s.inserted, *bill)
	return nil
}

func makeBusiness(name string, rent int) businessModel.BusinessModel {
	return businessModel.BusinessModel{
		BusinessID:             uuid.New(),
		BusinessName:           name,
		BusinessMonthlyRentIDR: rent,
		BusinessIsActive:       true,
	}
}

func rentInput() GenerateInput {
	return GenerateInput{
		Kind:      model.BillKindRent,
		Month:     3,
		Year:      2026,
		IssueDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestGenerateAllHappyPath(t *testing.T) {
	store := newFakeStore()
	cohort := []businessModel.BusinessModel{
		makeBusiness("Toko A", 1000000),
		makeBusiness("Toko B", 1500000),
		makeBusiness("Toko C", 2000000),
	}

	res := GenerateAll(context.Background(), store, cohort, rentInput())

	assert.Equal(t, 3, res.SuccessCount)
	assert.Equal(t, 0, res.SkipCount)
	assert.Empty(t, res.Errors)
	require.Len(t, store.inserted, 3)
	for i, bill := range store.inserted {
		assert.Equal(t, cohort[i].BusinessMonthlyRentIDR, bill.BillRentIDR)
		assert.Equal(t, bill.BillRentIDR, bill.BillTotalIDR)
		assert.Equal(t, model.BillStatusPending, bill.BillStatus)
	}
}

// Satu business gagal persist → dicatat di Errors, sisanya tetap jalan.
func TestGenerateAllIsolatesFailures(t *testing.T) {
	store := newFakeStore()
	cohort := []businessModel.BusinessModel{
		makeBusiness("Toko A", 1000000),
		makeBusiness("Toko B", 1500000),
		makeBusiness("Toko C", 2000000),
	}
	store.failOn[cohort[1].BusinessID] = errors.New("connection reset")

	res := GenerateAll(context.Background(), store, cohort, rentInput())

	assert.Equal(t, 2, res.SuccessCount)
	assert.Equal(t, 1, res.FailureCount)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, cohort[1].BusinessID, res.Errors[0].BusinessID)
	assert.Equal(t, "Toko B", res.Errors[0].BusinessName)
	assert.Contains(t, res.Errors[0].Message, "connection reset")
	assert.Len(t, store.inserted, 2)
}

// Advance menutup kewajiban penuh → skip, bukan error.
func TestGenerateAllSkipsWhenAdvanceCovers(t *testing.T) {
	store := newFakeStore()
	covered := makeBusiness("Toko A", 50000)
	normal := makeBusiness("Toko B", 50000)
	store.decisions[covered.BusinessID] = advanceService.OffsetDecision{BlocksGeneration: true}

	res := GenerateAll(context.Background(), store, []businessModel.BusinessModel{covered, normal}, rentInput())

	assert.Equal(t, 1, res.SuccessCount)
	assert.Equal(t, 1, res.SkipCount)
	assert.Empty(t, res.Errors)
	require.Len(t, store.inserted, 1)
	assert.Equal(t, normal.BusinessID, store.inserted[0].BillBusinessID)
}

// Advance parsial → offset diterapkan ke komponen rent, audit trail keisi.
func TestGenerateAllAppliesPartialAdvance(t *testing.T) {
	store := newFakeStore()
	biz := makeBusiness("Toko A", 50000)
	store.decisions[biz.BusinessID] = advanceService.OffsetDecision{Offset: 20000}

	res := GenerateAll(context.Background(), store, []businessModel.BusinessModel{biz}, rentInput())

	assert.Equal(t, 1, res.SuccessCount)
	require.Len(t, store.inserted, 1)
	bill := store.inserted[0]
	assert.Equal(t, 30000, bill.BillRentIDR)
	assert.Equal(t, 30000, bill.BillTotalIDR)
	assert.Equal(t, 20000, bill.BillAdvanceOffsetIDR)
}

// Sudah ada bill utk periode yang sama → skip (re-run idempotent).
func TestGenerateAllSkipsExistingPeriod(t *testing.T) {
	store := newFakeStore()
	dup := makeBusiness("Toko A", 1000000)
	fresh := makeBusiness("Toko B", 1000000)
	store.existing[dup.BusinessID] = true

	res := GenerateAll(context.Background(), store, []businessModel.BusinessModel{dup, fresh}, rentInput())

	assert.Equal(t, 1, res.SuccessCount)
	assert.Equal(t, 1, res.SkipCount)
	require.Len(t, store.inserted, 1)
	assert.Equal(t, fresh.BusinessID, store.inserted[0].BillBusinessID)
}

// Cohort besar yang gagal massal: daftar error dibatasi, total kegagalan
// tetap kelihatan lewat FailureCount.
func TestGenerateAllCapsErrorList(t *testing.T) {
	store := newFakeStore()
	var cohort []businessModel.BusinessModel
	for i := 0; i < maxBatchErrors+30; i++ {
		biz := makeBusiness("Toko Gagal", 1000000)
		store.failOn[biz.BusinessID] = errors.New("connection reset")
		cohort = append(cohort, biz)
	}

	res := GenerateAll(context.Background(), store, cohort, rentInput())

	assert.Equal(t, 0, res.SuccessCount)
	assert.Equal(t, maxBatchErrors+30, res.FailureCount)
	assert.Len(t, res.Errors, maxBatchErrors)
}

func TestAdvanceTypeForKind(t *testing.T) {
	assert.Equal(t, advanceModel.AdvanceTypeRent, AdvanceTypeForKind(model.BillKindRent))
	assert.Equal(t, advanceModel.AdvanceTypeRent, AdvanceTypeForKind(model.BillKindCombined))
	assert.Equal(t, advanceModel.AdvanceTypeElectricity, AdvanceTypeForKind(model.BillKindElectricity))
	assert.Equal(t, advanceModel.AdvanceTypeMaintenance, AdvanceTypeForKind(model.BillKindMaintenance))
}

func TestBuildBillForBusinessTotalInvariant(t *testing.T) {
	biz := makeBusiness("Toko A", 1000000)
	charges := ChargeBreakdown{RentIDR: 800000, WaterIDR: 50000, OtherIDR: 25000}
	bill := BuildBillForBusiness(biz, rentInput(), charges, 200000)

	assert.Equal(t, charges.Total(), bill.BillTotalIDR)
	assert.Equal(t, 200000, bill.BillAdvanceOffsetIDR)
	assert.Equal(t, biz.BusinessID, bill.BillBusinessID)
	assert.Equal(t, model.BillStatusPending, bill.BillStatus)
}
