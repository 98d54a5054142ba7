// file: internals/features/finance/partial_payments/service/ledger_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"plazaku_backend/internals/features/finance/partial_payments/model"
)

func entries(amounts ...int) []model.PartialPaymentEntryModel {
	out := make([]model.PartialPaymentEntryModel, 0, len(amounts))
	for _, a := range amounts {
		out = append(out, model.PartialPaymentEntryModel{PartialPaymentEntryAmountIDR: a})
	}
	return out
}

func activePlan(obligation int) *model.PartialPaymentModel {
	return &model.PartialPaymentModel{
		PartialPaymentObligationIDR: obligation,
		PartialPaymentStatus:        model.PartialPaymentStatusActive,
	}
}

func TestSumEntries(t *testing.T) {
	assert.Equal(t, 0, SumEntries(nil))
	assert.Equal(t, 50000, SumEntries(entries(20000, 30000)))
}

func TestRemaining(t *testing.T) {
	assert.Equal(t, 50000, Remaining(50000, nil))
	assert.Equal(t, 30000, Remaining(50000, entries(20000)))
	assert.Equal(t, 0, Remaining(50000, entries(20000, 30000)))
	// ledger anomali (lebih dari kewajiban) tetap floor 0
	assert.Equal(t, 0, Remaining(50000, entries(60000)))
}

// Skenario cicilan 50.000: setor 20.000, lalu 30.000 → lunas;
// setoran ketiga ditolak tanpa menyentuh ledger.
func TestValidateAppendLedgerScenario(t *testing.T) {
	plan := activePlan(50000)

	assert.NoError(t, ValidateAppend(plan, nil, 20000))
	assert.NoError(t, ValidateAppend(plan, entries(20000), 30000))

	full := entries(20000, 30000)
	err := ValidateAppend(plan, full, 1000)
	assert.ErrorIs(t, err, ErrInvalidEntryAmount)
}

func TestValidateAppendRejectsInvalidAmounts(t *testing.T) {
	plan := activePlan(50000)

	assert.ErrorIs(t, ValidateAppend(plan, nil, 0), ErrInvalidEntryAmount)
	assert.ErrorIs(t, ValidateAppend(plan, nil, -500), ErrInvalidEntryAmount)
	// melebihi sisa
	assert.ErrorIs(t, ValidateAppend(plan, entries(20000), 40000), ErrInvalidEntryAmount)
}

// Periode yang sudah punya plan aktif → duplikat; count 0 lolos.
func TestEnsureNoActivePlan(t *testing.T) {
	assert.NoError(t, EnsureNoActivePlan(0))
	assert.ErrorIs(t, EnsureNoActivePlan(1), ErrDuplicateActivePlan)
	assert.ErrorIs(t, EnsureNoActivePlan(2), ErrDuplicateActivePlan)
}

func TestValidateAppendRejectsNonActivePlan(t *testing.T) {
	plan := activePlan(50000)
	plan.PartialPaymentStatus = model.PartialPaymentStatusCompleted
	assert.ErrorIs(t, ValidateAppend(plan, entries(50000), 1), ErrPlanNotActive)

	plan.PartialPaymentStatus = model.PartialPaymentStatusCancelled
	assert.ErrorIs(t, ValidateAppend(plan, nil, 10000), ErrPlanNotActive)
}
