// file: internals/features/finance/advances/service/reconcile_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"plazaku_backend/internals/features/finance/advances/model"
)

func activeAdvance(amount int) *model.AdvanceModel {
	return &model.AdvanceModel{
		AdvanceType:      model.AdvanceTypeRent,
		AdvanceAmountIDR: amount,
		AdvanceStatus:    model.AdvanceStatusActive,
	}
}

func TestResolveNoAdvance(t *testing.T) {
	d := Resolve(nil, 50000)
	assert.Equal(t, 0, d.Offset)
	assert.False(t, d.BlocksGeneration)
}

func TestResolvePartialAdvance(t *testing.T) {
	// advance 20.000 thd kewajiban 50.000 → offset 20.000, tagihan tetap dibuat
	d := Resolve(activeAdvance(20000), 50000)
	assert.Equal(t, 20000, d.Offset)
	assert.False(t, d.BlocksGeneration)
	assert.NotNil(t, d.Advance)
}

func TestResolveAdvanceCoversObligation(t *testing.T) {
	// pas sama → block
	d := Resolve(activeAdvance(50000), 50000)
	assert.True(t, d.BlocksGeneration)
	assert.Equal(t, 0, d.Offset)

	// lebih besar → block juga
	d = Resolve(activeAdvance(70000), 50000)
	assert.True(t, d.BlocksGeneration)
}

func TestResolveIgnoresNonActiveAdvance(t *testing.T) {
	adv := activeAdvance(50000)
	adv.AdvanceStatus = model.AdvanceStatusUsed
	d := Resolve(adv, 50000)
	assert.False(t, d.BlocksGeneration)
	assert.Equal(t, 0, d.Offset)

	adv.AdvanceStatus = model.AdvanceStatusCancelled
	d = Resolve(adv, 50000)
	assert.False(t, d.BlocksGeneration)
	assert.Equal(t, 0, d.Offset)
}

// Tuple (business, type, month, year) yang sudah punya advance aktif
// harus ditolak sebagai duplikat; count 0 lolos.
func TestEnsureNoActiveAdvance(t *testing.T) {
	assert.NoError(t, EnsureNoActiveAdvance(0))
	assert.ErrorIs(t, EnsureNoActiveAdvance(1), ErrDuplicateActiveAdvance)
	assert.ErrorIs(t, EnsureNoActiveAdvance(3), ErrDuplicateActiveAdvance)
}

func TestOffsetPolicy(t *testing.T) {
	p := DefaultOffsetPolicy()
	assert.True(t, p.Consults(model.AdvanceTypeRent))
	// default: advance listrik/maintenance dicatat tapi tidak memotong tagihan
	assert.False(t, p.Consults(model.AdvanceTypeElectricity))
	assert.False(t, p.Consults(model.AdvanceTypeMaintenance))

	custom := OffsetPolicy{
		model.AdvanceTypeRent:        true,
		model.AdvanceTypeElectricity: true,
	}
	assert.True(t, custom.Consults(model.AdvanceTypeElectricity))
}
