// file: internals/features/finance/bills/service/billnumber_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"plazaku_backend/internals/features/finance/bills/model"
)

func TestFormatBillNumber(t *testing.T) {
	assert.Equal(t, "RENT-2026-001", FormatBillNumber(PrefixRent, 2026, 1))
	assert.Equal(t, "ELE-MR-2026-042", FormatBillNumber(PrefixElectricityMR, 2026, 42))
	// lewat 999 → tidak di-truncate
	assert.Equal(t, "GAS-2026-1000", FormatBillNumber(PrefixGas, 2026, 1000))
}

func TestParseSequence(t *testing.T) {
	n, ok := ParseSequence("RENT-2026-007", PrefixRent, 2026)
	assert.True(t, ok)
	assert.Equal(t, 7, n)

	// scope beda → tidak match
	_, ok = ParseSequence("RENT-2025-007", PrefixRent, 2026)
	assert.False(t, ok)
	_, ok = ParseSequence("MAIN-2026-007", PrefixRent, 2026)
	assert.False(t, ok)

	// ELE vs ELE-MR tidak boleh saling nyangkut
	_, ok = ParseSequence("ELE-MR-2026-001", PrefixElectricity, 2026)
	assert.False(t, ok)
	n, ok = ParseSequence("ELE-MR-2026-003", PrefixElectricityMR, 2026)
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	// suffix bukan angka / kosong
	_, ok = ParseSequence("RENT-2026-abc", PrefixRent, 2026)
	assert.False(t, ok)
	_, ok = ParseSequence("RENT-2026-", PrefixRent, 2026)
	assert.False(t, ok)
}

func TestNextSequence(t *testing.T) {
	// kosong → mulai dari 1
	assert.Equal(t, 1, NextSequence(nil, PrefixRent, 2026))

	// urutan rapat 001..N → N+1
	existing := []string{"RENT-2026-001", "RENT-2026-002", "RENT-2026-003"}
	assert.Equal(t, 4, NextSequence(existing, PrefixRent, 2026))

	// nomor rusak & scope lain diabaikan, max tetap dipakai
	mixed := []string{
		"RENT-2026-010",
		"RENT-2026-xx",
		"RENT-2025-099",
		"MAIN-2026-050",
		"RENT-2026-002",
	}
	assert.Equal(t, 11, NextSequence(mixed, PrefixRent, 2026))
}

func TestPrefixForKind(t *testing.T) {
	assert.Equal(t, PrefixRent, PrefixForKind(model.BillKindRent))
	assert.Equal(t, PrefixMaintenance, PrefixForKind(model.BillKindMaintenance))
	assert.Equal(t, PrefixElectricity, PrefixForKind(model.BillKindElectricity))
	assert.Equal(t, PrefixGas, PrefixForKind(model.BillKindGas))
	assert.Equal(t, PrefixCombined, PrefixForKind(model.BillKindCombined))
}
