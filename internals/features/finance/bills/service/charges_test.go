// file: internals/features/finance/bills/service/charges_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChargeBreakdownTotal(t *testing.T) {
	b := ChargeBreakdown{
		RentIDR:        1500000,
		MaintenanceIDR: 200000,
		ElectricityIDR: 350000,
		GasIDR:         100000,
		WaterIDR:       50000,
		OtherIDR:       25000,
	}
	assert.Equal(t, 2225000, b.Total())
	assert.Equal(t, 0, ChargeBreakdown{}.Total())
}

func TestUtilityAmount(t *testing.T) {
	assert.Equal(t, 150000, UtilityAmount(100, 1500))
	assert.Equal(t, 0, UtilityAmount(0, 1500))
	// pembacaan mundur tidak boleh bikin tagihan negatif
	assert.Equal(t, 0, UtilityAmount(-5, 1500))
}

func TestRentAfterAdvance(t *testing.T) {
	// sewa 50.000, advance 20.000 → sisa tagihan 30.000
	assert.Equal(t, 30000, RentAfterAdvance(50000, 20000))
	// advance pas → 0
	assert.Equal(t, 0, RentAfterAdvance(50000, 50000))
	// advance lebih besar → floor 0, tidak pernah negatif
	assert.Equal(t, 0, RentAfterAdvance(50000, 70000))
	assert.Equal(t, 50000, RentAfterAdvance(50000, 0))
}

func TestLateSurcharge(t *testing.T) {
	assert.Equal(t, int64(5000), LateSurcharge(50000, LateSurchargePctBill))
	assert.Equal(t, int64(2500), LateSurcharge(50000, LateSurchargePctMeterReading))
	assert.Equal(t, int64(0), LateSurcharge(0, LateSurchargePctBill))
	assert.Equal(t, int64(0), LateSurcharge(-100, LateSurchargePctBill))
}
