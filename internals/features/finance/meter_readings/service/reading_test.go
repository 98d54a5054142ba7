// file: internals/features/finance/meter_readings/service/reading_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	billService "plazaku_backend/internals/features/finance/bills/service"
	"plazaku_backend/internals/features/finance/meter_readings/model"
)

func TestComputeUsage(t *testing.T) {
	m := &model.MeterReadingModel{
		MeterReadingPrevious:       1200,
		MeterReadingCurrent:        1350,
		MeterReadingRatePerUnitIDR: 1500,
	}
	ComputeUsage(m)
	assert.Equal(t, 150, m.MeterReadingUnits)
	assert.Equal(t, 225000, m.MeterReadingAmountIDR)
}

func TestComputeUsageNoConsumption(t *testing.T) {
	m := &model.MeterReadingModel{
		MeterReadingPrevious:       1000,
		MeterReadingCurrent:        1000,
		MeterReadingRatePerUnitIDR: 1500,
	}
	ComputeUsage(m)
	assert.Equal(t, 0, m.MeterReadingUnits)
	assert.Equal(t, 0, m.MeterReadingAmountIDR)
}

// Meter reset / salah catat → units floor 0, bukan tagihan negatif.
func TestComputeUsageBackwardsReading(t *testing.T) {
	m := &model.MeterReadingModel{
		MeterReadingPrevious:       1350,
		MeterReadingCurrent:        1200,
		MeterReadingRatePerUnitIDR: 1500,
	}
	ComputeUsage(m)
	assert.Equal(t, 0, m.MeterReadingUnits)
	assert.Equal(t, 0, m.MeterReadingAmountIDR)
}

// Denda meter reading dihitung dari nominal invoice itu sendiri,
// BUKAN dari arrears tagihan lain.
func TestReadingSurchargeFromOwnAmount(t *testing.T) {
	// nominal 100.000 → denda 5% = 5.000, tanpa peduli arrears
	assert.Equal(t, int64(5000), ReadingSurchargeIDR(100000))
	assert.Equal(t, int64(0), ReadingSurchargeIDR(0))
}

func TestInvoicePrefix(t *testing.T) {
	assert.Equal(t, billService.PrefixElectricityMR, invoicePrefix(model.MeterKindElectricity))
	assert.Equal(t, billService.PrefixGasMR, invoicePrefix(model.MeterKindGas))
}
