// file: internals/features/finance/bills/service/charges.go
package service

// =======================================================
// CHARGE CALCULATOR — murni, tanpa side effect
// =======================================================

// ChargeBreakdown = komponen biaya satu tagihan, semuanya IDR >= 0.
type ChargeBreakdown struct {
	RentIDR        int
	MaintenanceIDR int
	ElectricityIDR int
	GasIDR         int
	WaterIDR       int
	OtherIDR       int
}

// Total = Σ komponen. Invariant bill_total_idr = Total() dijaga di semua
// jalur create/edit.
func (b ChargeBreakdown) Total() int {
	return b.RentIDR + b.MaintenanceIDR + b.ElectricityIDR + b.GasIDR + b.WaterIDR + b.OtherIDR
}

// UtilityAmount: units × rate (listrik/gas). Unit negatif dianggap 0.
func UtilityAmount(units, ratePerUnitIDR int) int {
	if units < 0 {
		return 0
	}
	return units * ratePerUnitIDR
}

// RentAfterAdvance: sewa dikurangi potongan advance, floor di 0.
func RentAfterAdvance(baseRentIDR, advanceOffsetIDR int) int {
	r := baseRentIDR - advanceOffsetIDR
	if r < 0 {
		return 0
	}
	return r
}
