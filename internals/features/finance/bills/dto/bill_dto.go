// file: internals/features/finance/bills/dto/bill_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"plazaku_backend/internals/features/finance/bills/model"
)

////////////////////////////////////////////////////////////////////////////////
// BILLS — DTO
////////////////////////////////////////////////////////////////////////////////

// Create (single bill, manual)
type BillCreateDTO struct {
	BillBusinessID uuid.UUID `json:"bill_business_id" validate:"required"`
	BillKind       string    `json:"bill_kind" validate:"required,oneof=rent maintenance electricity gas combined"`
	BillMonth      int16     `json:"bill_month" validate:"required,min=1,max=12"`
	BillYear       int16     `json:"bill_year" validate:"required,min=2000"`

	BillIssueDate *time.Time `json:"bill_issue_date,omitempty"` // nil → today
	BillDueDate   *time.Time `json:"bill_due_date,omitempty"`

	// Komponen biaya opsional; rent dihitung dari business kecuali di-override
	BillMaintenanceIDR int `json:"bill_maintenance_idr" validate:"min=0"`
	BillElectricityIDR int `json:"bill_electricity_idr" validate:"min=0"`
	BillGasIDR         int `json:"bill_gas_idr" validate:"min=0"`
	BillWaterIDR       int `json:"bill_water_idr" validate:"min=0"`
	BillOtherIDR       int `json:"bill_other_idr" validate:"min=0"`

	BillTermIDs []int64 `json:"bill_term_ids,omitempty"`
	BillNote    *string `json:"bill_note,omitempty"`

	// Wajib true kalau mau tetap lanjut padahal sudah ada bill periode sama
	// ATAU advance menutup kewajiban penuh (warning harus diakui eksplisit).
	AcknowledgeAdvanceWarning bool `json:"acknowledge_advance_warning"`
}

// Edit komponen biaya — total SELALU dihitung ulang oleh service.
type BillUpdateDTO struct {
	BillDueDate        *time.Time `json:"bill_due_date,omitempty"`
	BillRentIDR        *int       `json:"bill_rent_idr,omitempty" validate:"omitempty,min=0"`
	BillMaintenanceIDR *int       `json:"bill_maintenance_idr,omitempty" validate:"omitempty,min=0"`
	BillElectricityIDR *int       `json:"bill_electricity_idr,omitempty" validate:"omitempty,min=0"`
	BillGasIDR         *int       `json:"bill_gas_idr,omitempty" validate:"omitempty,min=0"`
	BillWaterIDR       *int       `json:"bill_water_idr,omitempty" validate:"omitempty,min=0"`
	BillOtherIDR       *int       `json:"bill_other_idr,omitempty" validate:"omitempty,min=0"`
	BillTermIDs        []int64    `json:"bill_term_ids,omitempty"`
	BillNote           *string    `json:"bill_note,omitempty"`
}

type BillMarkPaidDTO struct {
	PaidAt *time.Time `json:"paid_at,omitempty"` // nil → now()
	Method *string    `json:"method,omitempty" validate:"omitempty,oneof=cash bank_transfer gateway other"`
	Note   *string    `json:"note,omitempty"`
}

type BillStatusNoteDTO struct {
	Note *string `json:"note,omitempty"`
}

// Bulk generate
type BillGenerateDTO struct {
	BillKind  string     `json:"bill_kind" validate:"required,oneof=rent maintenance electricity gas combined"`
	BillMonth int16      `json:"bill_month" validate:"required,min=1,max=12"`
	BillYear  int16      `json:"bill_year" validate:"required,min=2000"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	TermIDs   []int64    `json:"term_ids,omitempty"`

	// Subset cohort; kosong → semua business aktif dengan flag kelolaan cocok
	BusinessIDs []uuid.UUID `json:"business_ids,omitempty"`
}

type BillResponse struct {
	BillID         uuid.UUID `json:"bill_id"`
	BillBusinessID uuid.UUID `json:"bill_business_id"`
	BillNumber     string    `json:"bill_number"`
	BillKind       string    `json:"bill_kind"`
	BillMonth      int16     `json:"bill_month"`
	BillYear       int16     `json:"bill_year"`

	BillIssueDate time.Time  `json:"bill_issue_date"`
	BillDueDate   *time.Time `json:"bill_due_date,omitempty"`

	BillRentIDR        int `json:"bill_rent_idr"`
	BillMaintenanceIDR int `json:"bill_maintenance_idr"`
	BillElectricityIDR int `json:"bill_electricity_idr"`
	BillGasIDR         int `json:"bill_gas_idr"`
	BillWaterIDR       int `json:"bill_water_idr"`
	BillOtherIDR       int `json:"bill_other_idr"`

	BillTotalIDR         int `json:"bill_total_idr"`
	BillAdvanceOffsetIDR int `json:"bill_advance_offset_idr"`

	BillStatus string     `json:"bill_status"` // pending|paid|overdue|waveoff
	BillPaidAt *time.Time `json:"bill_paid_at,omitempty"`

	BillTermIDs []int64 `json:"bill_term_ids,omitempty"`
	BillNote    *string `json:"bill_note,omitempty"`

	BillCreatedAt time.Time  `json:"bill_created_at"`
	BillUpdatedAt time.Time  `json:"bill_updated_at"`
	BillDeletedAt *time.Time `json:"bill_deleted_at,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToBillResponse(m model.BillModel) BillResponse {
	return BillResponse{
		BillID:               m.BillID,
		BillBusinessID:       m.BillBusinessID,
		BillNumber:           m.BillNumber,
		BillKind:             string(m.BillKind),
		BillMonth:            m.BillMonth,
		BillYear:             m.BillYear,
		BillIssueDate:        m.BillIssueDate,
		BillDueDate:          m.BillDueDate,
		BillRentIDR:          m.BillRentIDR,
		BillMaintenanceIDR:   m.BillMaintenanceIDR,
		BillElectricityIDR:   m.BillElectricityIDR,
		BillGasIDR:           m.BillGasIDR,
		BillWaterIDR:         m.BillWaterIDR,
		BillOtherIDR:         m.BillOtherIDR,
		BillTotalIDR:         m.BillTotalIDR,
		BillAdvanceOffsetIDR: m.BillAdvanceOffsetIDR,
		BillStatus:           string(m.BillStatus),
		BillPaidAt:           m.BillPaidAt,
		BillTermIDs:          []int64(m.BillTermIDs),
		BillNote:             m.BillNote,
		BillCreatedAt:        m.BillCreatedAt,
		BillUpdatedAt:        m.BillUpdatedAt,
		BillDeletedAt:        toPtrTimeFromDeletedAt(m.BillDeletedAt),
	}
}

func ToBillResponses(list []model.BillModel) []BillResponse {
	out := make([]BillResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToBillResponse(m))
	}
	return out
}

// ApplyBillUpdate: apply partial; caller wajib hitung ulang total setelahnya.
func ApplyBillUpdate(m *model.BillModel, d BillUpdateDTO) {
	if d.BillDueDate != nil {
		m.BillDueDate = d.BillDueDate
	}
	if d.BillRentIDR != nil {
		m.BillRentIDR = *d.BillRentIDR
	}
	if d.BillMaintenanceIDR != nil {
		m.BillMaintenanceIDR = *d.BillMaintenanceIDR
	}
	if d.BillElectricityIDR != nil {
		m.BillElectricityIDR = *d.BillElectricityIDR
	}
	if d.BillGasIDR != nil {
		m.BillGasIDR = *d.BillGasIDR
	}
	if d.BillWaterIDR != nil {
		m.BillWaterIDR = *d.BillWaterIDR
	}
	if d.BillOtherIDR != nil {
		m.BillOtherIDR = *d.BillOtherIDR
	}
	if d.BillTermIDs != nil {
		m.BillTermIDs = d.BillTermIDs
	}
	if d.BillNote != nil {
		m.BillNote = d.BillNote
	}
}

func toPtrTimeFromDeletedAt(d gorm.DeletedAt) *time.Time {
	if d.Valid {
		t := d.Time
		return &t
	}
	return nil
}
