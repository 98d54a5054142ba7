// file: internals/features/finance/advances/dto/advance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"plazaku_backend/internals/features/finance/advances/model"
)

////////////////////////////////////////////////////////////////////////////////
// ADVANCES — DTO
////////////////////////////////////////////////////////////////////////////////

type AdvanceCreateDTO struct {
	AdvanceBusinessID uuid.UUID `json:"advance_business_id" validate:"required"`
	AdvanceType       string    `json:"advance_type" validate:"required,oneof=rent electricity maintenance"`
	AdvanceMonth      int16     `json:"advance_month" validate:"required,min=1,max=12"`
	AdvanceYear       int16     `json:"advance_year" validate:"required,min=2000"`
	AdvanceAmountIDR  int       `json:"advance_amount_idr" validate:"required,gt=0"`
	AdvanceNote       *string   `json:"advance_note,omitempty"`
}

// Update (partial) — status pakai endpoint khusus
type AdvanceUpdateDTO struct {
	AdvanceAmountIDR *int    `json:"advance_amount_idr,omitempty" validate:"omitempty,gt=0"`
	AdvanceNote      *string `json:"advance_note,omitempty"`
}

type AdvanceStatusDTO struct {
	Note *string `json:"note,omitempty"`
}

type AdvanceResponse struct {
	AdvanceID         uuid.UUID `json:"advance_id"`
	AdvanceBusinessID uuid.UUID `json:"advance_business_id"`
	AdvanceType       string    `json:"advance_type"`
	AdvanceMonth      int16     `json:"advance_month"`
	AdvanceYear       int16     `json:"advance_year"`
	AdvanceAmountIDR  int       `json:"advance_amount_idr"`
	AdvanceStatus     string    `json:"advance_status"` // active|used|cancelled
	AdvanceNote       *string   `json:"advance_note,omitempty"`

	AdvanceCreatedAt time.Time  `json:"advance_created_at"`
	AdvanceUpdatedAt time.Time  `json:"advance_updated_at"`
	AdvanceDeletedAt *time.Time `json:"advance_deleted_at,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToAdvanceResponse(m model.AdvanceModel) AdvanceResponse {
	return AdvanceResponse{
		AdvanceID:         m.AdvanceID,
		AdvanceBusinessID: m.AdvanceBusinessID,
		AdvanceType:       string(m.AdvanceType),
		AdvanceMonth:      m.AdvanceMonth,
		AdvanceYear:       m.AdvanceYear,
		AdvanceAmountIDR:  m.AdvanceAmountIDR,
		AdvanceStatus:     string(m.AdvanceStatus),
		AdvanceNote:       m.AdvanceNote,
		AdvanceCreatedAt:  m.AdvanceCreatedAt,
		AdvanceUpdatedAt:  m.AdvanceUpdatedAt,
		AdvanceDeletedAt:  toPtrTimeFromDeletedAt(m.AdvanceDeletedAt),
	}
}

func ToAdvanceResponses(list []model.AdvanceModel) []AdvanceResponse {
	out := make([]AdvanceResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToAdvanceResponse(m))
	}
	return out
}

func AdvanceCreateDTOToModel(d AdvanceCreateDTO) model.AdvanceModel {
	return model.AdvanceModel{
		AdvanceBusinessID: d.AdvanceBusinessID,
		AdvanceType:       model.AdvanceType(d.AdvanceType),
		AdvanceMonth:      d.AdvanceMonth,
		AdvanceYear:       d.AdvanceYear,
		AdvanceAmountIDR:  d.AdvanceAmountIDR,
		AdvanceStatus:     model.AdvanceStatusActive, // default active
		AdvanceNote:       d.AdvanceNote,
	}
}

func ApplyAdvanceUpdate(m *model.AdvanceModel, d AdvanceUpdateDTO) {
	if d.AdvanceAmountIDR != nil {
		m.AdvanceAmountIDR = *d.AdvanceAmountIDR
	}
	if d.AdvanceNote != nil {
		m.AdvanceNote = d.AdvanceNote
	}
}

func toPtrTimeFromDeletedAt(d gorm.DeletedAt) *time.Time {
	if d.Valid {
		t := d.Time
		return &t
	}
	return nil
}
