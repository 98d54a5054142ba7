// file: internals/features/plaza/businesses/dto/business_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"plazaku_backend/internals/features/plaza/businesses/model"
)

////////////////////////////////////////////////////////////////////////////////
// BUSINESSES — DTO
////////////////////////////////////////////////////////////////////////////////

type BusinessCreateDTO struct {
	BusinessName           string  `json:"business_name" validate:"required,max=120"`
	BusinessOwnerName      string  `json:"business_owner_name" validate:"required,max=120"`
	BusinessPhone          *string `json:"business_phone,omitempty" validate:"omitempty,max=30"`
	BusinessShopNumber     string  `json:"business_shop_number" validate:"required,max=20"`
	BusinessFloorNumber    int16   `json:"business_floor_number" validate:"min=0"`
	BusinessMonthlyRentIDR int     `json:"business_monthly_rent_idr" validate:"min=0"`

	BusinessManageRent        *bool `json:"business_manage_rent,omitempty"`
	BusinessManageElectricity *bool `json:"business_manage_electricity,omitempty"`
	BusinessManageGas         *bool `json:"business_manage_gas,omitempty"`
	BusinessManageMaintenance *bool `json:"business_manage_maintenance,omitempty"`
}

// Update (partial)
type BusinessUpdateDTO struct {
	BusinessName           *string `json:"business_name,omitempty" validate:"omitempty,max=120"`
	BusinessOwnerName      *string `json:"business_owner_name,omitempty" validate:"omitempty,max=120"`
	BusinessPhone          *string `json:"business_phone,omitempty" validate:"omitempty,max=30"`
	BusinessShopNumber     *string `json:"business_shop_number,omitempty" validate:"omitempty,max=20"`
	BusinessFloorNumber    *int16  `json:"business_floor_number,omitempty"`
	BusinessMonthlyRentIDR *int    `json:"business_monthly_rent_idr,omitempty" validate:"omitempty,min=0"`

	BusinessManageRent        *bool `json:"business_manage_rent,omitempty"`
	BusinessManageElectricity *bool `json:"business_manage_electricity,omitempty"`
	BusinessManageGas         *bool `json:"business_manage_gas,omitempty"`
	BusinessManageMaintenance *bool `json:"business_manage_maintenance,omitempty"`
	BusinessIsActive          *bool `json:"business_is_active,omitempty"`
}

type BusinessResponse struct {
	BusinessID        uuid.UUID `json:"business_id"`
	BusinessName      string    `json:"business_name"`
	BusinessOwnerName string    `json:"business_owner_name"`
	BusinessPhone     *string   `json:"business_phone,omitempty"`

	BusinessShopNumber  string `json:"business_shop_number"`
	BusinessFloorNumber int16  `json:"business_floor_number"`

	BusinessMonthlyRentIDR int `json:"business_monthly_rent_idr"`

	BusinessManageRent        bool `json:"business_manage_rent"`
	BusinessManageElectricity bool `json:"business_manage_electricity"`
	BusinessManageGas         bool `json:"business_manage_gas"`
	BusinessManageMaintenance bool `json:"business_manage_maintenance"`
	BusinessIsActive          bool `json:"business_is_active"`

	BusinessCreatedAt time.Time  `json:"business_created_at"`
	BusinessUpdatedAt time.Time  `json:"business_updated_at"`
	BusinessDeletedAt *time.Time `json:"business_deleted_at,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS — Model <-> DTO
////////////////////////////////////////////////////////////////////////////////

func ToBusinessResponse(m model.BusinessModel) BusinessResponse {
	return BusinessResponse{
		BusinessID:                m.BusinessID,
		BusinessName:              m.BusinessName,
		BusinessOwnerName:         m.BusinessOwnerName,
		BusinessPhone:             m.BusinessPhone,
		BusinessShopNumber:        m.BusinessShopNumber,
		BusinessFloorNumber:       m.BusinessFloorNumber,
		BusinessMonthlyRentIDR:    m.BusinessMonthlyRentIDR,
		BusinessManageRent:        m.BusinessManageRent,
		BusinessManageElectricity: m.BusinessManageElectricity,
		BusinessManageGas:         m.BusinessManageGas,
		BusinessManageMaintenance: m.BusinessManageMaintenance,
		BusinessIsActive:          m.BusinessIsActive,
		BusinessCreatedAt:         m.BusinessCreatedAt,
		BusinessUpdatedAt:         m.BusinessUpdatedAt,
		BusinessDeletedAt:         toPtrTimeFromDeletedAt(m.BusinessDeletedAt),
	}
}

func ToBusinessResponses(list []model.BusinessModel) []BusinessResponse {
	out := make([]BusinessResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToBusinessResponse(m))
	}
	return out
}

func BusinessCreateDTOToModel(d BusinessCreateDTO) model.BusinessModel {
	m := model.BusinessModel{
		BusinessName:           d.BusinessName,
		BusinessOwnerName:      d.BusinessOwnerName,
		BusinessPhone:          d.BusinessPhone,
		BusinessShopNumber:     d.BusinessShopNumber,
		BusinessFloorNumber:    d.BusinessFloorNumber,
		BusinessMonthlyRentIDR: d.BusinessMonthlyRentIDR,
		BusinessManageRent:     true, // default: sewa dikelola
		BusinessIsActive:       true,
	}
	if d.BusinessManageRent != nil {
		m.BusinessManageRent = *d.BusinessManageRent
	}
	if d.BusinessManageElectricity != nil {
		m.BusinessManageElectricity = *d.BusinessManageElectricity
	}
	if d.BusinessManageGas != nil {
		m.BusinessManageGas = *d.BusinessManageGas
	}
	if d.BusinessManageMaintenance != nil {
		m.BusinessManageMaintenance = *d.BusinessManageMaintenance
	}
	return m
}

// Apply partial, tidak menyentuh timestamps
func ApplyBusinessUpdate(m *model.BusinessModel, d BusinessUpdateDTO) {
	if d.BusinessName != nil {
		m.BusinessName = *d.BusinessName
	}
	if d.BusinessOwnerName != nil {
		m.BusinessOwnerName = *d.BusinessOwnerName
	}
	if d.BusinessPhone != nil {
		m.BusinessPhone = d.BusinessPhone
	}
	if d.BusinessShopNumber != nil {
		m.BusinessShopNumber = *d.BusinessShopNumber
	}
	if d.BusinessFloorNumber != nil {
		m.BusinessFloorNumber = *d.BusinessFloorNumber
	}
	if d.BusinessMonthlyRentIDR != nil {
		m.BusinessMonthlyRentIDR = *d.BusinessMonthlyRentIDR
	}
	if d.BusinessManageRent != nil {
		m.BusinessManageRent = *d.BusinessManageRent
	}
	if d.BusinessManageElectricity != nil {
		m.BusinessManageElectricity = *d.BusinessManageElectricity
	}
	if d.BusinessManageGas != nil {
		m.BusinessManageGas = *d.BusinessManageGas
	}
	if d.BusinessManageMaintenance != nil {
		m.BusinessManageMaintenance = *d.BusinessManageMaintenance
	}
	if d.BusinessIsActive != nil {
		m.BusinessIsActive = *d.BusinessIsActive
	}
}

func toPtrTimeFromDeletedAt(d gorm.DeletedAt) *time.Time {
	if d.Valid {
		t := d.Time
		return &t
	}
	return nil
}
