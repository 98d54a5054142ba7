// file: internals/features/plaza/businesses/model/business_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BusinessModel struct {
	// PK
	BusinessID uuid.UUID `gorm:"column:business_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"business_id"`

	// Identitas tenant
	BusinessName      string  `gorm:"column:business_name;type:varchar(120);not null" json:"business_name"`
	BusinessOwnerName string  `gorm:"column:business_owner_name;type:varchar(120);not null" json:"business_owner_name"`
	BusinessPhone     *string `gorm:"column:business_phone;type:varchar(30)" json:"business_phone,omitempty"`

	// Lokasi kios: shop + floor unik (satu kios satu tenant)
	BusinessShopNumber  string `gorm:"column:business_shop_number;type:varchar(20);not null;uniqueIndex:uq_business_location,priority:1" json:"business_shop_number"`
	BusinessFloorNumber int16  `gorm:"column:business_floor_number;type:smallint;not null;uniqueIndex:uq_business_location,priority:2" json:"business_floor_number"`

	// Sewa bulanan tetap
	BusinessMonthlyRentIDR int `gorm:"column:business_monthly_rent_idr;not null;check:business_monthly_rent_idr>=0" json:"business_monthly_rent_idr"`

	// Flag pengelolaan per jenis tagihan (independen satu sama lain)
	BusinessManageRent        bool `gorm:"column:business_manage_rent;not null;default:true" json:"business_manage_rent"`
	BusinessManageElectricity bool `gorm:"column:business_manage_electricity;not null;default:false" json:"business_manage_electricity"`
	BusinessManageGas         bool `gorm:"column:business_manage_gas;not null;default:false" json:"business_manage_gas"`
	BusinessManageMaintenance bool `gorm:"column:business_manage_maintenance;not null;default:false" json:"business_manage_maintenance"`

	BusinessIsActive bool `gorm:"column:business_is_active;not null;default:true;index:ix_business_is_active" json:"business_is_active"`

	// Timestamps (eksplisit)
	BusinessCreatedAt time.Time      `gorm:"column:business_created_at;not null;default:now()" json:"business_created_at"`
	BusinessUpdatedAt time.Time      `gorm:"column:business_updated_at;not null;default:now()" json:"business_updated_at"`
	BusinessDeletedAt gorm.DeletedAt `gorm:"column:business_deleted_at;index" json:"-"`
}

func (BusinessModel) TableName() string {
	return "businesses"
}

func (m *BusinessModel) BeforeCreate(tx *gorm.DB) error {
	if m.BusinessID == uuid.Nil {
		m.BusinessID = uuid.New()
	}
	now := time.Now()
	if m.BusinessCreatedAt.IsZero() {
		m.BusinessCreatedAt = now
	}
	m.BusinessUpdatedAt = now
	return nil
}

func (m *BusinessModel) BeforeUpdate(tx *gorm.DB) error {
	m.BusinessUpdatedAt = time.Now()
	return nil
}
