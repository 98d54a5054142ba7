// file: internals/features/finance/advances/model/advance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — jenis & status advance
// =========================================================

type AdvanceType string

const (
	AdvanceTypeRent        AdvanceType = "rent"
	AdvanceTypeElectricity AdvanceType = "electricity"
	AdvanceTypeMaintenance AdvanceType = "maintenance"
)

type AdvanceStatus string

const (
	AdvanceStatusActive    AdvanceStatus = "active"
	AdvanceStatusUsed      AdvanceStatus = "used"
	AdvanceStatusCancelled AdvanceStatus = "cancelled"
)

// =========================================================
// MODEL
// =========================================================

// AdvanceModel = uang muka yang di-tag ke (business, type, month, year).
// Maksimal SATU advance aktif per tuple. Di DB dijaga partial unique index
// uq_advance_active (AutoMigrate tidak bisa bikin index ber-WHERE; DDL-nya
// di internals/databases/migrations/20260301_partial_unique_indexes.sql).
// Pre-check di controller hanya untuk pesan yang ramah; index yang jadi guard.
type AdvanceModel struct {
	AdvanceID uuid.UUID `gorm:"column:advance_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"advance_id"`

	AdvanceBusinessID uuid.UUID `gorm:"column:advance_business_id;type:uuid;not null;index:ix_advance_business" json:"advance_business_id"`

	AdvanceType  AdvanceType `gorm:"column:advance_type;type:varchar(20);not null" json:"advance_type"`
	AdvanceMonth int16       `gorm:"column:advance_month;type:smallint;not null" json:"advance_month"`
	AdvanceYear  int16       `gorm:"column:advance_year;type:smallint;not null" json:"advance_year"`

	AdvanceAmountIDR int `gorm:"column:advance_amount_idr;not null;check:advance_amount_idr>0" json:"advance_amount_idr"`

	AdvanceStatus AdvanceStatus `gorm:"column:advance_status;type:varchar(20);not null;default:'active';index:ix_advance_status" json:"advance_status"`
	AdvanceNote   *string       `gorm:"column:advance_note;type:text" json:"advance_note,omitempty"`

	AdvanceCreatedAt time.Time      `gorm:"column:advance_created_at;not null;default:now()" json:"advance_created_at"`
	AdvanceUpdatedAt time.Time      `gorm:"column:advance_updated_at;not null;default:now()" json:"advance_updated_at"`
	AdvanceDeletedAt gorm.DeletedAt `gorm:"column:advance_deleted_at;index" json:"-"`
}

func (AdvanceModel) TableName() string {
	return "advances"
}

func (m *AdvanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.AdvanceID == uuid.Nil {
		m.AdvanceID = uuid.New()
	}
	now := time.Now()
	if m.AdvanceCreatedAt.IsZero() {
		m.AdvanceCreatedAt = now
	}
	m.AdvanceUpdatedAt = now
	return nil
}

func (m *AdvanceModel) BeforeUpdate(tx *gorm.DB) error {
	m.AdvanceUpdatedAt = time.Now()
	return nil
}
