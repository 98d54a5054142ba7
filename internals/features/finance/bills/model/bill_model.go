// file: internals/features/finance/bills/model/bill_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — jenis & status tagihan
// =========================================================

// BillKind eksplisit: tidak ada lagi field yang maknanya berubah-ubah
// tergantung jenis tagihan. Rent SELALU lewat bill_rent_idr.
type BillKind string

const (
	BillKindRent        BillKind = "rent"
	BillKindMaintenance BillKind = "maintenance"
	BillKindElectricity BillKind = "electricity"
	BillKindGas         BillKind = "gas"
	BillKindCombined    BillKind = "combined"
)

type BillStatus string

const (
	BillStatusPending BillStatus = "pending"
	BillStatusPaid    BillStatus = "paid"
	BillStatusOverdue BillStatus = "overdue" // informasional, diset oleh job berbasis waktu
	BillStatusWaveoff BillStatus = "waveoff" // kewajiban diputihkan, bukan dibayar
)

// =========================================================
// MODEL
// =========================================================

// BillModel = satu dokumen tagihan untuk satu business pada satu periode.
// Invariant: bill_total_idr = Σ komponen (dihitung service, bukan DB).
// Nomor tagihan unik global (index uq_bill_number); uniqueness per
// (business, kind, month, year) dijaga uq_bill_period untuk proteksi
// idempotent re-run generate.
type BillModel struct {
	BillID uuid.UUID `gorm:"column:bill_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"bill_id"`

	BillBusinessID uuid.UUID `gorm:"column:bill_business_id;type:uuid;not null;index:ix_bill_business;uniqueIndex:uq_bill_period,priority:1" json:"bill_business_id"`

	// Nomor tagihan {PREFIX}-{YYYY}-{NNN}, scope per prefix+tahun
	BillNumber string `gorm:"column:bill_number;type:varchar(30);not null;uniqueIndex:uq_bill_number" json:"bill_number"`

	BillKind  BillKind `gorm:"column:bill_kind;type:varchar(20);not null;uniqueIndex:uq_bill_period,priority:2" json:"bill_kind"`
	BillMonth int16    `gorm:"column:bill_month;type:smallint;not null;uniqueIndex:uq_bill_period,priority:3" json:"bill_month"`
	BillYear  int16    `gorm:"column:bill_year;type:smallint;not null;uniqueIndex:uq_bill_period,priority:4" json:"bill_year"`

	BillIssueDate time.Time  `gorm:"column:bill_issue_date;type:date;not null" json:"bill_issue_date"`
	BillDueDate   *time.Time `gorm:"column:bill_due_date;type:date" json:"bill_due_date,omitempty"`

	// Komponen biaya (semuanya >= 0), makna tidak tergantung kind
	BillRentIDR        int `gorm:"column:bill_rent_idr;not null;default:0;check:bill_rent_idr>=0" json:"bill_rent_idr"`
	BillMaintenanceIDR int `gorm:"column:bill_maintenance_idr;not null;default:0;check:bill_maintenance_idr>=0" json:"bill_maintenance_idr"`
	BillElectricityIDR int `gorm:"column:bill_electricity_idr;not null;default:0;check:bill_electricity_idr>=0" json:"bill_electricity_idr"`
	BillGasIDR         int `gorm:"column:bill_gas_idr;not null;default:0;check:bill_gas_idr>=0" json:"bill_gas_idr"`
	BillWaterIDR       int `gorm:"column:bill_water_idr;not null;default:0;check:bill_water_idr>=0" json:"bill_water_idr"`
	BillOtherIDR       int `gorm:"column:bill_other_idr;not null;default:0;check:bill_other_idr>=0" json:"bill_other_idr"`

	BillTotalIDR int `gorm:"column:bill_total_idr;not null;default:0;check:bill_total_idr>=0" json:"bill_total_idr"`

	// Potongan advance yang sudah diterapkan ke komponen rent (audit)
	BillAdvanceOffsetIDR int `gorm:"column:bill_advance_offset_idr;not null;default:0" json:"bill_advance_offset_idr"`

	BillStatus BillStatus `gorm:"column:bill_status;type:varchar(20);not null;default:'pending';index:ix_bill_status" json:"bill_status"`
	BillPaidAt *time.Time `gorm:"column:bill_paid_at" json:"bill_paid_at,omitempty"`

	// Referensi syarat & ketentuan yang dipilih saat generate
	BillTermIDs pq.Int64Array `gorm:"column:bill_term_ids;type:bigint[]" json:"bill_term_ids,omitempty"`

	BillNote *string `gorm:"column:bill_note;type:text" json:"bill_note,omitempty"`

	BillCreatedAt time.Time      `gorm:"column:bill_created_at;not null;default:now();index:ix_bill_created_at" json:"bill_created_at"`
	BillUpdatedAt time.Time      `gorm:"column:bill_updated_at;not null;default:now()" json:"bill_updated_at"`
	BillDeletedAt gorm.DeletedAt `gorm:"column:bill_deleted_at;index" json:"-"`
}

func (BillModel) TableName() string {
	return "bills"
}

func (m *BillModel) BeforeCreate(tx *gorm.DB) error {
	if m.BillID == uuid.Nil {
		m.BillID = uuid.New()
	}
	now := time.Now()
	if m.BillCreatedAt.IsZero() {
		m.BillCreatedAt = now
	}
	m.BillUpdatedAt = now
	return nil
}

func (m *BillModel) BeforeUpdate(tx *gorm.DB) error {
	m.BillUpdatedAt = time.Now()
	return nil
}
