// file: internals/seeds/businesses/seed_businesses.go
package businesses

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"plazaku_backend/internals/features/plaza/businesses/model"
)

// Struktur sesuai kolom BusinessModel
type BusinessSeed struct {
	BusinessName              string `json:"business_name"`
	BusinessOwnerName         string `json:"business_owner_name"`
	BusinessShopNumber        string `json:"business_shop_number"`
	BusinessFloorNumber       int16  `json:"business_floor_number"`
	BusinessMonthlyRentIDR    int    `json:"business_monthly_rent_idr"`
	BusinessManageRent        bool   `json:"business_manage_rent"`
	BusinessManageElectricity bool   `json:"business_manage_electricity"`
	BusinessManageGas         bool   `json:"business_manage_gas"`
	BusinessManageMaintenance bool   `json:"business_manage_maintenance"`
}

func SeedBusinessesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var seeds []BusinessSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, s := range seeds {
		var existing model.BusinessModel
		if err := db.Where("business_shop_number = ? AND business_floor_number = ?",
			s.BusinessShopNumber, s.BusinessFloorNumber).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Kios %s lantai %d sudah ditempati, lewati...", s.BusinessShopNumber, s.BusinessFloorNumber)
			continue
		}

		newBusiness := model.BusinessModel{
			BusinessName:              s.BusinessName,
			BusinessOwnerName:         s.BusinessOwnerName,
			BusinessShopNumber:        s.BusinessShopNumber,
			BusinessFloorNumber:       s.BusinessFloorNumber,
			BusinessMonthlyRentIDR:    s.BusinessMonthlyRentIDR,
			BusinessManageRent:        s.BusinessManageRent,
			BusinessManageElectricity: s.BusinessManageElectricity,
			BusinessManageGas:         s.BusinessManageGas,
			BusinessManageMaintenance: s.BusinessManageMaintenance,
			BusinessIsActive:          true,
		}
		if err := db.Create(&newBusiness).Error; err != nil {
			log.Printf("❌ Gagal seed business %s: %v", s.BusinessName, err)
			continue
		}
		log.Printf("✅ Business %s (kios %s lt.%d) berhasil di-seed", s.BusinessName, s.BusinessShopNumber, s.BusinessFloorNumber)
	}
}
