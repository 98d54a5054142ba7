// file: internals/seeds/runner.go
package seeds

import (
	businesses "plazaku_backend/internals/seeds/businesses"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {

	//* Businesses (tenant kios demo)
	businesses.SeedBusinessesFromJSON(db, "internals/seeds/businesses/data_businesses.json")
}
