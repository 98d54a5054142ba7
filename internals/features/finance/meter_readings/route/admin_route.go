// file: internals/features/finance/meter_readings/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	mrController "plazaku_backend/internals/features/finance/meter_readings/controller"
)

// MeterReadingAdminRoutes — pencatatan meteran + invoice, khusus admin.
func MeterReadingAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := mrController.NewMeterReadingHandler(db)

	mr := r.Group("/meter-readings")
	mr.Get("/", h.List)
	mr.Post("/", h.Create)
	mr.Get("/:id", h.GetByID)
	mr.Patch("/:id", h.Update)
	mr.Delete("/:id", h.Delete)

	mr.Post("/:id/mark-paid", h.MarkPaid)
	mr.Post("/:id/waveoff", h.Waveoff)
	mr.Get("/:id/document", h.Document)
}
