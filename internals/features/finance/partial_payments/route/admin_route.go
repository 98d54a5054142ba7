// file: internals/features/finance/partial_payments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ppController "plazaku_backend/internals/features/finance/partial_payments/controller"
)

// PartialPaymentAdminRoutes — plan cicilan + ledger setoran, khusus admin.
func PartialPaymentAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := ppController.NewPartialPaymentHandler(db)

	pp := r.Group("/partial-payments")
	pp.Get("/", h.List)
	pp.Post("/", h.Create)
	pp.Get("/:id", h.GetByID)
	pp.Post("/:id/entries", h.AppendEntry)
	pp.Post("/:id/cancel", h.Cancel)
}
