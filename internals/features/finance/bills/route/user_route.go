// file: internals/features/finance/bills/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billController "plazaku_backend/internals/features/finance/bills/controller"
)

// BillUserRoutes — tenant hanya boleh lihat tagihan + dokumen.
func BillUserRoutes(r fiber.Router, db *gorm.DB) {
	h := billController.NewBillHandler(db)

	bills := r.Group("/bills")
	bills.Get("/", h.List)
	bills.Get("/:id", h.GetByID)
	bills.Get("/:id/document", h.Document)
}
