// file: internals/features/finance/bills/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billController "plazaku_backend/internals/features/finance/bills/controller"
)

// BillAdminRoutes — CRUD + lifecycle + generate, khusus admin.
func BillAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := billController.NewBillHandler(db)

	bills := r.Group("/bills")
	bills.Get("/", h.List)
	bills.Post("/", h.Create)
	bills.Post("/generate", h.Generate)
	bills.Get("/:id", h.GetByID)
	bills.Patch("/:id", h.Update)
	bills.Delete("/:id", h.Delete)

	bills.Post("/:id/mark-paid", h.MarkPaid)
	bills.Post("/:id/waveoff", h.Waveoff)
	bills.Post("/:id/mark-pending", h.MarkPending)
	bills.Post("/:id/mark-overdue", h.MarkOverdue)
	bills.Get("/:id/document", h.Document)
}
