// file: internals/features/finance/payments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "plazaku_backend/internals/features/finance/payments/controller"
)

// PaymentAdminRoutes — riwayat kuitansi + verifikasi setoran tenant.
func PaymentAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := paymentController.NewPaymentHandler(db)

	payments := r.Group("/payments")
	payments.Get("/", h.List)
	payments.Post("/:id/approve", h.Approve)
}
