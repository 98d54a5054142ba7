// file: internals/features/finance/payments/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "plazaku_backend/internals/features/finance/payments/controller"
)

// PaymentUserRoutes — tenant: minta snap token + lihat riwayat sendiri.
func PaymentUserRoutes(r fiber.Router, db *gorm.DB) {
	h := paymentController.NewPaymentHandler(db)

	payments := r.Group("/payments")
	payments.Get("/", h.List)
	payments.Post("/snap-token", h.SnapToken)
}
