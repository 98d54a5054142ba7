// file: internals/features/finance/payments/route/public_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "plazaku_backend/internals/features/finance/payments/controller"
)

// PaymentPublicRoutes — webhook Midtrans, tanpa auth.
func PaymentPublicRoutes(r fiber.Router, db *gorm.DB) {
	h := paymentController.NewPaymentHandler(db)
	r.Post("/payments/notification", h.Notification)
}
