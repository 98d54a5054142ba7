// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	advanceRoute "plazaku_backend/internals/features/finance/advances/route"
	billRoute "plazaku_backend/internals/features/finance/bills/route"
	mrRoute "plazaku_backend/internals/features/finance/meter_readings/route"
	ppRoute "plazaku_backend/internals/features/finance/partial_payments/route"
	paymentRoute "plazaku_backend/internals/features/finance/payments/route"
	businessRoute "plazaku_backend/internals/features/plaza/businesses/route"
	authMiddleware "plazaku_backend/internals/middlewares/auth"
	"plazaku_backend/internals/constants"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → tanpa auth (webhook gateway)
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")
	paymentRoute.PaymentPublicRoutes(public, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.RoleMiddleware(constants.RoleAdmin),
	)

	// ===================== TENANT =====================
	log.Println("[INFO] Setting up TENANT group...")
	tenant := app.Group("/api/u",
		authMiddleware.AuthMiddleware(),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Business routes...")
	businessRoute.BusinessAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Finance routes...")
	billRoute.BillAdminRoutes(admin, db)
	billRoute.BillUserRoutes(tenant, db)
	mrRoute.MeterReadingAdminRoutes(admin, db)
	ppRoute.PartialPaymentAdminRoutes(admin, db)
	advanceRoute.AdvanceAdminRoutes(admin, db)
	paymentRoute.PaymentAdminRoutes(admin, db)
	paymentRoute.PaymentUserRoutes(tenant, db)
}
