// file: internals/features/finance/advances/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"plazaku_backend/internals/features/finance/advances/controller"
)

func AdvanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := controller.NewAdvanceHandler(db)

	grp := admin.Group("/advances")
	{
		grp.Get("/", h.List)
		grp.Post("/", h.Create)
		grp.Patch("/:id", h.Update)
		grp.Post("/:id/cancel", h.Cancel)
		grp.Post("/:id/mark-used", h.MarkUsed)
	}
}
