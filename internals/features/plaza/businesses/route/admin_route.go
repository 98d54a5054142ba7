// file: internals/features/plaza/businesses/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"plazaku_backend/internals/features/plaza/businesses/controller"
)

// Admin routes (CRUD tenant / pengelola plaza)
func BusinessAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := controller.NewBusinessHandler(db)

	grp := admin.Group("/businesses")
	{
		grp.Get("/", h.List)
		grp.Get("/:id", h.GetByID)
		grp.Post("/", h.Create)
		grp.Patch("/:id", h.Update)
		grp.Delete("/:id", h.Delete)
	}
}
