package routes

import (
	"Backend-EventEase/src/controllers"
	"Backend-EventEase/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// ExportRoutes กำหนดเส้นทางสำหรับ Excel export (admin เท่านั้น)
func ExportRoutes(app *fiber.App) {
	exportRoutes := app.Group("/exports")
	exportRoutes.Use(middleware.AuthJWT, middleware.RequireAdmin)
	exportRoutes.Get("/participants", controllers.ExportParticipants)
	exportRoutes.Get("/volunteers", controllers.ExportVolunteers)
}
