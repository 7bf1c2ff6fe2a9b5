package routes

import (
	"Backend-EventEase/src/controllers"
	"Backend-EventEase/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// VolunteerRoutes กำหนดเส้นทางสำหรับ Volunteer API
func VolunteerRoutes(app *fiber.App) {
	volunteerRoutes := app.Group("/volunteers")
	volunteerRoutes.Post("/", controllers.RegisterVolunteer) // ลงทะเบียนอาสาสมัคร
	volunteerRoutes.Get("/", middleware.AuthJWT, middleware.RequireAdmin, controllers.GetVolunteers)
}
