package routes

import (
	"Backend-EventEase/src/controllers"
	"Backend-EventEase/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// AuthRoutes กำหนดเส้นทางสำหรับ login/logout
func AuthRoutes(app *fiber.App) {
	authRoutes := app.Group("/auth")
	authRoutes.Post("/admin/login", controllers.AdminLogin)
	authRoutes.Post("/volunteer/login", controllers.VolunteerLogin)
	authRoutes.Post("/refresh", controllers.RefreshToken)
	authRoutes.Post("/logout", middleware.AuthJWT, controllers.Logout)
}
