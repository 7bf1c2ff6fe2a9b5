package routes

import (
	"Backend-EventEase/src/controllers"
	"Backend-EventEase/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// CheckInRoutes กำหนดเส้นทางสำหรับการเช็คชื่อ (volunteer ต้อง login ก่อน)
func CheckInRoutes(app *fiber.App) {
	checkInRoutes := app.Group("/checkin")
	checkInRoutes.Use(middleware.AuthJWT)
	checkInRoutes.Post("/scan", controllers.ScanCheckIn)          // QR payload → check-in
	checkInRoutes.Post("/out", controllers.CheckOut)              // เช็คชื่อออก
	checkInRoutes.Get("/status/:id", controllers.GetCheckinStatus)
}
