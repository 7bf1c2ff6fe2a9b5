package routes

import (
	"Backend-EventEase/src/controllers"
	"Backend-EventEase/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// ParticipantRoutes กำหนดเส้นทางสำหรับ Participant API
func ParticipantRoutes(app *fiber.App) {
	participantRoutes := app.Group("/participants")
	participantRoutes.Post("/", controllers.RegisterParticipant)                        // ลงทะเบียนผู้เข้าร่วม
	participantRoutes.Get("/:id", controllers.GetParticipantByID)                       // ข้อมูลผู้เข้าร่วมตาม ID
	participantRoutes.Get("/:id/qrcode", controllers.GetParticipantQRCode)              // ดาวน์โหลดรูป QR
	participantRoutes.Get("/", middleware.AuthJWT, middleware.RequireAdmin, controllers.GetParticipants) // admin เท่านั้น
}
