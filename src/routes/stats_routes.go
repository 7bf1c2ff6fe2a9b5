package routes

import (
	"Backend-EventEase/src/controllers"
	"Backend-EventEase/src/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// StatsRoutes กำหนดเส้นทางสำหรับ dashboard statistics
func StatsRoutes(app *fiber.App) {
	statsRoutes := app.Group("/stats")
	statsRoutes.Get("/", middleware.AuthJWT, middleware.RequireAdmin, controllers.GetStats)

	// live feed ผ่าน websocket
	statsRoutes.Use("/live", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	statsRoutes.Get("/live", controllers.StatsLive())
}
