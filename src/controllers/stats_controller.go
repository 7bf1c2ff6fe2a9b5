package controllers

import (
	"Backend-EventEase/src/models"
	"Backend-EventEase/src/utils"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// GetStats godoc
// @Summary Dashboard statistics snapshot
// @Description Point-in-time registration and check-in statistics
// @Tags stats
// @Produce json
// @Success 200 {object} models.DashboardStats
// @Router /stats [get]
func GetStats(c *fiber.Ctx) error {
	snapshot, err := statsService.Snapshot(c.Context())
	if err != nil {
		return utils.HandleError(c, http.StatusServiceUnavailable, "ไม่สามารถคำนวณสถิติได้")
	}
	return c.JSON(snapshot)
}

// enqueueLatest ใส่ snapshot ลง buffer; ถ้าเต็ม (client ช้า) ทิ้งตัวเก่าสุด
// ไม่ใช่ตัวใหม่ client ที่ตามไม่ทันยังจบที่สถานะล่าสุดเสมอ
func enqueueLatest(updates chan models.DashboardStats, s models.DashboardStats) {
	select {
	case updates <- s:
	default:
		select {
		case <-updates:
		default:
		}
		select {
		case updates <- s:
		default:
		}
	}
}

// StatsLive streams DashboardStats snapshots over a websocket: one snapshot
// immediately on connect, then one on every change to the underlying
// collections. The subscription is released when the client disconnects.
func StatsLive() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		updates := make(chan models.DashboardStats, 8)
		unsubscribe, err := statsService.Subscribe(func(s models.DashboardStats) {
			enqueueLatest(updates, s)
		})
		if err != nil {
			// store ใช้งานไม่ได้ตอน subscribe แจ้ง client แล้วปิดให้ retry
			_ = conn.WriteJSON(fiber.Map{"error": "Statistics temporarily unavailable"})
			return
		}
		defer unsubscribe()

		// read pump: ตรวจจับว่า client ปิด connection
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case snapshot := <-updates:
				if err := conn.WriteJSON(snapshot); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	})
}
