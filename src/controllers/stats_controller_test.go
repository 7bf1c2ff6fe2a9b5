package controllers

import (
	"Backend-EventEase/src/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnqueueLatest(t *testing.T) {
	t.Run("TestFullBufferDropsOldestNotNewest", func(t *testing.T) {
		updates := make(chan models.DashboardStats, 2)

		enqueueLatest(updates, models.DashboardStats{TotalRegistrations: 1})
		enqueueLatest(updates, models.DashboardStats{TotalRegistrations: 2})
		enqueueLatest(updates, models.DashboardStats{TotalRegistrations: 3}) // เต็มแล้ว

		// ตัวเก่าสุด (1) ถูกทิ้ง snapshot ล่าสุดต้องยังอยู่ท้ายคิว
		first := <-updates
		second := <-updates
		assert.Equal(t, 2, first.TotalRegistrations)
		assert.Equal(t, 3, second.TotalRegistrations)

		select {
		case <-updates:
			t.Fatal("buffer should be empty")
		default:
		}
	})

	t.Run("TestEnqueueWithRoom", func(t *testing.T) {
		updates := make(chan models.DashboardStats, 2)

		enqueueLatest(updates, models.DashboardStats{TotalRegistrations: 7})

		got := <-updates
		assert.Equal(t, 7, got.TotalRegistrations)
	})
}
