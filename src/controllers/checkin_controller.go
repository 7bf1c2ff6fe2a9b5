package controllers

import (
	"Backend-EventEase/src/services/checkin"
	"Backend-EventEase/src/utils"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type scanRequest struct {
	QRPayload string `json:"qrPayload"` // ข้อความที่ decode ได้จากกล้อง
}

// ScanCheckIn godoc
// @Summary Resolve a scanned QR payload and check the participant in
// @Description Maps the decoded QR string to a participant and records a check-in, attributed to the scanning volunteer
// @Tags checkin
// @Accept json
// @Produce json
// @Param scan body scanRequest true "Decoded QR payload"
// @Success 200 {object} checkin.ScanResult
// @Failure 400 {object} models.ErrorResponse
// @Router /checkin/scan [post]
func ScanCheckIn(c *fiber.Ctx) error {
	var body scanRequest
	if err := c.BodyParser(&body); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}

	volunteerID, _ := c.Locals("userId").(string)
	result, err := checkinService.ResolveAndCheckIn(c.Context(), body.QRPayload, volunteerID)
	if err != nil {
		return utils.HandleError(c, http.StatusServiceUnavailable, err.Error())
	}

	// InvalidPayload / NotFound / AlreadyCheckedIn ไม่ใช่ความผิดของระบบ
	// ส่งกลับเป็น status ให้ volunteer เห็นแล้วแจ้งผู้เข้าร่วม
	return c.JSON(result)
}

type checkOutRequest struct {
	ParticipantID string `json:"participantId"`
}

// CheckOut godoc
// @Summary Check a participant out
// @Description Appends a check-out event; allowed even when the participant is not currently checked in
// @Tags checkin
// @Accept json
// @Produce json
// @Param body body checkOutRequest true "Participant to check out"
// @Success 200 {object} models.CheckEvent
// @Failure 404 {object} models.ErrorResponse
// @Router /checkin/out [post]
func CheckOut(c *fiber.Ctx) error {
	var body checkOutRequest
	if err := c.BodyParser(&body); err != nil || body.ParticipantID == "" {
		return utils.HandleError(c, http.StatusBadRequest, "ต้องระบุ participantId")
	}

	volunteerID, _ := c.Locals("userId").(string)
	ev, err := checkinService.CheckOut(c.Context(), body.ParticipantID, volunteerID)
	if err != nil {
		if errors.Is(err, checkin.ErrParticipantNotFound) {
			return utils.HandleError(c, http.StatusNotFound, "Participant not found")
		}
		return utils.HandleError(c, http.StatusServiceUnavailable, err.Error())
	}
	return c.JSON(ev)
}

// GetCheckinStatus godoc
// @Summary Current check-in status of a participant
// @Description Status derived from the latest event in the append-only log
// @Tags checkin
// @Produce json
// @Param id path string true "Participant ID"
// @Success 200 {object} map[string]interface{}
// @Router /checkin/status/{id} [get]
func GetCheckinStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	checkedIn, err := checkinService.IsCheckedIn(c.Context(), id)
	if err != nil {
		return utils.HandleError(c, http.StatusServiceUnavailable, err.Error())
	}
	return c.JSON(fiber.Map{"participantId": id, "checkedIn": checkedIn})
}
