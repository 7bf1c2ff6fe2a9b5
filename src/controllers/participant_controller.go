package controllers

import (
	"Backend-EventEase/src/models"
	"Backend-EventEase/src/store"
	"Backend-EventEase/src/utils"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// RegisterParticipant godoc
// @Summary Register a participant
// @Description Register a new participant and assign a QR code payload
// @Tags participants
// @Accept json
// @Produce json
// @Param participant body models.Participant true "Participant to register"
// @Success 201 {object} models.Participant
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /participants [post]
func RegisterParticipant(c *fiber.Ctx) error {
	var p models.Participant
	if err := c.BodyParser(&p); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}

	created, err := participantService.Register(c.Context(), p)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateRegistration) {
			// email หรือ collegeId ซ้ำ → ปฏิเสธทั้งรายการ
			return utils.HandleError(c, http.StatusConflict, "Email or college ID already registered")
		}
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	return c.Status(http.StatusCreated).JSON(created)
}

// GetParticipants godoc
// @Summary List all participants
// @Tags participants
// @Produce json
// @Success 200 {array} models.Participant
// @Router /participants [get]
func GetParticipants(c *fiber.Ctx) error {
	all, err := participantService.GetAll(c.Context())
	if err != nil {
		return utils.HandleError(c, http.StatusServiceUnavailable, "ไม่สามารถดึงข้อมูลผู้เข้าร่วมได้")
	}
	return c.JSON(all)
}

// GetParticipantByID godoc
// @Summary Get a participant by ID
// @Tags participants
// @Produce json
// @Param id path string true "Participant ID"
// @Success 200 {object} models.Participant
// @Failure 404 {object} models.ErrorResponse
// @Router /participants/{id} [get]
func GetParticipantByID(c *fiber.Ctx) error {
	p, err := participantService.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.HandleError(c, http.StatusNotFound, "Participant not found")
		}
		return utils.HandleError(c, http.StatusServiceUnavailable, err.Error())
	}
	return c.JSON(p)
}

// GetParticipantQRCode godoc
// @Summary Download a participant's QR code image
// @Tags participants
// @Produce png
// @Param id path string true "Participant ID"
// @Success 200 {file} binary
// @Failure 404 {object} models.ErrorResponse
// @Router /participants/{id}/qrcode [get]
func GetParticipantQRCode(c *fiber.Ctx) error {
	png, err := participantService.QRCodePNG(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.HandleError(c, http.StatusNotFound, "Participant not found")
		}
		return utils.HandleError(c, http.StatusInternalServerError, "ไม่สามารถสร้าง QR Code ได้")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
