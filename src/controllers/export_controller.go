package controllers

import (
	"Backend-EventEase/src/utils"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportParticipants godoc
// @Summary Export participants to Excel
// @Description Point-in-time export of all participants joined with their latest check-in
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /exports/participants [get]
func ExportParticipants(c *fiber.Ctx) error {
	data, filename, err := exportService.ParticipantsXLSX(c.Context())
	if err != nil {
		return utils.HandleError(c, http.StatusServiceUnavailable, "ไม่สามารถ export ข้อมูลได้")
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}

// ExportVolunteers godoc
// @Summary Export volunteers to Excel
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /exports/volunteers [get]
func ExportVolunteers(c *fiber.Ctx) error {
	data, filename, err := exportService.VolunteersXLSX(c.Context())
	if err != nil {
		return utils.HandleError(c, http.StatusServiceUnavailable, "ไม่สามารถ export ข้อมูลได้")
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}
