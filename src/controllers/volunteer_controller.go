package controllers

import (
	"Backend-EventEase/src/models"
	"Backend-EventEase/src/store"
	"Backend-EventEase/src/utils"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// RegisterVolunteer godoc
// @Summary Register a volunteer
// @Tags volunteers
// @Accept json
// @Produce json
// @Param volunteer body models.Volunteer true "Volunteer to register"
// @Success 201 {object} models.Volunteer
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /volunteers [post]
func RegisterVolunteer(c *fiber.Ctx) error {
	var v models.Volunteer
	if err := c.BodyParser(&v); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}

	created, err := volunteerService.Register(c.Context(), v)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateRegistration) {
			return utils.HandleError(c, http.StatusConflict, "Email already registered")
		}
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	return c.Status(http.StatusCreated).JSON(created)
}

// GetVolunteers godoc
// @Summary List all volunteers
// @Tags volunteers
// @Produce json
// @Success 200 {array} models.Volunteer
// @Router /volunteers [get]
func GetVolunteers(c *fiber.Ctx) error {
	all, err := volunteerService.GetAll(c.Context())
	if err != nil {
		return utils.HandleError(c, http.StatusServiceUnavailable, "ไม่สามารถดึงข้อมูลอาสาสมัครได้")
	}
	return c.JSON(all)
}
