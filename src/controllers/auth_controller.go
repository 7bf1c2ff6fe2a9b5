package controllers

import (
	"Backend-EventEase/src/services/auth"
	"Backend-EventEase/src/services/volunteers"
	"Backend-EventEase/src/utils"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// AdminLogin godoc
// @Summary Admin login with PIN
// @Tags auth
// @Accept json
// @Produce json
// @Param body body object true "PIN"
// @Success 200 {object} auth.LoginResult
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/admin/login [post]
func AdminLogin(c *fiber.Ctx) error {
	var body struct {
		PIN string `json:"pin"`
	}
	if err := c.BodyParser(&body); err != nil || body.PIN == "" {
		return utils.HandleError(c, http.StatusBadRequest, "ต้องระบุ PIN")
	}

	result, err := authService.AdminLogin(body.PIN)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidPIN) {
			return utils.HandleError(c, http.StatusUnauthorized, "Invalid PIN")
		}
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(result)
}

// VolunteerLogin godoc
// @Summary Volunteer login with registered email
// @Tags auth
// @Accept json
// @Produce json
// @Param body body object true "Email"
// @Success 200 {object} auth.LoginResult
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/volunteer/login [post]
func VolunteerLogin(c *fiber.Ctx) error {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&body); err != nil || body.Email == "" {
		return utils.HandleError(c, http.StatusBadRequest, "ต้องระบุ email")
	}

	result, err := authService.VolunteerLogin(c.Context(), body.Email)
	if err != nil {
		if errors.Is(err, volunteers.ErrInvalidCredentials) {
			return utils.HandleError(c, http.StatusUnauthorized, "Email not registered as a volunteer")
		}
		return utils.HandleError(c, http.StatusServiceUnavailable, err.Error())
	}
	return c.JSON(result)
}

// RefreshToken godoc
// @Summary Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} auth.LoginResult
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/refresh [post]
func RefreshToken(c *fiber.Ctx) error {
	var body struct {
		UserID       string `json:"userId"`
		Email        string `json:"email"`
		Role         string `json:"role"`
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.BodyParser(&body); err != nil || body.RefreshToken == "" {
		return utils.HandleError(c, http.StatusBadRequest, "ต้องระบุ refreshToken")
	}

	result, err := authService.Refresh(body.UserID, body.Email, body.Role, body.RefreshToken)
	if err != nil {
		return utils.HandleError(c, http.StatusUnauthorized, "Invalid refresh token")
	}
	return c.JSON(result)
}

// Logout godoc
// @Summary Logout and revoke the refresh token
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/logout [post]
func Logout(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)
	if err := authService.Logout(userID); err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}
