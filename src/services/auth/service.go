package auth

import (
	"Backend-EventEase/src/models"
	"Backend-EventEase/src/services/volunteers"
	"Backend-EventEase/src/utils"
	"context"
	"errors"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const refreshTokenTTL = 7 * 24 * time.Hour

// ErrInvalidPIN admin PIN ไม่ถูกต้อง
var ErrInvalidPIN = errors.New("invalid admin PIN")

// LoginResult token ที่ออกให้หลัง login สำเร็จ
type LoginResult struct {
	AccessToken  string            `json:"accessToken"`
	RefreshToken string            `json:"refreshToken"`
	Volunteer    *models.Volunteer `json:"volunteer,omitempty"`
}

// Service ออกและต่ออายุ token สำหรับ admin และ volunteer
type Service struct {
	volunteers *volunteers.Service
}

func NewService(vs *volunteers.Service) *Service {
	return &Service{volunteers: vs}
}

// AdminLogin checks the PIN against ADMIN_PIN_HASH (bcrypt) or, in
// development, the plain ADMIN_PIN variable, and issues an admin JWT.
func (s *Service) AdminLogin(pin string) (LoginResult, error) {
	if hash := os.Getenv("ADMIN_PIN_HASH"); hash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)); err != nil {
			return LoginResult{}, ErrInvalidPIN
		}
	} else {
		expected := os.Getenv("ADMIN_PIN")
		if expected == "" {
			expected = "2024" // dev fallback
		}
		if pin != expected {
			return LoginResult{}, ErrInvalidPIN
		}
	}

	return s.issueTokens("admin", "", utils.RoleAdmin, nil)
}

// VolunteerLogin authenticates by email and issues a volunteer JWT.
func (s *Service) VolunteerLogin(ctx context.Context, email string) (LoginResult, error) {
	v, err := s.volunteers.Authenticate(ctx, email)
	if err != nil {
		return LoginResult{}, err
	}
	return s.issueTokens(v.ID, v.Email, utils.RoleVolunteer, v)
}

// Refresh validates the refresh token and issues a fresh token pair.
func (s *Service) Refresh(userID, email, role, refreshToken string) (LoginResult, error) {
	ok, err := utils.ValidateRefreshToken(userID, refreshToken)
	if err != nil {
		return LoginResult{}, err
	}
	if !ok {
		return LoginResult{}, errors.New("invalid refresh token")
	}
	return s.issueTokens(userID, email, role, nil)
}

// Logout ลบ refresh token ออกจาก Redis
func (s *Service) Logout(userID string) error {
	return utils.DeleteRefreshToken(userID)
}

func (s *Service) issueTokens(userID, email, role string, v *models.Volunteer) (LoginResult, error) {
	access, err := utils.GenerateJWT(userID, email, role)
	if err != nil {
		return LoginResult{}, err
	}

	refresh := utils.GenerateRandomString(64)
	if err := utils.StoreRefreshToken(userID, refresh, refreshTokenTTL); err != nil {
		return LoginResult{}, err
	}

	return LoginResult{AccessToken: access, RefreshToken: refresh, Volunteer: v}, nil
}
