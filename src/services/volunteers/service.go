package volunteers

import (
	"Backend-EventEase/src/models"
	"Backend-EventEase/src/store"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ErrInvalidCredentials ไม่พบ volunteer จาก email ที่ใช้ login
var ErrInvalidCredentials = errors.New("invalid email")

// Service จัดการการลงทะเบียนและ login ของอาสาสมัคร
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// Register validates and inserts a new volunteer (unique email).
func (s *Service) Register(ctx context.Context, v models.Volunteer) (models.Volunteer, error) {
	v.Email = strings.ToLower(strings.TrimSpace(v.Email))
	if err := validate.Struct(v); err != nil {
		return models.Volunteer{}, fmt.Errorf("invalid volunteer data: %w", err)
	}

	created, err := s.store.InsertVolunteer(ctx, v)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateRegistration) {
			return models.Volunteer{}, store.ErrDuplicateRegistration
		}
		return models.Volunteer{}, fmt.Errorf("register volunteer failed: %w", err)
	}
	return created, nil
}

// Authenticate looks a volunteer up by login email and stamps lastLogin.
func (s *Service) Authenticate(ctx context.Context, email string) (*models.Volunteer, error) {
	v, err := s.store.FindVolunteerByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.store.TouchVolunteerLogin(ctx, v.ID); err != nil {
		log.Printf("⚠️ Failed to stamp lastLogin for %s: %v", v.ID, err)
	}
	return v, nil
}

// GetAll คืน snapshot ของอาสาสมัครทั้งหมด
func (s *Service) GetAll(ctx context.Context) ([]models.Volunteer, error) {
	return s.store.AllVolunteers(ctx)
}
