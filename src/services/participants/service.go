package participants

import (
	"Backend-EventEase/src/models"
	"Backend-EventEase/src/qrcode"
	"Backend-EventEase/src/store"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Service จัดการการลงทะเบียนผู้เข้าร่วมและ QR Code
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// Register validates and inserts a new participant. The store rejects the
// whole insert on a duplicate email or collegeId (no partial write) and
// assigns id and registeredAt. The QR payload is set equal to the id.
func (s *Service) Register(ctx context.Context, p models.Participant) (models.Participant, error) {
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	if err := validate.Struct(p); err != nil {
		return models.Participant{}, fmt.Errorf("invalid participant data: %w", err)
	}

	created, err := s.store.InsertParticipant(ctx, p)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateRegistration) {
			return models.Participant{}, store.ErrDuplicateRegistration
		}
		return models.Participant{}, fmt.Errorf("register participant failed: %w", err)
	}
	return created, nil
}

// GetByID ดึงข้อมูลผู้เข้าร่วมตาม ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.Participant, error) {
	return s.store.FindParticipantByID(ctx, id)
}

// GetAll คืน snapshot ของผู้เข้าร่วมทั้งหมด (point-in-time, สำหรับ export และ admin)
func (s *Service) GetAll(ctx context.Context) ([]models.Participant, error) {
	return s.store.AllParticipants(ctx)
}

// QRCodePNG renders the participant's QR code image from their stored
// payload string.
func (s *Service) QRCodePNG(ctx context.Context, participantID string) ([]byte, error) {
	p, err := s.store.FindParticipantByID(ctx, participantID)
	if err != nil {
		return nil, err
	}
	png, err := qrcode.GeneratePNG(p.QRCode)
	if err != nil {
		return nil, fmt.Errorf("generate QR code failed: %w", err)
	}
	return png, nil
}
