package store

import (
	"Backend-EventEase/src/models"
	"context"
	"errors"
)

// RecentCheckInsLimit ขนาด window ของ recent check-ins บน dashboard
const RecentCheckInsLimit = 10

var (
	// ErrDuplicateRegistration email หรือ collegeId ซ้ำกับที่ลงทะเบียนไว้แล้ว
	ErrDuplicateRegistration = errors.New("email or college id already registered")
	// ErrNotFound ไม่พบ record ที่ค้นหา
	ErrNotFound = errors.New("record not found")
	// ErrUnavailable backing store ใช้งานไม่ได้ (retryable)
	ErrUnavailable = errors.New("store unavailable")
)

// Store is the record-store contract consumed by the check-in core.
// Timestamps (registeredAt, at) are assigned by the store at write time so
// ordering keys are trustworthy; they are normalized to time.Time before
// they reach any caller. Subscriptions deliver the full current result set
// immediately on subscribe and again after every write to the collection
// (at-least-once, in write order within a collection; no ordering guarantee
// across collections).
type Store interface {
	// Participants
	InsertParticipant(ctx context.Context, p models.Participant) (models.Participant, error)
	FindParticipantByID(ctx context.Context, id string) (*models.Participant, error)
	FindParticipantByQRCode(ctx context.Context, qrCode string) (*models.Participant, error)
	AllParticipants(ctx context.Context) ([]models.Participant, error)
	SetParticipantCheckedIn(ctx context.Context, id string, checkedIn bool) error

	// Volunteers
	InsertVolunteer(ctx context.Context, v models.Volunteer) (models.Volunteer, error)
	FindVolunteerByID(ctx context.Context, id string) (*models.Volunteer, error)
	FindVolunteerByEmail(ctx context.Context, email string) (*models.Volunteer, error)
	AllVolunteers(ctx context.Context) ([]models.Volunteer, error)
	TouchVolunteerLogin(ctx context.Context, id string) error

	// CheckEvents: append-only log, never mutated or deleted.
	AppendCheckEvent(ctx context.Context, ev models.CheckEvent) (models.CheckEvent, error)
	CheckEventsForParticipant(ctx context.Context, participantID string) ([]models.CheckEvent, error)
	RecentCheckIns(ctx context.Context, limit int) ([]models.CheckEvent, error)
	AllCheckEvents(ctx context.Context) ([]models.CheckEvent, error)

	// Subscriptions. Subscribe fails (wrapping ErrUnavailable) when the
	// initial snapshot cannot be read; nothing stays registered in that
	// case. The returned function unsubscribes; it is idempotent.
	SubscribeParticipants(fn func([]models.Participant)) (unsubscribe func(), err error)
	SubscribeCheckEvents(fn func([]models.CheckEvent)) (unsubscribe func(), err error)
	SubscribeRecentCheckIns(fn func([]models.CheckEvent)) (unsubscribe func(), err error)
}
