package checkin

import (
	"Backend-EventEase/src/models"
	"Backend-EventEase/src/store"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
)

var (
	// ErrInvalidPayload QR payload ว่างเปล่า ต้องสแกนใหม่
	ErrInvalidPayload = errors.New("invalid QR payload")
	// ErrParticipantNotFound ไม่พบผู้เข้าร่วมจาก payload นี้
	ErrParticipantNotFound = errors.New("participant not found")
	// ErrAlreadyCheckedIn ผู้เข้าร่วมเช็คอินอยู่แล้ว ไม่บันทึก event ซ้ำ
	ErrAlreadyCheckedIn = errors.New("participant already checked in")
)

// สถานะที่ส่งกลับให้ volunteer หลังสแกน
const (
	StatusOK               = "ok"
	StatusAlreadyCheckedIn = "already-checked-in"
	StatusNotFound         = "not-found"
	StatusInvalidPayload   = "invalid-payload"
)

// ScanResult ผลของการ resolve + check-in หนึ่งครั้ง
type ScanResult struct {
	Participant *models.Participant `json:"participant,omitempty"`
	Status      string              `json:"status"`
}

// matcher tries one resolution strategy for a trimmed QR payload.
// A nil participant with a nil error means "no match, try the next one".
type matcher func(ctx context.Context, payload string) (*models.Participant, error)

// Service resolves scanned QR payloads to participants and enforces
// at-most-once active check-in on the append-only event log.
type Service struct {
	store    store.Store
	matchers []matcher
}

// NewService สร้าง Service พร้อม fallback chain สำหรับ resolve QR payload
// The chain is an ordered list so a new payload format only needs a new
// matcher appended, without touching the existing ones.
func NewService(st store.Store) *Service {
	s := &Service{store: st}
	s.matchers = []matcher{
		s.matchByID,        // payload เป็น participant id ตรงๆ (กรณีปกติ)
		s.matchByQRCode,    // payload ตรงกับ field qrCode
		s.matchByJSONField, // payload เป็น JSON ที่มี field id
	}
	return s
}

// Resolve maps a decoded QR payload string to exactly one participant.
// Pure lookup: no side effects, deterministic for an unchanged store.
func (s *Service) Resolve(ctx context.Context, payload string) (*models.Participant, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, ErrInvalidPayload
	}

	for _, match := range s.matchers {
		p, err := match(ctx, payload)
		if err != nil {
			return nil, err
		}
		if p != nil {
			return p, nil
		}
	}
	return nil, ErrParticipantNotFound
}

func (s *Service) matchByID(ctx context.Context, payload string) (*models.Participant, error) {
	p, err := s.store.FindParticipantByID(ctx, payload)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	return p, err
}

func (s *Service) matchByQRCode(ctx context.Context, payload string) (*models.Participant, error) {
	p, err := s.store.FindParticipantByQRCode(ctx, payload)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	return p, err
}

// matchByJSONField handles the older structured payload format {"id": "..."}.
func (s *Service) matchByJSONField(ctx context.Context, payload string) (*models.Participant, error) {
	var parsed struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil || parsed.ID == "" {
		return nil, nil // ไม่ใช่ JSON ก็ข้ามไป
	}
	p, err := s.store.FindParticipantByID(ctx, parsed.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	return p, err
}

// IsCheckedIn computes the current status from the event log: the kind of
// the most recent event decides, no events means not checked in. The cached
// checkedIn flag on the participant is never consulted here.
func (s *Service) IsCheckedIn(ctx context.Context, participantID string) (bool, error) {
	events, err := s.store.CheckEventsForParticipant(ctx, participantID)
	if err != nil {
		return false, err
	}
	if len(events) == 0 {
		return false, nil
	}
	return events[len(events)-1].Kind == models.EventCheckIn, nil
}

// CheckIn appends a check-in event for the participant, attributed to the
// scanning volunteer. Fails with ErrAlreadyCheckedIn when the latest event
// is already a check-in.
//
// The store gives no compare-and-append guarantee, so two racing check-ins
// can both pass the precondition and both append. After appending we re-read
// the log: if our event directly follows another check-in we lost the race
// and report ErrAlreadyCheckedIn to this (later) writer.
func (s *Service) CheckIn(ctx context.Context, participantID, volunteerID string) (*models.CheckEvent, error) {
	if _, err := s.store.FindParticipantByID(ctx, participantID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}

	checkedIn, err := s.IsCheckedIn(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if checkedIn {
		return nil, ErrAlreadyCheckedIn
	}

	ev, err := s.store.AppendCheckEvent(ctx, models.CheckEvent{
		ParticipantID: participantID,
		VolunteerID:   volunteerID,
		Kind:          models.EventCheckIn,
	})
	if err != nil {
		return nil, fmt.Errorf("append check-in failed: %w", err)
	}

	won, err := s.wonCheckInRace(ctx, participantID, ev.ID)
	if err != nil {
		return nil, err
	}
	if !won {
		return nil, ErrAlreadyCheckedIn
	}

	// รีเฟรช cache flag (log คือ source of truth ถ้าอัปเดตไม่สำเร็จก็ไม่เป็นไร)
	if err := s.store.SetParticipantCheckedIn(ctx, participantID, true); err != nil {
		log.Printf("⚠️ Failed to refresh checkedIn flag for %s: %v", participantID, err)
	}
	return &ev, nil
}

// wonCheckInRace verifies only one check-in became the fresh one: our event
// must not directly follow another check-in in the participant's log.
func (s *Service) wonCheckInRace(ctx context.Context, participantID, eventID string) (bool, error) {
	events, err := s.store.CheckEventsForParticipant(ctx, participantID)
	if err != nil {
		return false, err
	}
	for i, ev := range events {
		if ev.ID == eventID {
			return i == 0 || events[i-1].Kind != models.EventCheckIn, nil
		}
	}
	// event ที่เพิ่ง append หายไปจาก log ไม่ควรเกิดขึ้น
	return false, fmt.Errorf("appended event %s not found in log", eventID)
}

// CheckOut appends a check-out event. There is no precondition: checking out
// a participant who never checked in is allowed as an explicit corrective
// action.
func (s *Service) CheckOut(ctx context.Context, participantID, volunteerID string) (*models.CheckEvent, error) {
	if _, err := s.store.FindParticipantByID(ctx, participantID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}

	ev, err := s.store.AppendCheckEvent(ctx, models.CheckEvent{
		ParticipantID: participantID,
		VolunteerID:   volunteerID,
		Kind:          models.EventCheckOut,
	})
	if err != nil {
		return nil, fmt.Errorf("append check-out failed: %w", err)
	}

	if err := s.store.SetParticipantCheckedIn(ctx, participantID, false); err != nil {
		log.Printf("⚠️ Failed to refresh checkedIn flag for %s: %v", participantID, err)
	}
	return &ev, nil
}

// ResolveAndCheckIn composes Resolve and CheckIn for the volunteer scanner:
// one scanned payload in, one participant + status out.
func (s *Service) ResolveAndCheckIn(ctx context.Context, payload, volunteerID string) (ScanResult, error) {
	p, err := s.Resolve(ctx, payload)
	switch {
	case errors.Is(err, ErrInvalidPayload):
		return ScanResult{Status: StatusInvalidPayload}, nil
	case errors.Is(err, ErrParticipantNotFound):
		return ScanResult{Status: StatusNotFound}, nil
	case err != nil:
		return ScanResult{}, err
	}

	if _, err := s.CheckIn(ctx, p.ID, volunteerID); err != nil {
		if errors.Is(err, ErrAlreadyCheckedIn) {
			return ScanResult{Participant: p, Status: StatusAlreadyCheckedIn}, nil
		}
		return ScanResult{}, err
	}
	return ScanResult{Participant: p, Status: StatusOK}, nil
}
