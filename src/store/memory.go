package store

import (
	"Backend-EventEase/src/models"
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is the in-memory Store implementation used when no MongoDB is
// configured (demo mode) and by the test suites. It is constructed once and
// injected, so demo and production traffic share the exact same code paths
// above the Store interface.
type MemoryStore struct {
	mu           sync.Mutex
	participants []models.Participant
	volunteers   []models.Volunteer
	checkEvents  []models.CheckEvent

	participantHub *hub[[]models.Participant]
	checkEventHub  *hub[[]models.CheckEvent]
	recentHub      *hub[[]models.CheckEvent]
}

// NewMemoryStore สร้าง MemoryStore เปล่า
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		participantHub: newHub[[]models.Participant](),
		checkEventHub:  newHub[[]models.CheckEvent](),
		recentHub:      newHub[[]models.CheckEvent](),
	}
}

// SeedDemoData เติมข้อมูลตัวอย่างสำหรับ demo mode
func (s *MemoryStore) SeedDemoData() {
	demo := []models.Participant{
		{Name: "John Doe", Email: "john@example.com", CollegeID: "CS001", College: "Demo University", Phone: "+1234567890"},
		{Name: "Jane Smith", Email: "jane@example.com", CollegeID: "CS002", College: "Demo College", Phone: "+1234567891"},
	}
	for _, p := range demo {
		_, _ = s.InsertParticipant(context.Background(), p)
	}
	_, _ = s.InsertVolunteer(context.Background(), models.Volunteer{
		Name: "Alice Johnson", Email: "alice@volunteer.com", VolunteerID: "VOL-001",
	})
}

// ---------- Participants ----------

func (s *MemoryStore) InsertParticipant(ctx context.Context, p models.Participant) (models.Participant, error) {
	s.mu.Lock()
	// เช็ค email / collegeId ซ้ำก่อน insert
	for _, existing := range s.participants {
		if strings.EqualFold(existing.Email, p.Email) || existing.CollegeID == p.CollegeID {
			s.mu.Unlock()
			return models.Participant{}, ErrDuplicateRegistration
		}
	}

	p.ID = uuid.NewString()
	if p.QRCode == "" {
		p.QRCode = p.ID
	}
	p.RegisteredAt = s.now()
	p.CheckedIn = false
	s.participants = append(s.participants, p)

	snapshot := s.participantSnapshot()
	s.mu.Unlock()

	s.participantHub.fire(snapshot)
	return p, nil
}

func (s *MemoryStore) FindParticipantByID(ctx context.Context, id string) (*models.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.participants {
		if s.participants[i].ID == id {
			p := s.participants[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) FindParticipantByQRCode(ctx context.Context, qrCode string) (*models.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.participants {
		if s.participants[i].QRCode == qrCode {
			p := s.participants[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) AllParticipants(ctx context.Context) ([]models.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.participantSnapshot(), nil
}

func (s *MemoryStore) SetParticipantCheckedIn(ctx context.Context, id string, checkedIn bool) error {
	s.mu.Lock()
	found := false
	for i := range s.participants {
		if s.participants[i].ID == id {
			s.participants[i].CheckedIn = checkedIn
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return ErrNotFound
	}
	snapshot := s.participantSnapshot()
	s.mu.Unlock()

	s.participantHub.fire(snapshot)
	return nil
}

// ---------- Volunteers ----------

func (s *MemoryStore) InsertVolunteer(ctx context.Context, v models.Volunteer) (models.Volunteer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.volunteers {
		if strings.EqualFold(existing.Email, v.Email) {
			return models.Volunteer{}, ErrDuplicateRegistration
		}
	}
	v.ID = uuid.NewString()
	v.RegisteredAt = s.now()
	s.volunteers = append(s.volunteers, v)
	return v, nil
}

func (s *MemoryStore) FindVolunteerByID(ctx context.Context, id string) (*models.Volunteer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.volunteers {
		if s.volunteers[i].ID == id {
			v := s.volunteers[i]
			return &v, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) FindVolunteerByEmail(ctx context.Context, email string) (*models.Volunteer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.volunteers {
		if strings.EqualFold(s.volunteers[i].Email, email) {
			v := s.volunteers[i]
			return &v, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) AllVolunteers(ctx context.Context) ([]models.Volunteer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Volunteer, len(s.volunteers))
	copy(out, s.volunteers)
	return out, nil
}

func (s *MemoryStore) TouchVolunteerLogin(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.volunteers {
		if s.volunteers[i].ID == id {
			now := s.now()
			s.volunteers[i].LastLogin = &now
			return nil
		}
	}
	return ErrNotFound
}

// ---------- CheckEvents ----------

func (s *MemoryStore) AppendCheckEvent(ctx context.Context, ev models.CheckEvent) (models.CheckEvent, error) {
	s.mu.Lock()
	ev.ID = uuid.NewString()
	ev.At = s.now()
	s.checkEvents = append(s.checkEvents, ev)

	events := s.checkEventSnapshot()
	recent := s.recentCheckInsLocked(RecentCheckInsLimit)
	s.mu.Unlock()

	s.checkEventHub.fire(events)
	s.recentHub.fire(recent)
	return ev, nil
}

func (s *MemoryStore) CheckEventsForParticipant(ctx context.Context, participantID string) ([]models.CheckEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.CheckEvent
	for _, ev := range s.checkEvents {
		if ev.ParticipantID == participantID {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (s *MemoryStore) RecentCheckIns(ctx context.Context, limit int) ([]models.CheckEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recentCheckInsLocked(limit), nil
}

func (s *MemoryStore) AllCheckEvents(ctx context.Context) ([]models.CheckEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkEventSnapshot(), nil
}

// ---------- Subscriptions ----------

// Initial delivery and hub registration happen under s.mu: a concurrent
// write is either already in the snapshot fn receives, or its fire runs
// after fn is registered. Listeners must not call back into the store.

func (s *MemoryStore) SubscribeParticipants(fn func([]models.Participant)) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.participantSnapshot()) // ส่ง snapshot ปัจจุบันทันทีตอน subscribe
	return s.participantHub.subscribe(fn), nil
}

func (s *MemoryStore) SubscribeCheckEvents(fn func([]models.CheckEvent)) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.checkEventSnapshot())
	return s.checkEventHub.subscribe(fn), nil
}

func (s *MemoryStore) SubscribeRecentCheckIns(fn func([]models.CheckEvent)) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.recentCheckInsLocked(RecentCheckInsLimit))
	return s.recentHub.subscribe(fn), nil
}

// ---------- helpers (ต้องถือ lock อยู่แล้ว) ----------

// now assigns write timestamps; monotonically non-decreasing in insertion
// order even if the wall clock steps backwards.
func (s *MemoryStore) now() time.Time {
	t := time.Now()
	if n := len(s.checkEvents); n > 0 && t.Before(s.checkEvents[n-1].At) {
		t = s.checkEvents[n-1].At
	}
	return t
}

func (s *MemoryStore) participantSnapshot() []models.Participant {
	out := make([]models.Participant, len(s.participants))
	copy(out, s.participants)
	return out
}

func (s *MemoryStore) checkEventSnapshot() []models.CheckEvent {
	out := make([]models.CheckEvent, len(s.checkEvents))
	copy(out, s.checkEvents)
	return out
}

// recentCheckInsLocked returns check-in events newest first, ties broken by
// insertion order (stable store-assigned order).
func (s *MemoryStore) recentCheckInsLocked(limit int) []models.CheckEvent {
	recent := []models.CheckEvent{}
	for i := len(s.checkEvents) - 1; i >= 0 && len(recent) < limit; i-- {
		if s.checkEvents[i].Kind == models.EventCheckIn {
			recent = append(recent, s.checkEvents[i])
		}
	}
	return recent
}
