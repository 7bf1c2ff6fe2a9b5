package stats

import (
	"Backend-EventEase/src/models"
	"Backend-EventEase/src/store"
	"context"
	"sync"
)

// Listener receives a fresh DashboardStats snapshot on every change.
type Listener func(models.DashboardStats)

// Service derives live dashboard statistics from the record collections.
// It never owns data: every snapshot is recomputed from the cached
// collection states, the store stays the single source of truth.
type Service struct {
	store store.Store
}

// NewService สร้าง Service สำหรับ dashboard stats
func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// Snapshot คำนวณ DashboardStats จากข้อมูลปัจจุบัน (point-in-time, ไม่ subscribe)
func (s *Service) Snapshot(ctx context.Context) (models.DashboardStats, error) {
	participants, err := s.store.AllParticipants(ctx)
	if err != nil {
		return models.DashboardStats{}, err
	}
	events, err := s.store.AllCheckEvents(ctx)
	if err != nil {
		return models.DashboardStats{}, err
	}
	recent, err := s.store.RecentCheckIns(ctx, store.RecentCheckInsLimit)
	if err != nil {
		return models.DashboardStats{}, err
	}
	return compute(participants, events, recent), nil
}

// subscription is one live-stats lifecycle: three underlying collection
// feeds, cached partial states, recompute-and-push on any change.
type subscription struct {
	mu           sync.Mutex
	closed       bool
	listener     Listener
	participants []models.Participant
	checkEvents  []models.CheckEvent
	recent       []models.CheckEvent
}

// Subscribe delivers an immediate DashboardStats snapshot to listener and a
// new one whenever participants or check events change. It fails (wrapping
// store.ErrUnavailable) when any underlying feed cannot deliver its initial
// snapshot; feeds already opened are released before returning. The returned
// function stops delivery, releases the three underlying feed subscriptions,
// and is safe to call more than once; no delivery lands after it returns. A
// fresh Subscribe after unsubscribing starts an independent lifecycle.
//
// The three feeds are independent, so a snapshot may transiently pair a
// just-appended check event with a not-yet-refreshed participant list.
// Recomputation is purely local over the cached partials; no store
// round-trip happens on update.
func (s *Service) Subscribe(listener Listener) (unsubscribe func(), err error) {
	sub := &subscription{listener: listener}

	// สาม feed อิสระ; feed ไหนยิงก่อนก็คำนวณใหม่จาก cache ที่มี
	unsubParticipants, err := s.store.SubscribeParticipants(func(ps []models.Participant) {
		sub.mu.Lock()
		sub.participants = ps
		sub.mu.Unlock()
		sub.push()
	})
	if err != nil {
		return nil, err
	}
	unsubEvents, err := s.store.SubscribeCheckEvents(func(evs []models.CheckEvent) {
		sub.mu.Lock()
		sub.checkEvents = evs
		sub.mu.Unlock()
		sub.push()
	})
	if err != nil {
		unsubParticipants()
		return nil, err
	}
	unsubRecent, err := s.store.SubscribeRecentCheckIns(func(evs []models.CheckEvent) {
		sub.mu.Lock()
		sub.recent = evs
		sub.mu.Unlock()
		sub.push()
	})
	if err != nil {
		unsubParticipants()
		unsubEvents()
		return nil, err
	}

	return func() {
		sub.mu.Lock()
		sub.closed = true
		sub.mu.Unlock()
		unsubParticipants()
		unsubEvents()
		unsubRecent()
	}, nil
}

// push invokes the listener while holding sub.mu: once unsubscribe has set
// closed (under the same lock), any in-flight delivery has already finished,
// so nothing reaches the listener after unsubscribe returns. Listeners do
// local work only, so holding the lock across the call is safe.
func (sub *subscription) push() {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	if sub.closed {
		return
	}
	sub.listener(compute(sub.participants, sub.checkEvents, sub.recent))
}

// compute derives DashboardStats. totalCheckedIn counts participants whose
// latest event by at is a check-in; events arrive sorted ascending so the
// last kind seen per participant wins.
func compute(participants []models.Participant, events []models.CheckEvent, recent []models.CheckEvent) models.DashboardStats {
	latest := make(map[string]string, len(events))
	for _, ev := range events {
		latest[ev.ParticipantID] = ev.Kind
	}

	checkedIn := 0
	for _, kind := range latest {
		if kind == models.EventCheckIn {
			checkedIn++
		}
	}

	if recent == nil {
		recent = []models.CheckEvent{}
	}
	return models.DashboardStats{
		TotalRegistrations: len(participants),
		TotalCheckedIn:     checkedIn,
		RecentCheckIns:     recent,
	}
}
